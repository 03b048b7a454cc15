package domain

import "fmt"

// FilterSpec is a conjunctive predicate over the ledger fact relation.
// An empty slice means "All" for that criterion. Subsidiaries and
// departments match by id, periods by period name, account types by the
// raw type string.
type FilterSpec struct {
	Subsidiaries      []string `json:"subsidiaries,omitempty"`
	Periods           []string `json:"periods,omitempty"`
	Departments       []string `json:"departments,omitempty"`
	AccountTypes      []string `json:"account_types,omitempty"`
	ExcludeNonPosting bool     `json:"exclude_non_posting"`
}

// Active reports how many criteria are constrained.
func (s FilterSpec) Active() int {
	n := 0
	if len(s.Subsidiaries) > 0 {
		n++
	}
	if len(s.Periods) > 0 {
		n++
	}
	if len(s.Departments) > 0 {
		n++
	}
	if len(s.AccountTypes) > 0 {
		n++
	}
	if s.ExcludeNonPosting {
		n++
	}
	return n
}

// SubsidiaryOption is one selectable subsidiary for the filter UI.
type SubsidiaryOption struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// PeriodOption is one selectable period for the filter UI.
type PeriodOption struct {
	Name       string `json:"name"`
	FiscalYear int    `json:"fiscal_year"`
	Quarter    int    `json:"quarter"`
	Month      int    `json:"month"`
}

// FilterValues lists the distinct values available for each filter.
type FilterValues struct {
	Subsidiaries []SubsidiaryOption `json:"subsidiaries"`
	Periods      []PeriodOption     `json:"periods"`
	Departments  []string           `json:"departments"`
	AccountTypes []string           `json:"account_types"`
}

// Granularity selects the bucket size of a periodized P&L.
type Granularity string

const (
	GranularityMonth   Granularity = "month"
	GranularityQuarter Granularity = "quarter"
	GranularityYear    Granularity = "year"
)

// ParseGranularity validates a user-supplied granularity string.
func ParseGranularity(s string) (Granularity, error) {
	switch Granularity(s) {
	case GranularityMonth, GranularityQuarter, GranularityYear:
		return Granularity(s), nil
	}
	return "", fmt.Errorf("invalid granularity %q: must be month, quarter or year", s)
}
