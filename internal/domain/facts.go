package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// AccountRef is the join result for an accounting line's account reference.
// Account is nil when the id had no match in the chart of accounts; the row
// is kept and surfaces as an "Unknown Account" in reports.
type AccountRef struct {
	Account *Account `json:"account,omitempty"`
	RawID   string   `json:"raw_id"`
}

// Resolved reports whether the reference matched an account row.
func (r AccountRef) Resolved() bool { return r.Account != nil }

// DisplayName collapses the reference to a presentation string.
func (r AccountRef) DisplayName() string {
	if r.Account != nil {
		return r.Account.Name
	}
	return "Unknown Account [" + r.RawID + "]"
}

// Type returns the account type, or AccountTypeUnknown for an unresolved
// reference.
func (r AccountRef) Type() AccountType {
	if r.Account != nil {
		return r.Account.Type
	}
	return AccountTypeUnknown
}

// SubsidiaryRef is the join result for a transaction line's subsidiary
// reference.
type SubsidiaryRef struct {
	Subsidiary *Subsidiary `json:"subsidiary,omitempty"`
	RawID      string      `json:"raw_id"`
}

// Resolved reports whether the reference matched a subsidiary row.
func (r SubsidiaryRef) Resolved() bool { return r.Subsidiary != nil }

// DisplayName collapses the reference to a presentation string.
func (r SubsidiaryRef) DisplayName() string {
	if r.Subsidiary != nil {
		return r.Subsidiary.Name
	}
	return "Unknown Subsidiary"
}

// ID returns the subsidiary id, falling back to the raw foreign key for an
// unresolved reference so filters still match on it.
func (r SubsidiaryRef) ID() string {
	if r.Subsidiary != nil {
		return r.Subsidiary.ID
	}
	return r.RawID
}

// LedgerFact is one denormalized row: an accounting line enriched with its
// account, subsidiary/department allocation, transaction header, and period.
// When a transaction has N lines, its accounting lines each fan out into N
// facts carrying the full amount (mirrors NetSuite's allocation export).
type LedgerFact struct {
	Account         AccountRef      `json:"account"`
	Subsidiary      SubsidiaryRef   `json:"subsidiary"`
	Department      string          `json:"department,omitempty"`
	TransactionID   string          `json:"transaction_id"`
	TransactionDate *time.Time      `json:"transaction_date,omitempty"`
	Posting         bool            `json:"posting"`
	Period          *Period         `json:"period,omitempty"`
	Amount          decimal.Decimal `json:"amount"`
	AmountValid     bool            `json:"amount_valid"`
	FannedOut       bool            `json:"fanned_out"`
}
