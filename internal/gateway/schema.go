package gateway

import (
	"strings"

	"github.com/Abhigautam23/netsuite-financial-validator/internal/domain"
)

// NetSuite exports are loose about column naming, so each canonical field
// accepts a list of header synonyms. Resolution happens once per file; the
// rest of the pipeline only sees canonical fields.

type columnFamily struct {
	canonical string
	synonyms  []string
	required  bool
}

// columnRef points at the source column chosen for a canonical field.
// inverted is set when the matched header carries the opposite boolean
// sense (e.g. "nonposting" resolving the "posting" field).
type columnRef struct {
	index    int
	inverted bool
}

type entitySchema struct {
	entity   string
	families []columnFamily
}

var (
	accountSchema = entitySchema{
		entity: "account",
		families: []columnFamily{
			{canonical: "id", synonyms: []string{"id", "account_id"}, required: true},
			{canonical: "fullname", synonyms: []string{"fullname", "name", "account_name", "accountsearchdisplayname"}, required: true},
			{canonical: "accttype", synonyms: []string{"accttype", "accounttype", "account_type"}, required: true},
		},
	}

	subsidiarySchema = entitySchema{
		entity: "subsidiary",
		families: []columnFamily{
			{canonical: "id", synonyms: []string{"id", "subsidiary_id"}, required: true},
			{canonical: "name", synonyms: []string{"name", "fullname", "subsidiary_name"}, required: true},
		},
	}

	transactionSchema = entitySchema{
		entity: "transaction",
		families: []columnFamily{
			{canonical: "id", synonyms: []string{"id", "transaction_id"}, required: true},
			{canonical: "trandate", synonyms: []string{"trandate", "transaction_date", "date"}},
			{canonical: "postingperiod", synonyms: []string{"postingperiod", "posting_period", "period", "accountingperiod"}},
			{canonical: "posting", synonyms: []string{"posting", "isposting", "nonposting", "isnonposting"}},
		},
	}

	transactionLineSchema = entitySchema{
		entity: "transactionline",
		families: []columnFamily{
			{canonical: "transaction", synonyms: []string{"transaction", "transaction_id"}, required: true},
			{canonical: "subsidiary", synonyms: []string{"subsidiary", "subsidiary_id"}, required: true},
			{canonical: "department", synonyms: []string{"department", "department_id"}},
		},
	}

	accountingLineSchema = entitySchema{
		entity: "transactionaccountingline",
		families: []columnFamily{
			{canonical: "transaction", synonyms: []string{"transaction", "transaction_id"}, required: true},
			{canonical: "account", synonyms: []string{"account", "account_id"}, required: true},
			{canonical: "amount", synonyms: []string{"amount"}, required: true},
		},
	}

	periodSchema = entitySchema{
		entity: "accountingperiod",
		families: []columnFamily{
			{canonical: "id", synonyms: []string{"id", "period_id"}, required: true},
			{canonical: "periodname", synonyms: []string{"periodname", "period_name", "name"}, required: true},
			{canonical: "fiscalyear", synonyms: []string{"fiscalyear", "year"}, required: true},
			{canonical: "quarter", synonyms: []string{"quarter", "fiscalquarter"}, required: true},
			{canonical: "month", synonyms: []string{"month", "fiscalmonth"}, required: true},
		},
	}
)

// resolve maps the canonical fields of the schema onto a raw CSV header.
// A required family with no matching header fails with a SchemaError.
func (s entitySchema) resolve(header []string) (map[string]columnRef, error) {
	indexByName := make(map[string]int, len(header))
	for i, h := range header {
		name := normalizeHeader(h)
		if _, ok := indexByName[name]; !ok {
			indexByName[name] = i
		}
	}

	refs := make(map[string]columnRef, len(s.families))
	for _, fam := range s.families {
		matched := false
		for _, syn := range fam.synonyms {
			if idx, ok := indexByName[syn]; ok {
				refs[fam.canonical] = columnRef{index: idx, inverted: invertedSynonym(fam.canonical, syn)}
				matched = true
				break
			}
		}
		if !matched && fam.required {
			return nil, &domain.SchemaError{Entity: s.entity, Field: fam.canonical}
		}
	}
	return refs, nil
}

func normalizeHeader(h string) string {
	h = strings.TrimPrefix(h, "\ufeff")
	return strings.ToLower(strings.TrimSpace(h))
}

// invertedSynonym reports whether the matched header has the opposite
// boolean sense of its canonical field ("nonposting" answers the
// "posting" question negated).
func invertedSynonym(canonical, synonym string) bool {
	return canonical == "posting" && strings.Contains(synonym, "nonposting")
}

// fieldValue reads the canonical field from one record. ok is false when
// the field was never resolved or the record is too short.
func fieldValue(record []string, refs map[string]columnRef, canonical string) (string, bool) {
	ref, ok := refs[canonical]
	if !ok || ref.index >= len(record) {
		return "", false
	}
	return strings.TrimSpace(record[ref.index]), true
}
