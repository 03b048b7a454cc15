package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// AccountType is the NetSuite account type code carried on an account row.
// Values outside the known set are kept verbatim; AccountTypeUnknown is
// reserved for accounting lines whose account reference did not resolve.
type AccountType string

const (
	AccountTypeBank         AccountType = "Bank"
	AccountTypeAcctRec      AccountType = "AcctRec"
	AccountTypeOthCurrAsset AccountType = "OthCurrAsset"
	AccountTypeFixedAsset   AccountType = "FixedAsset"
	AccountTypeOthAsset     AccountType = "OthAsset"
	AccountTypeAcctPay      AccountType = "AcctPay"
	AccountTypeOthCurrLiab  AccountType = "OthCurrLiab"
	AccountTypeLongTermLiab AccountType = "LongTermLiab"
	AccountTypeEquity       AccountType = "Equity"
	AccountTypeIncome       AccountType = "Income"
	AccountTypeOthIncome    AccountType = "OthIncome"
	AccountTypeExpense      AccountType = "Expense"
	AccountTypeCOGS         AccountType = "COGS"
	AccountTypeOthExpense   AccountType = "OthExpense"
	AccountTypeUnknown      AccountType = "Unknown"
)

// IsAsset reports whether the type belongs to the asset section of the
// balance sheet.
func (t AccountType) IsAsset() bool {
	switch t {
	case AccountTypeBank, AccountTypeAcctRec, AccountTypeOthCurrAsset, AccountTypeFixedAsset, AccountTypeOthAsset:
		return true
	}
	return false
}

// IsLiability reports whether the type belongs to the liability section.
func (t AccountType) IsLiability() bool {
	switch t {
	case AccountTypeAcctPay, AccountTypeOthCurrLiab, AccountTypeLongTermLiab:
		return true
	}
	return false
}

// IsEquity reports whether the type belongs to the equity section.
func (t AccountType) IsEquity() bool {
	return t == AccountTypeEquity
}

// IsRevenue reports whether the type is credit-dominant income.
func (t AccountType) IsRevenue() bool {
	return t == AccountTypeIncome || t == AccountTypeOthIncome
}

// IsExpense reports whether the type is a cost line on the P&L.
func (t AccountType) IsExpense() bool {
	switch t {
	case AccountTypeExpense, AccountTypeCOGS, AccountTypeOthExpense:
		return true
	}
	return false
}

// IsProfitAndLoss reports whether the type appears on the P&L statement.
func (t AccountType) IsProfitAndLoss() bool {
	return t.IsRevenue() || t.IsExpense()
}

// IsBalanceSheet reports whether the type appears on the balance sheet.
func (t AccountType) IsBalanceSheet() bool {
	return t.IsAsset() || t.IsLiability() || t.IsEquity()
}

// Account is one row of the chart of accounts.
type Account struct {
	ID   string      `json:"id"`
	Name string      `json:"name"`
	Type AccountType `json:"type"`
}

// Subsidiary is one legal entity in the NetSuite hierarchy.
type Subsidiary struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Transaction is a header row; it carries no amount itself.
// Posting defaults to true when the export has no posting flag or the
// value is unrecognized, so data is included unless explicitly marked
// non-posting.
type Transaction struct {
	ID            string     `json:"id"`
	Date          *time.Time `json:"date,omitempty"`
	PostingPeriod string     `json:"posting_period,omitempty"`
	Posting       bool       `json:"posting"`
}

// TransactionLine allocates a transaction to a subsidiary and department.
// One transaction may carry several lines (multi-subsidiary allocation).
type TransactionLine struct {
	TransactionID string `json:"transaction_id"`
	SubsidiaryID  string `json:"subsidiary_id"`
	Department    string `json:"department,omitempty"`
}

// AccountingLine is the atomic monetary fact: positive = debit,
// negative = credit. AmountValid is false when the source value could not
// be parsed; such lines are kept but excluded from aggregation.
type AccountingLine struct {
	TransactionID string          `json:"transaction_id"`
	AccountID     string          `json:"account_id"`
	Amount        decimal.Decimal `json:"amount"`
	AmountValid   bool            `json:"amount_valid"`
}

// Period is one NetSuite accounting period (optional input table).
type Period struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	FiscalYear int    `json:"fiscal_year"`
	Quarter    int    `json:"quarter"`
	Month      int    `json:"month"`
}

// LoadStats mirrors the row counts of the raw input tables.
type LoadStats struct {
	Accounts         int `json:"accounts"`
	Subsidiaries     int `json:"subsidiaries"`
	Transactions     int `json:"transactions"`
	TransactionLines int `json:"transaction_lines"`
	AccountingLines  int `json:"accounting_lines"`
	Periods          int `json:"periods"`
	TotalRows        int `json:"total_rows"`
}

// RowDiagnostics accumulates non-fatal row-level coercion failures for a
// single table load. A bad row never aborts a load; it is counted here.
type RowDiagnostics struct {
	InvalidAmountRows int `json:"invalid_amount_rows"`
	InvalidDateRows   int `json:"invalid_date_rows"`
	MissingIDRows     int `json:"missing_id_rows"`
}

// Merge adds the counts of other into d.
func (d *RowDiagnostics) Merge(other RowDiagnostics) {
	d.InvalidAmountRows += other.InvalidAmountRows
	d.InvalidDateRows += other.InvalidDateRows
	d.MissingIDRows += other.MissingIDRows
}

// LedgerDataset is the full set of typed relations for one upload.
// It is a plain value passed to every pipeline function; there is no
// process-wide table registry.
type LedgerDataset struct {
	Accounts         []Account         `json:"accounts"`
	Subsidiaries     []Subsidiary      `json:"subsidiaries"`
	Transactions     []Transaction     `json:"transactions"`
	TransactionLines []TransactionLine `json:"transaction_lines"`
	AccountingLines  []AccountingLine  `json:"accounting_lines"`
	Periods          []Period          `json:"periods"`

	// HasPeriods is true when the optional accountingperiod table was
	// supplied, even if it turned out to be empty of usable rows.
	HasPeriods bool `json:"has_periods"`

	Stats       LoadStats      `json:"stats"`
	Diagnostics RowDiagnostics `json:"diagnostics"`
}
