package domain

import "github.com/shopspring/decimal"

// TrialBalanceRow is one account's net balance within a subsidiary.
type TrialBalanceRow struct {
	SubsidiaryName string          `json:"subsidiary_name"`
	AccountName    string          `json:"account_name"`
	AccountType    AccountType     `json:"account_type"`
	TotalAmount    decimal.Decimal `json:"total_amount"`
}

// TrialBalanceReport lists every account with activity after filtering.
// TotalDebits sums the positive balances, TotalCredits the absolute value
// of the negative ones.
type TrialBalanceReport struct {
	Rows         []TrialBalanceRow `json:"rows"`
	TotalDebits  decimal.Decimal   `json:"total_debits"`
	TotalCredits decimal.Decimal   `json:"total_credits"`
}

// PnLRow is one (subsidiary, account type) bucket of the P&L statement.
// Amounts are sign-adjusted: revenue buckets are negated from the raw
// debit-positive convention so income reads positive.
type PnLRow struct {
	SubsidiaryName string          `json:"subsidiary_name"`
	AccountType    AccountType     `json:"account_type"`
	TotalAmount    decimal.Decimal `json:"total_amount"`
}

// PnLReport is the Profit & Loss summary. ProfitMarginPct is nil when
// revenue is zero (margin undefined, not a division error).
type PnLReport struct {
	Rows            []PnLRow         `json:"rows"`
	Revenue         decimal.Decimal  `json:"revenue"`
	Expenses        decimal.Decimal  `json:"expenses"`
	NetIncome       decimal.Decimal  `json:"net_income"`
	ProfitMarginPct *decimal.Decimal `json:"profit_margin_pct,omitempty"`
}

// PeriodColumn labels one pivot column. Quarter and Month are zero when
// the granularity does not use them.
type PeriodColumn struct {
	Label      string `json:"label"`
	FiscalYear int    `json:"fiscal_year"`
	Quarter    int    `json:"quarter,omitempty"`
	Month      int    `json:"month,omitempty"`
}

// PeriodizedPnLRow is one account type across all period columns; Cells is
// index-aligned with the report's Columns.
type PeriodizedPnLRow struct {
	AccountType AccountType       `json:"account_type"`
	Cells       []decimal.Decimal `json:"cells"`
}

// PeriodizedPnLReport is the pivot-shaped periodized P&L.
// UnperiodizedFacts counts P&L activity whose transaction had no
// resolvable accounting period; those amounts are absent from the pivot.
type PeriodizedPnLReport struct {
	Granularity       Granularity        `json:"granularity"`
	Columns           []PeriodColumn     `json:"columns"`
	Rows              []PeriodizedPnLRow `json:"rows"`
	UnperiodizedFacts int                `json:"unperiodized_facts"`
}

// BalanceSheetRow is one account's balance in its statement section.
// Amounts keep the raw debit-positive convention, so liability and equity
// balances are normally negative here.
type BalanceSheetRow struct {
	SubsidiaryName string          `json:"subsidiary_name"`
	AccountName    string          `json:"account_name"`
	AccountType    AccountType     `json:"account_type"`
	TotalAmount    decimal.Decimal `json:"total_amount"`
}

// SubsidiaryEquation is the accounting-equation check for one subsidiary.
// Liabilities and Equity are presented as natural credit balances
// (positive), so Delta = Assets - (Liabilities + Equity).
type SubsidiaryEquation struct {
	SubsidiaryName string          `json:"subsidiary_name"`
	Assets         decimal.Decimal `json:"assets"`
	Liabilities    decimal.Decimal `json:"liabilities"`
	Equity         decimal.Decimal `json:"equity"`
	Delta          decimal.Decimal `json:"delta"`
	Balanced       bool            `json:"balanced"`
}

// BalanceSheetReport is the sectioned balance sheet. An out-of-balance
// equation is a warning carried in Equations, never an error: ledgers from
// incomplete exports are expected to be out of balance.
type BalanceSheetReport struct {
	Assets      []BalanceSheetRow `json:"assets"`
	Liabilities []BalanceSheetRow `json:"liabilities"`
	Equity      []BalanceSheetRow `json:"equity"`

	TotalAssets      decimal.Decimal `json:"total_assets"`
	TotalLiabilities decimal.Decimal `json:"total_liabilities"`
	TotalEquity      decimal.Decimal `json:"total_equity"`

	Equations []SubsidiaryEquation `json:"equations"`
}

// ValidationReport is the data-quality summary over a fact relation.
// It is always produced, even when every count is zero.
type ValidationReport struct {
	UnknownAccountFacts    int `json:"unknown_account_facts"`
	UnknownSubsidiaryFacts int `json:"unknown_subsidiary_facts"`
	InvalidAmountFacts     int `json:"invalid_amount_facts"`
	FannedOutFacts         int `json:"fanned_out_facts"`

	TotalTransactions      int `json:"total_transactions"`
	PostingTransactions    int `json:"posting_transactions"`
	NonPostingTransactions int `json:"non_posting_transactions"`

	Equations []SubsidiaryEquation `json:"equation_deltas"`
}
