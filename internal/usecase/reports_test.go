package usecase_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Abhigautam23/netsuite-financial-validator/internal/domain"
	"github.com/Abhigautam23/netsuite-financial-validator/internal/usecase"
)

// fact builds a resolved ledger fact for report tests. Amounts follow the
// export convention: debits positive, credits negative.
func fact(subsidiary, account string, accountType domain.AccountType, amount string) domain.LedgerFact {
	return domain.LedgerFact{
		Account:     domain.AccountRef{Account: &domain.Account{ID: account, Name: account, Type: accountType}, RawID: account},
		Subsidiary:  domain.SubsidiaryRef{Subsidiary: &domain.Subsidiary{ID: subsidiary, Name: subsidiary}, RawID: subsidiary},
		Posting:     true,
		Amount:      decimal.RequireFromString(amount),
		AmountValid: true,
	}
}

func withPeriod(f domain.LedgerFact, period *domain.Period) domain.LedgerFact {
	f.Period = period
	return f
}

func TestReportingUseCase_TrialBalance(t *testing.T) {
	uc := usecase.NewReportingUseCase(nil)

	t.Run("groups, sums and orders", func(t *testing.T) {
		facts := []domain.LedgerFact{
			fact("US HQ", "Cash", domain.AccountTypeBank, "100.005"),
			fact("US HQ", "Cash", domain.AccountTypeBank, "50"),
			fact("US HQ", "Sales", domain.AccountTypeIncome, "-150.005"),
			fact("UK Ops", "Cash", domain.AccountTypeBank, "10"),
		}

		report := uc.TrialBalance(facts)
		require.Len(t, report.Rows, 3)

		assert.Equal(t, "UK Ops", report.Rows[0].SubsidiaryName)
		assert.Equal(t, "US HQ", report.Rows[1].SubsidiaryName)
		assert.Equal(t, "Cash", report.Rows[1].AccountName)
		// 100.005 + 50 sums before rounding.
		assert.Equal(t, "150.01", report.Rows[1].TotalAmount.String())
		assert.Equal(t, "-150.01", report.Rows[2].TotalAmount.String())

		assert.Equal(t, "160.01", report.TotalDebits.String())
		assert.Equal(t, "150.01", report.TotalCredits.String())
	})

	t.Run("invalid amounts stay out of the sums", func(t *testing.T) {
		invalid := fact("US HQ", "Cash", domain.AccountTypeBank, "0")
		invalid.AmountValid = false
		facts := []domain.LedgerFact{
			fact("US HQ", "Cash", domain.AccountTypeBank, "100"),
			invalid,
		}

		report := uc.TrialBalance(facts)
		require.Len(t, report.Rows, 1)
		assert.Equal(t, "100", report.Rows[0].TotalAmount.String())
	})

	t.Run("empty input yields an empty report", func(t *testing.T) {
		report := uc.TrialBalance(nil)
		assert.Empty(t, report.Rows)
		assert.True(t, report.TotalDebits.IsZero())
		assert.True(t, report.TotalCredits.IsZero())
	})

	t.Run("same input always yields the same report", func(t *testing.T) {
		facts := []domain.LedgerFact{
			fact("US HQ", "Cash", domain.AccountTypeBank, "100"),
			fact("UK Ops", "Sales", domain.AccountTypeIncome, "-100"),
		}
		first := uc.TrialBalance(facts)
		second := uc.TrialBalance(facts)
		assert.Equal(t, first, second)
	})
}

func TestReportingUseCase_ProfitAndLoss(t *testing.T) {
	uc := usecase.NewReportingUseCase(nil)

	t.Run("revenue reads positive, balance-sheet accounts excluded", func(t *testing.T) {
		facts := []domain.LedgerFact{
			fact("US HQ", "Sales", domain.AccountTypeIncome, "-100"),
			fact("US HQ", "Rent", domain.AccountTypeExpense, "40"),
			fact("US HQ", "Cash", domain.AccountTypeBank, "60"),
		}

		report := uc.ProfitAndLoss(facts)
		require.Len(t, report.Rows, 2)

		assert.Equal(t, domain.AccountTypeExpense, report.Rows[0].AccountType)
		assert.Equal(t, "40", report.Rows[0].TotalAmount.String())
		assert.Equal(t, domain.AccountTypeIncome, report.Rows[1].AccountType)
		assert.Equal(t, "100", report.Rows[1].TotalAmount.String())

		assert.Equal(t, "100", report.Revenue.String())
		assert.Equal(t, "40", report.Expenses.String())
		assert.Equal(t, "60", report.NetIncome.String())
		require.NotNil(t, report.ProfitMarginPct)
		assert.Equal(t, "60", report.ProfitMarginPct.String())
	})

	t.Run("margin is omitted at zero revenue", func(t *testing.T) {
		facts := []domain.LedgerFact{
			fact("US HQ", "Rent", domain.AccountTypeExpense, "40"),
		}

		report := uc.ProfitAndLoss(facts)
		assert.Equal(t, "-40", report.NetIncome.String())
		assert.Nil(t, report.ProfitMarginPct)
	})

	t.Run("OthIncome and COGS are profit-and-loss types", func(t *testing.T) {
		facts := []domain.LedgerFact{
			fact("US HQ", "Interest", domain.AccountTypeOthIncome, "-10"),
			fact("US HQ", "Freight", domain.AccountTypeCOGS, "4"),
		}

		report := uc.ProfitAndLoss(facts)
		assert.Equal(t, "10", report.Revenue.String())
		assert.Equal(t, "4", report.Expenses.String())
	})
}

func TestReportingUseCase_PeriodizedPnL(t *testing.T) {
	uc := usecase.NewReportingUseCase(nil)

	january := &domain.Period{ID: "P202401", Name: "Jan 2024", FiscalYear: 2024, Quarter: 1, Month: 1}
	april := &domain.Period{ID: "P202404", Name: "Apr 2024", FiscalYear: 2024, Quarter: 2, Month: 4}
	ds := &domain.LedgerDataset{HasPeriods: true, Periods: []domain.Period{*january, *april}}

	t.Run("unavailable without the period table", func(t *testing.T) {
		_, err := uc.PeriodizedPnL(&domain.LedgerDataset{}, nil, domain.GranularityMonth)
		assert.ErrorIs(t, err, domain.ErrPeriodDataUnavailable)
	})

	t.Run("invalid granularity is rejected", func(t *testing.T) {
		_, err := uc.PeriodizedPnL(ds, nil, domain.Granularity("weekly"))
		assert.Error(t, err)
	})

	t.Run("empty facts with periods available yields an empty pivot", func(t *testing.T) {
		report, err := uc.PeriodizedPnL(ds, nil, domain.GranularityMonth)
		require.NoError(t, err)
		assert.Empty(t, report.Columns)
		assert.Empty(t, report.Rows)
		assert.Zero(t, report.UnperiodizedFacts)
	})

	t.Run("monthly pivot with sign adjustment and ordered columns", func(t *testing.T) {
		facts := []domain.LedgerFact{
			withPeriod(fact("US HQ", "Sales", domain.AccountTypeIncome, "-100"), april),
			withPeriod(fact("US HQ", "Sales", domain.AccountTypeIncome, "-50"), january),
			withPeriod(fact("US HQ", "Rent", domain.AccountTypeExpense, "30"), january),
			withPeriod(fact("US HQ", "Cash", domain.AccountTypeBank, "70"), january),
			fact("US HQ", "Sales", domain.AccountTypeIncome, "-5"),
		}

		report, err := uc.PeriodizedPnL(ds, facts, domain.GranularityMonth)
		require.NoError(t, err)

		require.Len(t, report.Columns, 2)
		assert.Equal(t, "FY2024 M01", report.Columns[0].Label)
		assert.Equal(t, "FY2024 M04", report.Columns[1].Label)

		require.Len(t, report.Rows, 2)
		assert.Equal(t, domain.AccountTypeExpense, report.Rows[0].AccountType)
		assert.Equal(t, "30", report.Rows[0].Cells[0].String())
		assert.Equal(t, "0", report.Rows[0].Cells[1].String())
		assert.Equal(t, domain.AccountTypeIncome, report.Rows[1].AccountType)
		assert.Equal(t, "50", report.Rows[1].Cells[0].String())
		assert.Equal(t, "100", report.Rows[1].Cells[1].String())

		// The periodless Sales fact is counted, not silently dropped.
		assert.Equal(t, 1, report.UnperiodizedFacts)
	})

	t.Run("quarterly and yearly granularity collapse the buckets", func(t *testing.T) {
		facts := []domain.LedgerFact{
			withPeriod(fact("US HQ", "Sales", domain.AccountTypeIncome, "-100"), january),
			withPeriod(fact("US HQ", "Sales", domain.AccountTypeIncome, "-200"), april),
		}

		quarterly, err := uc.PeriodizedPnL(ds, facts, domain.GranularityQuarter)
		require.NoError(t, err)
		require.Len(t, quarterly.Columns, 2)
		assert.Equal(t, "FY2024 Q1", quarterly.Columns[0].Label)
		assert.Equal(t, "FY2024 Q2", quarterly.Columns[1].Label)

		yearly, err := uc.PeriodizedPnL(ds, facts, domain.GranularityYear)
		require.NoError(t, err)
		require.Len(t, yearly.Columns, 1)
		assert.Equal(t, "FY2024", yearly.Columns[0].Label)
		assert.Equal(t, "300", yearly.Rows[0].Cells[0].String())
	})
}

func TestReportingUseCase_BalanceSheet(t *testing.T) {
	uc := usecase.NewReportingUseCase(nil)

	t.Run("balanced subsidiary", func(t *testing.T) {
		facts := []domain.LedgerFact{
			fact("US HQ", "Cash", domain.AccountTypeBank, "1000"),
			fact("US HQ", "AP", domain.AccountTypeAcctPay, "-400"),
			fact("US HQ", "Stock", domain.AccountTypeEquity, "-600"),
			fact("US HQ", "Sales", domain.AccountTypeIncome, "-50"), // P&L, excluded
		}

		report := uc.BalanceSheet(facts)
		require.Len(t, report.Assets, 1)
		require.Len(t, report.Liabilities, 1)
		require.Len(t, report.Equity, 1)

		// Row amounts keep the raw ledger sign.
		assert.Equal(t, "1000", report.Assets[0].TotalAmount.String())
		assert.Equal(t, "-400", report.Liabilities[0].TotalAmount.String())

		// Section totals read as natural balances.
		assert.Equal(t, "1000", report.TotalAssets.String())
		assert.Equal(t, "400", report.TotalLiabilities.String())
		assert.Equal(t, "600", report.TotalEquity.String())

		require.Len(t, report.Equations, 1)
		eq := report.Equations[0]
		assert.Equal(t, "US HQ", eq.SubsidiaryName)
		assert.True(t, eq.Delta.IsZero())
		assert.True(t, eq.Balanced)
	})

	t.Run("unbalanced subsidiary reports the delta", func(t *testing.T) {
		facts := []domain.LedgerFact{
			fact("US HQ", "Cash", domain.AccountTypeBank, "1000"),
			fact("US HQ", "AP", domain.AccountTypeAcctPay, "-400"),
			fact("US HQ", "Stock", domain.AccountTypeEquity, "-500"),
		}

		report := uc.BalanceSheet(facts)
		require.Len(t, report.Equations, 1)
		eq := report.Equations[0]
		assert.Equal(t, "100", eq.Delta.String())
		assert.False(t, eq.Balanced)
	})

	t.Run("rounding noise within a cent still balances", func(t *testing.T) {
		facts := []domain.LedgerFact{
			fact("US HQ", "Cash", domain.AccountTypeBank, "1000.004"),
			fact("US HQ", "Stock", domain.AccountTypeEquity, "-1000"),
		}

		report := uc.BalanceSheet(facts)
		require.Len(t, report.Equations, 1)
		assert.True(t, report.Equations[0].Balanced)
	})

	t.Run("subsidiaries are tracked independently", func(t *testing.T) {
		facts := []domain.LedgerFact{
			fact("UK Ops", "Cash", domain.AccountTypeBank, "500"),
			fact("UK Ops", "Stock", domain.AccountTypeEquity, "-500"),
			fact("US HQ", "Cash", domain.AccountTypeBank, "300"),
		}

		report := uc.BalanceSheet(facts)
		require.Len(t, report.Equations, 2)
		assert.Equal(t, "UK Ops", report.Equations[0].SubsidiaryName)
		assert.True(t, report.Equations[0].Balanced)
		assert.Equal(t, "US HQ", report.Equations[1].SubsidiaryName)
		assert.False(t, report.Equations[1].Balanced)
	})
}

func TestReportingUseCase_Validate(t *testing.T) {
	uc := usecase.NewReportingUseCase(nil)

	t.Run("clean facts validate to zero counts", func(t *testing.T) {
		facts := []domain.LedgerFact{
			fact("US HQ", "Cash", domain.AccountTypeBank, "100"),
		}
		facts[0].TransactionID = "T1"

		report := uc.Validate(facts)
		assert.Zero(t, report.UnknownAccountFacts)
		assert.Zero(t, report.UnknownSubsidiaryFacts)
		assert.Zero(t, report.InvalidAmountFacts)
		assert.Zero(t, report.FannedOutFacts)
		assert.Equal(t, 1, report.TotalTransactions)
		assert.Equal(t, 1, report.PostingTransactions)
	})

	t.Run("anomalies are counted per fact", func(t *testing.T) {
		orphanAccount := fact("US HQ", "Cash", domain.AccountTypeBank, "10")
		orphanAccount.Account = domain.AccountRef{RawID: "9999"}
		orphanAccount.TransactionID = "T1"

		orphanSubsidiary := fact("US HQ", "Cash", domain.AccountTypeBank, "10")
		orphanSubsidiary.Subsidiary = domain.SubsidiaryRef{RawID: "S9"}
		orphanSubsidiary.TransactionID = "T2"

		invalidAmount := fact("US HQ", "Cash", domain.AccountTypeBank, "0")
		invalidAmount.AmountValid = false
		invalidAmount.TransactionID = "T2"

		fannedOut := fact("US HQ", "Cash", domain.AccountTypeBank, "10")
		fannedOut.FannedOut = true
		fannedOut.TransactionID = "T3"
		fannedOut.Posting = false

		report := uc.Validate([]domain.LedgerFact{orphanAccount, orphanSubsidiary, invalidAmount, fannedOut})
		assert.Equal(t, 1, report.UnknownAccountFacts)
		assert.Equal(t, 1, report.UnknownSubsidiaryFacts)
		assert.Equal(t, 1, report.InvalidAmountFacts)
		assert.Equal(t, 1, report.FannedOutFacts)
		assert.Equal(t, 3, report.TotalTransactions)
		assert.Equal(t, 2, report.PostingTransactions)
		assert.Equal(t, 1, report.NonPostingTransactions)
	})
}
