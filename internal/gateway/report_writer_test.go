package gateway

import (
	"bytes"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Abhigautam23/netsuite-financial-validator/internal/domain"
)

func TestWriteTrialBalanceCSV(t *testing.T) {
	report := domain.TrialBalanceReport{
		Rows: []domain.TrialBalanceRow{
			{SubsidiaryName: "US HQ", AccountName: "Cash", AccountType: domain.AccountTypeBank, TotalAmount: decimal.RequireFromString("1500.5")},
			{SubsidiaryName: "US HQ", AccountName: "Sales", AccountType: domain.AccountTypeIncome, TotalAmount: decimal.RequireFromString("-1500.5")},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteTrialBalanceCSV(&buf, report))

	expected := "subsidiary_name,account_name,account_type,total_amount\n" +
		"US HQ,Cash,Bank,1500.50\n" +
		"US HQ,Sales,Income,-1500.50\n"
	assert.Equal(t, expected, buf.String())
}

func TestWritePeriodizedPnLCSV(t *testing.T) {
	report := domain.PeriodizedPnLReport{
		Granularity: domain.GranularityQuarter,
		Columns: []domain.PeriodColumn{
			{Label: "FY2024 Q1", FiscalYear: 2024, Quarter: 1},
			{Label: "FY2024 Q2", FiscalYear: 2024, Quarter: 2},
		},
		Rows: []domain.PeriodizedPnLRow{
			{AccountType: domain.AccountTypeIncome, Cells: []decimal.Decimal{decimal.RequireFromString("100"), decimal.RequireFromString("250.25")}},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, WritePeriodizedPnLCSV(&buf, report))

	expected := "account_type,FY2024 Q1,FY2024 Q2\n" +
		"Income,100.00,250.25\n"
	assert.Equal(t, expected, buf.String())
}

func TestWriteBalanceSheetCSV_SectionOrder(t *testing.T) {
	report := domain.BalanceSheetReport{
		Assets: []domain.BalanceSheetRow{
			{SubsidiaryName: "US HQ", AccountName: "Cash", AccountType: domain.AccountTypeBank, TotalAmount: decimal.RequireFromString("1000")},
		},
		Liabilities: []domain.BalanceSheetRow{
			{SubsidiaryName: "US HQ", AccountName: "AP", AccountType: domain.AccountTypeAcctPay, TotalAmount: decimal.RequireFromString("-400")},
		},
		Equity: []domain.BalanceSheetRow{
			{SubsidiaryName: "US HQ", AccountName: "Stock", AccountType: domain.AccountTypeEquity, TotalAmount: decimal.RequireFromString("-600")},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteBalanceSheetCSV(&buf, report))

	expected := "section,subsidiary_name,account_name,account_type,total_amount\n" +
		"Assets,US HQ,Cash,Bank,1000.00\n" +
		"Liabilities,US HQ,AP,AcctPay,-400.00\n" +
		"Equity,US HQ,Stock,Equity,-600.00\n"
	assert.Equal(t, expected, buf.String())
}
