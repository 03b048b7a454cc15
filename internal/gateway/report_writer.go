package gateway

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/Abhigautam23/netsuite-financial-validator/internal/domain"
)

// Report CSV serialization. Column order is stable and amounts always
// carry two decimals so exports round-trip losslessly.

// WriteTrialBalanceCSV serializes a trial balance report.
func WriteTrialBalanceCSV(w io.Writer, report domain.TrialBalanceReport) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"subsidiary_name", "account_name", "account_type", "total_amount"}); err != nil {
		return fmt.Errorf("writing trial balance header: %w", err)
	}
	for _, row := range report.Rows {
		record := []string{row.SubsidiaryName, row.AccountName, string(row.AccountType), row.TotalAmount.StringFixed(2)}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("writing trial balance row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// WritePnLCSV serializes a profit & loss report.
func WritePnLCSV(w io.Writer, report domain.PnLReport) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"subsidiary_name", "account_type", "total_amount"}); err != nil {
		return fmt.Errorf("writing p&l header: %w", err)
	}
	for _, row := range report.Rows {
		record := []string{row.SubsidiaryName, string(row.AccountType), row.TotalAmount.StringFixed(2)}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("writing p&l row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// WritePeriodizedPnLCSV serializes the pivot with one column per period.
func WritePeriodizedPnLCSV(w io.Writer, report domain.PeriodizedPnLReport) error {
	cw := csv.NewWriter(w)
	header := make([]string, 0, len(report.Columns)+1)
	header = append(header, "account_type")
	for _, col := range report.Columns {
		header = append(header, col.Label)
	}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("writing periodized p&l header: %w", err)
	}
	for _, row := range report.Rows {
		record := make([]string, 0, len(row.Cells)+1)
		record = append(record, string(row.AccountType))
		for _, cell := range row.Cells {
			record = append(record, cell.StringFixed(2))
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("writing periodized p&l row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteBalanceSheetCSV serializes the three sections in statement order.
func WriteBalanceSheetCSV(w io.Writer, report domain.BalanceSheetReport) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"section", "subsidiary_name", "account_name", "account_type", "total_amount"}); err != nil {
		return fmt.Errorf("writing balance sheet header: %w", err)
	}
	sections := []struct {
		name string
		rows []domain.BalanceSheetRow
	}{
		{"Assets", report.Assets},
		{"Liabilities", report.Liabilities},
		{"Equity", report.Equity},
	}
	for _, section := range sections {
		for _, row := range section.rows {
			record := []string{section.name, row.SubsidiaryName, row.AccountName, string(row.AccountType), row.TotalAmount.StringFixed(2)}
			if err := cw.Write(record); err != nil {
				return fmt.Errorf("writing balance sheet row: %w", err)
			}
		}
	}
	cw.Flush()
	return cw.Error()
}
