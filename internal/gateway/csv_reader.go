package gateway

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Abhigautam23/netsuite-financial-validator/internal/domain"
)

// CSVLedgerRepository loads NetSuite export tables from CSV files.
// Schema normalization and type coercion happen here; callers only see
// the canonical typed relations.
type CSVLedgerRepository struct{}

// NewCSVLedgerRepository creates a new repository instance.
func NewCSVLedgerRepository() *CSVLedgerRepository {
	return &CSVLedgerRepository{}
}

// readTable buffers a whole CSV file and resolves its header against the
// entity schema. A file that cannot be read as tabular data at all fails
// with a LoadError; a missing required column family with a SchemaError.
func readTable(path string, schema entitySchema) (map[string]columnRef, [][]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, nil, &domain.LoadError{File: path, Err: err}
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	header, err := reader.Read()
	if err != nil {
		return nil, nil, &domain.LoadError{File: path, Err: fmt.Errorf("reading header: %w", err)}
	}

	refs, err := schema.resolve(header)
	if err != nil {
		return nil, nil, err
	}

	var rows [][]string
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, &domain.LoadError{File: path, Err: err}
		}
		rows = append(rows, record)
	}
	return refs, rows, nil
}

// GetAccounts reads and normalizes the chart of accounts.
func (r *CSVLedgerRepository) GetAccounts(ctx context.Context, path string) ([]domain.Account, domain.RowDiagnostics, error) {
	var diag domain.RowDiagnostics
	refs, rows, err := readTable(path, accountSchema)
	if err != nil {
		return nil, diag, err
	}

	accounts := make([]domain.Account, 0, len(rows))
	for _, record := range rows {
		id, _ := fieldValue(record, refs, "id")
		if id == "" {
			diag.MissingIDRows++
			continue
		}
		name, _ := fieldValue(record, refs, "fullname")
		acctType, _ := fieldValue(record, refs, "accttype")
		accounts = append(accounts, domain.Account{
			ID:   id,
			Name: name,
			Type: domain.AccountType(acctType),
		})
	}
	return accounts, diag, nil
}

// GetSubsidiaries reads and normalizes the subsidiary table.
func (r *CSVLedgerRepository) GetSubsidiaries(ctx context.Context, path string) ([]domain.Subsidiary, domain.RowDiagnostics, error) {
	var diag domain.RowDiagnostics
	refs, rows, err := readTable(path, subsidiarySchema)
	if err != nil {
		return nil, diag, err
	}

	subsidiaries := make([]domain.Subsidiary, 0, len(rows))
	for _, record := range rows {
		id, _ := fieldValue(record, refs, "id")
		if id == "" {
			diag.MissingIDRows++
			continue
		}
		name, _ := fieldValue(record, refs, "name")
		subsidiaries = append(subsidiaries, domain.Subsidiary{ID: id, Name: name})
	}
	return subsidiaries, diag, nil
}

// GetTransactions reads and normalizes transaction headers. Unparseable
// dates leave the field nil (the transaction still loads); absent or
// unrecognized posting flags default to posting = true.
func (r *CSVLedgerRepository) GetTransactions(ctx context.Context, path string) ([]domain.Transaction, domain.RowDiagnostics, error) {
	var diag domain.RowDiagnostics
	refs, rows, err := readTable(path, transactionSchema)
	if err != nil {
		return nil, diag, err
	}

	postingRef, hasPosting := refs["posting"]

	transactions := make([]domain.Transaction, 0, len(rows))
	for _, record := range rows {
		id, _ := fieldValue(record, refs, "id")
		if id == "" {
			diag.MissingIDRows++
			continue
		}

		var date *time.Time
		if raw, ok := fieldValue(record, refs, "trandate"); ok && raw != "" {
			date = parseDate(raw)
			if date == nil {
				diag.InvalidDateRows++
			}
		}

		period, _ := fieldValue(record, refs, "postingperiod")

		posting := true
		if hasPosting && postingRef.index < len(record) {
			posting = parsePostingFlag(record[postingRef.index], postingRef.inverted)
		}

		transactions = append(transactions, domain.Transaction{
			ID:            id,
			Date:          date,
			PostingPeriod: period,
			Posting:       posting,
		})
	}
	return transactions, diag, nil
}

// GetTransactionLines reads and normalizes subsidiary/department
// allocation lines.
func (r *CSVLedgerRepository) GetTransactionLines(ctx context.Context, path string) ([]domain.TransactionLine, domain.RowDiagnostics, error) {
	var diag domain.RowDiagnostics
	refs, rows, err := readTable(path, transactionLineSchema)
	if err != nil {
		return nil, diag, err
	}

	lines := make([]domain.TransactionLine, 0, len(rows))
	for _, record := range rows {
		transactionID, _ := fieldValue(record, refs, "transaction")
		if transactionID == "" {
			diag.MissingIDRows++
			continue
		}
		subsidiaryID, _ := fieldValue(record, refs, "subsidiary")
		department, _ := fieldValue(record, refs, "department")
		lines = append(lines, domain.TransactionLine{
			TransactionID: transactionID,
			SubsidiaryID:  subsidiaryID,
			Department:    department,
		})
	}
	return lines, diag, nil
}

// GetAccountingLines reads and normalizes the monetary facts. An amount
// that fails decimal coercion is never silently zeroed: the line is kept
// with AmountValid = false and counted in the diagnostics.
func (r *CSVLedgerRepository) GetAccountingLines(ctx context.Context, path string) ([]domain.AccountingLine, domain.RowDiagnostics, error) {
	var diag domain.RowDiagnostics
	refs, rows, err := readTable(path, accountingLineSchema)
	if err != nil {
		return nil, diag, err
	}

	lines := make([]domain.AccountingLine, 0, len(rows))
	for _, record := range rows {
		transactionID, _ := fieldValue(record, refs, "transaction")
		accountID, _ := fieldValue(record, refs, "account")
		if transactionID == "" || accountID == "" {
			diag.MissingIDRows++
			continue
		}

		line := domain.AccountingLine{
			TransactionID: transactionID,
			AccountID:     accountID,
		}
		raw, _ := fieldValue(record, refs, "amount")
		if amount, err := decimal.NewFromString(raw); err == nil {
			line.Amount = amount
			line.AmountValid = true
		} else {
			diag.InvalidAmountRows++
		}
		lines = append(lines, line)
	}
	return lines, diag, nil
}

// GetPeriods reads and normalizes the optional accountingperiod table.
// Unparseable fiscal year/quarter/month values coerce to zero.
func (r *CSVLedgerRepository) GetPeriods(ctx context.Context, path string) ([]domain.Period, domain.RowDiagnostics, error) {
	var diag domain.RowDiagnostics
	refs, rows, err := readTable(path, periodSchema)
	if err != nil {
		return nil, diag, err
	}

	periods := make([]domain.Period, 0, len(rows))
	for _, record := range rows {
		id, _ := fieldValue(record, refs, "id")
		if id == "" {
			diag.MissingIDRows++
			continue
		}
		name, _ := fieldValue(record, refs, "periodname")
		periods = append(periods, domain.Period{
			ID:         id,
			Name:       name,
			FiscalYear: atoiOrZero(record, refs, "fiscalyear"),
			Quarter:    atoiOrZero(record, refs, "quarter"),
			Month:      atoiOrZero(record, refs, "month"),
		})
	}
	return periods, diag, nil
}

func atoiOrZero(record []string, refs map[string]columnRef, canonical string) int {
	raw, ok := fieldValue(record, refs, canonical)
	if !ok {
		return 0
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0
	}
	return n
}
