package usecase

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/Abhigautam23/netsuite-financial-validator/internal/domain"
)

// ReportingUseCase orchestrates the ledger reporting pipeline: load the
// export tables, build the denormalized fact relation, filter it, and
// derive the financial statements. Every method is a pure function of its
// inputs, so one usecase may serve any number of independent datasets
// concurrently.
type ReportingUseCase struct {
	repo LedgerRepository
}

// NewReportingUseCase creates a new instance of the usecase.
func NewReportingUseCase(repo LedgerRepository) *ReportingUseCase {
	return &ReportingUseCase{repo: repo}
}

// Load reads all export tables into a typed dataset. SchemaError and
// LoadError abort the load; row-level coercion failures accumulate in the
// dataset diagnostics and never do.
func (uc *ReportingUseCase) Load(ctx context.Context, paths LedgerFilePaths) (*domain.LedgerDataset, error) {
	ds := &domain.LedgerDataset{}

	accounts, diag, err := uc.repo.GetAccounts(ctx, paths.Account)
	if err != nil {
		return nil, fmt.Errorf("could not load accounts: %w", err)
	}
	ds.Accounts = accounts
	ds.Diagnostics.Merge(diag)

	subsidiaries, diag, err := uc.repo.GetSubsidiaries(ctx, paths.Subsidiary)
	if err != nil {
		return nil, fmt.Errorf("could not load subsidiaries: %w", err)
	}
	ds.Subsidiaries = subsidiaries
	ds.Diagnostics.Merge(diag)

	transactions, diag, err := uc.repo.GetTransactions(ctx, paths.Transaction)
	if err != nil {
		return nil, fmt.Errorf("could not load transactions: %w", err)
	}
	ds.Transactions = transactions
	ds.Diagnostics.Merge(diag)

	transactionLines, diag, err := uc.repo.GetTransactionLines(ctx, paths.TransactionLine)
	if err != nil {
		return nil, fmt.Errorf("could not load transaction lines: %w", err)
	}
	ds.TransactionLines = transactionLines
	ds.Diagnostics.Merge(diag)

	accountingLines, diag, err := uc.repo.GetAccountingLines(ctx, paths.AccountingLine)
	if err != nil {
		return nil, fmt.Errorf("could not load accounting lines: %w", err)
	}
	ds.AccountingLines = accountingLines
	ds.Diagnostics.Merge(diag)

	if paths.Period != "" {
		periods, diag, err := uc.repo.GetPeriods(ctx, paths.Period)
		if err != nil {
			return nil, fmt.Errorf("could not load accounting periods: %w", err)
		}
		ds.Periods = periods
		ds.HasPeriods = true
		ds.Diagnostics.Merge(diag)
	}

	ds.Stats = domain.LoadStats{
		Accounts:         len(ds.Accounts),
		Subsidiaries:     len(ds.Subsidiaries),
		Transactions:     len(ds.Transactions),
		TransactionLines: len(ds.TransactionLines),
		AccountingLines:  len(ds.AccountingLines),
		Periods:          len(ds.Periods),
	}
	ds.Stats.TotalRows = ds.Stats.Transactions + ds.Stats.TransactionLines + ds.Stats.AccountingLines

	return ds, nil
}

// BuildLedgerFacts produces the denormalized fact relation via the
// left-outer join chain: accounting line, account, transaction lines
// (fanning out one fact per line), subsidiary, transaction header,
// period. Unmatched foreign keys never drop a row; they yield unresolved
// references that reports surface as "Unknown". A transaction with zero
// lines still produces one fact with an unresolved subsidiary.
func (uc *ReportingUseCase) BuildLedgerFacts(ds *domain.LedgerDataset) []domain.LedgerFact {
	accountsByID := make(map[string]*domain.Account, len(ds.Accounts))
	for i := range ds.Accounts {
		accountsByID[ds.Accounts[i].ID] = &ds.Accounts[i]
	}
	subsidiariesByID := make(map[string]*domain.Subsidiary, len(ds.Subsidiaries))
	for i := range ds.Subsidiaries {
		subsidiariesByID[ds.Subsidiaries[i].ID] = &ds.Subsidiaries[i]
	}
	transactionsByID := make(map[string]*domain.Transaction, len(ds.Transactions))
	for i := range ds.Transactions {
		transactionsByID[ds.Transactions[i].ID] = &ds.Transactions[i]
	}
	periodsByID := make(map[string]*domain.Period, len(ds.Periods))
	for i := range ds.Periods {
		periodsByID[ds.Periods[i].ID] = &ds.Periods[i]
	}
	linesByTransaction := make(map[string][]domain.TransactionLine, len(ds.Transactions))
	for _, line := range ds.TransactionLines {
		linesByTransaction[line.TransactionID] = append(linesByTransaction[line.TransactionID], line)
	}

	facts := make([]domain.LedgerFact, 0, len(ds.AccountingLines))
	for _, al := range ds.AccountingLines {
		accountRef := domain.AccountRef{Account: accountsByID[al.AccountID], RawID: al.AccountID}

		var date *time.Time
		posting := true
		var period *domain.Period
		if tx := transactionsByID[al.TransactionID]; tx != nil {
			date = tx.Date
			posting = tx.Posting
			if tx.PostingPeriod != "" {
				period = periodsByID[tx.PostingPeriod]
			}
		}

		base := domain.LedgerFact{
			Account:         accountRef,
			TransactionID:   al.TransactionID,
			TransactionDate: date,
			Posting:         posting,
			Period:          period,
			Amount:          al.Amount,
			AmountValid:     al.AmountValid,
		}

		lines := linesByTransaction[al.TransactionID]
		if len(lines) == 0 {
			fact := base
			fact.Subsidiary = domain.SubsidiaryRef{}
			facts = append(facts, fact)
			continue
		}
		for _, line := range lines {
			fact := base
			fact.Subsidiary = domain.SubsidiaryRef{Subsidiary: subsidiariesByID[line.SubsidiaryID], RawID: line.SubsidiaryID}
			fact.Department = line.Department
			fact.FannedOut = len(lines) > 1
			facts = append(facts, fact)
		}
	}
	return facts
}

// ApplyFilters returns the facts satisfying the conjunction of all
// constrained criteria. An empty result is valid output, not an error.
func (uc *ReportingUseCase) ApplyFilters(facts []domain.LedgerFact, spec domain.FilterSpec) []domain.LedgerFact {
	filtered := make([]domain.LedgerFact, 0, len(facts))
	for _, fact := range facts {
		if matchesFilter(fact, spec) {
			filtered = append(filtered, fact)
		}
	}
	return filtered
}

func matchesFilter(fact domain.LedgerFact, spec domain.FilterSpec) bool {
	if spec.ExcludeNonPosting && !fact.Posting {
		return false
	}
	if len(spec.Subsidiaries) > 0 && !containsString(spec.Subsidiaries, fact.Subsidiary.ID()) {
		return false
	}
	if len(spec.Periods) > 0 {
		if fact.Period == nil || !containsString(spec.Periods, fact.Period.Name) {
			return false
		}
	}
	if len(spec.Departments) > 0 && !containsString(spec.Departments, fact.Department) {
		return false
	}
	if len(spec.AccountTypes) > 0 && !containsString(spec.AccountTypes, string(fact.Account.Type())) {
		return false
	}
	return true
}

func containsString(values []string, v string) bool {
	for _, value := range values {
		if value == v {
			return true
		}
	}
	return false
}

// AvailableFilterValues lists the distinct filterable values of a dataset
// for populating a filter UI.
func (uc *ReportingUseCase) AvailableFilterValues(ds *domain.LedgerDataset) domain.FilterValues {
	values := domain.FilterValues{
		Subsidiaries: make([]domain.SubsidiaryOption, 0, len(ds.Subsidiaries)),
		Periods:      make([]domain.PeriodOption, 0, len(ds.Periods)),
		Departments:  []string{},
		AccountTypes: []string{},
	}

	for _, sub := range ds.Subsidiaries {
		values.Subsidiaries = append(values.Subsidiaries, domain.SubsidiaryOption{ID: sub.ID, Name: sub.Name})
	}
	sort.Slice(values.Subsidiaries, func(i, j int) bool {
		return values.Subsidiaries[i].Name < values.Subsidiaries[j].Name
	})

	for _, period := range ds.Periods {
		if period.Name == "" {
			continue
		}
		values.Periods = append(values.Periods, domain.PeriodOption{
			Name:       period.Name,
			FiscalYear: period.FiscalYear,
			Quarter:    period.Quarter,
			Month:      period.Month,
		})
	}
	// Most recent first, matching how accountants pick periods.
	sort.Slice(values.Periods, func(i, j int) bool {
		if values.Periods[i].FiscalYear != values.Periods[j].FiscalYear {
			return values.Periods[i].FiscalYear > values.Periods[j].FiscalYear
		}
		return values.Periods[i].Month > values.Periods[j].Month
	})

	departments := make(map[string]struct{})
	for _, line := range ds.TransactionLines {
		if line.Department != "" {
			departments[line.Department] = struct{}{}
		}
	}
	values.Departments = sortedKeys(departments)

	accountTypes := make(map[string]struct{})
	for _, account := range ds.Accounts {
		if account.Type != "" {
			accountTypes[string(account.Type)] = struct{}{}
		}
	}
	values.AccountTypes = sortedKeys(accountTypes)

	return values
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
