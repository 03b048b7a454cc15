package usecase

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/Abhigautam23/netsuite-financial-validator/internal/domain"
)

// equationEpsilon is the tolerance for the accounting-equation check.
var equationEpsilon = decimal.RequireFromString("0.01")

// TrialBalance groups the facts by (subsidiary, account, account type)
// and sums amounts, rounded to two decimals. Only accounts with at least
// one matching fact appear; invalid amounts stay out of the sums.
func (uc *ReportingUseCase) TrialBalance(facts []domain.LedgerFact) domain.TrialBalanceReport {
	type key struct {
		subsidiary  string
		account     string
		accountType domain.AccountType
	}
	sums := make(map[key]decimal.Decimal)
	for _, fact := range facts {
		if !fact.AmountValid {
			continue
		}
		k := key{fact.Subsidiary.DisplayName(), fact.Account.DisplayName(), fact.Account.Type()}
		sums[k] = sums[k].Add(fact.Amount)
	}

	report := domain.TrialBalanceReport{Rows: make([]domain.TrialBalanceRow, 0, len(sums))}
	for k, total := range sums {
		report.Rows = append(report.Rows, domain.TrialBalanceRow{
			SubsidiaryName: k.subsidiary,
			AccountName:    k.account,
			AccountType:    k.accountType,
			TotalAmount:    total.Round(2),
		})
	}
	sort.Slice(report.Rows, func(i, j int) bool {
		a, b := report.Rows[i], report.Rows[j]
		if a.SubsidiaryName != b.SubsidiaryName {
			return a.SubsidiaryName < b.SubsidiaryName
		}
		if a.AccountName != b.AccountName {
			return a.AccountName < b.AccountName
		}
		return a.AccountType < b.AccountType
	})

	for _, row := range report.Rows {
		if row.TotalAmount.IsPositive() {
			report.TotalDebits = report.TotalDebits.Add(row.TotalAmount)
		} else if row.TotalAmount.IsNegative() {
			report.TotalCredits = report.TotalCredits.Add(row.TotalAmount.Abs())
		}
	}
	return report
}

// ProfitAndLoss restricts the facts to P&L account types and groups them
// by (subsidiary, account type). Amounts follow the debit-positive source
// convention, so revenue sums arrive negative; they are negated here so
// income reads positive while expense sums pass through as-is.
func (uc *ReportingUseCase) ProfitAndLoss(facts []domain.LedgerFact) domain.PnLReport {
	type key struct {
		subsidiary  string
		accountType domain.AccountType
	}
	sums := make(map[key]decimal.Decimal)
	for _, fact := range facts {
		accountType := fact.Account.Type()
		if !accountType.IsProfitAndLoss() || !fact.AmountValid {
			continue
		}
		k := key{fact.Subsidiary.DisplayName(), accountType}
		sums[k] = sums[k].Add(fact.Amount)
	}

	report := domain.PnLReport{Rows: make([]domain.PnLRow, 0, len(sums))}
	for k, total := range sums {
		if k.accountType.IsRevenue() {
			total = total.Neg()
		}
		report.Rows = append(report.Rows, domain.PnLRow{
			SubsidiaryName: k.subsidiary,
			AccountType:    k.accountType,
			TotalAmount:    total.Round(2),
		})
	}
	sort.Slice(report.Rows, func(i, j int) bool {
		a, b := report.Rows[i], report.Rows[j]
		if a.SubsidiaryName != b.SubsidiaryName {
			return a.SubsidiaryName < b.SubsidiaryName
		}
		return a.AccountType < b.AccountType
	})

	for _, row := range report.Rows {
		if row.AccountType.IsRevenue() {
			report.Revenue = report.Revenue.Add(row.TotalAmount)
		} else {
			report.Expenses = report.Expenses.Add(row.TotalAmount)
		}
	}
	report.NetIncome = report.Revenue.Sub(report.Expenses)
	if !report.Revenue.IsZero() {
		margin := report.NetIncome.Div(report.Revenue).Mul(decimal.NewFromInt(100)).Round(2)
		report.ProfitMarginPct = &margin
	}
	return report
}

// PeriodizedPnL pivots the P&L by accounting period at the requested
// granularity: rows are account types, columns period labels, cells the
// sign-adjusted sums. It fails with ErrPeriodDataUnavailable when the
// dataset was loaded without the optional accountingperiod table; an
// empty fact relation with periods available yields an empty pivot.
func (uc *ReportingUseCase) PeriodizedPnL(ds *domain.LedgerDataset, facts []domain.LedgerFact, granularity domain.Granularity) (*domain.PeriodizedPnLReport, error) {
	if ds == nil || !ds.HasPeriods {
		return nil, domain.ErrPeriodDataUnavailable
	}
	if _, err := domain.ParseGranularity(string(granularity)); err != nil {
		return nil, err
	}

	type bucket struct {
		year    int
		quarter int
		month   int
	}
	type cellKey struct {
		accountType domain.AccountType
		bucket      bucket
	}

	bucketFor := func(p *domain.Period) bucket {
		switch granularity {
		case domain.GranularityMonth:
			return bucket{year: p.FiscalYear, month: p.Month}
		case domain.GranularityQuarter:
			return bucket{year: p.FiscalYear, quarter: p.Quarter}
		default:
			return bucket{year: p.FiscalYear}
		}
	}

	sums := make(map[cellKey]decimal.Decimal)
	buckets := make(map[bucket]struct{})
	accountTypes := make(map[domain.AccountType]struct{})
	unperiodized := 0

	for _, fact := range facts {
		accountType := fact.Account.Type()
		if !accountType.IsProfitAndLoss() || !fact.AmountValid {
			continue
		}
		if fact.Period == nil {
			unperiodized++
			continue
		}
		b := bucketFor(fact.Period)
		amount := fact.Amount
		if accountType.IsRevenue() {
			amount = amount.Neg()
		}
		k := cellKey{accountType: accountType, bucket: b}
		sums[k] = sums[k].Add(amount)
		buckets[b] = struct{}{}
		accountTypes[accountType] = struct{}{}
	}

	orderedBuckets := make([]bucket, 0, len(buckets))
	for b := range buckets {
		orderedBuckets = append(orderedBuckets, b)
	}
	sort.Slice(orderedBuckets, func(i, j int) bool {
		a, b := orderedBuckets[i], orderedBuckets[j]
		if a.year != b.year {
			return a.year < b.year
		}
		if a.quarter != b.quarter {
			return a.quarter < b.quarter
		}
		return a.month < b.month
	})

	report := &domain.PeriodizedPnLReport{
		Granularity:       granularity,
		Columns:           make([]domain.PeriodColumn, 0, len(orderedBuckets)),
		Rows:              make([]domain.PeriodizedPnLRow, 0, len(accountTypes)),
		UnperiodizedFacts: unperiodized,
	}
	for _, b := range orderedBuckets {
		var label string
		switch granularity {
		case domain.GranularityMonth:
			label = fmt.Sprintf("FY%d M%02d", b.year, b.month)
		case domain.GranularityQuarter:
			label = fmt.Sprintf("FY%d Q%d", b.year, b.quarter)
		default:
			label = fmt.Sprintf("FY%d", b.year)
		}
		report.Columns = append(report.Columns, domain.PeriodColumn{
			Label:      label,
			FiscalYear: b.year,
			Quarter:    b.quarter,
			Month:      b.month,
		})
	}

	orderedTypes := make([]domain.AccountType, 0, len(accountTypes))
	for t := range accountTypes {
		orderedTypes = append(orderedTypes, t)
	}
	sort.Slice(orderedTypes, func(i, j int) bool { return orderedTypes[i] < orderedTypes[j] })

	for _, accountType := range orderedTypes {
		row := domain.PeriodizedPnLRow{
			AccountType: accountType,
			Cells:       make([]decimal.Decimal, len(orderedBuckets)),
		}
		for i, b := range orderedBuckets {
			row.Cells[i] = sums[cellKey{accountType: accountType, bucket: b}].Round(2)
		}
		report.Rows = append(report.Rows, row)
	}
	return report, nil
}

// BalanceSheet restricts the facts to balance-sheet account types and
// groups them by (subsidiary, account type, account). Row amounts keep
// the raw debit-positive sign; section totals present liabilities and
// equity as natural credit balances so the accounting equation reads
// Assets = Liabilities + Equity directly.
func (uc *ReportingUseCase) BalanceSheet(facts []domain.LedgerFact) domain.BalanceSheetReport {
	type key struct {
		subsidiary  string
		accountType domain.AccountType
		account     string
	}
	sums := make(map[key]decimal.Decimal)
	for _, fact := range facts {
		accountType := fact.Account.Type()
		if !accountType.IsBalanceSheet() || !fact.AmountValid {
			continue
		}
		k := key{fact.Subsidiary.DisplayName(), accountType, fact.Account.DisplayName()}
		sums[k] = sums[k].Add(fact.Amount)
	}

	rows := make([]domain.BalanceSheetRow, 0, len(sums))
	for k, total := range sums {
		rows = append(rows, domain.BalanceSheetRow{
			SubsidiaryName: k.subsidiary,
			AccountName:    k.account,
			AccountType:    k.accountType,
			TotalAmount:    total.Round(2),
		})
	}
	sort.Slice(rows, func(i, j int) bool {
		a, b := rows[i], rows[j]
		if a.SubsidiaryName != b.SubsidiaryName {
			return a.SubsidiaryName < b.SubsidiaryName
		}
		if a.AccountType != b.AccountType {
			return a.AccountType < b.AccountType
		}
		return a.AccountName < b.AccountName
	})

	report := domain.BalanceSheetReport{
		Assets:      []domain.BalanceSheetRow{},
		Liabilities: []domain.BalanceSheetRow{},
		Equity:      []domain.BalanceSheetRow{},
	}
	for _, row := range rows {
		switch {
		case row.AccountType.IsAsset():
			report.Assets = append(report.Assets, row)
			report.TotalAssets = report.TotalAssets.Add(row.TotalAmount)
		case row.AccountType.IsLiability():
			report.Liabilities = append(report.Liabilities, row)
			report.TotalLiabilities = report.TotalLiabilities.Add(row.TotalAmount)
		default:
			report.Equity = append(report.Equity, row)
			report.TotalEquity = report.TotalEquity.Add(row.TotalAmount)
		}
	}
	// Present liabilities and equity as natural credit balances.
	report.TotalLiabilities = report.TotalLiabilities.Neg()
	report.TotalEquity = report.TotalEquity.Neg()

	report.Equations = subsidiaryEquations(facts)
	return report
}

// subsidiaryEquations checks Assets = Liabilities + Equity per subsidiary.
// A deviation is a warning carried in the result, not an error: ledgers
// from incomplete exports are expected to be out of balance.
func subsidiaryEquations(facts []domain.LedgerFact) []domain.SubsidiaryEquation {
	type totals struct {
		assets      decimal.Decimal
		liabilities decimal.Decimal
		equity      decimal.Decimal
	}
	bySubsidiary := make(map[string]*totals)
	for _, fact := range facts {
		accountType := fact.Account.Type()
		if !accountType.IsBalanceSheet() || !fact.AmountValid {
			continue
		}
		name := fact.Subsidiary.DisplayName()
		t := bySubsidiary[name]
		if t == nil {
			t = &totals{}
			bySubsidiary[name] = t
		}
		switch {
		case accountType.IsAsset():
			t.assets = t.assets.Add(fact.Amount)
		case accountType.IsLiability():
			t.liabilities = t.liabilities.Add(fact.Amount)
		default:
			t.equity = t.equity.Add(fact.Amount)
		}
	}

	names := make([]string, 0, len(bySubsidiary))
	for name := range bySubsidiary {
		names = append(names, name)
	}
	sort.Strings(names)

	equations := make([]domain.SubsidiaryEquation, 0, len(names))
	for _, name := range names {
		t := bySubsidiary[name]
		assets := t.assets.Round(2)
		liabilities := t.liabilities.Neg().Round(2)
		equity := t.equity.Neg().Round(2)
		delta := assets.Sub(liabilities.Add(equity))
		equations = append(equations, domain.SubsidiaryEquation{
			SubsidiaryName: name,
			Assets:         assets,
			Liabilities:    liabilities,
			Equity:         equity,
			Delta:          delta,
			Balanced:       delta.Abs().LessThanOrEqual(equationEpsilon),
		})
	}
	return equations
}

// Validate computes data-quality metrics over a fact relation. It is
// read-only and never fails; all-zero counts are a valid result.
func (uc *ReportingUseCase) Validate(facts []domain.LedgerFact) domain.ValidationReport {
	report := domain.ValidationReport{Equations: subsidiaryEquations(facts)}

	postingByTransaction := make(map[string]bool)
	for _, fact := range facts {
		if !fact.Account.Resolved() {
			report.UnknownAccountFacts++
		}
		if !fact.Subsidiary.Resolved() {
			report.UnknownSubsidiaryFacts++
		}
		if !fact.AmountValid {
			report.InvalidAmountFacts++
		}
		if fact.FannedOut {
			report.FannedOutFacts++
		}
		postingByTransaction[fact.TransactionID] = fact.Posting
	}

	report.TotalTransactions = len(postingByTransaction)
	for _, posting := range postingByTransaction {
		if posting {
			report.PostingTransactions++
		} else {
			report.NonPostingTransactions++
		}
	}
	return report
}
