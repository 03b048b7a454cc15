package usecase

import (
	"context"

	"github.com/Abhigautam23/netsuite-financial-validator/internal/domain"
)

// LedgerRepository defines the interface for fetching the NetSuite export
// tables. The usecase layer depends on this interface, not on a concrete
// implementation.
//
//go:generate mockgen -destination=mocks/mock_repository.go -source=interface.go LedgerRepository
type LedgerRepository interface {
	GetAccounts(ctx context.Context, path string) ([]domain.Account, domain.RowDiagnostics, error)
	GetSubsidiaries(ctx context.Context, path string) ([]domain.Subsidiary, domain.RowDiagnostics, error)
	GetTransactions(ctx context.Context, path string) ([]domain.Transaction, domain.RowDiagnostics, error)
	GetTransactionLines(ctx context.Context, path string) ([]domain.TransactionLine, domain.RowDiagnostics, error)
	GetAccountingLines(ctx context.Context, path string) ([]domain.AccountingLine, domain.RowDiagnostics, error)
	GetPeriods(ctx context.Context, path string) ([]domain.Period, domain.RowDiagnostics, error)
}

// LedgerFilePaths names the input files of one upload. Period is optional;
// leave it empty when no accountingperiod export exists.
type LedgerFilePaths struct {
	Account         string
	Subsidiary      string
	Transaction     string
	TransactionLine string
	AccountingLine  string
	Period          string
}
