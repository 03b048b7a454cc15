package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/Abhigautam23/netsuite-financial-validator/internal/domain"
	"github.com/Abhigautam23/netsuite-financial-validator/internal/gateway"
	"github.com/Abhigautam23/netsuite-financial-validator/internal/usecase"
)

func main() {
	// Define command-line flags
	accountFile := flag.String("account", "", "Path to the account CSV file (required)")
	subsidiaryFile := flag.String("subsidiary", "", "Path to the subsidiary CSV file (required)")
	transactionFile := flag.String("transaction", "", "Path to the transaction CSV file (required)")
	transactionLineFile := flag.String("transactionline", "", "Path to the transactionline CSV file (required)")
	accountingLineFile := flag.String("accountingline", "", "Path to the transactionaccountingline CSV file (required)")
	periodFile := flag.String("period", "", "Path to the accountingperiod CSV file (optional)")

	reportName := flag.String("report", "trial-balance", "Report to generate: trial-balance, profit-and-loss, pnl-monthly, pnl-quarterly, pnl-yearly, balance-sheet, validation")
	format := flag.String("format", "json", "Output format: json or csv")

	subsidiaries := flag.String("subsidiaries", "", "Comma-separated subsidiary ids to include (empty = all)")
	periods := flag.String("periods", "", "Comma-separated period names to include (empty = all)")
	departments := flag.String("departments", "", "Comma-separated departments to include (empty = all)")
	accountTypes := flag.String("account-types", "", "Comma-separated account types to include (empty = all)")
	excludeNonPosting := flag.Bool("exclude-nonposting", false, "Exclude non-posting transactions")
	flag.Parse()

	// Validate required flags
	if *accountFile == "" || *subsidiaryFile == "" || *transactionFile == "" || *transactionLineFile == "" || *accountingLineFile == "" {
		fmt.Println("Error: flags -account, -subsidiary, -transaction, -transactionline and -accountingline are required.")
		flag.Usage()
		os.Exit(1)
	}

	// --- Dependency Injection (Wiring the application) ---
	// In a larger app, this might be done with a DI container.
	// Here, we do it manually, which is clear and simple.

	// 1. Create the repository (the outermost layer)
	csvRepo := gateway.NewCSVLedgerRepository()

	// 2. Create the usecase and inject the repository (the core logic layer)
	reportingUseCase := usecase.NewReportingUseCase(csvRepo)

	// --- Execute the pipeline ---
	ctx := context.Background()
	dataset, err := reportingUseCase.Load(ctx, usecase.LedgerFilePaths{
		Account:         *accountFile,
		Subsidiary:      *subsidiaryFile,
		Transaction:     *transactionFile,
		TransactionLine: *transactionLineFile,
		AccountingLine:  *accountingLineFile,
		Period:          *periodFile,
	})
	if err != nil {
		log.Fatalf("Load failed: %v", err)
	}

	facts := reportingUseCase.BuildLedgerFacts(dataset)
	facts = reportingUseCase.ApplyFilters(facts, domain.FilterSpec{
		Subsidiaries:      splitList(*subsidiaries),
		Periods:           splitList(*periods),
		Departments:       splitList(*departments),
		AccountTypes:      splitList(*accountTypes),
		ExcludeNonPosting: *excludeNonPosting,
	})

	// --- Generate and present the requested report ---
	asCSV := *format == "csv"
	switch *reportName {
	case "trial-balance":
		report := reportingUseCase.TrialBalance(facts)
		if asCSV {
			if err := gateway.WriteTrialBalanceCSV(os.Stdout, report); err != nil {
				log.Fatalf("Failed to write CSV: %v", err)
			}
			return
		}
		printJSON(report)

	case "profit-and-loss":
		report := reportingUseCase.ProfitAndLoss(facts)
		if asCSV {
			if err := gateway.WritePnLCSV(os.Stdout, report); err != nil {
				log.Fatalf("Failed to write CSV: %v", err)
			}
			return
		}
		printJSON(report)

	case "pnl-monthly", "pnl-quarterly", "pnl-yearly":
		granularity := map[string]domain.Granularity{
			"pnl-monthly":   domain.GranularityMonth,
			"pnl-quarterly": domain.GranularityQuarter,
			"pnl-yearly":    domain.GranularityYear,
		}[*reportName]
		report, err := reportingUseCase.PeriodizedPnL(dataset, facts, granularity)
		if err != nil {
			log.Fatalf("Periodized P&L failed: %v", err)
		}
		if asCSV {
			if err := gateway.WritePeriodizedPnLCSV(os.Stdout, *report); err != nil {
				log.Fatalf("Failed to write CSV: %v", err)
			}
			return
		}
		printJSON(report)

	case "balance-sheet":
		report := reportingUseCase.BalanceSheet(facts)
		if asCSV {
			if err := gateway.WriteBalanceSheetCSV(os.Stdout, report); err != nil {
				log.Fatalf("Failed to write CSV: %v", err)
			}
			return
		}
		printJSON(report)

	case "validation":
		printJSON(reportingUseCase.Validate(facts))

	default:
		log.Fatalf("Unknown report %q", *reportName)
	}
}

func printJSON(report interface{}) {
	output, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		log.Fatalf("Failed to generate JSON output: %v", err)
	}
	fmt.Println(string(output))
}

func splitList(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	values := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			values = append(values, trimmed)
		}
	}
	return values
}
