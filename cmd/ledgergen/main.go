package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// ledgergen writes a synthetic set of NetSuite export CSVs for trying the
// reporter without real data. The output deliberately includes a few
// anomalies (orphan account references, non-posting transactions, one
// unparseable amount) so the validation report has something to say.

type accountDef struct {
	name     string
	acctType string
}

var accountDefs = []accountDef{
	{"Cash - Operating", "Bank"},
	{"Cash - Payroll", "Bank"},
	{"Accounts Receivable", "AcctRec"},
	{"Inventory - Finished Goods", "OthCurrAsset"},
	{"Prepaid Expenses", "OthCurrAsset"},
	{"Equipment", "FixedAsset"},
	{"Accumulated Depreciation", "FixedAsset"},
	{"Long-term Investments", "OthAsset"},
	{"Accounts Payable", "AcctPay"},
	{"Accrued Expenses", "AcctPay"},
	{"Sales Tax Payable", "OthCurrLiab"},
	{"Payroll Liabilities", "OthCurrLiab"},
	{"Long-term Debt", "LongTermLiab"},
	{"Common Stock", "Equity"},
	{"Retained Earnings", "Equity"},
	{"Product Sales", "Income"},
	{"Service Revenue", "Income"},
	{"Interest Income", "OthIncome"},
	{"Cost of Goods Sold - Products", "COGS"},
	{"Freight and Shipping", "COGS"},
	{"Salaries and Wages", "Expense"},
	{"Rent Expense", "Expense"},
	{"Office Supplies", "Expense"},
	{"Bank Fees", "OthExpense"},
}

var subsidiaryNames = []string{
	"US Headquarters", "UK Operations", "Germany GmbH", "France SAS",
	"Canada Inc", "Australia Pty Ltd", "Japan KK", "Singapore Pte Ltd",
}

var departments = []string{"100", "200", "300", "400"}

var monthNames = []string{
	"Jan", "Feb", "Mar", "Apr", "May", "Jun",
	"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
}

func main() {
	outDir := flag.String("out", "sample_data", "Directory to write the CSV files into")
	transactions := flag.Int("transactions", 500, "Number of transactions to generate")
	seed := flag.Int64("seed", 42, "Random seed for reproducible output")
	year := flag.Int("year", 2024, "Fiscal year to generate periods for")
	flag.Parse()

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		log.Fatalf("Could not create output directory: %v", err)
	}
	rng := rand.New(rand.NewSource(*seed))

	writeCSV(*outDir, "subsidiary.csv", subsidiaryRows())
	writeCSV(*outDir, "account.csv", accountRows())
	writeCSV(*outDir, "accountingperiod.csv", periodRows(*year))

	txRows, lineRows, acctLineRows := transactionRows(rng, *transactions, *year)
	writeCSV(*outDir, "transaction.csv", txRows)
	writeCSV(*outDir, "transactionline.csv", lineRows)
	writeCSV(*outDir, "transactionaccountingline.csv", acctLineRows)

	fmt.Printf("Wrote %d transactions across %d subsidiaries to %s\n", *transactions, len(subsidiaryNames), *outDir)
}

func subsidiaryRows() [][]string {
	rows := [][]string{{"id", "name"}}
	for i, name := range subsidiaryNames {
		rows = append(rows, []string{strconv.Itoa(i + 1), name})
	}
	return rows
}

func accountRows() [][]string {
	rows := [][]string{{"id", "fullname", "accttype"}}
	for i, def := range accountDefs {
		rows = append(rows, []string{strconv.Itoa(1000 + i), def.name, def.acctType})
	}
	return rows
}

func periodRows(year int) [][]string {
	rows := [][]string{{"id", "periodname", "fiscalyear", "quarter", "month"}}
	for m := 1; m <= 12; m++ {
		rows = append(rows, []string{
			fmt.Sprintf("P%d%02d", year, m),
			fmt.Sprintf("%s %d", monthNames[m-1], year),
			strconv.Itoa(year),
			strconv.Itoa((m-1)/3 + 1),
			strconv.Itoa(m),
		})
	}
	return rows
}

func transactionRows(rng *rand.Rand, count, year int) (txRows, lineRows, acctLineRows [][]string) {
	txRows = [][]string{{"id", "trandate", "postingperiod", "posting"}}
	lineRows = [][]string{{"transaction", "subsidiary", "department"}}
	acctLineRows = [][]string{{"transaction", "account", "amount"}}

	// Pair each revenue/expense account with a balancing balance-sheet
	// account so most transactions are proper double entries.
	debitCandidates := []int{0, 2, 3, 5, 18, 19, 20, 21, 22, 23}
	creditCandidates := []int{8, 10, 11, 12, 15, 16, 17}

	for i := 1; i <= count; i++ {
		id := strconv.Itoa(i)
		month := rng.Intn(12) + 1
		day := rng.Intn(28) + 1
		date := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)

		posting := "true"
		if rng.Float64() < 0.05 {
			posting = "false"
		}
		txRows = append(txRows, []string{
			id,
			date.Format("2006-01-02"),
			fmt.Sprintf("P%d%02d", year, month),
			posting,
		})

		subsidiary := strconv.Itoa(rng.Intn(len(subsidiaryNames)) + 1)
		department := departments[rng.Intn(len(departments))]
		lineRows = append(lineRows, []string{id, subsidiary, department})
		// Occasional multi-subsidiary allocation.
		if rng.Float64() < 0.1 {
			other := strconv.Itoa(rng.Intn(len(subsidiaryNames)) + 1)
			lineRows = append(lineRows, []string{id, other, department})
		}

		amount := float64(rng.Intn(999000)+1000) / 100
		debit := 1000 + debitCandidates[rng.Intn(len(debitCandidates))]
		credit := 1000 + creditCandidates[rng.Intn(len(creditCandidates))]
		debitAccount := strconv.Itoa(debit)
		if rng.Float64() < 0.01 {
			debitAccount = "9999" // orphan reference, not in the chart of accounts
		}
		acctLineRows = append(acctLineRows, []string{id, debitAccount, fmt.Sprintf("%.2f", amount)})
		acctLineRows = append(acctLineRows, []string{id, strconv.Itoa(credit), fmt.Sprintf("%.2f", -amount)})
	}

	// One unparseable amount so the loader diagnostics are non-zero.
	acctLineRows = append(acctLineRows, []string{"1", "1000", "N/A"})
	return txRows, lineRows, acctLineRows
}

func writeCSV(dir, name string, rows [][]string) {
	path := filepath.Join(dir, name)
	file, err := os.Create(path)
	if err != nil {
		log.Fatalf("Could not create %s: %v", path, err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if err := writer.WriteAll(rows); err != nil {
		log.Fatalf("Could not write %s: %v", path, err)
	}
}
