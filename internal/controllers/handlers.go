package controllers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/gorilla/mux"
	"github.com/labstack/gommon/log"

	"github.com/Abhigautam23/netsuite-financial-validator/internal/domain"
	"github.com/Abhigautam23/netsuite-financial-validator/internal/gateway"
	"github.com/Abhigautam23/netsuite-financial-validator/internal/usecase"
)

const maxUploadBytes = 256 << 20 // whole upload is buffered in memory

// uploadField maps a multipart form field to the file it supplies.
var uploadFields = []struct {
	name     string
	required bool
}{
	{name: "account", required: true},
	{name: "subsidiary", required: true},
	{name: "transaction", required: true},
	{name: "transactionline", required: true},
	{name: "transactionaccountingline", required: true},
	{name: "accountingperiod"},
}

type uploadResponse struct {
	UploadID    string                `json:"upload_id"`
	Stats       domain.LoadStats      `json:"stats"`
	Diagnostics domain.RowDiagnostics `json:"diagnostics"`
	FactCount   int                   `json:"fact_count"`
}

// CreateUpload ingests one set of NetSuite export CSVs, builds the ledger
// fact relation, and opens a report session for it.
func (a *App) CreateUpload(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		respondError(w, http.StatusBadRequest, "invalid multipart upload: "+err.Error())
		return
	}

	dir, err := os.MkdirTemp("", "ledger-upload-*")
	if err != nil {
		log.Errorf("[Upload] Could not create temp dir: %v", err)
		respondError(w, http.StatusInternalServerError, "could not stage upload")
		return
	}
	// The dataset is fully buffered before responding, so the staged
	// files can go immediately.
	defer os.RemoveAll(dir)

	var paths usecase.LedgerFilePaths
	targets := map[string]*string{
		"account":                   &paths.Account,
		"subsidiary":                &paths.Subsidiary,
		"transaction":               &paths.Transaction,
		"transactionline":           &paths.TransactionLine,
		"transactionaccountingline": &paths.AccountingLine,
		"accountingperiod":          &paths.Period,
	}
	for _, field := range uploadFields {
		path, found, err := a.stageUploadFile(r, dir, field.name)
		if err != nil {
			respondError(w, http.StatusBadRequest, "reading file "+field.name+": "+err.Error())
			return
		}
		if !found {
			if field.required {
				respondError(w, http.StatusBadRequest, "missing required file "+field.name)
				return
			}
			continue
		}
		*targets[field.name] = path
	}

	ds, err := a.uc.Load(r.Context(), paths)
	if err != nil {
		var schemaErr *domain.SchemaError
		var loadErr *domain.LoadError
		if errors.As(err, &schemaErr) || errors.As(err, &loadErr) {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		log.Errorf("[Upload] Load failed: %v", err)
		respondError(w, http.StatusInternalServerError, "could not load dataset")
		return
	}

	facts := a.uc.BuildLedgerFacts(ds)
	session := a.sessions.put(ds, facts)
	log.Infof("[Upload] Session %s: %d facts from %d rows", session.ID, len(facts), ds.Stats.TotalRows)

	respondJSON(w, http.StatusCreated, uploadResponse{
		UploadID:    session.ID,
		Stats:       ds.Stats,
		Diagnostics: ds.Diagnostics,
		FactCount:   len(facts),
	})
}

func (a *App) stageUploadFile(r *http.Request, dir, field string) (string, bool, error) {
	file, _, err := r.FormFile(field)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return "", false, nil
		}
		return "", false, err
	}
	defer file.Close()

	path := filepath.Join(dir, field+".csv")
	dst, err := os.Create(path)
	if err != nil {
		return "", false, err
	}
	defer dst.Close()
	if _, err := io.Copy(dst, file); err != nil {
		return "", false, err
	}
	return path, true, nil
}

// GetFilterValues returns the distinct filterable values of a session's
// dataset, for populating filter controls.
func (a *App) GetFilterValues(w http.ResponseWriter, r *http.Request) {
	session, ok := a.sessions.get(mux.Vars(r)["id"])
	if !ok {
		respondError(w, http.StatusNotFound, "upload not found")
		return
	}
	respondJSON(w, http.StatusOK, a.uc.AvailableFilterValues(session.Dataset))
}

// GetValidation returns the data-quality summary over the session's full
// (unfiltered) fact relation.
func (a *App) GetValidation(w http.ResponseWriter, r *http.Request) {
	session, ok := a.sessions.get(mux.Vars(r)["id"])
	if !ok {
		respondError(w, http.StatusNotFound, "upload not found")
		return
	}
	respondJSON(w, http.StatusOK, a.uc.Validate(session.Facts))
}

// GetReport generates one report over the session's facts with the
// query-string filters applied. format=csv streams the CSV serialization;
// the default is JSON.
func (a *App) GetReport(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	session, ok := a.sessions.get(vars["id"])
	if !ok {
		respondError(w, http.StatusNotFound, "upload not found")
		return
	}

	spec := filterSpecFromQuery(r)
	facts := a.uc.ApplyFilters(session.Facts, spec)
	asCSV := r.URL.Query().Get("format") == "csv"

	switch vars["report"] {
	case "trial-balance":
		report := a.uc.TrialBalance(facts)
		if asCSV {
			respondCSV(w, "trial_balance.csv", func(w io.Writer) error {
				return gateway.WriteTrialBalanceCSV(w, report)
			})
			return
		}
		respondJSON(w, http.StatusOK, report)

	case "profit-and-loss":
		report := a.uc.ProfitAndLoss(facts)
		if asCSV {
			respondCSV(w, "profit_and_loss.csv", func(w io.Writer) error {
				return gateway.WritePnLCSV(w, report)
			})
			return
		}
		respondJSON(w, http.StatusOK, report)

	case "pnl-periodized":
		granularity := r.URL.Query().Get("granularity")
		if granularity == "" {
			granularity = string(domain.GranularityMonth)
		}
		parsed, err := domain.ParseGranularity(granularity)
		if err != nil {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		report, err := a.uc.PeriodizedPnL(session.Dataset, facts, parsed)
		if err != nil {
			if errors.Is(err, domain.ErrPeriodDataUnavailable) {
				respondError(w, http.StatusUnprocessableEntity, err.Error())
				return
			}
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		if asCSV {
			respondCSV(w, "pnl_"+granularity+".csv", func(w io.Writer) error {
				return gateway.WritePeriodizedPnLCSV(w, *report)
			})
			return
		}
		respondJSON(w, http.StatusOK, report)

	case "balance-sheet":
		report := a.uc.BalanceSheet(facts)
		if asCSV {
			respondCSV(w, "balance_sheet.csv", func(w io.Writer) error {
				return gateway.WriteBalanceSheetCSV(w, report)
			})
			return
		}
		respondJSON(w, http.StatusOK, report)

	default:
		respondError(w, http.StatusNotFound, "unknown report "+vars["report"])
	}
}

func filterSpecFromQuery(r *http.Request) domain.FilterSpec {
	query := r.URL.Query()
	return domain.FilterSpec{
		Subsidiaries:      query["subsidiary"],
		Periods:           query["period"],
		Departments:       query["department"],
		AccountTypes:      query["accountType"],
		ExcludeNonPosting: query.Get("excludeNonPosting") == "true",
	}
}

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Errorf("[Response] Encoding failed: %v", err)
	}
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

func respondCSV(w http.ResponseWriter, filename string, write func(io.Writer) error) {
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	if err := write(w); err != nil {
		log.Errorf("[Response] CSV write failed: %v", err)
	}
}
