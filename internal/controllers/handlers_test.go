package controllers

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sampleCSVs = map[string]string{
	"account": "id,fullname,accttype\n" +
		"1000,Cash,Bank\n" +
		"2000,Accounts Payable,AcctPay\n" +
		"3000,Common Stock,Equity\n" +
		"4000,Sales,Income\n",
	"subsidiary": "id,name\n" +
		"S1,US HQ\n",
	"transaction": "id,trandate,postingperiod,posting\n" +
		"T1,2024-03-15,P202403,true\n" +
		"T2,2024-03-20,P202403,true\n",
	"transactionline": "transaction,subsidiary,department\n" +
		"T1,S1,100\n" +
		"T2,S1,100\n",
	"transactionaccountingline": "transaction,account,amount\n" +
		"T1,1000,1000.00\n" +
		"T1,3000,-1000.00\n" +
		"T2,1000,50.00\n" +
		"T2,4000,-50.00\n",
	"accountingperiod": "id,periodname,fiscalyear,quarter,month\n" +
		"P202403,Mar 2024,2024,1,3\n",
}

func newTestApp() *App {
	app := &App{}
	app.Initialize()
	return app
}

func executeRequest(app *App, req *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	app.Router.ServeHTTP(rr, req)
	return rr
}

// multipartUpload builds a multipart request body from field name to CSV
// content.
func multipartUpload(t *testing.T, files map[string]string) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	for field, content := range files {
		part, err := writer.CreateFormFile(field, field+".csv")
		require.NoError(t, err)
		_, err = part.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())
	return body, writer.FormDataContentType()
}

func uploadDataset(t *testing.T, app *App, files map[string]string) string {
	t.Helper()
	body, contentType := multipartUpload(t, files)
	req := httptest.NewRequest(http.MethodPost, "/api/uploads", body)
	req.Header.Set("Content-Type", contentType)

	rr := executeRequest(app, req)
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())

	var resp struct {
		UploadID string `json:"upload_id"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.UploadID)
	return resp.UploadID
}

func TestCreateUpload(t *testing.T) {
	app := newTestApp()

	t.Run("full upload opens a session", func(t *testing.T) {
		body, contentType := multipartUpload(t, sampleCSVs)
		req := httptest.NewRequest(http.MethodPost, "/api/uploads", body)
		req.Header.Set("Content-Type", contentType)

		rr := executeRequest(app, req)
		require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())

		var resp map[string]interface{}
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.NotEmpty(t, resp["upload_id"])
		assert.EqualValues(t, 4, resp["fact_count"])
	})

	t.Run("missing required file is rejected", func(t *testing.T) {
		partial := map[string]string{}
		for field, content := range sampleCSVs {
			if field != "transaction" {
				partial[field] = content
			}
		}
		body, contentType := multipartUpload(t, partial)
		req := httptest.NewRequest(http.MethodPost, "/api/uploads", body)
		req.Header.Set("Content-Type", contentType)

		rr := executeRequest(app, req)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Contains(t, rr.Body.String(), "transaction")
	})

	t.Run("schema violation is a client error", func(t *testing.T) {
		broken := map[string]string{}
		for field, content := range sampleCSVs {
			broken[field] = content
		}
		broken["account"] = "fullname,accttype\nCash,Bank\n"

		body, contentType := multipartUpload(t, broken)
		req := httptest.NewRequest(http.MethodPost, "/api/uploads", body)
		req.Header.Set("Content-Type", contentType)

		rr := executeRequest(app, req)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Contains(t, rr.Body.String(), "id")
	})
}

func TestGetReport(t *testing.T) {
	app := newTestApp()
	uploadID := uploadDataset(t, app, sampleCSVs)

	t.Run("trial balance as JSON", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/uploads/"+uploadID+"/reports/trial-balance", nil)
		rr := executeRequest(app, req)
		require.Equal(t, http.StatusOK, rr.Code)

		var report struct {
			Rows []struct {
				AccountName string `json:"account_name"`
				TotalAmount string `json:"total_amount"`
			} `json:"rows"`
		}
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &report))
		require.Len(t, report.Rows, 3)
		assert.Equal(t, "Cash", report.Rows[0].AccountName)
		assert.Equal(t, "1050", report.Rows[0].TotalAmount)
	})

	t.Run("trial balance as CSV attachment", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/uploads/"+uploadID+"/reports/trial-balance?format=csv", nil)
		rr := executeRequest(app, req)
		require.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "text/csv", rr.Header().Get("Content-Type"))
		assert.Contains(t, rr.Header().Get("Content-Disposition"), "trial_balance.csv")
		assert.True(t, strings.HasPrefix(rr.Body.String(), "subsidiary_name,account_name,account_type,total_amount\n"))
	})

	t.Run("account type filter narrows the report", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/uploads/"+uploadID+"/reports/trial-balance?accountType=Income", nil)
		rr := executeRequest(app, req)
		require.Equal(t, http.StatusOK, rr.Code)

		var report struct {
			Rows []json.RawMessage `json:"rows"`
		}
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &report))
		assert.Len(t, report.Rows, 1)
	})

	t.Run("periodized profit and loss", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/uploads/"+uploadID+"/reports/pnl-periodized?granularity=quarter", nil)
		rr := executeRequest(app, req)
		require.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), "FY2024 Q1")
	})

	t.Run("invalid granularity is rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/uploads/"+uploadID+"/reports/pnl-periodized?granularity=weekly", nil)
		rr := executeRequest(app, req)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("balance sheet carries the equation check", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/uploads/"+uploadID+"/reports/balance-sheet", nil)
		rr := executeRequest(app, req)
		require.Equal(t, http.StatusOK, rr.Code)

		var report struct {
			Equations []struct {
				SubsidiaryName string `json:"subsidiary_name"`
				Balanced       bool   `json:"balanced"`
			} `json:"equations"`
		}
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &report))
		require.Len(t, report.Equations, 1)
		assert.Equal(t, "US HQ", report.Equations[0].SubsidiaryName)
	})

	t.Run("unknown report name", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/uploads/"+uploadID+"/reports/cash-flow", nil)
		rr := executeRequest(app, req)
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("unknown session", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/uploads/nope/reports/trial-balance", nil)
		rr := executeRequest(app, req)
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestGetReport_PeriodizedWithoutPeriodTable(t *testing.T) {
	app := newTestApp()

	withoutPeriods := map[string]string{}
	for field, content := range sampleCSVs {
		if field != "accountingperiod" {
			withoutPeriods[field] = content
		}
	}
	uploadID := uploadDataset(t, app, withoutPeriods)

	req := httptest.NewRequest(http.MethodGet, "/api/uploads/"+uploadID+"/reports/pnl-periodized", nil)
	rr := executeRequest(app, req)
	assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
}

func TestGetFilterValues(t *testing.T) {
	app := newTestApp()
	uploadID := uploadDataset(t, app, sampleCSVs)

	req := httptest.NewRequest(http.MethodGet, "/api/uploads/"+uploadID+"/filters", nil)
	rr := executeRequest(app, req)
	require.Equal(t, http.StatusOK, rr.Code)

	var values struct {
		Subsidiaries []struct {
			ID   string `json:"id"`
			Name string `json:"name"`
		} `json:"subsidiaries"`
		Periods      []json.RawMessage `json:"periods"`
		Departments  []string          `json:"departments"`
		AccountTypes []string          `json:"account_types"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &values))
	require.Len(t, values.Subsidiaries, 1)
	assert.Equal(t, "US HQ", values.Subsidiaries[0].Name)
	assert.Len(t, values.Periods, 1)
	assert.Equal(t, []string{"100"}, values.Departments)
	assert.Equal(t, []string{"AcctPay", "Bank", "Equity", "Income"}, values.AccountTypes)
}

func TestGetValidation(t *testing.T) {
	app := newTestApp()

	// Introduce an orphan account reference so the counts are non-zero.
	dirty := map[string]string{}
	for field, content := range sampleCSVs {
		dirty[field] = content
	}
	dirty["transactionaccountingline"] += "T2,9999,10.00\n"
	uploadID := uploadDataset(t, app, dirty)

	req := httptest.NewRequest(http.MethodGet, "/api/uploads/"+uploadID+"/validation", nil)
	rr := executeRequest(app, req)
	require.Equal(t, http.StatusOK, rr.Code)

	var report struct {
		UnknownAccountFacts int `json:"unknown_account_facts"`
		TotalTransactions   int `json:"total_transactions"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &report))
	assert.Equal(t, 1, report.UnknownAccountFacts)
	assert.Equal(t, 2, report.TotalTransactions)
}
