package web

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/alecthomas/assert/v2"
)

func testServer() *Server {
	s := New(0, "")
	s.sseClients = make(map[chan string]struct{})
	return s
}

func TestHandleGenerate(t *testing.T) {
	body := `{
		"template": "nabil",
		"start_date": "2024-01-01",
		"end_date": "2024-06-30",
		"opening_balance": "50000",
		"target_balance": "425000",
		"interest_rate": "3",
		"tax_rate": "5",
		"transaction_count": 24,
		"min_amount": "5000",
		"max_amount": "90000",
		"seed": 42
	}`

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/statement", strings.NewReader(body))
	testServer().router().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp GenerateResponse
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotZero(t, resp.ID)
	assert.Equal(t, "nabil", resp.Template)
	assert.Equal(t, "Nabil Bank Limited", resp.Institution)
	assert.True(t, len(resp.Rows) > 0)
	assert.True(t, resp.Converged)
}

func TestHandleGenerateReproducibleWithSeed(t *testing.T) {
	body := `{
		"template": "sanima",
		"start_date": "2024-01-01",
		"end_date": "2024-03-31",
		"opening_balance": "10000",
		"target_balance": "90000",
		"interest_rate": "0",
		"tax_rate": "0",
		"transaction_count": 10,
		"min_amount": "1000",
		"max_amount": "20000",
		"seed": 7
	}`

	run := func() *GenerateResponse {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/statement", strings.NewReader(body))
		testServer().router().ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)

		var resp GenerateResponse
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		return &resp
	}

	a, b := run(), run()
	assert.Equal(t, len(a.Rows), len(b.Rows))
	assert.True(t, a.FinalBalance.Equal(b.FinalBalance))
}

func TestHandleGenerateUnknownTemplate(t *testing.T) {
	body := `{"template": "no-such-bank", "start_date": "2024-01-01", "end_date": "2024-06-30"}`

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/statement", strings.NewReader(body))
	testServer().router().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleGenerateValidationErrors(t *testing.T) {
	// Inverted date range and inverted amount bounds: both problems must
	// come back in one response.
	body := `{
		"template": "nabil",
		"start_date": "2024-06-30",
		"end_date": "2024-01-01",
		"opening_balance": "0",
		"target_balance": "1000",
		"transaction_count": 5,
		"min_amount": "9000",
		"max_amount": "100"
	}`

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/statement", strings.NewReader(body))
	testServer().router().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var resp ErrorResponse
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 2, len(resp.Errors))
}

func TestHandleTemplates(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/templates", nil)
	testServer().router().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), "Nabil Bank Limited"))
}

func TestHandleIndex(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	testServer().router().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), "Statement preview"))

	rec = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/nope", nil)
	testServer().router().ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
