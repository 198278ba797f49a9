package web

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/nepdocs/stmtgen/holiday"
	"github.com/nepdocs/stmtgen/statement"
	"github.com/nepdocs/stmtgen/telemetry"
	"github.com/nepdocs/stmtgen/template"
)

// GenerateRequest is the JSON request body for POST /api/statement.
type GenerateRequest struct {
	Template         string          `json:"template"`
	StartDate        string          `json:"start_date"`
	EndDate          string          `json:"end_date"`
	OpeningBalance   decimal.Decimal `json:"opening_balance"`
	TargetBalance    decimal.Decimal `json:"target_balance"`
	InterestRate     decimal.Decimal `json:"interest_rate"`
	TaxRate          decimal.Decimal `json:"tax_rate"`
	TransactionCount int             `json:"transaction_count"`
	MinAmount        decimal.Decimal `json:"min_amount"`
	MaxAmount        decimal.Decimal `json:"max_amount"`

	// Seed makes the generated statement reproducible when set.
	Seed *int64 `json:"seed,omitempty"`
}

// GenerateResponse wraps a generated statement with identifying metadata.
type GenerateResponse struct {
	ID          string    `json:"id"`
	Template    string    `json:"template"`
	Institution string    `json:"institution"`
	Currency    string    `json:"currency"`
	GeneratedAt time.Time `json:"generated_at"`

	*statement.Result
}

// ErrorResponse is the JSON error body for failed requests.
type ErrorResponse struct {
	Errors []string `json:"errors"`
}

// handleGenerate handles POST requests to /api/statement.
func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	var req GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	tmpl, err := template.Get(req.Template)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	cfg, err := req.toConfig(tmpl, s.currentHolidays())
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	var opts []statement.Option
	if req.Seed != nil {
		opts = append(opts, statement.WithSeed(*req.Seed))
	}

	timer := telemetry.StartTimer(r.Context(), "web.generate")
	result, err := statement.GenerateContext(r.Context(), cfg, opts...)
	timer.End()

	if err != nil {
		var validationErrors *statement.ValidationErrors
		if errors.As(err, &validationErrors) {
			writeValidationErrors(w, validationErrors)
			return
		}
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	writeJSON(w, http.StatusOK, &GenerateResponse{
		ID:          uuid.NewString(),
		Template:    tmpl.ID,
		Institution: tmpl.Name,
		Currency:    tmpl.Currency,
		GeneratedAt: time.Now().UTC(),
		Result:      result,
	})
}

// handleTemplates handles GET requests to /api/templates.
func (s *Server) handleTemplates(w http.ResponseWriter, r *http.Request) {
	templates := make([]*template.Template, 0, len(template.IDs()))
	for _, id := range template.IDs() {
		if tmpl, err := template.Get(id); err == nil {
			templates = append(templates, tmpl)
		}
	}

	writeJSON(w, http.StatusOK, templates)
}

// handleHolidays handles GET requests to /api/holidays.
func (s *Server) handleHolidays(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string][]string{
		"dates": s.currentHolidays().Dates(),
	})
}

func (req *GenerateRequest) toConfig(tmpl *template.Template, holidays holiday.Set) (*statement.Config, error) {
	start, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		return nil, fmt.Errorf("invalid start_date %q: %w", req.StartDate, err)
	}
	end, err := time.Parse("2006-01-02", req.EndDate)
	if err != nil {
		return nil, fmt.Errorf("invalid end_date %q: %w", req.EndDate, err)
	}

	cfg := &statement.Config{
		StartDate:        start,
		EndDate:          end,
		OpeningBalance:   req.OpeningBalance,
		TargetBalance:    req.TargetBalance,
		InterestRate:     req.InterestRate,
		TaxRate:          req.TaxRate,
		TransactionCount: req.TransactionCount,
		MinAmount:        req.MinAmount,
		MaxAmount:        req.MaxAmount,
		Holidays:         holidays,
	}
	tmpl.Apply(cfg)

	return cfg, nil
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, &ErrorResponse{Errors: []string{err.Error()}})
}

func writeValidationErrors(w http.ResponseWriter, errs *statement.ValidationErrors) {
	messages := make([]string, len(errs.Errors))
	for i, err := range errs.Errors {
		messages[i] = err.Error()
	}
	writeJSON(w, http.StatusUnprocessableEntity, &ErrorResponse{Errors: messages})
}
