package statement

import (
	"errors"
	"testing"
	"time"

	"github.com/alecthomas/assert/v2"
	"github.com/shopspring/decimal"

	"github.com/nepdocs/stmtgen/holiday"
)

// date parses an ISO date for tests; it panics on malformed input.
func date(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// testConfig returns a valid baseline configuration covering two interest
// cycles. Individual tests override fields as needed.
func testConfig() *Config {
	return &Config{
		StartDate:              date("2024-01-01"),
		EndDate:                date("2024-06-30"),
		OpeningBalance:         dec("50000"),
		TargetBalance:          dec("425000"),
		InterestRate:           dec("3"),
		TaxRate:                dec("5"),
		TransactionCount:       24,
		MinAmount:              dec("5000"),
		MaxAmount:              dec("90000"),
		DepositDescriptions:    []string{"Cash Deposit", "Salary Transfer", "Remittance Credit"},
		WithdrawalDescriptions: []string{"Cash Withdrawal", "ATM Withdrawal", "Bill Payment"},
		InterestLabel:          "Interest Credit",
		TaxLabel:               "Tax on Interest",
		Holidays:               holiday.NewSet(),
	}
}

func TestGenerate_RowOrderingAndBroughtForward(t *testing.T) {
	result, err := Generate(testConfig(), WithSeed(1))
	assert.NoError(t, err)

	assert.True(t, len(result.Rows) > 0)
	first := result.Rows[0]
	assert.Equal(t, BroughtForwardDescription, first.Description)
	assert.True(t, first.Date.Equal(date("2024-01-01")))
	assert.True(t, first.Balance.Equal(dec("50000")))

	for i := 1; i < len(result.Rows); i++ {
		assert.False(t, result.Rows[i].Date.Before(result.Rows[i-1].Date),
			"rows must be non-decreasing by date")
	}
}

func TestGenerate_BalanceConsistency(t *testing.T) {
	result, err := Generate(testConfig(), WithSeed(2))
	assert.NoError(t, err)

	prev := result.Rows[0].Balance
	for _, row := range result.Rows[1:] {
		expected := prev.Add(row.Credit).Sub(row.Debit)
		assert.True(t, row.Balance.Equal(expected),
			"running balance mismatch on %s %q: got %s, want %s",
			row.Date.Format("2006-01-02"), row.Description, row.Balance, expected)
		prev = row.Balance
	}
}

func TestGenerate_TotalsConsistency(t *testing.T) {
	cfg := testConfig()
	result, err := Generate(cfg, WithSeed(3))
	assert.NoError(t, err)

	expected := cfg.OpeningBalance.Add(result.TotalCredit).Sub(result.TotalDebit)
	assert.True(t, result.FinalBalance.Equal(expected))
	assert.False(t, result.TotalDebit.IsNegative())
	assert.False(t, result.TotalCredit.IsNegative())
}

func TestGenerate_ConvergesToTarget(t *testing.T) {
	cfg := testConfig()
	result, err := Generate(cfg, WithSeed(4))
	assert.NoError(t, err)

	assert.True(t, result.Converged, "expected convergence, gap was %s after %d iterations",
		result.Gap, result.Iterations)
	assert.True(t, result.FinalBalance.Sub(cfg.TargetBalance).Abs().LessThan(dec("0.01")))
	assert.True(t, result.Iterations <= 10)
}

func TestGenerate_Reproducible(t *testing.T) {
	a, err := Generate(testConfig(), WithSeed(42))
	assert.NoError(t, err)
	b, err := Generate(testConfig(), WithSeed(42))
	assert.NoError(t, err)

	assert.Equal(t, len(a.Rows), len(b.Rows))
	for i := range a.Rows {
		assert.True(t, a.Rows[i].Date.Equal(b.Rows[i].Date))
		assert.Equal(t, a.Rows[i].Description, b.Rows[i].Description)
		assert.True(t, a.Rows[i].Balance.Equal(b.Rows[i].Balance))
	}
	assert.True(t, a.FinalBalance.Equal(b.FinalBalance))
}

func TestGenerate_InvalidConfig(t *testing.T) {
	cfg := testConfig()
	cfg.StartDate = date("2024-12-31")
	cfg.EndDate = date("2024-01-01")

	_, err := Generate(cfg)
	assert.Error(t, err)

	var validationErrors *ValidationErrors
	assert.True(t, errors.As(err, &validationErrors))
	assert.Equal(t, 1, len(validationErrors.Errors))
}
