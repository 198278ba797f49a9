package statement

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/nepdocs/stmtgen/holiday"
)

// Config describes one statement generation run. It is read-only during
// generation; a single Config can be reused across runs.
type Config struct {
	// StartDate and EndDate bound the statement period. StartDate must not
	// be after EndDate. Only the calendar date portion is significant.
	StartDate time.Time
	EndDate   time.Time

	// OpeningBalance is the ledger starting point, carried by the B/F row.
	OpeningBalance decimal.Decimal

	// TargetBalance is the closing balance the convergence driver steers
	// the simulation toward.
	TargetBalance decimal.Decimal

	// InterestRate is the annual interest rate in percent, applied with the
	// daily-product method on 90-day cycle boundaries.
	InterestRate decimal.Decimal

	// TaxRate is the tax withheld on posted interest, in percent.
	TaxRate decimal.Decimal

	// TransactionCount is the exact number of transactions to synthesize,
	// not a maximum. Zero is valid and produces a ledger with only the B/F
	// row and any interest postings.
	TransactionCount int

	// MinAmount and MaxAmount bound synthesized transaction amounts.
	// Both must be positive and MinAmount must not exceed MaxAmount.
	MinAmount decimal.Decimal
	MaxAmount decimal.Decimal

	// DepositDescriptions and WithdrawalDescriptions are the candidate
	// pools for transaction narration. Both must be non-empty when
	// TransactionCount is positive.
	DepositDescriptions    []string
	WithdrawalDescriptions []string

	// InterestLabel and TaxLabel are used verbatim as the descriptions of
	// posted interest and tax rows.
	InterestLabel string
	TaxLabel      string

	// Holidays are calendar dates excluded from transaction placement.
	// Saturdays are always treated as holidays regardless of the set's
	// contents. Interest cycles post on their dates either way.
	Holidays holiday.Set
}

// Validate checks the configuration and returns a *ValidationErrors
// aggregating every problem found, or nil if the configuration is usable.
func (c *Config) Validate() error {
	var errs []error

	if c.StartDate.After(c.EndDate) {
		errs = append(errs, &DateOrderError{Start: c.StartDate, End: c.EndDate})
	}

	if c.TransactionCount < 0 {
		errs = append(errs, &TransactionCountError{Count: c.TransactionCount})
	}

	if c.TransactionCount > 0 {
		if !c.MinAmount.IsPositive() || !c.MaxAmount.IsPositive() || c.MinAmount.GreaterThan(c.MaxAmount) {
			errs = append(errs, &AmountBoundsError{Min: c.MinAmount, Max: c.MaxAmount})
		}
		if len(c.DepositDescriptions) == 0 {
			errs = append(errs, &EmptyDescriptionsError{Kind: "deposit"})
		}
		if len(c.WithdrawalDescriptions) == 0 {
			errs = append(errs, &EmptyDescriptionsError{Kind: "withdrawal"})
		}
	}

	if c.InterestRate.IsNegative() {
		errs = append(errs, &RateError{Name: "interest", Rate: c.InterestRate})
	}
	if c.TaxRate.IsNegative() {
		errs = append(errs, &RateError{Name: "tax", Rate: c.TaxRate})
	}

	if len(errs) > 0 {
		return &ValidationErrors{Errors: errs}
	}

	return nil
}
