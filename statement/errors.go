package statement

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// ValidationErrors wraps all configuration errors found by Config.Validate.
type ValidationErrors struct {
	Errors []error
}

func (e *ValidationErrors) Error() string {
	if len(e.Errors) == 1 {
		return e.Errors[0].Error()
	}
	return fmt.Sprintf("%d configuration errors occurred", len(e.Errors))
}

// Unwrap returns the underlying errors for error unwrapping.
func (e *ValidationErrors) Unwrap() []error {
	return e.Errors
}

// DateOrderError is returned when the statement period start falls after
// its end.
type DateOrderError struct {
	Start time.Time
	End   time.Time
}

func (e *DateOrderError) Error() string {
	return fmt.Sprintf("start date %s is after end date %s",
		e.Start.Format(dateFormat), e.End.Format(dateFormat))
}

// AmountBoundsError is returned when the transaction amount bounds are
// non-positive or inverted.
type AmountBoundsError struct {
	Min decimal.Decimal
	Max decimal.Decimal
}

func (e *AmountBoundsError) Error() string {
	return fmt.Sprintf("invalid transaction amount bounds [%s, %s]", e.Min, e.Max)
}

// EmptyDescriptionsError is returned when a description pool is empty while
// transactions of that kind could be generated.
type EmptyDescriptionsError struct {
	Kind string // "deposit" or "withdrawal"
}

func (e *EmptyDescriptionsError) Error() string {
	return fmt.Sprintf("no %s descriptions configured", e.Kind)
}

// TransactionCountError is returned for a negative transaction count.
type TransactionCountError struct {
	Count int
}

func (e *TransactionCountError) Error() string {
	return fmt.Sprintf("transaction count must not be negative, got %d", e.Count)
}

// RateError is returned for a negative interest or tax rate.
type RateError struct {
	Name string
	Rate decimal.Decimal
}

func (e *RateError) Error() string {
	return fmt.Sprintf("%s rate must not be negative, got %s", e.Name, e.Rate)
}
