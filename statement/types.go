package statement

import (
	"time"

	"github.com/shopspring/decimal"
)

// BroughtForwardDescription is the narration of the synthetic opening row.
const BroughtForwardDescription = "Balance B/F"

// Transaction is one synthesized ledger movement. Amounts are always
// positive; direction is carried by IsDeposit.
type Transaction struct {
	Date        time.Time       `json:"date"`
	IsDeposit   bool            `json:"is_deposit"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`

	// Reference is a synthetic 7-digit identifier. It is cosmetic; no
	// uniqueness is enforced.
	Reference string `json:"reference"`
}

// Row is a single statement line. Exactly one of Debit and Credit is
// non-zero, except on the B/F row where both are zero. Balance is the
// running balance immediately after the row is applied.
type Row struct {
	Date        time.Time       `json:"date"`
	Description string          `json:"description"`
	Reference   string          `json:"reference,omitempty"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
	Balance     decimal.Decimal `json:"balance"`
}

// Result is the outcome of one simulation (or of a full converged
// generation run). Rows are ordered by date, starting with the B/F row.
type Result struct {
	Rows         []Row           `json:"rows"`
	FinalBalance decimal.Decimal `json:"final_balance"`
	TotalDebit   decimal.Decimal `json:"total_debit"`
	TotalCredit  decimal.Decimal `json:"total_credit"`

	// Gap is the distance between the target and final balance after the
	// last simulation pass, Converged reports whether it fell within
	// tolerance, and Iterations counts the simulation passes run. These
	// are only meaningful on results produced by Generate; a plain
	// Simulate leaves them zero-valued.
	Gap        decimal.Decimal `json:"gap"`
	Converged  bool            `json:"converged"`
	Iterations int             `json:"iterations"`
}
