package statement

import (
	"strconv"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
)

// maxPlacementAttempts caps the per-transaction date search. Placement is
// best-effort: after this many advances the candidate wraps back to the
// statement start even if that date is itself blocked.
const maxPlacementAttempts = 30

var hundred = decimal.NewFromInt(100)

// synthesize produces exactly cfg.TransactionCount transactions sorted
// ascending by date.
func (g *generator) synthesize() []Transaction {
	txns := make([]Transaction, g.cfg.TransactionCount)

	for i := range txns {
		isDeposit := g.rng.Float64() > 0.4 // 60% deposit bias

		txns[i] = Transaction{
			Date:        g.placeDate(),
			IsDeposit:   isDeposit,
			Amount:      g.drawAmount(),
			Description: g.drawDescription(isDeposit),
			Reference:   g.drawReference(),
		}
	}

	slices.SortStableFunc(txns, func(a, b Transaction) int {
		return a.Date.Compare(b.Date)
	})

	return txns
}

// placeDate picks a uniformly random day in the statement period, then
// nudges it off holidays and interest posting dates one day at a time.
// Advancing past the period end wraps to the start so the date stays in
// range; exhausting the attempt budget also falls back to the start.
func (g *generator) placeDate() time.Time {
	start := dateOnly(g.cfg.StartDate)
	end := dateOnly(g.cfg.EndDate)

	candidate := start
	if totalDays := daysBetween(start, end); totalDays > 0 {
		candidate = start.AddDate(0, 0, g.rng.Intn(totalDays))
	}

	for attempts := 0; attempts < maxPlacementAttempts && g.blocked(candidate); attempts++ {
		candidate = candidate.AddDate(0, 0, 1)
		if candidate.After(end) {
			candidate = start
		}
	}

	if g.blocked(candidate) {
		candidate = start
	}

	return candidate
}

// blocked reports whether a candidate date is unavailable for placement.
func (g *generator) blocked(d time.Time) bool {
	if g.cfg.isHoliday(d) {
		return true
	}
	for _, cycle := range g.cycles {
		if sameDate(d, cycle) {
			return true
		}
	}
	return false
}

// drawAmount picks a uniform random amount in [MinAmount, MaxAmount) and
// rounds it up to the nearest 100.
func (g *generator) drawAmount() decimal.Decimal {
	span := g.cfg.MaxAmount.Sub(g.cfg.MinAmount)
	amount := g.cfg.MinAmount.Add(span.Mul(decimal.NewFromFloat(g.rng.Float64())))

	amount = roundUpTo100(amount)
	if amount.LessThan(g.cfg.MinAmount) {
		amount = roundUpTo100(g.cfg.MinAmount)
	}

	return amount
}

func (g *generator) drawDescription(isDeposit bool) string {
	pool := g.cfg.WithdrawalDescriptions
	if isDeposit {
		pool = g.cfg.DepositDescriptions
	}
	return pool[g.rng.Intn(len(pool))]
}

// drawReference produces a random 7-digit numeral string.
func (g *generator) drawReference() string {
	return strconv.Itoa(1000000 + g.rng.Intn(9000000))
}

// roundUpTo100 rounds d up to the nearest multiple of 100.
func roundUpTo100(d decimal.Decimal) decimal.Decimal {
	return d.Div(hundred).Ceil().Mul(hundred)
}

// daysBetween returns the whole number of days from a to b, both truncated
// to calendar dates.
func daysBetween(a, b time.Time) int {
	return int(b.Sub(a) / (24 * time.Hour))
}
