package statement

import "github.com/shopspring/decimal"

// maxIterations bounds the convergence loop. The cap is fixed: changing it
// changes output distributions under a fixed seed.
const maxIterations = 10

// tolerance is the acceptable distance between the final and target balance.
var tolerance = decimal.NewFromFloat(0.01)

// converge repeatedly simulates the ledger, adjusting the amount of the
// date-latest transaction to close the gap to the target balance. The last
// transaction is the fixed adjustment target because a correction there
// disturbs the fewest subsequent daily-balance accumulations. Because an
// adjustment shifts every later end-of-day balance, and with it later
// interest cycles, each gap is only an approximation of the true
// sensitivity; hence the loop rather than a single closed-form correction.
//
// If the budget runs out the last simulated result is returned as-is, with
// Converged false and Gap carrying the achieved shortfall.
func (g *generator) converge(txns []Transaction) *Result {
	var result *Result

	for iteration := 0; iteration < maxIterations; iteration++ {
		result = simulate(g.cfg, txns, g.cycles)
		result.Iterations = iteration + 1

		gap := g.cfg.TargetBalance.Sub(result.FinalBalance)
		result.Gap = gap

		if gap.Abs().LessThan(tolerance) {
			result.Converged = true
			return result
		}

		if len(txns) == 0 {
			return result
		}

		g.adjust(txns, gap)
	}

	return result
}

// adjust moves the final transaction's amount by gap so the next simulation
// lands approximately on target. The element is replaced wholesale at its
// index rather than mutated through a live pointer.
func (g *generator) adjust(txns []Transaction, gap decimal.Decimal) {
	last := len(txns) - 1
	txn := txns[last]

	if txn.IsDeposit {
		txn.Amount = txn.Amount.Add(gap)
	} else {
		txn.Amount = txn.Amount.Sub(gap)
	}

	// A negative amount must never reach the simulator: flip the direction
	// and re-draw the narration from the now-applicable pool.
	if txn.Amount.IsNegative() {
		txn.IsDeposit = !txn.IsDeposit
		txn.Amount = txn.Amount.Abs()
		txn.Description = g.drawDescription(txn.IsDeposit)
	}

	txns[last] = txn
}
