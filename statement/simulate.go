package statement

import (
	"time"

	"github.com/shopspring/decimal"
)

// daysInYearTimesRate is the divisor of the daily-product interest method:
// the sum of end-of-day balances over a cycle, times the annual rate in
// percent, divided by 365 × 100.
var daysInYearTimesRate = decimal.NewFromInt(36500)

// simulate replays txns over the configured date range. Transactions must
// be sorted ascending by date; rows are emitted in application order with
// the running balance after each row. The function carries no state between
// calls, so identical inputs always yield identical results.
func simulate(cfg *Config, txns []Transaction, cycles []time.Time) *Result {
	cycleSet := make(map[string]struct{}, len(cycles))
	for _, d := range cycles {
		cycleSet[d.Format(dateFormat)] = struct{}{}
	}

	balance := cfg.OpeningBalance
	totalDebit := decimal.Zero
	totalCredit := decimal.Zero
	dailyProductSum := decimal.Zero

	start := dateOnly(cfg.StartDate)
	end := dateOnly(cfg.EndDate)

	rows := []Row{{
		Date:        start,
		Description: BroughtForwardDescription,
		Balance:     balance,
	}}

	for cursor := start.AddDate(0, 0, 1); !cursor.After(end); cursor = cursor.AddDate(0, 0, 1) {
		for _, txn := range txns {
			if !sameDate(txn.Date, cursor) {
				continue
			}

			row := Row{
				Date:        cursor,
				Description: txn.Description,
				Reference:   txn.Reference,
			}

			if txn.IsDeposit {
				balance = balance.Add(txn.Amount)
				totalCredit = totalCredit.Add(txn.Amount)
				row.Credit = txn.Amount
			} else {
				balance = balance.Sub(txn.Amount)
				totalDebit = totalDebit.Add(txn.Amount)
				row.Debit = txn.Amount
			}

			row.Balance = balance
			rows = append(rows, row)
		}

		dailyProductSum = dailyProductSum.Add(balance)

		if _, ok := cycleSet[cursor.Format(dateFormat)]; ok {
			interest := dailyProductSum.Mul(cfg.InterestRate).Div(daysInYearTimesRate)

			if interest.IsPositive() {
				tax := interest.Mul(cfg.TaxRate).Div(hundred)

				balance = balance.Add(interest)
				totalCredit = totalCredit.Add(interest)
				rows = append(rows, Row{
					Date:        cursor,
					Description: cfg.InterestLabel,
					Credit:      interest,
					Balance:     balance,
				})

				if tax.IsPositive() {
					balance = balance.Sub(tax)
					totalDebit = totalDebit.Add(tax)
					rows = append(rows, Row{
						Date:        cursor,
						Description: cfg.TaxLabel,
						Debit:       tax,
						Balance:     balance,
					})
				}
			}

			// The accumulator clears on every cycle boundary, even when no
			// interest posted; cycles are independent accrual windows.
			dailyProductSum = decimal.Zero
		}
	}

	return &Result{
		Rows:         rows,
		FinalBalance: balance,
		TotalDebit:   totalDebit,
		TotalCredit:  totalCredit,
	}
}
