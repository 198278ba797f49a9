// Package template holds per-institution statement templates: the narration
// word lists and interest/tax labels a generated statement draws from.
package template

import (
	"fmt"
	"sort"

	"github.com/nepdocs/stmtgen/statement"
)

// Template carries the formatting metadata of one institution.
type Template struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Currency string `json:"currency"`

	// Deposits and Withdrawals are the narration pools for synthesized
	// transactions.
	Deposits    []string `json:"deposits"`
	Withdrawals []string `json:"withdrawals"`

	// InterestLabel and TaxLabel are used verbatim on interest and tax rows.
	InterestLabel string `json:"interest_label"`
	TaxLabel      string `json:"tax_label"`
}

// Apply copies the template's word lists and labels into cfg.
func (t *Template) Apply(cfg *statement.Config) {
	cfg.DepositDescriptions = t.Deposits
	cfg.WithdrawalDescriptions = t.Withdrawals
	cfg.InterestLabel = t.InterestLabel
	cfg.TaxLabel = t.TaxLabel
}

// Default contains the built-in institution templates.
var Default = map[string]*Template{
	"nabil": {
		ID:       "nabil",
		Name:     "Nabil Bank Limited",
		Currency: "NPR",
		Deposits: []string{
			"Cash Deposit",
			"Cheque Deposit",
			"Salary Transfer",
			"Mobile Banking Transfer In",
			"Remittance Credit",
			"Fund Transfer In",
		},
		Withdrawals: []string{
			"Cash Withdrawal",
			"ATM Withdrawal",
			"Cheque Payment",
			"Mobile Banking Transfer Out",
			"Utility Bill Payment",
			"POS Purchase",
		},
		InterestLabel: "Interest Credit",
		TaxLabel:      "Tax on Interest",
	},
	"nic-asia": {
		ID:       "nic-asia",
		Name:     "NIC Asia Bank Limited",
		Currency: "NPR",
		Deposits: []string{
			"CASH DEP",
			"CHQ DEP",
			"SALARY CR",
			"IBFT CR",
			"REMIT CR",
		},
		Withdrawals: []string{
			"CASH WDR",
			"ATM WDR",
			"CHQ PAID",
			"IBFT DR",
			"ESEWA LOAD",
			"KHALTI LOAD",
		},
		InterestLabel: "INT CR",
		TaxLabel:      "TDS ON INT",
	},
	"global-ime": {
		ID:       "global-ime",
		Name:     "Global IME Bank Limited",
		Currency: "NPR",
		Deposits: []string{
			"Deposit By Cash",
			"Deposit By Cheque",
			"Salary Credit",
			"Inward Remittance",
			"ConnectIPS Transfer In",
		},
		Withdrawals: []string{
			"Withdrawal By Cash",
			"Withdrawal By Cheque",
			"ATM Cash Withdrawal",
			"ConnectIPS Transfer Out",
			"Bill Payment",
		},
		InterestLabel: "Interest Capitalized",
		TaxLabel:      "Tax Deducted At Source",
	},
	"sanima": {
		ID:       "sanima",
		Name:     "Sanima Bank Limited",
		Currency: "NPR",
		Deposits: []string{
			"Cash Deposited",
			"Clearing Cheque Deposit",
			"Salary Posting",
			"Fonepay Transfer In",
		},
		Withdrawals: []string{
			"Cash Paid",
			"ATM Withdrawal",
			"Fonepay Transfer Out",
			"Cheque Withdrawal",
			"SMS Banking Fee",
		},
		InterestLabel: "Quarterly Interest",
		TaxLabel:      "Interest Tax",
	},
}

// Get returns the template registered under id.
func Get(id string) (*Template, error) {
	t, ok := Default[id]
	if !ok {
		return nil, fmt.Errorf("unknown template %q (available: %v)", id, IDs())
	}
	return t, nil
}

// IDs returns the registered template IDs in sorted order.
func IDs() []string {
	ids := make([]string, 0, len(Default))
	for id := range Default {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Register adds or replaces a template in the registry.
func Register(t *Template) {
	Default[t.ID] = t
}
