package cli

import (
	"fmt"

	"github.com/alecthomas/kong"

	"github.com/nepdocs/stmtgen/output"
	"github.com/nepdocs/stmtgen/template"
)

type TemplatesCmd struct{}

func (cmd *TemplatesCmd) Run(ctx *kong.Context) error {
	styles := output.NewStyles(ctx.Stdout)

	for _, id := range template.IDs() {
		tmpl, err := template.Get(id)
		if err != nil {
			return err
		}

		_, _ = fmt.Fprintf(ctx.Stdout, "%s  %s (%s)\n",
			styles.Success(tmpl.ID),
			tmpl.Name,
			styles.Amount(tmpl.Currency),
		)
		_, _ = fmt.Fprintf(ctx.Stdout, "   %s\n",
			styles.Dim(fmt.Sprintf("%d deposit / %d withdrawal narrations, interest %q, tax %q",
				len(tmpl.Deposits), len(tmpl.Withdrawals), tmpl.InterestLabel, tmpl.TaxLabel)),
		)
	}

	return nil
}
