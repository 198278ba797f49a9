package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/alecthomas/repr"
	"github.com/shopspring/decimal"

	"github.com/nepdocs/stmtgen/formatter"
	"github.com/nepdocs/stmtgen/holiday"
	"github.com/nepdocs/stmtgen/statement"
	"github.com/nepdocs/stmtgen/telemetry"
	"github.com/nepdocs/stmtgen/template"
)

type GenerateCmd struct {
	Start    string `help:"Statement period start (YYYY-MM-DD)." required:""`
	End      string `help:"Statement period end (YYYY-MM-DD)." required:""`
	Template string `help:"Institution template ID." default:"nabil"`

	Opening string `help:"Opening balance." default:"0"`
	Target  string `help:"Target closing balance." required:""`

	Count int    `help:"Number of transactions to synthesize." default:"20"`
	Min   string `help:"Minimum transaction amount." default:"1000"`
	Max   string `help:"Maximum transaction amount." default:"50000"`

	InterestRate string `help:"Annual interest rate in percent." name:"interest-rate" default:"3.0"`
	TaxRate      string `help:"Tax rate on posted interest in percent." name:"tax-rate" default:"5.0"`

	Holidays string `help:"JSON file of holiday dates (YYYY-MM-DD)." type:"existingfile" optional:""`
	Seed     int64  `help:"Random seed for reproducible output (0 uses the current time)."`

	Format string `help:"Output format." enum:"text,json,doc" default:"text"`
	Output string `help:"Write to a file instead of stdout." short:"o" optional:""`
	Force  bool   `help:"Overwrite an existing output file without confirmation." short:"f"`
	Debug  bool   `help:"Dump the resolved configuration and raw result."`
}

func (cmd *GenerateCmd) Run(ctx *kong.Context, globals *Globals) error {
	runCtx := context.Background()

	var collector telemetry.Collector
	if globals.Telemetry {
		collector = telemetry.NewTimingCollector()
		runCtx = telemetry.WithCollector(runCtx, collector)

		rootTimer := collector.Start(fmt.Sprintf("generate %s..%s", cmd.Start, cmd.End))
		defer func() {
			rootTimer.End()
			_, _ = fmt.Fprintln(ctx.Stderr)
			collector.Report(ctx.Stderr)
		}()
	}

	tmpl, err := template.Get(cmd.Template)
	if err != nil {
		return err
	}

	cfg, err := cmd.buildConfig(tmpl)
	if err != nil {
		return err
	}

	if cmd.Debug {
		repr.Println(cfg)
	}

	var opts []statement.Option
	if cmd.Seed != 0 {
		opts = append(opts, statement.WithSeed(cmd.Seed))
	}

	result, err := statement.GenerateContext(runCtx, cfg, opts...)
	if err != nil {
		printError(ctx.Stderr, err.Error())
		return NewCommandError(1)
	}

	if cmd.Debug {
		repr.Println(result)
	}

	out, closeOut, err := cmd.openOutput(ctx)
	if err != nil {
		return err
	}
	defer closeOut()

	renderTimer := telemetry.StartTimer(runCtx, "render "+cmd.Format)
	err = cmd.render(out, tmpl, cfg, result)
	renderTimer.End()
	if err != nil {
		return err
	}

	if cmd.Output != "" {
		printSuccess(ctx.Stdout, fmt.Sprintf("Statement written to %s", pathStyle.Render(cmd.Output)))
	}
	if !result.Converged {
		printInfof(ctx.Stderr, "closing balance missed target by %s after %d iterations",
			result.Gap.StringFixed(2), result.Iterations)
	}

	return nil
}

func (cmd *GenerateCmd) buildConfig(tmpl *template.Template) (*statement.Config, error) {
	start, err := time.Parse("2006-01-02", cmd.Start)
	if err != nil {
		return nil, fmt.Errorf("invalid start date %q: %w", cmd.Start, err)
	}
	end, err := time.Parse("2006-01-02", cmd.End)
	if err != nil {
		return nil, fmt.Errorf("invalid end date %q: %w", cmd.End, err)
	}

	amounts := make(map[string]decimal.Decimal, 6)
	for name, value := range map[string]string{
		"opening":       cmd.Opening,
		"target":        cmd.Target,
		"min":           cmd.Min,
		"max":           cmd.Max,
		"interest-rate": cmd.InterestRate,
		"tax-rate":      cmd.TaxRate,
	} {
		d, err := decimal.NewFromString(value)
		if err != nil {
			return nil, fmt.Errorf("invalid --%s value %q: %w", name, value, err)
		}
		amounts[name] = d
	}

	holidays := holiday.NewSet()
	if cmd.Holidays != "" {
		holidays, err = holiday.Load(cmd.Holidays)
		if err != nil {
			return nil, err
		}
	}

	cfg := &statement.Config{
		StartDate:        start,
		EndDate:          end,
		OpeningBalance:   amounts["opening"],
		TargetBalance:    amounts["target"],
		InterestRate:     amounts["interest-rate"],
		TaxRate:          amounts["tax-rate"],
		TransactionCount: cmd.Count,
		MinAmount:        amounts["min"],
		MaxAmount:        amounts["max"],
		Holidays:         holidays,
	}
	tmpl.Apply(cfg)

	return cfg, nil
}

// openOutput returns the writer to render into. An existing output file is
// only overwritten after confirmation, unless --force is given.
func (cmd *GenerateCmd) openOutput(ctx *kong.Context) (io.Writer, func(), error) {
	if cmd.Output == "" {
		return ctx.Stdout, func() {}, nil
	}

	if _, err := os.Stat(cmd.Output); err == nil && !cmd.Force {
		confirmed, err := promptYesNo(ctx, fmt.Sprintf("File %q already exists. Overwrite?", cmd.Output))
		if err != nil {
			return nil, nil, err
		}
		if !confirmed {
			return nil, nil, fmt.Errorf("refusing to overwrite %s", cmd.Output)
		}
	}

	f, err := os.Create(cmd.Output)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create output file: %w", err)
	}

	return f, func() { _ = f.Close() }, nil
}

func (cmd *GenerateCmd) render(w io.Writer, tmpl *template.Template, cfg *statement.Config, result *statement.Result) error {
	switch cmd.Format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	case "doc":
		return formatter.WriteDoc(w, &formatter.Document{
			Institution: tmpl.Name,
			Currency:    tmpl.Currency,
			StartDate:   cfg.StartDate,
			EndDate:     cfg.EndDate,
			Result:      result,
		})
	default:
		return formatter.New().Format(result, w)
	}
}
