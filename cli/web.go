package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"

	"github.com/nepdocs/stmtgen/telemetry"
	"github.com/nepdocs/stmtgen/web"
)

type WebCmd struct {
	Port     int    `help:"Port to listen on." default:"8080"`
	Holidays string `help:"JSON holiday file to load and watch for changes." optional:""`
}

func (cmd *WebCmd) Run(ctx *kong.Context, globals *Globals) error {
	runCtx := context.Background()

	if globals.Telemetry {
		collector := telemetry.NewTimingCollector()
		runCtx = telemetry.WithCollector(runCtx, collector)

		defer func() {
			_, _ = fmt.Fprintln(ctx.Stderr)
			collector.Report(ctx.Stderr)
		}()
	}

	holidayFile := cmd.Holidays
	if holidayFile != "" {
		abs, err := filepath.Abs(holidayFile)
		if err != nil {
			return fmt.Errorf("failed to resolve absolute path: %w", err)
		}
		if _, err := os.Stat(abs); err != nil {
			return fmt.Errorf("failed to access holiday file: %w", err)
		}
		holidayFile = abs
	}

	srv := web.NewWithVersion(cmd.Port, holidayFile, Version, CommitSHA)

	printInfof(ctx.Stdout, "Serving statement preview on %s", pathStyle.Render(fmt.Sprintf("http://%s:%d", srv.Host, srv.Port)))
	if holidayFile != "" {
		printInfof(ctx.Stdout, "Watching holiday file %s", pathStyle.Render(holidayFile))
	}

	return srv.Start(runCtx)
}
