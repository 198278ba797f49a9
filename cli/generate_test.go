package cli

import (
	"strings"
	"testing"

	"github.com/alecthomas/assert/v2"

	"github.com/nepdocs/stmtgen/statement"
	"github.com/nepdocs/stmtgen/template"
)

func testCmd() *GenerateCmd {
	return &GenerateCmd{
		Start:        "2024-01-01",
		End:          "2024-06-30",
		Opening:      "50000",
		Target:       "425000",
		Count:        24,
		Min:          "5000",
		Max:          "90000",
		InterestRate: "3.0",
		TaxRate:      "5.0",
		Format:       "text",
	}
}

func TestBuildConfig(t *testing.T) {
	tmpl, err := template.Get("nabil")
	assert.NoError(t, err)

	cfg, err := testCmd().buildConfig(tmpl)
	assert.NoError(t, err)

	assert.Equal(t, 24, cfg.TransactionCount)
	assert.True(t, cfg.OpeningBalance.String() == "50000")
	assert.True(t, cfg.InterestRate.String() == "3")
	assert.Equal(t, tmpl.Deposits, cfg.DepositDescriptions)
	assert.Equal(t, tmpl.InterestLabel, cfg.InterestLabel)
	assert.NoError(t, cfg.Validate())
}

func TestBuildConfigRejectsBadInput(t *testing.T) {
	tmpl, err := template.Get("nabil")
	assert.NoError(t, err)

	cmd := testCmd()
	cmd.Start = "01/01/2024"
	_, err = cmd.buildConfig(tmpl)
	assert.Error(t, err)

	cmd = testCmd()
	cmd.Target = "lots"
	_, err = cmd.buildConfig(tmpl)
	assert.Error(t, err)
}

func TestRenderFormats(t *testing.T) {
	tmpl, err := template.Get("nabil")
	assert.NoError(t, err)

	cmd := testCmd()
	cfg, err := cmd.buildConfig(tmpl)
	assert.NoError(t, err)

	result, err := statement.Generate(cfg, statement.WithSeed(1))
	assert.NoError(t, err)

	tests := []struct {
		format string
		want   string
	}{
		{"text", statement.BroughtForwardDescription},
		{"json", `"final_balance"`},
		{"doc", "urn:schemas-microsoft-com:office:word"},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			cmd.Format = tt.format

			var buf strings.Builder
			assert.NoError(t, cmd.render(&buf, tmpl, cfg, result))
			assert.True(t, strings.Contains(buf.String(), tt.want))
		})
	}
}
