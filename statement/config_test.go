package statement

import (
	"testing"

	"github.com/alecthomas/assert/v2"
)

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr int // number of expected validation errors, 0 for valid
	}{
		{
			name:    "valid baseline",
			mutate:  func(c *Config) {},
			wantErr: 0,
		},
		{
			name: "start after end",
			mutate: func(c *Config) {
				c.StartDate = date("2024-06-30")
				c.EndDate = date("2024-01-01")
			},
			wantErr: 1,
		},
		{
			name: "inverted amount bounds",
			mutate: func(c *Config) {
				c.MinAmount = dec("90000")
				c.MaxAmount = dec("5000")
			},
			wantErr: 1,
		},
		{
			name: "non-positive amount bounds",
			mutate: func(c *Config) {
				c.MinAmount = dec("0")
			},
			wantErr: 1,
		},
		{
			name: "empty deposit descriptions",
			mutate: func(c *Config) {
				c.DepositDescriptions = nil
			},
			wantErr: 1,
		},
		{
			name: "both description pools empty",
			mutate: func(c *Config) {
				c.DepositDescriptions = nil
				c.WithdrawalDescriptions = nil
			},
			wantErr: 2,
		},
		{
			name: "zero count skips description and amount checks",
			mutate: func(c *Config) {
				c.TransactionCount = 0
				c.DepositDescriptions = nil
				c.WithdrawalDescriptions = nil
				c.MinAmount = dec("0")
			},
			wantErr: 0,
		},
		{
			name: "negative count",
			mutate: func(c *Config) {
				c.TransactionCount = -1
			},
			wantErr: 1,
		},
		{
			name: "negative rates",
			mutate: func(c *Config) {
				c.InterestRate = dec("-1")
				c.TaxRate = dec("-5")
			},
			wantErr: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == 0 {
				assert.NoError(t, err)
				return
			}

			validationErrors, ok := err.(*ValidationErrors)
			assert.True(t, ok, "expected *ValidationErrors, got %T", err)
			assert.Equal(t, tt.wantErr, len(validationErrors.Errors))
		})
	}
}

func TestValidationErrorsMessage(t *testing.T) {
	single := &ValidationErrors{Errors: []error{&EmptyDescriptionsError{Kind: "deposit"}}}
	assert.Equal(t, "no deposit descriptions configured", single.Error())

	multi := &ValidationErrors{Errors: []error{
		&EmptyDescriptionsError{Kind: "deposit"},
		&EmptyDescriptionsError{Kind: "withdrawal"},
	}}
	assert.Equal(t, "2 configuration errors occurred", multi.Error())
	assert.Equal(t, 2, len(multi.Unwrap()))
}
