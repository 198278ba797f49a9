package template

import (
	"testing"

	"github.com/alecthomas/assert/v2"

	"github.com/nepdocs/stmtgen/statement"
)

func TestDefaultsAreComplete(t *testing.T) {
	for id, tmpl := range Default {
		assert.Equal(t, id, tmpl.ID)
		assert.NotZero(t, tmpl.Name)
		assert.NotZero(t, tmpl.Currency)
		assert.True(t, len(tmpl.Deposits) > 0, "%s has no deposit narrations", id)
		assert.True(t, len(tmpl.Withdrawals) > 0, "%s has no withdrawal narrations", id)
		assert.NotZero(t, tmpl.InterestLabel)
		assert.NotZero(t, tmpl.TaxLabel)
	}
}

func TestGet(t *testing.T) {
	tmpl, err := Get("nabil")
	assert.NoError(t, err)
	assert.Equal(t, "Nabil Bank Limited", tmpl.Name)

	_, err = Get("no-such-bank")
	assert.Error(t, err)
}

func TestIDsSorted(t *testing.T) {
	ids := IDs()
	assert.Equal(t, len(Default), len(ids))
	for i := 1; i < len(ids); i++ {
		assert.True(t, ids[i-1] < ids[i], "IDs must be sorted")
	}
}

func TestApply(t *testing.T) {
	tmpl, err := Get("nic-asia")
	assert.NoError(t, err)

	var cfg statement.Config
	tmpl.Apply(&cfg)

	assert.Equal(t, tmpl.Deposits, cfg.DepositDescriptions)
	assert.Equal(t, tmpl.Withdrawals, cfg.WithdrawalDescriptions)
	assert.Equal(t, tmpl.InterestLabel, cfg.InterestLabel)
	assert.Equal(t, tmpl.TaxLabel, cfg.TaxLabel)
}

func TestRegister(t *testing.T) {
	custom := &Template{
		ID:            "test-bank",
		Name:          "Test Bank",
		Currency:      "NPR",
		Deposits:      []string{"Deposit"},
		Withdrawals:   []string{"Withdrawal"},
		InterestLabel: "Interest",
		TaxLabel:      "Tax",
	}
	Register(custom)
	defer delete(Default, "test-bank")

	got, err := Get("test-bank")
	assert.NoError(t, err)
	assert.Equal(t, custom, got)
}
