package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/questx-lab/wizard/internal/domain/wizard"
	"github.com/questx-lab/wizard/internal/entity"
	"github.com/questx-lab/wizard/pkg/errorx"
	"github.com/stretchr/testify/require"
)

const tomlDraft = `
name = "Runners"
country = "Tunisia"
tags = "running, , sport"
status = "private"

[pricing]
price_type = "monthly"
price = 9.99
currency = "eur"
free_trial_days = 45
allow_installments = true
installment_count = "3"

[pricing.discounts]
earlyBird = "10"

[social_links]
instagram = "@runners.tn"
`

const yamlDraft = `
name: Runners
country: Tunisia
tags: running, , sport
status: private
pricing:
  price_type: monthly
  price: 9.99
  currency: EUR
  free_trial_days: 45
  allow_installments: true
  installment_count: 3
  discounts:
    earlyBird: 10
social_links:
  instagram: "@runners.tn"
`

func TestDecodeDraftFile(t *testing.T) {
	tests := []struct {
		name string
		ext  string
		data string
	}{
		{name: "toml", ext: ".toml", data: tomlDraft},
		{name: "yaml", ext: ".yaml", data: yamlDraft},
		{name: "yml", ext: ".YML", data: yamlDraft},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := decodeDraftFile(tt.ext, []byte(tt.data))
			require.NoError(t, err)
			require.Equal(t, "Runners", f.Name)
			require.Equal(t, "9.99", f.Pricing.Price)
			require.Equal(t, "45", f.Pricing.FreeTrialDays)
			require.Equal(t, "3", f.Pricing.InstallmentCount)
			require.Equal(t, map[string]string{"earlyBird": "10"}, f.Pricing.Discounts)

			updates, err := f.Updates()
			require.NoError(t, err)

			w := wizard.New(nil, nil)
			w.Dispatch(updates...)
			d := w.Draft()

			require.Equal(t, []string{"running", "sport"}, d.Tags)
			require.Equal(t, entity.StatusPrivate, d.Status)
			require.Equal(t, entity.PriceTypeMonthly, d.Pricing.PriceType)
			require.Equal(t, 9.99, d.Pricing.Price)
			require.Equal(t, entity.CurrencyEUR, d.Pricing.Currency)
			require.Equal(t, entity.CurrencyEUR, d.Currency)
			require.Equal(t, 30, d.Pricing.FreeTrialDays)
			require.True(t, d.Pricing.IsRecurring)
			require.Equal(t, entity.RecurringIntervalMonth, d.Pricing.RecurringInterval)
			require.Equal(t, 3, d.Pricing.PaymentOptions.InstallmentCount)
			require.Equal(t, 10, d.Pricing.PaymentOptions.EarlyBirdDiscount)
			require.Equal(t, "@runners.tn", d.SocialLinks[entity.PlatformInstagram])
			require.Empty(t, w.Errors())
		})
	}
}

func TestDecodeDraftFile_Errors(t *testing.T) {
	_, err := decodeDraftFile(".json", []byte(`{}`))
	require.True(t, errorx.Is(err, errorx.BadRequest))

	_, err = decodeDraftFile(".toml", []byte("nmae = \"typo\""))
	require.Error(t, err)

	_, err = decodeDraftFile(".yaml", []byte("name: [unterminated"))
	require.Error(t, err)
}

func TestDraftFile_Updates_UnknownChoices(t *testing.T) {
	f := DraftFile{
		Name:   "Runners",
		Status: "secret",
		Pricing: DraftPricing{
			PriceType: "weekly",
			Currency:  "GBP",
			Discounts: map[string]string{"vip": "5"},
		},
		SocialLinks: map[string]string{"myspace": "me"},
	}

	_, err := f.Updates()
	require.Error(t, err)
	for _, msg := range []string{
		`Invalid status "secret"`,
		`Invalid price type "weekly"`,
		`Invalid currency "GBP"`,
		`Invalid discount "vip"`,
		`Invalid platform "myspace"`,
	} {
		require.Contains(t, err.Error(), msg)
	}
}

func TestReplayDraft_Report(t *testing.T) {
	path := filepath.Join(t.TempDir(), "draft.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
name: Runners
country: Tunisia
social_links:
  discord: "@runners"
`), 0o600))

	w, err := replayDraft(path, nil, nil)
	require.NoError(t, err)
	require.NoError(t, walkToLastStep(w))

	var out bytes.Buffer
	require.False(t, printReport(&out, w))
	require.Equal(t, ""+
		"1. identity     ok\n"+
		"2. pricing      ok\n"+
		"3. social links incomplete\n"+
		"   discord: Please enter a valid discord URL or username\n",
		out.String())
}

func TestWalkToLastStep_Incomplete(t *testing.T) {
	w := wizard.New(nil, nil)
	w.Dispatch(wizard.SetName("Runners"))

	err := walkToLastStep(w)
	require.True(t, errorx.Is(err, errorx.StepIncomplete))
	require.Equal(t, "Step identity is not complete", err.Error())
}
