// Package pricing keeps the pricing sub-object of a community draft
// consistent. Every function takes the draft by value and returns the updated
// copy. Numeric input is coerced into range, never rejected.
package pricing

import (
	"math"

	"github.com/questx-lab/wizard/internal/entity"
	"github.com/questx-lab/wizard/pkg/numberutil"
)

func SetPriceType(d entity.CommunityDraft, t entity.PriceType) entity.CommunityDraft {
	d.Pricing.PriceType = t
	return Normalize(d)
}

func SetPrice(d entity.CommunityDraft, raw string) entity.CommunityDraft {
	d.Pricing.Price = numberutil.CoerceFloat(raw, entity.MinPrice, entity.MaxPrice)
	return Normalize(d)
}

func SetCurrency(d entity.CommunityDraft, c entity.Currency) entity.CommunityDraft {
	d.Pricing.Currency = c
	return Normalize(d)
}

func SetFreeTrialDays(d entity.CommunityDraft, raw string) entity.CommunityDraft {
	d.Pricing.FreeTrialDays = numberutil.CoerceInt(raw, entity.MinFreeTrialDays, entity.MaxFreeTrialDays)
	return d
}

// SetAllowInstallments and SetInstallmentCount only matter for one-time
// prices, but the values are kept when the price type changes.
func SetAllowInstallments(d entity.CommunityDraft, allow bool) entity.CommunityDraft {
	d.Pricing.PaymentOptions.AllowInstallments = allow
	return d
}

func SetInstallmentCount(d entity.CommunityDraft, raw string) entity.CommunityDraft {
	d.Pricing.PaymentOptions.InstallmentCount = numberutil.CoerceInt(
		raw, entity.MinInstallmentCount, entity.MaxInstallmentCount)
	return d
}

func SetDiscount(d entity.CommunityDraft, kind entity.DiscountKind, raw string) entity.CommunityDraft {
	v := numberutil.CoerceInt(raw, entity.MinDiscount, entity.MaxDiscount)
	switch kind {
	case entity.DiscountEarlyBird:
		d.Pricing.PaymentOptions.EarlyBirdDiscount = v
	case entity.DiscountGroup:
		d.Pricing.PaymentOptions.GroupDiscount = v
	case entity.DiscountMember:
		d.Pricing.PaymentOptions.MemberDiscount = v
	}
	return d
}

// InstallmentsApplicable reports whether the installment controls are shown.
func InstallmentsApplicable(d entity.CommunityDraft) bool {
	return d.Pricing.PriceType == entity.PriceTypeOneTime
}

// Normalize re-establishes the pricing invariants and mirrors the pricing
// into the legacy top-level fields.
func Normalize(d entity.CommunityDraft) entity.CommunityDraft {
	p := &d.Pricing

	switch p.PriceType {
	case entity.PriceTypeMonthly:
		p.IsRecurring = true
		p.RecurringInterval = entity.RecurringIntervalMonth
	case entity.PriceTypeYearly:
		p.IsRecurring = true
		p.RecurringInterval = entity.RecurringIntervalYear
	case entity.PriceTypeOneTime:
		p.IsRecurring = false
		p.RecurringInterval = entity.RecurringIntervalUnset
	default:
		p.PriceType = entity.PriceTypeFree
		p.IsRecurring = false
		p.RecurringInterval = entity.RecurringIntervalUnset
	}

	if math.IsNaN(p.Price) || math.IsInf(p.Price, 0) {
		p.Price = 0
	}
	p.Price = numberutil.ClampFloat(p.Price, entity.MinPrice, entity.MaxPrice)

	if p.PriceType == entity.PriceTypeFree {
		p.Price = 0
		d.JoinFee = entity.JoinFeeFree
	} else {
		d.JoinFee = entity.JoinFeePaid
	}

	if p.Currency == "" {
		p.Currency = entity.CurrencyUSD
	}

	p.FreeTrialDays = numberutil.ClampInt(
		float64(p.FreeTrialDays), entity.MinFreeTrialDays, entity.MaxFreeTrialDays)

	o := &p.PaymentOptions
	o.InstallmentCount = numberutil.ClampInt(
		float64(o.InstallmentCount), entity.MinInstallmentCount, entity.MaxInstallmentCount)
	o.EarlyBirdDiscount = numberutil.ClampInt(float64(o.EarlyBirdDiscount), entity.MinDiscount, entity.MaxDiscount)
	o.GroupDiscount = numberutil.ClampInt(float64(o.GroupDiscount), entity.MinDiscount, entity.MaxDiscount)
	o.MemberDiscount = numberutil.ClampInt(float64(o.MemberDiscount), entity.MinDiscount, entity.MaxDiscount)

	d.Currency = p.Currency
	d.FeeAmount = numberutil.FormatDecimal(p.Price)
	return d
}
