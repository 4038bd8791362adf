package wizard

import (
	"github.com/questx-lab/wizard/internal/domain/pricing"
	"github.com/questx-lab/wizard/internal/entity"
	"github.com/questx-lab/wizard/pkg/enum"
)

// Update is one user edit of the draft. The set of updates is closed: only
// the types declared in this file implement it.
type Update interface {
	apply(entity.CommunityDraft) entity.CommunityDraft
}

type (
	SetName            string
	SetCountry         string
	SetBio             string
	SetLongDescription string
	SetCategory        string
	// SetTags carries the raw comma separated input.
	SetTags              string
	SetStatus            entity.Status
	SetPriceType         entity.PriceType
	SetPrice             string
	SetCurrency          entity.Currency
	SetFreeTrialDays     string
	SetAllowInstallments bool
	SetInstallmentCount  string
	SetLogo              string
	SetCover             string
)

type SetDiscount struct {
	Kind  entity.DiscountKind
	Value string
}

type SetSocialLink struct {
	Platform entity.Platform
	Value    string
}

// Reduce returns the draft after u. The given draft is never modified.
func Reduce(d entity.CommunityDraft, u Update) entity.CommunityDraft {
	return u.apply(d.Clone())
}

func (u SetName) apply(d entity.CommunityDraft) entity.CommunityDraft {
	d.Name = string(u)
	return d
}

func (u SetCountry) apply(d entity.CommunityDraft) entity.CommunityDraft {
	d.Country = string(u)
	return d
}

func (u SetBio) apply(d entity.CommunityDraft) entity.CommunityDraft {
	d.Bio = string(u)
	return d
}

func (u SetLongDescription) apply(d entity.CommunityDraft) entity.CommunityDraft {
	d.LongDescription = string(u)
	return d
}

func (u SetCategory) apply(d entity.CommunityDraft) entity.CommunityDraft {
	d.Category = string(u)
	return d
}

func (u SetTags) apply(d entity.CommunityDraft) entity.CommunityDraft {
	d.Tags = entity.ParseTags(string(u))
	return d
}

// Choice updates with a value outside of their enum are ignored.

func (u SetStatus) apply(d entity.CommunityDraft) entity.CommunityDraft {
	if enum.IsValid(entity.Status(u)) {
		d.Status = entity.Status(u)
	}
	return d
}

func (u SetPriceType) apply(d entity.CommunityDraft) entity.CommunityDraft {
	if !enum.IsValid(entity.PriceType(u)) {
		return d
	}
	return pricing.SetPriceType(d, entity.PriceType(u))
}

func (u SetPrice) apply(d entity.CommunityDraft) entity.CommunityDraft {
	return pricing.SetPrice(d, string(u))
}

func (u SetCurrency) apply(d entity.CommunityDraft) entity.CommunityDraft {
	if !enum.IsValid(entity.Currency(u)) {
		return d
	}
	return pricing.SetCurrency(d, entity.Currency(u))
}

func (u SetFreeTrialDays) apply(d entity.CommunityDraft) entity.CommunityDraft {
	return pricing.SetFreeTrialDays(d, string(u))
}

func (u SetAllowInstallments) apply(d entity.CommunityDraft) entity.CommunityDraft {
	return pricing.SetAllowInstallments(d, bool(u))
}

func (u SetInstallmentCount) apply(d entity.CommunityDraft) entity.CommunityDraft {
	return pricing.SetInstallmentCount(d, string(u))
}

func (u SetDiscount) apply(d entity.CommunityDraft) entity.CommunityDraft {
	if !enum.IsValid(u.Kind) {
		return d
	}
	return pricing.SetDiscount(d, u.Kind, u.Value)
}

func (u SetSocialLink) apply(d entity.CommunityDraft) entity.CommunityDraft {
	d.SocialLinks[u.Platform] = u.Value
	return d
}

func (u SetLogo) apply(d entity.CommunityDraft) entity.CommunityDraft {
	d.Media.Logo = string(u)
	return d
}

func (u SetCover) apply(d entity.CommunityDraft) entity.CommunityDraft {
	d.Media.Cover = string(u)
	return d
}
