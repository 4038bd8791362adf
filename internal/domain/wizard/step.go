package wizard

import (
	"strings"

	"github.com/questx-lab/wizard/internal/domain/social"
	"github.com/questx-lab/wizard/internal/entity"
)

type Step int

const (
	StepIdentity Step = iota + 1
	StepPricing
	StepSocialLinks
)

func (s Step) String() string {
	switch s {
	case StepIdentity:
		return "identity"
	case StepPricing:
		return "pricing"
	case StepSocialLinks:
		return "social links"
	default:
		return "unknown"
	}
}

// CanContinue decides whether the Continue (or, on the last step, Create)
// action is enabled.
func CanContinue(step Step, d entity.CommunityDraft, errs social.Errors) bool {
	switch step {
	case StepIdentity:
		return strings.TrimSpace(d.Name) != "" && strings.TrimSpace(d.Country) != ""
	case StepPricing:
		return d.Pricing.PriceType == entity.PriceTypeFree || d.Pricing.Price > 0
	case StepSocialLinks:
		return d.HasSocialLink() && errs.Empty()
	default:
		return false
	}
}
