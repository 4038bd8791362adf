// Package submission turns a finished draft into a create-community call and
// reduces the outcome to a single message for the user.
package submission

import (
	"context"
	"strings"

	"github.com/questx-lab/wizard/internal/client"
	"github.com/questx-lab/wizard/internal/domain/pricing"
	"github.com/questx-lab/wizard/internal/entity"
	"github.com/questx-lab/wizard/internal/model"
	"github.com/questx-lab/wizard/pkg/errorx"
	"github.com/questx-lab/wizard/pkg/xcontext"
)

const (
	ErrMissingSocialLink = "At least one social link is required"
	ErrCreateFailed      = "Failed to create community. Please try again."
)

type Result struct {
	Success     bool
	Error       string
	CommunityID string
}

type Adapter struct {
	caller client.CommunityCaller
}

func NewAdapter(caller client.CommunityCaller) *Adapter {
	return &Adapter{caller: caller}
}

// Submit sends one create request. It never retries, and draft is left as it
// was so the user can fix it and submit again.
func (a *Adapter) Submit(ctx context.Context, draft entity.CommunityDraft) Result {
	if !draft.HasSocialLink() {
		return Result{Error: ErrMissingSocialLink}
	}

	req := NewCreateCommunityRequest(draft)
	resp, err := a.caller.CreateCommunity(ctx, req)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot create community %q: %v", req.Name, err)
		return Result{Error: errorx.Message(err, ErrCreateFailed)}
	}

	if !resp.Success {
		xcontext.Logger(ctx).Warnf("Community %q was rejected: %s", req.Name, resp.Error)
		if resp.Error == "" {
			return Result{Error: ErrCreateFailed}
		}
		return Result{Error: resp.Error}
	}

	xcontext.Logger(ctx).Infof("Community %q created (id %s)", req.Name, resp.ID)
	return Result{Success: true, CommunityID: resp.ID}
}

// NewCreateCommunityRequest builds the endpoint payload from a normalized copy
// of draft. Blank social links are left out.
func NewCreateCommunityRequest(draft entity.CommunityDraft) *model.CreateCommunityRequest {
	d := pricing.Normalize(draft.Clone())

	tags := d.Tags
	if tags == nil {
		tags = []string{}
	}

	links := map[string]string{}
	for platform, link := range d.SocialLinks {
		if link = strings.TrimSpace(link); link != "" {
			links[string(platform)] = link
		}
	}

	return &model.CreateCommunityRequest{
		Name:            strings.TrimSpace(d.Name),
		Country:         strings.TrimSpace(d.Country),
		Bio:             d.Bio,
		LongDescription: d.LongDescription,
		Category:        d.Category,
		Tags:            tags,
		Status:          string(d.Status),
		JoinFee:         string(d.JoinFee),
		FeeAmount:       d.FeeAmount,
		Currency:        string(d.Currency),
		Pricing:         d.Pricing,
		SocialLinks:     links,
		Logo:            d.Media.Logo,
		Cover:           d.Media.Cover,
	}
}
