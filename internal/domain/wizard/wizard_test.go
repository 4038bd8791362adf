package wizard

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/questx-lab/wizard/internal/domain/social"
	"github.com/questx-lab/wizard/internal/domain/submission"
	"github.com/questx-lab/wizard/internal/entity"
	"github.com/questx-lab/wizard/internal/model"
	"github.com/questx-lab/wizard/pkg/testutil"
	"github.com/stretchr/testify/require"
)

type mockSubmitter struct {
	result  submission.Result
	drafts  []entity.CommunityDraft
	release chan struct{}
	started chan struct{}
}

func (m *mockSubmitter) Submit(ctx context.Context, d entity.CommunityDraft) submission.Result {
	m.drafts = append(m.drafts, d)
	if m.started != nil {
		close(m.started)
	}
	if m.release != nil {
		<-m.release
	}
	return m.result
}

type recordNavigator struct {
	intents []Intent
}

func (n *recordNavigator) Navigate(ctx context.Context, intent Intent) {
	n.intents = append(n.intents, intent)
}

func TestCanContinue_Identity(t *testing.T) {
	tests := []struct {
		name    string
		country string
		want    bool
	}{
		{name: "", country: "", want: false},
		{name: "Runners", country: "", want: false},
		{name: "", country: "Tunisia", want: false},
		{name: "   ", country: "Tunisia", want: false},
		{name: "Runners", country: "\t", want: false},
		{name: "Runners", country: "Tunisia", want: true},
	}

	for _, tt := range tests {
		d := entity.NewCommunityDraft()
		d = Reduce(d, SetName(tt.name))
		d = Reduce(d, SetCountry(tt.country))
		require.Equal(t, tt.want, CanContinue(StepIdentity, d, social.Errors{}), "%q/%q", tt.name, tt.country)
	}
}

func TestCanContinue_Pricing(t *testing.T) {
	d := entity.NewCommunityDraft()
	require.True(t, CanContinue(StepPricing, d, nil))

	d = Reduce(d, SetPriceType(entity.PriceTypeMonthly))
	require.False(t, CanContinue(StepPricing, d, nil))

	d = Reduce(d, SetPrice("abc"))
	require.False(t, CanContinue(StepPricing, d, nil))

	d = Reduce(d, SetPrice("Infinity"))
	require.False(t, CanContinue(StepPricing, d, nil))
	require.Equal(t, "0", d.FeeAmount)

	d = Reduce(d, SetPrice("0.5"))
	require.True(t, CanContinue(StepPricing, d, nil))
}

func TestCanContinue_SocialLinks(t *testing.T) {
	d := entity.NewCommunityDraft()
	require.False(t, CanContinue(StepSocialLinks, d, social.Errors{}))

	d = Reduce(d, SetSocialLink{Platform: entity.PlatformWebsite, Value: "  "})
	require.False(t, CanContinue(StepSocialLinks, d, social.Errors{}))

	d = Reduce(d, SetSocialLink{Platform: entity.PlatformWebsite, Value: "example.com"})
	require.True(t, CanContinue(StepSocialLinks, d, social.Errors{}))

	errs := social.Errors{}.Apply(entity.PlatformDiscord, "@nope")
	require.False(t, CanContinue(StepSocialLinks, d, errs))

	require.False(t, CanContinue(Step(9), d, social.Errors{}))
}

func fillIdentity(w *Wizard) {
	w.Dispatch(SetName("Runners"), SetCountry("Tunisia"))
}

func TestWizard_Navigation(t *testing.T) {
	ctx := testutil.MockContext()
	nav := &recordNavigator{}
	w := New(&mockSubmitter{}, nav)

	require.Equal(t, StepIdentity, w.Step())
	require.ErrorIs(t, w.Next(), ErrStepIncomplete)

	fillIdentity(w)
	require.NoError(t, w.Next())
	require.Equal(t, StepPricing, w.Step())

	w.Dispatch(SetPriceType(entity.PriceTypeYearly))
	require.ErrorIs(t, w.Next(), ErrStepIncomplete)
	w.Dispatch(SetPrice("120"))
	require.NoError(t, w.Next())
	require.Equal(t, StepSocialLinks, w.Step())
	require.ErrorIs(t, w.Next(), ErrLastStep)

	w.Back(ctx)
	require.Equal(t, StepPricing, w.Step())
	w.Back(ctx)
	require.Equal(t, StepIdentity, w.Step())
	require.Empty(t, nav.intents)

	w.Back(ctx)
	require.Equal(t, StepIdentity, w.Step())
	require.Equal(t, []Intent{IntentBack}, nav.intents)

	// Going back keeps the entered values.
	require.Equal(t, "Runners", w.Draft().Name)
	require.Equal(t, 120.0, w.Draft().Pricing.Price)
}

func TestWizard_Back_NilNavigator(t *testing.T) {
	w := New(&mockSubmitter{}, nil)
	require.NotPanics(t, func() { w.Back(testutil.MockContext()) })
	require.Equal(t, StepIdentity, w.Step())
}

func TestWizard_SocialErrors(t *testing.T) {
	w := New(&mockSubmitter{}, &recordNavigator{})

	w.Dispatch(SetSocialLink{Platform: entity.PlatformInstagram, Value: "@my.page_1"})
	require.Empty(t, w.Errors())

	w.Dispatch(SetSocialLink{Platform: entity.PlatformInstagram, Value: "not a url at all!!"})
	require.Equal(t, social.Errors{
		entity.PlatformInstagram: "Please enter a valid instagram URL or username",
	}, w.Errors())

	// The returned map is a copy.
	w.Errors()[entity.PlatformGithub] = "x"
	require.Len(t, w.Errors(), 1)

	w.Dispatch(SetSocialLink{Platform: entity.PlatformInstagram, Value: ""})
	require.Empty(t, w.Errors())
}

func walkToSocialLinks(t *testing.T, w *Wizard) {
	fillIdentity(w)
	require.NoError(t, w.Next())
	require.NoError(t, w.Next())
	require.Equal(t, StepSocialLinks, w.Step())
}

func TestWizard_Submit_NotLastStep(t *testing.T) {
	submitter := &mockSubmitter{}
	w := New(submitter, &recordNavigator{})

	_, err := w.Submit(testutil.MockContext())
	require.ErrorIs(t, err, ErrNotLastStep)
	require.Empty(t, submitter.drafts)
	require.False(t, w.Submitting())
}

func TestWizard_Submit_BlockedBySocialErrors(t *testing.T) {
	submitter := &mockSubmitter{}
	w := New(submitter, &recordNavigator{})
	walkToSocialLinks(t, w)

	w.Dispatch(SetSocialLink{Platform: entity.PlatformDiscord, Value: "@someone"})
	require.False(t, w.CanContinue())

	_, err := w.Submit(testutil.MockContext())
	require.ErrorIs(t, err, ErrStepIncomplete)
	require.Empty(t, submitter.drafts)
}

func TestWizard_Submit_NoSocialLinks(t *testing.T) {
	caller := &countingCaller{}
	w := New(submission.NewAdapter(caller), &recordNavigator{})
	walkToSocialLinks(t, w)

	result, err := w.Submit(testutil.MockContext())
	require.NoError(t, err)
	require.Equal(t, "At least one social link is required", result.Error)
	require.Equal(t, "At least one social link is required", w.LastError())
	require.Zero(t, caller.calls)
}

func TestWizard_Submit_Rejected(t *testing.T) {
	submitter := &mockSubmitter{result: submission.Result{Error: "Name already taken"}}
	nav := &recordNavigator{}
	w := New(submitter, nav)
	walkToSocialLinks(t, w)
	w.Dispatch(SetSocialLink{Platform: entity.PlatformGithub, Value: "octocat"})

	before := w.Draft()
	result, err := w.Submit(testutil.MockContext())
	require.NoError(t, err)
	require.False(t, result.Success)
	require.Equal(t, "Name already taken", w.LastError())
	require.Equal(t, before, w.Draft())
	require.Equal(t, StepSocialLinks, w.Step())
	require.Empty(t, nav.intents)
}

func TestWizard_Submit_Success(t *testing.T) {
	submitter := &mockSubmitter{result: submission.Result{Success: true, CommunityID: "c-1"}}
	nav := &recordNavigator{}
	w := New(submitter, nav)
	walkToSocialLinks(t, w)
	w.Dispatch(SetSocialLink{Platform: entity.PlatformGithub, Value: "octocat"})

	result, err := w.Submit(testutil.MockContext())
	require.NoError(t, err)
	require.True(t, result.Success)
	require.Equal(t, []Intent{IntentSubmitted}, nav.intents)
	require.Len(t, submitter.drafts, 1)
	require.Equal(t, "Runners", submitter.drafts[0].Name)

	require.Equal(t, StepIdentity, w.Step())
	require.Equal(t, entity.NewCommunityDraft(), w.Draft())
	require.Empty(t, w.LastError())
}

func TestWizard_Submit_OneInFlight(t *testing.T) {
	submitter := &mockSubmitter{
		result:  submission.Result{Error: "Name already taken"},
		release: make(chan struct{}),
		started: make(chan struct{}),
	}
	w := New(submitter, &recordNavigator{})
	walkToSocialLinks(t, w)
	w.Dispatch(SetSocialLink{Platform: entity.PlatformGithub, Value: "octocat"})

	ctx := testutil.MockContext()
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_, _ = w.Submit(ctx)
	}()

	select {
	case <-submitter.started:
	case <-time.After(5 * time.Second):
		t.Fatal("submission did not start")
	}

	require.True(t, w.Submitting())
	_, err := w.Submit(ctx)
	require.ErrorIs(t, err, ErrSubmitting)

	close(submitter.release)
	wg.Wait()
	require.False(t, w.Submitting())
	require.Len(t, submitter.drafts, 1)
}

type countingCaller struct {
	calls int
}

func (c *countingCaller) CreateCommunity(
	ctx context.Context, req *model.CreateCommunityRequest,
) (*model.CreateCommunityResponse, error) {
	c.calls++
	return &model.CreateCommunityResponse{Success: true}, nil
}
