// Package wizard holds the state of the three step create-community wizard.
package wizard

import (
	"context"
	"sync/atomic"

	"github.com/questx-lab/wizard/internal/domain/social"
	"github.com/questx-lab/wizard/internal/domain/submission"
	"github.com/questx-lab/wizard/internal/entity"
	"github.com/questx-lab/wizard/pkg/errorx"
	"github.com/questx-lab/wizard/pkg/xcontext"
)

var (
	ErrStepIncomplete = errorx.New(errorx.StepIncomplete, "Please complete this step before continuing")
	ErrNotLastStep    = errorx.New(errorx.StepIncomplete, "Please complete the previous steps first")
	ErrLastStep       = errorx.New(errorx.BadRequest, "This is the last step")
	ErrSubmitting     = errorx.New(errorx.Submitting, "The community is already being created")
)

type Submitter interface {
	Submit(context.Context, entity.CommunityDraft) submission.Result
}

// Wizard is driven by a single event loop. Submit is the only method that
// guards against being called again while a call is in flight.
type Wizard struct {
	submitter Submitter
	navigator Navigator

	draft     entity.CommunityDraft
	errors    social.Errors
	step      Step
	lastError string

	submitting atomic.Bool
}

// New starts a wizard on its first step with a fresh draft. A nil navigator
// drops every intent.
func New(submitter Submitter, navigator Navigator) *Wizard {
	if navigator == nil {
		navigator = NavigatorFunc(func(context.Context, Intent) {})
	}

	return &Wizard{
		submitter: submitter,
		navigator: navigator,
		draft:     entity.NewCommunityDraft(),
		errors:    social.Errors{},
		step:      StepIdentity,
	}
}

func (w *Wizard) Draft() entity.CommunityDraft {
	return w.draft.Clone()
}

func (w *Wizard) Errors() social.Errors {
	return w.errors.Clone()
}

func (w *Wizard) Step() Step {
	return w.step
}

func (w *Wizard) Submitting() bool {
	return w.submitting.Load()
}

// LastError is the message of the last failed submission, cleared by the next
// submission attempt.
func (w *Wizard) LastError() string {
	return w.lastError
}

// Dispatch applies updates in order. Social link updates are validated right
// away.
func (w *Wizard) Dispatch(updates ...Update) {
	for _, u := range updates {
		w.draft = Reduce(w.draft, u)
		if link, ok := u.(SetSocialLink); ok {
			w.errors = w.errors.Apply(link.Platform, link.Value)
		}
	}
}

func (w *Wizard) CanContinue() bool {
	return CanContinue(w.step, w.draft, w.errors)
}

func (w *Wizard) Next() error {
	if w.step == StepSocialLinks {
		return ErrLastStep
	}

	if !w.CanContinue() {
		return ErrStepIncomplete
	}

	w.step++
	return nil
}

func (w *Wizard) Back(ctx context.Context) {
	if w.step == StepIdentity {
		w.navigator.Navigate(ctx, IntentBack)
		return
	}

	w.step--
}

// Submit sends the current draft. A failed submission keeps the draft as it
// is; a successful one navigates away and starts over with a fresh draft.
func (w *Wizard) Submit(ctx context.Context) (submission.Result, error) {
	if !w.submitting.CompareAndSwap(false, true) {
		return submission.Result{}, ErrSubmitting
	}
	defer w.submitting.Store(false)

	if w.step != StepSocialLinks {
		return submission.Result{}, ErrNotLastStep
	}

	// The missing link case is left to the submitter, which checks it again.
	if !w.errors.Empty() {
		return submission.Result{}, ErrStepIncomplete
	}

	w.lastError = ""
	result := w.submitter.Submit(ctx, w.draft)
	if !result.Success {
		w.lastError = result.Error
		return result, nil
	}

	xcontext.Logger(ctx).Debugf("Wizard finished, discarding draft %q", w.draft.Name)
	w.draft = entity.NewCommunityDraft()
	w.errors = social.Errors{}
	w.step = StepIdentity
	w.navigator.Navigate(ctx, IntentSubmitted)
	return result, nil
}
