package wizard

import (
	"context"

	"github.com/questx-lab/wizard/pkg/enum"
)

type Intent string

var (
	// IntentBack asks to leave the wizard from its first step.
	IntentBack = enum.New(Intent("back"))
	// IntentSubmitted is issued once the community has been created.
	IntentSubmitted = enum.New(Intent("submitted"))
)

// Navigator owns routing. The wizard only tells it what happened.
type Navigator interface {
	Navigate(ctx context.Context, intent Intent)
}

type NavigatorFunc func(ctx context.Context, intent Intent)

func (f NavigatorFunc) Navigate(ctx context.Context, intent Intent) {
	f(ctx, intent)
}
