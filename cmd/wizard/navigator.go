package main

import (
	"context"

	"github.com/questx-lab/wizard/internal/domain/wizard"
	"github.com/questx-lab/wizard/pkg/xcontext"
)

// logNavigator stands in for the screen router: there is nowhere to go from a
// terminal, so intents are only recorded.
func logNavigator() wizard.Navigator {
	return wizard.NavigatorFunc(func(ctx context.Context, intent wizard.Intent) {
		xcontext.Logger(ctx).Infof("Navigate: %s", intent)
	})
}
