package testutil

import (
	"context"
	"net/http"

	"github.com/questx-lab/wizard/config"
	"github.com/questx-lab/wizard/pkg/logger"
	"github.com/questx-lab/wizard/pkg/xcontext"
)

func MockContext() context.Context {
	cfg := config.Default()
	cfg.Env = "test"
	cfg.Api.AccessToken = "test-token"

	ctx := context.Background()
	ctx = xcontext.WithConfigs(ctx, cfg)
	ctx = xcontext.WithLogger(ctx, logger.NewNopLogger())
	ctx = xcontext.WithHTTPClient(ctx, &http.Client{Transport: &http.Transport{}})
	return ctx
}
