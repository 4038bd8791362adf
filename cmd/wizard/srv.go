package main

import (
	"context"
	"net/http"

	"github.com/questx-lab/wizard/config"
	"github.com/questx-lab/wizard/internal/client"
	"github.com/questx-lab/wizard/internal/domain/submission"
	"github.com/questx-lab/wizard/pkg/api"
	"github.com/questx-lab/wizard/pkg/logger"
	"github.com/questx-lab/wizard/pkg/xcontext"
	"github.com/urfave/cli/v2"
)

type srv struct {
	app *cli.App

	configs config.Configs
	logger  logger.Logger

	httpClient   *http.Client
	apiGenerator api.Generator

	communityCaller client.CommunityCaller
	submitter       *submission.Adapter
}

func (s *srv) loadConfig(path string) error {
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}

	s.configs = cfg
	return nil
}

func (s *srv) loadLogger() {
	s.logger = logger.NewLogger(logger.ParseLevel(s.configs.Log.Level))
}

// syncLogger flushes buffered log entries before the process exits.
func (s *srv) syncLogger() {
	if l, ok := s.logger.(interface{ Sync() error }); ok {
		_ = l.Sync()
	}
}

func (s *srv) loadEndpoint() {
	s.httpClient = &http.Client{Timeout: s.configs.Api.Timeout}
	s.apiGenerator = api.NewGenerator(s.configs.Api.Endpoints...)
}

func (s *srv) loadDomains() {
	s.communityCaller = client.NewCommunityCaller(s.apiGenerator)
	s.submitter = submission.NewAdapter(s.communityCaller)
}

func (s *srv) context(parent context.Context) context.Context {
	ctx := xcontext.WithConfigs(parent, s.configs)
	ctx = xcontext.WithLogger(ctx, s.logger)
	if s.httpClient != nil {
		ctx = xcontext.WithHTTPClient(ctx, s.httpClient)
	}

	return ctx
}
