package main

import (
	"fmt"
	"io"

	"github.com/questx-lab/wizard/config"
	"github.com/questx-lab/wizard/internal/domain/wizard"
	"github.com/questx-lab/wizard/pkg/errorx"
	"github.com/urfave/cli/v2"
)

func (s *srv) validate(ctx *cli.Context) error {
	if err := s.loadConfig(""); err != nil {
		return err
	}
	s.loadLogger()

	w, err := replayDraft(ctx.String(draftFlag.Name), nil, logNavigator())
	if err != nil {
		return err
	}

	if !printReport(ctx.App.Writer, w) {
		return cli.Exit("draft is incomplete", 1)
	}

	return nil
}

func (s *srv) submit(ctx *cli.Context) error {
	if err := s.loadConfig(ctx.String(configFlag.Name)); err != nil {
		return err
	}
	s.loadLogger()
	s.loadEndpoint()
	s.loadDomains()

	w, err := replayDraft(ctx.String(draftFlag.Name), s.submitter, logNavigator())
	if err != nil {
		return err
	}

	if err := walkToLastStep(w); err != nil {
		printReport(ctx.App.Writer, w)
		return err
	}

	result, err := w.Submit(s.context(ctx.Context))
	if err != nil {
		return err
	}

	if !result.Success {
		return cli.Exit(result.Error, 1)
	}

	fmt.Fprintf(ctx.App.Writer, "Community created: %s\n", result.CommunityID)
	return nil
}

func (s *srv) currencies(ctx *cli.Context) error {
	for _, c := range config.Currencies {
		fmt.Fprintf(ctx.App.Writer, "%s\t%s\t%s\n", c.Code, c.Symbol, c.Name)
	}

	return nil
}

func replayDraft(path string, submitter wizard.Submitter, navigator wizard.Navigator) (*wizard.Wizard, error) {
	f, err := loadDraftFile(path)
	if err != nil {
		return nil, err
	}

	updates, err := f.Updates()
	if err != nil {
		return nil, err
	}

	w := wizard.New(submitter, navigator)
	w.Dispatch(updates...)
	return w, nil
}

// walkToLastStep presses Continue until the last step, stopping at the first
// step that is not complete.
func walkToLastStep(w *wizard.Wizard) error {
	for w.Step() != wizard.StepSocialLinks {
		if err := w.Next(); err != nil {
			return errorx.New(errorx.StepIncomplete, "Step %s is not complete", w.Step())
		}
	}

	return nil
}

// printReport writes one line per step and one per invalid social link. It
// returns whether every step is complete.
func printReport(out io.Writer, w *wizard.Wizard) bool {
	draft, errs := w.Draft(), w.Errors()
	complete := true
	for step := wizard.StepIdentity; step <= wizard.StepSocialLinks; step++ {
		status := "ok"
		if !wizard.CanContinue(step, draft, errs) {
			status = "incomplete"
			complete = false
		}
		fmt.Fprintf(out, "%d. %-12s %s\n", step, step, status)
	}

	for _, platform := range errs.Platforms() {
		fmt.Fprintf(out, "   %s: %s\n", platform, errs[platform])
	}

	return complete
}

