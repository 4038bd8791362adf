package main

import "github.com/urfave/cli/v2"

var (
	configFlag = &cli.StringFlag{
		Name:    "config",
		Aliases: []string{"c"},
		Usage:   "path of the TOML config file",
	}
	draftFlag = &cli.StringFlag{
		Name:     "draft",
		Aliases:  []string{"d"},
		Usage:    "path of the draft file (.toml, .yaml or .yml)",
		Required: true,
	}
)

func (s *srv) loadApp() {
	app := cli.NewApp()
	app.Action = cli.ShowAppHelp
	app.Name = "wizard"
	app.Usage = "Create a community from a draft file"
	app.Commands = []*cli.Command{
		{
			Action:      s.validate,
			Name:        "validate",
			Usage:       "Check a draft without submitting it",
			Flags:       []cli.Flag{draftFlag},
			Category:    "Draft",
			Description: `Replays the draft through the wizard and prints which steps are complete and which social links are invalid.`,
		},
		{
			Action:      s.submit,
			Name:        "submit",
			Usage:       "Create the community described by a draft",
			Flags:       []cli.Flag{configFlag, draftFlag},
			Category:    "Draft",
			Description: `Replays the draft, walks the three steps and sends it to the community service.`,
		},
		{
			Action:      s.currencies,
			Name:        "currencies",
			Usage:       "List the supported currencies",
			Category:    "Info",
			Description: `Prints the currencies a community can be priced in.`,
		},
	}

	s.app = app
}
