package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"
	"gitlab.com/a11yker/clicmds"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	app := cli.NewApp()
	app.Name = "a11yker"
	app.Version = "0.1"
	app.Usage = "Fast heuristic accessibility triage for a single page"
	app.Reader = os.Stdin
	app.Commands = []*cli.Command{
		{
			Name:      "check",
			Aliases:   []string{"c"},
			Usage:     "check a URL or local HTML file and write a report",
			ArgsUsage: "[url or file]",
			Action:    clicmds.Check,
			Flags:     clicmds.CheckFlags(),
		},
		{
			Name:    "history",
			Aliases: []string{"hist"},
			Usage:   "list previous runs or print a stored report",
			Action:  clicmds.History,
			Flags:   clicmds.HistoryFlags(),
		},
		{
			Name:   "config",
			Usage:  "print the default config file",
			Action: clicmds.PrintConfig,
			Flags:  clicmds.ConfigFlags(),
		},
	}
	err := app.Run(os.Args)
	if err != nil {
		log.Fatal().Err(err).Msg("a11yker failed")
	}
}
