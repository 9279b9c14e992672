package clicmds

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"
	"gitlab.com/a11yker/a11yk"
	"gitlab.com/a11yker/scanner"
	"gitlab.com/a11yker/scanner/report"
	"gitlab.com/a11yker/store"
)

// ErrNoSource nothing given on the command line, config or prompt
var ErrNoSource = errors.New("no input provided")

// CheckFlags for the check command
func CheckFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:  "source",
			Usage: "URL (https://...) or local HTML file path, may also be given as an argument",
			Value: "",
		},
		&cli.StringFlag{
			Name:  "config",
			Usage: "config to use",
			Value: "",
		},
		&cli.StringFlag{
			Name:  "outdir",
			Usage: "directory to write the report to",
			Value: ".",
		},
		&cli.StringFlag{
			Name:  "datadir",
			Usage: "run history directory",
			Value: "a11ykerdata",
		},
		&cli.IntFlag{
			Name:  "timeout",
			Usage: "seconds to wait when fetching a URL",
			Value: 20,
		},
		&cli.BoolFlag{
			Name:  "no-history",
			Usage: "don't record this run in the history database",
			Value: false,
		},
		&cli.BoolFlag{
			Name:  "stdout",
			Usage: "also print the report to stdout",
			Value: false,
		},
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"v"},
			Usage:   "debug logging",
			Value:   false,
		},
	}
}

// Check runs the accessibility checks against one page and writes the report
func Check(ctx *cli.Context) error {
	if ctx.Bool("verbose") {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	cfg, err := checkConfig(ctx)
	if err != nil {
		return err
	}

	if cfg.Source == "" {
		cfg.Source, err = promptSource(ctx.App.Reader, ctx.App.Writer)
		if err != nil {
			return err
		}
	}

	engine := scanner.New(cfg)
	if !cfg.NoHistory {
		reports := store.NewReportStore(cfg.DataPath)
		if err := reports.Init(); err != nil {
			// history is optional, the report file is what matters
			log.Warn().Err(err).Msg("failed to init history database, continuing without it")
		} else {
			defer reports.Close()
			engine.SetStore(reports)
		}
	}

	result, err := engine.Run(context.Background(), cfg.Source)
	if err != nil {
		return err
	}

	if ctx.Bool("stdout") {
		fmt.Fprint(ctx.App.Writer, result.Report)
	}
	fmt.Fprintln(ctx.App.Writer, report.Summary(result.Findings))
	fmt.Fprintf(ctx.App.Writer, "Report saved to: %s\n", result.ReportPath)
	if result.RunID != "" {
		log.Debug().Str("run_id", result.RunID).Msg("run recorded")
	}
	return nil
}

// checkConfig loads the config file then applies any flags that were set
func checkConfig(ctx *cli.Context) (*a11yk.Config, error) {
	cfg, err := LoadConfig(ctx.String("config"))
	if err != nil {
		return nil, err
	}

	if ctx.Args().Present() {
		cfg.Source = ctx.Args().First()
	} else if ctx.IsSet("source") {
		cfg.Source = ctx.String("source")
	}
	if ctx.IsSet("outdir") || ctx.String("config") == "" {
		cfg.OutputDir = ctx.String("outdir")
	}
	if ctx.IsSet("datadir") || ctx.String("config") == "" {
		cfg.DataPath = ctx.String("datadir")
	}
	if ctx.IsSet("timeout") {
		cfg.Timeout = ctx.Int("timeout")
	}
	if ctx.Bool("no-history") {
		cfg.NoHistory = true
	}
	cfg.Source = strings.TrimSpace(cfg.Source)
	return cfg, nil
}

// promptSource asks for the input interactively
func promptSource(in io.Reader, out io.Writer) (string, error) {
	if in == nil {
		return "", ErrNoSource
	}
	fmt.Fprintln(out, "Basic Accessibility Checker (URL or local HTML)")
	fmt.Fprintln(out, strings.Repeat("-", 48))
	fmt.Fprint(out, "Enter a URL (https://...) or a local HTML file path: ")

	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && err != io.EOF {
		return "", errors.Wrap(err, "reading input")
	}
	source := strings.TrimSpace(line)
	if source == "" {
		return "", ErrNoSource
	}
	return source, nil
}

// formatTime for history listings
func formatTime(t time.Time) string {
	return t.Local().Format("2006-01-02 15:04:05")
}
