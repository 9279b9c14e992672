package clicmds

import (
	"fmt"
	"sort"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"
	"gitlab.com/a11yker/a11yk"
	"gitlab.com/a11yker/store"
)

// HistoryFlags for the history command
func HistoryFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:  "datadir",
			Usage: "run history directory",
			Value: "a11ykerdata",
		},
		&cli.StringFlag{
			Name:  "show",
			Usage: "print the stored report of this run id",
			Value: "",
		},
		&cli.IntFlag{
			Name:  "limit",
			Usage: "only list the most recent N runs (0 for all)",
			Value: 20,
		},
	}
}

// History lists previous runs or prints one stored report
func History(ctx *cli.Context) error {
	reports := store.NewReportStore(ctx.String("datadir"))
	if err := reports.Init(); err != nil {
		log.Error().Err(err).Msg("failed to init database for viewing")
		return err
	}
	defer reports.Close()

	if id := ctx.String("show"); id != "" {
		run, err := reports.Run(id)
		if err != nil {
			return err
		}
		fmt.Fprint(ctx.App.Writer, run.Report)
		return nil
	}

	runs, err := reports.Runs()
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Fprintln(ctx.App.Writer, "No runs recorded")
		return nil
	}
	if limit := ctx.Int("limit"); limit > 0 && len(runs) > limit {
		runs = runs[len(runs)-limit:]
	}
	fmt.Fprintf(ctx.App.Writer, "Had %d runs\n", len(runs))
	for _, run := range runs {
		fmt.Fprintln(ctx.App.Writer, printRunDetails(run))
	}
	return nil
}

func printRunDetails(run *a11yk.Run) string {
	ret := fmt.Sprintf("%s %s [%s %s]", run.ID, formatTime(run.CreatedAt), run.SourceType, run.Source)
	if run.StatusCode != 0 {
		ret += fmt.Sprintf(" HTTP %d", run.StatusCode)
	}
	ret += fmt.Sprintf(" %d finding(s)", run.NumFindings)

	cats := make([]string, 0, len(run.Counts))
	for cat := range run.Counts {
		cats = append(cats, cat)
	}
	sort.Strings(cats)
	counts := make([]string, 0, len(cats))
	for _, cat := range cats {
		counts = append(counts, fmt.Sprintf("%s=%d", cat, run.Counts[cat]))
	}
	if len(counts) > 0 {
		ret += " (" + strings.Join(counts, " ") + ")"
	}
	return ret + " -> " + run.ReportPath
}
