package scanner

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
	"gitlab.com/a11yker/a11yk"
	"gitlab.com/a11yker/scanner/checks"
	"gitlab.com/a11yker/scanner/document"
	"gitlab.com/a11yker/scanner/fetch"
	"gitlab.com/a11yker/scanner/report"
)

// A11yker is our engine, one document per Run
type A11yker struct {
	cfg      *a11yk.Config
	rules    *a11yk.Rules
	checks   []*a11yk.Check
	fetcher  a11yk.Fetcher
	reporter a11yk.Reporter
	store    a11yk.ReportStorer
	now      func() time.Time
}

// Result of a completed run
type Result struct {
	Source     *a11yk.Source
	Findings   []*a11yk.Finding
	Report     string
	ReportPath string
	RunID      string
}

// New engine with the default checks, fetcher and reporter
func New(cfg *a11yk.Config) *A11yker {
	if cfg == nil {
		cfg = a11yk.DefaultConfig()
	}
	rules := cfg.Rules.Merge(a11yk.DefaultRules())
	return &A11yker{
		cfg:      cfg,
		rules:    rules,
		checks:   checks.Default(),
		fetcher:  fetch.New(cfg),
		reporter: report.New(rules),
		now:      time.Now,
	}
}

// SetFetcher overrides the default fetcher
func (a *A11yker) SetFetcher(fetcher a11yk.Fetcher) *A11yker {
	a.fetcher = fetcher
	return a
}

// SetReporter overrides the default reporter
func (a *A11yker) SetReporter(reporter a11yk.Reporter) *A11yker {
	a.reporter = reporter
	return a
}

// SetStore enables run history, the caller owns Init/Close
func (a *A11yker) SetStore(store a11yk.ReportStorer) *A11yker {
	a.store = store
	return a
}

// SetChecks replaces the check list (order is kept)
func (a *A11yker) SetChecks(c []*a11yk.Check) *A11yker {
	a.checks = c
	return a
}

// SetClock for report timestamps
func (a *A11yker) SetClock(now func() time.Time) *A11yker {
	a.now = now
	return a
}

// Rules in effect after merging the config with defaults
func (a *A11yker) Rules() *a11yk.Rules {
	return a.rules
}

// Analyze runs every check in order and concatenates their findings. It
// cannot fail, an empty slice means nothing was found.
func (a *A11yker) Analyze(doc a11yk.Document) []*a11yk.Finding {
	findings := make([]*a11yk.Finding, 0)
	for _, check := range a.checks {
		found := check.Run(a.rules, doc)
		log.Debug().Str("check", check.ID).Str("name", check.Name).Int("findings", len(found)).Msg("check complete")
		findings = append(findings, found...)
	}
	return findings
}

// Render findings with the configured reporter
func (a *A11yker) Render(findings []*a11yk.Finding) string {
	return a.reporter.Render(findings)
}

// Load fetches and parses the source. Any error is a *a11yk.FetchError or *a11yk.ParseError.
func (a *A11yker) Load(ctx context.Context, source *a11yk.Source) (a11yk.Document, error) {
	raw, err := a.fetcher.Fetch(ctx, source)
	if err != nil {
		return nil, err
	}
	return document.ParseBytes(source.Identifier, raw)
}

// Run the whole pipeline for one identifier: load, analyze, render and write
// the report file. Fetch/parse failures stop the run before any report exists.
func (a *A11yker) Run(ctx context.Context, identifier string) (*Result, error) {
	source := ResolveSource(identifier)
	log.Info().Str("source", source.Identifier).Str("type", source.Type.String()).Msg("checking accessibility")

	doc, err := a.Load(ctx, source)
	if err != nil {
		log.Error().Err(err).Msg("failed to load document")
		return nil, err
	}

	findings := a.Analyze(doc)
	text := a.Render(findings)
	now := a.now()

	path, err := report.Write(a.cfg.OutputDir, source, now, text)
	if err != nil {
		log.Error().Err(err).Msg("failed to write report")
		return nil, err
	}
	log.Info().Str("path", path).Int("findings", len(findings)).Msg("report saved")

	result := &Result{Source: source, Findings: findings, Report: text, ReportPath: path}
	a.saveRun(result, now)
	return result, nil
}

// saveRun to history, failures are logged only since the report file already exists
func (a *A11yker) saveRun(result *Result, now time.Time) {
	if a.store == nil {
		return
	}
	counts := make(map[string]int)
	for cat, n := range a11yk.CountByCategory(result.Findings) {
		counts[cat.String()] = n
	}
	run := &a11yk.Run{
		Source:      result.Source.Identifier,
		SourceType:  result.Source.Type,
		StatusCode:  result.Source.StatusCode,
		CreatedAt:   now,
		Counts:      counts,
		ReportPath:  result.ReportPath,
		Report:      result.Report,
		NumFindings: len(result.Findings),
	}
	if err := a.store.AddRun(run); err != nil {
		log.Warn().Err(err).Msg("failed to store run history")
		return
	}
	result.RunID = run.ID
}
