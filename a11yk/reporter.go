package a11yk

import (
	"context"
	"time"
)

// SourceType where the html came from
type SourceType int8

const (
	// SourceURL http or https
	SourceURL SourceType = iota + 1
	// SourceFile local path
	SourceFile
)

func (s SourceType) String() string {
	if s == SourceURL {
		return "url"
	}
	return "file"
}

// Source meta data about the input of a run
type Source struct {
	Identifier string
	Type       SourceType
	StatusCode int // only for urls
}

// Fetcher loads raw html for a URL or local file
type Fetcher interface {
	Fetch(ctx context.Context, source *Source) ([]byte, error)
}

// Reporter turns findings into report text
type Reporter interface {
	Render(findings []*Finding) string
}

// Run is what we keep of a completed analysis: the rendered report and counts,
// never the findings themselves.
type Run struct {
	ID          string
	Source      string
	SourceType  SourceType
	StatusCode  int
	CreatedAt   time.Time
	Counts      map[string]int
	ReportPath  string
	Report      string
	NumFindings int
}

// ReportStorer keeps a history of runs
type ReportStorer interface {
	Init() error
	AddRun(run *Run) error
	Runs() ([]*Run, error)
	Run(id string) (*Run, error)
	Close() error
}
