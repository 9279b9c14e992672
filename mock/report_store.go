package mock

import (
	"fmt"

	"github.com/pkg/errors"
	"gitlab.com/a11yker/a11yk"
)

// ReportStore keeps runs in memory
type ReportStore struct {
	runs   []*a11yk.Run
	AddErr error
	Inited bool
	Closed bool
}

// Init marks the store as initialized
func (s *ReportStore) Init() error {
	s.Inited = true
	return nil
}

// AddRun appends unless AddErr is set, ids are run-1, run-2...
func (s *ReportStore) AddRun(run *a11yk.Run) error {
	if s.AddErr != nil {
		return s.AddErr
	}
	run.ID = fmt.Sprintf("run-%d", len(s.runs)+1)
	s.runs = append(s.runs, run)
	return nil
}

// Runs returns every stored run
func (s *ReportStore) Runs() ([]*a11yk.Run, error) {
	return s.runs, nil
}

// Run by id
func (s *ReportStore) Run(id string) (*a11yk.Run, error) {
	for _, r := range s.runs {
		if r.ID == id {
			return r, nil
		}
	}
	return nil, errors.New("run not found")
}

// Close marks the store closed
func (s *ReportStore) Close() error {
	s.Closed = true
	return nil
}
