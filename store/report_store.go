package store

import (
	"os"

	badger "github.com/dgraph-io/badger/v2"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	uuid "github.com/satori/go.uuid"
	"gitlab.com/a11yker/a11yk"
)

// ErrRunNotFound no run with that id
var ErrRunNotFound = errors.New("run not found")

// ReportStore keeps the history of runs: rendered report text and counts
type ReportStore struct {
	Store    *badger.DB
	filepath string
}

var _ a11yk.ReportStorer = (*ReportStore)(nil)

// NewReportStore for run history
func NewReportStore(filepath string) *ReportStore {
	return &ReportStore{filepath: filepath}
}

// Init the report storage
func (s *ReportStore) Init() error {
	var err error

	if err = os.MkdirAll(s.filepath, 0755); err != nil {
		return err
	}

	opts := badger.DefaultOptions(s.filepath).WithLogger(badgerLogger{})
	s.Store, err = badger.Open(opts)

	if errors.Is(err, badger.ErrTruncateNeeded) {
		log.Warn().Msg("there was a failure re-opening database, trying to recover")
		opts.Truncate = true
		s.Store, err = badger.Open(opts)
	}

	if err != nil {
		return errors.Wrap(err, "opening report store")
	}
	return nil
}

// AddRun assigns an id if the run doesn't have one and stores it
func (s *ReportStore) AddRun(run *a11yk.Run) error {
	if run.ID == "" {
		run.ID = uuid.NewV4().String()
	}
	data, err := EncodeRun(run)
	if err != nil {
		return errors.Wrap(err, "encoding run")
	}
	key := RunKey(run.CreatedAt, run.ID)

	return s.Store.Update(func(txn *badger.Txn) error {
		if err := txn.Set(key, data); err != nil {
			return err
		}
		return txn.Set(MakeKey([]byte(run.ID), indexPredicate), key)
	})
}

// Runs oldest first
func (s *ReportStore) Runs() ([]*a11yk.Run, error) {
	runs := make([]*a11yk.Run, 0)
	prefix := MakeKey(nil, runPredicate)

	err := s.Store.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			data, err := it.Item().ValueCopy(nil)
			if err != nil {
				return err
			}
			run, err := DecodeRun(data)
			if err != nil {
				log.Warn().Err(err).Str("key", string(GetID(it.Item().Key()))).Msg("skipping undecodable run")
				continue
			}
			runs = append(runs, run)
		}
		return nil
	})
	return runs, err
}

// Run by id
func (s *ReportStore) Run(id string) (*a11yk.Run, error) {
	var run *a11yk.Run
	err := s.Store.View(func(txn *badger.Txn) error {
		idx, err := txn.Get(MakeKey([]byte(id), indexPredicate))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return ErrRunNotFound
		} else if err != nil {
			return err
		}
		key, err := idx.ValueCopy(nil)
		if err != nil {
			return err
		}
		item, err := txn.Get(key)
		if err != nil {
			return errors.Wrap(err, "run index points to missing entry")
		}
		data, err := item.ValueCopy(nil)
		if err != nil {
			return err
		}
		run, err = DecodeRun(data)
		return err
	})
	return run, err
}

// Close the report store
func (s *ReportStore) Close() error {
	if s.Store == nil {
		return nil
	}
	return s.Store.Close()
}
