package store

import (
	"bytes"
	"encoding/binary"
	"time"

	"github.com/vmihailenco/msgpack/v4"
	"gitlab.com/a11yker/a11yk"
)

const (
	runPredicate   = "run"
	indexPredicate = "id"
)

// MakeKey of a predicate and id
func MakeKey(id []byte, predicate string) []byte {
	key := []byte(predicate)
	key = append(key, byte(':'))
	key = append(key, id...)
	return key
}

// GetID of key from a pred:key
func GetID(key []byte) []byte {
	split := bytes.SplitN(key, []byte(":"), 2)
	if len(split) == 1 {
		return []byte{}
	}
	return split[1]
}

// GetPredicate from pred:key
func GetPredicate(key []byte) []byte {
	split := bytes.SplitN(key, []byte(":"), 2)
	return split[0]
}

// RunKey sorts by creation time so iterating the run prefix is chronological
func RunKey(createdAt time.Time, id string) []byte {
	ts := make([]byte, 8)
	binary.BigEndian.PutUint64(ts, uint64(createdAt.UnixNano()))
	return MakeKey(append(ts, []byte(id)...), runPredicate)
}

// EncodeRun into msgpack
func EncodeRun(run *a11yk.Run) ([]byte, error) {
	return msgpack.Marshal(run)
}

// DecodeRun from msgpack
func DecodeRun(data []byte) (*a11yk.Run, error) {
	run := &a11yk.Run{}
	if err := msgpack.Unmarshal(data, run); err != nil {
		return nil, err
	}
	return run, nil
}
