package mock

import (
	"context"

	"gitlab.com/a11yker/a11yk"
)

// Fetcher returns canned html or an error
type Fetcher struct {
	Body       []byte
	Err        error
	StatusCode int
	Calls      int
}

// Fetch records the call and returns Body/Err
func (f *Fetcher) Fetch(ctx context.Context, source *a11yk.Source) ([]byte, error) {
	f.Calls++
	source.StatusCode = f.StatusCode
	return f.Body, f.Err
}
