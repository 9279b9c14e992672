package a11yk

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrAccessRestricted the server refused us (401/403)
	ErrAccessRestricted = errors.New("access restricted")
	// ErrHTTPStatus the server returned a 4xx/5xx
	ErrHTTPStatus = errors.New("failed to fetch page")
	// ErrBodyTooLarge the page is over the fetcher's size limit
	ErrBodyTooLarge = errors.New("page too large")
	// ErrEmptyDocument nothing to parse
	ErrEmptyDocument = errors.New("empty document")
)

// FetchError when a URL or local file could not be loaded. StatusCode is set for HTTP failures.
type FetchError struct {
	Source     string
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	switch {
	case errors.Is(e.Err, ErrAccessRestricted):
		return fmt.Sprintf("%s: access restricted (HTTP %d), the page may require login, special headers, or blocks automated access", e.Source, e.StatusCode)
	case e.StatusCode != 0:
		return fmt.Sprintf("%s: failed to fetch page (HTTP %d)", e.Source, e.StatusCode)
	}
	return fmt.Sprintf("%s: %v", e.Source, e.Err)
}

// Unwrap for errors.Is/As
func (e *FetchError) Unwrap() error { return e.Err }

// Cause for errors.Cause
func (e *FetchError) Cause() error { return e.Err }

// ParseError when the markup could not be turned into a document
type ParseError struct {
	Source string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: unable to parse html: %v", e.Source, e.Err)
}

// Unwrap for errors.Is/As
func (e *ParseError) Unwrap() error { return e.Err }

// Cause for errors.Cause
func (e *ParseError) Cause() error { return e.Err }
