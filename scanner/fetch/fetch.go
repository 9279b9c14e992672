// Package fetch loads raw html from a URL or a local file.
package fetch

import (
	"bytes"
	"context"
	"io"
	"io/ioutil"
	"net/http"
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"gitlab.com/a11yker/a11yk"
	"golang.org/x/net/html/charset"
)

// DefaultMaxBodySize of a page we are willing to analyze
const DefaultMaxBodySize = 32 << 20

// Fetcher for both urls and files. Redirects are followed by the http client.
// Bodies are returned as UTF-8 whatever charset the page was served in.
type Fetcher struct {
	client      *http.Client
	userAgent   string
	maxBodySize int64
}

var _ a11yk.Fetcher = (*Fetcher)(nil)

// New fetcher from config
func New(cfg *a11yk.Config) *Fetcher {
	timeout := time.Duration(cfg.Timeout) * time.Second
	if timeout <= 0 {
		timeout = 20 * time.Second
	}
	ua := cfg.UserAgent
	if ua == "" {
		ua = a11yk.DefaultUserAgent
	}
	return &Fetcher{client: &http.Client{Timeout: timeout}, userAgent: ua, maxBodySize: DefaultMaxBodySize}
}

// SetMaxBodySize larger pages fail with ErrBodyTooLarge
func (f *Fetcher) SetMaxBodySize(size int64) *Fetcher {
	f.maxBodySize = size
	return f
}

// SetClient overrides the http client (tests, proxies)
func (f *Fetcher) SetClient(client *http.Client) *Fetcher {
	f.client = client
	return f
}

// Fetch the source, errors are always *a11yk.FetchError. source.StatusCode is
// set for urls that produced a response.
func (f *Fetcher) Fetch(ctx context.Context, source *a11yk.Source) ([]byte, error) {
	if source.Type == a11yk.SourceURL {
		return f.fetchURL(ctx, source)
	}
	return f.readFile(source)
}

func (f *Fetcher) fetchURL(ctx context.Context, source *a11yk.Source) ([]byte, error) {
	req, err := http.NewRequest(http.MethodGet, source.Identifier, nil)
	if err != nil {
		return nil, &a11yk.FetchError{Source: source.Identifier, Err: errors.Wrap(err, "invalid url")}
	}
	req = req.WithContext(ctx)
	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml;q=0.9,*/*;q=0.8")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, &a11yk.FetchError{Source: source.Identifier, Err: errors.Wrap(err, "error fetching url")}
	}
	defer resp.Body.Close()

	source.StatusCode = resp.StatusCode
	log.Info().Str("url", source.Identifier).Int("status", resp.StatusCode).Msg("fetched page")

	switch {
	case resp.StatusCode == http.StatusUnauthorized, resp.StatusCode == http.StatusForbidden:
		return nil, &a11yk.FetchError{Source: source.Identifier, StatusCode: resp.StatusCode, Err: a11yk.ErrAccessRestricted}
	case resp.StatusCode >= 400:
		return nil, &a11yk.FetchError{Source: source.Identifier, StatusCode: resp.StatusCode, Err: a11yk.ErrHTTPStatus}
	}

	body, err := f.read(resp.Body)
	if err != nil {
		return nil, &a11yk.FetchError{Source: source.Identifier, Err: err}
	}
	body, err = decode(body, resp.Header.Get("Content-Type"))
	if err != nil {
		return nil, &a11yk.FetchError{Source: source.Identifier, Err: err}
	}
	return body, nil
}

func (f *Fetcher) readFile(source *a11yk.Source) ([]byte, error) {
	file, err := os.Open(source.Identifier)
	if err != nil {
		return nil, &a11yk.FetchError{Source: source.Identifier, Err: errors.Wrap(err, "error opening local file")}
	}
	defer file.Close()

	body, err := f.read(file)
	if err != nil {
		return nil, &a11yk.FetchError{Source: source.Identifier, Err: err}
	}
	// no content type for files, the encoding comes from a BOM or <meta charset>
	body, err = decode(body, "")
	if err != nil {
		return nil, &a11yk.FetchError{Source: source.Identifier, Err: err}
	}
	return body, nil
}

// read up to maxBodySize, one byte more means the page is too big
func (f *Fetcher) read(r io.Reader) ([]byte, error) {
	limit := f.maxBodySize
	if limit <= 0 {
		limit = DefaultMaxBodySize
	}
	body, err := ioutil.ReadAll(io.LimitReader(r, limit+1))
	if err != nil {
		return nil, errors.Wrap(err, "reading body")
	}
	if int64(len(body)) > limit {
		log.Warn().Int64("limit", limit).Msg("page exceeds maximum size")
		return nil, errors.Wrapf(a11yk.ErrBodyTooLarge, "more than %d bytes", limit)
	}
	return body, nil
}

// decode body to UTF-8 using the content type charset, a BOM or a <meta> declaration
func decode(body []byte, contentType string) ([]byte, error) {
	r, err := charset.NewReader(bytes.NewReader(body), contentType)
	if err != nil {
		return nil, errors.Wrap(err, "unsupported charset")
	}
	decoded, err := ioutil.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "decoding body")
	}
	return decoded, nil
}
