package scanner

import (
	"net/url"
	"strings"

	"github.com/rs/zerolog/log"
	"gitlab.com/a11yker/a11yk"
)

// ResolveSource works out if the identifier is a URL or a local file.
// http(s) is a URL, file:// is turned into a local path, everything else is a path.
func ResolveSource(identifier string) *a11yk.Source {
	identifier = strings.TrimSpace(identifier)
	lowered := strings.ToLower(identifier)

	switch {
	case strings.HasPrefix(lowered, "http://"), strings.HasPrefix(lowered, "https://"):
		return &a11yk.Source{Identifier: identifier, Type: a11yk.SourceURL}
	case strings.HasPrefix(lowered, "file://"):
		u, err := url.Parse(identifier)
		if err != nil {
			log.Warn().Err(err).Str("source", identifier).Msg("failed to parse file URI, using it as a path")
			return &a11yk.Source{Identifier: identifier[len("file://"):], Type: a11yk.SourceFile}
		}
		return &a11yk.Source{Identifier: u.Path, Type: a11yk.SourceFile}
	}
	return &a11yk.Source{Identifier: identifier, Type: a11yk.SourceFile}
}
