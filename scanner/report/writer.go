package report

import (
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pkg/errors"
	"gitlab.com/a11yker/a11yk"
)

// TimestampFormat used in report file names
const TimestampFormat = "20060102_150405"

var urlReplacer = strings.NewReplacer(
	"/", "_",
	"?", "_",
	"&", "_",
	"=", "_",
	":", "_",
	"#", "_",
)

// SafeName of a source for use in a file name
func SafeName(source *a11yk.Source) string {
	if source.Type == a11yk.SourceURL {
		name := source.Identifier
		if i := strings.Index(name, "://"); i >= 0 {
			name = name[i+len("://"):]
		}
		return strings.Trim(urlReplacer.Replace(name), "_")
	}
	return strings.Replace(filepath.Base(source.Identifier), ".", "_", -1)
}

// Filename a11y_report_<source>_<timestamp>.txt
func Filename(source *a11yk.Source, now time.Time) string {
	return fmt.Sprintf("a11y_report_%s_%s.txt", SafeName(source), now.Format(TimestampFormat))
}

// Write the report text into dir, returning the full path
func Write(dir string, source *a11yk.Source, now time.Time, text string) (string, error) {
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", errors.Wrap(err, "creating report directory")
	}
	path := filepath.Join(dir, Filename(source, now))
	if err := ioutil.WriteFile(path, []byte(text), 0644); err != nil {
		return "", errors.Wrap(err, "writing report")
	}
	return path, nil
}
