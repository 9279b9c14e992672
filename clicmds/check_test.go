package clicmds_test

import (
	"bytes"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/urfave/cli/v2"
	"gitlab.com/a11yker/clicmds"
)

const testPage = `<html><head><title>Test page</title></head><body>
<h1>Hello</h1>
<a href="/x">click here</a>
</body></html>`

func testApp(out *bytes.Buffer, in string) *cli.App {
	app := cli.NewApp()
	app.Writer = out
	app.Reader = strings.NewReader(in)
	app.Commands = []*cli.Command{
		{
			Name:    "check",
			Aliases: []string{"c"},
			Action:  clicmds.Check,
			Flags:   clicmds.CheckFlags(),
		},
		{
			Name:    "history",
			Aliases: []string{"hist"},
			Action:  clicmds.History,
			Flags:   clicmds.HistoryFlags(),
		},
		{
			Name:   "config",
			Action: clicmds.PrintConfig,
			Flags:  clicmds.ConfigFlags(),
		},
	}
	return app
}

func testDir(t *testing.T) (string, string) {
	dir, err := ioutil.TempDir("", "a11ycli")
	if err != nil {
		t.Fatalf("err: %s\n", err)
	}
	page := filepath.Join(dir, "page.html")
	if err := ioutil.WriteFile(page, []byte(testPage), 0644); err != nil {
		t.Fatalf("err: %s\n", err)
	}
	return dir, page
}

func TestCheck(t *testing.T) {
	dir, page := testDir(t)
	defer os.RemoveAll(dir)

	out := &bytes.Buffer{}
	outDir := filepath.Join(dir, "reports")
	err := testApp(out, "").Run([]string{"app", "c", "--no-history", "--stdout", "--outdir", outDir, page})
	if err != nil {
		t.Fatalf("err: %s\n", err)
	}

	if !strings.Contains(out.String(), "1 finding(s) - Links: 1") {
		t.Fatalf("missing summary in:\n%s\n", out.String())
	}
	if !strings.Contains(out.String(), "| Links") {
		t.Fatalf("report not printed:\n%s\n", out.String())
	}

	files, err := ioutil.ReadDir(outDir)
	if err != nil {
		t.Fatalf("err: %s\n", err)
	}
	if len(files) != 1 || !strings.HasPrefix(files[0].Name(), "a11y_report_page_html_") {
		t.Fatalf("expected one report file got %v\n", files)
	}
	if !strings.Contains(out.String(), "Report saved to: "+filepath.Join(outDir, files[0].Name())) {
		t.Fatalf("missing report path in:\n%s\n", out.String())
	}
}

func TestCheckPrompt(t *testing.T) {
	dir, page := testDir(t)
	defer os.RemoveAll(dir)

	out := &bytes.Buffer{}
	err := testApp(out, page+"\n").Run([]string{"app", "check", "--no-history", "--outdir", dir})
	if err != nil {
		t.Fatalf("err: %s\n", err)
	}
	if !strings.Contains(out.String(), "Enter a URL (https://...) or a local HTML file path:") {
		t.Fatalf("no prompt in:\n%s\n", out.String())
	}
	if !strings.Contains(out.String(), "Report saved to:") {
		t.Fatalf("no report in:\n%s\n", out.String())
	}
}

func TestCheckNoSource(t *testing.T) {
	out := &bytes.Buffer{}
	err := testApp(out, "\n").Run([]string{"app", "check", "--no-history"})
	if err != clicmds.ErrNoSource {
		t.Fatalf("expected ErrNoSource got %v\n", err)
	}
}

func TestCheckMissingFile(t *testing.T) {
	dir, _ := testDir(t)
	defer os.RemoveAll(dir)

	out := &bytes.Buffer{}
	err := testApp(out, "").Run([]string{"app", "check", "--no-history", "--outdir", dir, filepath.Join(dir, "missing.html")})
	if err == nil {
		t.Fatalf("expected error for a missing file")
	}
	if strings.Contains(out.String(), "Report saved to:") {
		t.Fatalf("report written for a missing file:\n%s\n", out.String())
	}
}

func TestHistory(t *testing.T) {
	dir, page := testDir(t)
	defer os.RemoveAll(dir)

	dataDir := filepath.Join(dir, "data")
	out := &bytes.Buffer{}
	if err := testApp(out, "").Run([]string{"app", "check", "--datadir", dataDir, "--outdir", dir, page}); err != nil {
		t.Fatalf("err: %s\n", err)
	}

	out.Reset()
	if err := testApp(out, "").Run([]string{"app", "hist", "--datadir", dataDir}); err != nil {
		t.Fatalf("err: %s\n", err)
	}
	if !strings.Contains(out.String(), "Had 1 runs") || !strings.Contains(out.String(), "Links=1") {
		t.Fatalf("unexpected history:\n%s\n", out.String())
	}

	id := strings.Fields(strings.Split(out.String(), "\n")[1])[0]
	out.Reset()
	if err := testApp(out, "").Run([]string{"app", "history", "--datadir", dataDir, "--show", id}); err != nil {
		t.Fatalf("err: %s\n", err)
	}
	if !strings.HasPrefix(out.String(), "Basic Accessibility Report") {
		t.Fatalf("unexpected stored report:\n%s\n", out.String())
	}
}
