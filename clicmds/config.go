package clicmds

import (
	"fmt"
	"io/ioutil"
	"strings"

	packr "github.com/gobuffalo/packr/v2"
	"github.com/pelletier/go-toml"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
	"gitlab.com/a11yker/a11yk"
)

const defaultConfigName = "a11yker.toml"

var defaults = packr.New("defaults", "./defaults")

// DefaultConfigText is the commented default config file
func DefaultConfigText() (string, error) {
	return defaults.FindString(defaultConfigName)
}

// ConfigFlags for the config command
func ConfigFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:  "out",
			Usage: "write the default config to this file instead of stdout",
			Value: "",
		},
	}
}

// PrintConfig writes the default config to stdout or --out
func PrintConfig(ctx *cli.Context) error {
	text, err := DefaultConfigText()
	if err != nil {
		return errors.Wrap(err, "loading default config")
	}
	if out := ctx.String("out"); out != "" {
		return errors.Wrap(ioutil.WriteFile(out, []byte(text), 0644), "writing config")
	}
	fmt.Fprint(ctx.App.Writer, text)
	return nil
}

// LoadConfig reads a toml config file on top of the defaults
func LoadConfig(path string) (*a11yk.Config, error) {
	cfg := a11yk.DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "reading config")
	}

	if err := toml.NewDecoder(strings.NewReader(string(data))).Decode(cfg); err != nil {
		return nil, errors.Wrapf(err, "decoding config %s", path)
	}
	def := a11yk.DefaultConfig()
	if cfg.OutputDir == "" {
		cfg.OutputDir = def.OutputDir
	}
	if cfg.DataPath == "" {
		cfg.DataPath = def.DataPath
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = def.Timeout
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = def.UserAgent
	}
	cfg.Rules = cfg.Rules.Merge(def.Rules)
	return cfg, nil
}
