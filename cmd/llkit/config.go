package main

import (
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/npillmayer/llkit/ll/predictive"
)

// config holds settings which may be given in a TOML file:
//
//     trace = "Info"
//     max-errors = 5
//     split = true
//
type config struct {
	Trace     string `toml:"trace"`
	MaxErrors int    `toml:"max-errors"`
	Split     bool   `toml:"split"`
}

func defaultConfig() config {
	return config{
		Trace:     "Error",
		MaxErrors: predictive.DefaultMaxErrors,
	}
}

// loadConfig reads a configuration file on top of the defaults. An empty
// path yields the defaults.
func loadConfig(path string) (config, error) {
	c := defaultConfig()
	if path == "" {
		return c, nil
	}
	md, err := toml.DecodeFile(path, &c)
	if err != nil {
		return c, fmt.Errorf("cannot read configuration %s: %w", path, err)
	}
	for _, key := range md.Undecoded() {
		tracer().Infof("configuration %s: ignoring unknown key %s", path, key)
	}
	return c, nil
}

func (c config) validate() error {
	if c.MaxErrors < 0 {
		return fmt.Errorf("max-errors must not be negative, is %d", c.MaxErrors)
	}
	switch c.Trace {
	case "Debug", "Info", "Error", "debug", "info", "error":
		return nil
	}
	return fmt.Errorf("unknown trace level %q", c.Trace)
}
