package main

import (
	"fmt"
	"io/ioutil"
	"unicode/utf8"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v2"

	"github.com/zephyrtronium/rpncalc/internal/locale"
)

// config holds the settings that may come from the configuration file.
// Command line flags override whatever the file sets when they come after
// --config.
type config struct {
	Degrees   bool   `yaml:"degrees"`
	Separator string `yaml:"separator"`
	Locale    string `yaml:"locale"`
	Localized bool   `yaml:"localized"`
	Format    string `yaml:"format"`
	Lines     bool   `yaml:"lines"`
	LogLevel  string `yaml:"log_level"`
}

func defaultConfig() *config {
	return &config{
		Format:   "%g",
		LogLevel: "warning",
	}
}

// load reads the configuration from a YML file.
func (c *config) load(fileName string) error {
	if len(fileName) == 0 {
		return nil // OK
	}
	buf, err := ioutil.ReadFile(fileName)
	if err != nil {
		return fmt.Errorf("failed to read configuration from %q: %w", fileName, err)
	}
	if err := yaml.UnmarshalStrict(buf, c); err != nil {
		return fmt.Errorf("failed to parse configuration from %q: %w", fileName, err)
	}
	return nil
}

// tag returns the locale to use: the configured one, or the environment's.
func (c *config) tag(getenv func(string) string) (language.Tag, error) {
	if c.Locale == "" {
		return locale.FromEnv(getenv), nil
	}
	t, err := locale.Parse(c.Locale)
	if err != nil {
		return t, fmt.Errorf("bad locale %q: %w", c.Locale, err)
	}
	return t, nil
}

// separator returns the decimal separator: the configured one, or the
// locale's.
func (c *config) separator(getenv func(string) string) (rune, error) {
	if c.Separator != "" {
		r, n := utf8.DecodeRuneInString(c.Separator)
		if n != len(c.Separator) || r == utf8.RuneError {
			return 0, fmt.Errorf("decimal separator must be one character, not %q", c.Separator)
		}
		return r, nil
	}
	t, err := c.tag(getenv)
	if err != nil {
		return 0, err
	}
	return locale.Separator(t), nil
}

// config file name kingpin.Value
// loads the configuration on value set
type configValue struct {
	c *config // configuration to fill
	v string  // configuration path
}

// set configuration file
func (f *configValue) Set(s string) error {
	f.v = s
	return f.c.load(f.v)
}

// get configuration file
func (f *configValue) String() string {
	return f.v
}
