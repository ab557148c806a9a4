// Package locale finds the decimal separator of the host's locale so that the
// calculator core never has to read ambient locale state itself.
package locale

import (
	"strings"
	"unicode"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// envvars are the environment variables consulted for the numeric locale, in
// order of priority.
var envvars = []string{"LC_ALL", "LC_NUMERIC", "LANG"}

// FromEnv returns the language tag for number formatting named by the
// environment. getenv is usually os.Getenv. The result is language.English if
// no variable names a parseable locale.
func FromEnv(getenv func(string) string) language.Tag {
	for _, k := range envvars {
		v := getenv(k)
		if v == "" {
			continue
		}
		// The first variable that is set wins, even if it is unusable.
		if t, err := Parse(v); err == nil {
			return t
		}
		break
	}
	return language.English
}

// Parse parses a BCP 47 tag or a POSIX locale name like de_DE.UTF-8@euro.
// The POSIX C locale is English.
func Parse(s string) (language.Tag, error) {
	if k := strings.IndexAny(s, ".@"); k >= 0 {
		s = s[:k]
	}
	switch s {
	case "C", "POSIX":
		return language.English, nil
	}
	return language.Parse(strings.ReplaceAll(s, "_", "-"))
}

// Separator returns the decimal separator used by a locale.
func Separator(t language.Tag) rune {
	s := message.NewPrinter(t).Sprint(number.Decimal(1.5))
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return r
		}
	}
	return '.'
}
