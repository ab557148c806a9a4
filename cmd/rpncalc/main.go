package main

import (
	"bufio"
	"fmt"
	"io"
	"io/ioutil"
	"os"
	"strings"
	"unicode"

	"github.com/sirupsen/logrus"
	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/zephyrtronium/rpncalc"
)

var (
	// logger instance
	log = logrus.New()
)

func main() {
	var (
		cfg    = defaultConfig()
		inname string
		echo   bool
		args   []string
	)
	kingpin.Flag("config", "Configuration in YML format.").SetValue(&configValue{c: cfg})
	kingpin.Flag("in", "Input file, - for stdin (default stdin if no expressions are given).").Short('i').StringVar(&inname)
	kingpin.Flag("fmt", "Result formatting string.").StringVar(&cfg.Format)
	kingpin.Flag("degrees", "Trigonometric functions take degrees.").Short('d').BoolVar(&cfg.Degrees)
	kingpin.Flag("separator", "Decimal separator (default from locale).").StringVar(&cfg.Separator)
	kingpin.Flag("locale", "Locale for the decimal separator, e.g. de-DE (default from environment).").StringVar(&cfg.Locale)
	kingpin.Flag("localized", "Print results with the decimal separator.").BoolVar(&cfg.Localized)
	kingpin.Flag("lines", "Parse separate input lines as separate expressions.").Short('n').BoolVar(&cfg.Lines)
	kingpin.Flag("echo", "Print the postfix form of each expression.").BoolVar(&echo)
	kingpin.Flag("log-level", "Logging level: debug, info, warning, error.").StringVar(&cfg.LogLevel)
	kingpin.Arg("expr", "Expressions to evaluate.").StringsVar(&args)
	kingpin.Parse()

	ll, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		kingpin.FatalUsage("bad log level %q: %s", cfg.LogLevel, err)
	}
	log.Level = ll

	sep, err := cfg.separator(os.Getenv)
	if err != nil {
		kingpin.FatalUsage("%s", err)
	}

	var srcs []string
	f, err := infile(inname, len(args) == 0)
	if err != nil {
		log.WithError(err).Fatal("failed to open input")
	}
	if f != nil {
		srcs, err = readExprs(f, cfg.Lines)
		if err != nil {
			log.WithError(err).Fatal("failed to read input")
		}
	}
	srcs = append(srcs, args...)

	log.WithFields(map[string]interface{}{
		"degrees":     cfg.Degrees,
		"separator":   string(sep),
		"expressions": len(srcs),
	}).Debug("evaluating")

	r := runner{
		out:       os.Stdout,
		sep:       sep,
		radians:   !cfg.Degrees,
		verb:      cfg.Format,
		localized: cfg.Localized,
		echo:      echo,
	}
	if failed := r.run(srcs); failed > 0 {
		log.WithField("failed", failed).Debug("some expressions failed")
		os.Exit(1)
	}
}

// runner evaluates expressions and prints their results.
type runner struct {
	out       io.Writer
	sep       rune
	radians   bool
	verb      string
	localized bool
	echo      bool
}

// run evaluates each expression and prints one line per expression: the
// result, or the error in its place. It returns the number of expressions
// that failed.
func (r *runner) run(srcs []string) int {
	failed := 0
	for _, src := range srcs {
		s, err := r.eval(src)
		if err != nil {
			log.WithError(err).WithField("expr", src).Debug("evaluation failed")
			fmt.Fprintln(r.out, err)
			failed++
			continue
		}
		fmt.Fprintln(r.out, s)
	}
	return failed
}

func (r *runner) eval(src string) (string, error) {
	a, err := rpncalc.Parse(src, rpncalc.DecimalSeparator(r.sep))
	if err != nil {
		return "", err
	}
	log.WithFields(map[string]interface{}{
		"normalized": a.Normalized(),
		"postfix":    a.String(),
	}).Debug("parsed")
	v, err := a.Eval(r.radians)
	if err != nil {
		return "", err
	}
	s := fmt.Sprintf(r.verb, v)
	if r.localized && r.sep != '.' {
		s = strings.ReplaceAll(s, ".", string(r.sep))
	}
	if r.echo {
		s = a.String() + " : " + s
	}
	return s, nil
}

// readExprs reads the whole input as one expression, or one expression per
// non-blank line.
func readExprs(in io.Reader, lines bool) ([]string, error) {
	b, err := ioutil.ReadAll(in)
	if err != nil {
		return nil, err
	}
	if !lines {
		if strings.TrimFunc(string(b), unicode.IsSpace) == "" {
			return nil, nil
		}
		return []string{string(b)}, nil
	}
	var r []string
	for _, l := range strings.Split(string(b), "\n") {
		if strings.TrimFunc(l, unicode.IsSpace) == "" {
			continue
		}
		r = append(r, l)
	}
	return r, nil
}

func infile(inname string, std bool) (io.Reader, error) {
	switch {
	case inname != "" && inname != "-":
		f, err := os.Open(inname)
		if err != nil {
			return nil, err
		}
		return bufio.NewReader(f), nil
	case inname == "-", std:
		return bufio.NewReader(os.Stdin), nil
	}
	return nil, nil
}
