// Gmacalc is a REPL for multivector expressions in the 2D or 3D Euclidean
// geometric algebra.
//
// Expressions use Go syntax: + - * / for the sum, difference, geometric
// product and division, ^ for the outer product, << and >> for the left and
// right contractions, | for the scalar product. ^ and | bind like + so mixed
// expressions need parentheses. Functions: rev, conj, dual, inv, norm, quad,
// unit, neg, grade(m, n), rotor(a, b), rotate(m, R), reflect(m, n) and, in
// 3D, cross(a, b). "name = expr" assigns; the last result is ans; :vars lists
// assignments.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode"

	"dasa.cc/gma/config"
	"dasa.cc/gma/logger"

	"github.com/chzyer/readline"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

var (
	flagConfig = flag.String("config", "", "path to a yaml config file")
	flagDim    = flag.Int("dim", 3, "dimension of the algebra, 2 or 3")
	flagStyle  = flag.String("format", "", "number format: plain, fixed, exponential or precision")
	flagDigits = flag.Int("digits", -1, "digits for the number format")
	flagLevel  = flag.String("log-level", "", "log level: debug, info, warn or error")
	flagExpr   = flag.String("e", "", "evaluate expressions separated by ; and exit")
)

type repl interface {
	Exec(line string) (string, error)
	Complete(prefix string) []string
}

func newRepl(dim int, f config.FormatConfig) (repl, error) {
	switch dim {
	case 2:
		return newSession(algebraG2(), f), nil
	case 3:
		return newSession(algebraG3(), f), nil
	}
	return nil, errors.Errorf("unsupported dimension %d", dim)
}

func applyFlags(cfg *config.Config) {
	if *flagStyle != "" {
		cfg.Format.Style = *flagStyle
	}
	if *flagDigits >= 0 {
		cfg.Format.Digits = *flagDigits
	}
	if *flagLevel != "" {
		cfg.Logging.Level = *flagLevel
	}
}

// completer offers basis names, functions and variables for the identifier
// left of the cursor.
type completer struct{ r repl }

func (c completer) Do(line []rune, pos int) (newLine [][]rune, length int) {
	start := pos
	for start > 0 && (unicode.IsLetter(line[start-1]) || unicode.IsDigit(line[start-1]) || line[start-1] == '_') {
		start--
	}
	prefix := string(line[start:pos])
	if prefix == "" {
		return nil, 0
	}
	for _, n := range c.r.Complete(prefix) {
		newLine = append(newLine, []rune(strings.TrimPrefix(n, prefix)))
	}
	return newLine, pos - start
}

// batch evaluates each ;-separated expression of src, writing results to w.
func batch(r repl, src string, w io.Writer) error {
	for _, line := range strings.Split(src, ";") {
		out, err := r.Exec(line)
		if err != nil {
			return errors.Wrapf(err, "%s", strings.TrimSpace(line))
		}
		if out != "" {
			fmt.Fprintln(w, out)
		}
	}
	return nil
}

func interactive(r repl, dim int) error {
	tmp, err := os.CreateTemp("", "gmacalc")
	if err != nil {
		return err
	}
	tmp.Close()
	defer os.Remove(tmp.Name())

	rl, err := readline.NewEx(&readline.Config{
		Prompt:            fmt.Sprintf("g%d: ", dim),
		HistoryFile:       tmp.Name(),
		AutoComplete:      completer{r},
		InterruptPrompt:   "^C",
		EOFPrompt:         "exit",
		HistorySearchFold: true,
	})
	if err != nil {
		return err
	}
	defer rl.Close()

	for {
		line, err := rl.Readline()
		if err == readline.ErrInterrupt {
			if len(line) == 0 {
				return nil
			}
			continue
		} else if err == io.EOF {
			return nil
		}

		out, err := r.Exec(line)
		if err != nil {
			logger.Debug("evaluation failed", zap.String("line", line), zap.Error(err))
			fmt.Fprintf(rl.Stderr(), "%[1]T: %[1]v\n", errors.Cause(err))
			continue
		}
		if out != "" {
			fmt.Fprintln(rl.Stdout(), out)
		}
	}
}

func run() error {
	flag.Parse()
	cfg, err := config.Load(*flagConfig)
	if err != nil {
		return err
	}
	applyFlags(cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}
	if err := logger.Init(cfg.Logging.Level, cfg.Logging.File); err != nil {
		return err
	}
	defer logger.Sync()

	r, err := newRepl(*flagDim, cfg.Format)
	if err != nil {
		return err
	}
	logger.Debug("starting", zap.Int("dim", *flagDim), zap.String("format", cfg.Format.Style))

	if *flagExpr != "" {
		return batch(r, *flagExpr, os.Stdout)
	}
	return interactive(r, *flagDim)
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "gmacalc:", err)
		os.Exit(1)
	}
}
