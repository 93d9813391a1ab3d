// Package formula compiles user-typed expressions in x into real functions.
package formula

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// Formula is a compiled expression. Eval reuses one environment, so a
// Formula must not be evaluated from several goroutines at once.
type Formula struct {
	src  string
	prog *vm.Program
	env  map[string]any
}

func newEnv() map[string]any {
	return map[string]any{
		"x":     0.0,
		"pi":    math.Pi,
		"e":     math.E,
		"sin":   math.Sin,
		"cos":   math.Cos,
		"tan":   math.Tan,
		"asin":  math.Asin,
		"acos":  math.Acos,
		"atan":  math.Atan,
		"atan2": math.Atan2,
		"sinh":  math.Sinh,
		"cosh":  math.Cosh,
		"tanh":  math.Tanh,
		"exp":   math.Exp,
		"log":   math.Log,
		"ln":    math.Log,
		"log10": math.Log10,
		"log2":  math.Log2,
		"sqrt":  math.Sqrt,
		"cbrt":  math.Cbrt,
		"pow":   math.Pow,
		"hypot": math.Hypot,
		"sign": func(v float64) float64 {
			switch {
			case v > 0:
				return 1
			case v < 0:
				return -1
			}
			return v
		},
	}
}

// Compile parses src. A leading "y =" or "f(x) =" is ignored.
func Compile(src string) (*Formula, error) {
	body := strings.TrimSpace(src)
	if i := strings.Index(body, "="); i >= 0 && !strings.HasPrefix(body[i+1:], "=") && isLHS(body[:i]) {
		body = strings.TrimSpace(body[i+1:])
	}
	if body == "" {
		return nil, errors.New("formula: empty expression")
	}
	env := newEnv()
	prog, err := expr.Compile(body, expr.Env(env), expr.AsFloat64())
	if err != nil {
		return nil, fmt.Errorf("formula %q: %w", body, err)
	}
	return &Formula{src: body, prog: prog, env: env}, nil
}

func isLHS(s string) bool {
	switch strings.ReplaceAll(strings.TrimSpace(s), " ", "") {
	case "y", "f(x)":
		return true
	}
	return false
}

// MustCompile is Compile for known-good expressions.
func MustCompile(src string) *Formula {
	f, err := Compile(src)
	if err != nil {
		panic(err)
	}
	return f
}

func (f *Formula) String() string { return f.src }

// Eval returns f(x). Runtime errors yield NaN.
func (f *Formula) Eval(x float64) float64 {
	f.env["x"] = x
	out, err := expr.Run(f.prog, f.env)
	if err != nil {
		return math.NaN()
	}
	switch v := out.(type) {
	case float64:
		return v
	case int:
		return float64(v)
	}
	return math.NaN()
}
