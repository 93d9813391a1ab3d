package formula

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
)

func TestEval(t *testing.T) {
	tests := []struct {
		src  string
		x    float64
		want float64
	}{
		{"sin(x)", math.Pi / 2, 1},
		{"x^2 + 2*x + 1", 3, 16},
		{"y = 1/x", 4, 0.25},
		{"f(x) = sqrt(x)", 9, 3},
		{"pow(x, 3)", 2, 8},
		{"abs(x) + floor(x)", -1.5, -0.5},
		{"2", 100, 2},
		{"sign(x) * e", -7, -math.E},
		{"log10(x)", 1000, 3},
	}
	for _, tt := range tests {
		f, err := Compile(tt.src)
		if err != nil {
			t.Fatalf("Compile(%q): %v", tt.src, err)
		}
		if got := f.Eval(tt.x); !scalar.EqualWithinAbs(got, tt.want, 1e-12) {
			t.Errorf("%q at %v = %v, want %v", tt.src, tt.x, got, tt.want)
		}
	}
}

func TestEvalNonFinite(t *testing.T) {
	tests := []struct {
		src string
		x   float64
	}{
		{"1/x", 0},
		{"sqrt(x)", -1},
		{"log(x)", 0},
	}
	for _, tt := range tests {
		got := MustCompile(tt.src).Eval(tt.x)
		if !math.IsNaN(got) && !math.IsInf(got, 0) {
			t.Errorf("%q at %v = %v, want non-finite", tt.src, tt.x, got)
		}
	}
}

func TestCompileErrors(t *testing.T) {
	for _, src := range []string{"", "y =", "sin(", "x > 1", "foo(x)", `"text"`} {
		if _, err := Compile(src); err == nil {
			t.Errorf("Compile(%q) succeeded", src)
		}
	}
}

func TestString(t *testing.T) {
	if got := MustCompile("y = cos(x)").String(); got != "cos(x)" {
		t.Errorf("String = %q", got)
	}
}
