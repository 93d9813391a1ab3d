package plane

import (
	"math"

	"gonum.org/v1/plot"
)

// MinSpatialInterval is the floor for the gridline step. A zero step would
// never advance the gridline loop.
const MinSpatialInterval = 1e-9

// maxSteps bounds a single axis so a pathological view cannot stall a frame.
const maxSteps = 4096

// Interval is the gridline spacing for one view.
type Interval struct {
	Numeric float64 // label step, drives label precision
	Spatial float64 // gridline step in Cartesian units
}

// LabelScale derives the numeric label step for a view.
type LabelScale interface {
	Name() string
	Numeric(v ViewState, spatial float64) float64
}

// RatioLabels is the historical heuristic numeric = scale / Divisor.
type RatioLabels struct {
	Divisor float64
}

func (r RatioLabels) Name() string { return "ratio" }

func (r RatioLabels) Numeric(v ViewState, spatial float64) float64 {
	d := r.Divisor
	if d <= 0 {
		d = 100
	}
	return v.Scale / d
}

// NiceLabels takes the label step from gonum/plot's default ticker: the
// distance between adjacent major ticks across the longer visible axis.
type NiceLabels struct{}

func (NiceLabels) Name() string { return "nice" }

// Numeric returns 0 when the ticker yields fewer than two major ticks;
// PlanInterval then falls back to the spatial step.
func (NiceLabels) Numeric(v ViewState, spatial float64) float64 {
	r := 10 * spatial
	if !(r > 0) || math.IsInf(r, 0) {
		return 0
	}
	return majorStep(plot.DefaultTicks{}.Ticks(-r, r))
}

func majorStep(ticks []plot.Tick) float64 {
	prev, seen := 0.0, false
	for _, t := range ticks {
		if t.IsMinor() {
			continue
		}
		if seen {
			return t.Value - prev
		}
		prev, seen = t.Value, true
	}
	return 0
}

// LabelScaleByName resolves "nice" or "ratio".
func LabelScaleByName(name string) (LabelScale, bool) {
	switch name {
	case "nice", "":
		return NiceLabels{}, true
	case "ratio":
		return RatioLabels{Divisor: 100}, true
	}
	return nil, false
}

// PlanInterval picks the gridline and label spacing for v. Ten spatial steps
// span the longer visible half-axis.
func PlanInterval(v ViewState, ls LabelScale) Interval {
	spatial := math.Max(v.XAxisRange(), v.YAxisRange()) / 10
	if !(spatial >= MinSpatialInterval) {
		spatial = MinSpatialInterval
	}
	if ls == nil {
		ls = NiceLabels{}
	}
	n := ls.Numeric(v, spatial)
	if !(n > 0) || math.IsInf(n, 0) {
		n = spatial
	}
	return Interval{Numeric: n, Spatial: spatial}
}

// Precision is the number of decimals labels need: enough for the numeric
// step and for the gridline values themselves.
func (iv Interval) Precision() int {
	p := 0
	if iv.Numeric > 0 && !math.IsInf(iv.Numeric, 0) {
		p = int(math.Ceil(-math.Log10(iv.Numeric) - 1e-9))
	}
	return clampPrecision(max(p, decimals(iv.Spatial)))
}

func decimals(x float64) int {
	if !(x > 0) || math.IsInf(x, 0) {
		return 0
	}
	for d := 0; d <= 10; d++ {
		s := x * math.Pow(10, float64(d))
		if math.Abs(s-math.Round(s)) < 1e-6*math.Max(1, s) {
			return d
		}
	}
	return 10
}

func clampPrecision(p int) int {
	if p < 0 {
		return 0
	}
	if p > 10 {
		return 10
	}
	return p
}

// FirstOnScreen is the first gridline offset at or before -axisRange.
func FirstOnScreen(axisRange, spatial float64) float64 {
	return math.Floor(-axisRange/spatial) * spatial
}

// Steps lists gridline offsets from FirstOnScreen through axisRange inclusive.
// A zero or non-finite range yields no steps.
func Steps(axisRange, spatial float64) []float64 {
	if !(axisRange > 0) || math.IsInf(axisRange, 0) || !(spatial > 0) || math.IsInf(spatial, 0) {
		return nil
	}
	first := FirstOnScreen(axisRange, spatial)
	n := int(math.Floor((axisRange-first)/spatial + 1e-9))
	if n > maxSteps {
		n = maxSteps
	}
	out := make([]float64, 0, n+1)
	for i := 0; i <= n; i++ {
		out = append(out, first+float64(i)*spatial)
	}
	return out
}

// Snap rounds c down to a multiple of spatial, so offsets from it land on
// round Cartesian values.
func Snap(c, spatial float64) float64 {
	if !(spatial > 0) || math.IsInf(spatial, 0) {
		return c
	}
	return math.Floor(c/spatial) * spatial
}
