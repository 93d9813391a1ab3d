package geom

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"goplot/internal/plane"
)

var ErrInvalidWKT = errors.New("invalid wkt")

// ParseWKT parses one geometry per line. Supported: POINT, MULTIPOINT,
// LINESTRING, MULTILINESTRING, POLYGON and MULTIPOLYGON. Polygon rings are
// closed. Blank lines and lines starting with # are ignored.
func ParseWKT(text string) (Data, error) {
	var d Data
	for n, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if err := d.addWKT(line); err != nil {
			return Data{}, fmt.Errorf("wkt line %d: %w", n+1, err)
		}
	}
	if d.Empty() {
		return Data{}, ErrNoGeometry
	}
	d.updateBBox()
	return d, nil
}

func (d *Data) addWKT(s string) error {
	i := strings.Index(s, "(")
	j := strings.LastIndex(s, ")")
	if i < 0 || j <= i {
		return ErrInvalidWKT
	}
	head := strings.Fields(strings.ToUpper(s[:i]))
	if len(head) == 0 {
		return ErrInvalidWKT
	}
	kind, body := head[0], s[i+1:j]
	switch kind {
	case "POINT", "MULTIPOINT":
		pts, err := parseTuples(strings.NewReplacer("(", "", ")", "").Replace(body))
		if err != nil {
			return err
		}
		d.Points = append(d.Points, pts...)
	case "LINESTRING":
		ls, err := parseTuples(body)
		if err != nil {
			return err
		}
		d.Lines = append(d.Lines, ls)
	case "MULTILINESTRING", "POLYGON":
		return d.addRings(body, kind == "POLYGON")
	case "MULTIPOLYGON":
		polys, err := splitGroups(body)
		if err != nil {
			return err
		}
		for _, p := range polys {
			if err := d.addRings(p, true); err != nil {
				return err
			}
		}
	default:
		return fmt.Errorf("%w: wkt %s", ErrUnsupported, kind)
	}
	return nil
}

func (d *Data) addRings(body string, closed bool) error {
	rings, err := splitGroups(body)
	if err != nil {
		return err
	}
	for _, r := range rings {
		ls, err := parseTuples(r)
		if err != nil {
			return err
		}
		if closed {
			ls = closeRing(ls)
		}
		d.Lines = append(d.Lines, ls)
	}
	return nil
}

// splitGroups returns the contents of each top-level parenthesised group in s.
func splitGroups(s string) ([]string, error) {
	var out []string
	depth, start := 0, 0
	for k, ch := range s {
		switch ch {
		case '(':
			if depth == 0 {
				start = k + 1
			}
			depth++
		case ')':
			depth--
			if depth < 0 {
				return nil, ErrInvalidWKT
			}
			if depth == 0 {
				out = append(out, s[start:k])
			}
		}
	}
	if depth != 0 || len(out) == 0 {
		return nil, ErrInvalidWKT
	}
	return out, nil
}

// parseTuples reads "x y[, x y ...]". Extra ordinates (z, m) are ignored.
func parseTuples(block string) ([]plane.Point, error) {
	var out []plane.Point
	for _, tup := range strings.Split(block, ",") {
		parts := strings.Fields(tup)
		if len(parts) < 2 {
			return nil, fmt.Errorf("%w: tuple %q", ErrInvalidWKT, strings.TrimSpace(tup))
		}
		p, err := parsePoint(parts[0], parts[1])
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

func parsePoint(xs, ys string) (plane.Point, error) {
	x, err := strconv.ParseFloat(xs, 64)
	if err != nil {
		return plane.Point{}, err
	}
	y, err := strconv.ParseFloat(ys, 64)
	if err != nil {
		return plane.Point{}, err
	}
	if math.IsNaN(x) || math.IsInf(x, 0) || math.IsNaN(y) || math.IsInf(y, 0) {
		return plane.Point{}, fmt.Errorf("non-finite coordinate %s %s", xs, ys)
	}
	return plane.Point{X: x, Y: y}, nil
}

func closeRing(ls []plane.Point) []plane.Point {
	if len(ls) > 1 && ls[0] != ls[len(ls)-1] {
		ls = append(ls, ls[0])
	}
	return ls
}
