package geom

import (
	"encoding/csv"
	"errors"
	"io"
	"os"
	"strings"

	"goplot/internal/plane"
)

// LoadCSV reads a CSV file with x and y columns; see ReadCSV.
func LoadCSV(path string) (Data, error) {
	f, err := os.Open(path)
	if err != nil {
		return Data{}, err
	}
	defer f.Close()
	return ReadCSV(f)
}

// ReadCSV reads rows of an x/y table (header match is case-insensitive) into
// one polyline. A row whose x or y does not parse ends the current polyline,
// so blank cells mark gaps. Single-point runs become points.
func ReadCSV(r io.Reader) (Data, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = -1
	recs, err := cr.ReadAll()
	if err != nil {
		return Data{}, err
	}
	if len(recs) == 0 {
		return Data{}, errors.New("empty csv")
	}
	ix, iy := -1, -1
	for i, h := range recs[0] {
		switch strings.ToLower(strings.TrimSpace(h)) {
		case "x":
			if ix == -1 {
				ix = i
			}
		case "y":
			if iy == -1 {
				iy = i
			}
		}
	}
	if ix == -1 || iy == -1 {
		return Data{}, errors.New("csv: x/y columns not found")
	}
	var d Data
	var run []plane.Point
	flush := func() {
		switch len(run) {
		case 0:
		case 1:
			d.Points = append(d.Points, run[0])
		default:
			d.Lines = append(d.Lines, run)
		}
		run = nil
	}
	for _, row := range recs[1:] {
		if ix >= len(row) || iy >= len(row) {
			flush()
			continue
		}
		p, err := parsePoint(strings.TrimSpace(row[ix]), strings.TrimSpace(row[iy]))
		if err != nil {
			flush()
			continue
		}
		run = append(run, p)
	}
	flush()
	if d.Empty() {
		return Data{}, errors.New("csv: no valid points parsed")
	}
	d.updateBBox()
	return d, nil
}
