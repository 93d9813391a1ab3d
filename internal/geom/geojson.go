package geom

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"goplot/internal/plane"
)

type geoObject struct {
	Type        string          `json:"type"`
	Coordinates json.RawMessage `json:"coordinates"`
	Geometry    *geoObject      `json:"geometry"`
	Features    []geoObject     `json:"features"`
	Geometries  []geoObject     `json:"geometries"`
}

// LoadGeoJSON reads a GeoJSON file; see ReadGeoJSON.
func LoadGeoJSON(path string) (Data, error) {
	f, err := os.Open(path)
	if err != nil {
		return Data{}, err
	}
	defer f.Close()
	return ReadGeoJSON(f)
}

// ReadGeoJSON reads a Feature, FeatureCollection, GeometryCollection or bare
// geometry. Coordinates are taken as Cartesian x, y.
func ReadGeoJSON(r io.Reader) (Data, error) {
	var root geoObject
	if err := json.NewDecoder(r).Decode(&root); err != nil {
		return Data{}, fmt.Errorf("geojson: %w", err)
	}
	var d Data
	if err := d.addGeo(root); err != nil {
		return Data{}, err
	}
	if d.Empty() {
		return Data{}, ErrNoGeometry
	}
	d.updateBBox()
	return d, nil
}

func (d *Data) addGeo(g geoObject) error {
	switch g.Type {
	case "FeatureCollection":
		for _, f := range g.Features {
			if err := d.addGeo(f); err != nil {
				return err
			}
		}
	case "Feature":
		if g.Geometry != nil {
			return d.addGeo(*g.Geometry)
		}
	case "GeometryCollection":
		for _, c := range g.Geometries {
			if err := d.addGeo(c); err != nil {
				return err
			}
		}
	case "Point":
		var c []float64
		if err := decodeCoords(g, &c); err != nil {
			return err
		}
		p, err := toPoint(c)
		if err != nil {
			return err
		}
		d.Points = append(d.Points, p)
	case "MultiPoint":
		var c [][]float64
		if err := decodeCoords(g, &c); err != nil {
			return err
		}
		ls, err := toLine(c)
		if err != nil {
			return err
		}
		d.Points = append(d.Points, ls...)
	case "LineString":
		var c [][]float64
		if err := decodeCoords(g, &c); err != nil {
			return err
		}
		ls, err := toLine(c)
		if err != nil {
			return err
		}
		d.Lines = append(d.Lines, ls)
	case "MultiLineString", "Polygon":
		var c [][][]float64
		if err := decodeCoords(g, &c); err != nil {
			return err
		}
		return d.addGeoRings(c, g.Type == "Polygon")
	case "MultiPolygon":
		var c [][][][]float64
		if err := decodeCoords(g, &c); err != nil {
			return err
		}
		for _, poly := range c {
			if err := d.addGeoRings(poly, true); err != nil {
				return err
			}
		}
	default:
		return fmt.Errorf("%w: geojson type %q", ErrUnsupported, g.Type)
	}
	return nil
}

func (d *Data) addGeoRings(rings [][][]float64, closed bool) error {
	for _, r := range rings {
		ls, err := toLine(r)
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

func decodeCoords(g geoObject, v any) error {
	if err := json.Unmarshal(g.Coordinates, v); err != nil {
		return fmt.Errorf("geojson %s coordinates: %w", g.Type, err)
	}
	return nil
}

func toPoint(c []float64) (plane.Point, error) {
	if len(c) < 2 {
		return plane.Point{}, fmt.Errorf("geojson: position needs 2 ordinates, got %d", len(c))
	}
	return plane.Point{X: c[0], Y: c[1]}, nil
}

func toLine(cs [][]float64) ([]plane.Point, error) {
	out := make([]plane.Point, 0, len(cs))
	for _, c := range cs {
		p, err := toPoint(c)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}
