package geom

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// Extensions lists the file extensions Load understands.
var Extensions = []string{".csv", ".geojson", ".json", ".wkt"}

// Supported reports whether Load can read path.
func Supported(path string) bool {
	return slices.Contains(Extensions, strings.ToLower(filepath.Ext(path)))
}

// Load reads annotations from path, choosing the parser by extension.
func Load(path string) (Data, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".wkt":
		b, err := os.ReadFile(path)
		if err != nil {
			return Data{}, err
		}
		return ParseWKT(string(b))
	case ".csv":
		return LoadCSV(path)
	case ".geojson", ".json":
		return LoadGeoJSON(path)
	default:
		return Data{}, fmt.Errorf("%w: %q", ErrUnsupported, ext)
	}
}
