package extract

import (
	"sort"
	"strconv"

	"github.com/twpayne/go-geom"

	"github.com/sells-group/dossier-cli/internal/model"
)

var coordArrayFields = []string{"coordinates", "coord", "center"}

var coordNestedFields = []string{"location", "geo", "geocode", "place", "address"}

// Coords discovers a geo-coordinate inside an arbitrarily shaped object.
// Attempts, in order: direct lat/lon keys, a two-element coordinate array,
// well-known nested keys, then a descent into any remaining object field.
// Out-of-range values are rejected rather than clamped, and an exact (0,0)
// is rejected as a missing-value sentinel.
func Coords(obj map[string]any) (model.Coordinate, bool) {
	if len(obj) == 0 {
		return model.Coordinate{}, false
	}

	// Direct keys.
	lat, latOK := parseNum(firstPresent(obj, "latitude", "lat", "y", "ycoord"))
	lon, lonOK := parseNum(firstPresent(obj, "longitude", "lon", "lng", "x", "xcoord"))
	if latOK && lonOK {
		if c, ok := validCoord(lat, lon); ok {
			return c, true
		}
	}

	// Two-element coordinate array. Latitude is bounded to [-90, 90], so the
	// element whose absolute value exceeds 90 must be the longitude. When both
	// fit the latitude range the ordering is ambiguous and the input order is
	// kept; see the note on Summary.
	for _, field := range coordArrayFields {
		arr, ok := obj[field].([]any)
		if !ok || len(arr) < 2 {
			continue
		}
		c0, ok0 := parseNum(arr[0])
		c1, ok1 := parseNum(arr[1])
		if !ok0 || !ok1 {
			continue
		}
		latGuess, lonGuess := c0, c1
		if abs(c0) > 90 && abs(c1) <= 90 {
			latGuess, lonGuess = c1, c0
		}
		if c, ok := validCoord(latGuess, lonGuess); ok {
			return c, true
		}
	}

	// Well-known nested containers.
	for _, field := range coordNestedFields {
		if nested, ok := obj[field].(map[string]any); ok {
			if c, found := Coords(nested); found {
				return c, true
			}
		}
	}

	// Unordered descent into whatever object fields remain. Keys are visited
	// in sorted order so repeated runs over the same payload agree.
	keys := make([]string, 0, len(obj))
	for k := range obj {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if nested, ok := obj[k].(map[string]any); ok {
			if c, found := Coords(nested); found {
				return c, true
			}
		}
	}

	return model.Coordinate{}, false
}

// AllCoords collects a coordinate from every platform that has one, tagged
// with the platform's source for provenance.
func AllCoords(platforms []*model.Platform) []model.Coordinate {
	var out []model.Coordinate
	for _, p := range platforms {
		c, found := Coords(p.Data)
		if !found {
			c, found = Coords(p.Fields)
		}
		if !found {
			continue
		}
		source := p.Source
		if source == "" {
			source = p.Module
		}
		c.Source = source
		out = append(out, c)
	}
	return out
}

// GeoSummary computes the centroid and bounding box of a coordinate set for
// map rendering. An empty set yields an empty summary.
func GeoSummary(coords []model.Coordinate) model.GeoSummary {
	if len(coords) == 0 {
		return model.GeoSummary{}
	}

	flat := make([]float64, 0, len(coords)*2)
	var sumLat, sumLon float64
	for _, c := range coords {
		flat = append(flat, c.Lon, c.Lat)
		sumLat += c.Lat
		sumLon += c.Lon
	}

	bounds := geom.NewMultiPointFlat(geom.XY, flat).Bounds()
	n := float64(len(coords))

	return model.GeoSummary{
		All: coords,
		Center: &model.Coordinate{
			Lat: sumLat / n,
			Lon: sumLon / n,
		},
		Bounds: &model.Bounds{
			MinLat: bounds.Min(1),
			MinLon: bounds.Min(0),
			MaxLat: bounds.Max(1),
			MaxLon: bounds.Max(0),
		},
	}
}

func validCoord(lat, lon float64) (model.Coordinate, bool) {
	if lat < -90 || lat > 90 || lon < -180 || lon > 180 {
		return model.Coordinate{}, false
	}
	if lat == 0 && lon == 0 {
		return model.Coordinate{}, false
	}
	return model.Coordinate{Lat: lat, Lon: lon}, true
}

func parseNum(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case string:
		f, err := strconv.ParseFloat(n, 64)
		return f, err == nil
	default:
		return 0, false
	}
}

func abs(f float64) float64 {
	if f < 0 {
		return -f
	}
	return f
}
