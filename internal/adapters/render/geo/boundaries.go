// Package geo loads country boundaries and renders choropleth maps as PNG
// images and interactive HTML pages.
package geo

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/encoding/geojson"
)

// Region is one named country boundary.
type Region struct {
	Name string
	// Geometry is a *geom.Polygon or *geom.MultiPolygon in lon/lat.
	Geometry geom.T
}

// nameFallbacks are tried after the configured name property.
var nameFallbacks = []string{"ADMIN", "name", "NAME"}

// LoadBoundaries reads regions from a .geojson/.json or .shp file. The region
// name is taken from the nameField property, falling back to ADMIN and name.
func LoadBoundaries(path, nameField string) ([]Region, error) {
	var (
		regions []Region
		err     error
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".geojson", ".json":
		regions, err = loadGeoJSON(path, nameField)
	case ".shp":
		regions, err = loadShapefile(path, nameField)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
	if err != nil {
		return nil, err
	}
	if len(regions) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoRegions, path)
	}
	sort.SliceStable(regions, func(i, j int) bool { return regions[i].Name < regions[j].Name })
	return regions, nil
}

func loadGeoJSON(path, nameField string) ([]Region, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrReadBoundaries, path, err)
	}
	var fc geojson.FeatureCollection
	if err := json.Unmarshal(data, &fc); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrReadBoundaries, path, err)
	}

	var out []Region
	for _, f := range fc.Features {
		switch f.Geometry.(type) {
		case *geom.Polygon, *geom.MultiPolygon:
		default:
			continue
		}
		name := regionName(func(k string) string {
			s, _ := f.Properties[k].(string)
			return s
		}, nameField)
		if name == "" {
			continue
		}
		out = append(out, Region{Name: name, Geometry: f.Geometry})
	}
	return out, nil
}

func regionName(prop func(string) string, nameField string) string {
	for _, k := range append([]string{nameField}, nameFallbacks...) {
		if k == "" {
			continue
		}
		if v := strings.TrimSpace(prop(k)); v != "" {
			return v
		}
	}
	return ""
}

// rings returns the outer and inner rings of a region geometry.
func rings(g geom.T) [][][]geom.Coord {
	switch t := g.(type) {
	case *geom.Polygon:
		return [][][]geom.Coord{t.Coords()}
	case *geom.MultiPolygon:
		return t.Coords()
	}
	return nil
}
