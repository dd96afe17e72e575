package geo

import (
	"fmt"
	"strings"

	"github.com/jonas-p/go-shp"
	"github.com/twpayne/go-geom"
)

func loadShapefile(path, nameField string) ([]Region, error) {
	r, err := shp.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrReadBoundaries, path, err)
	}
	defer func() { _ = r.Close() }()

	fieldIdx := make(map[string]int)
	for i, f := range r.Fields() {
		fieldIdx[f.String()] = i
	}

	var out []Region
	for r.Next() {
		n, shape := r.Shape()
		poly, ok := shape.(*shp.Polygon)
		if !ok {
			continue
		}
		name := regionName(func(k string) string {
			i, ok := fieldIdx[k]
			if !ok {
				return ""
			}
			return strings.Trim(r.ReadAttribute(n, i), "\x00 ")
		}, nameField)
		if name == "" {
			continue
		}
		g, err := polygonToGeom(poly)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %s: %w", ErrReadBoundaries, path, name, err)
		}
		out = append(out, Region{Name: name, Geometry: g})
	}
	if err := r.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrReadBoundaries, path, err)
	}
	return out, nil
}

// polygonToGeom groups shapefile rings into polygons. Clockwise rings are
// outer boundaries; counter-clockwise rings are holes of the preceding one.
func polygonToGeom(p *shp.Polygon) (*geom.MultiPolygon, error) {
	var polys [][][]geom.Coord
	for i := 0; i < int(p.NumParts); i++ {
		start := int(p.Parts[i])
		end := len(p.Points)
		if i+1 < int(p.NumParts) {
			end = int(p.Parts[i+1])
		}
		ring := make([]geom.Coord, 0, end-start)
		for _, pt := range p.Points[start:end] {
			ring = append(ring, geom.Coord{pt.X, pt.Y})
		}
		if len(ring) < 4 {
			continue
		}
		if signedArea(ring) < 0 || len(polys) == 0 {
			polys = append(polys, [][]geom.Coord{ring})
			continue
		}
		last := len(polys) - 1
		polys[last] = append(polys[last], ring)
	}
	return geom.NewMultiPolygon(geom.XY).SetCoords(polys)
}

// signedArea is positive for counter-clockwise rings.
func signedArea(ring []geom.Coord) float64 {
	a := 0.0
	for i := 0; i < len(ring)-1; i++ {
		a += ring[i][0]*ring[i+1][1] - ring[i+1][0]*ring[i][1]
	}
	return a / 2
}
