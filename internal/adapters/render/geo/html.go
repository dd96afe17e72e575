package geo

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"html/template"
	"image/color"
	"io"

	"github.com/twpayne/go-geom/encoding/geojson"
)

//go:embed map.html.tmpl
var mapTemplateText string

var mapTemplate = template.Must(template.New("map").Parse(mapTemplateText))

type legendClass struct {
	Color string `json:"color"`
	Label string `json:"label"`
}

type mapPage struct {
	Title      string
	ValueLabel string
	GeoJSON    template.JS
	Classes    []legendClass
	Unmatched  []string
}

func hexColor(c color.Color) string {
	r, g, b, _ := c.RGBA()
	return fmt.Sprintf("#%02x%02x%02x", r>>8, g>>8, b>>8)
}

// FeatureCollection encodes the choropleth as GeoJSON. Each feature carries
// name, value (null without data), label and fill properties.
func (ch *Choropleth) FeatureCollection() *geojson.FeatureCollection {
	fc := &geojson.FeatureCollection{}
	for _, r := range ch.Regions {
		props := map[string]interface{}{
			"name":  r.Name,
			"value": nil,
			"label": "",
			"fill":  hexColor(ch.Color(r.Name)),
		}
		if v, ok := ch.Values[r.Name]; ok {
			props["value"] = v.Value
			props["label"] = v.Label
		}
		fc.Features = append(fc.Features, &geojson.Feature{
			ID:         r.Name,
			Geometry:   r.Geometry,
			Properties: props,
		})
	}
	return fc
}

// WriteHTML writes an interactive Leaflet page of the choropleth.
func (ch *Choropleth) WriteHTML(w io.Writer) error {
	data, err := json.Marshal(ch.FeatureCollection())
	if err != nil {
		return fmt.Errorf("%w: geojson: %w", ErrRenderMap, err)
	}
	page := mapPage{
		Title:      ch.Title,
		ValueLabel: ch.Legend,
		GeoJSON:    template.JS(data), //nolint:gosec // produced by json.Marshal
		Unmatched:  ch.Unmatched,
	}
	if len(ch.Values) > 0 {
		for i, lo := range ch.bounds() {
			page.Classes = append(page.Classes, legendClass{Color: hexColor(ch.scale[i]), Label: fmt.Sprintf(">= %.0f", lo)})
		}
	}
	page.Classes = append(page.Classes, legendClass{Color: hexColor(noData), Label: "no data"})

	if err := mapTemplate.Execute(w, page); err != nil {
		return fmt.Errorf("%w: html: %w", ErrRenderMap, err)
	}
	return nil
}
