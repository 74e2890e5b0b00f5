package geo

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"vitisense/entities"
)

var ErrUnsupportedGeometry = errors.New("boundary must be a polygon")

// ParseBoundary reads a boundary posted by the drawing widget. Two shapes are
// accepted: a plain vertex list [[lat,lng],...] and a GeoJSON Feature or
// geometry holding a Polygon (outer ring, [lng,lat] order). A closing vertex
// that repeats the first one is dropped. Blank input yields an empty boundary.
func ParseBoundary(raw string) (entities.Boundary, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" || raw == "null" {
		return entities.Boundary{}, nil
	}
	if strings.HasPrefix(raw, "[") {
		var b entities.Boundary
		if err := json.Unmarshal([]byte(raw), &b); err != nil {
			return nil, fmt.Errorf("parse vertex list: %w", err)
		}
		return dropClosing(b), nil
	}

	var probe struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal([]byte(raw), &probe); err != nil {
		return nil, fmt.Errorf("parse geojson: %w", err)
	}

	var g orb.Geometry
	switch probe.Type {
	case "Feature":
		f, err := geojson.UnmarshalFeature([]byte(raw))
		if err != nil {
			return nil, fmt.Errorf("parse geojson feature: %w", err)
		}
		g = f.Geometry
	case "FeatureCollection":
		fc, err := geojson.UnmarshalFeatureCollection([]byte(raw))
		if err != nil {
			return nil, fmt.Errorf("parse geojson collection: %w", err)
		}
		if len(fc.Features) == 0 {
			return entities.Boundary{}, nil
		}
		g = fc.Features[0].Geometry
	default:
		gg, err := geojson.UnmarshalGeometry([]byte(raw))
		if err != nil {
			return nil, fmt.Errorf("parse geojson geometry: %w", err)
		}
		g = gg.Geometry()
	}
	return fromGeometry(g)
}

func fromGeometry(g orb.Geometry) (entities.Boundary, error) {
	var ring orb.Ring
	switch v := g.(type) {
	case orb.Polygon:
		if len(v) > 0 {
			ring = v[0]
		}
	case orb.MultiPolygon:
		if len(v) > 0 && len(v[0]) > 0 {
			ring = v[0][0]
		}
	case orb.Ring:
		ring = v
	default:
		return nil, ErrUnsupportedGeometry
	}
	b := make(entities.Boundary, 0, len(ring))
	for _, p := range ring {
		b = append(b, entities.Point{p.Lat(), p.Lon()})
	}
	return dropClosing(b), nil
}

func dropClosing(b entities.Boundary) entities.Boundary {
	if len(b) > 1 && b[0] == b[len(b)-1] {
		return b[:len(b)-1]
	}
	return b
}
