package geo

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"vitisense/entities"
)

// Feature kinds carried in the "kind" property of map overlays.
const (
	KindBoundary = "boundary"
	KindStrip    = "strip"
	KindRobot    = "robot"
)

func toOrb(p entities.Point) orb.Point { return orb.Point{p.Lng(), p.Lat()} }

// Ring converts a boundary to a closed orb ring in [lng,lat] order.
func Ring(b entities.Boundary) orb.Ring {
	r := make(orb.Ring, 0, len(b)+1)
	for _, p := range b {
		r = append(r, toOrb(p))
	}
	if len(r) > 0 && r[0] != r[len(r)-1] {
		r = append(r, r[0])
	}
	return r
}

// Bounds is the lat/lng bounding box of the boundary. Empty boundaries give
// a zero-size box on DefaultCenter.
func Bounds(b entities.Boundary) orb.Bound {
	if len(b) == 0 {
		return toOrb(DefaultCenter).Bound()
	}
	return Ring(b).Bound()
}

// FeatureCollection builds the map overlay: the boundary polygon, one line
// per drone strip and the robot path as a single line.
func FeatureCollection(b entities.Boundary, strips []Segment, robot []entities.Point) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	if len(b) > 0 {
		f := geojson.NewFeature(orb.Polygon{Ring(b)})
		f.Properties["kind"] = KindBoundary
		fc.Append(f)
	}
	for i, s := range strips {
		f := geojson.NewFeature(orb.LineString{toOrb(s[0]), toOrb(s[1])})
		f.Properties["kind"] = KindStrip
		f.Properties["index"] = i + 1
		fc.Append(f)
	}
	if len(robot) > 0 {
		ls := make(orb.LineString, 0, len(robot))
		for _, p := range robot {
			ls = append(ls, toOrb(p))
		}
		f := geojson.NewFeature(ls)
		f.Properties["kind"] = KindRobot
		fc.Append(f)
	}
	return fc
}
