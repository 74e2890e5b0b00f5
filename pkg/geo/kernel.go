// Package geo derives coverage paths from a drawn farm boundary.
//
// Coordinates are raw latitude/longitude pairs and all arithmetic is planar:
// nothing is projected, anti-meridian crossings are not handled and polygon
// simplicity is not checked.
package geo

import (
	"sort"

	"vitisense/entities"
)

// DefaultCenter is the nominal map center for the region (Warwickshire).
var DefaultCenter = entities.Point{52.28, -1.58}

const (
	// DefaultStrips is the number of drone strips drawn on the dashboard.
	DefaultStrips = 5
	// DefaultColumns is the number of robot passes drawn on the dashboard.
	DefaultColumns = 8
)

// Segment is a straight line between two points.
type Segment [2]entities.Point

// At linearly interpolates from the first endpoint (t=0) to the second (t=1).
func (s Segment) At(t float64) entities.Point {
	return entities.Point{
		s[0].Lat() + (s[1].Lat()-s[0].Lat())*t,
		s[0].Lng() + (s[1].Lng()-s[0].Lng())*t,
	}
}

// Rails holds the two interpolation edges of a field. Each edge is ordered
// by latitude ascending: [lower, upper].
type Rails struct {
	Left  Segment
	Right Segment
}

// ExtremeEdges picks the two westernmost and the two easternmost vertices of
// the boundary as the left and right rails. It reports false for boundaries
// with fewer than 4 points.
//
// This is not a polygon-side detection: on non-convex or non-rectangular
// shapes the rails may cut across the field. Both path generators share the
// result, so they always sample the same two rails.
func ExtremeEdges(b entities.Boundary) (Rails, bool) {
	if len(b) < 4 {
		return Rails{}, false
	}

	sorted := make(entities.Boundary, len(b))
	copy(sorted, b)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Lng() < sorted[j].Lng() })

	left := []entities.Point{sorted[0], sorted[1]}
	right := []entities.Point{sorted[len(sorted)-2], sorted[len(sorted)-1]}
	byLat := func(p []entities.Point) {
		sort.SliceStable(p, func(i, j int) bool { return p[i].Lat() < p[j].Lat() })
	}
	byLat(left)
	byLat(right)

	return Rails{
		Left:  Segment{left[0], left[1]},
		Right: Segment{right[0], right[1]},
	}, true
}

// Centroid returns the per-axis arithmetic mean of the boundary vertices, or
// DefaultCenter for an empty boundary.
func Centroid(b entities.Boundary) entities.Point {
	if len(b) == 0 {
		return DefaultCenter
	}
	var lat, lng float64
	for _, p := range b {
		lat += p.Lat()
		lng += p.Lng()
	}
	n := float64(len(b))
	return entities.Point{lat / n, lng / n}
}

// GridLines returns strips drone lines evenly spaced between the rails. Line
// i joins the points at t = i/(strips+1) on each rail, so the rails
// themselves are never part of the output.
func GridLines(b entities.Boundary, strips int) []Segment {
	rails, ok := ExtremeEdges(b)
	if !ok || strips < 1 {
		return []Segment{}
	}
	lines := make([]Segment, 0, strips)
	for i := 1; i <= strips; i++ {
		t := float64(i) / float64(strips+1)
		lines = append(lines, Segment{rails.Left.At(t), rails.Right.At(t)})
	}
	return lines
}

// ZigZag returns a continuous back-and-forth robot path of 2*(columns+1)
// points. Pass i samples both rails at t = i/columns, rails included, and the
// travel direction flips on every pass, starting left to right.
func ZigZag(b entities.Boundary, columns int) []entities.Point {
	rails, ok := ExtremeEdges(b)
	if !ok || columns < 1 {
		return []entities.Point{}
	}
	path := make([]entities.Point, 0, 2*(columns+1))
	up := true
	for i := 0; i <= columns; i++ {
		t := float64(i) / float64(columns)
		bottom := rails.Left.At(t)
		top := rails.Right.At(t)
		if up {
			path = append(path, bottom, top)
		} else {
			path = append(path, top, bottom)
		}
		up = !up
	}
	return path
}
