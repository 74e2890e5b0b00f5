package view

import (
	"vitisense/entities"
	"vitisense/pkg/geo"
	"vitisense/pkg/session"
	"vitisense/pkg/weather"
)

// Page is the part every template reads.
type Page struct {
	Title         string
	Authenticated bool
	Owner         string
	Flash         string
	Warning       string
}

type SignInPage struct {
	Page
	Email string
}

type FarmNewPage struct {
	Page
	Name       string
	Type       entities.FarmType
	FarmTypes  []entities.FarmType
	SavedFarms entities.SavedFarms
	Selected   string
}

type BoundaryPage struct {
	Page
	FarmName string
	Boundary entities.Boundary
	Center   entities.Point
	Query    string
}

type DashboardPage struct {
	Page
	Farm     entities.Farm
	Centroid entities.Point
	Mode     session.Mode
	Weather  *weather.Snapshot
	Strips   []geo.Segment
	Robot    []entities.Point
	Overlaps []string
	Overlay  interface{}
}

// Base fills the shared page fields from the session.
func Base(title string, d session.Data, flash string) Page {
	return Page{
		Title:         title,
		Authenticated: d.Authenticated,
		Owner:         d.Owner,
		Flash:         flash,
	}
}
