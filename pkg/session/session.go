// Package session holds the per-browser front-end state. A Session is only
// read or changed through Read and Update, which run under its lock, so one
// browser's actions apply in order even when requests overlap.
package session

import (
	"sync"
	"time"

	"vitisense/entities"
	"vitisense/pkg/weather"
)

type State int

const (
	SignedOut State = iota
	CreatingFarm
	DrawingBoundary
	Dashboard
)

var stateNames = [...]string{"SignedOut", "CreatingFarm", "DrawingBoundary", "Dashboard"}

func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return "unknown"
	}
	return stateNames[s]
}

// Route is the page path a state is displayed at.
func (s State) Route() string {
	switch s {
	case CreatingFarm:
		return "/farm/new"
	case DrawingBoundary:
		return "/farm/boundary"
	case Dashboard:
		return "/dashboard"
	default:
		return "/"
	}
}

// Mode is the dashboard inspection overlay.
type Mode string

const (
	ModeDrone Mode = "drone"
	ModeRobot Mode = "robot"
)

// ParseMode falls back to drone for anything unrecognized.
func ParseMode(s string) Mode {
	if Mode(s) == ModeRobot {
		return ModeRobot
	}
	return ModeDrone
}

// Data is the state carried by one browser session.
type Data struct {
	Authenticated bool
	Owner         string
	State         State

	// CurrentFarm is the farm being edited or viewed. Committed is set once
	// its boundary has been confirmed and the dashboard may render it.
	CurrentFarm *entities.Farm
	Committed   bool

	// staging, edited on the boundary page
	ActiveBoundary entities.Boundary
	ActiveCenter   entities.Point

	SavedFarms entities.SavedFarms
	Mode       Mode

	Searching bool
	Weather   *weather.Snapshot

	// Flash is shown once on the next rendered page.
	Flash string
}

type Session struct {
	ID string

	// guarded by the owning Store's lock
	lastSeen time.Time

	mu         sync.Mutex
	data       Data
	weatherSeq uint64
}

func newSession(id string) *Session {
	return &Session{ID: id, data: Data{Mode: ModeDrone}}
}

// Read returns a copy of the session data.
func (s *Session) Read() Data {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.data.clone()
}

// Update runs fn with exclusive access to the session data.
func (s *Session) Update(fn func(d *Data) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(&s.data)
}

// TakeFlash returns the pending flash message and clears it.
func (s *Session) TakeFlash() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	msg := s.data.Flash
	s.data.Flash = ""
	return msg
}

// BeginWeather starts a weather fetch and returns its sequence number.
func (s *Session) BeginWeather() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.weatherSeq++
	return s.weatherSeq
}

// FinishWeather records snap if no newer fetch has started since seq was
// taken. It returns the snapshot the session now holds.
func (s *Session) FinishWeather(seq uint64, snap *weather.Snapshot) *weather.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	if seq == s.weatherSeq {
		s.data.Weather = snap
		return snap
	}
	if s.data.Weather == nil {
		return snap
	}
	return s.data.Weather
}

// ResetWeather drops the recorded snapshot and invalidates in-flight fetches.
// Callers must hold the lock, i.e. call it from inside Update.
func (s *Session) ResetWeather(d *Data) {
	s.weatherSeq++
	d.Weather = nil
}

func (d Data) clone() Data {
	out := d
	if d.CurrentFarm != nil {
		f := cloneFarm(*d.CurrentFarm)
		out.CurrentFarm = &f
	}
	out.ActiveBoundary = cloneBoundary(d.ActiveBoundary)
	if d.SavedFarms != nil {
		out.SavedFarms = make(entities.SavedFarms, len(d.SavedFarms))
		for i, f := range d.SavedFarms {
			out.SavedFarms[i] = cloneFarm(f)
		}
	}
	if d.Weather != nil {
		w := *d.Weather
		out.Weather = &w
	}
	return out
}

func cloneFarm(f entities.Farm) entities.Farm {
	f.Boundary = cloneBoundary(f.Boundary)
	if f.Center != nil {
		c := *f.Center
		f.Center = &c
	}
	return f
}

func cloneBoundary(b entities.Boundary) entities.Boundary {
	if b == nil {
		return nil
	}
	return append(entities.Boundary(nil), b...)
}
