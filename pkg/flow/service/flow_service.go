package service

import (
	"errors"

	"vitisense/entities"
	"vitisense/pkg/session"
)

var (
	ErrNotSignedIn      = errors.New("flow: not signed in")
	ErrEmptyName        = errors.New("flow: farm name is empty")
	ErrInvalidFarmType  = errors.New("flow: unknown farm type")
	ErrBoundaryTooSmall = errors.New("flow: boundary needs at least 3 points")
	ErrUnknownFarm      = errors.New("flow: no saved farm with that name")
	ErrNoFarm           = errors.New("flow: no farm staged")
	ErrNotDrawing       = errors.New("flow: boundary is not being drawn")
	ErrSearchInFlight   = errors.New("flow: search already running")
)

// MinBoundaryPoints is the smallest boundary that may be committed.
const MinBoundaryPoints = 3

var messages = map[error]string{
	ErrNotSignedIn:      "Please sign in.",
	ErrEmptyName:        "Please enter a farm name.",
	ErrInvalidFarmType:  "Please choose a farm type from the list.",
	ErrBoundaryTooSmall: "Please draw a boundary around your farm first.",
	ErrUnknownFarm:      "That farm is not in your saved farms.",
	ErrNoFarm:           "Create or select a farm first.",
	ErrNotDrawing:       "Open the boundary page to change the boundary.",
	ErrSearchInFlight:   "A search is already running.",
}

// Message is the inline warning shown for a flow error.
func Message(err error) string {
	for e, msg := range messages {
		if errors.Is(err, e) {
			return msg
		}
	}
	return "Something went wrong."
}

// FlowService drives the SignedOut → CreatingFarm → DrawingBoundary →
// Dashboard state machine. Every method runs under the session lock. A
// returned error leaves the session unchanged.
type FlowService interface {
	SignIn(s *session.Session, email string) error
	SignOut(s *session.Session)

	CreateFarm(s *session.Session, name string, farmType entities.FarmType) error
	SelectFarm(s *session.Session, name string) error

	StageBoundary(s *session.Session, b entities.Boundary) error
	ClearBoundary(s *session.Session) error
	SetCenter(s *session.Session, p entities.Point) error
	Commit(s *session.Session) error

	// Enter is the route guard. It moves the session to target when the
	// prerequisites hold, else returns the path to redirect to.
	Enter(s *session.Session, target session.State) (redirect string, ok bool)
	SetMode(s *session.Session, m session.Mode)

	// BeginSearch marks a geocode lookup in flight; EndSearch clears it.
	BeginSearch(s *session.Session) error
	EndSearch(s *session.Session)
}
