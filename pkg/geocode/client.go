package geocode

import (
	"context"
	"errors"

	"vitisense/entities"
)

// ErrNotFound means the lookup succeeded but matched nothing.
var ErrNotFound = errors.New("geocode: no match")

// User-facing messages for the boundary page alert.
const (
	MsgNotFound = "Could not find that postcode. Try full postcode or a nearby town."
	MsgFailed   = "Search failed. Check your connection or try another code."
)

// Client resolves a free-text address or postcode to a coordinate.
type Client interface {
	Geocode(ctx context.Context, query string) (entities.Point, error)
}

// Message maps a Geocode error to the alert shown to the user.
func Message(err error) string {
	if errors.Is(err, ErrNotFound) {
		return MsgNotFound
	}
	return MsgFailed
}
