package weather

import (
	"context"
	"math"

	"vitisense/entities"
)

type mockClient struct{}

// NewMock returns stable conditions derived from the coordinate, so the
// dashboard renders offline.
func NewMock() Client { return &mockClient{} }

func (m *mockClient) Current(_ context.Context, at entities.Point) (*Snapshot, error) {
	seed := math.Abs(at.Lat()*7 + at.Lng()*3)
	frac := seed - math.Floor(seed)
	return &Snapshot{
		TemperatureC: math.Round((8+frac*12)*10) / 10,
		HumidityPct:  math.Round(55 + frac*40),
		RainMm:       0,
		WindKmh:      math.Round((5+frac*20)*10) / 10,
		Description:  Describe(int(frac*4) % 4),
	}, nil
}
