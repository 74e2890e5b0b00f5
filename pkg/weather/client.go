package weather

import (
	"context"
	"errors"

	"vitisense/entities"
)

// ErrNoData means the provider answered without a current-conditions block.
var ErrNoData = errors.New("weather: no current conditions")

// Snapshot is the dashboard's live weather panel. It is never persisted.
type Snapshot struct {
	TemperatureC float64 `json:"temperature_c"`
	HumidityPct  float64 `json:"humidity_pct"`
	RainMm       float64 `json:"rain_mm"`
	WindKmh      float64 `json:"wind_kmh"`
	Description  string  `json:"description"`
}

type Client interface {
	Current(ctx context.Context, at entities.Point) (*Snapshot, error)
}
