package weather

import (
	"context"
	"fmt"
	"strings"

	"vitisense/entities"
	"vitisense/pkg/upstream"
)

const currentFields = "temperature_2m,relative_humidity_2m,precipitation,rain,wind_speed_10m,weather_code"

type openMeteo struct {
	endpoint string
	http     *upstream.Client
}

func NewOpenMeteo(endpoint string, c *upstream.Client) Client {
	return &openMeteo{endpoint: strings.TrimRight(endpoint, "/"), http: c}
}

type currentBlock struct {
	Temperature   float64  `json:"temperature_2m"`
	Humidity      float64  `json:"relative_humidity_2m"`
	Precipitation *float64 `json:"precipitation"`
	Rain          *float64 `json:"rain"`
	WindSpeed     *float64 `json:"wind_speed_10m"`
	WeatherCode   *int     `json:"weather_code"`
}

func (o *openMeteo) Current(ctx context.Context, at entities.Point) (*Snapshot, error) {
	u := fmt.Sprintf("%s/v1/forecast?latitude=%g&longitude=%g&current=%s&timezone=auto",
		o.endpoint, at.Lat(), at.Lng(), currentFields)

	var body struct {
		Current *currentBlock `json:"current"`
	}
	if err := o.http.GetJSON(ctx, u, &body); err != nil {
		return nil, err
	}
	if body.Current == nil {
		return nil, ErrNoData
	}
	return snapshotFrom(body.Current), nil
}

func snapshotFrom(cur *currentBlock) *Snapshot {
	s := &Snapshot{
		TemperatureC: cur.Temperature,
		HumidityPct:  cur.Humidity,
		Description:  UnknownConditions,
	}
	// rain first, then total precipitation, then nothing
	switch {
	case cur.Rain != nil:
		s.RainMm = *cur.Rain
	case cur.Precipitation != nil:
		s.RainMm = *cur.Precipitation
	}
	if cur.WindSpeed != nil {
		s.WindKmh = *cur.WindSpeed
	}
	if cur.WeatherCode != nil {
		s.Description = Describe(*cur.WeatherCode)
	}
	return s
}
