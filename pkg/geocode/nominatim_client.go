package geocode

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"vitisense/entities"
	"vitisense/pkg/upstream"
)

type nominatim struct {
	endpoint string
	http     *upstream.Client
}

func NewNominatim(endpoint string, c *upstream.Client) Client {
	return &nominatim{endpoint: strings.TrimRight(endpoint, "/"), http: c}
}

func (n *nominatim) Geocode(ctx context.Context, query string) (entities.Point, error) {
	u := n.endpoint + "/search?format=json&q=" + url.QueryEscape(query)

	var results []struct {
		Lat string `json:"lat"`
		Lon string `json:"lon"`
	}
	if err := n.http.GetJSON(ctx, u, &results); err != nil {
		return entities.Point{}, err
	}
	if len(results) == 0 {
		return entities.Point{}, ErrNotFound
	}

	lat, err := strconv.ParseFloat(results[0].Lat, 64)
	if err != nil {
		return entities.Point{}, &upstream.ServiceError{Service: "nominatim", Err: fmt.Errorf("lat %q: %w", results[0].Lat, err)}
	}
	lon, err := strconv.ParseFloat(results[0].Lon, 64)
	if err != nil {
		return entities.Point{}, &upstream.ServiceError{Service: "nominatim", Err: fmt.Errorf("lon %q: %w", results[0].Lon, err)}
	}
	return entities.Point{lat, lon}, nil
}
