// Package upstream is the shared outbound HTTP path for third-party lookups
// (geocoding, weather). Every call is a single attempt: there is no retry and
// no cache. A circuit breaker makes a provider that keeps failing fail fast
// instead of holding a page render for the full timeout.
package upstream

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/sony/gobreaker/v2"
)

// ServiceError reports a failed upstream call: transport error, non-2xx
// status, open breaker or undecodable body.
type ServiceError struct {
	Service string
	Status  int
	Err     error
}

func (e *ServiceError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("%s: upstream returned %d", e.Service, e.Status)
	}
	return fmt.Sprintf("%s: %v", e.Service, e.Err)
}

func (e *ServiceError) Unwrap() error { return e.Err }

// IsServiceError reports whether err is (or wraps) a *ServiceError.
func IsServiceError(err error) bool {
	var se *ServiceError
	return errors.As(err, &se)
}

type Client struct {
	name      string
	http      *http.Client
	breaker   *gobreaker.CircuitBreaker[*http.Response]
	userAgent string
}

// Settings tunes the breaker. Zero values take the defaults below.
type Settings struct {
	Timeout         time.Duration
	UserAgent       string
	MaxFailures     uint32
	BreakerCooldown time.Duration
}

func New(name string, s Settings) *Client {
	if s.Timeout <= 0 {
		s.Timeout = 10 * time.Second
	}
	if s.MaxFailures == 0 {
		s.MaxFailures = 5
	}
	if s.BreakerCooldown <= 0 {
		s.BreakerCooldown = 30 * time.Second
	}
	maxFailures := s.MaxFailures
	cb := gobreaker.NewCircuitBreaker[*http.Response](gobreaker.Settings{
		Name:        name,
		MaxRequests: 1,
		Interval:    60 * time.Second,
		Timeout:     s.BreakerCooldown,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= maxFailures
		},
	})
	return &Client{
		name:      name,
		http:      &http.Client{Timeout: s.Timeout},
		breaker:   cb,
		userAgent: s.UserAgent,
	}
}

// GetJSON issues one GET and decodes a 2xx JSON body into out.
func (c *Client) GetJSON(ctx context.Context, url string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return &ServiceError{Service: c.name, Err: err}
	}
	req.Header.Set("Accept", "application/json")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := c.breaker.Execute(func() (*http.Response, error) {
		r, doErr := c.http.Do(req)
		if doErr != nil {
			return nil, doErr
		}
		if r.StatusCode < 200 || r.StatusCode > 299 {
			io.Copy(io.Discard, r.Body)
			r.Body.Close()
			return nil, &ServiceError{Service: c.name, Status: r.StatusCode}
		}
		return r, nil
	})
	if err != nil {
		var se *ServiceError
		if errors.As(err, &se) {
			return se
		}
		return &ServiceError{Service: c.name, Err: err}
	}
	defer resp.Body.Close()

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &ServiceError{Service: c.name, Err: fmt.Errorf("decode: %w", err)}
	}
	return nil
}

// State exposes the breaker state for health reporting.
func (c *Client) State() string { return c.breaker.State().String() }

func (c *Client) Name() string { return c.name }
