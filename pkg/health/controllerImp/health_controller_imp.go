package controllerImp

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"vitisense/pkg/session"
	"vitisense/pkg/upstream"
)

var appStart = time.Now()

type HealthCtrl struct {
	db        *gorm.DB
	sessions  *session.Store
	upstreams []*upstream.Client
}

func NewHealthCtrl(db *gorm.DB, sessions *session.Store) *HealthCtrl {
	return &HealthCtrl{db: db, sessions: sessions}
}

// WithUpstreams reports the breaker state of each client. Informational:
// an open breaker does not fail the health check.
func (h *HealthCtrl) WithUpstreams(clients ...*upstream.Client) *HealthCtrl {
	h.upstreams = append(h.upstreams, clients...)
	return h
}

func (h *HealthCtrl) Health(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 800*time.Millisecond)
	defer cancel()

	dbOK := true
	dbErr := ""
	if h.db != nil {
		sqlDB, err := h.db.DB()
		if err != nil {
			dbOK = false
			dbErr = "db.DB(): " + err.Error()
		} else if err := sqlDB.PingContext(ctx); err != nil {
			dbOK = false
			dbErr = "ping: " + err.Error()
		}
	} else {
		dbOK = false
		dbErr = "gorm db is nil"
	}

	active := 0
	if h.sessions != nil {
		active = h.sessions.Len()
	}

	breakers := map[string]string{}
	for _, u := range h.upstreams {
		breakers[u.Name()] = u.State()
	}

	allOK := dbOK
	status := http.StatusOK
	if !allOK {
		status = http.StatusServiceUnavailable
	}

	type sub struct {
		OK  bool   `json:"ok"`
		Err string `json:"err,omitempty"`
	}

	resp := map[string]any{
		"status":     map[string]any{"ok": allOK},
		"uptime_sec": int(time.Since(appStart).Seconds()),
		"checks": map[string]any{
			"database": sub{OK: dbOK, Err: dbErr},
			"sessions": map[string]any{"ok": h.sessions != nil, "active": active},
			"upstream": breakers,
		},
		"time": time.Now().Format(time.RFC3339),
	}

	return c.JSON(status, resp)
}
