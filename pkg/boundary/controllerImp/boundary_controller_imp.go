package controllerImp

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"vitisense/pkg/boundary/controller"
	flow "vitisense/pkg/flow/service"
	"vitisense/pkg/geo"
	"vitisense/pkg/geocode"
	"vitisense/pkg/middleware"
	"vitisense/pkg/session"
	"vitisense/pkg/view"
)

// MsgUnreadableShape is shown when a posted boundary cannot be parsed.
const MsgUnreadableShape = "That shape could not be read. Draw a polygon or rectangle."

type BoundaryCtrl struct {
	flow    flow.FlowService
	geocode geocode.Client
}

func New(f flow.FlowService, g geocode.Client) controller.BoundaryController {
	return &BoundaryCtrl{flow: f, geocode: g}
}

func (h *BoundaryCtrl) render(c echo.Context, status int, s *session.Session, warning, query string) error {
	d := s.Read()
	p := view.BoundaryPage{
		Page:     view.Base("Draw Farm Boundary", d, s.TakeFlash()),
		Boundary: d.ActiveBoundary,
		Center:   d.ActiveCenter,
		Query:    query,
	}
	p.Warning = warning
	if d.CurrentFarm != nil {
		p.FarmName = d.CurrentFarm.Name
	}
	return c.Render(status, view.PageBoundary, p)
}

func (h *BoundaryCtrl) back(c echo.Context) error {
	return c.Redirect(http.StatusSeeOther, session.DrawingBoundary.Route())
}

// failed routes flow errors that mean "wrong page" back through the guard.
func (h *BoundaryCtrl) failed(c echo.Context, s *session.Session, err error) error {
	switch {
	case errors.Is(err, flow.ErrNotSignedIn):
		return c.Redirect(http.StatusSeeOther, session.SignedOut.Route())
	case errors.Is(err, flow.ErrNoFarm):
		return c.Redirect(http.StatusSeeOther, session.CreatingFarm.Route())
	case errors.Is(err, flow.ErrNotDrawing):
		return c.Redirect(http.StatusSeeOther, s.Read().State.Route())
	}
	return h.render(c, http.StatusUnprocessableEntity, s, flow.Message(err), "")
}

func (h *BoundaryCtrl) Page(c echo.Context) error {
	s := middleware.From(c)
	if redirect, ok := h.flow.Enter(s, session.DrawingBoundary); !ok {
		return c.Redirect(http.StatusSeeOther, redirect)
	}
	return h.render(c, http.StatusOK, s, "", "")
}

// Stage replaces the staged boundary with the posted shape, either a
// [[lat,lng],...] list or a GeoJSON polygon.
func (h *BoundaryCtrl) Stage(c echo.Context) error {
	s := middleware.From(c)
	b, err := geo.ParseBoundary(c.FormValue("boundary"))
	if err != nil {
		log.Printf("[flow] stage boundary: %v", err)
		return h.render(c, http.StatusUnprocessableEntity, s, MsgUnreadableShape, "")
	}
	if err := h.flow.StageBoundary(s, b); err != nil {
		return h.failed(c, s, err)
	}
	return h.back(c)
}

func (h *BoundaryCtrl) Clear(c echo.Context) error {
	s := middleware.From(c)
	if err := h.flow.ClearBoundary(s); err != nil {
		return h.failed(c, s, err)
	}
	return h.back(c)
}

// Search moves the staged map center to a geocoded postcode or town. One
// lookup per session may be in flight.
func (h *BoundaryCtrl) Search(c echo.Context) error {
	s := middleware.From(c)
	q := strings.TrimSpace(c.FormValue("q"))
	if q == "" {
		return h.back(c)
	}
	if err := h.flow.BeginSearch(s); err != nil {
		return h.render(c, http.StatusConflict, s, flow.Message(err), q)
	}
	defer h.flow.EndSearch(s)
	p, err := h.geocode.Geocode(c.Request().Context(), q)
	if err != nil {
		log.Printf("[geocode] %q: %v", q, err)
		return h.render(c, http.StatusOK, s, geocode.Message(err), q)
	}
	if err := h.flow.SetCenter(s, p); err != nil {
		return h.failed(c, s, err)
	}
	return h.back(c)
}

// Next commits the staged boundary. The form may carry the latest drawn
// shape, which is staged first.
func (h *BoundaryCtrl) Next(c echo.Context) error {
	s := middleware.From(c)
	if raw := c.FormValue("boundary"); strings.TrimSpace(raw) != "" {
		b, err := geo.ParseBoundary(raw)
		if err != nil {
			return h.render(c, http.StatusUnprocessableEntity, s, MsgUnreadableShape, "")
		}
		if err := h.flow.StageBoundary(s, b); err != nil {
			return h.failed(c, s, err)
		}
	}
	if err := h.flow.Commit(s); err != nil {
		return h.failed(c, s, err)
	}
	return c.Redirect(http.StatusSeeOther, session.Dashboard.Route())
}
