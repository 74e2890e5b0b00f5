package controllerImp

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"vitisense/pkg/dashboard/controller"
	"vitisense/pkg/export"
	flow "vitisense/pkg/flow/service"
	"vitisense/pkg/geo"
	"vitisense/pkg/middleware"
	"vitisense/pkg/session"
	"vitisense/pkg/view"
	"vitisense/pkg/weather"
)

const xlsxMIME = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type DashboardCtrl struct {
	flow    flow.FlowService
	weather weather.Client
}

func New(f flow.FlowService, w weather.Client) controller.DashboardController {
	return &DashboardCtrl{flow: f, weather: w}
}

// committed returns the dashboard's plan, or false when no farm has been
// committed in this session.
func committed(s *session.Session) (session.Data, export.Plan, bool) {
	d := s.Read()
	if !d.Authenticated || !d.Committed || d.CurrentFarm == nil {
		return d, export.Plan{}, false
	}
	return d, export.NewPlan(*d.CurrentFarm), true
}

func (h *DashboardCtrl) Page(c echo.Context) error {
	s := middleware.From(c)
	if redirect, ok := h.flow.Enter(s, session.Dashboard); !ok {
		return c.Redirect(http.StatusSeeOther, redirect)
	}
	if m := c.QueryParam("mode"); m != "" {
		h.flow.SetMode(s, session.ParseMode(m))
	}
	d, plan, ok := committed(s)
	if !ok {
		return c.Redirect(http.StatusSeeOther, session.CreatingFarm.Route())
	}

	seq := s.BeginWeather()
	snap, err := h.weather.Current(c.Request().Context(), plan.Centroid)
	if err != nil {
		log.Printf("[weather] %.4f,%.4f: %v", plan.Centroid.Lat(), plan.Centroid.Lng(), err)
		snap = nil
	}
	snap = s.FinishWeather(seq, snap)

	return c.Render(http.StatusOK, view.PageDashboard, view.DashboardPage{
		Page:     view.Base("Dashboard", d, s.TakeFlash()),
		Farm:     plan.Farm,
		Centroid: plan.Centroid,
		Mode:     d.Mode,
		Weather:  snap,
		Strips:   plan.Strips,
		Robot:    plan.Robot,
		Overlaps: geo.NewOverlapIndex(d.SavedFarms).Overlapping(plan.Farm.Boundary, plan.Farm.Name),
		Overlay:  geo.FeatureCollection(plan.Farm.Boundary, plan.Strips, plan.Robot),
	})
}

func (h *DashboardCtrl) GeoJSON(c echo.Context) error {
	_, plan, ok := committed(middleware.From(c))
	if !ok {
		return c.Redirect(http.StatusSeeOther, session.Dashboard.Route())
	}
	b, err := json.Marshal(geo.FeatureCollection(plan.Farm.Boundary, plan.Strips, plan.Robot))
	if err != nil {
		return err
	}
	return c.Blob(http.StatusOK, "application/geo+json", b)
}

func (h *DashboardCtrl) Export(c echo.Context) error {
	_, plan, ok := committed(middleware.From(c))
	if !ok {
		return c.Redirect(http.StatusSeeOther, session.Dashboard.Route())
	}
	var buf bytes.Buffer
	if err := export.WriteXLSX(&buf, plan); err != nil {
		log.Printf("[dashboard] export %q: %v", plan.Farm.Name, err)
		return echo.NewHTTPError(http.StatusInternalServerError, "could not build the workbook")
	}
	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", fileName(plan.Farm.Name)))
	return c.Blob(http.StatusOK, xlsxMIME, buf.Bytes())
}

func fileName(farm string) string {
	slug := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			return r
		case r >= 'A' && r <= 'Z':
			return r + ('a' - 'A')
		}
		return '-'
	}, strings.TrimSpace(farm))
	if slug == "" {
		slug = "farm"
	}
	return slug + "-plan.xlsx"
}
