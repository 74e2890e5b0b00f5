package controllerImp

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"vitisense/entities"
	"vitisense/pkg/farm/controller"
	flow "vitisense/pkg/flow/service"
	"vitisense/pkg/middleware"
	"vitisense/pkg/session"
	"vitisense/pkg/view"
)

// Form defaults when nothing is staged.
const (
	DefaultFarmName = "Warwickshire Vineyard"
	DefaultFarmType = entities.FarmVineyard
)

type FarmCtrl struct{ flow flow.FlowService }

func New(f flow.FlowService) controller.FarmController { return &FarmCtrl{flow: f} }

func (h *FarmCtrl) page(c echo.Context, d session.Data, flash string) view.FarmNewPage {
	p := view.FarmNewPage{
		Page:       view.Base("Create New Farm", d, flash),
		Name:       DefaultFarmName,
		Type:       DefaultFarmType,
		FarmTypes:  entities.FarmTypes,
		SavedFarms: d.SavedFarms,
	}
	if d.CurrentFarm != nil {
		p.Name, p.Type = d.CurrentFarm.Name, d.CurrentFarm.Type
	}
	if len(d.SavedFarms) > 0 {
		p.Selected = d.SavedFarms[0].Name
	}
	if c.QueryParam("fresh") == "1" {
		p.Name, p.Type, p.Selected = "", DefaultFarmType, ""
	}
	return p
}

func (h *FarmCtrl) New(c echo.Context) error {
	s := middleware.From(c)
	if redirect, ok := h.flow.Enter(s, session.CreatingFarm); !ok {
		return c.Redirect(http.StatusSeeOther, redirect)
	}
	return c.Render(http.StatusOK, view.PageFarmNew, h.page(c, s.Read(), s.TakeFlash()))
}

func (h *FarmCtrl) Create(c echo.Context) error {
	s := middleware.From(c)
	name, farmType := c.FormValue("name"), entities.FarmType(c.FormValue("type"))
	if err := h.flow.CreateFarm(s, name, farmType); err != nil {
		return h.reject(c, s, err, func(p *view.FarmNewPage) { p.Name, p.Type = name, farmType })
	}
	return c.Redirect(http.StatusSeeOther, session.DrawingBoundary.Route())
}

func (h *FarmCtrl) Select(c echo.Context) error {
	s := middleware.From(c)
	name := c.FormValue("name")
	if err := h.flow.SelectFarm(s, name); err != nil {
		return h.reject(c, s, err, func(p *view.FarmNewPage) { p.Selected = name })
	}
	return c.Redirect(http.StatusSeeOther, session.DrawingBoundary.Route())
}

// reject re-renders the form with an inline warning; the session is unchanged.
func (h *FarmCtrl) reject(c echo.Context, s *session.Session, err error, keep func(*view.FarmNewPage)) error {
	if errors.Is(err, flow.ErrNotSignedIn) {
		return c.Redirect(http.StatusSeeOther, session.SignedOut.Route())
	}
	p := h.page(c, s.Read(), "")
	keep(&p)
	p.Warning = flow.Message(err)
	return c.Render(http.StatusUnprocessableEntity, view.PageFarmNew, p)
}
