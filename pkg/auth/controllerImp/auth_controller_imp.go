package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"vitisense/pkg/auth/controller"
	flow "vitisense/pkg/flow/service"
	"vitisense/pkg/middleware"
	"vitisense/pkg/session"
	"vitisense/pkg/view"
)

type authCtrl struct{ flow flow.FlowService }

func NewAuthController(f flow.FlowService) controller.AuthController { return &authCtrl{flow: f} }

// Page always shows the sign-in form; signing in again starts over.
func (h *authCtrl) Page(c echo.Context) error {
	s := middleware.From(c)
	d := s.Read()
	return c.Render(http.StatusOK, view.PageSignIn, view.SignInPage{
		Page:  view.Base("Sign In", d, s.TakeFlash()),
		Email: d.Owner,
	})
}

// SignIn accepts any credentials; the email only scopes saved farms.
func (h *authCtrl) SignIn(c echo.Context) error {
	if err := h.flow.SignIn(middleware.From(c), c.FormValue("email")); err != nil {
		return err
	}
	return c.Redirect(http.StatusSeeOther, session.CreatingFarm.Route())
}

func (h *authCtrl) SignOut(c echo.Context) error {
	h.flow.SignOut(middleware.From(c))
	return c.Redirect(http.StatusSeeOther, session.SignedOut.Route())
}
