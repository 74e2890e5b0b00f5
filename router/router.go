package router

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	auth "vitisense/pkg/auth/controller"
	boundary "vitisense/pkg/boundary/controller"
	dashboard "vitisense/pkg/dashboard/controller"
	farm "vitisense/pkg/farm/controller"
	"vitisense/pkg/middleware"
	"vitisense/pkg/session"
)

func New(
	e *echo.Echo,
	store *session.Store,
	secureCookie bool,
	authCtrl auth.AuthController,
	farmCtrl farm.FarmController,
	boundaryCtrl boundary.BoundaryController,
	dashCtrl dashboard.DashboardController,
	healthCtrl interface{ Health(echo.Context) error },
) *echo.Echo {
	e.HTTPErrorHandler = redirectUnknown(e.DefaultHTTPErrorHandler)
	e.GET("/health", healthCtrl.Health)

	web := e.Group("", middleware.Session(store, secureCookie))
	web.GET("/", authCtrl.Page)
	web.POST("/", authCtrl.SignIn)
	web.POST("/signout", authCtrl.SignOut)

	app := web.Group("", middleware.RequireAuth())

	app.GET("/farm/new", farmCtrl.New)
	app.POST("/farm/new", farmCtrl.Create)
	app.POST("/farm/select", farmCtrl.Select)

	app.GET("/farm/boundary", boundaryCtrl.Page)
	app.POST("/farm/boundary", boundaryCtrl.Stage)
	app.POST("/farm/boundary/clear", boundaryCtrl.Clear)
	app.POST("/farm/boundary/search", boundaryCtrl.Search)
	app.POST("/farm/boundary/next", boundaryCtrl.Next)

	app.GET("/dashboard", dashCtrl.Page)
	app.GET("/dashboard/paths.geojson", dashCtrl.GeoJSON)
	app.GET("/dashboard/export.xlsx", dashCtrl.Export)
	return e
}

// redirectUnknown sends any request that matches no route back to the
// sign-in page.
func redirectUnknown(next echo.HTTPErrorHandler) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		var he *echo.HTTPError
		if errors.As(err, &he) && (he.Code == http.StatusNotFound || he.Code == http.StatusMethodNotAllowed) {
			if !c.Response().Committed {
				_ = c.Redirect(http.StatusSeeOther, "/")
			}
			return
		}
		next(err, c)
	}
}
