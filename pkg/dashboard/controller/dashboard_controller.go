package controller

import "github.com/labstack/echo/v4"

type DashboardController interface {
	Page(c echo.Context) error
	GeoJSON(c echo.Context) error
	Export(c echo.Context) error
}
