package controller

import "github.com/labstack/echo/v4"

type BoundaryController interface {
	Page(c echo.Context) error
	Stage(c echo.Context) error
	Clear(c echo.Context) error
	Search(c echo.Context) error
	Next(c echo.Context) error
}
