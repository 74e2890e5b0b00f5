package controller

import "github.com/labstack/echo/v4"

type FarmController interface {
	New(c echo.Context) error
	Create(c echo.Context) error
	Select(c echo.Context) error
}
