package controller

import "github.com/labstack/echo/v4"

type PestController interface {
	Detect(c echo.Context) error
	Get(c echo.Context) error
	ByCrop(c echo.Context) error
}
