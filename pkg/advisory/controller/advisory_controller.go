package controller

import "github.com/labstack/echo/v4"

type AdvisoryController interface {
	Recommend(c echo.Context) error
	Fertilizer(c echo.Context) error
}
