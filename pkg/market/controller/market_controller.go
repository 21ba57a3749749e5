package controller

import "github.com/labstack/echo/v4"

type MarketController interface {
	Prices(c echo.Context) error
	Trends(c echo.Context) error
	Nearby(c echo.Context) error
}
