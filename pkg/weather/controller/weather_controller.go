package controller

import "github.com/labstack/echo/v4"

type WeatherController interface {
	Get(c echo.Context) error
	Advisory(c echo.Context) error
}
