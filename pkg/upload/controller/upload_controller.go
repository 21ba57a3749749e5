package controller

import "github.com/labstack/echo/v4"

type UploadController interface {
	Image(c echo.Context) error
	Get(c echo.Context) error
}
