package controllerImp

import (
	"errors"
	"mime/multipart"
	"net/http"

	"github.com/labstack/echo/v4"

	"cropadvisor/entities"
	"cropadvisor/pkg/agronomy"
	"cropadvisor/pkg/upload/service"
)

type UploadCtrl struct{ s service.UploadService }

func New(s service.UploadService) *UploadCtrl { return &UploadCtrl{s: s} }

// FormImage reads the "image" part. A missing part is an invalid request.
func FormImage(c echo.Context) (*multipart.FileHeader, error) {
	fh, err := c.FormFile("image")
	if errors.Is(err, http.ErrMissingFile) {
		return nil, agronomy.InvalidInput("No image uploaded")
	}
	if err != nil {
		return nil, agronomy.InvalidInput("invalid multipart body: %v", err)
	}
	return fh, nil
}

// Image handles POST /api/upload/image.
func (h *UploadCtrl) Image(c echo.Context) error {
	fh, err := FormImage(c)
	if err != nil {
		return err
	}
	acc, err := h.s.Accept(c.Request().Context(), entities.UploadGeneral, fh, c.FormValue("cropType"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, map[string]any{
		"success": true,
		"message": "Image uploaded successfully",
		"file":    acc.Record,
	})
}

// Get handles GET /api/upload/:id.
func (h *UploadCtrl) Get(c echo.Context) error {
	u, err := h.s.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]any{"success": true, "file": u})
}
