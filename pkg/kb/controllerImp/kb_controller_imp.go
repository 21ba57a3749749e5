package controllerImp

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"cropadvisor/pkg/agronomy"
	"cropadvisor/pkg/kb/service"
)

const maxResults = 20

type KBCtrl struct{ s service.KBService }

func New(s service.KBService) *KBCtrl { return &KBCtrl{s: s} }

func (h *KBCtrl) IngestText(c echo.Context) error {
	var req service.Document
	if err := c.Bind(&req); err != nil {
		return agronomy.InvalidInput("invalid request body")
	}
	doc, n, err := h.s.Ingest(c.Request().Context(), req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, map[string]any{"success": true, "doc": doc, "chunks": n})
}

func (h *KBCtrl) IngestURL(c echo.Context) error {
	var body struct {
		URL   string `json:"url"`
		Title string `json:"title"`
		Tags  string `json:"tags"`
	}
	if err := c.Bind(&body); err != nil {
		return agronomy.InvalidInput("invalid request body")
	}
	if body.URL == "" {
		return agronomy.InvalidInput("url is required")
	}

	doc, n, err := h.s.IngestURL(c.Request().Context(), body.URL, body.Title, body.Tags)
	var fe *service.FetchError
	switch {
	case errors.Is(err, service.ErrDomainNotAllowed):
		return echo.NewHTTPError(http.StatusForbidden, err.Error()).SetInternal(err)
	case errors.As(err, &fe):
		return echo.NewHTTPError(http.StatusBadGateway, err.Error()).SetInternal(err)
	case err != nil:
		return err
	}
	return c.JSON(http.StatusCreated, map[string]any{"success": true, "doc": doc, "chunks": n})
}

func (h *KBCtrl) Search(c echo.Context) error {
	k := 6
	if v := c.QueryParam("k"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 || n > maxResults {
			return agronomy.InvalidInput("k must be between 1 and %d", maxResults)
		}
		k = n
	}
	hits, err := h.s.Search(c.Request().Context(), c.QueryParam("q"), k)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]any{"success": true, "count": len(hits), "results": hits})
}
