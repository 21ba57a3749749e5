package controllerImp

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"cropadvisor/pkg/agronomy"
	farmerRepo "cropadvisor/pkg/farmer/repository"
	kbRepo "cropadvisor/pkg/kb/repository"
	uploadRepo "cropadvisor/pkg/upload/repository"
)

// Stores are the repositories whose record counts the health report shows.
type Stores struct {
	Farmers farmerRepo.FarmerRepository
	Uploads uploadRepo.UploadRepository
	KB      kbRepo.KBRepository
}

type HealthCtrl struct {
	db      *gorm.DB
	stores  Stores
	tables  *agronomy.Tables
	version string
	started time.Time
	now     func() time.Time
}

func NewHealthCtrl(db *gorm.DB, stores Stores, tables *agronomy.Tables, version string) *HealthCtrl {
	return &HealthCtrl{db: db, stores: stores, tables: tables, version: version, started: time.Now(), now: time.Now}
}

type sub struct {
	OK  bool   `json:"ok"`
	Err string `json:"err,omitempty"`
}

func (h *HealthCtrl) Health(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 800*time.Millisecond)
	defer cancel()

	db := h.checkDB(ctx)
	var records map[string]any
	if db.OK {
		var err error
		if records, err = h.counts(ctx); err != nil {
			db = sub{Err: err.Error()}
		}
	}

	status, label := http.StatusOK, "ok"
	if !db.OK {
		status, label = http.StatusServiceUnavailable, "unavailable"
	}
	return c.JSON(status, map[string]any{
		"success":    db.OK,
		"status":     label,
		"version":    h.version,
		"uptime_sec": int(h.now().Sub(h.started).Seconds()),
		"checks":     map[string]any{"database": db},
		"tables":     h.tables.Counts(),
		"records":    records,
		"time":       h.now().Format(time.RFC3339),
	})
}

func (h *HealthCtrl) checkDB(ctx context.Context) sub {
	if h.db == nil {
		return sub{Err: "gorm db is nil"}
	}
	sqlDB, err := h.db.DB()
	if err != nil {
		return sub{Err: "db.DB(): " + err.Error()}
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return sub{Err: "ping: " + err.Error()}
	}
	return sub{OK: true}
}

func (h *HealthCtrl) counts(ctx context.Context) (map[string]any, error) {
	farmers, err := h.stores.Farmers.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count farmers: %w", err)
	}
	byPurpose, err := h.stores.Uploads.CountByPurpose(ctx)
	if err != nil {
		return nil, fmt.Errorf("count uploads: %w", err)
	}
	docs, err := h.stores.KB.CountDocs(ctx)
	if err != nil {
		return nil, fmt.Errorf("count kb documents: %w", err)
	}
	var uploads int64
	for _, n := range byPurpose {
		uploads += n
	}
	return map[string]any{
		"farmers":          farmers,
		"uploads":          uploads,
		"uploadsByPurpose": byPurpose,
		"kbDocuments":      docs,
	}, nil
}
