package render

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"resumate-backend/internal/resumes"
	"resumate-backend/internal/shared/metrics"
	"resumate-backend/internal/shared/server/middleware"
	"resumate-backend/internal/shared/server/respond"
	"resumate-backend/internal/shared/telemetry"
)

// SessionSource exposes the live builder arrangement for a resume, so
// preview and export reflect unsaved edits. ok is false when the resume has
// no open session.
type SessionSource interface {
	Arrangement(ctx context.Context, ownerID, resumeID string) (resumes.Resume, Board, bool)
}

// Handler serves HTML previews and PDF exports.
type Handler struct {
	Resumes  *resumes.Service
	Sessions SessionSource

	mu        sync.Mutex
	exporting map[string]bool
}

// NewHandler constructs a Handler. sessions may be nil, in which case only
// stored records are rendered.
func NewHandler(resumeSvc *resumes.Service, sessions SessionSource) *Handler {
	return &Handler{
		Resumes:   resumeSvc,
		Sessions:  sessions,
		exporting: make(map[string]bool),
	}
}

// RegisterRoutes attaches the render endpoints.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/resumes/:id/preview", h.preview)
	rg.GET("/resumes/:id/export.pdf", h.export)
}

func (h *Handler) preview(c *gin.Context) {
	record, layout, board, ok := h.resolve(c)
	if !ok {
		return
	}

	html, err := HTML(record, layout, board)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to render preview", nil)
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", html)
}

func (h *Handler) export(c *gin.Context) {
	record, layout, board, ok := h.resolve(c)
	if !ok {
		return
	}

	resumeID := c.Param("id")
	if !h.beginExport(resumeID) {
		respond.Error(c, http.StatusConflict, "conflict", "an export for this resume is already running", nil)
		return
	}
	defer h.endExport(resumeID)

	start := time.Now()
	pdf, err := PDF(record, layout, board)
	if err != nil {
		metrics.IncExportFailed()
		telemetry.Error("render.export_failed", map[string]any{
			"resume_id": resumeID,
			"error":     err.Error(),
		})
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to export pdf", nil)
		return
	}
	metrics.IncExport()
	metrics.ObserveExportDurationMs(metrics.SinceMillis(start))

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", ExportFileName(record)))
	c.Data(http.StatusOK, "application/pdf", pdf)
}

// resolve loads the record and arrangement for the request. The builder
// session wins when one is open; a layout query parameter overrides both.
// On failure it writes the error response and returns ok=false.
func (h *Handler) resolve(c *gin.Context) (resumes.Resume, Layout, Board, bool) {
	ownerID := middleware.UserIDFromContext(c)
	resumeID := c.Param("id")
	ctx := c.Request.Context()

	record, err := h.Resumes.Get(ctx, ownerID, resumeID)
	if err != nil {
		resumes.RespondStoreError(c, err, "failed to load resume")
		return resumes.Resume{}, "", Board{}, false
	}

	board := DefaultBoard()
	if h.Sessions != nil {
		if draft, sessionBoard, ok := h.Sessions.Arrangement(ctx, ownerID, resumeID); ok {
			record = draft
			board = sessionBoard
		}
	}

	layoutID := c.Query("layout")
	if layoutID == "" {
		layoutID = record.LayoutID
	}
	layout, err := ParseLayout(layoutID)
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		return resumes.Resume{}, "", Board{}, false
	}
	return record, layout, board, true
}

func (h *Handler) beginExport(resumeID string) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.exporting[resumeID] {
		return false
	}
	h.exporting[resumeID] = true
	return true
}

func (h *Handler) endExport(resumeID string) {
	h.mu.Lock()
	delete(h.exporting, resumeID)
	h.mu.Unlock()
}
