package resumes

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"resumate-backend/internal/shared/server/middleware"
	"resumate-backend/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches resume routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/resumes", h.create)
	rg.GET("/resumes", h.list)
	rg.GET("/resumes/:id", h.get)
	rg.PATCH("/resumes/:id", h.patch)
	rg.DELETE("/resumes/:id", h.remove)
}

type createRequest struct {
	Title string `json:"title"`
}

func (h *Handler) create(c *gin.Context) {
	ownerID := middleware.UserIDFromContext(c)

	var req createRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	res, err := h.Svc.Create(c.Request.Context(), ownerID, req.Title)
	if err != nil {
		if errors.Is(err, ErrInvalidInput) {
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to create resume", nil)
		return
	}

	respond.JSON(c, http.StatusCreated, res)
}

func (h *Handler) list(c *gin.Context) {
	ownerID := middleware.UserIDFromContext(c)

	summaries, err := h.Svc.List(c.Request.Context(), ownerID)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list resumes", nil)
		return
	}

	respond.JSON(c, http.StatusOK, summaries)
}

func (h *Handler) get(c *gin.Context) {
	ownerID := middleware.UserIDFromContext(c)

	res, err := h.Svc.Get(c.Request.Context(), ownerID, c.Param("id"))
	if err != nil {
		RespondStoreError(c, err, "failed to fetch resume")
		return
	}

	respond.JSON(c, http.StatusOK, res)
}

func (h *Handler) patch(c *gin.Context) {
	ownerID := middleware.UserIDFromContext(c)

	var patch Patch
	if err := c.ShouldBindJSON(&patch); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	res, err := h.Svc.Patch(c.Request.Context(), ownerID, c.Param("id"), patch)
	if err != nil {
		RespondStoreError(c, err, "failed to update resume")
		return
	}

	respond.JSON(c, http.StatusOK, res)
}

func (h *Handler) remove(c *gin.Context) {
	ownerID := middleware.UserIDFromContext(c)

	if err := h.Svc.Delete(c.Request.Context(), ownerID, c.Param("id")); err != nil {
		RespondStoreError(c, err, "failed to delete resume")
		return
	}

	respond.JSON(c, http.StatusOK, gin.H{"message": "resume deleted"})
}

// RespondStoreError maps store sentinels onto the error envelope.
func RespondStoreError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, ErrNotFound):
		respond.Error(c, http.StatusNotFound, "not_found", "resume not found", nil)
	case errors.Is(err, ErrForbidden):
		respond.Error(c, http.StatusForbidden, "forbidden", "resume not owned by caller", nil)
	case errors.Is(err, ErrInvalidInput):
		respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
	default:
		respond.Error(c, http.StatusInternalServerError, "internal_error", fallback, nil)
	}
}
