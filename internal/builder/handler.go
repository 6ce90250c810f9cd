package builder

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"resumate-backend/internal/render"
	"resumate-backend/internal/resumes"
	"resumate-backend/internal/shared/server/middleware"
	"resumate-backend/internal/shared/server/respond"
)

// Handler exposes the builder session over HTTP. All routes hang off the
// resume they edit and require the authenticated owner.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches the builder endpoints under /resumes/:id/builder.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	b := rg.Group("/resumes/:id/builder")
	b.POST("", h.open)
	b.GET("", h.view)
	b.DELETE("", h.discard)
	b.POST("/next", h.next)
	b.POST("/prev", h.prev)
	b.POST("/finish", h.finish)
	b.PUT("/personal", h.setPersonal)
	b.PUT("/summary", h.setSummary)
	b.PUT("/layout", h.setLayout)
	b.POST("/experience", h.addExperience)
	b.PUT("/experience/:index", h.updateExperience)
	b.DELETE("/experience/:index", h.removeExperience)
	b.POST("/education", h.addEducation)
	b.PUT("/education/:index", h.updateEducation)
	b.DELETE("/education/:index", h.removeEducation)
	b.POST("/skills", h.addSkill)
	b.DELETE("/skills/:value", h.removeSkill)
	b.POST("/board/move", h.moveSection)
}

func (h *Handler) open(c *gin.Context) {
	session, err := h.Svc.Open(c.Request.Context(), middleware.UserIDFromContext(c), c.Param("id"))
	if err != nil {
		respondBuilderError(c, err)
		return
	}
	respond.JSON(c, http.StatusOK, session)
}

func (h *Handler) view(c *gin.Context) {
	session, err := h.Svc.View(c.Request.Context(), middleware.UserIDFromContext(c), c.Param("id"))
	if err != nil {
		respondBuilderError(c, err)
		return
	}
	respond.JSON(c, http.StatusOK, session)
}

func (h *Handler) discard(c *gin.Context) {
	if err := h.Svc.Discard(c.Request.Context(), middleware.UserIDFromContext(c), c.Param("id")); err != nil {
		respondBuilderError(c, err)
		return
	}
	respond.JSON(c, http.StatusOK, gin.H{"message": "builder session discarded"})
}

func (h *Handler) next(c *gin.Context) {
	session, err := h.Svc.GoNext(c.Request.Context(), middleware.UserIDFromContext(c), c.Param("id"))
	if err != nil {
		respondBuilderError(c, err)
		return
	}
	respond.JSON(c, http.StatusOK, session)
}

func (h *Handler) prev(c *gin.Context) {
	session, err := h.Svc.GoPrev(c.Request.Context(), middleware.UserIDFromContext(c), c.Param("id"))
	if err != nil {
		respondBuilderError(c, err)
		return
	}
	respond.JSON(c, http.StatusOK, session)
}

func (h *Handler) finish(c *gin.Context) {
	session, err := h.Svc.Finish(c.Request.Context(), middleware.UserIDFromContext(c), c.Param("id"))
	if err != nil {
		respondBuilderError(c, err)
		return
	}
	respond.JSON(c, http.StatusOK, gin.H{
		"message": "resume saved",
		"resume":  session.Draft,
	})
}

func (h *Handler) setPersonal(c *gin.Context) {
	var req PersonalInfo
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	h.edit(c, func(session *Session) error {
		session.SetPersonal(req)
		return nil
	})
}

func (h *Handler) setSummary(c *gin.Context) {
	var req struct {
		Summary string `json:"summary"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	h.edit(c, func(session *Session) error {
		session.SetSummary(req.Summary)
		return nil
	})
}

func (h *Handler) setLayout(c *gin.Context) {
	var req struct {
		LayoutID       string `json:"layoutId"`
		SecondaryColor string `json:"secondaryColor"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	h.edit(c, func(session *Session) error {
		if !session.SetLayout(req.LayoutID, req.SecondaryColor) {
			return errUnknownLayout
		}
		return nil
	})
}

func (h *Handler) addExperience(c *gin.Context) {
	var req resumes.Experience
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	h.edit(c, func(session *Session) error {
		session.AddExperience(req)
		return nil
	})
}

func (h *Handler) updateExperience(c *gin.Context) {
	index, ok := indexParam(c)
	if !ok {
		return
	}
	var req resumes.Experience
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	h.edit(c, func(session *Session) error {
		session.UpdateExperience(index, req)
		return nil
	})
}

func (h *Handler) removeExperience(c *gin.Context) {
	index, ok := indexParam(c)
	if !ok {
		return
	}
	h.edit(c, func(session *Session) error {
		session.RemoveExperience(index)
		return nil
	})
}

func (h *Handler) addEducation(c *gin.Context) {
	var req resumes.Education
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	h.edit(c, func(session *Session) error {
		session.AddEducation(req)
		return nil
	})
}

func (h *Handler) updateEducation(c *gin.Context) {
	index, ok := indexParam(c)
	if !ok {
		return
	}
	var req resumes.Education
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	h.edit(c, func(session *Session) error {
		session.UpdateEducation(index, req)
		return nil
	})
}

func (h *Handler) removeEducation(c *gin.Context) {
	index, ok := indexParam(c)
	if !ok {
		return
	}
	h.edit(c, func(session *Session) error {
		session.RemoveEducation(index)
		return nil
	})
}

func (h *Handler) addSkill(c *gin.Context) {
	var req struct {
		Value string `json:"value"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	h.edit(c, func(session *Session) error {
		session.AddSkill(req.Value)
		return nil
	})
}

func (h *Handler) removeSkill(c *gin.Context) {
	value := c.Param("value")
	h.edit(c, func(session *Session) error {
		session.RemoveSkill(value)
		return nil
	})
}

func (h *Handler) moveSection(c *gin.Context) {
	var req struct {
		SrcList  string `json:"srcList"`
		SrcIndex int    `json:"srcIndex"`
		DstList  string `json:"dstList"`
		DstIndex int    `json:"dstIndex"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	h.edit(c, func(session *Session) error {
		return session.MoveSection(req.SrcList, req.SrcIndex, req.DstList, req.DstIndex)
	})
}

var errUnknownLayout = errors.New("unknown layout")

func (h *Handler) edit(c *gin.Context, fn func(*Session) error) {
	session, err := h.Svc.Edit(c.Request.Context(), middleware.UserIDFromContext(c), c.Param("id"), fn)
	if err != nil {
		respondBuilderError(c, err)
		return
	}
	respond.JSON(c, http.StatusOK, session)
}

func indexParam(c *gin.Context) (int, bool) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "index must be an integer", nil)
		return 0, false
	}
	return index, true
}

func respondBuilderError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrNoSession):
		respond.Error(c, http.StatusNotFound, "not_found", "no builder session for this resume", nil)
	case errors.Is(err, ErrSaveInFlight):
		respond.Error(c, http.StatusConflict, "conflict", "a save is already in progress", nil)
	case errors.Is(err, ErrNotLastStep):
		respond.Error(c, http.StatusBadRequest, "validation_error", "finish is only available from the last step", nil)
	case errors.Is(err, ErrSaveFailed):
		respond.Error(c, http.StatusBadGateway, "store_unavailable", "failed to save draft, try again", nil)
	case errors.Is(err, errUnknownLayout):
		respond.Error(c, http.StatusBadRequest, "validation_error", "unknown layout id", nil)
	case errors.Is(err, render.ErrInvalidMove):
		respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
	default:
		resumes.RespondStoreError(c, err, "builder operation failed")
	}
}
