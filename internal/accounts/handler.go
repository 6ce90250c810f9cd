package accounts

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"resumate-backend/internal/shared/auth"
	"resumate-backend/internal/shared/server/middleware"
	"resumate-backend/internal/shared/server/respond"
)

// Handler wires the auth HTTP surface to the service. Sessions are issued
// as HttpOnly cookies signed by the token manager.
type Handler struct {
	Svc          *Service
	Tokens       *auth.Manager
	SecureCookie bool
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service, tokens *auth.Manager, secureCookie bool) *Handler {
	return &Handler{Svc: svc, Tokens: tokens, SecureCookie: secureCookie}
}

// RegisterPublicRoutes attaches the unauthenticated auth endpoints.
func (h *Handler) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.POST("/auth/register", h.register)
	rg.POST("/auth/login", h.login)
	rg.POST("/auth/logout", h.logout)
}

// RegisterProtectedRoutes attaches endpoints requiring a valid session.
func (h *Handler) RegisterProtectedRoutes(rg *gin.RouterGroup) {
	rg.GET("/auth/me", h.me)
}

type registerRequest struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *Handler) register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	account, err := h.Svc.Register(c.Request.Context(), req.FullName, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", "all fields are required", nil)
		case errors.Is(err, ErrEmailTaken):
			respond.Error(c, http.StatusBadRequest, "validation_error", "user already exists", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to register user", nil)
		}
		return
	}

	if !h.issueSession(c, account) {
		return
	}
	respond.JSON(c, http.StatusCreated, gin.H{
		"message": "user registered successfully",
		"user":    userView(account),
	})
}

func (h *Handler) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	account, err := h.Svc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", "all fields are required", nil)
		case errors.Is(err, ErrBadCredentials):
			respond.Error(c, http.StatusUnauthorized, "unauthorized", "invalid credentials", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to log in", nil)
		}
		return
	}

	if !h.issueSession(c, account) {
		return
	}
	respond.JSON(c, http.StatusOK, gin.H{
		"message": "login successful",
		"user":    userView(account),
	})
}

func (h *Handler) logout(c *gin.Context) {
	auth.ClearSessionCookie(c, h.SecureCookie)
	respond.JSON(c, http.StatusOK, gin.H{"message": "logged out successfully"})
}

func (h *Handler) me(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	account, err := h.Svc.GetByID(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			respond.Error(c, http.StatusNotFound, "not_found", "user not found", nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to load user", nil)
		return
	}

	respond.JSON(c, http.StatusOK, gin.H{"user": userView(account)})
}

// issueSession signs a token for the account and sets the session cookie.
// Returns false after writing an error response.
func (h *Handler) issueSession(c *gin.Context, account Account) bool {
	token, err := h.Tokens.Sign(account.ID, account.Email, account.FullName)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to issue session", nil)
		return false
	}
	maxAge := int(h.Tokens.TTL().Seconds())
	auth.SetSessionCookie(c, token, maxAge, h.SecureCookie)
	return true
}

func userView(account Account) gin.H {
	view := gin.H{
		"id":       account.ID,
		"fullName": account.FullName,
		"email":    account.Email,
	}
	if account.PictureURL != "" {
		view["pictureUrl"] = account.PictureURL
	}
	return view
}
