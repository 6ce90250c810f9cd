package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"resumate-backend/internal/shared/auth"
)

func newAuthedRouter(mgr *auth.Manager) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(Auth(mgr))
	router.GET("/api/v1/resumes", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"userId": UserIDFromContext(c)})
	})
	return router
}

func TestAuthRejectsMissingSession(t *testing.T) {
	router := newAuthedRouter(auth.NewManager("secret", time.Hour))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/resumes", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.Code)
	}
}

func TestAuthAcceptsSessionCookie(t *testing.T) {
	mgr := auth.NewManager("secret", time.Hour)
	router := newAuthedRouter(mgr)

	token, err := mgr.Sign("user-1", "", "")
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/resumes", nil)
	req.AddCookie(&http.Cookie{Name: auth.CookieName, Value: token})
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
}

func TestAuthAcceptsBearerToken(t *testing.T) {
	mgr := auth.NewManager("secret", time.Hour)
	router := newAuthedRouter(mgr)

	token, err := mgr.Sign("user-1", "", "")
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/resumes", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
}

func TestAuthAllowsOptionsWithoutIdentity(t *testing.T) {
	mgr := auth.NewManager("secret", time.Hour)
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(Auth(mgr))
	router.OPTIONS("/api/v1/resumes", func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/resumes", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", resp.Code)
	}
}

func TestAuthRejectsTamperedToken(t *testing.T) {
	mgr := auth.NewManager("secret", time.Hour)
	router := newAuthedRouter(mgr)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/resumes", nil)
	req.AddCookie(&http.Cookie{Name: auth.CookieName, Value: "not.a.token"})
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.Code)
	}
}
