package accounts_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"resumate-backend/internal/accounts"
	"resumate-backend/internal/shared/auth"
	"resumate-backend/internal/shared/server/middleware"
)

func newAuthRouter(t *testing.T) (*gin.Engine, *auth.Manager) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	tokens := auth.NewManager("test-secret", time.Hour)
	handler := accounts.NewHandler(accounts.NewService(accounts.NewMemoryRepo()), tokens, false)

	router := gin.New()
	handler.RegisterPublicRoutes(&router.RouterGroup)
	protected := router.Group("")
	protected.Use(middleware.Auth(tokens))
	handler.RegisterProtectedRoutes(protected)
	return router, tokens
}

func postJSON(router *gin.Engine, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader([]byte(body)))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

func sessionCookie(t *testing.T, resp *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, cookie := range resp.Result().Cookies() {
		if cookie.Name == auth.CookieName {
			return cookie
		}
	}
	t.Fatal("expected session cookie in response")
	return nil
}

func TestRegisterSetsSessionCookie(t *testing.T) {
	router, _ := newAuthRouter(t)

	resp := postJSON(router, "/auth/register", `{"fullName":"Jane Doe","email":"jane@example.com","password":"hunter22"}`)
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", resp.Code, resp.Body.String())
	}

	cookie := sessionCookie(t, resp)
	if !cookie.HttpOnly {
		t.Fatal("expected HttpOnly session cookie")
	}
	if cookie.Value == "" {
		t.Fatal("expected non-empty session token")
	}
}

func TestLoginThenMe(t *testing.T) {
	router, _ := newAuthRouter(t)

	if resp := postJSON(router, "/auth/register", `{"fullName":"Jane Doe","email":"jane@example.com","password":"hunter22"}`); resp.Code != http.StatusCreated {
		t.Fatalf("register: expected 201, got %d", resp.Code)
	}

	login := postJSON(router, "/auth/login", `{"email":"jane@example.com","password":"hunter22"}`)
	if login.Code != http.StatusOK {
		t.Fatalf("login: expected 200, got %d: %s", login.Code, login.Body.String())
	}
	cookie := sessionCookie(t, login)

	req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
	req.AddCookie(cookie)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("me: expected 200, got %d: %s", resp.Code, resp.Body.String())
	}
	if !strings.Contains(resp.Body.String(), "jane@example.com") {
		t.Fatalf("expected user email in response, got %s", resp.Body.String())
	}
}

func TestLoginBadPassword(t *testing.T) {
	router, _ := newAuthRouter(t)

	if resp := postJSON(router, "/auth/register", `{"fullName":"Jane Doe","email":"jane@example.com","password":"hunter22"}`); resp.Code != http.StatusCreated {
		t.Fatalf("register: expected 201, got %d", resp.Code)
	}

	resp := postJSON(router, "/auth/login", `{"email":"jane@example.com","password":"wrong"}`)
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.Code)
	}
}

func TestMeWithoutSession(t *testing.T) {
	router, _ := newAuthRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.Code)
	}
}

func TestLogoutClearsCookie(t *testing.T) {
	router, _ := newAuthRouter(t)

	resp := postJSON(router, "/auth/logout", "")
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}

	cookie := sessionCookie(t, resp)
	if cookie.Value != "" || cookie.MaxAge >= 0 {
		t.Fatalf("expected expired empty cookie, got value=%q maxAge=%d", cookie.Value, cookie.MaxAge)
	}
}
