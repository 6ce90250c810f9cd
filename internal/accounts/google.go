package accounts

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	"resumate-backend/internal/shared/auth"
	"resumate-backend/internal/shared/server/respond"
)

// GoogleHandler handles the Google OAuth sign-in flow. A successful callback
// upserts the account and issues the same session cookie as password login.
type GoogleHandler struct {
	oauthConfig  *oauth2.Config
	svc          *Service
	tokens       *auth.Manager
	uiRedirect   string
	secureCookie bool
	stateTTL     time.Duration
	stateStore   *stateStore
}

// NewGoogleHandler builds a GoogleHandler.
func NewGoogleHandler(svc *Service, tokens *auth.Manager, clientID, clientSecret, redirectURL, uiRedirect string, secureCookie bool) *GoogleHandler {
	return &GoogleHandler{
		oauthConfig: &oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			RedirectURL:  redirectURL,
			Scopes: []string{
				"https://www.googleapis.com/auth/userinfo.email",
				"https://www.googleapis.com/auth/userinfo.profile",
			},
			Endpoint: google.Endpoint,
		},
		svc:          svc,
		tokens:       tokens,
		uiRedirect:   uiRedirect,
		secureCookie: secureCookie,
		stateTTL:     5 * time.Minute,
		stateStore:   newStateStore(),
	}
}

// RegisterRoutes attaches the Google auth endpoints.
func (h *GoogleHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/auth/google/start", h.start)
	rg.GET("/auth/google/callback", h.callback)
}

func (h *GoogleHandler) start(c *gin.Context) {
	if h.oauthConfig.ClientID == "" || h.oauthConfig.ClientSecret == "" || h.oauthConfig.RedirectURL == "" {
		respond.Error(c, http.StatusInternalServerError, "auth_not_configured", "Google auth not configured", nil)
		return
	}

	state := uuid.NewString()
	h.stateStore.put(state, time.Now().Add(h.stateTTL))

	url := h.oauthConfig.AuthCodeURL(state, oauth2.AccessTypeOffline)
	c.Redirect(http.StatusFound, url)
}

func (h *GoogleHandler) callback(c *gin.Context) {
	state := c.Query("state")
	code := c.Query("code")
	if state == "" || code == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "missing state or code", nil)
		return
	}

	if !h.stateStore.consume(state) {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid or expired state", nil)
		return
	}

	ctx := c.Request.Context()
	token, err := h.oauthConfig.Exchange(ctx, code)
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "failed to exchange code", nil)
		return
	}

	info, err := h.fetchUserInfo(ctx, token)
	if err != nil {
		respond.Error(c, http.StatusBadGateway, "auth_failed", "failed to fetch user profile", nil)
		return
	}
	if info.Sub == "" {
		respond.Error(c, http.StatusBadGateway, "auth_failed", "invalid user profile", nil)
		return
	}

	account, err := h.svc.UpsertFromGoogle(ctx, info.Sub, info.Email, info.Name, info.Picture)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to save user", nil)
		return
	}

	session, err := h.tokens.Sign(account.ID, account.Email, account.FullName)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to issue session", nil)
		return
	}
	auth.SetSessionCookie(c, session, int(h.tokens.TTL().Seconds()), h.secureCookie)

	if h.uiRedirect == "" {
		respond.JSON(c, http.StatusOK, gin.H{"user": userView(account)})
		return
	}
	c.Redirect(http.StatusFound, h.uiRedirect)
}

type googleUserInfo struct {
	Sub     string `json:"sub"`
	ID      string `json:"id"`
	Email   string `json:"email"`
	Name    string `json:"name"`
	Picture string `json:"picture"`
}

func (h *GoogleHandler) fetchUserInfo(ctx context.Context, token *oauth2.Token) (googleUserInfo, error) {
	client := h.oauthConfig.Client(ctx, token)
	resp, err := client.Get("https://www.googleapis.com/oauth2/v2/userinfo")
	if err != nil {
		return googleUserInfo{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return googleUserInfo{}, fmt.Errorf("userinfo status %d", resp.StatusCode)
	}

	var info googleUserInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return googleUserInfo{}, err
	}

	// Some responses use "id" instead of "sub".
	if info.Sub == "" {
		info.Sub = info.ID
	}
	return info, nil
}

type stateStore struct {
	items map[string]time.Time
	mu    sync.Mutex
}

func newStateStore() *stateStore {
	return &stateStore{items: make(map[string]time.Time)}
}

func (s *stateStore) put(state string, exp time.Time) {
	s.mu.Lock()
	s.items[state] = exp
	s.mu.Unlock()
}

func (s *stateStore) consume(state string) bool {
	s.mu.Lock()
	exp, ok := s.items[state]
	if ok {
		delete(s.items, state)
	}
	s.mu.Unlock()
	if !ok {
		return false
	}
	return !time.Now().After(exp)
}
