package http

import (
	"crypto/rand"
	"encoding/hex"
	"net/http"
	"sync"
	"time"

	"token-tool/infrastructure/configuration"
	"token-tool/infrastructure/logger"

	"github.com/gin-gonic/gin"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/facebook"
)

// Scopes a page-token workflow needs; Facebook expects the raw comma list.
var facebookScopes = []string{"pages_show_list", "pages_read_engagement", "pages_manage_metadata", "public_profile"}

type IFacebookAuthHandler interface {
	GetAuthURL(c *gin.Context)
	Callback(c *gin.Context)
}

// FacebookAuthHandler runs the login-dialog flow that produces the short-lived
// user token the exchange workflow starts from.
type FacebookAuthHandler struct {
	oauth2Config *oauth2.Config
	stateMu      sync.Mutex
	states       map[string]time.Time // state -> expiry
}

func NewFacebookAuthHandler() IFacebookAuthHandler {
	conf := configuration.C.OAuth.Facebook
	return &FacebookAuthHandler{
		oauth2Config: &oauth2.Config{
			ClientID:     conf.AppID,
			ClientSecret: conf.AppSecret,
			RedirectURL:  conf.RedirectURI,
			Scopes:       facebookScopes,
			Endpoint:     facebook.Endpoint,
		},
		states: map[string]time.Time{},
	}
}

func randomState() string {
	b := make([]byte, 16)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}

// GetAuthURL handles GET /auth/facebook (user must approve in browser)
func (h *FacebookAuthHandler) GetAuthURL(c *gin.Context) {
	if h.oauth2Config.ClientID == "" || h.oauth2Config.RedirectURL == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "facebook oauth not configured"})
		return
	}
	state := randomState()
	// store state with 10 minute expiry
	h.stateMu.Lock()
	h.states[state] = time.Now().Add(10 * time.Minute)
	h.stateMu.Unlock()

	c.JSON(http.StatusOK, gin.H{"auth_url": h.oauth2Config.AuthCodeURL(state), "state": state})
}

// Callback handles GET /auth/facebook/callback: validates state and exchanges
// the code for a short-lived user token. Feeding that token into the
// long-lived exchange stays an explicit operator step.
func (h *FacebookAuthHandler) Callback(c *gin.Context) {
	if errParam := c.Query("error"); errParam != "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": errParam, "description": c.Query("error_description")})
		return
	}
	code := c.Query("code")
	state := c.Query("state")
	if code == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing code"})
		return
	}

	h.stateMu.Lock()
	exp, ok := h.states[state]
	if ok && time.Now().After(exp) { // expired
		ok = false
	}
	if ok {
		delete(h.states, state)
	}
	h.stateMu.Unlock()
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_state"})
		return
	}

	token, err := h.oauth2Config.Exchange(c.Request.Context(), code)
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("Facebook code exchange failed")
		c.JSON(http.StatusBadGateway, gin.H{"error": "code_exchange_failed", "message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"short_token": token.AccessToken,
		"token_type":  token.TokenType,
		"expiry":      token.Expiry,
		"message":     "Short-lived user token obtained. Run the long-lived exchange next.",
	})
}
