package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/rabbitoyo/catalog-admin-ui/audit"
	"github.com/rabbitoyo/catalog-admin-ui/backend"
	"github.com/rabbitoyo/catalog-admin-ui/console"
	"github.com/rabbitoyo/catalog-admin-ui/session"
)

type AuthHandler struct {
	App      *console.App
	Sessions *session.Store
}

func NewAuthHandler(app *console.App, s *session.Store) *AuthHandler {
	return &AuthHandler{App: app, Sessions: s}
}

type loginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login signs in against the backend and persists the returned credential.
// Backend failures come back to the login page with the formatted message.
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	cred, err := h.App.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": backend.ErrorMessage(err)})
		return
	}

	if err := h.Sessions.SetCookie(c, cred.Token, time.Unix(cred.Expired, 0)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to persist credential"})
		return
	}

	audit.Record("login", "", req.Username)
	c.JSON(http.StatusOK, gin.H{"message": "Login successful"})
}

// Logout calls the backend best-effort and always destroys the local session.
func (h *AuthHandler) Logout(c *gin.Context) {
	token, _ := h.Sessions.Credential(c)
	h.App.Logout(c.Request.Context(), token)
	h.Sessions.ClearCookie(c)

	audit.Record("logout", "", "")
	c.JSON(http.StatusOK, gin.H{"message": "Logout successful"})
}

// Check is the startup verification: with no stored credential it answers
// unauthenticated right away, otherwise it asks the backend whether the token
// is still good and primes the product list on success. A bad token is not
// cleared here; the page sends the admin back to login.
func (h *AuthHandler) Check(c *gin.Context) {
	token, ok := h.Sessions.Credential(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"authenticated": false})
		return
	}

	if err := h.App.StartupCheck(c.Request.Context(), token); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"authenticated": false, "error": backend.ErrorMessage(err)})
		return
	}

	c.JSON(http.StatusOK, gin.H{"authenticated": true})
}
