package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/orderdesk/internal/server/http/dto"
	"github.com/polkiloo/orderdesk/internal/server/http/middleware"
)

// AuthHandler processes operator login and logout.
type AuthHandler struct {
	facade       AuthFacade
	secureCookie bool
}

// NewAuthHandler creates AuthHandler instance.
func NewAuthHandler(facade AuthFacade, secureCookie bool) *AuthHandler {
	return &AuthHandler{facade: facade, secureCookie: secureCookie}
}

// Login handles POST /api/admin/login.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, "malformed login payload")
		return
	}

	session, err := h.facade.Login(c.Request.Context(), req.Password)
	if err != nil {
		writeError(c, err)
		return
	}

	maxAge := int(time.Until(session.ExpiresAt).Seconds())
	middleware.SetAuthCookie(c, session.Token, maxAge, h.secureCookie)
	c.JSON(http.StatusOK, dto.LoginResponse{Token: session.Token, ExpiresAt: session.ExpiresAt})
}

// Logout handles POST /api/admin/logout.
func (h *AuthHandler) Logout(c *gin.Context) {
	middleware.ClearAuthCookie(c, h.secureCookie)
	c.Status(http.StatusNoContent)
}
