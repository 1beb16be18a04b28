package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	domainerr "github.com/amirhossein-jamali/cheque-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/cheque-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/cheque-ledger/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/cheque-ledger/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/cheque-ledger/internal/infrastructure/adapter/api/middleware"
)

// AccessHandler handles login and logout
type AccessHandler struct {
	gate         usecase.AccessUseCase
	logger       coreport.Logger
	cookieSecure bool
}

// NewAccessHandler creates a new access handler instance
func NewAccessHandler(gate usecase.AccessUseCase, logger coreport.Logger, cookieSecure bool) *AccessHandler {
	return &AccessHandler{
		gate:         gate,
		logger:       logger,
		cookieSecure: cookieSecure,
	}
}

// Login handles POST /login
func (h *AccessHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.AbortWithError(c, fmt.Errorf("%w: %v", domainerr.ErrInvalidRequest, err))
		return
	}

	session, err := h.gate.Login(c.Request.Context(), req.Password)
	if err != nil {
		middleware.AbortWithError(c, err)
		return
	}

	resp := dto.LoginResponse{Token: session.Token}
	if !session.ExpiresAt.IsZero() {
		expiresAt := session.ExpiresAt
		resp.ExpiresAt = &expiresAt
	}
	// measured on the gate's clock; zero leaves a browser-session cookie
	maxAge := int(session.Lifetime().Seconds())

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.SessionCookie, session.Token, maxAge, "/", "", h.cookieSecure, true)
	c.JSON(http.StatusOK, resp)
}

// Logout handles POST /logout
func (h *AccessHandler) Logout(c *gin.Context) {
	if err := h.gate.Logout(c.Request.Context(), middleware.TokenFromRequest(c)); err != nil {
		middleware.AbortWithError(c, err)
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.SessionCookie, "", -1, "/", "", h.cookieSecure, true)
	c.Status(http.StatusNoContent)
}
