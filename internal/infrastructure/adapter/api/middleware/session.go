package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/amirhossein-jamali/cheque-ledger/internal/domain/entity"
	"github.com/amirhossein-jamali/cheque-ledger/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/cheque-ledger/internal/domain/usecase/access"
)

// SessionCookie is the cookie carrying the session token
const SessionCookie = "ledger_session"

// SessionKey is the gin context key of the authorized session
const SessionKey = "session"

// TokenFromRequest reads the session token from the bearer header or the cookie
func TokenFromRequest(c *gin.Context) string {
	if header := c.GetHeader("Authorization"); header != "" {
		if token, ok := strings.CutPrefix(header, "Bearer "); ok {
			return strings.TrimSpace(token)
		}
	}
	if cookie, err := c.Cookie(SessionCookie); err == nil {
		return cookie
	}
	return ""
}

// RequireSession lets the request through only with a valid session.
// The session is attached to both the gin context and the request context.
func RequireSession(gate usecase.AccessUseCase) gin.HandlerFunc {
	return func(c *gin.Context) {
		session, err := gate.Authorize(c.Request.Context(), TokenFromRequest(c))
		if err != nil {
			AbortWithError(c, err)
			return
		}

		c.Set(SessionKey, session)
		c.Request = c.Request.WithContext(access.ContextWithSession(c.Request.Context(), session))

		c.Next()
	}
}

// SessionFrom returns the session authorized for this request
func SessionFrom(c *gin.Context) (*entity.Session, bool) {
	value, ok := c.Get(SessionKey)
	if !ok {
		return nil, false
	}
	session, ok := value.(*entity.Session)
	return session, ok
}
