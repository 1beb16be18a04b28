package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainerr "github.com/amirhossein-jamali/cheque-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/cheque-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/cheque-ledger/internal/infrastructure/adapter/api/dto"
)

// ErrorHandler middleware recovers from panics and returns appropriate error responses
func ErrorHandler(logger coreport.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				logger.Error("Panic recovered in API request", map[string]any{
					"error":      err,
					"path":       c.Request.URL.Path,
					"method":     c.Request.Method,
					"client_ip":  c.ClientIP(),
					"request_id": c.GetString(RequestIDKey),
					"user_agent": c.Request.UserAgent(),
				})

				c.AbortWithStatusJSON(http.StatusInternalServerError, dto.ErrorResponse{
					Code:    domainerr.ErrorCode(domainerr.ErrInternalServer),
					Message: "Internal server error",
				})
			}
		}()

		c.Next()
	}
}

// StatusFor maps a domain error to its HTTP status
func StatusFor(err error) int {
	switch {
	case domainerr.IsValidationError(err):
		return http.StatusBadRequest
	case domainerr.IsUnauthorizedError(err):
		return http.StatusUnauthorized
	case domainerr.IsNotFoundError(err):
		return http.StatusNotFound
	case errors.Is(err, domainerr.ErrTooManyRequests):
		return http.StatusTooManyRequests
	case domainerr.IsStorageError(err):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// AbortWithError writes the JSON error body for err and stops the chain.
// Internal failures are reported without their details.
func AbortWithError(c *gin.Context, err error) {
	status := StatusFor(err)
	_ = c.Error(err)

	resp := dto.ErrorResponse{
		Code:    domainerr.ErrorCode(err),
		Message: err.Error(),
	}

	var validationErr *domainerr.ValidationError
	if errors.As(err, &validationErr) {
		resp.Field = validationErr.Field
	}

	switch status {
	case http.StatusServiceUnavailable:
		resp.Message = "Storage unavailable, please try again"
	case http.StatusInternalServerError:
		resp.Message = "Internal server error"
	}

	c.AbortWithStatusJSON(status, resp)
}
