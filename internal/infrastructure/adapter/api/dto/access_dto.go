package dto

import "time"

// LoginRequest carries the shared secret
type LoginRequest struct {
	Password string `json:"password" binding:"required"`
}

// LoginResponse returns the session token, also set as a cookie
type LoginResponse struct {
	Token     string     `json:"token"`
	ExpiresAt *time.Time `json:"expiresAt,omitempty"`
}

// HealthResponse reports liveness and the connection pool
type HealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
	Driver   string `json:"driver,omitempty"`
	Pool     any    `json:"pool,omitempty"`
}
