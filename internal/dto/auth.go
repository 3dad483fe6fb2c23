package dto

// LoginRequest carries the shared admin password.
type LoginRequest struct {
	Password string `json:"password" form:"password" binding:"required"`
}

// LoginResult returns the bearer token gating mutation endpoints.
type LoginResult struct {
	Token     string `json:"token"`
	ExpiresAt int64  `json:"expiresAt"`
}
