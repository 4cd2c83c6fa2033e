package models

// LoginRequest is the credential pair checked against the configured
// allow-list. There is no signup: accounts exist only in configuration.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type AuthResponse struct {
	AccessToken string `json:"access_token"`
	Username    string `json:"username"`
}
