package dto

// LoginRequest is the JSON body for POST /auth/login.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// RegisterRequest is the JSON body for POST /auth/register.
type RegisterRequest struct {
	Username string `json:"username" binding:"required,min=1,max=120"`
	Password string `json:"password" binding:"required,min=1"`
}

// RegisterResponse is returned after successful registration.
type RegisterResponse struct {
	UserID string `json:"userId"`
}

// TokenResponse is returned after successful login.
type TokenResponse struct {
	Token string `json:"token"`
}
