package dto

// Data Transfer Objects for authentication requests and responses

// RegisterRequest: payload for user registration
type RegisterRequest struct {
	Name     string  `json:"name" binding:"required,min=2,max=100"`
	Email    string  `json:"email" binding:"required,email"`
	Password string  `json:"password" binding:"required,min=8"`
	Avatar   *string `json:"avatar,omitempty"`
	Cover    *string `json:"cover,omitempty"`
}

// RegisterResponse: the verification code travels by email, never in here
type RegisterResponse struct {
	Message string `json:"message"`
}

// LoginRequest: payload for user login
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse: token plus the profile the dashboard shows in its header
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// VerifyEmailRequest: payload for the post-registration confirmation step
type VerifyEmailRequest struct {
	Email string `json:"email" binding:"required,email"`
	Code  string `json:"code" binding:"required,len=6"`
}

type VerifyEmailResponse struct {
	Message string `json:"message"`
}
