package dto

// RegisterRequest payload for new accounts. A role field in the body is
// deliberately absent from the struct: whatever the client sends, the created
// account is a student.
type RegisterRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginRequest payload for login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse carries the issued token and the caller's role.
type LoginResponse struct {
	Token string `json:"token"`
	Role  string `json:"role"`
}

// MessageResponse is the generic success body.
type MessageResponse struct {
	Message string `json:"message"`
}
