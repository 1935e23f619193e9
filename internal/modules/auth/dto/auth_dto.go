package dto

type LoginInput struct {
	Email      string `json:"email" binding:"required,email"`
	Password   string `json:"password" binding:"required,min=6"`
	RememberMe bool   `json:"remember_me"`
}

// SessionUser is the user shape stored in the session and echoed back to
// the client; it never carries credentials.
type SessionUser struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

// LoginResult carries what the handler needs to set the session cookie.
type LoginResult struct {
	User      SessionUser
	SessionID string
	MaxAge    int // seconds
}
