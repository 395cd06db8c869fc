package models

// User is the authenticated account as returned by /auth/me and /usuarios/perfil.
type User struct {
	ID    int64  `json:"id"`
	Name  string `json:"nome"`
	Email string `json:"email"`
	// Photo is an opaque reference (URL or data URI) to the avatar.
	Photo string `json:"foto,omitempty"`
}

// LoginRequest is the body of POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"senha"`
}

// LoginResponse carries the issued credential and the user it belongs to.
type LoginResponse struct {
	Token string `json:"token"`
	User  User   `json:"usuario"`
}

// ProfileInput is the body of PUT /usuarios/perfil. Password is sent only
// when the user asked to change it.
type ProfileInput struct {
	Name     string `json:"nome"`
	Email    string `json:"email"`
	Photo    string `json:"foto,omitempty"`
	Password string `json:"senha,omitempty"`
}
