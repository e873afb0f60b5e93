package models

// User is the persisted account record. The stored JSON key for the hash is
// "password" to stay compatible with existing users.json files; the hash
// never leaves the server.
type User struct {
	ID           int64  `json:"id"`
	Email        string `json:"email"`
	PasswordHash string `json:"password"`
}

// PublicUser is the client-facing view of a User.
type PublicUser struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
}

// Public strips the password hash for API responses.
func (u User) Public() PublicUser {
	return PublicUser{ID: u.ID, Email: u.Email}
}

// Credentials is the request body for signup and login.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse is returned by signup and login.
type AuthResponse struct {
	Token string     `json:"token"`
	User  PublicUser `json:"user"`
}
