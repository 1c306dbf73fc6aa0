package models

import "time"

// SessionNamespace prefixes every stored session key.
const SessionNamespace = "medicare-auth"

// Session is the persisted state of a logged-in user.
type Session struct {
	ID        string    `json:"id"`
	Token     string    `json:"token"`
	User      UserView  `json:"user"`
	ExpiresAt time.Time `json:"expires_at"`
}

// LoginResult is returned by a successful login.
type LoginResult struct {
	Token string   `json:"token"`
	User  UserView `json:"user"`
}
