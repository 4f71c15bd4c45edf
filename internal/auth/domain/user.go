package domain

import "time"

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// TokenTypeRefresh is the only persisted token type today.
const TokenTypeRefresh = "refresh"

type User struct {
	ID              string    `json:"id" bson:"_id"`
	Email           string    `json:"email" bson:"email"`
	Username        string    `json:"username" bson:"username"`
	Password        string    `json:"-" bson:"password"` // Never return password in JSON
	FirstName       string    `json:"first_name" bson:"first_name"`
	LastName        string    `json:"last_name,omitempty" bson:"last_name,omitempty"`
	Role            string    `json:"role" bson:"role"`
	IsEmailVerified bool      `json:"is_email_verified" bson:"is_email_verified"`
	CreatedAt       time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt       time.Time `json:"updated_at" bson:"updated_at"`
}

// RefreshToken is a persisted grant of renewable access. Records are immutable
// once issued: renewal mints a new access token, it never touches the record.
type RefreshToken struct {
	Token     string    `json:"token" bson:"token"`
	TokenType string    `json:"token_type" bson:"token_type"`
	UserID    string    `json:"user_id" bson:"user"`
	ExpiresAt time.Time `json:"expires_at" bson:"expires_at"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time `json:"updated_at" bson:"updated_at"`
}
