package models

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type User struct {
	ID           int64     `db:"id"`
	Email        string    `db:"email"`
	FullName     string    `db:"full_name"`
	PasswordHash string    `db:"password_hash"`
	CreatedAt    time.Time `db:"created_at"`
}

// UserRecord is the signed-in user as kept in the session under the "user" key.
type UserRecord struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
}

// Claims defines the structure of the JWT claims.
type Claims struct {
	Email    string `json:"email"`
	FullName string `json:"fullName"`
	jwt.RegisteredClaims
}
