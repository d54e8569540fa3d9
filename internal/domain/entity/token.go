package entity

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type TokenType string

const (
	TokenTypeAccess  TokenType = "access"
	TokenTypeRefresh TokenType = "refresh"
)

// Token is a stored refresh token. Only its hash is persisted.
type Token struct {
	ID        string
	UserID    string
	TokenType TokenType
	TokenHash string
	CreatedAt time.Time
	ExpiresAt time.Time
	Revoke    bool
}

// Claims is the parsed form of a signed token.
type Claims struct {
	UserID    string
	Role      UserRole
	TokenID   string
	TokenType TokenType
	jwt.RegisteredClaims
}
