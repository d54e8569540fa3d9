package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const issuer = "nutricoach"

const (
	tokenTypeAccess  = "access"
	tokenTypeRefresh = "refresh"
)

var ErrWrongTokenType = errors.New("unexpected token type")

// CustomClaims are the claims signed into every token.
type CustomClaims struct {
	Role      string `json:"role,omitempty"`
	TokenType string `json:"typ"`
	jwt.RegisteredClaims
}

// JWTManager signs and verifies HS256 tokens.
type JWTManager struct {
	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
}

func NewJWTManager(secret string, accessTTL, refreshTTL time.Duration) *JWTManager {
	return &JWTManager{secret: []byte(secret), accessTTL: accessTTL, refreshTTL: refreshTTL}
}

func (m *JWTManager) GenerateAccessToken(userID, role string) (string, error) {
	return m.sign(CustomClaims{
		Role:             role,
		TokenType:        tokenTypeAccess,
		RegisteredClaims: m.registered(userID, "", m.accessTTL),
	})
}

// GenerateRefreshToken embeds tokenID as jti so the stored record can be found.
func (m *JWTManager) GenerateRefreshToken(tokenID, userID string) (string, error) {
	return m.sign(CustomClaims{
		TokenType:        tokenTypeRefresh,
		RegisteredClaims: m.registered(userID, tokenID, m.refreshTTL),
	})
}

func (m *JWTManager) VerifyToken(tokenStr string) (*CustomClaims, error) {
	return m.verify(tokenStr, tokenTypeAccess)
}

func (m *JWTManager) VerifyRefreshToken(tokenStr string) (*CustomClaims, error) {
	return m.verify(tokenStr, tokenTypeRefresh)
}

func (m *JWTManager) registered(subject, id string, ttl time.Duration) jwt.RegisteredClaims {
	now := time.Now()
	return jwt.RegisteredClaims{
		Issuer:    issuer,
		Subject:   subject,
		ID:        id,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}
}

func (m *JWTManager) sign(claims CustomClaims) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

func (m *JWTManager) verify(tokenStr, expectedType string) (*CustomClaims, error) {
	claims := &CustomClaims{}
	_, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		return m.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(issuer),
	)
	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}
	if claims.TokenType != expectedType {
		return nil, ErrWrongTokenType
	}
	return claims, nil
}
