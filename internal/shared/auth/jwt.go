package auth

import (
	"fmt"
	"time"

	"chargestation/internal/shared/config"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is the per-request identity carried in the token.
type Claims struct {
	Username string `json:"username"`
	Role     string `json:"role"` // driver | admin | other
	jwt.RegisteredClaims
}

// JWTService issues and validates bearer tokens.
type JWTService struct {
	secret        []byte
	expiryMinutes int
}

func NewJWTService(cfg config.JWTConfig) *JWTService {
	return &JWTService{
		secret:        []byte(cfg.Secret),
		expiryMinutes: cfg.ExpiryMinutes,
	}
}

// GenerateToken signs a new token for the given user.
func (s *JWTService) GenerateToken(username, role string) (string, error) {
	now := time.Now()
	expiresAt := now.Add(time.Duration(s.expiryMinutes) * time.Minute)

	claims := &Claims{
		Username: username,
		Role:     role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    "charging-station",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// ValidateToken parses the token and returns its claims.
func (s *JWTService) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("parse token: %w", err)
	}

	if !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	claims, ok := token.Claims.(*Claims)
	if !ok {
		return nil, fmt.Errorf("invalid claims type")
	}

	return claims, nil
}
