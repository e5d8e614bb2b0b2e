package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token has expired")
)

const RoleAdmin = "admin"

// Claims represents JWT claims
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// JWTService issues and validates admin session tokens. Login is a
// capability toggle: there are no user accounts, only the admin role.
type JWTService struct {
	secretKey   []byte
	tokenExpiry time.Duration
}

// NewJWTService creates a new JWT service
func NewJWTService(secretKey string, tokenExpiry time.Duration) *JWTService {
	return &JWTService{
		secretKey:   []byte(secretKey),
		tokenExpiry: tokenExpiry,
	}
}

// GenerateAdminToken creates a new admin session token
func (s *JWTService) GenerateAdminToken() (string, time.Time, error) {
	expiresAt := time.Now().Add(s.tokenExpiry)

	claims := Claims{
		Role: RoleAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Subject:   RoleAdmin,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(s.secretKey)
	if err != nil {
		return "", time.Time{}, err
	}

	return tokenString, expiresAt, nil
}

// ValidateToken validates a session token and returns its claims
func (s *JWTService) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.secretKey, nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
