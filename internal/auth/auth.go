// server/internal/auth/auth.go
package auth

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"dc-directory-api-server/config"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

const RoleAdmin = "admin"

var ErrInvalidToken = errors.New("invalid or expired token")

// JWTClaims defines the payload for the JWT.
type JWTClaims struct {
	Email string `json:"email"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

// Hashing
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(bytes), err
}

func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

// Service is the admin gate: one configured account, HS256 session tokens.
type Service struct {
	adminEmail   string
	passwordHash string
	secret       []byte
	ttl          time.Duration
	now          func() time.Time
}

func NewService(a config.AuthConfig, j config.JWTConfig) (*Service, error) {
	if j.Secret == "" {
		return nil, errors.New("jwt secret is not configured")
	}
	ttl := j.Expiration
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &Service{
		adminEmail:   strings.TrimSpace(a.AdminEmail),
		passwordHash: a.PasswordHash,
		secret:       []byte(j.Secret),
		ttl:          ttl,
		now:          time.Now,
	}, nil
}

// Authenticate reports whether email and password belong to the admin.
// An unset password hash never matches.
func (s *Service) Authenticate(email, password string) bool {
	if s.passwordHash == "" || !strings.EqualFold(strings.TrimSpace(email), s.adminEmail) {
		return false
	}
	return CheckPasswordHash(password, s.passwordHash)
}

// GenerateJWT issues a token and returns it with its expiry.
func (s *Service) GenerateJWT(email, role string) (string, time.Time, error) {
	now := s.now()
	expiresAt := now.Add(s.ttl)
	claims := &JWTClaims{
		Email: email,
		Role:  role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   email,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign token: %w", err)
	}
	return signed, expiresAt, nil
}

func (s *Service) ParseJWT(tokenString string) (*JWTClaims, error) {
	claims := &JWTClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(s.now))
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
