package auth

import (
	"context"
	"fmt"
	"strings"
	"time"

	"commute-notice/internal/config"
	"commute-notice/internal/models"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// ServiceInterface defines the login business logic. There is no signup,
// activation or password reset: accounts are the configured allow-list.
type ServiceInterface interface {
	Login(ctx context.Context, req models.LoginRequest) (*models.AuthResponse, error)
}

type Service struct {
	users     []config.UserCredential
	jwtSecret string
}

func NewService(users []config.UserCredential, jwtSecret string) *Service {
	return &Service{users: users, jwtSecret: jwtSecret}
}

// Login matches the credential pair against the allow-list and issues a
// session token. An empty allow-list is a configuration fault, reported
// as such rather than as a bad password.
func (s *Service) Login(ctx context.Context, req models.LoginRequest) (*models.AuthResponse, error) {
	if len(s.users) == 0 {
		return nil, models.ErrCredentialsUnavailable
	}

	for _, u := range s.users {
		if u.Username != req.Username {
			continue
		}
		if !passwordMatches(u.Password, req.Password) {
			break
		}
		return s.generateAuthResponse(u.Username)
	}
	return nil, models.ErrInvalidCredentials
}

// passwordMatches compares against either a bcrypt hash or a plain
// entry. Entries starting with "$2" are treated as hashes.
func passwordMatches(stored, given string) bool {
	if strings.HasPrefix(stored, "$2") {
		return bcrypt.CompareHashAndPassword([]byte(stored), []byte(given)) == nil
	}
	return stored == given
}

func (s *Service) generateAuthResponse(username string) (*models.AuthResponse, error) {
	claims := &models.JwtCustomClaims{
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
		},
	}

	accessToken := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := accessToken.SignedString([]byte(s.jwtSecret))
	if err != nil {
		return nil, fmt.Errorf("failed to sign access token: %w", err)
	}

	return &models.AuthResponse{
		AccessToken: signed,
		Username:    username,
	}, nil
}
