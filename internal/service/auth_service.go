package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"playlist_manager/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"playlist_manager/internal/models"
)

const (
	// Tokens stay valid for a week; there is no server-side revocation, so a
	// leaked token lives until natural expiry.
	tokenTTL = 7 * 24 * time.Hour

	minPasswordLen = 4
)

// Domain errors for auth flows.
var (
	ErrInvalidCredentials = errors.New("username and password (>=4 chars) required")
	ErrUserExists         = errors.New("user already exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrWrongPassword      = errors.New("wrong password")
	ErrInvalidToken       = errors.New("invalid token")
)

// AuthService handles registration, login and token issue/verify.
type AuthService struct {
	authRepo   repository.Authorization
	signingKey []byte
}

func NewAuthService(repo repository.Authorization, signingKey string) *AuthService {
	return &AuthService{authRepo: repo, signingKey: []byte(signingKey)}
}

// Claims is the decoded payload of a verified token.
type Claims struct {
	jwt.RegisteredClaims
	UserID   int    `json:"id"`
	Username string `json:"username"`
}

// SignUp validates credentials, hashes the password and creates the user,
// returning it together with a fresh token.
func (s *AuthService) SignUp(username, password string) (*models.User, string, error) {
	if strings.TrimSpace(username) == "" || len(password) < minPasswordLen {
		return nil, "", ErrInvalidCredentials
	}
	hash, err := hashPassword(password)
	if err != nil {
		return nil, "", err
	}

	id, err := s.authRepo.Create(username, hash)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, "", ErrUserExists
		}
		return nil, "", err
	}

	u := &models.User{ID: id, Username: username}
	token, err := s.issueToken(u)
	if err != nil {
		return nil, "", err
	}
	return u, token, nil
}

// SignIn validates credentials and returns the user plus a fresh token.
// "no such user" and "wrong password" stay distinguishable for user-facing
// messaging; both map to the same status class at the HTTP layer.
func (s *AuthService) SignIn(username, password string) (*models.User, string, error) {
	u, err := s.authRepo.GetByUsername(username)
	if err != nil {
		return nil, "", err
	}
	if u == nil {
		return nil, "", ErrUserNotFound
	}

	if err := verifyPassword(u.PasswordHash, password); err != nil {
		return nil, "", ErrWrongPassword
	}

	token, err := s.issueToken(u)
	if err != nil {
		return nil, "", err
	}
	return u, token, nil
}

// ParseToken verifies signature and expiry and returns the claims.
func (s *AuthService) ParseToken(accessToken string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(accessToken, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		// Ensure HMAC signing is used
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.signingKey, nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}

// CurrentUser loads the user behind a set of verified claims.
func (s *AuthService) CurrentUser(id int) (*models.User, error) {
	u, err := s.authRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrUserNotFound
	}
	return u, nil
}

// helper: hash password safely
func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// helper: verify password against hash
func verifyPassword(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}

// helper: issue a signed JWT carrying id + username. The jti uuid would key
// a denylist if revocation is ever added.
func (s *AuthService) issueToken(u *models.User) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
			ID:        uuid.NewString(),
		},
		UserID:   u.ID,
		Username: u.Username,
	})
	return token.SignedString(s.signingKey)
}

// isUniqueViolation reports whether err is the sqlite UNIQUE constraint
// error on users.username.
func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}
