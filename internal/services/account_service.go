// Package services – AccountService
//
// This file implements the AccountService, which owns signup, login, and user
// lookup. It normalizes identifiers (emails trimmed, usernames trimmed and
// case-folded), hashes passwords with bcrypt, and issues HS256 JWTs whose
// subject is the user ID. Service-level errors (ErrEmailTaken,
// ErrUsernameTaken, ErrInvalidCredentials, ...) are returned for predictable
// cases so handlers can map them to HTTP results consistently.
package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/text/cases"
	"gorm.io/gorm"

	"github.com/habitsync/go-habit-backend/internal/domain"
	"github.com/habitsync/go-habit-backend/internal/repo"
)

// MinPasswordLen is the minimum accepted password length at signup.
const MinPasswordLen = 6

// usernameFolder performs Unicode case folding so that username comparisons
// are caseless beyond plain ASCII.
var usernameFolder = cases.Fold()

// NormalizeUsername trims and case-folds a username for storage and lookup.
// Partner resolution and signup both go through this, so a habit's partner
// reference matches regardless of the casing the inviter typed.
func NormalizeUsername(s string) string {
	return usernameFolder.String(strings.TrimSpace(s))
}

// AccountService implements the use-cases around user accounts.
type AccountService struct {
	// DB is the database handle used for all account operations.
	DB *gorm.DB
	// JWTSecret signs and verifies issued tokens (HS256).
	JWTSecret []byte
	// TokenTTL is the validity window of issued tokens.
	TokenTTL time.Duration
	// BcryptCost overrides the hash cost; zero means bcrypt.DefaultCost.
	BcryptCost int
}

// NewAccountService constructs an AccountService with a 1 hour token TTL
// unless ttl is positive.
func NewAccountService(db *gorm.DB, secret string, ttl time.Duration) *AccountService {
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &AccountService{DB: db, JWTSecret: []byte(secret), TokenTTL: ttl}
}

// Signup registers a new account and returns the user plus a signed token.
//
// Validation:
//   - email, username, and name must be non-empty (email must contain '@');
//     otherwise ErrInvalidSignup.
//   - password must be at least MinPasswordLen runes; otherwise ErrWeakPassword.
//   - email and username must be unused; otherwise ErrEmailTaken /
//     ErrUsernameTaken. The schema's unique indexes back the pre-checks, so a
//     race on the insert still fails and is mapped to the same errors.
func (s *AccountService) Signup(ctx context.Context, email, username, password, name string) (*domain.User, string, error) {
	email = strings.TrimSpace(email)
	username = NormalizeUsername(username)
	name = strings.TrimSpace(name)

	if email == "" || !strings.Contains(email, "@") || username == "" || name == "" {
		return nil, "", ErrInvalidSignup
	}
	if len([]rune(password)) < MinPasswordLen {
		return nil, "", ErrWeakPassword
	}

	if _, err := repo.GetUserByEmail(ctx, s.DB, email); err == nil {
		return nil, "", ErrEmailTaken
	} else if !errors.Is(err, repo.ErrNotFound) {
		return nil, "", err
	}
	if _, err := repo.GetUserByUsername(ctx, s.DB, username); err == nil {
		return nil, "", ErrUsernameTaken
	} else if !errors.Is(err, repo.ErrNotFound) {
		return nil, "", err
	}

	cost := s.BcryptCost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return nil, "", err
	}

	u, err := repo.CreateUser(ctx, s.DB, email, username, name, string(hash))
	if err != nil {
		if isDuplicate(err) {
			// Lost a race with a concurrent signup; report the email since the
			// pre-checks already cleared both fields moments ago.
			return nil, "", ErrEmailTaken
		}
		return nil, "", err
	}

	token, err := s.IssueToken(u.ID)
	if err != nil {
		return nil, "", err
	}
	return u, token, nil
}

// Login authenticates by email and password and returns the user plus a
// signed token. Unknown emails and wrong passwords both yield
// ErrInvalidCredentials.
func (s *AccountService) Login(ctx context.Context, email, password string) (*domain.User, string, error) {
	email = strings.TrimSpace(email)

	u, err := repo.GetUserByEmail(ctx, s.DB, email)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.IssueToken(u.ID)
	if err != nil {
		return nil, "", err
	}
	return u, token, nil
}

// IssueToken signs an HS256 JWT whose subject is userID, valid for TokenTTL.
func (s *AccountService) IssueToken(userID string) (string, error) {
	now := time.Now().UTC()
	claims := jwt.RegisteredClaims{
		Subject:   userID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.TokenTTL)),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.JWTSecret)
}

// isDuplicate attempts to detect unique-constraint violations across drivers
// that may not map to gorm.ErrDuplicatedKey.
func isDuplicate(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	// SQLite typically: "UNIQUE constraint failed"
	// Postgres typically: "duplicate key value violates unique constraint"
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "duplicate key")
}
