package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

func newAccountService(t *testing.T) *AccountService {
	t.Helper()
	s := NewAccountService(newServiceDB(t), "test-secret", time.Hour)
	s.BcryptCost = bcrypt.MinCost // keep hashing cheap in tests
	return s
}

func TestNormalizeUsername(t *testing.T) {
	cases := map[string]string{
		"  Alice ": "alice",
		"BUDDY":    "buddy",
		"ünïQUE":   "ünïque",
		"":         "",
	}
	for in, want := range cases {
		if got := NormalizeUsername(in); got != want {
			t.Errorf("NormalizeUsername(%q) = %q; want %q", in, got, want)
		}
	}
}

func TestSignup_SuccessAndNormalization(t *testing.T) {
	s := newAccountService(t)
	ctx := context.Background()

	u, token, err := s.Signup(ctx, " alice@example.com ", "  Alice ", "s3cret!", " Alice A ")
	if err != nil {
		t.Fatalf("Signup: %v", err)
	}
	if u.Username != "alice" {
		t.Errorf("username = %q; want alice", u.Username)
	}
	if u.Email != "alice@example.com" {
		t.Errorf("email = %q; want trimmed", u.Email)
	}
	if u.PasswordHash == "s3cret!" || u.PasswordHash == "" {
		t.Errorf("password stored in the clear or empty")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("s3cret!")); err != nil {
		t.Errorf("stored hash does not verify: %v", err)
	}
	if token == "" {
		t.Fatal("expected a signed token")
	}

	parsed, err := jwt.Parse(token, func(tok *jwt.Token) (any, error) {
		return []byte("test-secret"), nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	if err != nil || !parsed.Valid {
		t.Fatalf("token did not verify: %v", err)
	}
	sub, _ := parsed.Claims.GetSubject()
	if sub != u.ID {
		t.Errorf("token subject = %q; want user ID %q", sub, u.ID)
	}
}

func TestSignup_Validation(t *testing.T) {
	s := newAccountService(t)
	ctx := context.Background()

	tests := []struct {
		name                            string
		email, username, password, user string
		want                            error
	}{
		{"missing email", "", "alice", "s3cret!", "Alice", ErrInvalidSignup},
		{"malformed email", "not-an-email", "alice", "s3cret!", "Alice", ErrInvalidSignup},
		{"missing username", "a@example.com", "   ", "s3cret!", "Alice", ErrInvalidSignup},
		{"missing name", "a@example.com", "alice", "s3cret!", "", ErrInvalidSignup},
		{"short password", "a@example.com", "alice", "12345", "Alice", ErrWeakPassword},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, _, err := s.Signup(ctx, tc.email, tc.username, tc.password, tc.user); !errors.Is(err, tc.want) {
				t.Errorf("err = %v; want %v", err, tc.want)
			}
		})
	}
}

func TestSignup_DuplicateEmailAndUsername(t *testing.T) {
	s := newAccountService(t)
	ctx := context.Background()

	if _, _, err := s.Signup(ctx, "alice@example.com", "alice", "s3cret!", "Alice"); err != nil {
		t.Fatalf("first signup: %v", err)
	}

	if _, _, err := s.Signup(ctx, "alice@example.com", "other", "s3cret!", "Other"); !errors.Is(err, ErrEmailTaken) {
		t.Errorf("reused email err = %v; want ErrEmailTaken", err)
	}
	// Username collisions are caseless.
	if _, _, err := s.Signup(ctx, "new@example.com", "ALICE", "s3cret!", "Other"); !errors.Is(err, ErrUsernameTaken) {
		t.Errorf("reused username err = %v; want ErrUsernameTaken", err)
	}
}

func TestLogin(t *testing.T) {
	s := newAccountService(t)
	ctx := context.Background()

	if _, _, err := s.Signup(ctx, "alice@example.com", "alice", "s3cret!", "Alice"); err != nil {
		t.Fatalf("signup: %v", err)
	}

	u, token, err := s.Login(ctx, "alice@example.com", "s3cret!")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if u.Username != "alice" || token == "" {
		t.Fatalf("unexpected login result: %+v token=%q", u, token)
	}

	if _, _, err := s.Login(ctx, "alice@example.com", "wrong-pass"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("wrong password err = %v; want ErrInvalidCredentials", err)
	}
	if _, _, err := s.Login(ctx, "ghost@example.com", "s3cret!"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("unknown email err = %v; want ErrInvalidCredentials", err)
	}
}

func TestIsDuplicate(t *testing.T) {
	if !isDuplicate(errors.New("UNIQUE constraint failed: users.email")) {
		t.Error("sqlite message not detected")
	}
	if !isDuplicate(errors.New(`duplicate key value violates unique constraint "users_email_key"`)) {
		t.Error("postgres message not detected")
	}
	if isDuplicate(errors.New("connection refused")) {
		t.Error("false positive")
	}
}
