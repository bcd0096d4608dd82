// Auth HTTP handlers.
//
// This file exposes the public account endpoints:
//   - POST /auth/signup  (register, returns user + token)
//   - POST /auth/login   (authenticate, returns user + token)
//
// Handlers are transport-thin: they validate input, call the account service,
// and translate sentinel errors into HTTP responses.
package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/habitsync/go-habit-backend/internal/domain"
	"github.com/habitsync/go-habit-backend/internal/services"
)

// AccountService defines the account operations consumed by HTTP handlers.
//
// Implementations must be safe for concurrent use and honor the provided
// context for cancellation and timeouts.
type AccountService interface {
	// Signup registers a new account and returns the user plus a signed token.
	Signup(ctx context.Context, email, username, password, name string) (*domain.User, string, error)
	// Login authenticates by email/password and returns the user plus a token.
	Login(ctx context.Context, email, password string) (*domain.User, string, error)
}

// SignupRequest is the JSON payload for registering an account.
type SignupRequest struct {
	Email    string `json:"email" binding:"required" example:"alice@example.com"`
	Username string `json:"username" binding:"required" example:"alice"`
	Password string `json:"password" binding:"required" example:"s3cret!"`
	Name     string `json:"name" binding:"required" example:"Alice"`
}

// LoginRequest is the JSON payload for authenticating.
type LoginRequest struct {
	Email    string `json:"email" binding:"required" example:"alice@example.com"`
	Password string `json:"password" binding:"required" example:"s3cret!"`
}

// AuthResponse carries the authenticated user and a bearer token.
type AuthResponse struct {
	Token string      `json:"token"`
	User  domain.User `json:"user"`
}

// Signup godoc
// @ID          signup
// @Summary     Register a new account
// @Description Creates an account and returns the user with a signed bearer token.
// @Tags        Auth
// @Accept      json
// @Produce     json
//
// @Param       body  body  handlers.SignupRequest  true  "Signup payload"
//
// @Success     201  {object}  handlers.AuthResponse
// @Failure     400  {object}  handlers.ErrorResponse  "Invalid payload"
// @Failure     409  {object}  handlers.ErrorResponse  "Email or username taken"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /auth/signup [post]
func (h *Handlers) Signup(c *gin.Context) {
	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid JSON body")
		return
	}

	u, token, err := h.accountSvc.Signup(c.Request.Context(), req.Email, req.Username, req.Password, req.Name)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrEmailTaken):
			fail(c, http.StatusConflict, ErrCodeEmailTaken, "email already registered")
		case errors.Is(err, services.ErrUsernameTaken):
			fail(c, http.StatusConflict, ErrCodeUsernameTaken, "username already taken")
		case errors.Is(err, services.ErrWeakPassword), errors.Is(err, services.ErrInvalidSignup):
			fail(c, http.StatusBadRequest, ErrCodeBadRequest, err.Error())
		default:
			fail(c, http.StatusInternalServerError, ErrCodeInternal, "signup failed")
		}
		return
	}
	ok(c, http.StatusCreated, AuthResponse{Token: token, User: *u})
}

// Login godoc
// @ID          login
// @Summary     Log in
// @Description Authenticates by email and password and returns a bearer token.
// @Tags        Auth
// @Accept      json
// @Produce     json
//
// @Param       body  body  handlers.LoginRequest  true  "Login payload"
//
// @Success     200  {object}  handlers.AuthResponse
// @Failure     400  {object}  handlers.ErrorResponse  "Invalid payload"
// @Failure     401  {object}  handlers.ErrorResponse  "Invalid credentials"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /auth/login [post]
func (h *Handlers) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid JSON body")
		return
	}

	u, token, err := h.accountSvc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			fail(c, http.StatusUnauthorized, ErrCodeUnauthorized, "invalid credentials")
			return
		}
		fail(c, http.StatusInternalServerError, ErrCodeInternal, "login failed")
		return
	}
	ok(c, http.StatusOK, AuthResponse{Token: token, User: *u})
}
