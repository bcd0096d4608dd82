// Habit HTTP handlers.
//
// This file exposes REST endpoints for habit resources:
//   - POST   /habits               (create)
//   - GET    /habits               (list, ETag support)
//   - GET    /habits/{id}          (read, owner or partner)
//   - PUT    /habits/{id}          (edit name / recurrence)
//   - DELETE /habits/{id}          (hard delete)
//   - POST   /habits/{id}/log      (record today's completion)
//   - POST   /habits/{id}/partner  (attach accountability partner)
//   - DELETE /habits/{id}/partner  (detach partner)
//   - GET    /partner-habits       (habits watching the current user)
//
// Handlers are transport-thin: they validate input, call application
// services, and translate sentinel errors into HTTP responses.
package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/habitsync/go-habit-backend/internal/domain"
	"github.com/habitsync/go-habit-backend/internal/http/middleware"
	"github.com/habitsync/go-habit-backend/internal/repo"
	"github.com/habitsync/go-habit-backend/internal/services"
)

// HabitService defines the habit lifecycle operations consumed by HTTP
// handlers.
//
// Implementations must be safe for concurrent use and honor the provided
// context for cancellation and timeouts.
type HabitService interface {
	// Create starts a new habit for userID with a validated recurrence rule.
	Create(ctx context.Context, userID, name, frequencyLabel string, frequency []string, partnerUsername string) (*domain.Habit, error)
	// List returns all habits owned by userID.
	List(ctx context.Context, userID string) ([]domain.Habit, error)
	// Get returns one habit visible to userID (owner or partner).
	Get(ctx context.Context, userID, habitID string) (*services.HabitDetail, error)
	// Update edits a habit's name and recurrence rule.
	Update(ctx context.Context, userID, habitID, name, frequencyLabel string, frequency []string) (*domain.Habit, error)
	// Delete removes a habit and its log history.
	Delete(ctx context.Context, userID, habitID string) error
	// Log records today's completion and advances the streak.
	Log(ctx context.Context, userID, habitID string) (*services.LogResult, error)
	// InvitePartner attaches an accountability partner by username.
	InvitePartner(ctx context.Context, userID, habitID, username string) (*domain.Habit, error)
	// RemovePartner detaches the accountability partner.
	RemovePartner(ctx context.Context, userID, habitID string) (*domain.Habit, error)
	// ListPartnerHabits returns habits naming userID as partner.
	ListPartnerHabits(ctx context.Context, userID string) ([]services.HabitDetail, error)
}

// Handlers groups the HTTP endpoints for accounts and habits. It depends on
// abstract service interfaces to keep transport concerns separate from
// business logic.
type Handlers struct {
	accountSvc AccountService
	habitSvc   HabitService
}

// New constructs a Handlers instance bound to the given services.
func New(accountSvc AccountService, habitSvc HabitService) *Handlers {
	return &Handlers{accountSvc: accountSvc, habitSvc: habitSvc}
}

// userID extracts the authenticated user ID placed in the Gin context by the
// auth middleware.
func userID(c *gin.Context) string {
	return middleware.UserID(c)
}

//
// DTOs
//

// CreateHabitRequest is the JSON payload for creating a habit.
type CreateHabitRequest struct {
	// Name is the habit's display name (1–255 chars).
	Name string `json:"name" binding:"required" example:"Morning run"`
	// FrequencyLabel selects the recurrence rule:
	// daily | weekly | weekdays | weekends | custom.
	FrequencyLabel string `json:"frequency_label" binding:"required" example:"custom"`
	// Frequency lists scheduled weekday names; used when FrequencyLabel is
	// "custom".
	Frequency []string `json:"frequency" example:"Monday,Wednesday,Friday"`
	// PartnerUsername optionally attaches an accountability partner at
	// creation time.
	PartnerUsername string `json:"partner_username" example:"buddy"`
}

// UpdateHabitRequest is the JSON payload for editing a habit.
type UpdateHabitRequest struct {
	Name           string   `json:"name" binding:"required" example:"Evening run"`
	FrequencyLabel string   `json:"frequency_label" binding:"required" example:"weekdays"`
	Frequency      []string `json:"frequency"`
}

// PartnerRequest is the JSON payload for attaching a partner.
type PartnerRequest struct {
	Username string `json:"username" binding:"required" example:"buddy"`
}

// ListHabitsResponse wraps the habit collection.
type ListHabitsResponse struct {
	Habits []domain.Habit `json:"habits"`
}

// ListPartnerHabitsResponse wraps habits the current user watches as partner.
type ListPartnerHabitsResponse struct {
	Habits []services.HabitDetail `json:"habits"`
}

//
// Handlers
//

// CreateHabit godoc
// @ID          createHabit
// @Summary     Create a habit
// @Description Creates a habit with a recurrence rule and optional accountability partner.
// @Tags        Habits
// @Accept      json
// @Produce     json
// @Security    BearerAuth
//
// @Param       body  body  handlers.CreateHabitRequest  true  "Create habit payload"
//
// @Success     201  {object}  domain.Habit
// @Failure     400  {object}  handlers.ErrorResponse  "Bad request"
// @Failure     401  {object}  handlers.ErrorResponse  "Unauthorized"
// @Failure     404  {object}  handlers.ErrorResponse  "Partner not found"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /habits [post]
func (h *Handlers) CreateHabit(c *gin.Context) {
	var req CreateHabitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid JSON body")
		return
	}

	habit, err := h.habitSvc.Create(c.Request.Context(), userID(c), req.Name, req.FrequencyLabel, req.Frequency, req.PartnerUsername)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrEmptyHabitName):
			fail(c, http.StatusBadRequest, ErrCodeBadRequest, "habit name required")
		case errors.Is(err, services.ErrInvalidFrequency):
			fail(c, http.StatusBadRequest, ErrCodeInvalidFrequency, "unknown frequency label")
		case errors.Is(err, services.ErrPartnerNotFound):
			fail(c, http.StatusNotFound, ErrCodePartnerNotFound, "partner not found")
		default:
			fail(c, http.StatusInternalServerError, ErrCodeInternal, "could not create habit")
		}
		return
	}
	ok(c, http.StatusCreated, habit)
}

// ListHabits godoc
// @ID          listHabits
// @Summary     List habits
// @Description Returns all habits owned by the current user. Supports weak ETag via If-None-Match and may return 304.
// @Tags        Habits
// @Produce     json
// @Security    BearerAuth
//
// @Param       If-None-Match  header  string  false "Return 304 if ETag matches"  example(W/\"abc123\")
//
// @Success     200  {object} handlers.ListHabitsResponse
// @Header      200  {string} ETag  "Weak ETag for current result"
// @Success     304  {string} string "Not Modified"
// @Failure     401  {object} handlers.ErrorResponse "Unauthorized"
// @Failure     500  {object} handlers.ErrorResponse "Internal error"
// @Router      /habits [get]
func (h *Handlers) ListHabits(c *gin.Context) {
	ctx := c.Request.Context()
	uid := userID(c)

	// ETag pre-check (best effort). Logging touches UpdatedAt, so
	// (count, maxUpdatedAt) changes whenever the payload would.
	var db *gorm.DB
	if svc, isConcrete := h.habitSvc.(*services.HabitService); isConcrete {
		db = svc.DB
	}
	if db != nil {
		count, maxTS, err := repo.HabitsStats(ctx, db, uid)
		if err == nil {
			var ts int64
			if maxTS != nil {
				ts = maxTS.Unix()
			}
			etag := fmt.Sprintf(`W/"habits:%s:%d:%d"`, uid, count, ts)
			c.Header("ETag", etag)
			if inm := c.GetHeader("If-None-Match"); inm != "" && inm == etag {
				c.Status(http.StatusNotModified)
				return
			}
		}
	}

	habits, err := h.habitSvc.List(ctx, uid)
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeInternal, "could not list habits")
		return
	}
	ok(c, http.StatusOK, ListHabitsResponse{Habits: habits})
}

// GetHabit godoc
// @ID          getHabit
// @Summary     Get one habit
// @Description Returns a habit visible to the current user (owner or accountability partner).
// @Tags        Habits
// @Produce     json
// @Security    BearerAuth
//
// @Param       id  path  string  true  "Habit ID (UUID)"  format(uuid)
//
// @Success     200  {object} services.HabitDetail
// @Failure     400  {object} handlers.ErrorResponse "Bad request"
// @Failure     401  {object} handlers.ErrorResponse "Unauthorized"
// @Failure     404  {object} handlers.ErrorResponse "Habit not found"
// @Failure     500  {object} handlers.ErrorResponse "Internal error"
// @Router      /habits/{id} [get]
func (h *Handlers) GetHabit(c *gin.Context) {
	habitID, okID := habitIDParam(c)
	if !okID {
		return
	}

	detail, err := h.habitSvc.Get(c.Request.Context(), userID(c), habitID)
	if err != nil {
		if errors.Is(err, services.ErrHabitNotFound) {
			fail(c, http.StatusNotFound, ErrCodeNotFound, "habit not found")
			return
		}
		fail(c, http.StatusInternalServerError, ErrCodeInternal, "could not load habit")
		return
	}
	ok(c, http.StatusOK, detail)
}

// UpdateHabit godoc
// @ID          updateHabit
// @Summary     Edit a habit
// @Description Updates a habit's name and recurrence rule. Streak state is untouched.
// @Tags        Habits
// @Accept      json
// @Produce     json
// @Security    BearerAuth
//
// @Param       id    path  string  true  "Habit ID (UUID)"  format(uuid)
// @Param       body  body  handlers.UpdateHabitRequest  true  "Update payload"
//
// @Success     200  {object} domain.Habit
// @Failure     400  {object} handlers.ErrorResponse "Bad request"
// @Failure     401  {object} handlers.ErrorResponse "Unauthorized"
// @Failure     404  {object} handlers.ErrorResponse "Habit not found"
// @Failure     500  {object} handlers.ErrorResponse "Internal error"
// @Router      /habits/{id} [put]
func (h *Handlers) UpdateHabit(c *gin.Context) {
	habitID, okID := habitIDParam(c)
	if !okID {
		return
	}

	var req UpdateHabitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid JSON body")
		return
	}

	habit, err := h.habitSvc.Update(c.Request.Context(), userID(c), habitID, req.Name, req.FrequencyLabel, req.Frequency)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrEmptyHabitName):
			fail(c, http.StatusBadRequest, ErrCodeBadRequest, "habit name required")
		case errors.Is(err, services.ErrInvalidFrequency):
			fail(c, http.StatusBadRequest, ErrCodeInvalidFrequency, "unknown frequency label")
		case errors.Is(err, services.ErrHabitNotFound):
			fail(c, http.StatusNotFound, ErrCodeNotFound, "habit not found")
		default:
			fail(c, http.StatusInternalServerError, ErrCodeInternal, "could not update habit")
		}
		return
	}
	ok(c, http.StatusOK, habit)
}

// DeleteHabit godoc
// @ID          deleteHabit
// @Summary     Delete a habit
// @Description Permanently deletes a habit and its completion history.
// @Tags        Habits
// @Security    BearerAuth
//
// @Param       id  path  string  true  "Habit ID (UUID)"  format(uuid)
//
// @Success     204  {string} string "No Content"
// @Failure     400  {object} handlers.ErrorResponse "Bad request"
// @Failure     401  {object} handlers.ErrorResponse "Unauthorized"
// @Failure     404  {object} handlers.ErrorResponse "Habit not found"
// @Failure     500  {object} handlers.ErrorResponse "Internal error"
// @Router      /habits/{id} [delete]
func (h *Handlers) DeleteHabit(c *gin.Context) {
	habitID, okID := habitIDParam(c)
	if !okID {
		return
	}

	if err := h.habitSvc.Delete(c.Request.Context(), userID(c), habitID); err != nil {
		if errors.Is(err, services.ErrHabitNotFound) {
			fail(c, http.StatusNotFound, ErrCodeNotFound, "habit not found")
			return
		}
		fail(c, http.StatusInternalServerError, ErrCodeInternal, "could not delete habit")
		return
	}
	noContent(c)
}

// LogHabit godoc
// @ID          logHabit
// @Summary     Log today's completion
// @Description Records a completion for today's UTC date and returns the new streak with the full history. At most one log per day.
// @Tags        Habits
// @Produce     json
// @Security    BearerAuth
//
// @Param       id  path  string  true  "Habit ID (UUID)"  format(uuid)
//
// @Success     200  {object} services.LogResult
// @Failure     400  {object} handlers.ErrorResponse "Bad request"
// @Failure     401  {object} handlers.ErrorResponse "Unauthorized"
// @Failure     404  {object} handlers.ErrorResponse "Habit not found"
// @Failure     409  {object} handlers.ErrorResponse "Already logged today"
// @Failure     500  {object} handlers.ErrorResponse "Corrupt recurrence rule or internal error"
// @Router      /habits/{id}/log [post]
func (h *Handlers) LogHabit(c *gin.Context) {
	habitID, okID := habitIDParam(c)
	if !okID {
		return
	}

	result, err := h.habitSvc.Log(c.Request.Context(), userID(c), habitID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrHabitNotFound):
			middleware.ObserveHabitLog("error")
			fail(c, http.StatusNotFound, ErrCodeNotFound, "habit not found")
		case errors.Is(err, services.ErrAlreadyLogged):
			middleware.ObserveHabitLog("duplicate")
			fail(c, http.StatusConflict, ErrCodeAlreadyLogged, "habit already logged today")
		case errors.Is(err, services.ErrInvalidFrequency):
			// Stored rule is unrecognized: surface as a server fault rather
			// than guessing a schedule.
			middleware.ObserveHabitLog("error")
			fail(c, http.StatusInternalServerError, ErrCodeInvalidFrequency, "habit has an invalid recurrence rule")
		default:
			middleware.ObserveHabitLog("error")
			fail(c, http.StatusInternalServerError, ErrCodeInternal, "could not log habit")
		}
		return
	}
	middleware.ObserveHabitLog("logged")
	ok(c, http.StatusOK, result)
}

// InvitePartner godoc
// @ID          invitePartner
// @Summary     Attach an accountability partner
// @Description Attaches a registered user (looked up by username, case-insensitive) as the habit's partner.
// @Tags        Partners
// @Accept      json
// @Produce     json
// @Security    BearerAuth
//
// @Param       id    path  string  true  "Habit ID (UUID)"  format(uuid)
// @Param       body  body  handlers.PartnerRequest  true  "Partner payload"
//
// @Success     200  {object} domain.Habit
// @Failure     400  {object} handlers.ErrorResponse "Bad request"
// @Failure     401  {object} handlers.ErrorResponse "Unauthorized"
// @Failure     404  {object} handlers.ErrorResponse "Habit or partner not found"
// @Failure     500  {object} handlers.ErrorResponse "Internal error"
// @Router      /habits/{id}/partner [post]
func (h *Handlers) InvitePartner(c *gin.Context) {
	habitID, okID := habitIDParam(c)
	if !okID {
		return
	}

	var req PartnerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "partner username required")
		return
	}

	habit, err := h.habitSvc.InvitePartner(c.Request.Context(), userID(c), habitID, req.Username)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrHabitNotFound):
			fail(c, http.StatusNotFound, ErrCodeNotFound, "habit not found")
		case errors.Is(err, services.ErrPartnerNotFound):
			fail(c, http.StatusNotFound, ErrCodePartnerNotFound, "partner not found")
		default:
			fail(c, http.StatusInternalServerError, ErrCodeInternal, "could not attach partner")
		}
		return
	}
	ok(c, http.StatusOK, habit)
}

// RemovePartner godoc
// @ID          removePartner
// @Summary     Detach the accountability partner
// @Description Removes the habit's accountability partner, if any.
// @Tags        Partners
// @Produce     json
// @Security    BearerAuth
//
// @Param       id  path  string  true  "Habit ID (UUID)"  format(uuid)
//
// @Success     200  {object} domain.Habit
// @Failure     400  {object} handlers.ErrorResponse "Bad request"
// @Failure     401  {object} handlers.ErrorResponse "Unauthorized"
// @Failure     404  {object} handlers.ErrorResponse "Habit not found"
// @Failure     500  {object} handlers.ErrorResponse "Internal error"
// @Router      /habits/{id}/partner [delete]
func (h *Handlers) RemovePartner(c *gin.Context) {
	habitID, okID := habitIDParam(c)
	if !okID {
		return
	}

	habit, err := h.habitSvc.RemovePartner(c.Request.Context(), userID(c), habitID)
	if err != nil {
		if errors.Is(err, services.ErrHabitNotFound) {
			fail(c, http.StatusNotFound, ErrCodeNotFound, "habit not found")
			return
		}
		fail(c, http.StatusInternalServerError, ErrCodeInternal, "could not detach partner")
		return
	}
	ok(c, http.StatusOK, habit)
}

// ListPartnerHabits godoc
// @ID          listPartnerHabits
// @Summary     List watched habits
// @Description Returns the habits that name the current user as accountability partner, each with the owner's username.
// @Tags        Partners
// @Produce     json
// @Security    BearerAuth
//
// @Success     200  {object} handlers.ListPartnerHabitsResponse
// @Failure     401  {object} handlers.ErrorResponse "Unauthorized"
// @Failure     500  {object} handlers.ErrorResponse "Internal error"
// @Router      /partner-habits [get]
func (h *Handlers) ListPartnerHabits(c *gin.Context) {
	habits, err := h.habitSvc.ListPartnerHabits(c.Request.Context(), userID(c))
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeInternal, "could not list partner habits")
		return
	}
	ok(c, http.StatusOK, ListPartnerHabitsResponse{Habits: habits})
}

// habitIDParam validates the :id path parameter as a UUID, failing the
// request with 400 when it is not.
func habitIDParam(c *gin.Context) (string, bool) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "habit id must be a UUID")
		return "", false
	}
	return id, true
}
