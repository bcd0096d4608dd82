// Package services – HabitService
//
// This file implements HabitService, the application-level component that owns
// the habit lifecycle: creation (with optional partner resolution), listing,
// reads with partner visibility, edits, hard deletion, partner attach/detach,
// and the completion-logging orchestration that drives streak transitions.
//
// The streak math itself lives in the pure internal/streak package; this
// service supplies the pieces around it: ownership checks, the per-day
// idempotency scan, and the transactional append-log-then-save-streak write.
//
// Observability: the logging path is OpenTelemetry-instrumented; spans carry
// habit/user identifiers.
package services

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"gorm.io/gorm"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/habitsync/go-habit-backend/internal/domain"
	"github.com/habitsync/go-habit-backend/internal/repo"
	"github.com/habitsync/go-habit-backend/internal/streak"
)

// HabitService coordinates habit persistence and streak updates.
type HabitService struct {
	// DB is the GORM handle used for persistence.
	DB *gorm.DB

	// Now supplies the current instant for the logging path. Injected so the
	// transition logic is testable without touching the system clock; always
	// converted to UTC before use.
	Now func() time.Time

	// NameMaxLen caps stored habit names by rune length.
	NameMaxLen int
}

// NewHabitService constructs a HabitService with sane defaults.
func NewHabitService(db *gorm.DB) *HabitService {
	return &HabitService{
		DB:         db,
		Now:        time.Now,
		NameMaxLen: 255,
	}
}

// HabitDetail is a habit enriched with resolved usernames for API responses:
// the partner's username on owner-facing reads, the owner's username on
// partner-facing reads.
type HabitDetail struct {
	domain.Habit
	PartnerUsername string `json:"partner_username,omitempty"`
	OwnerUsername   string `json:"owner_username,omitempty"`
}

// LogResult is the outcome of a successful completion log: the new streak
// value and the full updated history.
type LogResult struct {
	Streak  int               `json:"streak"`
	History []domain.HabitLog `json:"history"`
}

// Create inserts a new habit owned by userID. The recurrence rule is
// validated up front (ErrInvalidFrequency) and the optional partner username
// must resolve to a registered user (ErrPartnerNotFound). New habits start
// with zero streak and empty history.
func (s *HabitService) Create(ctx context.Context, userID, name, frequencyLabel string, frequency []string, partnerUsername string) (*domain.Habit, error) {
	name = normalizeName(name)
	if name == "" {
		return nil, ErrEmptyHabitName
	}
	name = s.clip(name)

	if _, err := streak.ParseRule(frequencyLabel, frequency); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFrequency, err)
	}

	var partnerID *string
	if strings.TrimSpace(partnerUsername) != "" {
		partner, err := repo.GetUserByUsername(ctx, s.DB, NormalizeUsername(partnerUsername))
		if err != nil {
			if errors.Is(err, repo.ErrNotFound) {
				return nil, ErrPartnerNotFound
			}
			return nil, err
		}
		partnerID = &partner.ID
	}

	return repo.CreateHabit(ctx, s.DB, userID, name, frequencyLabel, frequency, partnerID)
}

// List returns all habits owned by userID.
func (s *HabitService) List(ctx context.Context, userID string) ([]domain.Habit, error) {
	return repo.ListHabits(ctx, s.DB, userID)
}

// Get fetches one habit visible to userID: its owner or its attached partner.
// Anyone else gets ErrHabitNotFound; existence is not leaked. The result is
// enriched with the partner's username when one is attached.
func (s *HabitService) Get(ctx context.Context, userID, habitID string) (*HabitDetail, error) {
	h, err := repo.GetHabitByID(ctx, s.DB, habitID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrHabitNotFound
		}
		return nil, err
	}
	if h.UserID != userID && (h.PartnerID == nil || *h.PartnerID != userID) {
		return nil, ErrHabitNotFound
	}

	detail := &HabitDetail{Habit: *h}
	if h.PartnerID != nil {
		if partner, err := repo.GetUserByID(ctx, s.DB, *h.PartnerID); err == nil {
			detail.PartnerUsername = partner.Username
		}
	}
	return detail, nil
}

// Update edits a habit's name and recurrence rule, enforcing ownership.
// Streak state is untouched: only the logging path mutates it.
func (s *HabitService) Update(ctx context.Context, userID, habitID, name, frequencyLabel string, frequency []string) (*domain.Habit, error) {
	name = normalizeName(name)
	if name == "" {
		return nil, ErrEmptyHabitName
	}
	if _, err := streak.ParseRule(frequencyLabel, frequency); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFrequency, err)
	}

	if err := repo.UpdateHabit(ctx, s.DB, habitID, userID, s.clip(name), frequencyLabel, frequency); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrHabitNotFound
		}
		return nil, err
	}
	return repo.GetHabit(ctx, s.DB, habitID, userID)
}

// Delete hard-deletes a habit owned by userID; its logs cascade with it.
func (s *HabitService) Delete(ctx context.Context, userID, habitID string) error {
	if err := repo.DeleteHabit(ctx, s.DB, habitID, userID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return ErrHabitNotFound
		}
		return err
	}
	return nil
}

// Log records a completion for today's UTC date and advances the streak.
//
// Semantics:
//   - The habit must exist and belong to userID; otherwise ErrHabitNotFound.
//   - At most one log per UTC calendar day: a same-day duplicate yields
//     ErrAlreadyLogged with no mutation. The check scans the whole history by
//     day range, not just the newest entry, since insertion order is not
//     guaranteed.
//   - An unrecognized stored rule yields ErrInvalidFrequency and nothing is
//     persisted.
//
// Concurrency & atomicity:
//   - The ownership read, the same-day scan, the log append, and the streak
//     save all run inside one transaction, so the read-modify-write is
//     serialized per habit. Two concurrent logs for the same habit cannot
//     both pass the same-day scan.
func (s *HabitService) Log(ctx context.Context, userID, habitID string) (*LogResult, error) {
	tr := otel.Tracer("services/HabitService")
	ctx, span := tr.Start(ctx, "Log",
		trace.WithAttributes(
			attribute.String("habit.id", habitID),
			attribute.String("user.id", userID),
		),
	)
	defer span.End()

	today := s.Now().UTC()

	var result *LogResult
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		h, err := repo.GetHabit(ctx, tx, habitID, userID)
		if err != nil {
			if errors.Is(err, repo.ErrNotFound) {
				return ErrHabitNotFound
			}
			return err
		}

		// Same-day dedup first: a duplicate is reported as such even when
		// the stored rule no longer parses.
		dupes, err := repo.CountLogsOnDay(ctx, tx, habitID, streak.DateOnly(today))
		if err != nil {
			return err
		}
		if dupes > 0 {
			return ErrAlreadyLogged
		}

		rule, err := h.Rule()
		if err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidFrequency, err)
		}

		next, err := streak.Transition(h.StreakState(), rule, today)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidFrequency, err)
		}

		if _, err := repo.CreateHabitLog(ctx, tx, habitID, today); err != nil {
			return err
		}
		if err := repo.SaveStreak(ctx, tx, habitID, next.Streak, *next.LastLogged); err != nil {
			return err
		}

		history, err := repo.ListHabitLogs(ctx, tx, habitID)
		if err != nil {
			return err
		}
		result = &LogResult{Streak: next.Streak, History: history}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// InvitePartner attaches an accountability partner (looked up by username,
// case-insensitive) to a habit owned by userID and returns the updated habit.
func (s *HabitService) InvitePartner(ctx context.Context, userID, habitID, username string) (*domain.Habit, error) {
	partner, err := repo.GetUserByUsername(ctx, s.DB, NormalizeUsername(username))
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrPartnerNotFound
		}
		return nil, err
	}

	if err := repo.SetHabitPartner(ctx, s.DB, habitID, userID, &partner.ID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrHabitNotFound
		}
		return nil, err
	}
	return repo.GetHabit(ctx, s.DB, habitID, userID)
}

// RemovePartner detaches the accountability partner from a habit owned by
// userID and returns the updated habit.
func (s *HabitService) RemovePartner(ctx context.Context, userID, habitID string) (*domain.Habit, error) {
	if err := repo.SetHabitPartner(ctx, s.DB, habitID, userID, nil); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrHabitNotFound
		}
		return nil, err
	}
	return repo.GetHabit(ctx, s.DB, habitID, userID)
}

// ListPartnerHabits returns the habits that name userID as their
// accountability partner, each enriched with the owner's username.
func (s *HabitService) ListPartnerHabits(ctx context.Context, userID string) ([]HabitDetail, error) {
	habits, err := repo.ListPartnerHabits(ctx, s.DB, userID)
	if err != nil {
		return nil, err
	}

	out := make([]HabitDetail, 0, len(habits))
	for _, h := range habits {
		d := HabitDetail{Habit: h}
		if owner, err := repo.GetUserByID(ctx, s.DB, h.UserID); err == nil {
			d.OwnerUsername = owner.Username
		}
		out = append(out, d)
	}
	return out, nil
}

// clip truncates a habit name to the configured maximum rune length.
func (s *HabitService) clip(name string) string {
	if s.NameMaxLen > 0 && len([]rune(name)) > s.NameMaxLen {
		return string([]rune(name)[:s.NameMaxLen])
	}
	return name
}

// normalizeName trims whitespace and collapses internal runs to one space.
func normalizeName(s string) string {
	return whitespaceRE.ReplaceAllString(strings.TrimSpace(s), " ")
}

// whitespaceRE collapses consecutive whitespace to a single space.
var whitespaceRE = regexp.MustCompile(`\s+`)
