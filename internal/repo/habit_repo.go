// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for the Habit model.
//
// Error semantics:
//   - When a habit is not found (or not owned by the given user), functions
//     return gorm.ErrRecordNotFound (exported here as ErrNotFound).
//   - On DB errors, the raw gorm error is propagated.
//
// This repository is designed to be wrapped by a higher-level service
// (see services.HabitService) which enforces business rules such as streak
// transitions and partner resolution.
package repo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/habitsync/go-habit-backend/internal/domain"
)

// CreateHabit inserts a new habit owned by userID with zero streak and no
// logs. partnerID may be nil.
func CreateHabit(ctx context.Context, db *gorm.DB, userID, name, frequencyLabel string, frequency []string, partnerID *string) (*domain.Habit, error) {
	h := &domain.Habit{
		ID:             uuid.NewString(),
		UserID:         userID,
		Name:           name,
		FrequencyLabel: frequencyLabel,
		Frequency:      frequency,
		Streak:         0,
		PartnerID:      partnerID,
		CreatedAt:      time.Now().UTC(),
	}
	if err := db.WithContext(ctx).Create(h).Error; err != nil {
		return nil, err
	}
	return h, nil
}

// ListHabits returns all habits owned by userID, most recent first.
func ListHabits(ctx context.Context, db *gorm.DB, userID string) ([]domain.Habit, error) {
	var out []domain.Habit
	err := db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&out).Error
	return out, err
}

// GetHabit fetches a single habit by ID enforcing ownership. Returns
// ErrNotFound when the habit is missing or owned by someone else.
func GetHabit(ctx context.Context, db *gorm.DB, id, userID string) (*domain.Habit, error) {
	var h domain.Habit
	err := db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&h).Error
	if err != nil {
		return nil, err
	}
	return &h, nil
}

// GetHabitByID fetches a habit by ID without an ownership predicate. The
// service layer uses it for partner (read-only) access and applies its own
// visibility check.
func GetHabitByID(ctx context.Context, db *gorm.DB, id string) (*domain.Habit, error) {
	var h domain.Habit
	if err := db.WithContext(ctx).Where("id = ?", id).First(&h).Error; err != nil {
		return nil, err
	}
	return &h, nil
}

// UpdateHabit updates the editable fields of a habit (name and recurrence),
// enforcing ownership. Streak fields are deliberately not touched here; only
// the logging path mutates them. Returns ErrNotFound when no row matched.
func UpdateHabit(ctx context.Context, db *gorm.DB, id, userID, name, frequencyLabel string, frequency []string) error {
	res := db.WithContext(ctx).
		Model(&domain.Habit{}).
		Where("id = ? AND user_id = ?", id, userID).
		Updates(map[string]any{
			"name":            name,
			"frequency_label": frequencyLabel,
			"frequency":       frequency,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// SetHabitPartner attaches (non-nil) or detaches (nil) the accountability
// partner reference, enforcing ownership. Returns ErrNotFound when no row
// matched.
func SetHabitPartner(ctx context.Context, db *gorm.DB, id, userID string, partnerID *string) error {
	res := db.WithContext(ctx).
		Model(&domain.Habit{}).
		Where("id = ? AND user_id = ?", id, userID).
		Update("partner_id", partnerID)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// SaveStreak persists the outcome of a streak transition. Intended to run
// inside the same transaction that appends the log row.
func SaveStreak(ctx context.Context, db *gorm.DB, id string, streak int, lastLogged time.Time) error {
	res := db.WithContext(ctx).
		Model(&domain.Habit{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"streak":      streak,
			"last_logged": lastLogged,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// DeleteHabit hard-deletes a habit owned by userID. Log rows cascade via the
// habit_logs foreign key. Returns ErrNotFound when no row matched.
func DeleteHabit(ctx context.Context, db *gorm.DB, id, userID string) error {
	res := db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&domain.Habit{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// ListPartnerHabits returns all habits that name partnerID as their
// accountability partner, most recent first.
func ListPartnerHabits(ctx context.Context, db *gorm.DB, partnerID string) ([]domain.Habit, error) {
	var out []domain.Habit
	err := db.WithContext(ctx).
		Where("partner_id = ?", partnerID).
		Order("created_at desc").
		Find(&out).Error
	return out, err
}
