// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for the HabitLog
// model: the append-only completion history of a habit.
package repo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/habitsync/go-habit-backend/internal/domain"
)

// CreateHabitLog appends a completion event for habitID at loggedAt.
func CreateHabitLog(ctx context.Context, db *gorm.DB, habitID string, loggedAt time.Time) (*domain.HabitLog, error) {
	l := &domain.HabitLog{
		ID:        uuid.NewString(),
		HabitID:   habitID,
		LoggedAt:  loggedAt.UTC(),
		CreatedAt: time.Now().UTC(),
	}
	if err := db.WithContext(ctx).Create(l).Error; err != nil {
		return nil, err
	}
	return l, nil
}

// ListHabitLogs returns the full log history for a habit ordered
// deterministically (LoggedAt ASC, ID ASC).
func ListHabitLogs(ctx context.Context, db *gorm.DB, habitID string) ([]domain.HabitLog, error) {
	var out []domain.HabitLog
	err := db.WithContext(ctx).
		Where("habit_id = ?", habitID).
		Order("logged_at ASC, id ASC").
		Find(&out).Error
	return out, err
}

// CountLogsOnDay counts log rows for habitID whose LoggedAt falls on the UTC
// calendar day starting at day (which must be midnight UTC). The predicate is
// a day range over the whole table slice for the habit, so the answer does
// not depend on insertion order; history is not guaranteed to be sorted.
func CountLogsOnDay(ctx context.Context, db *gorm.DB, habitID string, day time.Time) (int64, error) {
	var total int64
	next := day.AddDate(0, 0, 1)
	err := db.WithContext(ctx).
		Model(&domain.HabitLog{}).
		Where("habit_id = ? AND logged_at >= ? AND logged_at < ?", habitID, day, next).
		Count(&total).Error
	return total, err
}

// CountHabitLogs returns the total number of log rows for a habit. Uses a raw
// COUNT so a missing table surfaces as an error.
func CountHabitLogs(ctx context.Context, db *gorm.DB, habitID string) (int64, error) {
	var total int64
	err := db.WithContext(ctx).
		Raw("SELECT COUNT(*) FROM habit_logs WHERE habit_id = ?", habitID).
		Scan(&total).Error
	return total, err
}
