// Package domain defines the persistence models for users, habits, and habit
// logs. These types are mapped with GORM and form the core data layer of the
// habit tracking application.
package domain

import (
	"time"

	"gorm.io/gorm"

	"github.com/habitsync/go-habit-backend/internal/streak"
)

// User represents a registered account. Usernames are stored lowercased and
// trimmed so that partner lookups are case-insensitive.
//
// Users are soft-deleted: other users' habits may still reference them as
// accountability partners, so the row is retained for history.
type User struct {
	ID           string         `json:"id"         gorm:"type:char(36);primaryKey"`
	Email        string         `json:"email"      gorm:"type:varchar(255);not null;uniqueIndex:ux_users_email"`
	Username     string         `json:"username"   gorm:"type:varchar(64);not null;uniqueIndex:ux_users_username"`
	Name         string         `json:"name"       gorm:"type:varchar(255);not null"`
	PasswordHash string         `json:"-"          gorm:"type:varchar(255);not null"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `json:"-"          gorm:"index"`
}

// TableName returns the database table name for User.
func (User) TableName() string { return "users" }

// Habit represents a tracked habit owned by exactly one user.
//
// Fields:
//   - FrequencyLabel: persisted recurrence label (daily, weekly, weekdays,
//     weekends, custom), parsed back through streak.ParseRule.
//   - Frequency: explicit weekday names, consulted only for custom habits.
//   - Streak / LastLogged: current streak state, mutated only by the logging
//     operation.
//   - PartnerID: optional accountability partner. A weak reference: the
//     partner user lives and dies independently of the habit.
//
// Habits are hard-deleted (no DeletedAt column); logs cascade with them.
type Habit struct {
	ID             string     `json:"id"              gorm:"type:char(36);primaryKey"`
	UserID         string     `json:"user_id"         gorm:"type:char(36);not null;index:idx_user_habits"`
	Name           string     `json:"name"            gorm:"type:varchar(255);not null"`
	FrequencyLabel string     `json:"frequency_label" gorm:"type:varchar(16);not null;default:'custom'"`
	Frequency      []string   `json:"frequency"       gorm:"serializer:json"`
	Streak         int        `json:"streak"          gorm:"not null;default:0"`
	LastLogged     *time.Time `json:"last_logged,omitempty"`
	PartnerID      *string    `json:"partner_id,omitempty" gorm:"type:char(36);index:idx_partner_habits"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

// TableName returns the database table name for Habit.
func (Habit) TableName() string { return "habits" }

// Rule parses the persisted recurrence fields into a streak.Rule. An error
// here means the stored label or weekday set is corrupt (legacy data or a
// missed migration), never a normal runtime condition.
func (h *Habit) Rule() (streak.Rule, error) {
	return streak.ParseRule(h.FrequencyLabel, h.Frequency)
}

// StreakState returns the habit's current streak state for the engine.
func (h *Habit) StreakState() streak.State {
	return streak.State{Streak: h.Streak, LastLogged: h.LastLogged}
}

// HabitLog is one completion event: a single UTC timestamp per accepted log.
// At most one row exists per habit per UTC calendar day, enforced by the
// logging service's same-day check.
type HabitLog struct {
	ID        string    `json:"id"        gorm:"type:char(36);primaryKey"`
	HabitID   string    `json:"habit_id"  gorm:"type:char(36);not null;index:idx_habit_logs,priority:1"`
	LoggedAt  time.Time `json:"logged_at" gorm:"not null;index:idx_habit_logs,priority:2"`
	CreatedAt time.Time `json:"created_at"`

	// Habit is the parent record. Logs are cascade-deleted when the habit
	// is removed.
	Habit Habit `json:"-" gorm:"foreignKey:HabitID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

// TableName returns the database table name for HabitLog.
func (HabitLog) TableName() string { return "habit_logs" }
