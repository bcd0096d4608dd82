package streak

import (
	"errors"
	"fmt"
	"time"
)

// ErrUnknownRule indicates a recurrence label (or custom weekday name) stored
// on a habit record that this engine does not recognize. It can only arise
// when deserializing legacy or corrupt data; every rule constructed through
// ParseRule is valid by definition.
var ErrUnknownRule = errors.New("unknown recurrence rule")

// Kind enumerates the closed set of recurrence rule variants.
type Kind int

const (
	// Daily schedules every calendar day.
	Daily Kind = iota
	// Weekly expects one occurrence per Sunday–Saturday week.
	Weekly
	// Weekdays schedules Monday through Friday.
	Weekdays
	// Weekends schedules Saturday and Sunday.
	Weekends
	// Custom schedules an explicit set of weekdays.
	Custom
)

// Canonical labels as persisted on habit records.
const (
	LabelDaily    = "daily"
	LabelWeekly   = "weekly"
	LabelWeekdays = "weekdays"
	LabelWeekends = "weekends"
	LabelCustom   = "custom"
)

// String returns the persisted label for k.
func (k Kind) String() string {
	switch k {
	case Daily:
		return LabelDaily
	case Weekly:
		return LabelWeekly
	case Weekdays:
		return LabelWeekdays
	case Weekends:
		return LabelWeekends
	case Custom:
		return LabelCustom
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// WeekdaySet is a set of weekdays, one bit per time.Weekday.
type WeekdaySet uint8

// NewWeekdaySet builds a set from the given weekdays.
func NewWeekdaySet(days ...time.Weekday) WeekdaySet {
	var s WeekdaySet
	for _, d := range days {
		s |= 1 << uint(d)
	}
	return s
}

// Has reports whether d is in the set.
func (s WeekdaySet) Has(d time.Weekday) bool {
	return s&(1<<uint(d)) != 0
}

// Names returns the weekday names in the set in Sunday-first order.
func (s WeekdaySet) Names() []string {
	var out []string
	for d := time.Sunday; d <= time.Saturday; d++ {
		if s.Has(d) {
			out = append(out, d.String())
		}
	}
	return out
}

var (
	workweek    = NewWeekdaySet(time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday)
	weekend     = NewWeekdaySet(time.Saturday, time.Sunday)
	everyDaySet = workweek | weekend
)

// Rule is a recurrence rule: a Kind plus, for Custom rules, the explicit
// weekday set. The zero value is the Daily rule.
type Rule struct {
	Kind Kind
	// Days is consulted only when Kind is Custom.
	Days WeekdaySet
}

// ParseWeekday maps an English weekday name ("Monday".."Sunday",
// case-sensitive, as produced by time.Weekday.String) to its weekday.
func ParseWeekday(name string) (time.Weekday, error) {
	for d := time.Sunday; d <= time.Saturday; d++ {
		if d.String() == name {
			return d, nil
		}
	}
	return 0, fmt.Errorf("%w: weekday %q", ErrUnknownRule, name)
}

// ParseRule reconstructs a Rule from its persisted label and, for custom
// rules, the stored weekday names. Unrecognized labels or weekday names
// return an error wrapping ErrUnknownRule; stored data is never silently
// coerced to a guessed rule.
func ParseRule(label string, days []string) (Rule, error) {
	switch label {
	case LabelDaily:
		return Rule{Kind: Daily}, nil
	case LabelWeekly:
		return Rule{Kind: Weekly}, nil
	case LabelWeekdays:
		return Rule{Kind: Weekdays}, nil
	case LabelWeekends:
		return Rule{Kind: Weekends}, nil
	case LabelCustom:
		var set WeekdaySet
		for _, name := range days {
			d, err := ParseWeekday(name)
			if err != nil {
				return Rule{}, err
			}
			set |= NewWeekdaySet(d)
		}
		return Rule{Kind: Custom, Days: set}, nil
	}
	return Rule{}, fmt.Errorf("%w: %q", ErrUnknownRule, label)
}

// scheduledDays returns the weekday set the rule treats as "must log" days.
// Weekly and Daily cover the whole week; Weekly is additionally evaluated at
// week granularity by the transition logic, not per day.
func (r Rule) scheduledDays() WeekdaySet {
	switch r.Kind {
	case Weekdays:
		return workweek
	case Weekends:
		return weekend
	case Custom:
		return r.Days
	default:
		return everyDaySet
	}
}

// Scheduled reports whether t counts as a scheduled day under the rule.
// For Weekly every day qualifies, since the single weekly occurrence may be
// logged on any day of the week.
func (r Rule) Scheduled(t time.Time) bool {
	return r.scheduledDays().Has(DateOnly(t).Weekday())
}
