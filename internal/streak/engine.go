package streak

import "time"

// State is the streak-relevant slice of a habit record.
//
// Invariants: Streak is 0 iff no log has ever been recorded, and LastLogged
// is the UTC date of the most recent accepted log (nil when there is none).
type State struct {
	Streak     int
	LastLogged *time.Time
}

// Transition computes the state after accepting a log on today's date.
//
// The caller must already have verified that no log exists for today (the
// engine assumes each accepted log lands on a fresh UTC day). The function is
// pure: it never mutates its inputs and identical inputs always yield
// identical output.
//
// The streak continues (increments) unless the rule says it was broken, in
// which case it restarts at 1. A first-ever log never breaks. LastLogged is
// always advanced to today's UTC date.
func Transition(s State, r Rule, today time.Time) (State, error) {
	broke, err := shouldBreak(s, r, today)
	if err != nil {
		return State{}, err
	}

	next := State{Streak: s.Streak + 1}
	if broke {
		next.Streak = 1
	}
	d := DateOnly(today)
	next.LastLogged = &d
	return next, nil
}

// shouldBreak decides whether the gap between the last log and today broke
// the streak under rule r.
//
//   - Daily: broken unless the last log was yesterday.
//   - Weekly: broken iff the last log predates the start of today's week,
//     i.e. a whole Sunday–Saturday week passed without a log.
//   - Weekdays / Weekends / Custom: broken iff yesterday was itself a
//     scheduled day and the last log did not land on it. A missed
//     unscheduled day (e.g. the weekend under Weekdays) never breaks.
func shouldBreak(s State, r Rule, today time.Time) (bool, error) {
	if s.LastLogged == nil {
		// First ever log starts a new streak.
		return false, nil
	}
	last := *s.LastLogged

	switch r.Kind {
	case Daily:
		return !SameDay(PreviousDay(today), last), nil
	case Weekly:
		weekStart, _ := WeekRange(today)
		return DateOnly(last).Before(weekStart), nil
	case Weekdays, Weekends, Custom:
		yesterday := PreviousDay(today)
		missed := r.scheduledDays().Has(yesterday.Weekday()) && !SameDay(yesterday, last)
		return missed, nil
	}
	return false, ErrUnknownRule
}
