package streak

import (
	"errors"
	"testing"
	"time"
)

// Fixed anchor week for transition tests:
// Fri 2025-01-03, Sat 04, Sun 05, Mon 06, Tue 07, Wed 08, Thu 09, Fri 10,
// Sat 11, Sun 12, Mon 13.

func logged(t time.Time) *time.Time {
	d := DateOnly(t)
	return &d
}

func TestTransition_FirstLogStartsStreak(t *testing.T) {
	for _, r := range []Rule{
		{Kind: Daily},
		{Kind: Weekly},
		{Kind: Weekdays},
		{Kind: Weekends},
		{Kind: Custom, Days: NewWeekdaySet(time.Monday)},
	} {
		next, err := Transition(State{}, r, utc(2025, time.January, 6, 10))
		if err != nil {
			t.Fatalf("%v: %v", r.Kind, err)
		}
		if next.Streak != 1 {
			t.Errorf("%v: first log streak = %d; want 1", r.Kind, next.Streak)
		}
		if next.LastLogged == nil || !next.LastLogged.Equal(utc(2025, time.January, 6, 0)) {
			t.Errorf("%v: lastLogged = %v; want Jan 6 midnight", r.Kind, next.LastLogged)
		}
	}
}

func TestTransition_Daily(t *testing.T) {
	cases := []struct {
		name  string
		state State
		today time.Time
		want  int
	}{
		{
			"consecutive days increment",
			State{Streak: 3, LastLogged: logged(utc(2025, time.January, 6, 8))},
			utc(2025, time.January, 7, 22),
			4,
		},
		{
			"one skipped day resets",
			State{Streak: 3, LastLogged: logged(utc(2025, time.January, 6, 8))},
			utc(2025, time.January, 8, 9),
			1,
		},
	}
	for _, tc := range cases {
		next, err := Transition(tc.state, Rule{Kind: Daily}, tc.today)
		if err != nil {
			t.Fatalf("%s: %v", tc.name, err)
		}
		if next.Streak != tc.want {
			t.Errorf("%s: streak = %d; want %d", tc.name, next.Streak, tc.want)
		}
	}
}

func TestTransition_Weekly(t *testing.T) {
	// Last log Wed Jan 8 (week of Jan 5–11).
	state := State{Streak: 2, LastLogged: logged(utc(2025, time.January, 8, 12))}

	// Second log within the same week continues.
	next, err := Transition(state, Rule{Kind: Weekly}, utc(2025, time.January, 10, 7))
	if err != nil {
		t.Fatalf("same week: %v", err)
	}
	if next.Streak != 3 {
		t.Errorf("same week streak = %d; want 3", next.Streak)
	}

	// Any log before the current week's Sunday start resets, even from the
	// immediately preceding week: Jan 8 < weekStart(Jan 14) = Jan 12.
	next, err = Transition(state, Rule{Kind: Weekly}, utc(2025, time.January, 14, 7))
	if err != nil {
		t.Fatalf("next week: %v", err)
	}
	if next.Streak != 1 {
		t.Errorf("next week streak = %d; want 1", next.Streak)
	}

	// Logging on the week boundary itself (Sunday Jan 12) also resets.
	next, err = Transition(state, Rule{Kind: Weekly}, utc(2025, time.January, 12, 7))
	if err != nil {
		t.Fatalf("week boundary: %v", err)
	}
	if next.Streak != 1 {
		t.Errorf("week boundary streak = %d; want 1", next.Streak)
	}

	// Skipping a whole week (first log in week of Jan 19–25) resets.
	next, err = Transition(state, Rule{Kind: Weekly}, utc(2025, time.January, 21, 7))
	if err != nil {
		t.Fatalf("skipped week: %v", err)
	}
	if next.Streak != 1 {
		t.Errorf("skipped week streak = %d; want 1", next.Streak)
	}
}

func TestTransition_Weekdays(t *testing.T) {
	rule := Rule{Kind: Weekdays}

	// Friday -> Monday: the gap days (Sat, Sun) are unscheduled, so continue.
	friState := State{Streak: 5, LastLogged: logged(utc(2025, time.January, 3, 18))}
	next, err := Transition(friState, rule, utc(2025, time.January, 6, 8))
	if err != nil {
		t.Fatalf("fri->mon: %v", err)
	}
	if next.Streak != 6 {
		t.Errorf("fri->mon streak = %d; want 6", next.Streak)
	}

	// Monday -> Wednesday with Tuesday unlogged: Tuesday was scheduled, reset.
	monState := State{Streak: 5, LastLogged: logged(utc(2025, time.January, 6, 18))}
	next, err = Transition(monState, rule, utc(2025, time.January, 8, 8))
	if err != nil {
		t.Fatalf("mon->wed: %v", err)
	}
	if next.Streak != 1 {
		t.Errorf("mon->wed streak = %d; want 1", next.Streak)
	}
}

func TestTransition_Weekends(t *testing.T) {
	rule := Rule{Kind: Weekends}

	// Sunday -> next Saturday: gap days are all weekdays, so continue.
	sunState := State{Streak: 2, LastLogged: logged(utc(2025, time.January, 5, 9))}
	next, err := Transition(sunState, rule, utc(2025, time.January, 11, 9))
	if err != nil {
		t.Fatalf("sun->sat: %v", err)
	}
	if next.Streak != 3 {
		t.Errorf("sun->sat streak = %d; want 3", next.Streak)
	}

	// Saturday unlogged, logging on Sunday after a week of silence:
	// yesterday (Saturday) was scheduled and missed, reset.
	staleState := State{Streak: 2, LastLogged: logged(utc(2025, time.January, 5, 9))}
	next, err = Transition(staleState, rule, utc(2025, time.January, 12, 9))
	if err != nil {
		t.Fatalf("missed sat: %v", err)
	}
	if next.Streak != 1 {
		t.Errorf("missed sat streak = %d; want 1", next.Streak)
	}
}

func TestTransition_Custom(t *testing.T) {
	rule := Rule{Kind: Custom, Days: NewWeekdaySet(time.Monday, time.Wednesday)}

	// Monday then Wednesday same week: Tuesday is unscheduled, continue.
	monState := State{Streak: 4, LastLogged: logged(utc(2025, time.January, 6, 20))}
	next, err := Transition(monState, rule, utc(2025, time.January, 8, 7))
	if err != nil {
		t.Fatalf("mon->wed: %v", err)
	}
	if next.Streak != 5 {
		t.Errorf("mon->wed streak = %d; want 5", next.Streak)
	}

	// Wednesday skipped, logging the next Thursday: yesterday (Wednesday)
	// was scheduled and missed, reset.
	skipState := State{Streak: 4, LastLogged: logged(utc(2025, time.January, 6, 20))}
	next, err = Transition(skipState, rule, utc(2025, time.January, 9, 7))
	if err != nil {
		t.Fatalf("skip wed: %v", err)
	}
	if next.Streak != 1 {
		t.Errorf("skip wed streak = %d; want 1", next.Streak)
	}
}

func TestTransition_UnknownKind(t *testing.T) {
	state := State{Streak: 1, LastLogged: logged(utc(2025, time.January, 6, 0))}
	_, err := Transition(state, Rule{Kind: Kind(42)}, utc(2025, time.January, 7, 0))
	if !errors.Is(err, ErrUnknownRule) {
		t.Fatalf("err = %v; want ErrUnknownRule", err)
	}
}

func TestTransition_PureAndDeterministic(t *testing.T) {
	last := logged(utc(2025, time.January, 6, 13))
	state := State{Streak: 7, LastLogged: last}
	rule := Rule{Kind: Daily}
	today := utc(2025, time.January, 7, 13)

	a, err := Transition(state, rule, today)
	if err != nil {
		t.Fatalf("first call: %v", err)
	}
	b, err := Transition(state, rule, today)
	if err != nil {
		t.Fatalf("second call: %v", err)
	}
	if a.Streak != b.Streak || !a.LastLogged.Equal(*b.LastLogged) {
		t.Fatalf("identical inputs gave different outputs: %+v vs %+v", a, b)
	}

	// Inputs must not be mutated.
	if state.Streak != 7 || !state.LastLogged.Equal(utc(2025, time.January, 6, 0)) {
		t.Fatalf("input state mutated: %+v", state)
	}
}
