package program

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrUnknownDay      = errors.New("unknown day")
	ErrUnknownExercise = errors.New("unknown exercise")
)

type Day string

const (
	Monday    Day = "Monday"
	Tuesday   Day = "Tuesday"
	Wednesday Day = "Wednesday"
	Thursday  Day = "Thursday"
	Friday    Day = "Friday"
	Saturday  Day = "Saturday"
	Sunday    Day = "Sunday"
)

var days = []Day{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

// Days returns the weekdays in display order.
func Days() []Day {
	out := make([]Day, len(days))
	copy(out, days)
	return out
}

// ParseDay accepts a full day name or its three letter abbreviation, in any case.
func ParseDay(s string) (Day, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, d := range days {
		full := strings.ToLower(string(d))
		if s == full || s == full[:3] {
			return d, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownDay, s)
}

// Short is the tab label, e.g. "Mon".
func (d Day) Short() string {
	if len(d) < 3 {
		return string(d)
	}
	return string(d[:3])
}

// Icon names the icon shown next to the session header.
func (d Day) Icon() string {
	switch d {
	case Monday:
		return "zap"
	case Thursday:
		return "sword"
	case Saturday:
		return "timer"
	case Sunday:
		return "sun"
	default:
		return "dumbbell"
	}
}

type ProgressionKind string

const (
	// ProgressionLoad adds load once the top of the rep range is hit at target RIR.
	ProgressionLoad ProgressionKind = "load"
	// ProgressionDouble is double progression: reps first, then the smallest load jump.
	ProgressionDouble ProgressionKind = "double"
	// ProgressionNone means hold quality, never push the number.
	ProgressionNone ProgressionKind = "none"
)

// ProgressionRule is descriptive text shown to the user. Nothing computes on it.
type ProgressionRule struct {
	Kind ProgressionKind `json:"kind"`
	Text string          `json:"text"`
}

type Exercise struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	Sets        string           `json:"sets"`
	Reps        string           `json:"reps"`
	Note        string           `json:"note"`
	Progression *ProgressionRule `json:"progression,omitempty"`
}

type DaySchedule struct {
	Title     string     `json:"title"`
	Subtitle  string     `json:"subtitle"`
	Exercises []Exercise `json:"exercises"`
}
