package program

import (
	"fmt"
	"net/url"
	"strings"
)

const formGuideBaseURL = "https://www.youtube.com/results"

// url.QueryEscape output turned into encodeURIComponent form
var uriComponentReplacer = strings.NewReplacer(
	"+", "%20",
	"%21", "!",
	"%27", "'",
	"%28", "(",
	"%29", ")",
	"%2A", "*",
)

// Schedule returns the fixed session for the given day.
func Schedule(day Day) (DaySchedule, error) {
	s, ok := schedule[day]
	if !ok {
		return DaySchedule{}, fmt.Errorf("%w: %q", ErrUnknownDay, day)
	}
	return DaySchedule{
		Title:     s.Title,
		Subtitle:  s.Subtitle,
		Exercises: cloneExercises(s.Exercises),
	}, nil
}

func MorningRitual() []Exercise {
	return cloneExercises(morningRitual)
}

// Displayed is everything shown for a day: morning ritual first, then the session.
func Displayed(day Day) ([]Exercise, error) {
	s, err := Schedule(day)
	if err != nil {
		return nil, err
	}
	return append(MorningRitual(), s.Exercises...), nil
}

// Lookup finds an exercise anywhere in the program.
func Lookup(id string) (Exercise, error) {
	for _, ex := range morningRitual {
		if ex.ID == id {
			return cloneExercise(ex), nil
		}
	}
	for _, d := range days {
		for _, ex := range schedule[d].Exercises {
			if ex.ID == id {
				return cloneExercise(ex), nil
			}
		}
	}
	return Exercise{}, fmt.Errorf("%w: %q", ErrUnknownExercise, id)
}

// Validate checks that every day has a session and that exercise ids are unique program-wide.
func Validate() error {
	seen := make(map[string]string)
	check := func(where string, exs []Exercise) error {
		for _, ex := range exs {
			if ex.ID == "" {
				return fmt.Errorf("%s: exercise %q has empty id", where, ex.Name)
			}
			if prev, ok := seen[ex.ID]; ok {
				return fmt.Errorf("%s: duplicate exercise id %q (already used in %s)", where, ex.ID, prev)
			}
			seen[ex.ID] = where
		}
		return nil
	}

	if err := check("morning ritual", morningRitual); err != nil {
		return err
	}
	for _, d := range days {
		s, ok := schedule[d]
		if !ok {
			return fmt.Errorf("%w: no session for %s", ErrUnknownDay, d)
		}
		if len(s.Exercises) == 0 {
			return fmt.Errorf("session %s has no exercises", d)
		}
		if err := check(string(d), s.Exercises); err != nil {
			return err
		}
	}
	return nil
}

// FormGuideURL is the video search for proper form of the given exercise.
func FormGuideURL(ex Exercise) string {
	query := uriComponentReplacer.Replace(url.QueryEscape(ex.Name + " proper form"))
	return formGuideBaseURL + "?search_query=" + query
}

// cloneExercises copies the progression rules too, the package level ones are shared.
func cloneExercises(exs []Exercise) []Exercise {
	out := make([]Exercise, len(exs))
	for i, ex := range exs {
		out[i] = cloneExercise(ex)
	}
	return out
}

func cloneExercise(ex Exercise) Exercise {
	if ex.Progression != nil {
		rule := *ex.Progression
		ex.Progression = &rule
	}
	return ex
}
