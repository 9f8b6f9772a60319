package tracker

import (
	"errors"
	"fmt"
	"sync"

	"github.com/2beens/sorcerer/internal/program"
)

var ErrExerciseNotDisplayed = errors.New("exercise not in the displayed set")

type View string

const (
	ViewWorkout View = "workout"
	ViewRules   View = "rules"
)

type Progress struct {
	Done     int     `json:"done"`
	Total    int     `json:"total"`
	Percent  float64 `json:"percent"`
	AllClear bool    `json:"allClear"`
}

type ExerciseState struct {
	program.Exercise
	Completed bool `json:"completed"`
}

type Snapshot struct {
	Day       program.Day     `json:"day"`
	View      View            `json:"view"`
	Title     string          `json:"title"`
	Subtitle  string          `json:"subtitle"`
	Morning   []ExerciseState `json:"morning"`
	Session   []ExerciseState `json:"session"`
	Progress  Progress        `json:"progress"`
	Completed map[string]bool `json:"completed"`
}

// Tracker holds the completion map and view state for the running process.
// Nothing is persisted; a restart starts from an empty map.
type Tracker struct {
	mu        sync.RWMutex
	day       program.Day
	view      View
	completed map[string]bool
}

func New() *Tracker {
	return &Tracker{
		day:       program.Monday,
		view:      ViewWorkout,
		completed: make(map[string]bool),
	}
}

// Toggled is the outcome of one toggle, with progress of the active day
// right before and right after it.
type Toggled struct {
	Day       program.Day `json:"day"`
	Completed bool        `json:"completed"`
	Before    Progress    `json:"before"`
	After     Progress    `json:"after"`
}

// BecameAllClear is true only for the toggle that completed the day.
func (t Toggled) BecameAllClear() bool {
	return !t.Before.AllClear && t.After.AllClear
}

// Toggle flips the completion flag of an exercise in the displayed set
// and returns its new value.
func (t *Tracker) Toggle(id string) (bool, error) {
	toggled, err := t.ToggleWithProgress(id)
	if err != nil {
		return false, err
	}
	return toggled.Completed, nil
}

// ToggleWithProgress is Toggle that also reports the progress around the flip,
// both read under the same lock as the flip itself.
func (t *Tracker) ToggleWithProgress(id string) (Toggled, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	displayed, err := program.Displayed(t.day)
	if err != nil {
		return Toggled{}, err
	}
	if !containsID(displayed, id) {
		return Toggled{}, fmt.Errorf("%w: %q on %s", ErrExerciseNotDisplayed, id, t.day)
	}

	before := progressOf(displayed, t.completed)
	t.completed[id] = !t.completed[id]

	return Toggled{
		Day:       t.day,
		Completed: t.completed[id],
		Before:    before,
		After:     progressOf(displayed, t.completed),
	}, nil
}

// SelectDay switches the active day. Completion entries of other days are kept.
func (t *Tracker) SelectDay(day program.Day) error {
	if _, err := program.Schedule(day); err != nil {
		return err
	}
	t.mu.Lock()
	t.day = day
	t.mu.Unlock()
	return nil
}

func (t *Tracker) Day() program.Day {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.day
}

func (t *Tracker) SetView(v View) error {
	if v != ViewWorkout && v != ViewRules {
		return fmt.Errorf("unknown view %q", v)
	}
	t.mu.Lock()
	t.view = v
	t.mu.Unlock()
	return nil
}

func (t *Tracker) ToggleView() View {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.view == ViewRules {
		t.view = ViewWorkout
	} else {
		t.view = ViewRules
	}
	return t.view
}

func (t *Tracker) View() View {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.view
}

func (t *Tracker) IsCompleted(id string) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.completed[id]
}

// Reset clears every completion entry.
func (t *Tracker) Reset() {
	t.mu.Lock()
	t.completed = make(map[string]bool)
	t.mu.Unlock()
}

func (t *Tracker) Progress() Progress {
	t.mu.RLock()
	defer t.mu.RUnlock()

	displayed, err := program.Displayed(t.day)
	if err != nil {
		return Progress{}
	}
	return progressOf(displayed, t.completed)
}

func (t *Tracker) Snapshot() Snapshot {
	t.mu.RLock()
	defer t.mu.RUnlock()

	// day is always a valid schedule key, SelectDay guards it
	session, _ := program.Schedule(t.day)
	morning := program.MorningRitual()

	completed := make(map[string]bool, len(t.completed))
	for id, done := range t.completed {
		if done {
			completed[id] = true
		}
	}

	return Snapshot{
		Day:       t.day,
		View:      t.view,
		Title:     session.Title,
		Subtitle:  session.Subtitle,
		Morning:   withState(morning, t.completed),
		Session:   withState(session.Exercises, t.completed),
		Progress:  progressOf(append(morning, session.Exercises...), t.completed),
		Completed: completed,
	}
}

func progressOf(exs []program.Exercise, completed map[string]bool) Progress {
	p := Progress{Total: len(exs)}
	for _, ex := range exs {
		if completed[ex.ID] {
			p.Done++
		}
	}
	if p.Total > 0 {
		p.Percent = float64(p.Done) / float64(p.Total) * 100
	}
	p.AllClear = p.Total > 0 && p.Done == p.Total
	return p
}

func withState(exs []program.Exercise, completed map[string]bool) []ExerciseState {
	out := make([]ExerciseState, 0, len(exs))
	for _, ex := range exs {
		out = append(out, ExerciseState{Exercise: ex, Completed: completed[ex.ID]})
	}
	return out
}

func containsID(exs []program.Exercise, id string) bool {
	for _, ex := range exs {
		if ex.ID == id {
			return true
		}
	}
	return false
}
