package program

import (
	"fmt"
	"strconv"
	"strings"
)

type Rules struct {
	LockedFor12Weeks []string `json:"lockedFor12Weeks"`
	MainLifts        []string `json:"mainLifts"`
	Progression      []string `json:"progression"`
	PowerRules       []string `json:"powerRules"`
	CardioRules      []string `json:"cardioRules"`
	PilonidalNotes   []string `json:"pilonidalNotes"`
	DeloadRules      []string `json:"deloadRules"`
}

type Meta struct {
	DurationWeeks int   `json:"durationWeeks"`
	DeloadWeeks   []int `json:"deloadWeeks"`
	Rules         Rules `json:"rules"`
}

type Warmups struct {
	Sprint  []string `json:"sprintWarmup"`
	Lifting []string `json:"liftingWarmup"`
}

// RulesSection is one card of the rules panel.
type RulesSection struct {
	Key   string   `json:"key"`
	Title string   `json:"title"`
	Icon  string   `json:"icon"`
	Text  string   `json:"text,omitempty"`
	Items []string `json:"items,omitempty"`
}

var meta = Meta{
	DurationWeeks: 12,
	DeloadWeeks:   []int{7},
	Rules: Rules{
		LockedFor12Weeks: []string{
			"Squat: High-Bar Back Squat (fixed).",
			"Press: Standing Overhead Press (fixed).",
			"Chest Mass: Weighted Dips (fixed).",
			"Primary Row: Chest-Supported Row on Tuesday (fixed).",
			"Specialization Row: Machine Row on Thursday (fixed).",
			"Posterior Chain: Romanian Deadlift + Hip Thrust (fixed).",
			"Lateral/Adductor: Lateral Lunge (fixed).",
			"Core: Hanging Knee Raises (Tuesday + Friday) + Pallof (Friday) (fixed).",
			"Power: Acceleration sprints (fixed). If pilonidal irritation risk, substitute sled pushes with same slot (safety override only).",
		},
		MainLifts: []string{
			"Main lifts use honest RIR. NO grinding. If form breaks or rep speed dies, stop and repeat load next week.",
			"Squat: Top 3–5 @ RIR 2 + 2 back-off sets of 5 @ ~90% of top set.",
			"RDL: Top 6–8 @ RIR 2 + 2 back-off sets of 6–8 @ ~90% of top set.",
		},
		Progression: []string{
			"Main lifts: add load ONLY when you hit the top of the rep range at the target RIR with clean form.",
			"Accessories: double progression (hit top reps on all sets clean → then increase next time, smallest jump).",
			"Rest times: main lifts 2–4 min, accessories 60–90 sec, carries as needed for perfect posture.",
		},
		PowerRules: []string{
			"Sprints: full rest 2–3 min. TIME 2 reps weekly (same distance) and record BEST.",
			"STOP power work if time drops ~2% or mechanics degrade. No fatigue reps.",
			"Broad jumps: full reset. Record best jump. No sloppy landings.",
		},
		CardioRules: []string{
			"Zone 1–2 = easy-moderate. You can talk in short sentences.",
			"Standing only: incline walk/ruck. Avoid long sweaty sitting after training.",
		},
		PilonidalNotes: []string{
			"If irritation occurs: swap sprints → sled pushes; keep cardio standing; shower + dry well; change into dry clothes.",
			"If pain/swelling/drainage/fever: stop high intensity and seek medical evaluation.",
		},
		DeloadRules: []string{
			"Week 7: same exercises, cut total sets ~40–50%. Keep intensity moderate (RIR ~4).",
			"Deload power: reduce sprint/jump volume ~30–40% but keep quality crisp.",
		},
	},
}

var warmups = Warmups{
	Sprint: []string{
		"3–5 min easy walk",
		"Leg swings + hip openers + ankle bounces",
		"2×20m build-ups @ ~60–70%",
		"1×20m build-up @ ~85–90%",
		"Then start working sprints (full rest)",
	},
	Lifting: []string{
		"2–4 ramp sets before the first main lift",
		"Warm-up sets stay fast and clean; never fatigue in warm-up",
	},
}

var recoveryProtocol = []string{"SHOWER + DRY", "COOL DRY CLOTHES"}

// ProgramMeta returns a copy of the program meta, safe to hand out.
func ProgramMeta() Meta {
	m := meta
	m.DeloadWeeks = append([]int(nil), meta.DeloadWeeks...)
	r := meta.Rules
	m.Rules = Rules{
		LockedFor12Weeks: cloneStrings(r.LockedFor12Weeks),
		MainLifts:        cloneStrings(r.MainLifts),
		Progression:      cloneStrings(r.Progression),
		PowerRules:       cloneStrings(r.PowerRules),
		CardioRules:      cloneStrings(r.CardioRules),
		PilonidalNotes:   cloneStrings(r.PilonidalNotes),
		DeloadRules:      cloneStrings(r.DeloadRules),
	}
	return m
}

func WarmupBlocks() Warmups {
	return Warmups{
		Sprint:  cloneStrings(warmups.Sprint),
		Lifting: cloneStrings(warmups.Lifting),
	}
}

func RecoveryProtocol() []string {
	return cloneStrings(recoveryProtocol)
}

// IsDeloadWeek reports whether the given 1-based program week is a deload week.
func IsDeloadWeek(week int) bool {
	for _, w := range meta.DeloadWeeks {
		if w == week {
			return true
		}
	}
	return false
}

// RulesPanel returns the rules view cards in display order.
func RulesPanel() []RulesSection {
	r := meta.Rules

	deloadWeeks := make([]string, 0, len(meta.DeloadWeeks))
	for _, w := range meta.DeloadWeeks {
		deloadWeeks = append(deloadWeeks, strconv.Itoa(w))
	}

	return []RulesSection{
		{
			Key:   "standing",
			Title: "STANDING MANDATE",
			Icon:  "footprints",
			Text:  "Prefer standing work. Avoid long sitting after training. Cardio stays standing (incline walk/ruck).",
			Items: cloneStrings(r.CardioRules),
		},
		{
			Key:   "hygiene",
			Title: "HYGIENE (PILONIDAL-SAFE)",
			Icon:  "droplets",
			Text:  "Shower after sweaty sessions, dry well, don’t stay in sweaty clothes, avoid long sitting blocks.",
			Items: cloneStrings(r.PilonidalNotes),
		},
		{
			Key:   "progression",
			Title: "Progression",
			Icon:  "trending-up",
			Items: append(cloneStrings(r.MainLifts), r.Progression...),
		},
		{
			Key:   "power",
			Title: "Power Quality",
			Icon:  "zap",
			Items: cloneStrings(r.PowerRules),
		},
		{
			Key:   "warmup",
			Title: "Warm-up",
			Icon:  "flame",
			Items: append(cloneStrings(warmups.Sprint), warmups.Lifting...),
		},
		{
			Key:   "deload",
			Title: "Deload",
			Icon:  "timer",
			Text:  fmt.Sprintf("Week %s: cut sets ~40–50%%. Same exercises. Keep quality high.", strings.Join(deloadWeeks, ", ")),
			Items: cloneStrings(r.DeloadRules),
		},
		{
			Key:   "locked",
			Title: fmt.Sprintf("Locked (%d weeks)", meta.DurationWeeks),
			Icon:  "alert-triangle",
			Items: cloneStrings(r.LockedFor12Weeks),
		},
	}
}

func cloneStrings(s []string) []string {
	return append([]string(nil), s...)
}
