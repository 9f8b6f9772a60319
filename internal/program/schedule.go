package program

// 12-week locked protocol. Deload in week 7: same exercises, sets cut ~40-50%.

var (
	mainLiftProgression = &ProgressionRule{
		Kind: ProgressionLoad,
		Text: "Add load ONLY when you hit the top of the rep range at the target RIR with clean form.",
	}
	accessoryProgression = &ProgressionRule{
		Kind: ProgressionDouble,
		Text: "Hit top reps on all sets clean, then increase next time by the smallest jump.",
	}
	qualityOnly = &ProgressionRule{
		Kind: ProgressionNone,
		Text: "Quality work. Record the best rep, never chase fatigue.",
	}
)

var morningRitual = []Exercise{
	{
		ID:   "mr1",
		Name: "Fingertip Plank (Submax)",
		Sets: "2–3 Sets",
		Reps: "RPE 7–8",
		Note: "2–3×/week only. Leave 2–3 reps/seconds in reserve. Do NOT daily-fail.",
	},
	{
		ID:   "mr2",
		Name: "Sink Decompression",
		Sets: "1–2 mins",
		Reps: "Hold",
		Note: "Gentle spinal decompression. No pain.",
	},
}

var schedule = map[Day]DaySchedule{
	Monday: {
		Title:    "LOWER A",
		Subtitle: "Acceleration + Jumps + Squat (QUALITY > VOLUME)",
		Exercises: []Exercise{
			{
				ID:          "m0",
				Name:        "Acceleration Sprints (Outdoors)",
				Sets:        "5 Sets",
				Reps:        "10–20m",
				Note:        "Full rest 2–3 min. TIME 2 reps weekly (same distance) and record BEST. Stop if time drops ~2% or mechanics degrade. Safety override: if pilonidal irritation risk, do sled pushes same slot.",
				Progression: qualityOnly,
			},
			{
				ID:          "m1",
				Name:        "Broad Jumps",
				Sets:        "3 Sets",
				Reps:        "2 Jumps",
				Note:        "Full reset. Record best jump. Crisp takeoff + landing only. No fatigue reps.",
				Progression: qualityOnly,
			},
			{
				ID:          "m2",
				Name:        "High-Bar Back Squat (Main Lift) — LOCKED 12 weeks",
				Sets:        "1 Top + 2 Back-off",
				Reps:        "Top: 3–5 | Back-off: 5",
				Note:        "Top set @ RIR 2. Back-offs ~90% of top set. No grinding. Keep speed quality intact.",
				Progression: mainLiftProgression,
			},
			{
				ID:          "m3",
				Name:        "Bulgarian Split Squat",
				Sets:        "2 Sets",
				Reps:        "8–12 / Leg",
				Note:        "Controlled. RIR 1–2. Perfect knee tracking. No knee cave.",
				Progression: accessoryProgression,
			},
			{
				ID:          "m4",
				Name:        "Hamstring Curl",
				Sets:        "3 Sets",
				Reps:        "8–12",
				Note:        "Full ROM. Controlled eccentric. No hip lift/cheating.",
				Progression: accessoryProgression,
			},
			{
				ID:   "m5",
				Name: "Standing Calf Raises",
				Sets: "4 Sets",
				Reps: "2×6–10 + 2×12–20",
				Note: "Pause at top + deep stretch. No bouncing. Full ROM every rep.",
			},
			{
				ID:   "m6",
				Name: "Tibialis Raises",
				Sets: "2 Sets",
				Reps: "20–30",
				Note: "Full ROM for shin/ankle durability.",
			},
		},
	},
	Tuesday: {
		Title:    "PULL (HEAVY)",
		Subtitle: "Width + Thickness + Arms + Anterior Core",
		Exercises: []Exercise{
			{
				ID:   "t0",
				Name: "Scapular Pull-ups (Primer)",
				Sets: "2 Sets",
				Reps: "5–8",
				Note: "Warm-up only (easy). Straight arms. Depress scapula and hold 1–2s. DO NOT fatigue.",
			},
			{
				ID:   "t1",
				Name: "Weighted Pull-ups",
				Sets: "4 Sets",
				Reps: "4–7",
				Note: "Full hang. RIR 1–2. Add load only when all sets hit 7 clean with same ROM.",
				Progression: &ProgressionRule{
					Kind: ProgressionLoad,
					Text: "Add load only when all sets hit 7 clean with the same ROM.",
				},
			},
			{
				ID:          "t2",
				Name:        "Chest-Supported Row",
				Sets:        "3 Sets",
				Reps:        "6–10",
				Note:        "Strict. Same ROM every rep. RIR 1–2. Progress in logbook.",
				Progression: accessoryProgression,
			},
			{
				ID:   "t3",
				Name: "Neutral-Grip Pulldown (Lat Stretch Focus)",
				Sets: "2 Sets",
				Reps: "10–15",
				Note: "Full overhead stretch; drive elbows down. No swinging.",
			},
			{
				ID:   "t4",
				Name: "Face Pulls",
				Sets: "2 Sets",
				Reps: "15–25",
				Note: "Rear delts + shoulder health. Control and pause.",
			},
			{
				ID:          "t5",
				Name:        "Incline DB Curls",
				Sets:        "2 Sets",
				Reps:        "8–12",
				Note:        "Full stretch. No cheating. Stop 1–2 reps before failure.",
				Progression: accessoryProgression,
			},
			{
				ID:   "t6",
				Name: "Hammer Curls",
				Sets: "2 Sets",
				Reps: "8–12",
				Note: "Brachialis + forearm thickness. Neutral grip. Clean reps only.",
			},
			{
				ID:   "t7",
				Name: "Hanging Knee Raises",
				Sets: "2 Sets",
				Reps: "8–12",
				Note: "Strict. ZERO swinging. Dead hang each rep. Posterior pelvic tilt at top. 2–3s controlled descent.",
			},
		},
	},
	Wednesday: {
		Title:    "PUSH (HEAVY)",
		Subtitle: "Upper Chest + Delts + Triceps",
		Exercises: []Exercise{
			{
				ID:   "w1",
				Name: "Incline DB Press",
				Sets: "4 Sets",
				Reps: "6–10",
				Note: "Priority press for upper chest. Controlled eccentric. RIR 1–2. Add load only when all sets hit 10 clean.",
				Progression: &ProgressionRule{
					Kind: ProgressionLoad,
					Text: "Add load only when all sets hit 10 clean.",
				},
			},
			{
				ID:   "w2",
				Name: "Standing Overhead Press — LOCKED 12 weeks",
				Sets: "3 Sets",
				Reps: "4–8",
				Note: "Strict. No layback. RIR 2. Add load when all sets hit 8 clean.",
				Progression: &ProgressionRule{
					Kind: ProgressionLoad,
					Text: "Add load when all sets hit 8 clean.",
				},
			},
			{
				ID:   "w3",
				Name: "Weighted Dips — LOCKED 12 weeks",
				Sets: "3 Sets",
				Reps: "6–10",
				Note: "Smooth reps. RIR 1–2. Add load when all sets hit 10 clean. If dips cause pain, swap ONCE to DB Bench and lock it (safety override only).",
				Progression: &ProgressionRule{
					Kind: ProgressionLoad,
					Text: "Add load when all sets hit 10 clean.",
				},
			},
			{
				ID:   "w4",
				Name: "Cable Lateral Raises",
				Sets: "3 Sets",
				Reps: "12–20",
				Note: "Side delts for shirt width. Strict. Constant tension. No swing.",
			},
			{
				ID:          "w5",
				Name:        "Overhead Cable Triceps Extension",
				Sets:        "3 Sets",
				Reps:        "10–15",
				Note:        "Direct triceps (long head). Full stretch. No elbow pain.",
				Progression: accessoryProgression,
			},
		},
	},
	Thursday: {
		Title:    "UPPER SPECIALIZATION (DENSE LOOK)",
		Subtitle: "Traps + Delts + Back + Arms + Carries + Neck",
		Exercises: []Exercise{
			{
				ID:          "th1",
				Name:        "Shrugs (DB or Barbell)",
				Sets:        "4 Sets",
				Reps:        "6–10",
				Note:        "Priority. Heavy. 2-sec squeeze at top. No bouncing. Full ROM.",
				Progression: accessoryProgression,
			},
			{
				ID:          "th2",
				Name:        "Machine Row — LOCKED 12 weeks",
				Sets:        "3 Sets",
				Reps:        "6–10",
				Note:        "Brace hard. No heaving. RIR 1–2. Progress in logbook.",
				Progression: accessoryProgression,
			},
			{
				ID:   "th3",
				Name: "Leaning Cable Lateral Raises",
				Sets: "3 Sets",
				Reps: "12–20",
				Note: "Strict, no swing. Different angle than Wednesday. Constant tension.",
			},
			{
				ID:   "th4",
				Name: "Rear Delt Fly (Cable or Reverse Pec Deck)",
				Sets: "2 Sets",
				Reps: "15–25",
				Note: "Rear delts. Controlled. Don’t let traps dominate.",
			},
			{
				ID:   "th5",
				Name: "Cable Curl",
				Sets: "2 Sets",
				Reps: "8–12",
				Note: "No swinging. Full ROM. RIR 1–2.",
			},
			{
				ID:   "th6",
				Name: "Rope Pressdowns",
				Sets: "2 Sets",
				Reps: "10–15",
				Note: "Direct triceps. Elbows pinned. Full lockout. Clean reps.",
			},
			{
				ID:   "th7",
				Name: "Suitcase Carries",
				Sets: "3 Sets",
				Reps: "30–40m / Side",
				Note: "Anti-lateral flexion. Walk tall. Stop before posture breaks.",
			},
			{
				ID:          "th8",
				Name:        "Standing Neck Training (4-Way Band/Hand)",
				Sets:        "2 Sets",
				Reps:        "15–25",
				Note:        "Easy-moderate. No pain. Controlled reps only. Never grind neck work.",
				Progression: qualityOnly,
			},
		},
	},
	Friday: {
		Title:    "LOWER B",
		Subtitle: "RDL + Legs + Calves + Trunk + Short Zone 1–2 (Standing)",
		Exercises: []Exercise{
			{
				ID:          "f1",
				Name:        "Romanian Deadlift (Main Lift) — LOCKED 12 weeks",
				Sets:        "1 Top + 2 Back-off",
				Reps:        "Top: 6–8 | Back-off: 6–8",
				Note:        "Top set @ RIR 2. Back-offs ~90%. Perfect hinge. No grinding.",
				Progression: mainLiftProgression,
			},
			{
				ID:          "f2",
				Name:        "Hip Thrust — LOCKED 12 weeks",
				Sets:        "3 Sets",
				Reps:        "8–12",
				Note:        "Controlled reps. Strong lockout. RIR 1–2.",
				Progression: accessoryProgression,
			},
			{
				ID:   "f3",
				Name: "Lateral Lunge — LOCKED 12 weeks",
				Sets: "2 Sets",
				Reps: "8–10 / Side",
				Note: "Adductors + lateral strength. Smooth depth, knee tracking.",
			},
			{
				ID:   "f4",
				Name: "Hamstring Curl",
				Sets: "2 Sets",
				Reps: "8–12",
				Note: "Second weekly knee-flexion exposure (reduced volume). Full ROM, controlled eccentric.",
			},
			{
				ID:   "f5",
				Name: "Seated Calf Raises",
				Sets: "3 Sets",
				Reps: "10–15",
				Note: "Deep stretch + pause. No bouncing.",
			},
			{
				ID:   "f6",
				Name: "Pallof Press (Anti-Rotation)",
				Sets: "2 Sets",
				Reps: "10–15 / Side",
				Note: "Brace hard. Ribs down. No torso twist. Control the return.",
			},
			{
				ID:   "f7",
				Name: "Hanging Knee Raises",
				Sets: "2 Sets",
				Reps: "8–12",
				Note: "Strict. ZERO swinging. Dead hang each rep. Posterior pelvic tilt at top. 2–3s controlled descent.",
			},
			{
				ID:   "f8",
				Name: "Zone 1–2 Incline Walk / Ruck (Standing)",
				Sets: "1 Session",
				Reps: "20–30 mins",
				Note: "Easy-moderate. Standing only. Shower + dry well after.",
			},
		},
	},
	Saturday: {
		Title:    "CARDIO",
		Subtitle: "Zone 1–2 + Mobility (Standing)",
		Exercises: []Exercise{
			{
				ID:   "sa1",
				Name: "Zone 1–2 Incline Walk / Ruck (Standing)",
				Sets: "1 Session",
				Reps: "60 mins",
				Note: "Steady pace. Low joint stress. Standing only.",
			},
			{
				ID:   "sa2",
				Name: "Mobility Flow",
				Sets: "1 Session",
				Reps: "10–15 mins",
				Note: "Focus on hips, ankles, and T-spine. Smooth, not aggressive.",
			},
		},
	},
	Sunday: {
		Title:    "REST",
		Subtitle: "Steps + Recovery",
		Exercises: []Exercise{
			{
				ID:   "su1",
				Name: "Walk (Steps)",
				Sets: "1 Session",
				Reps: "8k–12k steps",
				Note: "Keep weekly step average high for leanness. Easy pace.",
			},
		},
	},
}
