package main

import (
	"math"
	"strings"
	"time"
)

// Tracker is the daily ledger for one profile. Entries are append-only and
// live only for the lifetime of the process. It is not safe for concurrent use.
type Tracker struct {
	profile   Profile
	target    Target
	foods     []FoodEntry
	exercises []ExerciseEntry
	now       func() time.Time
}

// TrackerOption customizes a Tracker
type TrackerOption func(*trackerOptions)

type trackerOptions struct {
	formula    Formula
	adjustment float64
	now        func() time.Time
}

// WithFormula selects the BMR formula
func WithFormula(f Formula) TrackerOption {
	return func(o *trackerOptions) { o.formula = f }
}

// WithGoalAdjustment sets the kcal deficit/surplus for lose/gain goals
func WithGoalAdjustment(kcal float64) TrackerOption {
	return func(o *trackerOptions) { o.adjustment = kcal }
}

// WithClock overrides time.Now, mostly for tests
func WithClock(now func() time.Time) TrackerOption {
	return func(o *trackerOptions) { o.now = now }
}

// NewTracker validates the profile and computes its daily target
func NewTracker(p Profile, opts ...TrackerOption) (*Tracker, error) {
	o := trackerOptions{
		formula:    MifflinStJeor,
		adjustment: defaultGoalAdjustment,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(&o)
	}

	target, err := ComputeTarget(p, o.formula, o.adjustment)
	if err != nil {
		return nil, err
	}

	return &Tracker{
		profile: p,
		target:  target,
		now:     o.now,
	}, nil
}

// Profile returns the profile the tracker was built with
func (t *Tracker) Profile() Profile {
	return t.profile
}

// Target returns the daily target breakdown
func (t *Tracker) Target() Target {
	return t.target
}

// LogFood appends a food entry. On error the ledger is unchanged.
func (t *Tracker) LogFood(description string, calories, protein, carbs, fats float64) (FoodEntry, error) {
	description = strings.TrimSpace(description)
	if description == "" {
		return FoodEntry{}, invalidEntry("description", "must not be empty")
	}

	for _, f := range []struct {
		name  string
		value float64
	}{
		{"calories", calories},
		{"protein", protein},
		{"carbs", carbs},
		{"fats", fats},
	} {
		if err := checkAmount(f.name, f.value); err != nil {
			return FoodEntry{}, err
		}
	}

	entry := FoodEntry{
		Description: description,
		Calories:    calories,
		Macros:      Macros{ProteinG: protein, CarbsG: carbs, FatsG: fats},
		LoggedAt:    t.now(),
	}
	t.foods = append(t.foods, entry)
	return entry, nil
}

// LogExercise appends an exercise entry. On error the ledger is unchanged.
func (t *Tracker) LogExercise(description string, caloriesBurned float64) (ExerciseEntry, error) {
	description = strings.TrimSpace(description)
	if description == "" {
		return ExerciseEntry{}, invalidEntry("description", "must not be empty")
	}
	if err := checkAmount("calories burned", caloriesBurned); err != nil {
		return ExerciseEntry{}, err
	}

	entry := ExerciseEntry{
		Description:    description,
		CaloriesBurned: caloriesBurned,
		LoggedAt:       t.now(),
	}
	t.exercises = append(t.exercises, entry)
	return entry, nil
}

// Summary totals the entries logged today. It has no side effects.
func (t *Tracker) Summary() Summary {
	now := t.now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	s := Summary{
		Date:   today,
		Target: t.target.Calories,
		BMR:    t.target.BMR,
		TDEE:   t.target.TDEE,
		Goal:   t.target.Goal,
	}

	for _, f := range t.foods {
		if !sameDay(f.LoggedAt, today) {
			continue
		}
		s.Consumed += f.Calories
		s.Macros = s.Macros.Add(f.Macros)
		s.Foods = append(s.Foods, f)
	}

	for _, e := range t.exercises {
		if !sameDay(e.LoggedAt, today) {
			continue
		}
		s.Burned += e.CaloriesBurned
		s.Exercises = append(s.Exercises, e)
	}

	s.Net = s.Consumed - s.Burned - s.Target
	s.Remaining = -s.Net
	return s
}

func checkAmount(field string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return invalidEntry(field, "must be a finite number")
	}
	if v < 0 {
		return invalidEntry(field, "must not be negative, got %g", v)
	}
	return nil
}

func sameDay(ts, day time.Time) bool {
	y1, m1, d1 := ts.In(day.Location()).Date()
	y2, m2, d2 := day.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
