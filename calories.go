package main

import (
	"fmt"
	"math"
	"strings"
)

// Formula names a basal metabolic rate equation
type Formula string

const (
	MifflinStJeor  Formula = "mifflin-st-jeor"
	HarrisBenedict Formula = "harris-benedict" // revised, Roza & Shizgal 1984
)

const (
	defaultGoalAdjustment = 500.0  // kcal deficit/surplus for lose/gain goals
	minimumDailyTarget    = 1200.0 // floor on a weight-loss intake, capped at TDEE

	minHeightCm = 50.0
	maxHeightCm = 272.0
	minWeightKg = 20.0
	maxWeightKg = 650.0
	minAge      = 1
	maxAge      = 130
)

var activityMultipliers = map[ActivityLevel]float64{
	Sedentary:  1.2,
	Light:      1.375,
	Moderate:   1.55,
	Active:     1.725,
	VeryActive: 1.9,
}

// Target is the breakdown behind a daily calorie target
type Target struct {
	Formula    Formula
	BMR        float64
	Multiplier float64
	TDEE       float64
	Goal       Goal
	Adjustment float64 // signed: negative for a deficit
	Calories   float64
}

// ParseFormula accepts a formula name, ignoring case and separators.
// An empty string selects Mifflin-St Jeor.
func ParseFormula(s string) (Formula, error) {
	key := strings.NewReplacer(" ", "", "-", "", "_", "").Replace(strings.ToLower(strings.TrimSpace(s)))
	switch key {
	case "", "mifflinstjeor", "mifflin":
		return MifflinStJeor, nil
	case "harrisbenedict", "harris":
		return HarrisBenedict, nil
	}
	return "", fmt.Errorf("unknown formula %q (use: %s, %s)", s, MifflinStJeor, HarrisBenedict)
}

// Validate checks that every field is present and inside basic human ranges
func (p Profile) Validate() error {
	if err := checkRange("height", p.HeightCm, minHeightCm, maxHeightCm, "cm"); err != nil {
		return err
	}
	if err := checkRange("weight", p.WeightKg, minWeightKg, maxWeightKg, "kg"); err != nil {
		return err
	}
	if err := checkRange("goal weight", p.GoalWeightKg, minWeightKg, maxWeightKg, "kg"); err != nil {
		return err
	}
	if p.Age <= 0 {
		return invalidProfile("age", "must be positive, got %d", p.Age)
	}
	if p.Age < minAge || p.Age > maxAge {
		return invalidProfile("age", "must be between %d and %d years, got %d", minAge, maxAge, p.Age)
	}
	if !p.Gender.valid() {
		return invalidProfile("gender", "must be one of male, female, other; got %q", p.Gender)
	}
	if !p.ActivityLevel.valid() {
		return invalidProfile("activity level", "must be one of sedentary, light, moderate, active, very_active; got %q", p.ActivityLevel)
	}
	return nil
}

func checkRange(field string, v, lo, hi float64, unit string) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return invalidProfile(field, "must be a finite number")
	}
	if v <= 0 {
		return invalidProfile(field, "must be positive, got %g", v)
	}
	if v < lo || v > hi {
		return invalidProfile(field, "must be between %g and %g %s, got %g", lo, hi, unit, v)
	}
	return nil
}

// BMR returns the basal metabolic rate in kcal/day. The profile is assumed valid.
func BMR(p Profile, f Formula) float64 {
	w, h, a := p.WeightKg, p.HeightCm, float64(p.Age)

	switch f {
	case HarrisBenedict:
		male := 88.362 + 13.397*w + 4.799*h - 5.677*a
		female := 447.593 + 9.247*w + 3.098*h - 4.330*a
		switch p.Gender {
		case Male:
			return male
		case Female:
			return female
		default:
			return (male + female) / 2
		}
	default:
		base := 10*w + 6.25*h - 5*a
		switch p.Gender {
		case Male:
			return base + 5
		case Female:
			return base - 161
		default:
			return base - 78
		}
	}
}

// GoalFor compares current and goal weight
func GoalFor(p Profile) Goal {
	switch {
	case p.GoalWeightKg < p.WeightKg:
		return LoseWeight
	case p.GoalWeightKg > p.WeightKg:
		return GainWeight
	}
	return Maintain
}

// ComputeTarget validates the profile and returns the full target breakdown.
// adjustment is the unsigned kcal deficit or surplus for lose/gain goals.
func ComputeTarget(p Profile, f Formula, adjustment float64) (Target, error) {
	if err := p.Validate(); err != nil {
		return Target{}, err
	}
	if f == "" {
		f = MifflinStJeor
	}
	if f != MifflinStJeor && f != HarrisBenedict {
		return Target{}, fmt.Errorf("unknown formula %q", f)
	}
	if math.IsNaN(adjustment) || math.IsInf(adjustment, 0) || adjustment < 0 {
		return Target{}, fmt.Errorf("goal adjustment must be a non-negative number, got %g", adjustment)
	}

	t := Target{
		Formula:    f,
		BMR:        BMR(p, f),
		Multiplier: activityMultipliers[p.ActivityLevel],
		Goal:       GoalFor(p),
	}
	if t.BMR <= 0 {
		return Target{}, invalidProfile("bmr", "is not positive (%.1f) for this profile under %s", t.BMR, f)
	}
	t.TDEE = t.BMR * t.Multiplier

	switch t.Goal {
	case LoseWeight:
		t.Adjustment = -adjustment
		// The floor shrinks the deficit but never lifts it above maintenance
		if floor := math.Min(minimumDailyTarget, t.TDEE); t.TDEE-adjustment < floor {
			t.Adjustment = floor - t.TDEE
		}
	case GainWeight:
		t.Adjustment = adjustment
	}

	t.Calories = t.TDEE + t.Adjustment
	return t, nil
}

// ComputeDailyTarget returns the recommended daily intake in kcal using
// Mifflin-St Jeor and the default 500 kcal goal adjustment.
func ComputeDailyTarget(p Profile) (float64, error) {
	t, err := ComputeTarget(p, MifflinStJeor, defaultGoalAdjustment)
	if err != nil {
		return 0, err
	}
	return t.Calories, nil
}
