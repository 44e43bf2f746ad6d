package main

import (
	"strings"
	"time"
)

// Gender selects the sex-specific constants of the BMR formulas
type Gender string

const (
	Male   Gender = "male"
	Female Gender = "female"
	Other  Gender = "other"
)

// ActivityLevel selects the TDEE multiplier applied to BMR
type ActivityLevel string

const (
	Sedentary  ActivityLevel = "sedentary"
	Light      ActivityLevel = "light"
	Moderate   ActivityLevel = "moderate"
	Active     ActivityLevel = "active"
	VeryActive ActivityLevel = "very_active"
)

// Goal is derived from the difference between current and goal weight
type Goal string

const (
	LoseWeight Goal = "lose"
	GainWeight Goal = "gain"
	Maintain   Goal = "maintain"
)

// Profile holds the user's biometrics. It is fixed once a tracker is built.
type Profile struct {
	HeightCm      float64       `yaml:"height_cm"`
	WeightKg      float64       `yaml:"weight_kg"`
	GoalWeightKg  float64       `yaml:"goal_weight_kg"`
	Age           int           `yaml:"age"`
	Gender        Gender        `yaml:"gender"`
	ActivityLevel ActivityLevel `yaml:"activity_level"`
}

// Macros are grams of each macronutrient
type Macros struct {
	ProteinG float64
	CarbsG   float64
	FatsG    float64
}

// Add returns the element-wise sum
func (m Macros) Add(o Macros) Macros {
	return Macros{
		ProteinG: m.ProteinG + o.ProteinG,
		CarbsG:   m.CarbsG + o.CarbsG,
		FatsG:    m.FatsG + o.FatsG,
	}
}

// FoodEntry represents a single logged meal
type FoodEntry struct {
	Description string
	Calories    float64
	Macros      Macros
	LoggedAt    time.Time
}

// ExerciseEntry represents a single logged activity
type ExerciseEntry struct {
	Description    string
	CaloriesBurned float64
	LoggedAt       time.Time
}

// Summary contains the totals for a given day
type Summary struct {
	Date      time.Time
	Consumed  float64
	Burned    float64
	Target    float64
	Net       float64 // Consumed - Burned - Target
	Remaining float64 // Calories left before reaching Target
	BMR       float64
	TDEE      float64
	Goal      Goal
	Macros    Macros
	Foods     []FoodEntry
	Exercises []ExerciseEntry
}

// ParseGender normalizes user input into a Gender. Unknown values are
// returned as-is and rejected by profile validation.
func ParseGender(s string) Gender {
	return Gender(strings.ToLower(strings.TrimSpace(s)))
}

// ParseActivityLevel normalizes user input into an ActivityLevel.
// "very active" and "very-active" are accepted for very_active.
func ParseActivityLevel(s string) ActivityLevel {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.NewReplacer(" ", "_", "-", "_").Replace(s)
	return ActivityLevel(s)
}

func (g Gender) valid() bool {
	switch g {
	case Male, Female, Other:
		return true
	}
	return false
}

func (a ActivityLevel) valid() bool {
	_, ok := activityMultipliers[a]
	return ok
}
