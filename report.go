package main

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const banner = "═══════════════════════════════════════"

var titleCaser = cases.Title(language.English)

// amount formats cal and gram totals to one decimal, dropping trailing zeros
func amount(v float64) string {
	return strconv.FormatFloat(math.Round(v*10)/10, 'f', -1, 64)
}

// label turns an identifier like "very_active" into "Very Active"
func label(s string) string {
	return titleCaser.String(strings.ReplaceAll(s, "_", " "))
}

func writeOnboarding(w io.Writer, t Target) {
	fmt.Fprintf(w, "Onboarding complete! Your BMR: %.0f cal, TDEE: %.0f cal, Daily Goal: %.0f cal.\n",
		t.BMR, t.TDEE, t.Calories)
}

func writeTarget(w io.Writer, p Profile, t Target) {
	fmt.Fprintln(w, banner)
	fmt.Fprintln(w, "  DAILY CALORIE TARGET")
	fmt.Fprintln(w, banner)
	fmt.Fprintln(w)
	fmt.Fprintf(w, "👤 Profile:  %gcm, %gkg → %gkg, %d years, %s\n",
		p.HeightCm, p.WeightKg, p.GoalWeightKg, p.Age, label(string(p.Gender)))
	fmt.Fprintf(w, "🏃 Activity: %s (×%g)\n", label(string(p.ActivityLevel)), t.Multiplier)
	fmt.Fprintf(w, "🧮 Formula:  %s\n", label(strings.ReplaceAll(string(t.Formula), "-", " ")))
	fmt.Fprintln(w)
	fmt.Fprintf(w, "   BMR:         %.0f cal\n", t.BMR)
	fmt.Fprintf(w, "   TDEE:        %.0f cal\n", t.TDEE)
	fmt.Fprintf(w, "   Goal:        %s (%+.0f cal)\n", label(string(t.Goal)), t.Adjustment)
	fmt.Fprintf(w, "   Daily goal:  %.0f cal\n", t.Calories)
	fmt.Fprintln(w)
}

func writeTargetMarkdown(w io.Writer, p Profile, t Target) {
	fmt.Fprintln(w, "# Daily Calorie Target")
	fmt.Fprintln(w)
	fmt.Fprintf(w, "- **Profile:** %gcm, %gkg → %gkg, %d years, %s\n",
		p.HeightCm, p.WeightKg, p.GoalWeightKg, p.Age, label(string(p.Gender)))
	fmt.Fprintf(w, "- **Activity:** %s (×%g)\n", label(string(p.ActivityLevel)), t.Multiplier)
	fmt.Fprintf(w, "- **BMR:** %.0f cal\n", t.BMR)
	fmt.Fprintf(w, "- **TDEE:** %.0f cal\n", t.TDEE)
	fmt.Fprintf(w, "- **Goal:** %s (%+.0f cal)\n", label(string(t.Goal)), t.Adjustment)
	fmt.Fprintf(w, "- **Daily goal:** %.0f cal\n", t.Calories)
}

// writeDayReport prints the summary the way the interactive menu shows it
func writeDayReport(w io.Writer, s Summary) {
	fmt.Fprintln(w, banner)
	fmt.Fprintln(w, "  TODAY'S CALORIE REPORT")
	fmt.Fprintf(w, "  %s\n", s.Date.Format("Monday, January 2, 2006"))
	fmt.Fprintln(w, banner)
	fmt.Fprintln(w)

	fmt.Fprintf(w, "Today: Eaten %s cal, Burned %s cal (exercise), Net %.0f cal vs. goal %.0f.\n",
		amount(s.Consumed), amount(s.Burned), s.Net, s.Target)
	fmt.Fprintf(w, "Macros: Protein %sg, Carbs %sg, Fats %sg.\n",
		amount(s.Macros.ProteinG), amount(s.Macros.CarbsG), amount(s.Macros.FatsG))
	fmt.Fprintln(w)

	if len(s.Foods) > 0 {
		fmt.Fprintln(w, "🍽️  Food:")
		for _, f := range s.Foods {
			fmt.Fprintf(w, "   %s - %s (%s cal, P %sg / C %sg / F %sg)\n",
				f.LoggedAt.Format("15:04"), f.Description, amount(f.Calories),
				amount(f.Macros.ProteinG), amount(f.Macros.CarbsG), amount(f.Macros.FatsG))
		}
		fmt.Fprintln(w)
	}

	if len(s.Exercises) > 0 {
		fmt.Fprintln(w, "🏃 Exercise:")
		for _, e := range s.Exercises {
			fmt.Fprintf(w, "   %s - %s (%s cal)\n",
				e.LoggedAt.Format("15:04"), e.Description, amount(e.CaloriesBurned))
		}
		fmt.Fprintln(w)
	}

	switch {
	case s.Remaining > 0:
		fmt.Fprintf(w, "✅ %.0f cal left for today\n", s.Remaining)
	case s.Remaining < 0:
		fmt.Fprintf(w, "⚠️  %.0f cal over today's goal\n", -s.Remaining)
	default:
		fmt.Fprintln(w, "🎯 Right on today's goal")
	}
}

func writeDayReportMarkdown(w io.Writer, s Summary) {
	fmt.Fprintf(w, "# Calorie Report - %s\n\n", s.Date.Format("Monday, January 2, 2006"))

	fmt.Fprintln(w, "## Summary")
	fmt.Fprintln(w)
	fmt.Fprintf(w, "- **Eaten:** %s cal\n", amount(s.Consumed))
	fmt.Fprintf(w, "- **Burned:** %s cal\n", amount(s.Burned))
	fmt.Fprintf(w, "- **Goal:** %.0f cal\n", s.Target)
	fmt.Fprintf(w, "- **Net:** %.0f cal\n", s.Net)
	fmt.Fprintf(w, "- **Macros:** Protein %sg, Carbs %sg, Fats %sg\n",
		amount(s.Macros.ProteinG), amount(s.Macros.CarbsG), amount(s.Macros.FatsG))
	fmt.Fprintln(w)

	if len(s.Foods) > 0 {
		fmt.Fprintln(w, "## Food")
		fmt.Fprintln(w)
		for _, f := range s.Foods {
			fmt.Fprintf(w, "- **%s** - %s (%s cal)\n", f.LoggedAt.Format("15:04"), f.Description, amount(f.Calories))
		}
		fmt.Fprintln(w)
	}

	if len(s.Exercises) > 0 {
		fmt.Fprintln(w, "## Exercise")
		fmt.Fprintln(w)
		for _, e := range s.Exercises {
			fmt.Fprintf(w, "- **%s** - %s (%s cal)\n", e.LoggedAt.Format("15:04"), e.Description, amount(e.CaloriesBurned))
		}
		fmt.Fprintln(w)
	}
}
