package main

import (
	"bytes"
	"strings"
	"testing"
	"time"
)

func TestWriteDayReport(t *testing.T) {
	clock, _ := fixedClock(time.Date(2025, 10, 12, 7, 45, 0, 0, time.UTC))
	tracker := newTestTracker(t, WithClock(clock))
	tracker.LogFood("Oatmeal", 300, 10, 50, 5)
	tracker.LogExercise("Run 5km", 400)

	var buf bytes.Buffer
	writeDayReport(&buf, tracker.Summary())
	out := buf.String()

	for _, want := range []string{
		"TODAY'S CALORIE REPORT",
		"Sunday, October 12, 2025",
		"Today: Eaten 300 cal, Burned 400 cal (exercise), Net -2359 cal vs. goal 2259.",
		"Macros: Protein 10g, Carbs 50g, Fats 5g.",
		"07:45 - Oatmeal (300 cal, P 10g / C 50g / F 5g)",
		"07:45 - Run 5km (400 cal)",
		"2359 cal left for today",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("report missing %q\n%s", want, out)
		}
	}
}

func TestWriteDayReportOverGoal(t *testing.T) {
	tracker := newTestTracker(t)
	tracker.LogFood("Feast", 3000, 100, 300, 120)

	var buf bytes.Buffer
	writeDayReport(&buf, tracker.Summary())

	if !strings.Contains(buf.String(), "741 cal over today's goal") {
		t.Errorf("expected over-goal line\n%s", buf.String())
	}
	if strings.Contains(buf.String(), "Exercise:") {
		t.Errorf("exercise section should be omitted when empty\n%s", buf.String())
	}
}

func TestWriteDayReportMarkdown(t *testing.T) {
	clock, _ := fixedClock(time.Date(2025, 10, 12, 12, 5, 0, 0, time.UTC))
	tracker := newTestTracker(t, WithClock(clock))
	tracker.LogFood("Salad", 350, 12, 20, 18)

	var buf bytes.Buffer
	writeDayReportMarkdown(&buf, tracker.Summary())
	out := buf.String()

	for _, want := range []string{
		"# Calorie Report - Sunday, October 12, 2025",
		"- **Eaten:** 350 cal",
		"- **Burned:** 0 cal",
		"- **Goal:** 2259 cal",
		"## Food",
		"- **12:05** - Salad (350 cal)",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("markdown missing %q\n%s", want, out)
		}
	}
	if strings.Contains(out, "## Exercise") {
		t.Errorf("exercise section should be omitted when empty\n%s", out)
	}
}

func TestWriteOnboarding(t *testing.T) {
	tracker := newTestTracker(t)

	var buf bytes.Buffer
	writeOnboarding(&buf, tracker.Target())

	want := "Onboarding complete! Your BMR: 1780 cal, TDEE: 2759 cal, Daily Goal: 2259 cal.\n"
	if buf.String() != want {
		t.Errorf("got %q, want %q", buf.String(), want)
	}
}

func TestWriteTarget(t *testing.T) {
	p := sampleProfile()
	p.ActivityLevel = VeryActive
	target, err := ComputeTarget(p, MifflinStJeor, 500)
	if err != nil {
		t.Fatalf("ComputeTarget: %v", err)
	}

	var buf bytes.Buffer
	writeTarget(&buf, p, target)
	out := buf.String()

	for _, want := range []string{"Very Active (×1.9)", "Mifflin St Jeor", "Lose (-500 cal)", "BMR:         1780 cal"} {
		if !strings.Contains(out, want) {
			t.Errorf("target report missing %q\n%s", want, out)
		}
	}
}

func TestLabel(t *testing.T) {
	tests := map[string]string{
		"very_active": "Very Active",
		"male":        "Male",
		"maintain":    "Maintain",
	}
	for in, want := range tests {
		if got := label(in); got != want {
			t.Errorf("label(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestAmount(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{300, "300"},
		{0.1 + 0.2, "0.3"},
		{12.25, "12.3"},
		{99.96, "100"},
		{1234.5, "1234.5"},
	}
	for _, tt := range tests {
		if got := amount(tt.in); got != tt.want {
			t.Errorf("amount(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestWriteDayReportRoundsTotals(t *testing.T) {
	tracker := newTestTracker(t)
	tracker.LogFood("Mint", 0.1, 0.1, 0, 0)
	tracker.LogFood("Gum", 0.2, 0.2, 0, 0)
	tracker.LogExercise("Stretch", 0.1)
	tracker.LogExercise("Stretch", 0.2)

	var buf bytes.Buffer
	writeDayReport(&buf, tracker.Summary())
	writeDayReportMarkdown(&buf, tracker.Summary())
	out := buf.String()

	for _, want := range []string{
		"Eaten 0.3 cal, Burned 0.3 cal",
		"Macros: Protein 0.3g, Carbs 0g, Fats 0g.",
		"- **Eaten:** 0.3 cal",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("report missing %q\n%s", want, out)
		}
	}
	if strings.Contains(out, "0000000") {
		t.Errorf("report shows float noise\n%s", out)
	}
}
