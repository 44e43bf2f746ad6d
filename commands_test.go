package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRunTargetFromFlags(t *testing.T) {
	var out bytes.Buffer
	args := []string{"--height", "180", "--weight", "80", "--goal", "75", "--age", "30", "--gender", "male", "--activity", "moderate"}

	if err := runTarget(args, DefaultConfig(), &out); err != nil {
		t.Fatalf("runTarget: %v", err)
	}
	if !strings.Contains(out.String(), "Daily goal:  2259 cal") {
		t.Errorf("unexpected output\n%s", out.String())
	}
}

func TestRunTargetGoalDefaultsToMaintenance(t *testing.T) {
	var out bytes.Buffer
	args := []string{"--height", "180", "--weight", "80", "--age", "30", "--gender", "male", "--activity", "moderate", "--md"}

	if err := runTarget(args, DefaultConfig(), &out); err != nil {
		t.Fatalf("runTarget: %v", err)
	}
	for _, want := range []string{"# Daily Calorie Target", "- **Goal:** Maintain (+0 cal)", "- **Daily goal:** 2759 cal"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("output missing %q\n%s", want, out.String())
		}
	}
}

func TestRunTargetFormulaFlag(t *testing.T) {
	var out bytes.Buffer
	args := []string{"--height", "180", "--weight", "80", "--age", "30", "--gender", "male", "--activity", "sedentary", "--formula", "harris-benedict"}

	if err := runTarget(args, DefaultConfig(), &out); err != nil {
		t.Fatalf("runTarget: %v", err)
	}
	if !strings.Contains(out.String(), "BMR:         1854 cal") {
		t.Errorf("expected Harris-Benedict BMR\n%s", out.String())
	}
}

func TestRunTargetProfileAndSave(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "in.yaml")
	dst := filepath.Join(dir, "out.yaml")
	if err := SaveProfile(src, sampleProfile()); err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	if err := runTarget([]string{"--profile", src, "--save", dst}, DefaultConfig(), &out); err != nil {
		t.Fatalf("runTarget: %v", err)
	}
	if !strings.Contains(out.String(), "Saved profile to "+dst) {
		t.Errorf("expected save confirmation\n%s", out.String())
	}
	if _, err := os.Stat(dst); err != nil {
		t.Errorf("expected saved profile: %v", err)
	}
}

func TestRunTargetUsesConfiguredProfile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "me.yaml")
	if err := SaveProfile(path, sampleProfile()); err != nil {
		t.Fatal(err)
	}
	cfg := DefaultConfig()
	cfg.ProfilePath = path

	var out bytes.Buffer
	if err := runTarget(nil, cfg, &out); err != nil {
		t.Fatalf("runTarget: %v", err)
	}
	if !strings.Contains(out.String(), "Daily goal:  2259 cal") {
		t.Errorf("unexpected output\n%s", out.String())
	}
}

func TestRunTargetGoalOverridesProfile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "me.yaml")
	if err := SaveProfile(path, sampleProfile()); err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	if err := runTarget([]string{"--profile", path, "--goal", "85"}, DefaultConfig(), &out); err != nil {
		t.Fatalf("runTarget: %v", err)
	}
	for _, want := range []string{"80kg → 85kg", "Gain (+500 cal)", "Daily goal:  3259 cal"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("output missing %q\n%s", want, out.String())
		}
	}
}

func TestRunTargetErrors(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		invalid bool
	}{
		{"no profile", nil, true},
		{"bad gender", []string{"--height", "180", "--weight", "80", "--age", "30", "--gender", "x", "--activity", "light"}, true},
		{"unknown formula", []string{"--height", "180", "--weight", "80", "--age", "30", "--gender", "male", "--activity", "light", "--formula", "nope"}, false},
		{"unknown flag", []string{"--bogus"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			err := runTarget(tt.args, DefaultConfig(), &out)
			if err == nil {
				t.Fatal("expected error")
			}
			if errors.Is(err, ErrInvalidProfile) != tt.invalid {
				t.Errorf("errors.Is(err, ErrInvalidProfile) = %v, want %v (%v)", !tt.invalid, tt.invalid, err)
			}
		})
	}
}
