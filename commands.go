package main

import (
	"flag"
	"fmt"
	"io"
	"os"
)

// loadConfigOrExit loads configuration or terminates with an error
func loadConfigOrExit() *Config {
	cfg, err := LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(1)
	}
	return cfg
}

// handleInteractive runs the menu, starting onboarded when a profile is configured
func handleInteractive(args []string) {
	fs := flag.NewFlagSet("caltrack", flag.ExitOnError)
	var (
		profilePath string
		markdown    bool
	)
	fs.StringVar(&profilePath, "profile", "", "Load profile from a YAML file")
	fs.StringVar(&profilePath, "p", "", "Load profile from a YAML file")
	fs.BoolVar(&markdown, "markdown", false, "Show summaries in markdown format")
	fs.BoolVar(&markdown, "md", false, "Show summaries in markdown format")
	fs.Parse(args)

	cfg := loadConfigOrExit()
	if profilePath != "" {
		cfg.ProfilePath = profilePath
	}

	tracker, err := trackerFromConfig(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading profile: %v\n", err)
		os.Exit(1)
	}
	if tracker != nil {
		writeOnboarding(os.Stdout, tracker.Target())
	}

	shell := NewShell(os.Stdin, os.Stdout, cfg, tracker)
	shell.echo = !stdinIsTerminal()
	shell.markdown = markdown

	if err := shell.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error reading input: %v\n", err)
		os.Exit(1)
	}
}

// trackerFromConfig returns nil, nil when no profile file is configured
func trackerFromConfig(cfg *Config) (*Tracker, error) {
	if cfg.ProfilePath == "" {
		return nil, nil
	}
	p, err := LoadProfile(cfg.ProfilePath)
	if err != nil {
		return nil, err
	}
	return NewTracker(p, cfg.TrackerOptions()...)
}

// handleTarget implements the 'target' command
func handleTarget(args []string) {
	cfg := loadConfigOrExit()
	if err := runTarget(args, cfg, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runTarget(args []string, cfg *Config, out io.Writer) error {
	fs := flag.NewFlagSet("target", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var (
		p           Profile
		gender      string
		activity    string
		formula     string
		profilePath string
		savePath    string
		markdown    bool
	)

	fs.Float64Var(&p.HeightCm, "height", 0, "Height in cm")
	fs.Float64Var(&p.WeightKg, "weight", 0, "Current weight in kg")
	fs.Float64Var(&p.GoalWeightKg, "goal", 0, "Goal weight in kg (defaults to current weight, overrides --profile)")
	fs.IntVar(&p.Age, "age", 0, "Age in years")
	fs.StringVar(&gender, "gender", "", "male, female or other")
	fs.StringVar(&activity, "activity", "", "sedentary, light, moderate, active or very_active")
	fs.StringVar(&formula, "formula", cfg.Formula, "BMR formula")
	fs.StringVar(&profilePath, "profile", cfg.ProfilePath, "Load profile from a YAML file")
	fs.StringVar(&savePath, "save", "", "Write the profile to a YAML file")
	fs.BoolVar(&markdown, "markdown", false, "Output in markdown format")
	fs.BoolVar(&markdown, "md", false, "Output in markdown format")

	if err := fs.Parse(args); err != nil {
		return err
	}

	flagsGiven := p.HeightCm != 0 || p.WeightKg != 0 || p.Age != 0 || gender != "" || activity != ""
	if !flagsGiven && profilePath != "" {
		loaded, err := LoadProfile(profilePath)
		if err != nil {
			return err
		}
		// --goal still applies on top of a saved profile
		if p.GoalWeightKg != 0 {
			loaded.GoalWeightKg = p.GoalWeightKg
		}
		p = loaded
	} else {
		p.Gender = ParseGender(gender)
		p.ActivityLevel = ParseActivityLevel(activity)
		if p.GoalWeightKg == 0 {
			p.GoalWeightKg = p.WeightKg
		}
	}

	f, err := ParseFormula(formula)
	if err != nil {
		return err
	}

	t, err := ComputeTarget(p, f, cfg.GoalAdjustment)
	if err != nil {
		return err
	}

	if markdown {
		writeTargetMarkdown(out, p, t)
	} else {
		writeTarget(out, p, t)
	}

	if savePath != "" {
		if err := SaveProfile(savePath, p); err != nil {
			return err
		}
		fmt.Fprintf(out, "💾 Saved profile to %s\n", savePath)
	}
	return nil
}

// handleConfig implements the 'config' command
func handleConfig(args []string) {
	cfg := loadConfigOrExit()
	writeConfig(os.Stdout, cfg)
}

func writeConfig(w io.Writer, cfg *Config) {
	fmt.Fprintln(w, banner)
	fmt.Fprintln(w, "  CALTRACK CONFIGURATION")
	fmt.Fprintln(w, banner)
	fmt.Fprintln(w)

	profile := cfg.ProfilePath
	if profile == "" {
		profile = "(none, onboard interactively)"
	}
	fmt.Fprintf(w, "Profile file:     %s\n", profile)
	fmt.Fprintf(w, "BMR formula:      %s\n", cfg.Formula)
	fmt.Fprintf(w, "Goal adjustment:  %g cal\n", cfg.GoalAdjustment)
	fmt.Fprintln(w)

	if cfg.ProfilePath == "" {
		fmt.Fprintln(w, "To skip onboarding, save a profile and point to it:")
		fmt.Fprintln(w, "  caltrack target --height 180 --weight 80 --age 30 --gender male --activity moderate --save profile.yaml")
		fmt.Fprintln(w, "  export CALTRACK_PROFILE=profile.yaml")
	} else if p, err := LoadProfile(cfg.ProfilePath); err != nil {
		fmt.Fprintf(w, "⚠️  %v\n", err)
	} else {
		fmt.Fprintf(w, "✅ Profile loaded (%s, %s)\n", label(string(p.Gender)), label(string(p.ActivityLevel)))
	}
	fmt.Fprintln(w)
}
