package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"
)

// Shell runs the numbered menu over any reader/writer pair
type Shell struct {
	in       *bufio.Reader
	out      io.Writer
	tracker  *Tracker
	opts     []TrackerOption
	echo     bool // repeat answers when input is not a terminal
	markdown bool
}

// NewShell creates a shell. A nil tracker means the user must onboard first.
func NewShell(in io.Reader, out io.Writer, cfg *Config, tracker *Tracker, opts ...TrackerOption) *Shell {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	return &Shell{
		in:      bufio.NewReader(in),
		out:     out,
		tracker: tracker,
		opts:    append(cfg.TrackerOptions(), opts...),
	}
}

// Tracker returns the current tracker, or nil before onboarding
func (s *Shell) Tracker() *Tracker {
	return s.tracker
}

// Run loops until the user exits or input ends
func (s *Shell) Run() error {
	for {
		fmt.Fprintln(s.out)
		fmt.Fprintln(s.out, "Fitness & Diet Tracker Menu:")
		fmt.Fprintln(s.out, "1. Onboard (set up your profile)")
		fmt.Fprintln(s.out, "2. Log Food")
		fmt.Fprintln(s.out, "3. Log Exercise")
		fmt.Fprintln(s.out, "4. View Daily Summary")
		fmt.Fprintln(s.out, "5. Exit")

		choice, err := s.prompt("Enter your choice (1-5): ")
		if err != nil {
			if errors.Is(err, io.EOF) {
				fmt.Fprintln(s.out)
				return nil
			}
			return err
		}

		switch choice {
		case "1":
			err = s.onboard()
		case "2":
			err = s.logFood()
		case "3":
			err = s.logExercise()
		case "4":
			if s.requireTracker() {
				if s.markdown {
					writeDayReportMarkdown(s.out, s.tracker.Summary())
				} else {
					writeDayReport(s.out, s.tracker.Summary())
				}
			}
		case "5":
			fmt.Fprintln(s.out, "Exiting. Keep up the great work!")
			return nil
		default:
			fmt.Fprintln(s.out, "Invalid choice. Try 1-5.")
		}

		if err != nil {
			if errors.Is(err, io.EOF) {
				fmt.Fprintln(s.out)
				return nil
			}
			return err
		}
	}
}

func (s *Shell) requireTracker() bool {
	if s.tracker == nil {
		fmt.Fprintln(s.out, "Please onboard first (option 1).")
		return false
	}
	return true
}

func (s *Shell) onboard() error {
	var p Profile
	var err error

	if p.HeightCm, err = s.promptFloat("Height (cm): "); err != nil {
		return s.invalidInput(err)
	}
	if p.WeightKg, err = s.promptFloat("Current weight (kg): "); err != nil {
		return s.invalidInput(err)
	}
	if p.GoalWeightKg, err = s.promptFloat("Goal weight (kg): "); err != nil {
		return s.invalidInput(err)
	}
	if p.Age, err = s.promptInt("Age (years): "); err != nil {
		return s.invalidInput(err)
	}

	gender, err := s.prompt("Gender (male/female/other): ")
	if err != nil {
		return err
	}
	p.Gender = ParseGender(gender)

	activity, err := s.prompt("Activity level (sedentary/light/moderate/active/very_active): ")
	if err != nil {
		return err
	}
	p.ActivityLevel = ParseActivityLevel(activity)

	tracker, err := NewTracker(p, s.opts...)
	if err != nil {
		return s.invalidInput(err)
	}

	s.tracker = tracker
	writeOnboarding(s.out, tracker.Target())
	return nil
}

func (s *Shell) logFood() error {
	if !s.requireTracker() {
		return nil
	}

	meal, err := s.prompt("Meal name: ")
	if err != nil {
		return err
	}

	calories, err := s.promptFloat("Calories: ")
	if err != nil {
		return s.invalidNumber(err)
	}
	protein, err := s.promptOptionalFloat("Protein (g, optional - enter 0 if unknown): ")
	if err != nil {
		return s.invalidNumber(err)
	}
	carbs, err := s.promptOptionalFloat("Carbs (g, optional): ")
	if err != nil {
		return s.invalidNumber(err)
	}
	fats, err := s.promptOptionalFloat("Fats (g, optional): ")
	if err != nil {
		return s.invalidNumber(err)
	}

	entry, err := s.tracker.LogFood(meal, calories, protein, carbs, fats)
	if err != nil {
		return s.invalidInput(err)
	}

	fmt.Fprintf(s.out, "Logged %s: %s cal.\n", entry.Description, amount(entry.Calories))
	return nil
}

func (s *Shell) logExercise() error {
	if !s.requireTracker() {
		return nil
	}

	activity, err := s.prompt("Activity name: ")
	if err != nil {
		return err
	}

	burned, err := s.promptFloat("Calories burned: ")
	if err != nil {
		return s.invalidNumber(err)
	}

	entry, err := s.tracker.LogExercise(activity, burned)
	if err != nil {
		return s.invalidInput(err)
	}

	fmt.Fprintf(s.out, "Logged %s: %s cal burned.\n", entry.Description, amount(entry.CaloriesBurned))
	return nil
}

// invalidInput reports a bad answer and returns to the menu. EOF is passed
// through so the loop can stop.
func (s *Shell) invalidInput(err error) error {
	if errors.Is(err, io.EOF) {
		return err
	}
	fmt.Fprintf(s.out, "Invalid input: %v. Try again.\n", err)
	return nil
}

func (s *Shell) invalidNumber(err error) error {
	if errors.Is(err, io.EOF) {
		return err
	}
	fmt.Fprintln(s.out, "Invalid number. Try again.")
	return nil
}

func (s *Shell) prompt(question string) (string, error) {
	fmt.Fprint(s.out, question)

	line, err := s.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}

	line = strings.TrimSpace(line)
	if s.echo {
		fmt.Fprintln(s.out, line)
	}
	return line, nil
}

func (s *Shell) promptFloat(question string) (float64, error) {
	answer, err := s.prompt(question)
	if err != nil {
		return 0, err
	}
	return strconv.ParseFloat(answer, 64)
}

func (s *Shell) promptOptionalFloat(question string) (float64, error) {
	answer, err := s.prompt(question)
	if err != nil {
		return 0, err
	}
	if answer == "" {
		return 0, nil
	}
	return strconv.ParseFloat(answer, 64)
}

func (s *Shell) promptInt(question string) (int, error) {
	answer, err := s.prompt(question)
	if err != nil {
		return 0, err
	}
	return strconv.Atoi(answer)
}

// stdinIsTerminal reports whether answers are already visible to the user
func stdinIsTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}
