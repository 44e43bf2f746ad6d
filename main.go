package main

import (
	"fmt"
	"os"
	"strings"
)

const version = "0.1.0"

func main() {
	// If no command provided (or starts with an interactive option), enter interactive mode
	if len(os.Args) < 2 || (strings.HasPrefix(os.Args[1], "-") && !isCommandFlag(os.Args[1])) {
		handleInteractive(os.Args[1:])
		return
	}

	command := os.Args[1]

	switch command {
	case "target":
		handleTarget(os.Args[2:])
	case "config":
		handleConfig(os.Args[2:])
	case "version", "--version", "-v":
		fmt.Printf("caltrack version %s\n", version)
	case "help", "--help", "-h":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}
}

func isCommandFlag(arg string) bool {
	switch arg {
	case "--version", "-v", "--help", "-h":
		return true
	}
	return false
}

func printUsage() {
	fmt.Print(`caltrack - Daily calorie and exercise log

USAGE:
    caltrack [options]         # Interactive mode (default)
    caltrack <command> [options]

COMMANDS:
    target              Compute the daily calorie target for a profile
    config              Show current configuration
    version             Show version information
    help                Show this help message

INTERACTIVE MODE OPTIONS:
    -p, --profile FILE  Start onboarded with a YAML profile
    --markdown, --md    Show daily summaries in markdown format

TARGET OPTIONS:
    --height CM         Height in centimetres
    --weight KG         Current weight in kilograms
    --goal KG           Goal weight (defaults to current weight;
                        overrides the goal in --profile)
    --age YEARS         Age in years
    --gender G          male, female or other
    --activity LEVEL    sedentary, light, moderate, active, very_active
    --formula NAME      mifflin-st-jeor (default) or harris-benedict
    --profile FILE      Read the profile from YAML instead of flags
    --save FILE         Write the profile to YAML for later sessions
    --markdown, --md    Output in markdown format

ENVIRONMENT:
    CALTRACK_PROFILE          YAML profile used to skip onboarding
    CALTRACK_FORMULA          BMR formula (mifflin-st-jeor, harris-benedict)
    CALTRACK_GOAL_ADJUSTMENT  Daily deficit/surplus in cal (default 500)

    Variables may also be placed in a .env file in the working directory.

EXAMPLES:
    caltrack                                        # Interactive mode
    caltrack --profile me.yaml                      # Skip onboarding
    caltrack target --height 180 --weight 80 --goal 75 --age 30 \
        --gender male --activity moderate
    caltrack target --profile me.yaml --md          # Markdown target
`)
}
