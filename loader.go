package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadProfile reads a profile from a YAML file and validates it
func LoadProfile(path string) (Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Profile{}, fmt.Errorf("error reading profile: %w", err)
	}

	var p Profile
	if err := yaml.Unmarshal(data, &p); err != nil {
		return Profile{}, fmt.Errorf("error parsing profile %s: %w", path, err)
	}

	p.Gender = ParseGender(string(p.Gender))
	p.ActivityLevel = ParseActivityLevel(string(p.ActivityLevel))

	if err := p.Validate(); err != nil {
		return Profile{}, fmt.Errorf("profile %s: %w", path, err)
	}
	return p, nil
}

// SaveProfile writes a profile as YAML so it can be reused via CALTRACK_PROFILE
func SaveProfile(path string, p Profile) error {
	data, err := yaml.Marshal(p)
	if err != nil {
		return fmt.Errorf("error encoding profile: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}
