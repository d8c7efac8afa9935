package recommend

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadPreferences reads a YAML preference file.
//
//	season: winter
//	budget: 1200
//	party: 2
//	outdoor: true
func LoadPreferences(path string) (*Preferences, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read preferences: %w", err)
	}

	var p Preferences
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("failed to parse preferences: %w", err)
	}
	return &p, nil
}
