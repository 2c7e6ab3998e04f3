package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultEmoji marks a completed day when nothing else is configured.
const DefaultEmoji = "✅"

// Weekday label sets accepted by the labels setting.
const (
	LabelsDefault  = "default"
	LabelsJapanese = "japanese"
)

// Settings are the defaults applied to flags the user did not set.
type Settings struct {
	Emoji  string `yaml:"emoji"`
	Weekly bool   `yaml:"weekly"`
	Labels string `yaml:"labels"`
}

// UseAltLabels reports whether the Japanese weekday labels are selected.
func (s Settings) UseAltLabels() bool {
	return s.Labels == LabelsJapanese
}

// Defaults returns the built-in settings.
func Defaults() Settings {
	return Settings{
		Emoji:  DefaultEmoji,
		Labels: LabelsDefault,
	}
}

// FilePath returns the path of config.yaml, or "" when no config directory
// can be resolved.
func FilePath() string {
	dir := Dir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, "config.yaml")
}

// Load returns the effective settings: built-in defaults, overlaid by
// config.yaml when it exists, overlaid by HABITMD_* environment variables.
func Load() (Settings, error) {
	settings := Defaults()

	if path := FilePath(); path != "" {
		if err := loadFile(path, &settings); err != nil {
			return Settings{}, err
		}
	}

	if err := applyEnv(&settings); err != nil {
		return Settings{}, err
	}
	return settings, nil
}

// loadFile overlays settings with the fields present in the YAML file.
// A missing file is not an error.
func loadFile(path string, settings *Settings) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, settings); err != nil {
		return fmt.Errorf("parsing config %s: %w", path, err)
	}
	return validateLabels(settings.Labels, path)
}

// applyEnv overlays settings with HABITMD_EMOJI, HABITMD_WEEKLY and
// HABITMD_LABELS.
func applyEnv(settings *Settings) error {
	if emoji := os.Getenv("HABITMD_EMOJI"); emoji != "" {
		settings.Emoji = emoji
	}

	if weekly := os.Getenv("HABITMD_WEEKLY"); weekly != "" {
		value, err := strconv.ParseBool(weekly)
		if err != nil {
			return fmt.Errorf("invalid HABITMD_WEEKLY value %q: want true or false", weekly)
		}
		settings.Weekly = value
	}

	if labels := os.Getenv("HABITMD_LABELS"); labels != "" {
		settings.Labels = strings.ToLower(labels)
		if err := validateLabels(settings.Labels, "HABITMD_LABELS"); err != nil {
			return err
		}
	}
	return nil
}

func validateLabels(labels, source string) error {
	switch labels {
	case LabelsDefault, LabelsJapanese:
		return nil
	default:
		return fmt.Errorf("%s: labels must be %q or %q, got %q", source, LabelsDefault, LabelsJapanese, labels)
	}
}
