package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/hadisv/glcourse/internal/logging"
)

type Settings struct {
	Width            int     `json:"width"`
	Height           int     `json:"height"`
	Mode             string  `json:"mode"`
	ParticleCount    int     `json:"particle_count"`
	FrameIntervalMs  int     `json:"frame_interval_ms"`
	MouseSensitivity float32 `json:"mouse_sensitivity"`
	LinearSpeed      float32 `json:"linear_speed"`
	FOVDegrees       float32 `json:"fov_degrees"`
}

func Default() *Settings {
	return &Settings{
		Width:            600,
		Height:           600,
		Mode:             "snow",
		ParticleCount:    10000,
		FrameIntervalMs:  20,
		MouseSensitivity: 0.1,
		LinearSpeed:      0.15,
		FOVDegrees:       70,
	}
}

func GetSettingsPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	configDir := filepath.Join(homeDir, ".config", "glcourse")
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return "", err
	}
	return filepath.Join(configDir, "settings.json"), nil
}

func LoadSettings(logger logging.Logger) (*Settings, error) {
	settingsPath, err := GetSettingsPath()
	if err != nil {
		return nil, err
	}
	return LoadSettingsFrom(settingsPath, logger)
}

// LoadSettingsFrom never fails on bad content: unknown keys and invalid
// values are reported through logger and replaced by defaults.
func LoadSettingsFrom(settingsPath string, logger logging.Logger) (*Settings, error) {
	defaultSettings := Default()

	data, err := os.ReadFile(settingsPath)
	if err != nil {
		if os.IsNotExist(err) {
			logger.Infof("Creating default settings file at %s", settingsPath)
			if err := createDefaultSettings(settingsPath, defaultSettings); err != nil {
				logger.Errorf("Failed to create default settings file: %v", err)
			}
			return defaultSettings, nil
		}
		return nil, err
	}

	// Check for unrecognised keys
	var rawSettings map[string]interface{}
	if err := json.Unmarshal(data, &rawSettings); err != nil {
		logger.Warnf("Invalid settings file, using defaults: %v", err)
		return defaultSettings, nil
	}

	knownKeys := getKnownKeys(Settings{})
	for key := range rawSettings {
		if !knownKeys[key] {
			logger.Warnf("Unrecognised setting key '%s' in settings file", key)
		}
	}

	// Missing keys keep their defaults
	settings := Default()
	if err := json.Unmarshal(data, settings); err != nil {
		logger.Warnf("Invalid settings file, using defaults: %v", err)
		return defaultSettings, nil
	}

	settings.validate(defaultSettings, logger)
	return settings, nil
}

func (s *Settings) validate(d *Settings, logger logging.Logger) {
	if s.Width <= 0 || s.Height <= 0 {
		logger.Warnf("Invalid window size %dx%d, using default %dx%d", s.Width, s.Height, d.Width, d.Height)
		s.Width, s.Height = d.Width, d.Height
	}
	if s.Mode != "snow" && s.Mode != "rain" {
		logger.Warnf("Invalid mode %q, must be \"snow\" or \"rain\", using default %q", s.Mode, d.Mode)
		s.Mode = d.Mode
	}
	if s.ParticleCount <= 0 {
		logger.Warnf("Invalid particle_count %d, using default %d", s.ParticleCount, d.ParticleCount)
		s.ParticleCount = d.ParticleCount
	}
	if s.FrameIntervalMs <= 0 {
		logger.Warnf("Invalid frame_interval_ms %d, using default %d", s.FrameIntervalMs, d.FrameIntervalMs)
		s.FrameIntervalMs = d.FrameIntervalMs
	}
	if s.MouseSensitivity <= 0 {
		logger.Warnf("Invalid mouse_sensitivity %.2f, using default %.2f", s.MouseSensitivity, d.MouseSensitivity)
		s.MouseSensitivity = d.MouseSensitivity
	}
	if s.LinearSpeed <= 0 {
		logger.Warnf("Invalid linear_speed %.2f, using default %.2f", s.LinearSpeed, d.LinearSpeed)
		s.LinearSpeed = d.LinearSpeed
	}
	if s.FOVDegrees <= 0 || s.FOVDegrees >= 180 {
		logger.Warnf("Invalid fov_degrees %.1f, must be between 0 and 180, using default %.1f",
			s.FOVDegrees, d.FOVDegrees)
		s.FOVDegrees = d.FOVDegrees
	}
}

func createDefaultSettings(path string, settings *Settings) error {
	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func getKnownKeys(v interface{}) map[string]bool {
	keys := make(map[string]bool)
	t := reflect.TypeOf(v)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if jsonTag := field.Tag.Get("json"); jsonTag != "" {
			// Handle json tags like "field,omitempty"
			tagName := strings.Split(jsonTag, ",")[0]
			if tagName != "-" {
				keys[tagName] = true
			}
		}
	}
	return keys
}
