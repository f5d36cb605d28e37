// Package config loads workout packages from YAML files and runtime settings
// from the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"github.com/briangreenhill/ftracker/internal/workout"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

var ErrNoPackages = errors.New("no packages defined")

// Config is the root structure of a packages file.
type Config struct {
	Packages []PackageConfig `yaml:"packages"`
}

// PackageConfig is one sensor record: a workout code and its positional values.
type PackageConfig struct {
	Type string    `yaml:"type"`
	Data []float64 `yaml:"data"`
}

// LoadPackages reads and parses a YAML packages file.
func LoadPackages(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading packages file: %w", err)
	}

	return ParsePackages(data)
}

func ParsePackages(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing packages file: %w", err)
	}

	if len(cfg.Packages) == 0 {
		return nil, ErrNoPackages
	}

	return &cfg, nil
}

// Workouts returns the packages in file order. Codes are not checked here.
func (c *Config) Workouts() []workout.Package {
	packages := make([]workout.Package, 0, len(c.Packages))
	for _, p := range c.Packages {
		packages = append(packages, workout.Package{Type: p.Type, Data: p.Data})
	}
	return packages
}

// SamplePackages returns the reference records reported when no file is given.
func SamplePackages() []workout.Package {
	return []workout.Package{
		{Type: workout.TypeSwimming, Data: []float64{720, 1, 80, 25, 40}},
		{Type: workout.TypeRunning, Data: []float64{15000, 1, 75}},
		{Type: workout.TypeWalking, Data: []float64{9000, 1, 75, 180}},
	}
}

const (
	EnvLogLevel    = "FTRACKER_LOG_LEVEL"
	EnvMetricsFile = "FTRACKER_METRICS_FILE"
)

type Settings struct {
	LogLevel    slog.Level
	MetricsFile string
}

// LoadSettings reads settings from the environment after loading the given
// dotenv files. Missing dotenv files are ignored.
func LoadSettings(envFiles ...string) (Settings, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Settings{}, fmt.Errorf("loading %s: %w", f, err)
		}
	}

	s := Settings{
		LogLevel:    slog.LevelInfo,
		MetricsFile: os.Getenv(EnvMetricsFile),
	}

	if v, ok := os.LookupEnv(EnvLogLevel); ok && v != "" {
		if err := s.LogLevel.UnmarshalText([]byte(strings.TrimSpace(v))); err != nil {
			return Settings{}, fmt.Errorf("parsing %s: %w", EnvLogLevel, err)
		}
	}

	return s, nil
}
