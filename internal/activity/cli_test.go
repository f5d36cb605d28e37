package activity

import (
	"bytes"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/briangreenhill/ftracker/internal/config"
	"github.com/briangreenhill/ftracker/internal/workout"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCLI(buf *bytes.Buffer) *CLI {
	return NewCLI(buf, slog.New(slog.NewTextHandler(io.Discard, nil)), config.Settings{LogLevel: slog.LevelInfo})
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestCLI_RunSamples(t *testing.T) {
	for _, args := range [][]string{nil, {"run"}} {
		var buf bytes.Buffer
		require.NoError(t, newTestCLI(&buf).Run(args))

		lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
		require.Len(t, lines, 3)
		assert.Contains(t, lines[0], "Тип тренировки: Swimming;")
		assert.Contains(t, lines[1], "Тип тренировки: Running;")
		assert.Contains(t, lines[2], "Тип тренировки: SportsWalking;")
	}
}

func TestCLI_RunPackagesFile(t *testing.T) {
	packages := writeFile(t, "packages.yaml", `
packages:
  - type: RUN
    data: [15000, 1, 75]
  - type: XYZ
    data: [1, 2, 3]
`)
	metricsFile := filepath.Join(t.TempDir(), "ftracker.prom")

	var buf bytes.Buffer
	err := newTestCLI(&buf).Run([]string{"run", "--packages", packages, "--metrics-file", metricsFile})
	assert.ErrorIs(t, err, workout.ErrUnknownWorkoutType)
	assert.Equal(t, "Тип тренировки: Running; Длительность: 1.000 ч.; Дистанция: 9.750 км; Ср. скорость: 9.750 км/ч; Потрачено ккал: 699.750.\n", buf.String())

	data, err := os.ReadFile(metricsFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), `ftracker_workouts_reported_total{type="RUN"} 1`)
	assert.Contains(t, string(data), `ftracker_workouts_failed_total{reason="unknown_type",type="unknown"} 1`)
}

func TestCLI_RunMissingPackagesFile(t *testing.T) {
	var buf bytes.Buffer
	err := newTestCLI(&buf).Run([]string{"run", "--packages", filepath.Join(t.TempDir(), "missing.yaml")})
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestCLI_GPX(t *testing.T) {
	gpxFile := writeFile(t, "lunch.gpx", lunchRunGPX)

	t.Run("running", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, newTestCLI(&buf).Run([]string{"gpx", "--gpx", gpxFile, "--weight", "75"}))
		assert.True(t, strings.HasPrefix(buf.String(), "Тип тренировки: Running; Длительность: 1.000 ч.; Дистанция: 1.1"))
	})

	t.Run("walking", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, newTestCLI(&buf).Run([]string{"gpx", "--gpx", gpxFile, "--type", "WLK", "--weight", "75", "--height", "180"}))
		assert.True(t, strings.HasPrefix(buf.String(), "Тип тренировки: SportsWalking;"))
	})

	t.Run("walking without height", func(t *testing.T) {
		var buf bytes.Buffer
		err := newTestCLI(&buf).Run([]string{"gpx", "--gpx", gpxFile, "--type", "WLK", "--weight", "75"})
		assert.ErrorIs(t, err, ErrMissingFlag)
	})

	t.Run("swimming", func(t *testing.T) {
		var buf bytes.Buffer
		err := newTestCLI(&buf).Run([]string{"gpx", "--gpx", gpxFile, "--type", "SWM", "--weight", "75"})
		assert.ErrorIs(t, err, ErrUnsupportedType)
	})

	t.Run("missing file", func(t *testing.T) {
		var buf bytes.Buffer
		err := newTestCLI(&buf).Run([]string{"gpx", "--gpx", filepath.Join(t.TempDir(), "none.gpx"), "--weight", "75"})
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("directory", func(t *testing.T) {
		var buf bytes.Buffer
		err := newTestCLI(&buf).Run([]string{"gpx", "--gpx", t.TempDir(), "--weight", "75"})
		assert.ErrorContains(t, err, "gpx file is a directory")
	})
}

func TestCLI_Usage(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, newTestCLI(&buf).Run([]string{"help"}))
	assert.Contains(t, buf.String(), "Usage: ftracker")
	assert.Contains(t, buf.String(), "[--type RUN|WLK]")
	assert.Contains(t, buf.String(), "workout types: SWM, RUN, WLK")

	buf.Reset()
	require.NoError(t, newTestCLI(&buf).Run([]string{"run", "--help"}))
	assert.Contains(t, buf.String(), "Usage: ftracker")
}

func TestCLI_GPXLogsTrackSummary(t *testing.T) {
	gpxFile := writeFile(t, "lunch.gpx", lunchRunGPX)

	var out, logs bytes.Buffer
	cli := NewCLI(&out, slog.New(slog.NewTextHandler(&logs, nil)), config.Settings{LogLevel: slog.LevelInfo})
	require.NoError(t, cli.Run([]string{"gpx", "--gpx", gpxFile, "--weight", "75"}))

	assert.Contains(t, logs.String(), `name="Lunch Run"`)
	assert.Contains(t, logs.String(), "uphill_m=")
	assert.Contains(t, logs.String(), "downhill_m=")
}
