package activity

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/briangreenhill/ftracker/internal/config"
	"github.com/briangreenhill/ftracker/internal/metrics"
	"github.com/briangreenhill/ftracker/internal/workout"
)

var ErrMissingFlag = errors.New("missing required flag")

type CLI struct {
	writer   io.Writer
	logger   *slog.Logger
	settings config.Settings
	recorder *metrics.Recorder
	service  *Service
}

func NewCLI(w io.Writer, logger *slog.Logger, settings config.Settings) *CLI {
	recorder := metrics.NewRecorder()
	return &CLI{
		writer:   w,
		logger:   logger,
		settings: settings,
		recorder: recorder,
		service:  NewService(logger, recorder),
	}
}

// Run dispatches the subcommand in args. Without arguments the sample
// packages are reported.
func (c *CLI) Run(args []string) error {
	if len(args) == 0 {
		return c.ReportPackages(nil)
	}

	var err error
	switch args[0] {
	case "run":
		err = c.ReportPackages(args[1:])
	case "gpx":
		err = c.ReportGPX(args[1:])
	default:
		c.Usage()
	}

	if errors.Is(err, flag.ErrHelp) {
		return nil
	}
	return err
}

func (c *CLI) Usage() {
	fmt.Fprintf(c.writer, "Usage: ftracker [command] [flags]\n--help show this message\n\n"+
		"\trun [--packages FILE] [--metrics-file FILE]\n"+
		"\tgpx --gpx FILE --weight KG [--type %s] [--height CM] [--metrics-file FILE]\n\n"+
		"workout types: %s\n",
		strings.Join(gpxTypes(), "|"), strings.Join(workout.Types(), ", "))
}

// gpxTypes lists the workout types a gpx track can be reported as.
func gpxTypes() []string {
	var types []string
	for _, t := range workout.Types() {
		if t != workout.TypeSwimming {
			types = append(types, t)
		}
	}
	return types
}

func (c *CLI) newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet("ftracker "+name, flag.ContinueOnError)
	fs.SetOutput(c.writer)
	fs.Usage = c.Usage
	return fs
}

func (c *CLI) ReportPackages(args []string) error {
	fs := c.newFlagSet("run")
	var packagesFile, metricsFile string
	fs.StringVar(&packagesFile, "packages", "", "path to a YAML packages file")
	fs.StringVar(&metricsFile, "metrics-file", c.settings.MetricsFile, "write counters in Prometheus text format to this file")

	if err := fs.Parse(args); err != nil {
		return err
	}

	packages := config.SamplePackages()
	if packagesFile != "" {
		cfg, err := config.LoadPackages(packagesFile)
		if err != nil {
			return err
		}
		packages = cfg.Workouts()
	}

	c.logger.Debug("Reporting packages", slog.Int("count", len(packages)), slog.String("packages_file", packagesFile))

	return c.report(packages, metricsFile)
}

func (c *CLI) ReportGPX(args []string) error {
	fs := c.newFlagSet("gpx")
	var gpxFile, workoutType, metricsFile string
	var weight, height float64
	fs.StringVar(&gpxFile, "gpx", "", "path to gpx file")
	fs.StringVar(&workoutType, "type", workout.TypeRunning, "workout type: "+strings.Join(gpxTypes(), " or "))
	fs.Float64Var(&weight, "weight", 0, "body weight in kg")
	fs.Float64Var(&height, "height", 0, "height in cm, required for WLK")
	fs.StringVar(&metricsFile, "metrics-file", c.settings.MetricsFile, "write counters in Prometheus text format to this file")

	if err := fs.Parse(args); err != nil {
		return err
	}

	if gpxFile == "" || weight <= 0 || (workoutType == workout.TypeWalking && height <= 0) {
		fs.Usage()
		return fmt.Errorf("%w: --gpx and --weight are required, --height as well for %s", ErrMissingFlag, workout.TypeWalking)
	}

	gpxBytes, err := readGPXFile(gpxFile)
	if err != nil {
		return err
	}

	a, err := ParseGPX(gpxBytes)
	if err != nil {
		return err
	}

	c.logger.Info("Imported gpx track",
		slog.String("name", a.Name),
		slog.Float64("distance_m", a.Distance),
		slog.Float64("duration_h", a.Duration),
		slog.Int("steps", a.Steps()),
		slog.Float64("uphill_m", a.Uphill),
		slog.Float64("downhill_m", a.Downhill))

	p, err := a.Package(workoutType, weight, height)
	if err != nil {
		return err
	}

	return c.report([]workout.Package{p}, metricsFile)
}

func (c *CLI) report(packages []workout.Package, metricsFile string) error {
	err := c.service.Report(c.writer, packages)

	if metricsFile != "" {
		if mErr := c.recorder.WriteTextfile(metricsFile); mErr != nil {
			return errors.Join(err, mErr)
		}
	}

	return err
}

func readGPXFile(gpxFile string) ([]byte, error) {
	info, err := os.Stat(gpxFile)
	if err != nil {
		return nil, fmt.Errorf("error reading gpx file: %w", err)
	}

	if info.IsDir() {
		return nil, fmt.Errorf("gpx file is a directory")
	}

	contents, err := os.ReadFile(gpxFile)
	if err != nil {
		return nil, err
	}

	return contents, nil
}
