package metrics

import (
	"errors"
	"fmt"
	"slices"

	"github.com/briangreenhill/ftracker/internal/workout"
	"github.com/prometheus/client_golang/prometheus"
)

const (
	ReasonUnknownType      = "unknown_type"
	ReasonInvalidArguments = "invalid_arguments"
	ReasonDivisionByZero   = "division_by_zero"
	ReasonOther            = "other"

	// TypeUnknown replaces workout codes that are not recognized, keeping the
	// type label bounded.
	TypeUnknown = "unknown"
)

// Recorder counts reported and failed workouts on its own registry.
type Recorder struct {
	registry *prometheus.Registry
	reported *prometheus.CounterVec
	failed   *prometheus.CounterVec
}

func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		reported: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "ftracker",
			Name:      "workouts_reported_total",
			Help:      "Number of workout summaries reported, by workout type.",
		}, []string{"type"}),
		failed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "ftracker",
			Name:      "workouts_failed_total",
			Help:      "Number of workout packages that could not be reported, by type and reason.",
		}, []string{"type", "reason"}),
	}
	r.registry.MustRegister(r.reported, r.failed)
	return r
}

func (r *Recorder) Reported(workoutType string) {
	r.reported.WithLabelValues(typeLabel(workoutType)).Inc()
}

func (r *Recorder) Failed(workoutType string, err error) {
	r.failed.WithLabelValues(typeLabel(workoutType), Reason(err)).Inc()
}

func typeLabel(workoutType string) string {
	if slices.Contains(workout.Types(), workoutType) {
		return workoutType
	}
	return TypeUnknown
}

// Reason maps a package error to its failure label.
func Reason(err error) string {
	switch {
	case errors.Is(err, workout.ErrUnknownWorkoutType):
		return ReasonUnknownType
	case errors.Is(err, workout.ErrInvalidArguments):
		return ReasonInvalidArguments
	case errors.Is(err, workout.ErrDivisionByZero):
		return ReasonDivisionByZero
	default:
		return ReasonOther
	}
}

// WriteTextfile writes all counters to path in the Prometheus text format.
func (r *Recorder) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, r.registry); err != nil {
		return fmt.Errorf("writing metrics file: %w", err)
	}
	return nil
}
