package activity

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/briangreenhill/ftracker/internal/metrics"
	"github.com/briangreenhill/ftracker/internal/workout"
)

type Service struct {
	logger   *slog.Logger
	recorder *metrics.Recorder
}

func NewService(logger *slog.Logger, recorder *metrics.Recorder) *Service {
	return &Service{
		logger:   logger,
		recorder: recorder,
	}
}

// Report writes one summary line per package to w. A package that cannot be
// reported is logged and skipped; its error is part of the returned error.
// Write errors stop the batch.
func (s *Service) Report(w io.Writer, packages []workout.Package) error {
	var errs []error
	for i, p := range packages {
		msg, err := report(p)
		if err != nil {
			s.logger.Error("Error reporting workout",
				slog.Int("index", i),
				slog.String("type", p.Type),
				slog.Any("error", err))
			s.recorder.Failed(p.Type, err)
			errs = append(errs, fmt.Errorf("package %d (%s): %w", i, p.Type, err))
			continue
		}

		if _, err := fmt.Fprintln(w, msg); err != nil {
			return errors.Join(append(errs, fmt.Errorf("writing report: %w", err))...)
		}
		s.recorder.Reported(p.Type)
		s.logger.Debug("Reported workout", slog.Int("index", i), slog.String("type", p.Type))
	}

	return errors.Join(errs...)
}

func report(p workout.Package) (string, error) {
	w, err := p.Workout()
	if err != nil {
		return "", err
	}

	return workout.Report(w)
}
