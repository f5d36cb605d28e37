package activity

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/briangreenhill/ftracker/internal/workout"
	"github.com/tkrajina/gpxgo/gpx"
)

var (
	ErrEmptyTrack      = errors.New("gpx file has no track points")
	ErrUnsupportedType = errors.New("workout type cannot be derived from a gpx track")
)

// Activity is a GPX track summarized into the values a workout needs.
type Activity struct {
	Name     string
	Distance float64 // meters
	Duration float64 // hours
	Uphill   float64
	Downhill float64
}

func ParseGPX(data []byte) (Activity, error) {
	g, err := gpx.ParseBytes(data)
	if err != nil {
		return Activity{}, fmt.Errorf("parsing gpx: %w", err)
	}

	var firstPoint *gpx.GPXPoint
	for i := range g.Tracks {
		for j := range g.Tracks[i].Segments {
			if points := g.Tracks[i].Segments[j].Points; len(points) > 0 && firstPoint == nil {
				firstPoint = &points[0]
			}
		}
	}
	if firstPoint == nil {
		return Activity{}, ErrEmptyTrack
	}

	name := g.Name
	if name == "" {
		name = g.Tracks[0].Name
	}
	if name == "" {
		start := g.Time
		if start == nil && !firstPoint.Timestamp.IsZero() {
			start = &firstPoint.Timestamp
		}
		name = defaultName(start)
	}

	updown := g.UphillDownhill()

	return Activity{
		Name:     name,
		Distance: g.Length2D(),
		Duration: g.Duration() / time.Hour.Seconds(),
		Uphill:   updown.Uphill,
		Downhill: updown.Downhill,
	}, nil
}

func defaultName(start *time.Time) string {
	switch {
	case start == nil:
		return "Workout"
	case start.Hour() >= 18:
		return "Evening Workout"
	case start.Hour() >= 12:
		return "Afternoon Workout"
	default:
		return "Morning Workout"
	}
}

// Steps estimates the step count over the track distance.
func (a Activity) Steps() int {
	return int(math.Round(a.Distance / workout.LenStep))
}

// Package converts the track into a raw sensor record. Only step based
// workouts can be derived: a track carries no pool geometry.
func (a Activity) Package(workoutType string, weight, height float64) (workout.Package, error) {
	steps := float64(a.Steps())

	switch workoutType {
	case workout.TypeRunning:
		return workout.Package{Type: workoutType, Data: []float64{steps, a.Duration, weight}}, nil
	case workout.TypeWalking:
		return workout.Package{Type: workoutType, Data: []float64{steps, a.Duration, weight, height}}, nil
	case workout.TypeSwimming:
		return workout.Package{}, fmt.Errorf("%w: %s", ErrUnsupportedType, workoutType)
	default:
		return workout.Package{}, fmt.Errorf("%w: %q", workout.ErrUnknownWorkoutType, workoutType)
	}
}
