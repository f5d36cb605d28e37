package workout

import (
	"errors"
	"fmt"
	"math"
)

const (
	TypeSwimming = "SWM"
	TypeRunning  = "RUN"
	TypeWalking  = "WLK"
)

var (
	ErrUnknownWorkoutType = errors.New("unknown workout type")
	ErrInvalidArguments   = errors.New("invalid arguments")
)

// Package is one raw record received from the tracker sensors.
type Package struct {
	Type string
	Data []float64
}

type decoder struct {
	arity int
	build func(data []float64) Workout
}

var decodingTrainings = map[string]decoder{
	TypeSwimming: {
		arity: 5,
		build: func(d []float64) Workout { return NewSwimming(int(d[0]), d[1], d[2], d[3], d[4]) },
	},
	TypeRunning: {
		arity: 3,
		build: func(d []float64) Workout { return NewRunning(int(d[0]), d[1], d[2]) },
	},
	TypeWalking: {
		arity: 4,
		build: func(d []float64) Workout { return NewSportsWalking(int(d[0]), d[1], d[2], d[3]) },
	},
}

// Types returns the recognized workout codes.
func Types() []string {
	return []string{TypeSwimming, TypeRunning, TypeWalking}
}

// ReadPackage builds the workout matching workoutType from positional sensor
// values.
func ReadPackage(workoutType string, data []float64) (Workout, error) {
	d, ok := decodingTrainings[workoutType]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownWorkoutType, workoutType)
	}

	if len(data) != d.arity {
		return nil, fmt.Errorf("%w: %s expects %d values, got %d", ErrInvalidArguments, workoutType, d.arity, len(data))
	}

	if action := data[0]; math.IsNaN(action) || action < 0 || action >= math.MaxInt {
		return nil, fmt.Errorf("%w: %s action count %v is not a valid count", ErrInvalidArguments, workoutType, action)
	}

	return d.build(data), nil
}

func (p Package) Workout() (Workout, error) {
	return ReadPackage(p.Type, p.Data)
}
