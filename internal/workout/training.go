// Package workout computes distance, mean speed and spent calories for the
// supported training types and renders the summary line for each of them.
package workout

import (
	"errors"
	"fmt"
	"math"
)

const (
	MInKm  = 1000
	MinInH = 60

	// LenStep is the distance in meters covered by one step.
	LenStep     = 0.65
	// SwimLenStep is the distance in meters covered by one stroke.
	SwimLenStep = 1.38
)

var ErrDivisionByZero = errors.New("division by zero")

type Workout interface {
	Distance() float64
	MeanSpeed() float64
	SpentCalories() float64
	ShowTrainingInfo() (InfoMessage, error)
}

// Training holds the sensor values shared by every workout type. It has no
// calorie formula of its own, so it does not satisfy Workout.
type Training struct {
	Action   int
	Duration float64
	Weight   float64
}

// Distance returns the distance in km.
func (t Training) Distance() float64 {
	return float64(t.Action) * LenStep / MInKm
}

// MeanSpeed returns the average speed in km/h.
func (t Training) MeanSpeed() float64 {
	return t.Distance() / t.Duration
}

func showTrainingInfo(trainingType string, duration float64, w Workout) (InfoMessage, error) {
	info := InfoMessage{
		TrainingType: trainingType,
		Duration:     duration,
		Distance:     w.Distance(),
		Speed:        w.MeanSpeed(),
		Calories:     w.SpentCalories(),
	}

	fields := []struct {
		name  string
		value float64
	}{
		{"duration", info.Duration},
		{"distance", info.Distance},
		{"speed", info.Speed},
		{"calories", info.Calories},
	}
	for _, f := range fields {
		if math.IsInf(f.value, 0) || math.IsNaN(f.value) {
			return InfoMessage{}, fmt.Errorf("%s: %s is not finite: %w", trainingType, f.name, ErrDivisionByZero)
		}
	}

	return info, nil
}
