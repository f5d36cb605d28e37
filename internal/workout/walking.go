package workout

import "math"

const (
	walkingCaloriesWeightMultiplier = 0.035
	walkingSpeedHeightMultiplier    = 0.029
)

type SportsWalking struct {
	Training
	Height float64
}

func NewSportsWalking(action int, duration, weight, height float64) *SportsWalking {
	return &SportsWalking{
		Training: Training{Action: action, Duration: duration, Weight: weight},
		Height:   height,
	}
}

// SpentCalories floor-divides speed² by height before applying the
// coefficient, so the second term stays zero until speed² reaches the
// walker's height.
func (w *SportsWalking) SpentCalories() float64 {
	speed := w.MeanSpeed()
	return (walkingCaloriesWeightMultiplier*w.Weight +
		floorDiv(speed*speed, w.Height)*walkingSpeedHeightMultiplier*w.Weight) *
		MinInH * w.Duration
}

// floorDiv returns the floor of the exact quotient a/b. math.Floor(a/b)
// differs when a/b rounds up to an integer: floorDiv(1, 0.1) is 9, not 10.
// A zero b yields NaN.
func floorDiv(a, b float64) float64 {
	mod := math.Mod(a, b)
	div := (a - mod) / b
	if mod != 0 && (b < 0) != (mod < 0) {
		div--
	}
	if div == 0 {
		return math.Copysign(0, a/b)
	}

	floor := math.Floor(div)
	if div-floor > 0.5 {
		floor++
	}
	return floor
}

func (w *SportsWalking) ShowTrainingInfo() (InfoMessage, error) {
	return showTrainingInfo("SportsWalking", w.Duration, w)
}
