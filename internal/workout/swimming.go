package workout

const (
	swimmingCaloriesMeanSpeedShift   = 1.1
	swimmingCaloriesWeightMultiplier = 2
)

type Swimming struct {
	Training
	LengthPool float64
	CountPool  float64
}

func NewSwimming(action int, duration, weight, lengthPool, countPool float64) *Swimming {
	return &Swimming{
		Training:   Training{Action: action, Duration: duration, Weight: weight},
		LengthPool: lengthPool,
		CountPool:  countPool,
	}
}

// Distance counts strokes, not pool laps.
func (s *Swimming) Distance() float64 {
	return float64(s.Action) * SwimLenStep / MInKm
}

// MeanSpeed is derived from the pool geometry and ignores the stroke count.
func (s *Swimming) MeanSpeed() float64 {
	return s.LengthPool * s.CountPool / MInKm / s.Duration
}

func (s *Swimming) SpentCalories() float64 {
	return (s.MeanSpeed() + swimmingCaloriesMeanSpeedShift) * swimmingCaloriesWeightMultiplier * s.Weight
}

func (s *Swimming) ShowTrainingInfo() (InfoMessage, error) {
	return showTrainingInfo("Swimming", s.Duration, s)
}
