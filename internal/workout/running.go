package workout

const (
	runningCaloriesMeanSpeedMultiplier = 18
	runningCaloriesMeanSpeedShift      = 20
)

type Running struct {
	Training
}

func NewRunning(action int, duration, weight float64) *Running {
	return &Running{Training: Training{Action: action, Duration: duration, Weight: weight}}
}

func (r *Running) SpentCalories() float64 {
	meanSpeed := r.MeanSpeed()
	return (runningCaloriesMeanSpeedMultiplier*meanSpeed - runningCaloriesMeanSpeedShift) *
		r.Weight / MInKm * MinInH * r.Duration
}

func (r *Running) ShowTrainingInfo() (InfoMessage, error) {
	return showTrainingInfo("Running", r.Duration, r)
}
