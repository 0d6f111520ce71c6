package engine

import (
	"math"

	"alcyxob/periodization-engine/internal/domain"
)

// markerWeights is one per-goal weighting of the raw fatigue markers.
// Percent- and bpm-scaled markers (strength decrease, resting HR delta)
// carry small weights so a 10%/10bpm change lands near one 1-10 unit.
type markerWeights struct {
	RPEIncrease           float64
	StrengthDecrease      float64
	Soreness              float64
	SleepQuality          float64
	Motivation            float64
	RestingHeartRateDelta float64
	Mood                  float64
	Stress                float64
	Appetite              float64
	TechnicalProficiency  float64
}

// fatigueWeights holds the per-goal tables. Goals without a dedicated table
// use defaultWeights; the set of keys here is fixed, not user-extensible.
var fatigueWeights = map[domain.TrainingGoal]markerWeights{
	domain.GoalStrength: {
		RPEIncrease: 0.9, StrengthDecrease: 0.20, Soreness: 0.7,
		SleepQuality: 0.8, Motivation: 0.6, RestingHeartRateDelta: 0.10,
		Mood: 0.4, Stress: 0.4, Appetite: 0.3, TechnicalProficiency: 1.0,
	},
	domain.GoalHypertrophy: {
		RPEIncrease: 0.8, StrengthDecrease: 0.10, Soreness: 1.1,
		SleepQuality: 0.9, Motivation: 0.7, RestingHeartRateDelta: 0.10,
		Mood: 0.5, Stress: 0.5, Appetite: 0.6, TechnicalProficiency: 0.3,
	},
	domain.GoalPower: {
		RPEIncrease: 1.0, StrengthDecrease: 0.18, Soreness: 0.6,
		SleepQuality: 0.8, Motivation: 0.7, RestingHeartRateDelta: 0.10,
		Mood: 0.4, Stress: 0.4, Appetite: 0.3, TechnicalProficiency: 0.9,
	},
	domain.GoalEndurance: {
		RPEIncrease: 0.8, StrengthDecrease: 0.08, Soreness: 0.7,
		SleepQuality: 0.9, Motivation: 0.7, RestingHeartRateDelta: 0.35,
		Mood: 0.5, Stress: 0.6, Appetite: 0.5, TechnicalProficiency: 0.2,
	},
}

var defaultWeights = markerWeights{
	RPEIncrease: 0.8, StrengthDecrease: 0.12, Soreness: 0.9,
	SleepQuality: 0.8, Motivation: 0.7, RestingHeartRateDelta: 0.15,
	Mood: 0.5, Stress: 0.5, Appetite: 0.4, TechnicalProficiency: 0.5,
}

// levelMultipliers scale the fatigue score by experience: beginners register
// higher fatigue for identical inputs, elite trainees lower.
var levelMultipliers = map[domain.TrainingLevel]float64{
	domain.LevelBeginner:     1.2,
	domain.LevelIntermediate: 1.0,
	domain.LevelAdvanced:     0.9,
	domain.LevelElite:        0.8,
}

// ValidateFatigueMarkers rejects any marker outside its declared range.
// Scoring never clamps bad inputs into range.
func ValidateFatigueMarkers(m domain.FatigueMarkers) error {
	checks := []struct {
		field    string
		value    float64
		min, max float64
	}{
		{"rpeIncrease", m.RPEIncrease, 0, 10},
		{"strengthDecrease", m.StrengthDecrease, 0, 100},
		{"soreness", m.Soreness, 1, 10},
		{"sleepQuality", m.SleepQuality, 1, 10},
		{"motivation", m.Motivation, 1, 10},
		{"restingHeartRateDelta", m.RestingHeartRateDelta, -30, 30},
		{"moodScore", m.MoodScore, 1, 10},
		{"stressScore", m.StressScore, 1, 10},
		{"appetiteChange", m.AppetiteChange, -5, 5},
		{"technicalProficiency", m.TechnicalProficiency, 1, 10},
	}
	for _, c := range checks {
		if c.value < c.min || c.value > c.max {
			return &ValidationError{Field: c.field, Value: c.value, Min: c.min, Max: c.max}
		}
	}
	return nil
}

// ScoreFatigue converts raw markers to a fatigue score on the canonical 0-10
// scale. Sleep quality, motivation, mood, and technical proficiency are
// inverted (low values signal fatigue); appetite contributes its absolute
// deviation. The result is not clamped upward.
func ScoreFatigue(m domain.FatigueMarkers, level domain.TrainingLevel, goal domain.TrainingGoal, individualTolerance float64) (float64, error) {
	if err := ValidateFatigueMarkers(m); err != nil {
		return 0, err
	}
	if individualTolerance <= 0 {
		individualTolerance = 1.0
	}

	w, ok := fatigueWeights[goal]
	if !ok {
		w = defaultWeights
	}

	sum := m.RPEIncrease*w.RPEIncrease +
		m.StrengthDecrease*w.StrengthDecrease +
		m.Soreness*w.Soreness +
		(10-m.SleepQuality)*w.SleepQuality +
		(10-m.Motivation)*w.Motivation +
		math.Max(0, m.RestingHeartRateDelta)*w.RestingHeartRateDelta +
		(10-m.MoodScore)*w.Mood +
		m.StressScore*w.Stress +
		math.Abs(m.AppetiteChange)*w.Appetite +
		(10-m.TechnicalProficiency)*w.TechnicalProficiency

	mult, ok := levelMultipliers[level]
	if !ok {
		mult = 1.0
	}

	return sum / 10 * mult * individualTolerance, nil
}

// AssessFatigueState turns a fatigue/recovery score pair into the readiness
// snapshot consumed by the UI.
func AssessFatigueState(fatigueScore, recoveryScore float64) domain.FatigueManagementState {
	// Recovery above or below the neutral 5 shifts the effective fatigue.
	adjusted := fatigueScore - (recoveryScore-5)*0.3

	state := domain.FatigueManagementState{
		CurrentFatigue:       math.Min(fatigueScore, 10),
		RecoveryCapacity:     recoveryScore,
		PerformanceDecrement: clamp((fatigueScore-4)*5, 0, 30),
		ReadinessToTrain:     clamp(10-adjusted, 0, 10),
	}

	switch {
	case adjusted < 4:
		state.RecommendedAction = domain.ActionProceed
	case adjusted < 5.5:
		state.RecommendedAction = domain.ActionReduceVolume
	case adjusted < 7:
		state.RecommendedAction = domain.ActionReduceIntensity
	case adjusted < 8.5:
		state.RecommendedAction = domain.ActionActiveRecovery
	default:
		state.RecommendedAction = domain.ActionRest
	}
	return state
}

func clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
