package engine

import (
	"alcyxob/periodization-engine/internal/domain"
)

// Weights for the combined deload score. Recovery offsets fatigue; a good
// training response (strength gain, muscle growth) offsets it further.
const (
	recoveryWeight         = 0.3
	trainingResponseWeight = 0.5

	// severeFatigueFactor: above this multiple of the threshold a deload is
	// mandatory regardless of recovery or response.
	severeFatigueFactor = 1.2

	// consecutiveHighFatigueLimit weeks of sustained high fatigue force a
	// deload even when the combined score stays under the threshold.
	consecutiveHighFatigueLimit = 3
)

// NeedsDeload decides whether the next week must be a deload.
func NeedsDeload(fatigueScore, recoveryScore float64, response domain.TrainingResponse, cfg domain.PeriodizationConfig, consecutiveHighFatigueWeeks int) bool {
	if fatigueScore > severeFatigueFactor*cfg.FatigueThreshold {
		return true
	}

	responseTerm := (response.StrengthGain + response.MuscleGrowth) / 2 / 2 * trainingResponseWeight
	combined := fatigueScore - recoveryScore*recoveryWeight - responseTerm
	if combined > cfg.FatigueThreshold {
		return true
	}

	if consecutiveHighFatigueWeeks >= consecutiveHighFatigueLimit {
		return true
	}

	// Overtraining heuristic: motivation and strength progress collapsing
	// together while fatigue sits near the threshold.
	if response.Motivation < 5 && response.StrengthGain < 3 && fatigueScore > 0.8*cfg.FatigueThreshold {
		return true
	}

	return false
}

// BaseDeloadStrategy is the starting strategy for a deload type before
// personalization.
func BaseDeloadStrategy(t domain.DeloadType) domain.DeloadStrategy {
	s := domain.DeloadStrategy{Type: t, DurationDays: 7, Timing: domain.TimingPlanned}
	switch t {
	case domain.DeloadVolume:
		s.VolumeReduction = 50
		s.IntensityReduction = 0
	case domain.DeloadIntensity:
		s.VolumeReduction = 0
		s.IntensityReduction = 30
	case domain.DeloadFrequency:
		s.FrequencyReduction = 1
		s.VolumeReduction = 20
	case domain.DeloadCombined:
		s.VolumeReduction = 35
		s.IntensityReduction = 15
	}
	return s
}

// PersonalizeDeload adapts a base strategy to the trainee's current state.
// Output is always clamped: percentages in [0,100], frequency >= 0,
// duration >= 3 days.
func PersonalizeDeload(fatigueScore, recoveryScore float64, level domain.TrainingLevel, goal domain.TrainingGoal, base domain.DeloadStrategy) (domain.DeloadStrategy, error) {
	cfg, err := LookupConfig(level, goal)
	if err != nil {
		return domain.DeloadStrategy{}, err
	}

	s := base
	switch {
	case fatigueScore > 1.2*cfg.FatigueThreshold:
		s.VolumeReduction += 10
		s.IntensityReduction += 5
		s.FrequencyReduction++
		s.DurationDays += 2
	case fatigueScore < 0.8*cfg.FatigueThreshold:
		s.VolumeReduction -= 10
		s.IntensityReduction -= 5
		s.DurationDays -= 2
	}

	if recoveryScore < 5 {
		s.DurationDays += 2
	} else if recoveryScore > 8 {
		s.DurationDays--
	}

	return s.Clamp(), nil
}
