package engine

import (
	"alcyxob/periodization-engine/internal/domain"
)

// Recovery scoring weights. Sleep hours below the 7h threshold earn a lower
// marginal weight: insufficient sleep is worth less per hour.
const (
	sleepHoursThreshold    = 7.0
	sleepHoursLowWeight    = 0.8
	sleepHoursFullWeight   = 1.2
	sleepQualityWeight     = 1.0
	nutritionWeight        = 1.0
	hydrationWeight        = 0.8
	stressManagementWeight = 0.7
	practiceBonus          = 1.5
	recoveryDivisor        = 5.0
	recoveryCap            = 10.0
)

// ValidateRecoveryMarkers rejects any marker outside its declared range.
func ValidateRecoveryMarkers(m domain.RecoveryMarkers) error {
	checks := []struct {
		field    string
		value    float64
		min, max float64
	}{
		{"sleepHours", m.SleepHours, 0, 24},
		{"sleepQuality", m.SleepQuality, 1, 10},
		{"nutrition", m.Nutrition, 1, 10},
		{"hydration", m.Hydration, 1, 10},
		{"stressManagement", m.StressManagement, 1, 10},
	}
	for _, c := range checks {
		if c.value < c.min || c.value > c.max {
			return &ValidationError{Field: c.field, Value: c.value, Min: c.min, Max: c.max}
		}
	}
	return nil
}

// ScoreRecovery converts recovery markers to a score on the canonical 0-10
// scale, capped at 10. Each practiced recovery modality adds a fixed bonus.
func ScoreRecovery(m domain.RecoveryMarkers) (float64, error) {
	if err := ValidateRecoveryMarkers(m); err != nil {
		return 0, err
	}

	var sleepTerm float64
	if m.SleepHours < sleepHoursThreshold {
		sleepTerm = m.SleepHours * sleepHoursLowWeight
	} else {
		sleepTerm = m.SleepHours * sleepHoursFullWeight
	}

	sum := sleepTerm +
		m.SleepQuality*sleepQualityWeight +
		m.Nutrition*nutritionWeight +
		m.Hydration*hydrationWeight +
		m.StressManagement*stressManagementWeight

	for _, practiced := range []bool{
		m.ActiveRecovery, m.MobilityWork, m.Supplementation,
		m.Massage, m.ColdTherapy, m.HeatTherapy,
	} {
		if practiced {
			sum += practiceBonus
		}
	}

	score := sum / recoveryDivisor
	if score > recoveryCap {
		score = recoveryCap
	}
	return score, nil
}
