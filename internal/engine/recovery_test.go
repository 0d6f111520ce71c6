package engine

import (
	"testing"

	"alcyxob/periodization-engine/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func baselineRecovery() domain.RecoveryMarkers {
	return domain.RecoveryMarkers{
		SleepHours:       7,
		SleepQuality:     5,
		Nutrition:        5,
		Hydration:        5,
		StressManagement: 5,
	}
}

func TestScoreRecovery_MonotonicInQualityMarkers(t *testing.T) {
	base := baselineRecovery()
	baseScore, err := ScoreRecovery(base)
	require.NoError(t, err)

	for name, mutate := range map[string]func(*domain.RecoveryMarkers){
		"sleepQuality": func(m *domain.RecoveryMarkers) { m.SleepQuality = 9 },
		"nutrition":    func(m *domain.RecoveryMarkers) { m.Nutrition = 9 },
		"hydration":    func(m *domain.RecoveryMarkers) { m.Hydration = 9 },
	} {
		m := baselineRecovery()
		mutate(&m)
		score, err := ScoreRecovery(m)
		require.NoError(t, err)
		assert.Greater(t, score, baseScore, "marker %s", name)
	}
}

func TestScoreRecovery_ShortSleepEarnsLessPerHour(t *testing.T) {
	short := baselineRecovery()
	short.SleepHours = 6

	full := baselineRecovery()
	full.SleepHours = 8

	shortScore, err := ScoreRecovery(short)
	require.NoError(t, err)
	fullScore, err := ScoreRecovery(full)
	require.NoError(t, err)

	// 6h at the reduced weight vs 8h at the full weight.
	assert.InDelta(t, (8*1.2-6*0.8)/5, fullScore-shortScore, 1e-9)
}

func TestScoreRecovery_PracticeBonuses(t *testing.T) {
	plain := baselineRecovery()
	plainScore, err := ScoreRecovery(plain)
	require.NoError(t, err)

	practiced := baselineRecovery()
	practiced.ActiveRecovery = true
	practiced.MobilityWork = true
	practiced.ColdTherapy = true
	practicedScore, err := ScoreRecovery(practiced)
	require.NoError(t, err)

	assert.InDelta(t, plainScore+3*1.5/5, practicedScore, 1e-9)
}

func TestScoreRecovery_CappedAtTen(t *testing.T) {
	m := domain.RecoveryMarkers{
		SleepHours:       10,
		SleepQuality:     10,
		Nutrition:        10,
		Hydration:        10,
		StressManagement: 10,
		ActiveRecovery:   true,
		MobilityWork:     true,
		Supplementation:  true,
		Massage:          true,
		ColdTherapy:      true,
		HeatTherapy:      true,
	}
	score, err := ScoreRecovery(m)
	require.NoError(t, err)
	assert.Equal(t, 10.0, score)
}

func TestScoreRecovery_RejectsOutOfRangeMarkers(t *testing.T) {
	m := baselineRecovery()
	m.Hydration = 0

	_, err := ScoreRecovery(m)
	require.Error(t, err)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "hydration", verr.Field)
}
