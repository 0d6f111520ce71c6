package engine

import (
	"testing"

	"alcyxob/periodization-engine/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupConfig_CoversEveryLevelGoalPair(t *testing.T) {
	for _, level := range domain.AllLevels {
		for _, goal := range domain.AllGoals {
			cfg, err := LookupConfig(level, goal)
			require.NoError(t, err, "missing config for %s/%s", level, goal)
			assert.Equal(t, level, cfg.Level)
			assert.Equal(t, goal, cfg.Goal)
			assert.Positive(t, cfg.MesoCycleWeeks)
			assert.Positive(t, cfg.DeloadFrequency)
			assert.NotEmpty(t, cfg.PhaseSequence)
			assert.True(t, cfg.VolumeRange.Valid())
			assert.True(t, cfg.IntensityRange.Valid())
			assert.True(t, cfg.FrequencyRange.Valid())
			assert.Positive(t, cfg.FatigueThreshold)
		}
	}
	assert.Equal(t, len(domain.AllLevels)*len(domain.AllGoals), CatalogSize())
}

func TestLookupConfig_UnmappedPairFails(t *testing.T) {
	_, err := LookupConfig(domain.TrainingLevel("pro"), domain.GoalStrength)
	require.Error(t, err)

	var missing *MissingConfigError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, domain.TrainingLevel("pro"), missing.Level)
}

func TestLookupConfig_AdvancedStrength(t *testing.T) {
	cfg, err := LookupConfig(domain.LevelAdvanced, domain.GoalStrength)
	require.NoError(t, err)

	assert.Equal(t, 4, cfg.MesoCycleWeeks)
	assert.Equal(t, 4, cfg.DeloadFrequency)
	assert.Equal(t, []domain.TrainingPhase{
		domain.PhaseHypertrophy, domain.PhaseStrength,
		domain.PhasePower, domain.PhaseDeload,
	}, cfg.PhaseSequence)
	assert.Equal(t, domain.AutoregulationFatigueBased, cfg.Autoregulation)
}

func TestLookupConfig_BeginnersAreNotAutoregulated(t *testing.T) {
	for _, goal := range domain.AllGoals {
		cfg, err := LookupConfig(domain.LevelBeginner, goal)
		require.NoError(t, err)
		assert.Equal(t, domain.AutoregulationNone, cfg.Autoregulation, "goal %s", goal)
	}
}
