package engine

import (
	"alcyxob/periodization-engine/internal/domain"
)

// configKey identifies one catalog entry.
type configKey struct {
	Level domain.TrainingLevel
	Goal  domain.TrainingGoal
}

// catalog is the process-wide, read-only level×goal table. Every phase,
// volume and intensity rule lives here so it stays centrally auditable.
var catalog = buildCatalog()

// LookupConfig resolves the periodization config for a (level, goal) pair.
// Unmapped combinations fail with MissingConfigError; there is deliberately
// no silent default goal.
func LookupConfig(level domain.TrainingLevel, goal domain.TrainingGoal) (domain.PeriodizationConfig, error) {
	cfg, ok := catalog[configKey{Level: level, Goal: goal}]
	if !ok {
		return domain.PeriodizationConfig{}, &MissingConfigError{Level: level, Goal: goal}
	}
	return cfg, nil
}

// CatalogSize reports the number of mapped (level, goal) pairs.
func CatalogSize() int {
	return len(catalog)
}

func buildCatalog() map[configKey]domain.PeriodizationConfig {
	all := make(map[configKey]domain.PeriodizationConfig)
	for _, group := range [][]domain.PeriodizationConfig{
		strengthConfigs(),
		hypertrophyConfigs(),
		enduranceConfigs(),
		powerConfigs(),
		weightLossConfigs(),
		recompositionConfigs(),
		generalFitnessConfigs(),
		sportSpecificConfigs(),
	} {
		for _, cfg := range group {
			all[configKey{Level: cfg.Level, Goal: cfg.Goal}] = cfg
		}
	}
	return all
}

func rr(min, max float64) domain.ScalarRange { return domain.ScalarRange{Min: min, Max: max} }
func ri(min, max int) domain.IntRange        { return domain.IntRange{Min: min, Max: max} }
func rirp(min, max float64) *domain.ScalarRange {
	r := rr(min, max)
	return &r
}

// Shared per-phase prescription tables. Phases absent from these maps fall
// back to the neutral tempo/rest defaults at generation time.
func strengthTempo() map[domain.TrainingPhase]string {
	return map[domain.TrainingPhase]string{
		domain.PhaseAnatomicalAdaptation: "2-0-2-0",
		domain.PhaseHypertrophy:          "3-0-2-0",
		domain.PhaseStrength:             "2-0-1-0",
		domain.PhasePower:                "1-0-X-0",
		domain.PhasePeaking:              "2-0-X-0",
		domain.PhaseDeload:               "2-0-2-0",
	}
}

func strengthRest() map[domain.TrainingPhase]domain.RestRange {
	return map[domain.TrainingPhase]domain.RestRange{
		domain.PhaseHypertrophy: {MinSeconds: 90, MaxSeconds: 150},
		domain.PhaseStrength:    {MinSeconds: 180, MaxSeconds: 300},
		domain.PhasePower:       {MinSeconds: 180, MaxSeconds: 240},
		domain.PhasePeaking:     {MinSeconds: 240, MaxSeconds: 300},
		domain.PhaseDeload:      {MinSeconds: 90, MaxSeconds: 120},
	}
}

func hypertrophyTempo() map[domain.TrainingPhase]string {
	return map[domain.TrainingPhase]string{
		domain.PhaseAnatomicalAdaptation: "2-0-2-0",
		domain.PhaseHypertrophy:          "3-1-2-0",
		domain.PhaseAccumulation:         "3-0-2-0",
		domain.PhaseIntensification:      "2-0-2-0",
		domain.PhaseMetabolic:            "2-0-2-1",
		domain.PhaseDeload:               "2-0-2-0",
	}
}

func hypertrophyRest() map[domain.TrainingPhase]domain.RestRange {
	return map[domain.TrainingPhase]domain.RestRange{
		domain.PhaseHypertrophy:     {MinSeconds: 60, MaxSeconds: 120},
		domain.PhaseAccumulation:    {MinSeconds: 60, MaxSeconds: 120},
		domain.PhaseIntensification: {MinSeconds: 120, MaxSeconds: 180},
		domain.PhaseMetabolic:       {MinSeconds: 30, MaxSeconds: 60},
		domain.PhaseDeload:          {MinSeconds: 90, MaxSeconds: 120},
	}
}

func enduranceRest() map[domain.TrainingPhase]domain.RestRange {
	return map[domain.TrainingPhase]domain.RestRange{
		domain.PhaseAccumulation: {MinSeconds: 30, MaxSeconds: 60},
		domain.PhaseMetabolic:    {MinSeconds: 20, MaxSeconds: 45},
		domain.PhaseDeload:       {MinSeconds: 60, MaxSeconds: 90},
	}
}

func strengthConfigs() []domain.PeriodizationConfig {
	goal := domain.GoalStrength
	techniques := []string{"cluster_sets", "pause_reps", "tempo_work", "heavy_singles", "back_off_sets"}
	return []domain.PeriodizationConfig{
		{
			Level: domain.LevelBeginner, Goal: goal,
			PeriodizationType: domain.PeriodizationLinear,
			MesoCycleWeeks:    4, DeloadFrequency: 6,
			VolumeRange: rr(8, 12), IntensityRange: rr(70, 85), FrequencyRange: ri(3, 4),
			PhaseSequence: []domain.TrainingPhase{
				domain.PhaseAnatomicalAdaptation, domain.PhaseHypertrophy,
				domain.PhaseStrength, domain.PhaseStrength,
			},
			RIRRange: rirp(2, 4), RPERange: rr(6, 8.5),
			TempoByPhase: strengthTempo(), RestByPhase: strengthRest(),
			ExerciseRotation: domain.RotationFixed,
			SpecialTechniques: []string{"pause_reps", "tempo_work"},
			Autoregulation:    domain.AutoregulationNone,
			Nutrition:         domain.NutritionMaintenance,
			RecommendedDeload: domain.DeloadVolume, FatigueThreshold: 6.5,
		},
		{
			Level: domain.LevelIntermediate, Goal: goal,
			PeriodizationType: domain.PeriodizationLinear,
			MesoCycleWeeks:    4, DeloadFrequency: 5,
			VolumeRange: rr(10, 16), IntensityRange: rr(75, 90), FrequencyRange: ri(3, 5),
			PhaseSequence: []domain.TrainingPhase{
				domain.PhaseHypertrophy, domain.PhaseStrength,
				domain.PhaseStrength, domain.PhasePower,
			},
			RIRRange: rirp(1, 3), RPERange: rr(7, 9),
			TempoByPhase: strengthTempo(), RestByPhase: strengthRest(),
			ExerciseRotation:  domain.RotationAlternate,
			SpecialTechniques: techniques[:4],
			Autoregulation:    domain.AutoregulationFatigueBased,
			Nutrition:         domain.NutritionMaintenance,
			RecommendedDeload: domain.DeloadVolume, FatigueThreshold: 7,
		},
		{
			Level: domain.LevelAdvanced, Goal: goal,
			PeriodizationType: domain.PeriodizationBlock,
			MesoCycleWeeks:    4, DeloadFrequency: 4,
			VolumeRange: rr(12, 20), IntensityRange: rr(80, 95), FrequencyRange: ri(4, 6),
			PhaseSequence: []domain.TrainingPhase{
				domain.PhaseHypertrophy, domain.PhaseStrength,
				domain.PhasePower, domain.PhaseDeload,
			},
			RIRRange: rirp(1, 3), RPERange: rr(7, 9.5),
			TempoByPhase: strengthTempo(), RestByPhase: strengthRest(),
			ExerciseRotation:  domain.RotationAlternate,
			SpecialTechniques: techniques,
			Autoregulation:    domain.AutoregulationFatigueBased,
			Nutrition:         domain.NutritionMaintenance,
			RecommendedDeload: domain.DeloadVolume, FatigueThreshold: 7.5,
		},
		{
			Level: domain.LevelElite, Goal: goal,
			PeriodizationType: domain.PeriodizationConjugate,
			MesoCycleWeeks:    3, DeloadFrequency: 3,
			VolumeRange: rr(14, 22), IntensityRange: rr(85, 97), FrequencyRange: ri(4, 6),
			PhaseSequence: []domain.TrainingPhase{
				domain.PhaseAccumulation, domain.PhaseIntensification, domain.PhaseRealization,
			},
			RIRRange: rirp(0, 2), RPERange: rr(7.5, 10),
			TempoByPhase: strengthTempo(), RestByPhase: strengthRest(),
			ExerciseRotation:  domain.RotationRolling,
			SpecialTechniques: techniques,
			Autoregulation:    domain.AutoregulationFatigueBased,
			Nutrition:         domain.NutritionMaintenance,
			RecommendedDeload: domain.DeloadCombined, FatigueThreshold: 8,
		},
	}
}

func hypertrophyConfigs() []domain.PeriodizationConfig {
	goal := domain.GoalHypertrophy
	techniques := []string{"drop_sets", "rest_pause", "supersets", "myo_reps", "lengthened_partials"}
	return []domain.PeriodizationConfig{
		{
			Level: domain.LevelBeginner, Goal: goal,
			PeriodizationType: domain.PeriodizationLinear,
			MesoCycleWeeks:    4, DeloadFrequency: 6,
			VolumeRange: rr(10, 16), IntensityRange: rr(60, 75), FrequencyRange: ri(3, 4),
			PhaseSequence: []domain.TrainingPhase{
				domain.PhaseAnatomicalAdaptation, domain.PhaseHypertrophy,
				domain.PhaseHypertrophy, domain.PhaseHypertrophy,
			},
			RIRRange: rirp(2, 4), RPERange: rr(6, 8),
			TempoByPhase: hypertrophyTempo(), RestByPhase: hypertrophyRest(),
			ExerciseRotation:  domain.RotationFixed,
			SpecialTechniques: []string{"supersets", "drop_sets"},
			Autoregulation:    domain.AutoregulationNone,
			Nutrition:         domain.NutritionSurplus,
			RecommendedDeload: domain.DeloadVolume, FatigueThreshold: 6.5,
		},
		{
			Level: domain.LevelIntermediate, Goal: goal,
			PeriodizationType: domain.PeriodizationUndulating,
			MesoCycleWeeks:    4, DeloadFrequency: 5,
			VolumeRange: rr(12, 20), IntensityRange: rr(65, 80), FrequencyRange: ri(4, 5),
			PhaseSequence: []domain.TrainingPhase{
				domain.PhaseHypertrophy, domain.PhaseHypertrophy,
				domain.PhaseMetabolic, domain.PhaseStrength,
			},
			RIRRange: rirp(1, 3), RPERange: rr(7, 9),
			TempoByPhase: hypertrophyTempo(), RestByPhase: hypertrophyRest(),
			ExerciseRotation:  domain.RotationAlternate,
			SpecialTechniques: techniques[:4],
			Autoregulation:    domain.AutoregulationFatigueBased,
			Nutrition:         domain.NutritionSurplus,
			RecommendedDeload: domain.DeloadVolume, FatigueThreshold: 7,
		},
		{
			Level: domain.LevelAdvanced, Goal: goal,
			PeriodizationType: domain.PeriodizationBlock,
			MesoCycleWeeks:    5, DeloadFrequency: 5,
			VolumeRange: rr(14, 22), IntensityRange: rr(65, 82), FrequencyRange: ri(4, 6),
			PhaseSequence: []domain.TrainingPhase{
				domain.PhaseAccumulation, domain.PhaseAccumulation,
				domain.PhaseIntensification, domain.PhaseMetabolic, domain.PhaseDeload,
			},
			RIRRange: rirp(0, 3), RPERange: rr(7, 9.5),
			TempoByPhase: hypertrophyTempo(), RestByPhase: hypertrophyRest(),
			ExerciseRotation:  domain.RotationAlternate,
			SpecialTechniques: techniques,
			Autoregulation:    domain.AutoregulationFatigueBased,
			Nutrition:         domain.NutritionSurplus,
			RecommendedDeload: domain.DeloadCombined, FatigueThreshold: 7.5,
		},
		{
			Level: domain.LevelElite, Goal: goal,
			PeriodizationType: domain.PeriodizationBlock,
			MesoCycleWeeks:    4, DeloadFrequency: 4,
			VolumeRange: rr(16, 25), IntensityRange: rr(70, 85), FrequencyRange: ri(5, 6),
			PhaseSequence: []domain.TrainingPhase{
				domain.PhaseAccumulation, domain.PhaseAccumulation,
				domain.PhaseIntensification, domain.PhaseDeload,
			},
			RIRRange: rirp(0, 2), RPERange: rr(7.5, 10),
			TempoByPhase: hypertrophyTempo(), RestByPhase: hypertrophyRest(),
			ExerciseRotation:  domain.RotationRolling,
			SpecialTechniques: techniques,
			Autoregulation:    domain.AutoregulationFatigueBased,
			Nutrition:         domain.NutritionSurplus,
			RecommendedDeload: domain.DeloadCombined, FatigueThreshold: 8,
		},
	}
}

func enduranceConfigs() []domain.PeriodizationConfig {
	goal := domain.GoalEndurance
	techniques := []string{"circuits", "emom", "intervals", "tempo_runs"}
	base := domain.PeriodizationConfig{
		Goal:              goal,
		PeriodizationType: domain.PeriodizationLinear,
		TempoByPhase: map[domain.TrainingPhase]string{
			domain.PhaseAccumulation: "2-0-2-0",
			domain.PhaseMetabolic:    "1-0-1-0",
		},
		RestByPhase:       enduranceRest(),
		ExerciseRotation:  domain.RotationFixed,
		Nutrition:         domain.NutritionMaintenance,
		RecommendedDeload: domain.DeloadFrequency,
	}
	levels := []struct {
		level     domain.TrainingLevel
		meso      int
		deload    int
		volume    domain.ScalarRange
		intensity domain.ScalarRange
		freq      domain.IntRange
		seq       []domain.TrainingPhase
		auto      domain.AutoregulationStrategy
		threshold float64
		techCount int
	}{
		{domain.LevelBeginner, 4, 6, rr(10, 14), rr(40, 55), ri(3, 4),
			[]domain.TrainingPhase{domain.PhaseAnatomicalAdaptation, domain.PhaseAccumulation, domain.PhaseAccumulation, domain.PhaseMetabolic},
			domain.AutoregulationNone, 6.5, 2},
		{domain.LevelIntermediate, 4, 5, rr(12, 18), rr(45, 60), ri(4, 5),
			[]domain.TrainingPhase{domain.PhaseAccumulation, domain.PhaseAccumulation, domain.PhaseMetabolic, domain.PhaseIntensification},
			domain.AutoregulationFatigueBased, 7, 3},
		{domain.LevelAdvanced, 4, 4, rr(14, 20), rr(50, 65), ri(4, 6),
			[]domain.TrainingPhase{domain.PhaseAccumulation, domain.PhaseMetabolic, domain.PhaseIntensification, domain.PhaseDeload},
			domain.AutoregulationFatigueBased, 7.5, 4},
		{domain.LevelElite, 3, 3, rr(16, 22), rr(50, 70), ri(5, 6),
			[]domain.TrainingPhase{domain.PhaseAccumulation, domain.PhaseIntensification, domain.PhaseRealization},
			domain.AutoregulationFatigueBased, 8, 4},
	}
	configs := make([]domain.PeriodizationConfig, 0, len(levels))
	for _, l := range levels {
		cfg := base
		cfg.Level = l.level
		cfg.MesoCycleWeeks = l.meso
		cfg.DeloadFrequency = l.deload
		cfg.VolumeRange = l.volume
		cfg.IntensityRange = l.intensity
		cfg.FrequencyRange = l.freq
		cfg.PhaseSequence = l.seq
		cfg.Autoregulation = l.auto
		cfg.FatigueThreshold = l.threshold
		cfg.RPERange = rr(5, 8)
		cfg.SpecialTechniques = techniques[:l.techCount]
		configs = append(configs, cfg)
	}
	return configs
}

func powerConfigs() []domain.PeriodizationConfig {
	goal := domain.GoalPower
	techniques := []string{"contrast_sets", "plyometrics", "ballistic_work", "cluster_sets"}
	base := domain.PeriodizationConfig{
		Goal:              goal,
		PeriodizationType: domain.PeriodizationBlock,
		TempoByPhase: map[domain.TrainingPhase]string{
			domain.PhaseStrength: "2-0-1-0",
			domain.PhasePower:    "1-0-X-0",
			domain.PhasePeaking:  "1-0-X-0",
		},
		RestByPhase: map[domain.TrainingPhase]domain.RestRange{
			domain.PhaseStrength: {MinSeconds: 180, MaxSeconds: 240},
			domain.PhasePower:    {MinSeconds: 180, MaxSeconds: 300},
			domain.PhasePeaking:  {MinSeconds: 240, MaxSeconds: 300},
			domain.PhaseDeload:   {MinSeconds: 120, MaxSeconds: 180},
		},
		ExerciseRotation:  domain.RotationAlternate,
		Nutrition:         domain.NutritionMaintenance,
		RecommendedDeload: domain.DeloadIntensity,
		RPERange:          rr(7, 9),
	}
	levels := []struct {
		level     domain.TrainingLevel
		meso      int
		deload    int
		volume    domain.ScalarRange
		intensity domain.ScalarRange
		freq      domain.IntRange
		seq       []domain.TrainingPhase
		auto      domain.AutoregulationStrategy
		threshold float64
		techCount int
	}{
		{domain.LevelBeginner, 4, 6, rr(6, 10), rr(65, 80), ri(3, 4),
			[]domain.TrainingPhase{domain.PhaseAnatomicalAdaptation, domain.PhaseStrength, domain.PhaseStrength, domain.PhasePower},
			domain.AutoregulationNone, 6.5, 2},
		{domain.LevelIntermediate, 4, 5, rr(6, 12), rr(70, 90), ri(3, 5),
			[]domain.TrainingPhase{domain.PhaseStrength, domain.PhaseStrength, domain.PhasePower, domain.PhasePower},
			domain.AutoregulationFatigueBased, 7, 3},
		{domain.LevelAdvanced, 4, 4, rr(8, 12), rr(75, 95), ri(4, 5),
			[]domain.TrainingPhase{domain.PhaseStrength, domain.PhasePower, domain.PhasePeaking, domain.PhaseDeload},
			domain.AutoregulationFatigueBased, 7.5, 4},
		{domain.LevelElite, 3, 3, rr(8, 14), rr(80, 97), ri(4, 6),
			[]domain.TrainingPhase{domain.PhaseIntensification, domain.PhasePower, domain.PhasePeaking},
			domain.AutoregulationFatigueBased, 8, 4},
	}
	configs := make([]domain.PeriodizationConfig, 0, len(levels))
	for _, l := range levels {
		cfg := base
		cfg.Level = l.level
		cfg.MesoCycleWeeks = l.meso
		cfg.DeloadFrequency = l.deload
		cfg.VolumeRange = l.volume
		cfg.IntensityRange = l.intensity
		cfg.FrequencyRange = l.freq
		cfg.PhaseSequence = l.seq
		cfg.Autoregulation = l.auto
		cfg.FatigueThreshold = l.threshold
		cfg.RIRRange = rirp(2, 4)
		cfg.SpecialTechniques = techniques[:l.techCount]
		configs = append(configs, cfg)
	}
	return configs
}

func weightLossConfigs() []domain.PeriodizationConfig {
	return conditioningFamily(domain.GoalWeightLoss, domain.NutritionDeficit,
		[]string{"circuits", "supersets", "emom", "intervals"},
		rr(50, 70),
		[]domain.TrainingPhase{domain.PhaseMetabolic, domain.PhaseMetabolic, domain.PhaseHypertrophy, domain.PhaseStrength})
}

func recompositionConfigs() []domain.PeriodizationConfig {
	return conditioningFamily(domain.GoalBodyRecomposition, domain.NutritionCycling,
		[]string{"supersets", "drop_sets", "circuits", "rest_pause"},
		rr(60, 80),
		[]domain.TrainingPhase{domain.PhaseHypertrophy, domain.PhaseMetabolic, domain.PhaseStrength, domain.PhaseHypertrophy})
}

func generalFitnessConfigs() []domain.PeriodizationConfig {
	return conditioningFamily(domain.GoalGeneralFitness, domain.NutritionMaintenance,
		[]string{"supersets", "circuits", "tempo_work"},
		rr(50, 70),
		[]domain.TrainingPhase{domain.PhaseAnatomicalAdaptation, domain.PhaseHypertrophy, domain.PhaseStrength, domain.PhaseMaintenance})
}

func sportSpecificConfigs() []domain.PeriodizationConfig {
	return conditioningFamily(domain.GoalSportSpecific, domain.NutritionMaintenance,
		[]string{"contrast_sets", "plyometrics", "intervals", "tempo_work"},
		rr(60, 90),
		[]domain.TrainingPhase{domain.PhaseAccumulation, domain.PhaseIntensification, domain.PhaseRealization, domain.PhasePower})
}

// conditioningFamily covers the four mixed-quality goals whose level
// progression follows the same shape and differs only in intensity band,
// phase emphasis, techniques, and nutrition.
func conditioningFamily(goal domain.TrainingGoal, nutrition domain.NutritionStrategy, techniques []string, intensity domain.ScalarRange, sequence []domain.TrainingPhase) []domain.PeriodizationConfig {
	base := domain.PeriodizationConfig{
		Goal:              goal,
		PeriodizationType: domain.PeriodizationUndulating,
		IntensityRange:    intensity,
		PhaseSequence:     sequence,
		RPERange:          rr(6, 8.5),
		RIRRange:          rirp(1, 3),
		TempoByPhase:      hypertrophyTempo(),
		RestByPhase:       hypertrophyRest(),
		ExerciseRotation:  domain.RotationAlternate,
		Nutrition:         nutrition,
		RecommendedDeload: domain.DeloadCombined,
	}
	levels := []struct {
		level     domain.TrainingLevel
		meso      int
		deload    int
		volume    domain.ScalarRange
		freq      domain.IntRange
		auto      domain.AutoregulationStrategy
		threshold float64
		techCount int
	}{
		{domain.LevelBeginner, 4, 6, rr(8, 13), ri(3, 4), domain.AutoregulationNone, 6.5, 2},
		{domain.LevelIntermediate, 4, 5, rr(10, 16), ri(3, 5), domain.AutoregulationFatigueBased, 7, 3},
		{domain.LevelAdvanced, 4, 4, rr(12, 18), ri(4, 5), domain.AutoregulationFatigueBased, 7.5, len(techniques)},
		{domain.LevelElite, 4, 4, rr(12, 20), ri(4, 6), domain.AutoregulationFatigueBased, 8, len(techniques)},
	}
	configs := make([]domain.PeriodizationConfig, 0, len(levels))
	for _, l := range levels {
		cfg := base
		cfg.Level = l.level
		cfg.MesoCycleWeeks = l.meso
		cfg.DeloadFrequency = l.deload
		cfg.VolumeRange = l.volume
		cfg.FrequencyRange = l.freq
		cfg.Autoregulation = l.auto
		cfg.FatigueThreshold = l.threshold
		cfg.SpecialTechniques = techniques[:l.techCount]
		configs = append(configs, cfg)
	}
	return configs
}
