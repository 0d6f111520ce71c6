package engine

import (
	"alcyxob/periodization-engine/internal/domain"
)

// GeneratorOptions tunes cycle-generation behavior that is still under
// product discussion.
type GeneratorOptions struct {
	// InsertForcedDeload controls what an autoregulated deload does to the
	// phase sequence. False (default): the deload substitutes the scheduled
	// phase for that week. True: the deload takes week 1 and the configured
	// sequence starts one week later; the total duration stays as requested.
	InsertForcedDeload bool
}

// ExternalFatigueState is the trainee's most recent measured state, fetched
// from the fatigue log before generation. Nil means no prior record; the
// generator then behaves as a pure calendar planner.
type ExternalFatigueState struct {
	// FatigueScore and RecoveryScore are on the canonical 0-10 scale.
	// Percent-scale sources must be normalized at the ingestion boundary.
	FatigueScore                float64
	RecoveryScore               float64
	Response                    domain.TrainingResponse
	ConsecutiveHighFatigueWeeks int
}

// phaseFractions positions a week's training variables inside the config
// ranges. rir/rpe select where in the RIR/RPE windows the week sits.
type phaseFractions struct {
	volume, intensity, rir, rpe float64
}

var fractionsByPhase = map[domain.TrainingPhase]phaseFractions{
	domain.PhaseAnatomicalAdaptation: {volume: 0.5, intensity: 0.2, rir: 0.9, rpe: 0.1},
	domain.PhaseHypertrophy:          {volume: 1.0, intensity: 0.4, rir: 0.5, rpe: 0.5},
	domain.PhaseStrength:             {volume: 0.6, intensity: 0.7, rir: 0.3, rpe: 0.7},
	domain.PhasePower:                {volume: 0.0, intensity: 1.0, rir: 0.2, rpe: 0.8},
	domain.PhasePeaking:              {volume: 0.2, intensity: 0.9, rir: 0.0, rpe: 0.9},
	domain.PhaseMaintenance:          {volume: 0.4, intensity: 0.5, rir: 0.5, rpe: 0.4},
	domain.PhaseRecovery:             {volume: 0.2, intensity: 0.2, rir: 1.0, rpe: 0.1},
	domain.PhaseAccumulation:         {volume: 0.9, intensity: 0.3, rir: 0.6, rpe: 0.5},
	domain.PhaseIntensification:      {volume: 0.5, intensity: 0.8, rir: 0.2, rpe: 0.8},
	domain.PhaseRealization:          {volume: 0.2, intensity: 0.95, rir: 0.1, rpe: 0.9},
	domain.PhaseMetabolic:            {volume: 1.0, intensity: 0.2, rir: 0.6, rpe: 0.6},
}

var neutralFractions = phaseFractions{volume: 0.5, intensity: 0.5, rir: 0.5, rpe: 0.5}

// Neutral prescription fallbacks for phases without a config table entry.
const (
	neutralTempo          = "2-0-2-0"
	neutralRestMinSeconds = 60
	neutralRestMaxSeconds = 120
)

// techniquesByPhase maps each phase to the techniques it can carry. The
// emitted emphasis is the intersection with the config's special-techniques
// list, capped by level.
var techniquesByPhase = map[domain.TrainingPhase][]string{
	domain.PhaseAnatomicalAdaptation: {"tempo_work", "supersets"},
	domain.PhaseHypertrophy:          {"drop_sets", "supersets", "rest_pause", "myo_reps", "lengthened_partials"},
	domain.PhaseStrength:             {"cluster_sets", "pause_reps", "heavy_singles", "tempo_work", "back_off_sets"},
	domain.PhasePower:                {"contrast_sets", "plyometrics", "ballistic_work", "cluster_sets"},
	domain.PhasePeaking:              {"heavy_singles", "ballistic_work"},
	domain.PhaseMaintenance:          {"supersets", "tempo_work"},
	domain.PhaseAccumulation:         {"supersets", "drop_sets", "tempo_work", "myo_reps", "circuits"},
	domain.PhaseIntensification:      {"cluster_sets", "rest_pause", "pause_reps", "back_off_sets"},
	domain.PhaseRealization:          {"heavy_singles", "pause_reps"},
	domain.PhaseMetabolic:            {"circuits", "supersets", "drop_sets", "emom", "intervals"},
}

var techniqueCapByLevel = map[domain.TrainingLevel]int{
	domain.LevelBeginner:     1,
	domain.LevelIntermediate: 2,
	domain.LevelAdvanced:     3,
	domain.LevelElite:        4,
}

type phaseFocus struct {
	primary, secondary []string
}

var focusByPhase = map[domain.TrainingPhase]phaseFocus{
	domain.PhaseAnatomicalAdaptation: {primary: []string{"movement quality", "tissue tolerance"}, secondary: []string{"work capacity"}},
	domain.PhaseHypertrophy:          {primary: []string{"muscle development"}, secondary: []string{"work capacity"}},
	domain.PhaseStrength:             {primary: []string{"maximal strength"}, secondary: []string{"neural efficiency"}},
	domain.PhasePower:                {primary: []string{"rate of force development"}, secondary: []string{"maximal strength"}},
	domain.PhasePeaking:              {primary: []string{"expression of strength"}, secondary: []string{"recovery"}},
	domain.PhaseMaintenance:          {primary: []string{"retention"}, secondary: []string{"recovery"}},
	domain.PhaseDeload:               {primary: []string{"recovery"}, secondary: []string{"movement quality"}},
	domain.PhaseRecovery:             {primary: []string{"recovery"}, secondary: []string{"mobility"}},
	domain.PhaseAccumulation:         {primary: []string{"volume tolerance", "muscle development"}, secondary: []string{"work capacity"}},
	domain.PhaseIntensification:      {primary: []string{"maximal strength"}, secondary: []string{"muscle development"}},
	domain.PhaseRealization:          {primary: []string{"expression of strength"}, secondary: []string{"neural efficiency"}},
	domain.PhaseMetabolic:            {primary: []string{"conditioning"}, secondary: []string{"caloric expenditure"}},
}

var goalFocusAdditions = map[domain.TrainingGoal]struct{ primary, secondary string }{
	domain.GoalStrength:          {primary: "maximal strength"},
	domain.GoalHypertrophy:       {primary: "muscle development"},
	domain.GoalEndurance:         {primary: "aerobic capacity"},
	domain.GoalPower:             {primary: "rate of force development"},
	domain.GoalWeightLoss:        {primary: "caloric expenditure", secondary: "muscle retention"},
	domain.GoalBodyRecomposition: {primary: "body composition", secondary: "muscle development"},
	domain.GoalGeneralFitness:    {secondary: "balanced development"},
	domain.GoalSportSpecific:     {secondary: "transfer to sport"},
}

// validateConfig guards generation against malformed configs and requests.
func validateConfig(cfg domain.PeriodizationConfig, params domain.PlanParams) error {
	switch {
	case cfg.MesoCycleWeeks <= 0:
		return &ConfigIntegrityError{Reason: "mesocycle duration must be positive"}
	case cfg.DeloadFrequency <= 0:
		return &ConfigIntegrityError{Reason: "deload frequency must be positive"}
	case params.DurationWeeks < 1:
		return &ConfigIntegrityError{Reason: "plan duration must be at least one week"}
	case len(cfg.PhaseSequence) == 0:
		return &ConfigIntegrityError{Reason: "phase sequence is empty"}
	case !cfg.VolumeRange.Valid():
		return &ConfigIntegrityError{Reason: "volume range min exceeds max"}
	case !cfg.IntensityRange.Valid():
		return &ConfigIntegrityError{Reason: "intensity range min exceeds max"}
	case !cfg.FrequencyRange.Valid():
		return &ConfigIntegrityError{Reason: "frequency range min exceeds max"}
	case !cfg.RPERange.Valid():
		return &ConfigIntegrityError{Reason: "rpe range min exceeds max"}
	case cfg.RIRRange != nil && !cfg.RIRRange.Valid():
		return &ConfigIntegrityError{Reason: "rir range min exceeds max"}
	}
	return nil
}

// GeneratePlan produces a complete macrocycle for the request. Generation is
// all-or-nothing: any error aborts with no partial plan.
func GeneratePlan(params domain.PlanParams, external *ExternalFatigueState, opts GeneratorOptions) (*domain.Plan, error) {
	cfg, err := LookupConfig(params.Level, params.Goal)
	if err != nil {
		return nil, err
	}

	weeks, err := GenerateMicroCycles(cfg, params, external, opts)
	if err != nil {
		return nil, err
	}

	strategy := BaseDeloadStrategy(cfg.RecommendedDeload)
	if external != nil {
		strategy, err = PersonalizeDeload(external.FatigueScore, external.RecoveryScore, params.Level, params.Goal, strategy)
		if err != nil {
			return nil, err
		}
		strategy.Timing = domain.TimingAutoregulated
	}

	plan := &domain.Plan{
		Level:      params.Level,
		Goal:       params.Goal,
		Frequency:  weeks[0].Frequency,
		StartDate:  params.StartDate,
		EndDate:    weeks[len(weeks)-1].EndDate,
		MesoCycles: groupIntoMesoCycles(weeks, cfg, strategy),
	}
	return plan, nil
}

// GenerateMicroCycles emits the ordered week-by-week plan for a validated
// config. Exposed separately so the cycle structure is testable without the
// plan wrapper.
func GenerateMicroCycles(cfg domain.PeriodizationConfig, params domain.PlanParams, external *ExternalFatigueState, opts GeneratorOptions) ([]domain.MicroCycle, error) {
	if err := validateConfig(cfg, params); err != nil {
		return nil, err
	}

	frequency := params.Frequency
	if frequency <= 0 {
		frequency = cfg.FrequencyRange.Min
	}
	frequency = clampInt(frequency, cfg.FrequencyRange.Min, cfg.FrequencyRange.Max)

	// An over-threshold external reading forces a deload at the start of
	// the plan, ahead of the scheduled multiple.
	forceDeload := false
	if cfg.Autoregulation == domain.AutoregulationFatigueBased && external != nil &&
		external.FatigueScore > cfg.FatigueThreshold {
		forceDeload = true
	}

	// In insert mode the forced deload consumes week 1 and the phase
	// sequence starts one week later.
	phaseShift := 0
	if forceDeload && opts.InsertForcedDeload {
		phaseShift = 1
	}

	weeks := make([]domain.MicroCycle, 0, params.DurationWeeks)
	for w := 1; w <= params.DurationWeeks; w++ {
		seqIndex := w - 1 - phaseShift
		var scheduled domain.TrainingPhase
		if seqIndex < 0 {
			scheduled = domain.PhaseDeload
		} else {
			scheduled = cfg.PhaseSequence[seqIndex%len(cfg.PhaseSequence)]
		}

		isDeload := scheduled == domain.PhaseDeload || (w-phaseShift) > 0 && (w-phaseShift)%cfg.DeloadFrequency == 0
		if w == 1 && forceDeload {
			isDeload = true
		}

		week := buildWeek(cfg, params, w, scheduled, isDeload, frequency)
		weeks = append(weeks, week)
	}
	return weeks, nil
}

// buildWeek derives one microcycle from the phase tables and config ranges.
func buildWeek(cfg domain.PeriodizationConfig, params domain.PlanParams, weekNumber int, scheduled domain.TrainingPhase, isDeload bool, frequency int) domain.MicroCycle {
	fracs, ok := fractionsByPhase[scheduled]
	if !ok {
		fracs = neutralFractions
	}

	volume := cfg.VolumeRange.At(fracs.volume)
	intensity := cfg.IntensityRange.At(fracs.intensity)

	phase := scheduled
	if isDeload {
		phase = domain.PhaseDeload
		volume, intensity, frequency = applyDeloadVariant(cfg, volume, intensity, frequency)
		fracs = phaseFractions{rir: 1.0, rpe: 0.0}
	}

	start := params.StartDate.AddDate(0, 0, (weekNumber-1)*7)
	week := domain.MicroCycle{
		WeekNumber: weekNumber,
		Phase:      phase,
		IsDeload:   isDeload,
		Volume:     volume,
		Intensity:  intensity,
		Frequency:  frequency,
		RPE:        rpeWindow(cfg.RPERange, fracs.rpe),
		Tempo:      tempoFor(cfg, phase),
		Rest:       restFor(cfg, phase),
		StartDate:  start,
		EndDate:    start.AddDate(0, 0, 6),
	}
	if cfg.RIRRange != nil {
		rir := rirWindow(*cfg.RIRRange, fracs.rir)
		week.RIR = &rir
	}

	week.TechniqueEmphasis = techniqueEmphasis(cfg, phase)
	week.PrimaryFocus, week.SecondaryFocus = focusTags(cfg.Goal, phase)
	return week
}

// applyDeloadVariant scales a week's load down according to the configured
// deload type. Deload volume may deliberately sit below the range floor.
func applyDeloadVariant(cfg domain.PeriodizationConfig, volume, intensity float64, frequency int) (float64, float64, int) {
	switch cfg.RecommendedDeload {
	case domain.DeloadVolume:
		return cfg.VolumeRange.Min * 0.5, intensity * 0.7, frequency
	case domain.DeloadIntensity:
		return volume * 0.7, cfg.IntensityRange.Min * 0.8, frequency
	case domain.DeloadFrequency:
		reduced := frequency - 1
		if reduced < 1 {
			reduced = 1
		}
		// Weekly volume drops with the lost training day.
		return volume * float64(reduced) / float64(frequency), intensity, reduced
	default: // combined
		return volume * 0.65, intensity * 0.85, frequency
	}
}

// rirWindow returns the week's RIR band: one unit wide, anchored at the
// fractional position within the configured range.
func rirWindow(r domain.ScalarRange, frac float64) domain.ScalarRange {
	lo := r.At(frac)
	hi := lo + 1
	if hi > r.Max {
		hi = r.Max
	}
	if hi < lo {
		hi = lo
	}
	return domain.ScalarRange{Min: lo, Max: hi}
}

// rpeWindow returns the week's RPE band: half a point either side of the
// anchor, kept inside the configured range.
func rpeWindow(r domain.ScalarRange, frac float64) domain.ScalarRange {
	mid := r.At(frac)
	lo := mid - 0.5
	hi := mid + 0.5
	if lo < r.Min {
		lo = r.Min
	}
	if hi > r.Max {
		hi = r.Max
	}
	return domain.ScalarRange{Min: lo, Max: hi}
}

func tempoFor(cfg domain.PeriodizationConfig, phase domain.TrainingPhase) string {
	if t, ok := cfg.TempoByPhase[phase]; ok {
		return t
	}
	return neutralTempo
}

func restFor(cfg domain.PeriodizationConfig, phase domain.TrainingPhase) domain.RestRange {
	if r, ok := cfg.RestByPhase[phase]; ok {
		return r
	}
	return domain.RestRange{MinSeconds: neutralRestMinSeconds, MaxSeconds: neutralRestMaxSeconds}
}

// techniqueEmphasis intersects the phase's technique pool with the config's
// special-techniques list, capped per level.
func techniqueEmphasis(cfg domain.PeriodizationConfig, phase domain.TrainingPhase) []string {
	pool, ok := techniquesByPhase[phase]
	if !ok {
		return nil
	}
	limit := techniqueCapByLevel[cfg.Level]
	if limit == 0 {
		limit = 1
	}

	var emphasis []string
	for _, t := range pool {
		if len(emphasis) == limit {
			break
		}
		for _, special := range cfg.SpecialTechniques {
			if t == special {
				emphasis = append(emphasis, t)
				break
			}
		}
	}
	return emphasis
}

// focusTags combines the phase's base focus with goal-specific additions.
func focusTags(goal domain.TrainingGoal, phase domain.TrainingPhase) (primary, secondary []string) {
	base := focusByPhase[phase]
	primary = append(primary, base.primary...)
	secondary = append(secondary, base.secondary...)

	add, ok := goalFocusAdditions[goal]
	if !ok {
		return primary, secondary
	}
	if add.primary != "" && !containsString(primary, add.primary) {
		primary = append(primary, add.primary)
	}
	if add.secondary != "" && !containsString(secondary, add.secondary) {
		secondary = append(secondary, add.secondary)
	}
	return primary, secondary
}

// groupIntoMesoCycles chunks the ordered weeks into mesocycle blocks.
func groupIntoMesoCycles(weeks []domain.MicroCycle, cfg domain.PeriodizationConfig, strategy domain.DeloadStrategy) []domain.MesoCycle {
	var mesos []domain.MesoCycle
	for start := 0; start < len(weeks); start += cfg.MesoCycleWeeks {
		end := start + cfg.MesoCycleWeeks
		if end > len(weeks) {
			end = len(weeks)
		}
		block := weeks[start:end]

		meso := domain.MesoCycle{
			Number: len(mesos) + 1,
			Weeks:  block,
		}
		for _, w := range block {
			if !containsPhase(meso.PhaseWindow, w.Phase) {
				meso.PhaseWindow = append(meso.PhaseWindow, w.Phase)
			}
			if w.IsDeload {
				meso.IncludesDeload = true
			}
		}
		if meso.IncludesDeload {
			s := strategy
			meso.DeloadStrategy = &s
		}
		mesos = append(mesos, meso)
	}
	return mesos
}

func clampInt(v, min, max int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

func containsPhase(list []domain.TrainingPhase, p domain.TrainingPhase) bool {
	for _, v := range list {
		if v == p {
			return true
		}
	}
	return false
}
