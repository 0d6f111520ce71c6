package domain

// TrainingLevel describes the trainee's experience tier.
type TrainingLevel string

const (
	LevelBeginner     TrainingLevel = "beginner"
	LevelIntermediate TrainingLevel = "intermediate"
	LevelAdvanced     TrainingLevel = "advanced"
	LevelElite        TrainingLevel = "elite"
)

// AllLevels lists every supported level, in progression order.
var AllLevels = []TrainingLevel{LevelBeginner, LevelIntermediate, LevelAdvanced, LevelElite}

// TrainingGoal is the primary outcome the trainee is periodizing towards.
type TrainingGoal string

const (
	GoalStrength          TrainingGoal = "strength"
	GoalHypertrophy       TrainingGoal = "hypertrophy"
	GoalEndurance         TrainingGoal = "endurance"
	GoalPower             TrainingGoal = "power"
	GoalWeightLoss        TrainingGoal = "weight_loss"
	GoalBodyRecomposition TrainingGoal = "body_recomposition"
	GoalGeneralFitness    TrainingGoal = "general_fitness"
	GoalSportSpecific     TrainingGoal = "sport_specific"
)

// AllGoals lists every supported goal.
var AllGoals = []TrainingGoal{
	GoalStrength,
	GoalHypertrophy,
	GoalEndurance,
	GoalPower,
	GoalWeightLoss,
	GoalBodyRecomposition,
	GoalGeneralFitness,
	GoalSportSpecific,
}

// TrainingPhase identifies the emphasis of a training week or block.
type TrainingPhase string

const (
	PhaseAnatomicalAdaptation TrainingPhase = "anatomical_adaptation"
	PhaseHypertrophy          TrainingPhase = "hypertrophy"
	PhaseStrength             TrainingPhase = "strength"
	PhasePower                TrainingPhase = "power"
	PhasePeaking              TrainingPhase = "peaking"
	PhaseMaintenance          TrainingPhase = "maintenance"
	PhaseDeload               TrainingPhase = "deload"
	PhaseRecovery             TrainingPhase = "recovery"
	PhaseAccumulation         TrainingPhase = "accumulation"
	PhaseIntensification      TrainingPhase = "intensification"
	PhaseRealization          TrainingPhase = "realization"
	PhaseMetabolic            TrainingPhase = "metabolic"
)

// PeriodizationType names the overall plan-structuring model.
type PeriodizationType string

const (
	PeriodizationLinear     PeriodizationType = "linear"
	PeriodizationUndulating PeriodizationType = "undulating"
	PeriodizationBlock      PeriodizationType = "block"
	PeriodizationConjugate  PeriodizationType = "conjugate"
	PeriodizationReverse    PeriodizationType = "reverse_linear"
)

// DeloadType selects which training variable a deload reduces.
type DeloadType string

const (
	DeloadVolume    DeloadType = "volume"
	DeloadIntensity DeloadType = "intensity"
	DeloadFrequency DeloadType = "frequency"
	DeloadCombined  DeloadType = "combined"
)

// DeloadTiming distinguishes how a deload gets scheduled.
type DeloadTiming string

const (
	TimingPlanned       DeloadTiming = "planned"
	TimingAutoregulated DeloadTiming = "autoregulated"
	TimingReactive      DeloadTiming = "reactive"
)

// AutoregulationStrategy controls whether and how generation reacts to
// measured fatigue instead of the fixed calendar.
type AutoregulationStrategy string

const (
	AutoregulationNone         AutoregulationStrategy = "none"
	AutoregulationFatigueBased AutoregulationStrategy = "fatigue_based"
	AutoregulationRPEBased     AutoregulationStrategy = "rpe_based"
)

// RotationStrategy describes how exercises rotate across mesocycles.
type RotationStrategy string

const (
	RotationFixed     RotationStrategy = "fixed"
	RotationAlternate RotationStrategy = "alternate"
	RotationRolling   RotationStrategy = "rolling"
)

// NutritionStrategy is carried on the config for downstream consumers;
// the engine itself never interprets it.
type NutritionStrategy string

const (
	NutritionSurplus     NutritionStrategy = "surplus"
	NutritionMaintenance NutritionStrategy = "maintenance"
	NutritionDeficit     NutritionStrategy = "deficit"
	NutritionCycling     NutritionStrategy = "carb_cycling"
)

// RecommendedAction is the engine's readiness verdict for the next session.
type RecommendedAction string

const (
	ActionProceed         RecommendedAction = "proceed"
	ActionReduceVolume    RecommendedAction = "reduce_volume"
	ActionReduceIntensity RecommendedAction = "reduce_intensity"
	ActionActiveRecovery  RecommendedAction = "active_recovery"
	ActionRest            RecommendedAction = "rest"
)

// DayType categorizes a workout day for exercise count and set/rep prescription.
type DayType string

const (
	DayStrength    DayType = "strength"
	DayHypertrophy DayType = "hypertrophy"
	DayEndurance   DayType = "endurance"
	DayCircuit     DayType = "circuit"
	DayMetabolic   DayType = "metabolic"
	DayPower       DayType = "power"
	DayAthletic    DayType = "athletic"
	DayFunctional  DayType = "functional"
	DayGeneral     DayType = "general"
)

// ExerciseDifficulty grades an exercise, not a trainee.
type ExerciseDifficulty string

const (
	DifficultyBeginner     ExerciseDifficulty = "beginner"
	DifficultyIntermediate ExerciseDifficulty = "intermediate"
	DifficultyAdvanced     ExerciseDifficulty = "advanced"
)

// MuscleGroup is a coarse anatomical target used for selection and broadening.
type MuscleGroup string

const (
	MuscleChest      MuscleGroup = "chest"
	MuscleBack       MuscleGroup = "back"
	MuscleShoulders  MuscleGroup = "shoulders"
	MuscleBiceps     MuscleGroup = "biceps"
	MuscleTriceps    MuscleGroup = "triceps"
	MuscleForearms   MuscleGroup = "forearms"
	MuscleQuads      MuscleGroup = "quads"
	MuscleHamstrings MuscleGroup = "hamstrings"
	MuscleGlutes     MuscleGroup = "glutes"
	MuscleCalves     MuscleGroup = "calves"
	MuscleCore       MuscleGroup = "core"
	MuscleLowerBack  MuscleGroup = "lower_back"
	MuscleFullBody   MuscleGroup = "full_body"
)
