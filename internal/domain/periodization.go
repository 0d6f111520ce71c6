package domain

// ScalarRange is an inclusive [Min, Max] pair for float-valued training variables.
type ScalarRange struct {
	Min float64 `bson:"min" json:"min"`
	Max float64 `bson:"max" json:"max"`
}

// Valid reports whether the range is well-formed.
func (r ScalarRange) Valid() bool {
	return r.Min <= r.Max
}

// At returns the value at fractional position frac within the range,
// clamped to the range bounds.
func (r ScalarRange) At(frac float64) float64 {
	v := r.Min + frac*(r.Max-r.Min)
	if v < r.Min {
		return r.Min
	}
	if v > r.Max {
		return r.Max
	}
	return v
}

// IntRange is an inclusive [Min, Max] pair for integer-valued training variables.
type IntRange struct {
	Min int `bson:"min" json:"min"`
	Max int `bson:"max" json:"max"`
}

// Valid reports whether the range is well-formed.
func (r IntRange) Valid() bool {
	return r.Min <= r.Max
}

// RestRange is a rest-time guideline in seconds.
type RestRange struct {
	MinSeconds int `bson:"minSeconds" json:"minSeconds"`
	MaxSeconds int `bson:"maxSeconds" json:"maxSeconds"`
}

// PeriodizationConfig is the immutable rule set for one (level, goal) pair.
// Every value the cycle generator emits is derived from these ranges and tables.
type PeriodizationConfig struct {
	Level TrainingLevel `bson:"level" json:"level"`
	Goal  TrainingGoal  `bson:"goal" json:"goal"`

	PeriodizationType PeriodizationType `bson:"periodizationType" json:"periodizationType"`
	MesoCycleWeeks    int               `bson:"mesoCycleWeeks" json:"mesoCycleWeeks"`
	DeloadFrequency   int               `bson:"deloadFrequency" json:"deloadFrequency"` // every N weeks

	// VolumeRange is weekly working sets per muscle group.
	VolumeRange ScalarRange `bson:"volumeRange" json:"volumeRange"`
	// IntensityRange is %1RM.
	IntensityRange ScalarRange `bson:"intensityRange" json:"intensityRange"`
	// FrequencyRange is training days per week.
	FrequencyRange IntRange `bson:"frequencyRange" json:"frequencyRange"`

	PhaseSequence []TrainingPhase `bson:"phaseSequence" json:"phaseSequence"`

	RIRRange *ScalarRange `bson:"rirRange,omitempty" json:"rirRange,omitempty"`
	RPERange ScalarRange  `bson:"rpeRange" json:"rpeRange"`

	TempoByPhase map[TrainingPhase]string    `bson:"tempoByPhase,omitempty" json:"tempoByPhase,omitempty"`
	RestByPhase  map[TrainingPhase]RestRange `bson:"restByPhase,omitempty" json:"restByPhase,omitempty"`

	ExerciseRotation  RotationStrategy       `bson:"exerciseRotation" json:"exerciseRotation"`
	SpecialTechniques []string               `bson:"specialTechniques,omitempty" json:"specialTechniques,omitempty"`
	Autoregulation    AutoregulationStrategy `bson:"autoregulation" json:"autoregulation"`
	Nutrition         NutritionStrategy      `bson:"nutrition" json:"nutrition"`

	RecommendedDeload DeloadType `bson:"recommendedDeload" json:"recommendedDeload"`
	// FatigueThreshold is on the canonical 0-10 fatigue scale.
	FatigueThreshold float64 `bson:"fatigueThreshold" json:"fatigueThreshold"`
}

// DeloadStrategy describes how a deload week reduces load.
type DeloadStrategy struct {
	Type DeloadType `bson:"type" json:"type"`
	// VolumeReduction and IntensityReduction are percentages in [0,100].
	VolumeReduction    float64      `bson:"volumeReduction" json:"volumeReduction"`
	IntensityReduction float64      `bson:"intensityReduction" json:"intensityReduction"`
	FrequencyReduction int          `bson:"frequencyReduction" json:"frequencyReduction"` // days
	DurationDays       int          `bson:"durationDays" json:"durationDays"`
	Timing             DeloadTiming `bson:"timing" json:"timing"`
}

// Clamp forces the strategy back inside its legal bounds:
// percentages in [0,100], frequency reduction >= 0, duration >= 3 days.
func (s DeloadStrategy) Clamp() DeloadStrategy {
	if s.VolumeReduction < 0 {
		s.VolumeReduction = 0
	}
	if s.VolumeReduction > 100 {
		s.VolumeReduction = 100
	}
	if s.IntensityReduction < 0 {
		s.IntensityReduction = 0
	}
	if s.IntensityReduction > 100 {
		s.IntensityReduction = 100
	}
	if s.FrequencyReduction < 0 {
		s.FrequencyReduction = 0
	}
	if s.DurationDays < 3 {
		s.DurationDays = 3
	}
	return s
}
