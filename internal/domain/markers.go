package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// FatigueMarkers are the raw subjective/objective inputs to fatigue scoring.
// Ranges are validated before scoring; the scorer never clamps.
type FatigueMarkers struct {
	RPEIncrease           float64 `bson:"rpeIncrease" json:"rpeIncrease"`                     // 0-10
	StrengthDecrease      float64 `bson:"strengthDecrease" json:"strengthDecrease"`           // percent, 0-100
	Soreness              float64 `bson:"soreness" json:"soreness"`                           // 1-10
	SleepQuality          float64 `bson:"sleepQuality" json:"sleepQuality"`                   // 1-10
	Motivation            float64 `bson:"motivation" json:"motivation"`                       // 1-10
	RestingHeartRateDelta float64 `bson:"restingHeartRateDelta" json:"restingHeartRateDelta"` // bpm over baseline
	MoodScore             float64 `bson:"moodScore" json:"moodScore"`                         // 1-10
	StressScore           float64 `bson:"stressScore" json:"stressScore"`                     // 1-10
	AppetiteChange        float64 `bson:"appetiteChange" json:"appetiteChange"`               // -5..5
	TechnicalProficiency  float64 `bson:"technicalProficiency" json:"technicalProficiency"`   // 1-10
}

// NeutralFatigueMarkers is the "no prior record" fallback.
func NeutralFatigueMarkers() FatigueMarkers {
	return FatigueMarkers{
		Soreness:             1,
		SleepQuality:         7,
		Motivation:           7,
		MoodScore:            7,
		StressScore:          3,
		TechnicalProficiency: 7,
	}
}

// RecoveryMarkers are the raw inputs to recovery scoring.
type RecoveryMarkers struct {
	SleepHours       float64 `bson:"sleepHours" json:"sleepHours"`             // 0-24
	SleepQuality     float64 `bson:"sleepQuality" json:"sleepQuality"`         // 1-10
	Nutrition        float64 `bson:"nutrition" json:"nutrition"`               // 1-10
	Hydration        float64 `bson:"hydration" json:"hydration"`               // 1-10
	StressManagement float64 `bson:"stressManagement" json:"stressManagement"` // 1-10

	ActiveRecovery  bool `bson:"activeRecovery" json:"activeRecovery"`
	MobilityWork    bool `bson:"mobilityWork" json:"mobilityWork"`
	Supplementation bool `bson:"supplementation" json:"supplementation"`
	Massage         bool `bson:"massage" json:"massage"`
	ColdTherapy     bool `bson:"coldTherapy" json:"coldTherapy"`
	HeatTherapy     bool `bson:"heatTherapy" json:"heatTherapy"`
}

// TrainingResponse captures how the trainee actually responded to the block.
type TrainingResponse struct {
	MuscleGrowth         float64 `bson:"muscleGrowth" json:"muscleGrowth"`                 // 1-10
	StrengthGain         float64 `bson:"strengthGain" json:"strengthGain"`                 // 1-10
	TechnicalImprovement float64 `bson:"technicalImprovement" json:"technicalImprovement"` // 1-10
	WorkCapacity         float64 `bson:"workCapacity" json:"workCapacity"`                 // 1-10
	Motivation           float64 `bson:"motivation" json:"motivation"`                     // 1-10
	Enjoyment            float64 `bson:"enjoyment" json:"enjoyment"`                       // 1-10
	Adherence            float64 `bson:"adherence" json:"adherence"`                       // percent, 0-100
}

// NeutralTrainingResponse is the "no prior record" fallback.
func NeutralTrainingResponse() TrainingResponse {
	return TrainingResponse{
		MuscleGrowth:         5,
		StrengthGain:         5,
		TechnicalImprovement: 5,
		WorkCapacity:         5,
		Motivation:           5,
		Enjoyment:            5,
		Adherence:            100,
	}
}

// FatigueManagementState is the readiness snapshot consumed by the UI.
type FatigueManagementState struct {
	CurrentFatigue       float64           `bson:"currentFatigue" json:"currentFatigue"`             // 0-10
	RecoveryCapacity     float64           `bson:"recoveryCapacity" json:"recoveryCapacity"`         // 0-10
	PerformanceDecrement float64           `bson:"performanceDecrement" json:"performanceDecrement"` // percent
	ReadinessToTrain     float64           `bson:"readinessToTrain" json:"readinessToTrain"`         // 0-10
	RecommendedAction    RecommendedAction `bson:"recommendedAction" json:"recommendedAction"`
}

// FatigueLogEntry is one dated assessment for a user. The fatigue log is the
// single externally mutable resource the engine depends on: readers derive the
// consecutive-high-fatigue count and the latest autoregulation reading from it.
type FatigueLogEntry struct {
	ID     primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID primitive.ObjectID `bson:"userId" json:"userId"`

	Fatigue  FatigueMarkers   `bson:"fatigue" json:"fatigue"`
	Recovery RecoveryMarkers  `bson:"recovery" json:"recovery"`
	Response TrainingResponse `bson:"response" json:"response"`

	// Scores are on the canonical 0-10 scale.
	FatigueScore  float64 `bson:"fatigueScore" json:"fatigueScore"`
	RecoveryScore float64 `bson:"recoveryScore" json:"recoveryScore"`

	LoggedAt time.Time `bson:"loggedAt" json:"loggedAt"`
}
