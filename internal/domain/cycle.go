package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MicroCycle is one planned training week. Week numbers are unique and
// strictly increasing within a plan.
type MicroCycle struct {
	WeekNumber int           `bson:"weekNumber" json:"weekNumber"`
	Phase      TrainingPhase `bson:"phase" json:"phase"`
	IsDeload   bool          `bson:"isDeload" json:"isDeload"`

	// Volume is weekly sets per muscle group, Intensity is %1RM, Frequency
	// is sessions per week. All are clamped into the config ranges at
	// generation time (deload weeks may sit below the volume floor).
	Volume    float64 `bson:"volume" json:"volume"`
	Intensity float64 `bson:"intensity" json:"intensity"`
	Frequency int     `bson:"frequency" json:"frequency"`

	RIR *ScalarRange `bson:"rir,omitempty" json:"rir,omitempty"`
	RPE ScalarRange  `bson:"rpe" json:"rpe"`

	Tempo string    `bson:"tempo" json:"tempo"`
	Rest  RestRange `bson:"rest" json:"rest"`

	TechniqueEmphasis []string `bson:"techniqueEmphasis,omitempty" json:"techniqueEmphasis,omitempty"`
	PrimaryFocus      []string `bson:"primaryFocus,omitempty" json:"primaryFocus,omitempty"`
	SecondaryFocus    []string `bson:"secondaryFocus,omitempty" json:"secondaryFocus,omitempty"`

	StartDate time.Time `bson:"startDate" json:"startDate"`
	EndDate   time.Time `bson:"endDate" json:"endDate"`
}

// EffectiveLoad is the volume-intensity product used to compare weeks.
func (m MicroCycle) EffectiveLoad() float64 {
	return m.Volume * m.Intensity
}

// MesoCycle is an ordered block of microcycles sharing one phase window.
type MesoCycle struct {
	Number         int             `bson:"number" json:"number"`
	Weeks          []MicroCycle    `bson:"weeks" json:"weeks"`
	PhaseWindow    []TrainingPhase `bson:"phaseWindow" json:"phaseWindow"`
	IncludesDeload bool            `bson:"includesDeload" json:"includesDeload"`
	DeloadStrategy *DeloadStrategy `bson:"deloadStrategy,omitempty" json:"deloadStrategy,omitempty"`
}

// Plan is a generated macrocycle. Immutable once generated; regeneration
// produces a new Plan document.
type Plan struct {
	ID     primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID primitive.ObjectID `bson:"userId" json:"userId"`

	Level     TrainingLevel `bson:"level" json:"level"`
	Goal      TrainingGoal  `bson:"goal" json:"goal"`
	Frequency int           `bson:"frequency" json:"frequency"`

	StartDate time.Time `bson:"startDate" json:"startDate"`
	EndDate   time.Time `bson:"endDate" json:"endDate"`

	MesoCycles []MesoCycle `bson:"mesoCycles" json:"mesoCycles"`

	// SnapshotKey is the object key of the archived plan JSON, if archived.
	SnapshotKey string `bson:"snapshotKey,omitempty" json:"snapshotKey,omitempty"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}

// MicroCycles flattens the plan back into its ordered week list.
func (p *Plan) MicroCycles() []MicroCycle {
	var weeks []MicroCycle
	for _, meso := range p.MesoCycles {
		weeks = append(weeks, meso.Weeks...)
	}
	return weeks
}

// PlanParams is a single plan-generation request.
type PlanParams struct {
	Level         TrainingLevel `json:"level"`
	Goal          TrainingGoal  `json:"goal"`
	Frequency     int           `json:"frequency"` // desired days/week
	StartDate     time.Time     `json:"startDate"`
	DurationWeeks int           `json:"durationWeeks"`
	// IndividualTolerance scales fatigue sensitivity; 1.0 means average.
	IndividualTolerance float64 `json:"individualTolerance,omitempty"`
}
