// internal/domain/exercise.go
package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Exercise represents a single exercise definition in the catalog.
type Exercise struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	TrainerID primitive.ObjectID `bson:"trainerId" json:"trainerId"` // Trainer who created/owns this exercise
	Name      string             `bson:"name" json:"name"`
	Category  string             `bson:"category,omitempty" json:"category,omitempty"` // e.g., "push", "pull", "hinge"

	PrimaryMuscles   []MuscleGroup `bson:"primaryMuscles" json:"primaryMuscles"`
	SecondaryMuscles []MuscleGroup `bson:"secondaryMuscles,omitempty" json:"secondaryMuscles,omitempty"`

	Equipment  []string           `bson:"equipment,omitempty" json:"equipment,omitempty"` // e.g., "barbell", "dumbbell", "bodyweight"
	Difficulty ExerciseDifficulty `bson:"difficulty" json:"difficulty"`
	IsCompound bool               `bson:"isCompound" json:"isCompound"`

	// Contraindications name conditions under which the exercise must be
	// excluded, matched against a trainee's limitations (e.g., "knee_pain").
	Contraindications []string `bson:"contraindications,omitempty" json:"contraindications,omitempty"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

// Targets reports whether the exercise hits the group as a primary or
// secondary mover.
func (e *Exercise) Targets(group MuscleGroup) bool {
	for _, m := range e.PrimaryMuscles {
		if m == group {
			return true
		}
	}
	for _, m := range e.SecondaryMuscles {
		if m == group {
			return true
		}
	}
	return false
}

// WorkoutExercise is one prescribed slot in a workout day.
type WorkoutExercise struct {
	Exercise    Exercise `bson:"exercise" json:"exercise"`
	Sets        int      `bson:"sets" json:"sets"`
	Reps        string   `bson:"reps" json:"reps"` // rep target or range, e.g. "5" or "10-15"
	RestSeconds int      `bson:"restSeconds" json:"restSeconds"`
	// AlternativeIDs lists up to 3 interchangeable exercises sharing muscle
	// group and compound-ness.
	AlternativeIDs []primitive.ObjectID `bson:"alternativeIds,omitempty" json:"alternativeIds,omitempty"`
}

// WorkoutDayPlan is the selector's output for one training day.
type WorkoutDayPlan struct {
	TargetMuscleGroups []MuscleGroup     `bson:"targetMuscleGroups" json:"targetMuscleGroups"`
	DayType            DayType           `bson:"dayType" json:"dayType"`
	Exercises          []WorkoutExercise `bson:"exercises" json:"exercises"`
}
