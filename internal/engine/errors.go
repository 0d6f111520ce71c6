package engine

import (
	"fmt"

	"alcyxob/periodization-engine/internal/domain"
)

// MissingConfigError reports a (level, goal) pair with no catalog entry.
// An unmapped combination is a configuration error, never a silent default.
type MissingConfigError struct {
	Level domain.TrainingLevel
	Goal  domain.TrainingGoal
}

func (e *MissingConfigError) Error() string {
	return fmt.Sprintf("no periodization config for level %q, goal %q", e.Level, e.Goal)
}

// ValidationError reports a marker outside its declared numeric range.
// Scoring rejects out-of-range inputs instead of clamping them.
type ValidationError struct {
	Field string
	Value float64
	Min   float64
	Max   float64
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("marker %q = %g outside allowed range [%g, %g]", e.Field, e.Value, e.Min, e.Max)
}

// ConfigIntegrityError reports a malformed periodization config or plan
// request. Generation aborts rather than producing a malformed plan.
type ConfigIntegrityError struct {
	Reason string
}

func (e *ConfigIntegrityError) Error() string {
	return "config integrity: " + e.Reason
}

// InsufficientExerciseDataError reports that even the maximally broadened
// filters yielded zero exercises for a day.
type InsufficientExerciseDataError struct {
	TargetGroups []domain.MuscleGroup
}

func (e *InsufficientExerciseDataError) Error() string {
	return fmt.Sprintf("no exercises available for target groups %v after all fallbacks", e.TargetGroups)
}
