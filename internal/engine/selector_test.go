package engine

import (
	"math/rand"
	"testing"

	"alcyxob/periodization-engine/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func testExercise(name string, primary domain.MuscleGroup, difficulty domain.ExerciseDifficulty, compound bool, contraindications ...string) domain.Exercise {
	return domain.Exercise{
		ID:                primitive.NewObjectID(),
		Name:              name,
		PrimaryMuscles:    []domain.MuscleGroup{primary},
		Difficulty:        difficulty,
		IsCompound:        compound,
		Contraindications: contraindications,
	}
}

// pushDayCatalog is large enough that no filter stage needs relaxing.
func pushDayCatalog() []domain.Exercise {
	return []domain.Exercise{
		testExercise("Barbell Bench Press", domain.MuscleChest, domain.DifficultyIntermediate, true),
		testExercise("Incline Dumbbell Press", domain.MuscleChest, domain.DifficultyIntermediate, true),
		testExercise("Weighted Dip", domain.MuscleChest, domain.DifficultyAdvanced, true, "shoulder_pain"),
		testExercise("Cable Fly", domain.MuscleChest, domain.DifficultyBeginner, false),
		testExercise("Push-Up", domain.MuscleChest, domain.DifficultyBeginner, true),
		testExercise("Overhead Press", domain.MuscleShoulders, domain.DifficultyIntermediate, true),
		testExercise("Lateral Raise", domain.MuscleShoulders, domain.DifficultyBeginner, false),
		testExercise("Arnold Press", domain.MuscleShoulders, domain.DifficultyAdvanced, true, "shoulder_pain"),
		testExercise("Triceps Pushdown", domain.MuscleTriceps, domain.DifficultyBeginner, false),
		testExercise("Close-Grip Bench", domain.MuscleTriceps, domain.DifficultyIntermediate, true),
		testExercise("Skull Crusher", domain.MuscleTriceps, domain.DifficultyIntermediate, false, "elbow_pain"),
		testExercise("Overhead Extension", domain.MuscleTriceps, domain.DifficultyBeginner, false),
	}
}

func seededSelector(seed int64) *Selector {
	return NewSelector(rand.New(rand.NewSource(seed)))
}

func TestSelectForDay_CoversEveryTargetGroup(t *testing.T) {
	s := seededSelector(1)
	targets := []domain.MuscleGroup{domain.MuscleChest, domain.MuscleShoulders, domain.MuscleTriceps}

	selected, err := s.SelectForDay(pushDayCatalog(), targets, domain.LevelIntermediate, nil, domain.DayHypertrophy)
	require.NoError(t, err)

	for _, group := range targets {
		found := false
		for _, we := range selected {
			if we.Exercise.Targets(group) {
				found = true
				break
			}
		}
		assert.True(t, found, "no exercise for %s", group)
	}
}

func TestSelectForDay_NoDuplicates(t *testing.T) {
	s := seededSelector(2)
	selected, err := s.SelectForDay(pushDayCatalog(), []domain.MuscleGroup{domain.MuscleChest}, domain.LevelIntermediate, nil, domain.DayHypertrophy)
	require.NoError(t, err)

	seen := make(map[primitive.ObjectID]bool)
	for _, we := range selected {
		assert.False(t, seen[we.Exercise.ID], "duplicate %s", we.Exercise.Name)
		seen[we.Exercise.ID] = true
	}
}

func TestSelectForDay_DeterministicWithSeededSource(t *testing.T) {
	targets := []domain.MuscleGroup{domain.MuscleChest, domain.MuscleTriceps}

	first, err := seededSelector(7).SelectForDay(pushDayCatalog(), targets, domain.LevelIntermediate, nil, domain.DayStrength)
	require.NoError(t, err)
	second, err := seededSelector(7).SelectForDay(pushDayCatalog(), targets, domain.LevelIntermediate, nil, domain.DayStrength)
	require.NoError(t, err)

	require.Len(t, second, len(first))
	for i := range first {
		assert.Equal(t, first[i].Exercise.Name, second[i].Exercise.Name)
	}
}

func TestSelectForDay_TargetCounts(t *testing.T) {
	catalog := pushDayCatalog()
	targets := []domain.MuscleGroup{domain.MuscleChest, domain.MuscleShoulders, domain.MuscleTriceps}

	cases := []struct {
		level   domain.TrainingLevel
		dayType domain.DayType
		want    int
	}{
		{domain.LevelBeginner, domain.DayHypertrophy, 6},   // 8 - 2
		{domain.LevelIntermediate, domain.DayStrength, 7},  // base
		{domain.LevelAdvanced, domain.DayPower, 7},         // 6 + 1
		{domain.LevelIntermediate, domain.DayEndurance, 10},
	}
	for _, tc := range cases {
		selected, err := seededSelector(3).SelectForDay(catalog, targets, tc.level, nil, tc.dayType)
		require.NoError(t, err)
		assert.Len(t, selected, tc.want, "%s %s", tc.level, tc.dayType)
	}
}

func TestSelectForDay_BeginnersAvoidAdvancedMovements(t *testing.T) {
	selected, err := seededSelector(4).SelectForDay(pushDayCatalog(), []domain.MuscleGroup{domain.MuscleChest, domain.MuscleShoulders, domain.MuscleTriceps}, domain.LevelBeginner, nil, domain.DayHypertrophy)
	require.NoError(t, err)

	for _, we := range selected {
		assert.NotEqual(t, domain.DifficultyAdvanced, we.Exercise.Difficulty, we.Exercise.Name)
	}
}

func TestSelectForDay_LimitationsExcludeContraindicated(t *testing.T) {
	selected, err := seededSelector(5).SelectForDay(pushDayCatalog(), []domain.MuscleGroup{domain.MuscleChest, domain.MuscleShoulders, domain.MuscleTriceps}, domain.LevelIntermediate, []string{"shoulder_pain"}, domain.DayHypertrophy)
	require.NoError(t, err)

	for _, we := range selected {
		assert.NotContains(t, we.Exercise.Contraindications, "shoulder_pain", we.Exercise.Name)
	}
}

func TestSelectForDay_RelatedGroupBroadening(t *testing.T) {
	// Only two direct chest movements: the chest pool is under the
	// threshold, so shoulders/triceps movements become eligible.
	catalog := []domain.Exercise{
		testExercise("Barbell Bench Press", domain.MuscleChest, domain.DifficultyIntermediate, true),
		testExercise("Cable Fly", domain.MuscleChest, domain.DifficultyIntermediate, false),
		testExercise("Overhead Press", domain.MuscleShoulders, domain.DifficultyIntermediate, true),
		testExercise("Lateral Raise", domain.MuscleShoulders, domain.DifficultyIntermediate, false),
		testExercise("Triceps Pushdown", domain.MuscleTriceps, domain.DifficultyIntermediate, false),
		testExercise("Close-Grip Bench", domain.MuscleTriceps, domain.DifficultyIntermediate, true),
		testExercise("Back Squat", domain.MuscleQuads, domain.DifficultyIntermediate, true),
	}

	selected, err := seededSelector(6).SelectForDay(catalog, []domain.MuscleGroup{domain.MuscleChest}, domain.LevelIntermediate, nil, domain.DayStrength)
	require.NoError(t, err)

	// All six push-adjacent movements are eligible; the squat is not.
	assert.Len(t, selected, 6)
	for _, we := range selected {
		assert.NotEqual(t, "Back Squat", we.Exercise.Name)
	}
}

func TestSelectForDay_NeverFewerThanThree(t *testing.T) {
	// Nothing matches the target group or its relations, so the selector
	// falls back to the whole catalog rather than returning a thin day.
	catalog := []domain.Exercise{
		testExercise("Back Squat", domain.MuscleQuads, domain.DifficultyIntermediate, true),
		testExercise("Romanian Deadlift", domain.MuscleHamstrings, domain.DifficultyIntermediate, true),
		testExercise("Calf Raise", domain.MuscleCalves, domain.DifficultyBeginner, false),
	}

	selected, err := seededSelector(8).SelectForDay(catalog, []domain.MuscleGroup{domain.MuscleChest}, domain.LevelIntermediate, nil, domain.DayStrength)
	require.NoError(t, err)
	assert.Len(t, selected, 3)
}

func TestSelectForDay_EmptyCatalogFails(t *testing.T) {
	_, err := seededSelector(9).SelectForDay(nil, []domain.MuscleGroup{domain.MuscleChest}, domain.LevelIntermediate, nil, domain.DayStrength)
	require.Error(t, err)

	var insufficient *InsufficientExerciseDataError
	require.ErrorAs(t, err, &insufficient)
}

func TestSelectForDay_Prescriptions(t *testing.T) {
	selected, err := seededSelector(10).SelectForDay(pushDayCatalog(), []domain.MuscleGroup{domain.MuscleChest, domain.MuscleShoulders, domain.MuscleTriceps}, domain.LevelIntermediate, nil, domain.DayStrength)
	require.NoError(t, err)

	for _, we := range selected {
		if we.Exercise.IsCompound {
			assert.Equal(t, 5, we.Sets, we.Exercise.Name)
			assert.Equal(t, "5", we.Reps)
			assert.Equal(t, 180, we.RestSeconds)
		} else {
			assert.Equal(t, 4, we.Sets, we.Exercise.Name)
			assert.Equal(t, "6-8", we.Reps)
			assert.Equal(t, 120, we.RestSeconds)
		}
	}
}

func TestSelectForDay_AlternativesShareMuscleAndCompoundness(t *testing.T) {
	catalog := pushDayCatalog()
	byID := make(map[primitive.ObjectID]domain.Exercise, len(catalog))
	for _, ex := range catalog {
		byID[ex.ID] = ex
	}

	selected, err := seededSelector(11).SelectForDay(catalog, []domain.MuscleGroup{domain.MuscleChest}, domain.LevelIntermediate, nil, domain.DayHypertrophy)
	require.NoError(t, err)

	for _, we := range selected {
		assert.LessOrEqual(t, len(we.AlternativeIDs), 3)
		for _, altID := range we.AlternativeIDs {
			alt, ok := byID[altID]
			require.True(t, ok)
			assert.Equal(t, we.Exercise.IsCompound, alt.IsCompound)
			shares := false
			for _, g := range we.Exercise.PrimaryMuscles {
				if alt.Targets(g) {
					shares = true
					break
				}
			}
			assert.True(t, shares, "alternative %s for %s", alt.Name, we.Exercise.Name)
		}
	}
}

func TestBuildWorkoutDay_WrapsSelection(t *testing.T) {
	targets := []domain.MuscleGroup{domain.MuscleChest}
	day, err := seededSelector(12).BuildWorkoutDay(pushDayCatalog(), targets, domain.LevelIntermediate, nil, domain.DayHypertrophy)
	require.NoError(t, err)

	assert.Equal(t, targets, day.TargetMuscleGroups)
	assert.Equal(t, domain.DayHypertrophy, day.DayType)
	assert.NotEmpty(t, day.Exercises)
}
