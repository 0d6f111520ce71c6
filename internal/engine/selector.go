package engine

import (
	"math/rand"
	"time"

	"alcyxob/periodization-engine/internal/domain"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// minCandidatePool is the point below which the next filter stage is
// relaxed instead of applied.
const minCandidatePool = 5

const maxAlternatives = 3

// relatedMuscleGroups broadens a target group to its synergists when the
// direct pool is too small.
var relatedMuscleGroups = map[domain.MuscleGroup][]domain.MuscleGroup{
	domain.MuscleChest:      {domain.MuscleShoulders, domain.MuscleTriceps},
	domain.MuscleBack:       {domain.MuscleBiceps, domain.MuscleForearms, domain.MuscleLowerBack},
	domain.MuscleShoulders:  {domain.MuscleChest, domain.MuscleTriceps},
	domain.MuscleBiceps:     {domain.MuscleBack, domain.MuscleForearms},
	domain.MuscleTriceps:    {domain.MuscleChest, domain.MuscleShoulders},
	domain.MuscleForearms:   {domain.MuscleBiceps},
	domain.MuscleQuads:      {domain.MuscleGlutes, domain.MuscleHamstrings},
	domain.MuscleHamstrings: {domain.MuscleGlutes, domain.MuscleLowerBack},
	domain.MuscleGlutes:     {domain.MuscleQuads, domain.MuscleHamstrings},
	domain.MuscleCalves:     {domain.MuscleQuads},
	domain.MuscleCore:       {domain.MuscleLowerBack},
	domain.MuscleLowerBack:  {domain.MuscleCore, domain.MuscleGlutes},
}

// exercisePrescription is the set/rep/rest prescription for one slot.
type exercisePrescription struct {
	Sets        int
	Reps        string
	RestSeconds int
}

type prescriptionPair struct {
	Compound  exercisePrescription
	Isolation exercisePrescription
}

var prescriptionsByDayType = map[domain.DayType]prescriptionPair{
	domain.DayStrength: {
		Compound:  exercisePrescription{Sets: 5, Reps: "5", RestSeconds: 180},
		Isolation: exercisePrescription{Sets: 4, Reps: "6-8", RestSeconds: 120},
	},
	domain.DayHypertrophy: {
		Compound:  exercisePrescription{Sets: 4, Reps: "8-12", RestSeconds: 90},
		Isolation: exercisePrescription{Sets: 3, Reps: "10-15", RestSeconds: 60},
	},
	domain.DayEndurance: {
		Compound:  exercisePrescription{Sets: 3, Reps: "15-20", RestSeconds: 45},
		Isolation: exercisePrescription{Sets: 3, Reps: "15-25", RestSeconds: 30},
	},
	domain.DayCircuit: {
		Compound:  exercisePrescription{Sets: 3, Reps: "12-15", RestSeconds: 30},
		Isolation: exercisePrescription{Sets: 3, Reps: "15-20", RestSeconds: 30},
	},
	domain.DayMetabolic: {
		Compound:  exercisePrescription{Sets: 3, Reps: "12-15", RestSeconds: 30},
		Isolation: exercisePrescription{Sets: 3, Reps: "15-20", RestSeconds: 30},
	},
	domain.DayPower: {
		Compound:  exercisePrescription{Sets: 5, Reps: "3", RestSeconds: 180},
		Isolation: exercisePrescription{Sets: 3, Reps: "5", RestSeconds: 120},
	},
	domain.DayAthletic: {
		Compound:  exercisePrescription{Sets: 4, Reps: "5", RestSeconds: 150},
		Isolation: exercisePrescription{Sets: 3, Reps: "8", RestSeconds: 90},
	},
	domain.DayFunctional: {
		Compound:  exercisePrescription{Sets: 3, Reps: "8-10", RestSeconds: 90},
		Isolation: exercisePrescription{Sets: 3, Reps: "10-12", RestSeconds: 60},
	},
}

var defaultPrescriptions = prescriptionPair{
	Compound:  exercisePrescription{Sets: 3, Reps: "8-10", RestSeconds: 90},
	Isolation: exercisePrescription{Sets: 3, Reps: "10-12", RestSeconds: 60},
}

// Base exercise counts per day type, before experience adjustment.
var targetCountByDayType = map[domain.DayType]int{
	domain.DayStrength:    7,
	domain.DayHypertrophy: 8,
	domain.DayEndurance:   10,
	domain.DayCircuit:     10,
	domain.DayMetabolic:   10,
	domain.DayPower:       6,
	domain.DayAthletic:    6,
	domain.DayFunctional:  8,
}

const defaultTargetCount = 7

// Selector picks concrete exercises for a workout day. The random source is
// injectable so tests can pin exact selections.
type Selector struct {
	rng *rand.Rand
}

// NewSelector returns a selector over the given random source; nil falls
// back to a time-seeded source.
func NewSelector(rng *rand.Rand) *Selector {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Selector{rng: rng}
}

// SelectForDay populates one workout day from the catalog using the staged
// filter-relaxation pipeline. Each stage only applies when it leaves enough
// candidates; the last resort is the whole catalog.
func (s *Selector) SelectForDay(catalog []domain.Exercise, targetGroups []domain.MuscleGroup, level domain.TrainingLevel, limitations []string, dayType domain.DayType) ([]domain.WorkoutExercise, error) {
	// Stage 1: muscle-group match, broadened to related groups and finally
	// the full catalog when too narrow.
	pool := filterByMuscle(catalog, targetGroups)
	if len(pool) < minCandidatePool {
		pool = filterByMuscle(catalog, broadenGroups(targetGroups))
	}
	if len(pool) < minCandidatePool {
		pool = catalog
	}
	if len(pool) == 0 {
		return nil, &InsufficientExerciseDataError{TargetGroups: targetGroups}
	}

	// Stage 2: difficulty vs. experience, dropped when it starves the pool.
	if filtered := filterByDifficulty(pool, level); len(filtered) >= minCandidatePool {
		pool = filtered
	}

	// Stage 3: contraindications vs. limitations, dropped likewise.
	if filtered := filterByContraindications(pool, limitations); len(filtered) >= minCandidatePool {
		pool = filtered
	}

	count := targetExerciseCount(dayType, level, len(pool))
	selected := s.drawExercises(pool, targetGroups, count)

	workout := make([]domain.WorkoutExercise, 0, len(selected))
	for _, ex := range selected {
		p := prescriptionFor(dayType, ex.IsCompound)
		workout = append(workout, domain.WorkoutExercise{
			Exercise:       ex,
			Sets:           p.Sets,
			Reps:           p.Reps,
			RestSeconds:    p.RestSeconds,
			AlternativeIDs: alternativesFor(catalog, ex, selected),
		})
	}
	return workout, nil
}

// BuildWorkoutDay wraps SelectForDay into the day-plan shape the UI renders.
func (s *Selector) BuildWorkoutDay(catalog []domain.Exercise, targetGroups []domain.MuscleGroup, level domain.TrainingLevel, limitations []string, dayType domain.DayType) (*domain.WorkoutDayPlan, error) {
	exercises, err := s.SelectForDay(catalog, targetGroups, level, limitations, dayType)
	if err != nil {
		return nil, err
	}
	return &domain.WorkoutDayPlan{
		TargetMuscleGroups: targetGroups,
		DayType:            dayType,
		Exercises:          exercises,
	}, nil
}

func filterByMuscle(catalog []domain.Exercise, groups []domain.MuscleGroup) []domain.Exercise {
	var out []domain.Exercise
	for i := range catalog {
		for _, g := range groups {
			if catalog[i].Targets(g) {
				out = append(out, catalog[i])
				break
			}
		}
	}
	return out
}

func broadenGroups(groups []domain.MuscleGroup) []domain.MuscleGroup {
	broadened := append([]domain.MuscleGroup{}, groups...)
	seen := make(map[domain.MuscleGroup]bool, len(groups))
	for _, g := range groups {
		seen[g] = true
	}
	for _, g := range groups {
		for _, related := range relatedMuscleGroups[g] {
			if !seen[related] {
				seen[related] = true
				broadened = append(broadened, related)
			}
		}
	}
	return broadened
}

// filterByDifficulty drops movements graded out of reach: beginners lose
// advanced-only movements, advanced and elite trainees lose beginner-only
// ones.
func filterByDifficulty(pool []domain.Exercise, level domain.TrainingLevel) []domain.Exercise {
	var out []domain.Exercise
	for _, ex := range pool {
		switch level {
		case domain.LevelBeginner:
			if ex.Difficulty == domain.DifficultyAdvanced {
				continue
			}
		case domain.LevelAdvanced, domain.LevelElite:
			if ex.Difficulty == domain.DifficultyBeginner {
				continue
			}
		}
		out = append(out, ex)
	}
	return out
}

func filterByContraindications(pool []domain.Exercise, limitations []string) []domain.Exercise {
	if len(limitations) == 0 {
		return pool
	}
	var out []domain.Exercise
	for _, ex := range pool {
		if !intersects(ex.Contraindications, limitations) {
			out = append(out, ex)
		}
	}
	return out
}

func intersects(a, b []string) bool {
	for _, x := range a {
		for _, y := range b {
			if x == y {
				return true
			}
		}
	}
	return false
}

// targetExerciseCount sizes the day: base by day type, adjusted by
// experience, clamped to the pool, never below 3 (pool permitting).
func targetExerciseCount(dayType domain.DayType, level domain.TrainingLevel, poolSize int) int {
	count, ok := targetCountByDayType[dayType]
	if !ok {
		count = defaultTargetCount
	}
	switch level {
	case domain.LevelBeginner:
		count -= 2
	case domain.LevelAdvanced, domain.LevelElite:
		count++
	}
	if count > poolSize {
		count = poolSize
	}
	if count < 3 {
		count = 3
		if count > poolSize {
			count = poolSize
		}
	}
	return count
}

// drawExercises guarantees one exercise per originally targeted group, then
// fills the remainder uniformly without replacement.
func (s *Selector) drawExercises(pool []domain.Exercise, targetGroups []domain.MuscleGroup, count int) []domain.Exercise {
	remaining := append([]domain.Exercise{}, pool...)
	var selected []domain.Exercise

	take := func(idx int) domain.Exercise {
		ex := remaining[idx]
		remaining = append(remaining[:idx], remaining[idx+1:]...)
		return ex
	}

	for _, group := range targetGroups {
		if len(selected) == count {
			break
		}
		var candidates []int
		for i := range remaining {
			if remaining[i].Targets(group) {
				candidates = append(candidates, i)
			}
		}
		if len(candidates) == 0 {
			continue
		}
		selected = append(selected, take(candidates[s.rng.Intn(len(candidates))]))
	}

	for len(selected) < count && len(remaining) > 0 {
		selected = append(selected, take(s.rng.Intn(len(remaining))))
	}
	return selected
}

func prescriptionFor(dayType domain.DayType, isCompound bool) exercisePrescription {
	pair, ok := prescriptionsByDayType[dayType]
	if !ok {
		pair = defaultPrescriptions
	}
	if isCompound {
		return pair.Compound
	}
	return pair.Isolation
}

// alternativesFor collects up to 3 interchangeable exercises: same compound
// flag, sharing a primary muscle, not already selected for the day.
func alternativesFor(catalog []domain.Exercise, ex domain.Exercise, selected []domain.Exercise) []primitive.ObjectID {
	selectedIDs := make(map[primitive.ObjectID]bool, len(selected))
	for _, sel := range selected {
		selectedIDs[sel.ID] = true
	}

	var alts []primitive.ObjectID
	for i := range catalog {
		cand := &catalog[i]
		if len(alts) == maxAlternatives {
			break
		}
		if cand.ID == ex.ID || selectedIDs[cand.ID] || cand.IsCompound != ex.IsCompound {
			continue
		}
		for _, g := range ex.PrimaryMuscles {
			if cand.Targets(g) {
				alts = append(alts, cand.ID)
				break
			}
		}
	}
	return alts
}
