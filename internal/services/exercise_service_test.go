package services_test

import (
	"testing"

	"github.com/localnerve/routinesdb/internal/models"
	"github.com/localnerve/routinesdb/internal/services"
	"github.com/localnerve/routinesdb/internal/testutil"
	"github.com/localnerve/routinesdb/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedLibrary(t *testing.T, db *gorm.DB) {
	testutil.CreateExercise(t, db, "Bench Press", "Chest", "Barbell")
	testutil.CreateExercise(t, db, "Incline Dumbbell Press", "Chest", "Dumbbell")
	testutil.CreateExercise(t, db, "Push-up", "Chest", "")
	testutil.CreateExercise(t, db, "Overhead Press", "Shoulders", "Barbell")
	testutil.CreateExercise(t, db, "Leg Press", "Legs", "Machine")
	testutil.CreateExercise(t, db, "100% Effort_Sprint", "", "")
}

func names(exercises []models.Exercise) []string {
	out := make([]string, 0, len(exercises))
	for _, e := range exercises {
		out = append(out, e.Name)
	}
	return out
}

func TestListExercisesFilters(t *testing.T) {
	db := testutil.NewTestDB(t)
	seedLibrary(t, db)

	cases := []struct {
		name   string
		filter services.ExerciseFilter
		want   []string
	}{
		{"no filter", services.ExerciseFilter{}, []string{
			"Bench Press", "Incline Dumbbell Press", "Push-up", "Overhead Press", "Leg Press", "100% Effort_Sprint",
		}},
		{"muscle group", services.ExerciseFilter{MuscleGroup: "Chest"}, []string{"Bench Press", "Incline Dumbbell Press", "Push-up"}},
		{"equipment", services.ExerciseFilter{Equipment: "Barbell"}, []string{"Bench Press", "Overhead Press"}},
		{"search is case-insensitive", services.ExerciseFilter{Search: "PRESS"}, []string{
			"Bench Press", "Incline Dumbbell Press", "Overhead Press", "Leg Press",
		}},
		{"filters combine", services.ExerciseFilter{MuscleGroup: "Chest", Search: "press"}, []string{"Bench Press", "Incline Dumbbell Press"}},
		{"muscle group is exact", services.ExerciseFilter{MuscleGroup: "chest"}, []string{}},
		{"percent is literal", services.ExerciseFilter{Search: "%"}, []string{"100% Effort_Sprint"}},
		{"underscore is literal", services.ExerciseFilter{Search: "t_s"}, []string{"100% Effort_Sprint"}},
		{"no match", services.ExerciseFilter{Search: "deadlift"}, []string{}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			exercises, err := services.ListExercises(db, tc.filter)
			require.NoError(t, err)
			assert.NotNil(t, exercises)
			assert.Equal(t, tc.want, names(exercises))
		})
	}
}

func TestListExercisesSearchFoldsBothSides(t *testing.T) {
	db := testutil.NewTestDB(t)
	testutil.CreateExercise(t, db, "ÜBUNG Row", "Back", "Cable")
	testutil.CreateExercise(t, db, "Übung Curl", "Arms", "Dumbbell")

	for _, search := range []string{"Übung", "ÜBUNG", "Übung R"} {
		exercises, err := services.ListExercises(db, services.ExerciseFilter{Search: search})
		require.NoError(t, err)
		assert.Contains(t, names(exercises), "ÜBUNG Row", search)
	}

	// SQLite folds ASCII only, so a lower-case umlaut misses both rows
	exercises, err := services.ListExercises(db, services.ExerciseFilter{Search: "übung"})
	require.NoError(t, err)
	assert.Empty(t, exercises)
}

func TestCreateAndGetExercise(t *testing.T) {
	db := testutil.NewTestDB(t)

	created, err := services.CreateExercise(db, services.ExerciseInput{
		Name:        types.Some(" Deadlift "),
		MuscleGroup: types.Some("Back"),
		Equipment:   types.Some("Barbell"),
		Description: types.Some("  "),
	})
	require.NoError(t, err)
	assert.Equal(t, "Deadlift", created.Name)
	assert.Nil(t, created.Description)

	stored, err := services.GetExercise(db, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Deadlift", stored.Name)
	assert.Equal(t, "Back", *stored.MuscleGroup)

	_, err = services.GetExercise(db, created.ID+1)
	assert.ErrorIs(t, err, types.ErrNotFound)

	_, err = services.CreateExercise(db, services.ExerciseInput{MuscleGroup: types.Some("Back")})
	assert.ErrorIs(t, err, types.ErrValidation)
}

func TestDeleteExerciseCascadesToEntries(t *testing.T) {
	db := testutil.NewTestDB(t)
	user := testutil.CreateUser(t, db, "alice", "secret")
	routine := testutil.CreateRoutine(t, db, user.ID, "Push")
	bench := testutil.CreateExercise(t, db, "Bench Press", "Chest", "Barbell")
	dips := testutil.CreateExercise(t, db, "Dips", "Chest", "")
	testutil.CreateEntry(t, db, routine.ID, bench.ID, 1)
	testutil.CreateEntry(t, db, routine.ID, dips.ID, 2)

	require.NoError(t, services.DeleteExercise(db, bench.ID))

	assert.EqualValues(t, 0, testutil.CountRows(t, db, &models.RoutineExercise{}, "exercise_id = ?", bench.ID))
	assert.EqualValues(t, 1, testutil.CountRows(t, db, &models.RoutineExercise{}, "exercise_id = ?", dips.ID))
	assert.EqualValues(t, 1, testutil.CountRows(t, db, &models.Routine{}, ""))

	assert.ErrorIs(t, services.DeleteExercise(db, bench.ID), types.ErrNotFound)
}

func TestExerciseTags(t *testing.T) {
	db := testutil.NewTestDB(t)

	groups, err := services.MuscleGroups(db)
	require.NoError(t, err)
	assert.Empty(t, groups)

	seedLibrary(t, db)

	groups, err = services.MuscleGroups(db)
	require.NoError(t, err)
	assert.Equal(t, []string{"Chest", "Legs", "Shoulders"}, groups)

	equipment, err := services.Equipment(db)
	require.NoError(t, err)
	assert.Equal(t, []string{"Barbell", "Dumbbell", "Machine"}, equipment)
}
