package services_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/localnerve/routinesdb/internal/models"
	"github.com/localnerve/routinesdb/internal/services"
	"github.com/localnerve/routinesdb/internal/testutil"
	"github.com/localnerve/routinesdb/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func routineInput(t *testing.T, body string) services.RoutineInput {
	t.Helper()
	var in services.RoutineInput
	require.NoError(t, json.Unmarshal([]byte(body), &in))
	return in
}

func TestCreateRoutine(t *testing.T) {
	db := testutil.NewTestDB(t)
	user := testutil.CreateUser(t, db, "alice", "secret")

	routine, err := services.CreateRoutine(db, user.ID, routineInput(t, `{"name":"  Push Day ","day_of_week":"Monday","description":""}`))
	require.NoError(t, err)

	assert.NotZero(t, routine.ID)
	assert.Equal(t, user.ID, routine.UserID)
	assert.Equal(t, "Push Day", routine.Name)
	require.NotNil(t, routine.DayOfWeek)
	assert.Equal(t, "Monday", *routine.DayOfWeek)
	assert.Nil(t, routine.Description)
	assert.Empty(t, routine.Entries)
	assert.NotNil(t, routine.Entries)
}

func TestCreateRoutineValidation(t *testing.T) {
	db := testutil.NewTestDB(t)
	user := testutil.CreateUser(t, db, "alice", "secret")

	cases := map[string]string{
		"missing name": `{"day_of_week":"Monday"}`,
		"null name":    `{"name":null}`,
		"blank name":   `{"name":"   "}`,
		"long name":    `{"name":"` + strings.Repeat("x", 101) + `"}`,
		"long day":     `{"name":"Push","day_of_week":"Everyday-ish"}`,
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := services.CreateRoutine(db, user.ID, routineInput(t, body))
			assert.ErrorIs(t, err, types.ErrValidation)
		})
	}
	assert.EqualValues(t, 0, testutil.CountRows(t, db, &models.Routine{}, ""))
}

func TestUpdateRoutineIsPartial(t *testing.T) {
	db := testutil.NewTestDB(t)
	user := testutil.CreateUser(t, db, "alice", "secret")
	routine, err := services.CreateRoutine(db, user.ID, routineInput(t, `{"name":"Push Day","day_of_week":"Monday","description":"Chest focus"}`))
	require.NoError(t, err)

	updated, err := services.UpdateRoutine(db, user.ID, routine.ID, routineInput(t, `{"day_of_week":"Friday"}`))
	require.NoError(t, err)
	assert.Equal(t, "Push Day", updated.Name)
	assert.Equal(t, "Friday", *updated.DayOfWeek)
	assert.Equal(t, "Chest focus", *updated.Description)

	updated, err = services.UpdateRoutine(db, user.ID, routine.ID, routineInput(t, `{"description":null}`))
	require.NoError(t, err)
	assert.Nil(t, updated.Description)
	assert.Equal(t, "Friday", *updated.DayOfWeek)

	updated, err = services.UpdateRoutine(db, user.ID, routine.ID, routineInput(t, `{}`))
	require.NoError(t, err)
	assert.Equal(t, "Push Day", updated.Name)

	_, err = services.UpdateRoutine(db, user.ID, routine.ID, routineInput(t, `{"name":""}`))
	assert.ErrorIs(t, err, types.ErrValidation)
}

func TestRoutinesAreScopedToOwner(t *testing.T) {
	db := testutil.NewTestDB(t)
	alice := testutil.CreateUser(t, db, "alice", "secret")
	bob := testutil.CreateUser(t, db, "bob", "secret")
	routine := testutil.CreateRoutine(t, db, alice.ID, "Alice Only")

	_, err := services.GetRoutine(db, bob.ID, routine.ID)
	assert.ErrorIs(t, err, types.ErrNotFound)

	_, err = services.UpdateRoutine(db, bob.ID, routine.ID, routineInput(t, `{"name":"Stolen"}`))
	assert.ErrorIs(t, err, types.ErrNotFound)

	assert.ErrorIs(t, services.DeleteRoutine(db, bob.ID, routine.ID), types.ErrNotFound)

	_, err = services.GetRoutine(db, alice.ID, routine.ID+100)
	assert.ErrorIs(t, err, types.ErrNotFound)

	routines, err := services.ListRoutines(db, bob.ID)
	require.NoError(t, err)
	assert.Empty(t, routines)

	stored, err := services.GetRoutine(db, alice.ID, routine.ID)
	require.NoError(t, err)
	assert.Equal(t, "Alice Only", stored.Name)
}

func TestGetRoutineIncludesEntriesInOrder(t *testing.T) {
	db := testutil.NewTestDB(t)
	user := testutil.CreateUser(t, db, "alice", "secret")
	squat := testutil.CreateExercise(t, db, "Squat", "Legs", "Barbell")
	lunge := testutil.CreateExercise(t, db, "Lunge", "Legs", "Dumbbell")
	routine := testutil.CreateRoutine(t, db, user.ID, "Legs")
	testutil.CreateEntry(t, db, routine.ID, squat.ID, 2)
	testutil.CreateEntry(t, db, routine.ID, lunge.ID, 1)

	stored, err := services.GetRoutine(db, user.ID, routine.ID)
	require.NoError(t, err)
	require.Len(t, stored.Entries, 2)
	assert.Equal(t, "Lunge", stored.Entries[0].Exercise.Name)
	assert.Equal(t, "Squat", stored.Entries[1].Exercise.Name)

	routines, err := services.ListRoutines(db, user.ID)
	require.NoError(t, err)
	require.Len(t, routines, 1)
	require.Len(t, routines[0].Entries, 2)
	assert.Equal(t, 1, routines[0].Entries[0].Order)
}

func TestDeleteRoutineRemovesEntries(t *testing.T) {
	db := testutil.NewTestDB(t)
	user := testutil.CreateUser(t, db, "alice", "secret")
	squat := testutil.CreateExercise(t, db, "Squat", "Legs", "Barbell")
	routine := testutil.CreateRoutine(t, db, user.ID, "Legs")
	other := testutil.CreateRoutine(t, db, user.ID, "More Legs")
	testutil.CreateEntry(t, db, routine.ID, squat.ID, 1)
	testutil.CreateEntry(t, db, other.ID, squat.ID, 1)

	require.NoError(t, services.DeleteRoutine(db, user.ID, routine.ID))

	assert.EqualValues(t, 0, testutil.CountRows(t, db, &models.Routine{}, "id = ?", routine.ID))
	assert.EqualValues(t, 0, testutil.CountRows(t, db, &models.RoutineExercise{}, "routine_id = ?", routine.ID))
	assert.EqualValues(t, 1, testutil.CountRows(t, db, &models.RoutineExercise{}, "routine_id = ?", other.ID))
	assert.EqualValues(t, 1, testutil.CountRows(t, db, &models.Exercise{}, ""))

	_, err := services.GetRoutine(db, user.ID, routine.ID)
	assert.ErrorIs(t, err, types.ErrNotFound)
}
