package services_test

import (
	"strings"
	"testing"

	"github.com/localnerve/routinesdb/internal/models"
	"github.com/localnerve/routinesdb/internal/services"
	"github.com/localnerve/routinesdb/internal/testutil"
	"github.com/localnerve/routinesdb/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const testCost = bcrypt.MinCost

func TestHashAndVerifyPassword(t *testing.T) {
	hash, err := services.HashPassword("hunter22", testCost)
	require.NoError(t, err)

	assert.NotEqual(t, "hunter22", hash)
	assert.True(t, services.VerifyPassword(hash, "hunter22"))
	assert.False(t, services.VerifyPassword(hash, "hunter23"))
	assert.False(t, services.VerifyPassword("not-a-hash", "hunter22"))
}

func TestHashPasswordSalts(t *testing.T) {
	first, err := services.HashPassword("same", testCost)
	require.NoError(t, err)
	second, err := services.HashPassword("same", testCost)
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestNeedsRehash(t *testing.T) {
	hash, err := services.HashPassword("pw", testCost)
	require.NoError(t, err)

	assert.False(t, services.NeedsRehash(hash, testCost))
	assert.True(t, services.NeedsRehash(hash, testCost+1))
	assert.True(t, services.NeedsRehash("garbage", testCost))
}

func TestRegister(t *testing.T) {
	db := testutil.NewTestDB(t)

	user, err := services.Register(db, services.Credentials{Username: "alice", Password: "secret"}, testCost)
	require.NoError(t, err)
	assert.NotZero(t, user.ID)
	assert.Equal(t, "alice", user.Username)
	assert.NotEqual(t, "secret", user.PasswordHash)
	assert.True(t, services.VerifyPassword(user.PasswordHash, "secret"))
}

func TestRegisterRejectsDuplicateUsername(t *testing.T) {
	db := testutil.NewTestDB(t)
	testutil.CreateUser(t, db, "alice", "secret")

	_, err := services.Register(db, services.Credentials{Username: "alice", Password: "other"}, testCost)
	require.ErrorIs(t, err, types.ErrConflict)
	assert.EqualValues(t, 1, testutil.CountRows(t, db, &models.User{}, "username = ?", "alice"))
}

func TestRegisterValidation(t *testing.T) {
	db := testutil.NewTestDB(t)

	cases := map[string]services.Credentials{
		"missing username": {Password: "secret"},
		"missing password": {Username: "alice"},
		"blank username":   {Username: "   ", Password: "secret"},
		"padded username":  {Username: " alice", Password: "secret"},
		"long username":    {Username: strings.Repeat("a", 81), Password: "secret"},
		"long password":    {Username: "alice", Password: strings.Repeat("p", 73)},
	}

	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := services.Register(db, in, testCost)
			assert.ErrorIs(t, err, types.ErrValidation)
		})
	}
	assert.EqualValues(t, 0, testutil.CountRows(t, db, &models.User{}, ""))
}

func TestAuthenticate(t *testing.T) {
	db := testutil.NewTestDB(t)
	created := testutil.CreateUser(t, db, "admin", "admin123")

	user, err := services.Authenticate(db, services.Credentials{Username: "admin", Password: "admin123"}, testCost)
	require.NoError(t, err)
	assert.Equal(t, created.ID, user.ID)

	_, err = services.Authenticate(db, services.Credentials{Username: "admin", Password: "wrong"}, testCost)
	assert.ErrorIs(t, err, types.ErrInvalidCredentials)

	_, err = services.Authenticate(db, services.Credentials{Username: "nobody", Password: "admin123"}, testCost)
	assert.ErrorIs(t, err, types.ErrInvalidCredentials)

	_, err = services.Authenticate(db, services.Credentials{Username: "ADMIN", Password: "admin123"}, testCost)
	assert.ErrorIs(t, err, types.ErrInvalidCredentials)

	_, err = services.Authenticate(db, services.Credentials{Username: "admin"}, testCost)
	assert.ErrorIs(t, err, types.ErrValidation)
}

func TestAuthenticateUpgradesHashCost(t *testing.T) {
	db := testutil.NewTestDB(t)
	created := testutil.CreateUser(t, db, "admin", "admin123")

	_, err := services.Authenticate(db, services.Credentials{Username: "admin", Password: "admin123"}, testCost+1)
	require.NoError(t, err)

	var stored models.User
	require.NoError(t, db.Take(&stored, created.ID).Error)
	cost, err := bcrypt.Cost([]byte(stored.PasswordHash))
	require.NoError(t, err)
	assert.Equal(t, testCost+1, cost)
	assert.True(t, services.VerifyPassword(stored.PasswordHash, "admin123"))
}

func TestChangePassword(t *testing.T) {
	db := testutil.NewTestDB(t)
	user := testutil.CreateUser(t, db, "alice", "old-secret")

	err := services.ChangePassword(db, user.ID, services.PasswordChange{CurrentPassword: "wrong", NewPassword: "new-secret"}, testCost)
	require.ErrorIs(t, err, types.ErrInvalidCredentials)

	err = services.ChangePassword(db, user.ID, services.PasswordChange{CurrentPassword: "old-secret"}, testCost)
	require.ErrorIs(t, err, types.ErrValidation)

	err = services.ChangePassword(db, user.ID, services.PasswordChange{CurrentPassword: "old-secret", NewPassword: "new-secret"}, testCost)
	require.NoError(t, err)

	changed, err := services.GetUser(db, user.ID)
	require.NoError(t, err)
	assert.Equal(t, user.SessionVersion+1, changed.SessionVersion)

	_, err = services.Authenticate(db, services.Credentials{Username: "alice", Password: "old-secret"}, testCost)
	assert.ErrorIs(t, err, types.ErrInvalidCredentials)
	_, err = services.Authenticate(db, services.Credentials{Username: "alice", Password: "new-secret"}, testCost)
	assert.NoError(t, err)
}

func TestDeleteAccountRemovesOwnedData(t *testing.T) {
	db := testutil.NewTestDB(t)
	alice := testutil.CreateUser(t, db, "alice", "secret")
	bob := testutil.CreateUser(t, db, "bob", "secret")
	squat := testutil.CreateExercise(t, db, "Squat", "Legs", "Barbell")

	aliceRoutine := testutil.CreateRoutine(t, db, alice.ID, "Leg Day")
	testutil.CreateEntry(t, db, aliceRoutine.ID, squat.ID, 1)
	bobRoutine := testutil.CreateRoutine(t, db, bob.ID, "Leg Day")
	testutil.CreateEntry(t, db, bobRoutine.ID, squat.ID, 1)

	require.NoError(t, services.DeleteAccount(db, alice.ID))

	assert.EqualValues(t, 0, testutil.CountRows(t, db, &models.User{}, "id = ?", alice.ID))
	assert.EqualValues(t, 0, testutil.CountRows(t, db, &models.Routine{}, "user_id = ?", alice.ID))
	assert.EqualValues(t, 0, testutil.CountRows(t, db, &models.RoutineExercise{}, "routine_id = ?", aliceRoutine.ID))
	assert.EqualValues(t, 1, testutil.CountRows(t, db, &models.RoutineExercise{}, "routine_id = ?", bobRoutine.ID))
	assert.EqualValues(t, 1, testutil.CountRows(t, db, &models.Exercise{}, ""))

	assert.ErrorIs(t, services.DeleteAccount(db, alice.ID), types.ErrNotFound)
}
