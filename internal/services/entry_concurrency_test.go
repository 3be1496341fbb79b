package services_test

import (
	"path/filepath"
	"sort"
	"sync"
	"testing"

	"github.com/localnerve/routinesdb/internal/config"
	"github.com/localnerve/routinesdb/internal/database"
	"github.com/localnerve/routinesdb/internal/services"
	"github.com/localnerve/routinesdb/internal/testutil"
	"github.com/localnerve/routinesdb/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConcurrentAppendsOnSQLiteFile(t *testing.T) {
	const writers = 24

	for _, dbType := range []string{"sqlite", "sqlite-purego"} {
		t.Run(dbType, func(t *testing.T) {
			cfg, err := config.LoadFrom(map[string]string{
				"DB_TYPE":             dbType,
				"DB_DATABASE":         filepath.Join(t.TempDir(), "routines.db"),
				"DB_LOG_LEVEL":        "silent",
				"DB_CONNECTION_LIMIT": "8",
			})
			require.NoError(t, err)

			db, err := database.Connect(cfg)
			require.NoError(t, err)
			t.Cleanup(func() { database.Close(db) })
			require.NoError(t, database.AutoMigrate(db))

			user := testutil.CreateUser(t, db, "racer", "secret")
			routine := testutil.CreateRoutine(t, db, user.ID, "Race")
			exercise := testutil.CreateExercise(t, db, "Deadlift", "Back", "Barbell")

			var wg sync.WaitGroup
			errs := make(chan error, writers)
			for i := 0; i < writers; i++ {
				wg.Add(1)
				go func() {
					defer wg.Done()
					_, err := services.AddEntry(db, user.ID, routine.ID, services.EntryInput{
						ExerciseID: types.NewFlexNumber(exercise.ID),
					})
					errs <- err
				}()
			}
			wg.Wait()
			close(errs)
			for err := range errs {
				require.NoError(t, err)
			}

			entries, err := services.ListEntries(db, user.ID, routine.ID)
			require.NoError(t, err)
			got := orders(entries)
			sort.Ints(got)
			want := make([]int, writers)
			for i := range want {
				want[i] = i + 1
			}
			assert.Equal(t, want, got)
		})
	}
}
