package database_test

import (
	"path/filepath"
	"testing"

	puresqlite "github.com/glebarez/sqlite"
	"github.com/localnerve/routinesdb/internal/config"
	"github.com/localnerve/routinesdb/internal/database"
	"github.com/localnerve/routinesdb/internal/models"
	"github.com/localnerve/routinesdb/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func TestDialectorPerDatabaseType(t *testing.T) {
	cases := map[string]string{
		"mysql":         "mysql",
		"mariadb":       "mysql",
		"postgres":      "postgres",
		"postgresql":    "postgres",
		"sqlite":        "sqlite",
		"sqlite-purego": "sqlite",
		"sqlserver":     "sqlserver",
		"mssql":         "sqlserver",
	}

	for dbType, name := range cases {
		t.Run(dbType, func(t *testing.T) {
			dialector, err := database.Dialector(&config.Config{DBType: dbType, DBDatabase: "routines"})
			require.NoError(t, err)
			assert.Equal(t, name, dialector.Name())
		})
	}

	_, err := database.Dialector(&config.Config{DBType: "oracle"})
	assert.Error(t, err)
}

func TestExactMatchPerDatabaseType(t *testing.T) {
	cases := map[string]string{
		"mariadb":   "CAST(username AS BINARY) = ?",
		"postgres":  "username = ?",
		"sqlite":    "username = ?",
		"sqlserver": "username COLLATE Latin1_General_BIN2 = ?",
	}

	for dbType, want := range cases {
		t.Run(dbType, func(t *testing.T) {
			dialector, err := database.Dialector(&config.Config{DBType: dbType, DBDatabase: "routines"})
			require.NoError(t, err)
			db := &gorm.DB{Config: &gorm.Config{Dialector: dialector}}
			assert.Equal(t, want, database.ExactMatch(db, "username"))
		})
	}
}

func TestSQLiteWritersLockAtBegin(t *testing.T) {
	dialector, err := database.Dialector(&config.Config{DBType: "sqlite", DBDatabase: "routines.db"})
	require.NoError(t, err)
	mattn, ok := dialector.(*sqlite.Dialector)
	require.True(t, ok)
	assert.Equal(t, "routines.db?_foreign_keys=on&_txlock=immediate&_busy_timeout=5000", mattn.DSN)

	dialector, err = database.Dialector(&config.Config{DBType: "sqlite-purego", DBDatabase: "routines.db?_txlock=exclusive"})
	require.NoError(t, err)
	purego, ok := dialector.(*puresqlite.Dialector)
	require.True(t, ok)
	assert.Equal(t, "routines.db?_txlock=exclusive&_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)", purego.DSN)
}

func TestConnectMigratesSQLiteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "routines.db")
	cfg, err := config.LoadFrom(map[string]string{
		"DB_DATABASE":  path,
		"DB_LOG_LEVEL": "silent",
	})
	require.NoError(t, err)

	db, err := database.Connect(cfg)
	require.NoError(t, err)
	defer database.Close(db)

	require.NoError(t, database.AutoMigrate(db))
	for _, table := range []string{"users", "exercises", "routines", "routine_exercises", "sessions"} {
		assert.True(t, db.Migrator().HasTable(table), table)
	}

	var foreignKeys int
	require.NoError(t, db.Raw("PRAGMA foreign_keys").Scan(&foreignKeys).Error)
	assert.Equal(t, 1, foreignKeys)

	assert.False(t, database.SupportsRowLocks(db))
}

func TestForeignKeysCascade(t *testing.T) {
	db := testutil.NewTestDB(t)
	user := testutil.CreateUser(t, db, "alice", "secret")
	routine := testutil.CreateRoutine(t, db, user.ID, "Push")
	bench := testutil.CreateExercise(t, db, "Bench Press", "Chest", "Barbell")
	testutil.CreateEntry(t, db, routine.ID, bench.ID, 1)

	// Raw deletes bypass the services, so only the schema can remove the entry
	require.NoError(t, db.Exec("DELETE FROM routines WHERE id = ?", routine.ID).Error)
	assert.EqualValues(t, 0, testutil.CountRows(t, db, &models.RoutineExercise{}, ""))
}
