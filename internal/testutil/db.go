package testutil

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/localnerve/routinesdb/internal/config"
	"github.com/localnerve/routinesdb/internal/database"
	"github.com/localnerve/routinesdb/internal/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewTestConfig returns the defaults with a cheap bcrypt cost and no session gc
func NewTestConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg, err := config.LoadFrom(map[string]string{
		"DB_DATABASE":         ":memory:",
		"BCRYPT_COST":         "4",
		"SESSION_GC_INTERVAL": "0s",
	})
	if err != nil {
		t.Fatalf("Failed to build test config: %v", err)
	}
	return cfg
}

// NewTestDB opens a private in-memory SQLite database with the schema migrated.
// Each call gets its own shared-cache name so pooled connections see the same data.
func NewTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	if err := database.AutoMigrate(db); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	t.Cleanup(func() {
		database.Close(db)
	})

	return db
}

// CreateUser inserts a user with the given password
func CreateUser(t *testing.T, db *gorm.DB, username, password string) *models.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("Failed to hash password: %v", err)
	}
	user := models.User{Username: username, PasswordHash: string(hash)}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("Failed to create user %s: %v", username, err)
	}
	return &user
}

// CreateExercise inserts a library exercise
func CreateExercise(t *testing.T, db *gorm.DB, name, muscleGroup, equipment string) *models.Exercise {
	t.Helper()
	exercise := models.Exercise{Name: name}
	if muscleGroup != "" {
		exercise.MuscleGroup = &muscleGroup
	}
	if equipment != "" {
		exercise.Equipment = &equipment
	}
	if err := db.Create(&exercise).Error; err != nil {
		t.Fatalf("Failed to create exercise %s: %v", name, err)
	}
	return &exercise
}

// CreateRoutine inserts a routine owned by userID
func CreateRoutine(t *testing.T, db *gorm.DB, userID uint64, name string) *models.Routine {
	t.Helper()
	routine := models.Routine{UserID: userID, Name: name}
	if err := db.Create(&routine).Error; err != nil {
		t.Fatalf("Failed to create routine %s: %v", name, err)
	}
	return &routine
}

// CreateEntry inserts a routine entry at the given order
func CreateEntry(t *testing.T, db *gorm.DB, routineID, exerciseID uint64, order int) *models.RoutineExercise {
	t.Helper()
	entry := models.RoutineExercise{
		RoutineID:  routineID,
		ExerciseID: exerciseID,
		Sets:       3,
		Reps:       10,
		Order:      order,
	}
	if err := db.Omit("Exercise").Create(&entry).Error; err != nil {
		t.Fatalf("Failed to create routine exercise: %v", err)
	}
	return &entry
}

// CountRows counts the rows of model matching the optional condition
func CountRows(t *testing.T, db *gorm.DB, model interface{}, query string, args ...interface{}) int64 {
	t.Helper()
	var count int64
	tx := db.Model(model)
	if query != "" {
		tx = tx.Where(query, args...)
	}
	if err := tx.Count(&count).Error; err != nil {
		t.Fatalf("Failed to count rows: %v", err)
	}
	return count
}
