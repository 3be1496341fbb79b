package services

import (
	"errors"

	"github.com/localnerve/routinesdb/internal/database"
	"github.com/localnerve/routinesdb/internal/models"
	"github.com/localnerve/routinesdb/internal/types"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const (
	msgRoutineNotFound = "Routine not found"
	msgEntryNotFound   = "Routine exercise not found"
)

// ResolveOwnedRoutine returns the routine only if userID owns it.
// Absent and not owned are the same NotFound.
func ResolveOwnedRoutine(tx *gorm.DB, userID, routineID uint64) (*models.Routine, error) {
	var routine models.Routine
	err := quiet(tx).
		Where("id = ? AND user_id = ?", routineID, userID).
		Take(&routine).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, types.NewNotFoundError(msgRoutineNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &routine, nil
}

// lockOwnedRoutine resolves the routine and holds its row lock until the
// transaction ends, where the database supports row locks.
func lockOwnedRoutine(tx *gorm.DB, userID, routineID uint64) (*models.Routine, error) {
	if database.SupportsRowLocks(tx) {
		tx = tx.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	return ResolveOwnedRoutine(tx, userID, routineID)
}

// ResolveOwnedEntry returns the routine entry only if its routine belongs to userID
func ResolveOwnedEntry(tx *gorm.DB, userID, entryID uint64) (*models.RoutineExercise, error) {
	var entry models.RoutineExercise
	err := quiet(tx).
		Joins("JOIN routines ON routines.id = routine_exercises.routine_id").
		Where("routine_exercises.id = ? AND routines.user_id = ?", entryID, userID).
		Take(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, types.NewNotFoundError(msgEntryNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &entry, nil
}
