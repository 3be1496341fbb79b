package services

import (
	"github.com/localnerve/routinesdb/internal/models"
	"github.com/localnerve/routinesdb/internal/types"
	"gorm.io/gorm"
	"gorm.io/hints"
)

// NextOrder returns the position after the last entry of the routine, or 1 when it is empty
func NextOrder(tx *gorm.DB, routineID uint64) (int, error) {
	var next int
	err := tx.Model(&models.RoutineExercise{}).
		Clauses(hints.CommentBefore("select", "next_order")).
		Select("COALESCE(MAX(sort_order), 0) + 1").
		Where("routine_id = ?", routineID).
		Scan(&next).Error
	if err != nil {
		return 0, err
	}
	return next, nil
}

// routineEntries lists the entries of a routine in display order
func routineEntries(tx *gorm.DB, routineID uint64) ([]models.RoutineExercise, error) {
	var entries []models.RoutineExercise
	err := tx.Where("routine_id = ?", routineID).
		Order("sort_order ASC").
		Order("id ASC").
		Find(&entries).Error
	return entries, err
}

// ReorderEntries moves the listed entries to positions 1..k in the given
// order. Entries not listed keep their relative order after them.
func ReorderEntries(db *gorm.DB, userID, routineID uint64, entryIDs []uint64) ([]models.RoutineExercise, error) {
	if len(entryIDs) == 0 {
		return nil, types.NewValidationError("entry_ids must list at least one routine exercise")
	}
	seen := make(map[uint64]bool, len(entryIDs))
	for _, id := range entryIDs {
		if seen[id] {
			return nil, types.NewValidationError("entry_ids contains duplicate id %d", id)
		}
		seen[id] = true
	}

	var result []models.RoutineExercise
	err := db.Transaction(func(tx *gorm.DB) error {
		if _, err := lockOwnedRoutine(tx, userID, routineID); err != nil {
			return err
		}

		entries, err := routineEntries(tx, routineID)
		if err != nil {
			return err
		}

		byID := make(map[uint64]models.RoutineExercise, len(entries))
		for _, e := range entries {
			byID[e.ID] = e
		}
		for _, id := range entryIDs {
			if _, ok := byID[id]; !ok {
				return types.NewNotFoundError(msgEntryNotFound)
			}
		}

		ordered := make([]models.RoutineExercise, 0, len(entries))
		for _, id := range entryIDs {
			ordered = append(ordered, byID[id])
		}
		for _, e := range entries {
			if !seen[e.ID] {
				ordered = append(ordered, e)
			}
		}

		for i := range ordered {
			position := i + 1
			if ordered[i].Order == position {
				continue
			}
			if err := tx.Model(&models.RoutineExercise{}).
				Where("id = ?", ordered[i].ID).
				Update("sort_order", position).Error; err != nil {
				return err
			}
			ordered[i].Order = position
		}

		result = ordered
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}
