package services

import (
	"errors"
	"strings"

	"github.com/localnerve/routinesdb/internal/models"
	"github.com/localnerve/routinesdb/internal/types"
	"gorm.io/gorm"
)

// Prescription defaults for a new routine entry
const (
	DefaultSets = 3
	DefaultReps = 10
)

const maxVariationTypeLength = 50

// EntryInput carries routine entry fields for create and partial update.
// ExerciseID is only read on create.
type EntryInput struct {
	ExerciseID    types.FlexID           `json:"exercise_id"`
	Name          types.Optional[string] `json:"name"`
	Description   types.Optional[string] `json:"description"`
	VariationType types.Optional[string] `json:"variation_type"`
	Sets          types.FlexInt          `json:"sets"`
	Reps          types.FlexInt          `json:"reps"`
	Weight        types.FlexFloat        `json:"weight"`
	Notes         types.Optional[string] `json:"notes"`
	Order         types.FlexInt          `json:"order"`
}

// ReorderInput lists entry ids in their new order
type ReorderInput struct {
	EntryIDs types.FlexList[types.FlexID] `json:"entry_ids"`
}

// IDs returns the supplied ids, rejecting blanks
func (in ReorderInput) IDs() ([]uint64, error) {
	ids := make([]uint64, 0, len(in.EntryIDs))
	for _, f := range in.EntryIDs.Slice() {
		id, ok := f.Get()
		if !ok {
			return nil, types.NewValidationError("entry_ids cannot contain empty values")
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// validateCount checks a positive integer field. Null counts as absent
// unless the column cannot be cleared.
func validateCount(label string, f types.FlexInt, allowNull bool) (int, bool, error) {
	if f.IsNull() && !allowNull {
		return 0, false, types.NewValidationError("%s must be a number", label)
	}
	v, ok := f.Get()
	if ok && v < 1 {
		return 0, false, types.NewValidationError("%s must be at least 1", label)
	}
	return v, ok, nil
}

func validateWeight(f types.FlexFloat) (*float64, error) {
	w := f.Ptr()
	if w != nil && *w < 0 {
		return nil, types.NewValidationError("Weight cannot be negative")
	}
	return w, nil
}

// variationName validates a supplied variation name. Null clears it.
func variationName(value *string) (*string, error) {
	if value == nil {
		return nil, nil
	}
	name, err := normalizeName("Variation", value)
	if err != nil {
		return nil, err
	}
	return &name, nil
}

func normalizeNotes(value *string) *string {
	if value == nil || strings.TrimSpace(*value) == "" {
		return nil
	}
	return value
}

// ListEntries returns the entries of an owned routine in display order
func ListEntries(db *gorm.DB, userID, routineID uint64) ([]models.RoutineExercise, error) {
	if _, err := ResolveOwnedRoutine(db, userID, routineID); err != nil {
		return nil, err
	}

	entries := []models.RoutineExercise{}
	err := db.Preload("Exercise").
		Where("routine_id = ?", routineID).
		Order("sort_order ASC").
		Order("id ASC").
		Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}

// GetEntry returns an owned routine entry with its exercise
func GetEntry(db *gorm.DB, userID, entryID uint64) (*models.RoutineExercise, error) {
	if _, err := ResolveOwnedEntry(db, userID, entryID); err != nil {
		return nil, err
	}

	var entry models.RoutineExercise
	if err := db.Preload("Exercise").Take(&entry, entryID).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}

// AddEntry attaches an exercise to an owned routine. Without an explicit
// order the entry goes to the end of the routine.
func AddEntry(db *gorm.DB, userID, routineID uint64, in EntryInput) (*models.RoutineExercise, error) {
	exerciseID, ok := in.ExerciseID.Get()
	if !ok {
		return nil, types.NewValidationError("exercise_id is required")
	}
	sets, hasSets, err := validateCount("sets", in.Sets, true)
	if err != nil {
		return nil, err
	}
	if !hasSets {
		sets = DefaultSets
	}
	reps, hasReps, err := validateCount("reps", in.Reps, true)
	if err != nil {
		return nil, err
	}
	if !hasReps {
		reps = DefaultReps
	}
	weight, err := validateWeight(in.Weight)
	if err != nil {
		return nil, err
	}
	order, hasOrder, err := validateCount("order", in.Order, true)
	if err != nil {
		return nil, err
	}
	name, err := variationName(in.Name.Ptr())
	if err != nil {
		return nil, err
	}
	variationType, err := optionalText(in.VariationType.Ptr(), "variation_type", maxVariationTypeLength)
	if err != nil {
		return nil, err
	}
	description, _ := optionalText(in.Description.Ptr(), "description", 0)

	entry := models.RoutineExercise{
		RoutineID:     routineID,
		ExerciseID:    exerciseID,
		Name:          name,
		Description:   description,
		VariationType: variationType,
		Sets:          sets,
		Reps:          reps,
		Weight:        weight,
		Notes:         normalizeNotes(in.Notes.Ptr()),
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if _, err := lockOwnedRoutine(tx, userID, routineID); err != nil {
			return err
		}

		exercise, err := GetExercise(tx, exerciseID)
		if err != nil {
			return err
		}
		entry.Exercise = *exercise

		if hasOrder {
			entry.Order = order
		} else {
			next, err := NextOrder(tx, routineID)
			if err != nil {
				return err
			}
			entry.Order = next
		}

		return tx.Omit("Exercise").Create(&entry).Error
	})
	if err != nil {
		return nil, err
	}

	return &entry, nil
}

// UpdateEntry overwrites only the fields present in the input
func UpdateEntry(db *gorm.DB, userID, entryID uint64, in EntryInput) (*models.RoutineExercise, error) {
	updates := map[string]interface{}{}

	sets, hasSets, err := validateCount("sets", in.Sets, false)
	if err != nil {
		return nil, err
	}
	if hasSets {
		updates["sets"] = sets
	}
	reps, hasReps, err := validateCount("reps", in.Reps, false)
	if err != nil {
		return nil, err
	}
	if hasReps {
		updates["reps"] = reps
	}
	order, hasOrder, err := validateCount("order", in.Order, false)
	if err != nil {
		return nil, err
	}
	if hasOrder {
		updates["sort_order"] = order
	}
	if in.Weight.IsSet() || in.Weight.IsNull() {
		weight, err := validateWeight(in.Weight)
		if err != nil {
			return nil, err
		}
		updates["weight"] = weight
	}
	if in.Notes.Present() {
		updates["notes"] = normalizeNotes(in.Notes.Ptr())
	}
	if in.Name.Present() {
		name, err := variationName(in.Name.Ptr())
		if err != nil {
			return nil, err
		}
		updates["name"] = name
	}
	if in.Description.Present() {
		description, _ := optionalText(in.Description.Ptr(), "description", 0)
		updates["description"] = description
	}
	if in.VariationType.Present() {
		variationType, err := optionalText(in.VariationType.Ptr(), "variation_type", maxVariationTypeLength)
		if err != nil {
			return nil, err
		}
		updates["variation_type"] = variationType
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		entry, err := ResolveOwnedEntry(tx, userID, entryID)
		if err != nil {
			return err
		}
		if len(updates) == 0 {
			return nil
		}
		return tx.Model(entry).Updates(updates).Error
	})
	if err != nil {
		return nil, err
	}

	return GetEntry(db, userID, entryID)
}

// RemoveEntry deletes an owned routine entry
func RemoveEntry(db *gorm.DB, userID, entryID uint64) error {
	return db.Transaction(func(tx *gorm.DB) error {
		entry, err := ResolveOwnedEntry(tx, userID, entryID)
		if err != nil {
			return err
		}
		result := tx.Delete(entry)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return errors.New("routine exercise vanished during delete")
		}
		return nil
	})
}
