package services

import (
	"strings"
	"unicode/utf8"

	"github.com/localnerve/routinesdb/internal/models"
	"github.com/localnerve/routinesdb/internal/types"
	"gorm.io/gorm"
)

const (
	maxNameLength      = 100
	maxDayOfWeekLength = 10
)

// RoutineInput carries routine fields for create and partial update
type RoutineInput struct {
	Name        types.Optional[string] `json:"name"`
	DayOfWeek   types.Optional[string] `json:"day_of_week"`
	Description types.Optional[string] `json:"description"`
}

// normalizeName trims and validates a required name field
func normalizeName(label string, value *string) (string, error) {
	if value == nil {
		return "", types.NewValidationError("%s name is required", label)
	}
	name := strings.TrimSpace(*value)
	if name == "" {
		return "", types.NewValidationError("%s name cannot be empty", label)
	}
	if utf8.RuneCountInString(name) > maxNameLength {
		return "", types.NewValidationError("%s name must be at most %d characters", label, maxNameLength)
	}
	return name, nil
}

// optionalText returns nil for absent or blank values
func optionalText(value *string, label string, limit int) (*string, error) {
	if value == nil {
		return nil, nil
	}
	text := strings.TrimSpace(*value)
	if text == "" {
		return nil, nil
	}
	if limit > 0 && utf8.RuneCountInString(text) > limit {
		return nil, types.NewValidationError("%s must be at most %d characters", label, limit)
	}
	return &text, nil
}

// withEntries preloads routine entries in display order along with their exercises
func withEntries(tx *gorm.DB) *gorm.DB {
	return tx.Preload("Entries", func(db *gorm.DB) *gorm.DB {
		return db.Order("sort_order ASC").Order("id ASC")
	}).Preload("Entries.Exercise")
}

// ListRoutines returns the user's routines, newest last
func ListRoutines(db *gorm.DB, userID uint64) ([]models.Routine, error) {
	var routines []models.Routine
	err := withEntries(db).
		Where("user_id = ?", userID).
		Order("id ASC").
		Find(&routines).Error
	if err != nil {
		return nil, err
	}
	return routines, nil
}

// GetRoutine returns an owned routine with its entries
func GetRoutine(db *gorm.DB, userID, routineID uint64) (*models.Routine, error) {
	if _, err := ResolveOwnedRoutine(db, userID, routineID); err != nil {
		return nil, err
	}

	var routine models.Routine
	if err := withEntries(db).Take(&routine, routineID).Error; err != nil {
		return nil, err
	}
	return &routine, nil
}

// CreateRoutine creates a routine owned by userID
func CreateRoutine(db *gorm.DB, userID uint64, in RoutineInput) (*models.Routine, error) {
	name, err := normalizeName("Routine", in.Name.Ptr())
	if err != nil {
		return nil, err
	}
	day, err := optionalText(in.DayOfWeek.Ptr(), "day_of_week", maxDayOfWeekLength)
	if err != nil {
		return nil, err
	}
	description, _ := optionalText(in.Description.Ptr(), "description", 0)

	routine := models.Routine{
		UserID:      userID,
		Name:        name,
		DayOfWeek:   day,
		Description: description,
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&routine).Error
	})
	if err != nil {
		return nil, err
	}

	routine.Entries = []models.RoutineExercise{}
	return &routine, nil
}

// UpdateRoutine overwrites only the fields present in the input
func UpdateRoutine(db *gorm.DB, userID, routineID uint64, in RoutineInput) (*models.Routine, error) {
	updates := map[string]interface{}{}

	if in.Name.Present() {
		name, err := normalizeName("Routine", in.Name.Ptr())
		if err != nil {
			return nil, err
		}
		updates["name"] = name
	}
	if in.DayOfWeek.Present() {
		day, err := optionalText(in.DayOfWeek.Ptr(), "day_of_week", maxDayOfWeekLength)
		if err != nil {
			return nil, err
		}
		updates["day_of_week"] = day
	}
	if in.Description.Present() {
		description, _ := optionalText(in.Description.Ptr(), "description", 0)
		updates["description"] = description
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		routine, err := ResolveOwnedRoutine(tx, userID, routineID)
		if err != nil {
			return err
		}
		if len(updates) == 0 {
			return nil
		}
		return tx.Model(routine).Updates(updates).Error
	})
	if err != nil {
		return nil, err
	}

	return GetRoutine(db, userID, routineID)
}

// DeleteRoutine deletes an owned routine and its entries
func DeleteRoutine(db *gorm.DB, userID, routineID uint64) error {
	return db.Transaction(func(tx *gorm.DB) error {
		routine, err := ResolveOwnedRoutine(tx, userID, routineID)
		if err != nil {
			return err
		}
		if err := tx.Where("routine_id = ?", routine.ID).Delete(&models.RoutineExercise{}).Error; err != nil {
			return err
		}
		return tx.Delete(routine).Error
	})
}
