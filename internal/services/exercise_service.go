package services

import (
	"errors"
	"strings"

	"github.com/localnerve/routinesdb/internal/database"
	"github.com/localnerve/routinesdb/internal/models"
	"github.com/localnerve/routinesdb/internal/types"
	"gorm.io/gorm"
	"gorm.io/hints"
)

const (
	maxMuscleGroupLength = 50
	maxEquipmentLength   = 100
	msgExerciseNotFound  = "Exercise not found"
)

// ExerciseFilter narrows the exercise library listing. Empty fields are ignored.
type ExerciseFilter struct {
	MuscleGroup string `query:"muscle_group"`
	Equipment   string `query:"equipment"`
	Search      string `query:"search"`
}

// ExerciseInput is the payload for adding an exercise to the library
type ExerciseInput struct {
	Name        types.Optional[string] `json:"name"`
	Description types.Optional[string] `json:"description"`
	MuscleGroup types.Optional[string] `json:"muscle_group"`
	Equipment   types.Optional[string] `json:"equipment"`
}

var likeEscaper = strings.NewReplacer("!", "!!", "%", "!%", "_", "!_")

// ListExercises returns library exercises matching every supplied filter
func ListExercises(db *gorm.DB, filter ExerciseFilter) ([]models.Exercise, error) {
	query := db.Clauses(hints.Comment("select", "exercise_library"))

	if filter.MuscleGroup != "" {
		query = query.Where(database.ExactMatch(db, "muscle_group"), filter.MuscleGroup)
	}
	if filter.Equipment != "" {
		query = query.Where(database.ExactMatch(db, "equipment"), filter.Equipment)
	}
	if filter.Search != "" {
		// Both sides fold with the database's LOWER, ASCII-only on SQLite
		pattern := "%" + likeEscaper.Replace(filter.Search) + "%"
		query = query.Where("LOWER(name) LIKE LOWER(?) ESCAPE '!'", pattern)
	}

	exercises := []models.Exercise{}
	if err := query.Order("id ASC").Find(&exercises).Error; err != nil {
		return nil, err
	}
	return exercises, nil
}

// GetExercise returns a library exercise
func GetExercise(db *gorm.DB, exerciseID uint64) (*models.Exercise, error) {
	var exercise models.Exercise
	err := quiet(db).Take(&exercise, exerciseID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, types.NewNotFoundError(msgExerciseNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &exercise, nil
}

// CreateExercise adds an exercise to the shared library
func CreateExercise(db *gorm.DB, in ExerciseInput) (*models.Exercise, error) {
	name, err := normalizeName("Exercise", in.Name.Ptr())
	if err != nil {
		return nil, err
	}
	description, _ := optionalText(in.Description.Ptr(), "description", 0)
	muscleGroup, err := optionalText(in.MuscleGroup.Ptr(), "muscle_group", maxMuscleGroupLength)
	if err != nil {
		return nil, err
	}
	equipment, err := optionalText(in.Equipment.Ptr(), "equipment", maxEquipmentLength)
	if err != nil {
		return nil, err
	}

	exercise := models.Exercise{
		Name:        name,
		Description: description,
		MuscleGroup: muscleGroup,
		Equipment:   equipment,
	}
	err = db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&exercise).Error
	})
	if err != nil {
		return nil, err
	}
	return &exercise, nil
}

// DeleteExercise removes an exercise from the library along with every
// routine entry that references it.
func DeleteExercise(db *gorm.DB, exerciseID uint64) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if _, err := GetExercise(tx, exerciseID); err != nil {
			return err
		}
		if err := tx.Where("exercise_id = ?", exerciseID).Delete(&models.RoutineExercise{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Exercise{}, exerciseID).Error
	})
}

// MuscleGroups returns the distinct non-empty muscle groups in the library
func MuscleGroups(db *gorm.DB) ([]string, error) {
	return distinctExerciseTags(db, "muscle_group")
}

// Equipment returns the distinct non-empty equipment tags in the library
func Equipment(db *gorm.DB) ([]string, error) {
	return distinctExerciseTags(db, "equipment")
}

func distinctExerciseTags(db *gorm.DB, column string) ([]string, error) {
	tags := []string{}
	err := db.Model(&models.Exercise{}).
		Clauses(hints.Comment("select", "exercise_tags")).
		Distinct(column).
		Where(column+" IS NOT NULL AND "+column+" <> ''").
		Order(column+" ASC").
		Pluck(column, &tags).Error
	if err != nil {
		return nil, err
	}
	return tags, nil
}
