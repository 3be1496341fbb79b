package models

import (
	"time"
)

// Routine is a user-owned workout plan
type Routine struct {
	ID          uint64  `gorm:"primaryKey;autoIncrement"`
	UserID      uint64  `gorm:"not null;index"`
	Name        string  `gorm:"size:100;not null"`
	DayOfWeek   *string `gorm:"size:10"`
	Description *string `gorm:"type:text"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
	Entries     []RoutineExercise `gorm:"foreignKey:RoutineID;constraint:OnDelete:CASCADE"`
}

// TableName overrides the table name for Routine
func (Routine) TableName() string {
	return "routines"
}

// RoutineExercise attaches an exercise to a routine with its prescription.
// Name, Description and VariationType optionally describe the variation of
// the exercise performed here (e.g. "Paused", type "tempo").
// Order is stored as sort_order because "order" is reserved in SQL.
type RoutineExercise struct {
	ID            uint64  `gorm:"primaryKey;autoIncrement"`
	RoutineID     uint64  `gorm:"not null;index:idx_routine_exercises_routine_order,priority:1"`
	ExerciseID    uint64  `gorm:"not null;index"`
	Name          *string `gorm:"size:100"`
	Description   *string `gorm:"type:text"`
	VariationType *string `gorm:"size:50"`
	Sets          int     `gorm:"not null;default:3"`
	Reps          int     `gorm:"not null;default:10"`
	Weight        *float64
	Notes         *string  `gorm:"type:text"`
	Order         int      `gorm:"column:sort_order;not null;index:idx_routine_exercises_routine_order,priority:2"`
	Exercise      Exercise `gorm:"foreignKey:ExerciseID"`
}

// TableName overrides the table name for RoutineExercise
func (RoutineExercise) TableName() string {
	return "routine_exercises"
}
