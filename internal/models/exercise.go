package models

// Exercise is an entry in the shared exercise library
type Exercise struct {
	ID          uint64            `gorm:"primaryKey;autoIncrement"`
	Name        string            `gorm:"size:100;not null"`
	Description *string           `gorm:"type:text"`
	MuscleGroup *string           `gorm:"size:50;index"`
	Equipment   *string           `gorm:"size:100;index"`
	Entries     []RoutineExercise `gorm:"foreignKey:ExerciseID;constraint:OnDelete:CASCADE"`
}

// TableName overrides the table name for Exercise
func (Exercise) TableName() string {
	return "exercises"
}
