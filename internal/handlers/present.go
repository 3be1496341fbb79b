package handlers

import (
	"time"

	"github.com/localnerve/routinesdb/internal/models"
)

// UserResponse is the public profile of a user
type UserResponse struct {
	ID       uint64 `json:"id"`
	Username string `json:"username"`
}

// ExerciseResponse is a library exercise
type ExerciseResponse struct {
	ID          uint64  `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
	MuscleGroup *string `json:"muscle_group"`
	Equipment   *string `json:"equipment"`
}

// RoutineExerciseResponse is an exercise placed in a routine
type RoutineExerciseResponse struct {
	ID            uint64            `json:"id"`
	RoutineID     uint64            `json:"routine_id"`
	ExerciseID    uint64            `json:"exercise_id"`
	Name          *string           `json:"name"`
	Description   *string           `json:"description"`
	VariationType *string           `json:"variation_type"`
	Sets          int               `json:"sets"`
	Reps          int               `json:"reps"`
	Weight        *float64          `json:"weight"`
	Notes         *string           `json:"notes"`
	Order         int               `json:"order"`
	Exercise      *ExerciseResponse `json:"exercise,omitempty"`
}

// RoutineResponse is a routine with its exercises in display order
type RoutineResponse struct {
	ID               uint64                    `json:"id"`
	UserID           uint64                    `json:"user_id"`
	Name             string                    `json:"name"`
	DayOfWeek        *string                   `json:"day_of_week"`
	Description      *string                   `json:"description"`
	CreatedAt        time.Time                 `json:"created_at"`
	UpdatedAt        time.Time                 `json:"updated_at"`
	RoutineExercises []RoutineExerciseResponse `json:"routine_exercises"`
}

// LoginResponse acknowledges a login or registration
type LoginResponse struct {
	Message string       `json:"message"`
	User    UserResponse `json:"user"`
}

// CheckAuthResponse reports whether the caller holds a live session
type CheckAuthResponse struct {
	Authenticated bool          `json:"authenticated"`
	User          *UserResponse `json:"user,omitempty"`
}

// UserDataResponse bundles everything a client needs on startup
type UserDataResponse struct {
	User         UserResponse       `json:"user"`
	Routines     []RoutineResponse  `json:"routines"`
	Exercises    []ExerciseResponse `json:"exercises"`
	MuscleGroups []string           `json:"muscle_groups"`
	Equipment    []string           `json:"equipment"`
}

func presentUser(u *models.User) UserResponse {
	return UserResponse{ID: u.ID, Username: u.Username}
}

func presentExercise(e *models.Exercise) ExerciseResponse {
	return ExerciseResponse{
		ID:          e.ID,
		Name:        e.Name,
		Description: e.Description,
		MuscleGroup: e.MuscleGroup,
		Equipment:   e.Equipment,
	}
}

func presentExercises(exercises []models.Exercise) []ExerciseResponse {
	out := make([]ExerciseResponse, 0, len(exercises))
	for i := range exercises {
		out = append(out, presentExercise(&exercises[i]))
	}
	return out
}

func presentEntry(e *models.RoutineExercise) RoutineExerciseResponse {
	out := RoutineExerciseResponse{
		ID:            e.ID,
		RoutineID:     e.RoutineID,
		ExerciseID:    e.ExerciseID,
		Name:          e.Name,
		Description:   e.Description,
		VariationType: e.VariationType,
		Sets:          e.Sets,
		Reps:          e.Reps,
		Weight:        e.Weight,
		Notes:         e.Notes,
		Order:         e.Order,
	}
	// Exercise is only populated when it was loaded
	if e.Exercise.ID != 0 {
		exercise := presentExercise(&e.Exercise)
		out.Exercise = &exercise
	}
	return out
}

func presentEntries(entries []models.RoutineExercise) []RoutineExerciseResponse {
	out := make([]RoutineExerciseResponse, 0, len(entries))
	for i := range entries {
		out = append(out, presentEntry(&entries[i]))
	}
	return out
}

func presentRoutine(r *models.Routine) RoutineResponse {
	return RoutineResponse{
		ID:               r.ID,
		UserID:           r.UserID,
		Name:             r.Name,
		DayOfWeek:        r.DayOfWeek,
		Description:      r.Description,
		CreatedAt:        r.CreatedAt,
		UpdatedAt:        r.UpdatedAt,
		RoutineExercises: presentEntries(r.Entries),
	}
}

func presentRoutines(routines []models.Routine) []RoutineResponse {
	out := make([]RoutineResponse, 0, len(routines))
	for i := range routines {
		out = append(out, presentRoutine(&routines[i]))
	}
	return out
}
