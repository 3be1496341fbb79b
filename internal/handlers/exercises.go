package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/routinesdb/internal/services"
	"github.com/localnerve/routinesdb/internal/types"
	"github.com/localnerve/routinesdb/internal/utils"
	"gorm.io/gorm"
)

// ExerciseHandler handles the shared exercise library
type ExerciseHandler struct {
	DB *gorm.DB
}

// ListExercises handles GET /api/exercises
// @Summary List exercises
// @Description List library exercises, optionally filtered. Filters combine.
// @Tags Exercises
// @Produce json
// @Param muscle_group query string false "Exact muscle group"
// @Param equipment query string false "Exact equipment"
// @Param search query string false "Case-insensitive name substring"
// @Success 200 {array} ExerciseResponse
// @Failure 401 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Security CookieAuth
// @Router /exercises [get]
func (h *ExerciseHandler) ListExercises(c *fiber.Ctx) error {
	var filter services.ExerciseFilter
	if err := c.QueryParser(&filter); err != nil {
		return types.NewValidationError("Invalid query: %v", err)
	}

	exercises, err := services.ListExercises(h.DB, filter)
	if err != nil {
		return err
	}

	return utils.SuccessResponse(c, presentExercises(exercises), fiber.StatusOK)
}

// GetExercise handles GET /api/exercises/:id
// @Summary Get exercise
// @Tags Exercises
// @Produce json
// @Param id path int true "Exercise ID"
// @Success 200 {object} ExerciseResponse
// @Failure 401 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Security CookieAuth
// @Router /exercises/{id} [get]
func (h *ExerciseHandler) GetExercise(c *fiber.Ctx) error {
	exerciseID, err := parseID(c, "id", "Exercise not found")
	if err != nil {
		return err
	}

	exercise, err := services.GetExercise(h.DB, exerciseID)
	if err != nil {
		return err
	}

	return utils.SuccessResponse(c, presentExercise(exercise), fiber.StatusOK)
}

// CreateExercise handles POST /api/exercises
// @Summary Create exercise
// @Description Add an exercise to the shared library
// @Tags Exercises
// @Accept json
// @Produce json
// @Param exercise body services.ExerciseInput true "Exercise fields"
// @Success 201 {object} ExerciseResponse
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 401 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Security CookieAuth
// @Router /exercises [post]
func (h *ExerciseHandler) CreateExercise(c *fiber.Ctx) error {
	var in services.ExerciseInput
	if err := parseBody(c, &in); err != nil {
		return err
	}

	exercise, err := services.CreateExercise(h.DB, in)
	if err != nil {
		return err
	}

	return utils.SuccessResponse(c, presentExercise(exercise), fiber.StatusCreated)
}

// MuscleGroups handles GET /api/muscle-groups
// @Summary List muscle groups
// @Tags Exercises
// @Produce json
// @Success 200 {array} string
// @Failure 401 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Security CookieAuth
// @Router /muscle-groups [get]
func (h *ExerciseHandler) MuscleGroups(c *fiber.Ctx) error {
	groups, err := services.MuscleGroups(h.DB)
	if err != nil {
		return err
	}
	return utils.SuccessResponse(c, groups, fiber.StatusOK)
}

// Equipment handles GET /api/equipment
// @Summary List equipment
// @Tags Exercises
// @Produce json
// @Success 200 {array} string
// @Failure 401 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Security CookieAuth
// @Router /equipment [get]
func (h *ExerciseHandler) Equipment(c *fiber.Ctx) error {
	equipment, err := services.Equipment(h.DB)
	if err != nil {
		return err
	}
	return utils.SuccessResponse(c, equipment, fiber.StatusOK)
}
