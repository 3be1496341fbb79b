package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/routinesdb/internal/middleware"
	"github.com/localnerve/routinesdb/internal/services"
	"github.com/localnerve/routinesdb/internal/utils"
	"gorm.io/gorm"
)

// UserDataHandler serves the startup bundle for a signed-in client
type UserDataHandler struct {
	DB *gorm.DB
}

// GetUserData handles GET /api/user-data
// @Summary Get user data
// @Description Get the caller's profile and routines along with the exercise library and its tags
// @Tags UserData
// @Produce json
// @Success 200 {object} UserDataResponse
// @Failure 401 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Security CookieAuth
// @Router /user-data [get]
func (h *UserDataHandler) GetUserData(c *fiber.Ctx) error {
	principal, err := middleware.PrincipalFrom(c)
	if err != nil {
		return err
	}

	user, err := services.GetUser(h.DB, principal.ID)
	if err != nil {
		return err
	}
	routines, err := services.ListRoutines(h.DB, principal.ID)
	if err != nil {
		return err
	}
	exercises, err := services.ListExercises(h.DB, services.ExerciseFilter{})
	if err != nil {
		return err
	}
	groups, err := services.MuscleGroups(h.DB)
	if err != nil {
		return err
	}
	equipment, err := services.Equipment(h.DB)
	if err != nil {
		return err
	}

	return utils.SuccessResponse(c, UserDataResponse{
		User:         presentUser(user),
		Routines:     presentRoutines(routines),
		Exercises:    presentExercises(exercises),
		MuscleGroups: groups,
		Equipment:    equipment,
	}, fiber.StatusOK)
}
