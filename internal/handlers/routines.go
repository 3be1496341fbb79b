package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/routinesdb/internal/middleware"
	"github.com/localnerve/routinesdb/internal/services"
	"github.com/localnerve/routinesdb/internal/utils"
	"gorm.io/gorm"
)

const routineNotFound = "Routine not found"

// RoutineHandler handles routine routes. Every lookup is scoped to the caller.
type RoutineHandler struct {
	DB *gorm.DB
}

// ListRoutines handles GET /api/routines
// @Summary List routines
// @Description List the caller's routines with their exercises
// @Tags Routines
// @Produce json
// @Success 200 {array} RoutineResponse
// @Failure 401 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Security CookieAuth
// @Router /routines [get]
func (h *RoutineHandler) ListRoutines(c *fiber.Ctx) error {
	principal, err := middleware.PrincipalFrom(c)
	if err != nil {
		return err
	}

	routines, err := services.ListRoutines(h.DB, principal.ID)
	if err != nil {
		return err
	}

	return utils.SuccessResponse(c, presentRoutines(routines), fiber.StatusOK)
}

// GetRoutine handles GET /api/routines/:id
// @Summary Get routine
// @Description Get one of the caller's routines with its exercises
// @Tags Routines
// @Produce json
// @Param id path int true "Routine ID"
// @Success 200 {object} RoutineResponse
// @Failure 401 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Security CookieAuth
// @Router /routines/{id} [get]
func (h *RoutineHandler) GetRoutine(c *fiber.Ctx) error {
	principal, err := middleware.PrincipalFrom(c)
	if err != nil {
		return err
	}
	routineID, err := parseID(c, "id", routineNotFound)
	if err != nil {
		return err
	}

	routine, err := services.GetRoutine(h.DB, principal.ID, routineID)
	if err != nil {
		return err
	}

	return utils.SuccessResponse(c, presentRoutine(routine), fiber.StatusOK)
}

// CreateRoutine handles POST /api/routines
// @Summary Create routine
// @Tags Routines
// @Accept json
// @Produce json
// @Param routine body services.RoutineInput true "Routine fields"
// @Success 201 {object} RoutineResponse
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 401 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Security CookieAuth
// @Router /routines [post]
func (h *RoutineHandler) CreateRoutine(c *fiber.Ctx) error {
	principal, err := middleware.PrincipalFrom(c)
	if err != nil {
		return err
	}

	var in services.RoutineInput
	if err := parseBody(c, &in); err != nil {
		return err
	}

	routine, err := services.CreateRoutine(h.DB, principal.ID, in)
	if err != nil {
		return err
	}

	return utils.SuccessResponse(c, presentRoutine(routine), fiber.StatusCreated)
}

// UpdateRoutine handles PUT /api/routines/:id
// @Summary Update routine
// @Description Overwrite only the fields present in the body
// @Tags Routines
// @Accept json
// @Produce json
// @Param id path int true "Routine ID"
// @Param routine body services.RoutineInput true "Fields to change"
// @Success 200 {object} RoutineResponse
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 401 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Security CookieAuth
// @Router /routines/{id} [put]
func (h *RoutineHandler) UpdateRoutine(c *fiber.Ctx) error {
	principal, err := middleware.PrincipalFrom(c)
	if err != nil {
		return err
	}
	routineID, err := parseID(c, "id", routineNotFound)
	if err != nil {
		return err
	}

	var in services.RoutineInput
	if err := parseBody(c, &in); err != nil {
		return err
	}

	routine, err := services.UpdateRoutine(h.DB, principal.ID, routineID, in)
	if err != nil {
		return err
	}

	return utils.SuccessResponse(c, presentRoutine(routine), fiber.StatusOK)
}

// DeleteRoutine handles DELETE /api/routines/:id
// @Summary Delete routine
// @Description Delete a routine and every exercise placed in it
// @Tags Routines
// @Produce json
// @Param id path int true "Routine ID"
// @Success 200 {object} utils.MessageResponseStruct
// @Failure 401 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Security CookieAuth
// @Router /routines/{id} [delete]
func (h *RoutineHandler) DeleteRoutine(c *fiber.Ctx) error {
	principal, err := middleware.PrincipalFrom(c)
	if err != nil {
		return err
	}
	routineID, err := parseID(c, "id", routineNotFound)
	if err != nil {
		return err
	}

	if err := services.DeleteRoutine(h.DB, principal.ID, routineID); err != nil {
		return err
	}

	return utils.MessageResponse(c, "Routine deleted successfully")
}
