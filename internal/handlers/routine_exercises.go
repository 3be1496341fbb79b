package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/routinesdb/internal/metrics"
	"github.com/localnerve/routinesdb/internal/middleware"
	"github.com/localnerve/routinesdb/internal/services"
	"github.com/localnerve/routinesdb/internal/utils"
	"github.com/prometheus/client_golang/prometheus"
	"gorm.io/gorm"
)

const entryNotFound = "Routine exercise not found"

// RoutineExerciseHandler handles the exercises placed in a routine
type RoutineExerciseHandler struct {
	DB      *gorm.DB
	Metrics *metrics.Metrics
}

// ListEntries handles GET /api/routines/:id/exercises
// @Summary List routine exercises
// @Description List the exercises of a routine in display order
// @Tags RoutineExercises
// @Produce json
// @Param id path int true "Routine ID"
// @Success 200 {array} RoutineExerciseResponse
// @Failure 401 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Security CookieAuth
// @Router /routines/{id}/exercises [get]
func (h *RoutineExerciseHandler) ListEntries(c *fiber.Ctx) error {
	principal, err := middleware.PrincipalFrom(c)
	if err != nil {
		return err
	}
	routineID, err := parseID(c, "id", routineNotFound)
	if err != nil {
		return err
	}

	entries, err := services.ListEntries(h.DB, principal.ID, routineID)
	if err != nil {
		return err
	}

	return utils.SuccessResponse(c, presentEntries(entries), fiber.StatusOK)
}

// AddEntry handles POST /api/routines/:id/exercises
// @Summary Add exercise to routine
// @Description Place a library exercise in a routine. Without an order it goes last.
// @Tags RoutineExercises
// @Accept json
// @Produce json
// @Param id path int true "Routine ID"
// @Param entry body services.EntryInput true "Exercise and prescription"
// @Success 201 {object} RoutineExerciseResponse
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 401 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Security CookieAuth
// @Router /routines/{id}/exercises [post]
func (h *RoutineExerciseHandler) AddEntry(c *fiber.Ctx) error {
	principal, err := middleware.PrincipalFrom(c)
	if err != nil {
		return err
	}
	routineID, err := parseID(c, "id", routineNotFound)
	if err != nil {
		return err
	}

	var in services.EntryInput
	if err := parseBody(c, &in); err != nil {
		return err
	}

	entry, err := services.AddEntry(h.DB, principal.ID, routineID, in)
	if err != nil {
		return err
	}
	h.Metrics.EntriesCreated.Inc()

	return utils.SuccessResponse(c, presentEntry(entry), fiber.StatusCreated)
}

// ReorderEntries handles PUT /api/routines/:id/exercises/order
// @Summary Reorder routine exercises
// @Description Listed entries take positions 1..n, the rest keep their relative order after them
// @Tags RoutineExercises
// @Accept json
// @Produce json
// @Param id path int true "Routine ID"
// @Param order body services.ReorderInput true "Entry ids in their new order"
// @Success 200 {array} RoutineExerciseResponse
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 401 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Security CookieAuth
// @Router /routines/{id}/exercises/order [put]
func (h *RoutineExerciseHandler) ReorderEntries(c *fiber.Ctx) error {
	principal, err := middleware.PrincipalFrom(c)
	if err != nil {
		return err
	}
	routineID, err := parseID(c, "id", routineNotFound)
	if err != nil {
		return err
	}

	var in services.ReorderInput
	if err := parseBody(c, &in); err != nil {
		return err
	}
	ids, err := in.IDs()
	if err != nil {
		return err
	}

	timer := prometheus.NewTimer(h.Metrics.ReorderLatency)
	entries, err := services.ReorderEntries(h.DB, principal.ID, routineID, ids)
	timer.ObserveDuration()
	if err != nil {
		return err
	}
	h.Metrics.Reorders.Inc()

	return utils.SuccessResponse(c, presentEntries(entries), fiber.StatusOK)
}

// GetEntry handles GET /api/routine-exercises/:id
// @Summary Get routine exercise
// @Tags RoutineExercises
// @Produce json
// @Param id path int true "Routine exercise ID"
// @Success 200 {object} RoutineExerciseResponse
// @Failure 401 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Security CookieAuth
// @Router /routine-exercises/{id} [get]
func (h *RoutineExerciseHandler) GetEntry(c *fiber.Ctx) error {
	principal, err := middleware.PrincipalFrom(c)
	if err != nil {
		return err
	}
	entryID, err := parseID(c, "id", entryNotFound)
	if err != nil {
		return err
	}

	entry, err := services.GetEntry(h.DB, principal.ID, entryID)
	if err != nil {
		return err
	}

	return utils.SuccessResponse(c, presentEntry(entry), fiber.StatusOK)
}

// UpdateEntry handles PUT /api/routine-exercises/:id
// @Summary Update routine exercise
// @Description Overwrite only the fields present in the body. A null weight or notes clears it.
// @Tags RoutineExercises
// @Accept json
// @Produce json
// @Param id path int true "Routine exercise ID"
// @Param entry body services.EntryInput true "Fields to change"
// @Success 200 {object} RoutineExerciseResponse
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 401 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Security CookieAuth
// @Router /routine-exercises/{id} [put]
func (h *RoutineExerciseHandler) UpdateEntry(c *fiber.Ctx) error {
	principal, err := middleware.PrincipalFrom(c)
	if err != nil {
		return err
	}
	entryID, err := parseID(c, "id", entryNotFound)
	if err != nil {
		return err
	}

	var in services.EntryInput
	if err := parseBody(c, &in); err != nil {
		return err
	}

	entry, err := services.UpdateEntry(h.DB, principal.ID, entryID, in)
	if err != nil {
		return err
	}

	return utils.SuccessResponse(c, presentEntry(entry), fiber.StatusOK)
}

// RemoveEntry handles DELETE /api/routine-exercises/:id
// @Summary Remove exercise from routine
// @Tags RoutineExercises
// @Produce json
// @Param id path int true "Routine exercise ID"
// @Success 200 {object} utils.MessageResponseStruct
// @Failure 401 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Security CookieAuth
// @Router /routine-exercises/{id} [delete]
func (h *RoutineExerciseHandler) RemoveEntry(c *fiber.Ctx) error {
	principal, err := middleware.PrincipalFrom(c)
	if err != nil {
		return err
	}
	entryID, err := parseID(c, "id", entryNotFound)
	if err != nil {
		return err
	}

	if err := services.RemoveEntry(h.DB, principal.ID, entryID); err != nil {
		return err
	}

	return utils.MessageResponse(c, "Exercise removed from routine successfully")
}
