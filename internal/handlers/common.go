// common.go
//
// A workout routine and exercise library data service
// Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC
//
// This file is part of routinesdb.
// routinesdb is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published by the Free Software
// Foundation, either version 3 of the License, or (at your option) any later version.
// routinesdb is distributed in the hope that it will be useful, but WITHOUT ANY WARRANTY;
// without even the implied warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
// See the GNU Affero General Public License for more details.
// You should have received a copy of the GNU Affero General Public License along with routinesdb.
// If not, see <https://www.gnu.org/licenses/>.
// Additional terms under GNU AGPL version 3 section 7:
// a) The reasonable legal notice of original copyright and author attribution must be preserved
//    by including the string: "Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC"
//    in this material, copies, or source code of derived works.

package handlers

import (
	"bytes"
	"errors"
	"log"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/routinesdb/internal/types"
	"github.com/localnerve/routinesdb/internal/utils"
)

// parseID reads a numeric path parameter. Ids that cannot exist are reported
// as the missing entity.
func parseID(c *fiber.Ctx, name, notFoundMessage string) (uint64, error) {
	id, err := strconv.ParseUint(c.Params(name), 10, 64)
	if err != nil || id == 0 {
		return 0, types.NewNotFoundError(notFoundMessage)
	}
	return id, nil
}

// parseBody decodes a JSON request body regardless of the declared content type.
// An empty body decodes as an empty object.
func parseBody(c *fiber.Ctx, out interface{}) error {
	body := bytes.TrimSpace(c.Body())
	if len(body) == 0 {
		return nil
	}
	if err := c.App().Config().JSONDecoder(body, out); err != nil {
		return types.NewValidationError("Invalid JSON body: %v", err)
	}
	return nil
}

// ErrorHandler maps errors returned by handlers and middleware to responses.
// Client errors are reported as-is; anything else is logged and hidden.
func ErrorHandler(c *fiber.Ctx, err error) error {
	if ce, ok := types.AsCustomError(err); ok {
		return utils.ErrorResponse(c, ce.Message, ce.Code, ce.Type)
	}

	var fe *fiber.Error
	if errors.As(err, &fe) {
		errorType := "http"
		if fe.Code == fiber.StatusNotFound {
			errorType = types.TypeNotFound
		}
		return utils.ErrorResponse(c, fe.Message, fe.Code, errorType)
	}

	log.Printf("Internal error on %s %s: %v", c.Method(), c.OriginalURL(), err)
	return utils.ErrorResponse(c, "Internal server error", fiber.StatusInternalServerError, types.TypeInternal)
}

// NotFoundHandler answers requests that matched no route
func NotFoundHandler(c *fiber.Ctx) error {
	return utils.ErrorResponse(c, "[404] Resource Not Found", fiber.StatusNotFound, types.TypeNotFound)
}
