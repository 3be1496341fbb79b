// error.go
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

package types

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
)

// Error types reported to clients in the "type" field
const (
	TypeValidation   = "validation"
	TypeNotFound     = "not_found"
	TypeAuthRequired = "authentication.required"
	TypeAuthFailed   = "authentication.failed"
	TypeConflict     = "conflict"
	TypeVersion      = "version"
	TypeInternal     = "internal"
)

// CustomError is an error that is safe to report to the client as-is.
type CustomError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Type    string `json:"type"`
}

func (e *CustomError) Error() string {
	return fmt.Sprintf("%d: %s [type: %s]", e.Code, e.Message, e.Type)
}

// Is matches on code and type so sentinels compare equal to fresh instances.
func (e *CustomError) Is(target error) bool {
	t, ok := target.(*CustomError)
	if !ok {
		return false
	}
	return e.Code == t.Code && e.Type == t.Type
}

var (
	// ErrAuthenticationRequired is returned for protected operations without a valid session
	ErrAuthenticationRequired = &CustomError{Code: fiber.StatusUnauthorized, Message: "Authentication required", Type: TypeAuthRequired}
	// ErrInvalidCredentials is returned when a login or credential check fails
	ErrInvalidCredentials = &CustomError{Code: fiber.StatusUnauthorized, Message: "Invalid credentials", Type: TypeAuthFailed}
	// ErrNotFound matches any NotFound error
	ErrNotFound = &CustomError{Code: fiber.StatusNotFound, Message: "Not found", Type: TypeNotFound}
	// ErrValidation matches any validation error
	ErrValidation = &CustomError{Code: fiber.StatusBadRequest, Message: "Invalid input", Type: TypeValidation}
	// ErrConflict matches any conflict error
	ErrConflict = &CustomError{Code: fiber.StatusConflict, Message: "Conflict", Type: TypeConflict}
)

// NewValidationError reports a missing or invalid field
func NewValidationError(format string, args ...any) *CustomError {
	return &CustomError{Code: fiber.StatusBadRequest, Message: fmt.Sprintf(format, args...), Type: TypeValidation}
}

// NewNotFoundError reports an absent entity, or one the caller does not own
func NewNotFoundError(message string) *CustomError {
	return &CustomError{Code: fiber.StatusNotFound, Message: message, Type: TypeNotFound}
}

// NewConflictError reports a uniqueness violation
func NewConflictError(message string) *CustomError {
	return &CustomError{Code: fiber.StatusConflict, Message: message, Type: TypeConflict}
}

// AsCustomError extracts a CustomError from an error chain
func AsCustomError(err error) (*CustomError, bool) {
	var ce *CustomError
	if errors.As(err, &ce) {
		return ce, true
	}
	return nil, false
}
