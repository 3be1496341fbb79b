// auth_service.go
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

package services

import (
	"errors"
	"log"
	"strings"
	"unicode/utf8"

	"github.com/localnerve/routinesdb/internal/database"
	"github.com/localnerve/routinesdb/internal/models"
	"github.com/localnerve/routinesdb/internal/types"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const maxUsernameLength = 80

// Credentials is the login and registration payload
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// PasswordChange is the payload for changing the account password
type PasswordChange struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

// quiet silences GORM's record-not-found logging for expected misses
func quiet(tx *gorm.DB) *gorm.DB {
	return tx.Session(&gorm.Session{Logger: tx.Logger.LogMode(logger.Silent)})
}

func validatePassword(password string) error {
	if password == "" {
		return types.NewValidationError("Password is required")
	}
	if len(password) > maxPasswordBytes {
		return types.NewValidationError("Password must be at most %d bytes", maxPasswordBytes)
	}
	return nil
}

// Register creates a new user with a hashed credential
func Register(db *gorm.DB, in Credentials, cost int) (*models.User, error) {
	if strings.TrimSpace(in.Username) == "" || in.Password == "" {
		return nil, types.NewValidationError("Username and password are required")
	}
	if strings.TrimSpace(in.Username) != in.Username {
		return nil, types.NewValidationError("Username cannot start or end with whitespace")
	}
	if utf8.RuneCountInString(in.Username) > maxUsernameLength {
		return nil, types.NewValidationError("Username must be at most %d characters", maxUsernameLength)
	}
	if err := validatePassword(in.Password); err != nil {
		return nil, err
	}

	hash, err := HashPassword(in.Password, cost)
	if err != nil {
		return nil, err
	}

	user := models.User{Username: in.Username, PasswordHash: hash}
	err = db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.User{}).Where(database.ExactMatch(tx, "username"), in.Username).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return types.NewConflictError("Username already exists")
		}
		err := tx.Create(&user).Error
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return types.NewConflictError("Username already exists")
		}
		return err
	})
	if err != nil {
		return nil, err
	}

	return &user, nil
}

// Authenticate checks a username and password against the credential store.
// Unknown users and wrong passwords are indistinguishable to the caller.
func Authenticate(db *gorm.DB, in Credentials, cost int) (*models.User, error) {
	if in.Username == "" || in.Password == "" {
		return nil, types.NewValidationError("Username and password are required")
	}

	var user models.User
	err := quiet(db).Where(database.ExactMatch(db, "username"), in.Username).Take(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		VerifyPassword(dummyHash(cost), in.Password)
		return nil, types.ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}

	if !VerifyPassword(user.PasswordHash, in.Password) {
		return nil, types.ErrInvalidCredentials
	}

	if NeedsRehash(user.PasswordHash, cost) {
		if hash, err := HashPassword(in.Password, cost); err == nil {
			if err := db.Model(&user).Update("password_hash", hash).Error; err != nil {
				log.Printf("Failed to upgrade password hash for user %d: %v", user.ID, err)
			}
		}
	}

	return &user, nil
}

// GetUser loads a user by id
func GetUser(db *gorm.DB, userID uint64) (*models.User, error) {
	var user models.User
	err := quiet(db).Take(&user, userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, types.NewNotFoundError("User not found")
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// ChangePassword replaces the credential after verifying the current one.
// Sessions issued before the change no longer resolve to the user.
func ChangePassword(db *gorm.DB, userID uint64, in PasswordChange, cost int) error {
	if in.CurrentPassword == "" || in.NewPassword == "" {
		return types.NewValidationError("Current and new password are required")
	}
	if err := validatePassword(in.NewPassword); err != nil {
		return err
	}

	return db.Transaction(func(tx *gorm.DB) error {
		user, err := GetUser(tx, userID)
		if err != nil {
			return err
		}
		if !VerifyPassword(user.PasswordHash, in.CurrentPassword) {
			return types.ErrInvalidCredentials
		}

		hash, err := HashPassword(in.NewPassword, cost)
		if err != nil {
			return err
		}
		return tx.Model(user).Updates(map[string]interface{}{
			"password_hash":   hash,
			"session_version": gorm.Expr("session_version + 1"),
		}).Error
	})
}

// DeleteAccount removes the user with their routines and routine entries
func DeleteAccount(db *gorm.DB, userID uint64) error {
	return db.Transaction(func(tx *gorm.DB) error {
		routineIDs := tx.Model(&models.Routine{}).Select("id").Where("user_id = ?", userID)

		if err := tx.Where("routine_id IN (?)", routineIDs).Delete(&models.RoutineExercise{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", userID).Delete(&models.Routine{}).Error; err != nil {
			return err
		}

		result := tx.Delete(&models.User{}, userID)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return types.NewNotFoundError("User not found")
		}
		return nil
	})
}
