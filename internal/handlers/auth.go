package handlers

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/localnerve/routinesdb/internal/config"
	"github.com/localnerve/routinesdb/internal/metrics"
	"github.com/localnerve/routinesdb/internal/middleware"
	"github.com/localnerve/routinesdb/internal/models"
	"github.com/localnerve/routinesdb/internal/services"
	"github.com/localnerve/routinesdb/internal/types"
	"github.com/localnerve/routinesdb/internal/utils"
	"gorm.io/gorm"
)

// AuthHandler handles account and session routes
type AuthHandler struct {
	DB      *gorm.DB
	Store   *session.Store
	Config  *config.Config
	Metrics *metrics.Metrics
}

// startSession binds a fresh session id to the user
func (h *AuthHandler) startSession(c *fiber.Ctx, user *models.User) error {
	sess, err := h.Store.Get(c)
	if err != nil {
		return err
	}
	if err := sess.Regenerate(); err != nil {
		return err
	}
	sess.Set(middleware.SessionUserKey, user.ID)
	sess.Set(middleware.SessionVersionKey, user.SessionVersion)
	return sess.Save()
}

// Register handles POST /api/register
// @Summary Register
// @Description Create an account and start a session for it
// @Tags Auth
// @Accept json
// @Produce json
// @Param credentials body services.Credentials true "Username and password"
// @Success 201 {object} LoginResponse
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 409 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /register [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var in services.Credentials
	if err := parseBody(c, &in); err != nil {
		return err
	}

	user, err := services.Register(h.DB, in, h.Config.BcryptCost)
	if err != nil {
		return err
	}
	h.Metrics.Registrations.Inc()

	if err := h.startSession(c, user); err != nil {
		return err
	}

	return utils.SuccessResponse(c, LoginResponse{
		Message: "Registration successful",
		User:    presentUser(user),
	}, fiber.StatusCreated)
}

// Login handles POST /api/login
// @Summary Log in
// @Description Verify credentials and start a session
// @Tags Auth
// @Accept json
// @Produce json
// @Param credentials body services.Credentials true "Username and password"
// @Success 200 {object} LoginResponse
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 401 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in services.Credentials
	if err := parseBody(c, &in); err != nil {
		return err
	}

	user, err := services.Authenticate(h.DB, in, h.Config.BcryptCost)
	switch {
	case errors.Is(err, types.ErrValidation):
		h.Metrics.Login(metrics.LoginInvalid)
		return err
	case errors.Is(err, types.ErrInvalidCredentials):
		h.Metrics.Login(metrics.LoginFailure)
		return err
	case err != nil:
		return err
	}

	if err := h.startSession(c, user); err != nil {
		return err
	}
	h.Metrics.Login(metrics.LoginSuccess)

	return utils.SuccessResponse(c, LoginResponse{
		Message: "Login successful",
		User:    presentUser(user),
	}, fiber.StatusOK)
}

// Logout handles POST /api/logout
// @Summary Log out
// @Description Destroy the current session, if any
// @Tags Auth
// @Produce json
// @Success 200 {object} utils.MessageResponseStruct
// @Router /logout [post]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	sess, err := h.Store.Get(c)
	if err != nil {
		log.Printf("Logout could not load session: %v", err)
	} else if err := sess.Destroy(); err != nil {
		log.Printf("Logout could not destroy session: %v", err)
	}

	return utils.MessageResponse(c, "Logout successful")
}

// CheckAuth handles GET /api/check-auth
// @Summary Check authentication
// @Description Report whether the caller holds a live session
// @Tags Auth
// @Produce json
// @Success 200 {object} CheckAuthResponse
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /check-auth [get]
func (h *AuthHandler) CheckAuth(c *fiber.Ctx) error {
	user, err := middleware.CurrentUser(c, h.Store, h.DB)
	if err != nil {
		return err
	}
	if user == nil {
		return utils.SuccessResponse(c, CheckAuthResponse{Authenticated: false}, fiber.StatusOK)
	}

	profile := presentUser(user)
	return utils.SuccessResponse(c, CheckAuthResponse{Authenticated: true, User: &profile}, fiber.StatusOK)
}

// ChangePassword handles PUT /api/account/password
// @Summary Change password
// @Description Replace the account password after verifying the current one
// @Tags Auth
// @Accept json
// @Produce json
// @Param passwords body services.PasswordChange true "Current and new password"
// @Success 200 {object} utils.MessageResponseStruct
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 401 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Security CookieAuth
// @Router /account/password [put]
func (h *AuthHandler) ChangePassword(c *fiber.Ctx) error {
	principal, err := middleware.PrincipalFrom(c)
	if err != nil {
		return err
	}

	var in services.PasswordChange
	if err := parseBody(c, &in); err != nil {
		return err
	}

	if err := services.ChangePassword(h.DB, principal.ID, in, h.Config.BcryptCost); err != nil {
		return err
	}

	user, err := services.GetUser(h.DB, principal.ID)
	if err != nil {
		return err
	}
	if err := h.startSession(c, user); err != nil {
		return err
	}

	return utils.MessageResponse(c, "Password updated successfully")
}

// DeleteAccount handles DELETE /api/account
// @Summary Delete account
// @Description Delete the account with all of its routines and end the session
// @Tags Auth
// @Produce json
// @Success 200 {object} utils.MessageResponseStruct
// @Failure 401 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Security CookieAuth
// @Router /account [delete]
func (h *AuthHandler) DeleteAccount(c *fiber.Ctx) error {
	principal, err := middleware.PrincipalFrom(c)
	if err != nil {
		return err
	}

	if err := services.DeleteAccount(h.DB, principal.ID); err != nil {
		return err
	}

	sess, err := h.Store.Get(c)
	if err != nil {
		return err
	}
	if err := sess.Destroy(); err != nil {
		return err
	}

	return utils.MessageResponse(c, "Account deleted successfully")
}
