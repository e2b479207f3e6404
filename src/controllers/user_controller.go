package controllers

import (
	"Backend-RODO-Panel/src/services"
	"Backend-RODO-Panel/src/utils"

	"github.com/gofiber/fiber/v2"
)

// GetCurrentUser godoc
// @Summary      Get own profile
// @Tags         users
// @Produce      json
// @Success      200  {object}  models.User
// @Failure      404  {object}  models.ErrorResponse
// @Security     BearerAuth
// @Router       /users/me [get]
func GetCurrentUser(c *fiber.Ctx) error {
	user, err := services.GetUserByID(principalID(c))
	if err != nil {
		return utils.HandleError(c, fiber.StatusNotFound, "User not found")
	}
	return c.JSON(user)
}

// UpdateCurrentUser godoc
// @Summary      Update own profile
// @Tags         users
// @Accept       json
// @Produce      json
// @Success      200
// @Failure      400  {object}  models.ErrorResponse
// @Security     BearerAuth
// @Router       /users/me [put]
func UpdateCurrentUser(c *fiber.Ctx) error {
	type UpdateRequest struct {
		Name  string `json:"name" validate:"required"`
		Email string `json:"email" validate:"required,email"`
	}

	var req UpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input")
	}
	if err := validate.Struct(req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Name and a valid email are required")
	}

	if err := services.UpdateProfile(principalID(c), req.Name, req.Email); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, err.Error())
	}
	return c.JSON(fiber.Map{
		"message": "Profile updated successfully",
	})
}

// ChangePassword godoc
// @Summary      Change own password
// @Tags         users
// @Accept       json
// @Produce      json
// @Success      200
// @Failure      400  {object}  models.ErrorResponse
// @Security     BearerAuth
// @Router       /users/me/password [put]
func ChangePassword(c *fiber.Ctx) error {
	type PasswordRequest struct {
		OldPassword string `json:"oldPassword" validate:"required"`
		NewPassword string `json:"newPassword" validate:"required,min=8"`
	}

	var req PasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input")
	}
	if err := validate.Struct(req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "New password must be at least 8 characters")
	}

	if err := services.ChangePassword(principalID(c), req.OldPassword, req.NewPassword); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, err.Error())
	}
	return c.JSON(fiber.Map{
		"message": "Password changed successfully",
	})
}
