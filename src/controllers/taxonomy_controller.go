package controllers

import (
	"Backend-RODO-Panel/src/services"
	"Backend-RODO-Panel/src/utils"

	"github.com/gofiber/fiber/v2"
)

// GetChapters godoc
// @Summary      List questionnaire chapters
// @Tags         taxonomy
// @Produce      json
// @Success      200  {array}  models.Chapter
// @Failure      500  {object}  models.ErrorResponse
// @Security     BearerAuth
// @Router       /chapters [get]
func GetChapters(c *fiber.Ctx) error {
	chapters, err := services.GetAllChapters()
	if err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.JSON(chapters)
}

// GetChapterAreas godoc
// @Summary      List areas of a chapter
// @Tags         taxonomy
// @Produce      json
// @Param        id  path  string  true  "Chapter ID"
// @Success      200  {array}  models.Area
// @Failure      400  {object}  models.ErrorResponse
// @Security     BearerAuth
// @Router       /chapters/{id}/areas [get]
func GetChapterAreas(c *fiber.Ctx) error {
	areas, err := services.GetAreasByChapter(c.Params("id"))
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, err.Error())
	}
	return c.JSON(areas)
}

// GetAreaRequirements godoc
// @Summary      List requirements of an area
// @Tags         taxonomy
// @Produce      json
// @Param        id  path  string  true  "Area ID"
// @Success      200  {array}  models.Requirement
// @Failure      400  {object}  models.ErrorResponse
// @Security     BearerAuth
// @Router       /areas/{id}/requirements [get]
func GetAreaRequirements(c *fiber.Ctx) error {
	requirements, err := services.GetRequirementsByArea(c.Params("id"))
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, err.Error())
	}
	return c.JSON(requirements)
}
