package controllers

import (
	"Backend-RODO-Panel/src/models"
	"Backend-RODO-Panel/src/services/assessments"
	"Backend-RODO-Panel/src/utils"

	"github.com/gofiber/fiber/v2"
)

// principalID is set by the AuthJWT middleware. Every handler threads it
// explicitly into the service layer; nothing below the controller reads
// request state.
func principalID(c *fiber.Ctx) string {
	id, _ := c.Locals("userId").(string)
	return id
}

// GetAssessments godoc
// @Summary      List own assessments
// @Description  Returns the authenticated user's assessments, newest first
// @Tags         assessments
// @Produce      json
// @Param        page   query  int  false  "Page number"
// @Param        limit  query  int  false  "Items per page"
// @Success      200  {object}  models.PaginatedResponse
// @Failure      500  {object}  models.ErrorResponse
// @Security     BearerAuth
// @Router       /api/assessments [get]
func GetAssessments(c *fiber.Ctx) error {
	params := models.DefaultPagination()
	if err := c.QueryParser(&params); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid query parameters")
	}
	if params.Page < 1 {
		params.Page = 1
	}
	if params.Limit < 1 {
		params.Limit = 10
	}

	result, err := assessments.GetAssessmentsForUser(principalID(c), params)
	if err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.JSON(result)
}

// GetAssessment godoc
// @Summary      Get one assessment
// @Description  Full questionnaire snapshot with the stored answers overlaid
// @Tags         assessments
// @Produce      json
// @Param        id   path  string  true  "Assessment ID"
// @Success      200  {object}  models.AssessmentDetail
// @Failure      400  {object}  models.ErrorResponse
// @Failure      404  {object}  models.ErrorResponse
// @Security     BearerAuth
// @Router       /api/assessments/{id} [get]
func GetAssessment(c *fiber.Ctx) error {
	detail, err := assessments.GetAssessment(c.Params("id"), principalID(c))
	if err != nil {
		return assessmentError(c, err)
	}
	return c.JSON(detail)
}

// CreateAssessment godoc
// @Summary      Create an assessment
// @Description  Creates a DRAFT assessment; pre-filled answers in the payload are stored too
// @Tags         assessments
// @Accept       json
// @Produce      json
// @Param        body  body  models.AssessmentDetail  true  "Assessment payload"
// @Success      201  {object}  models.AssessmentDetail
// @Failure      400  {object}  models.ErrorResponse
// @Failure      500  {object}  models.ErrorResponse
// @Security     BearerAuth
// @Router       /api/assessments [post]
func CreateAssessment(c *fiber.Ctx) error {
	var payload models.AssessmentDetail
	if err := c.BodyParser(&payload); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input: "+err.Error())
	}
	if err := validate.Struct(createAssessmentRequest{Name: payload.Name}); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Assessment name is required")
	}

	detail, merge, err := assessments.CreateAssessment(principalID(c), &payload)
	if err != nil {
		return assessmentError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"assessment": detail,
		"merge":      merge,
	})
}

// UpdateAssessment godoc
// @Summary      Update an assessment
// @Description  Overwrites name/description/status and upserts answers by area/requirement
// @Tags         assessments
// @Accept       json
// @Produce      json
// @Param        id    path  string                   true  "Assessment ID"
// @Param        body  body  models.AssessmentDetail  true  "Assessment payload"
// @Success      200  {object}  models.AssessmentDetail
// @Failure      400  {object}  models.ErrorResponse
// @Failure      404  {object}  models.ErrorResponse
// @Security     BearerAuth
// @Router       /api/assessments/{id} [put]
func UpdateAssessment(c *fiber.Ctx) error {
	var payload models.AssessmentDetail
	if err := c.BodyParser(&payload); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input: "+err.Error())
	}

	detail, merge, err := assessments.UpdateAssessment(c.Params("id"), principalID(c), &payload)
	if err != nil {
		return assessmentError(c, err)
	}
	return c.JSON(fiber.Map{
		"assessment": detail,
		"merge":      merge,
	})
}

// DeleteAssessment godoc
// @Summary      Delete an assessment
// @Description  Removes the assessment with its responses and area scores
// @Tags         assessments
// @Produce      json
// @Param        id   path  string  true  "Assessment ID"
// @Success      200
// @Failure      400  {object}  models.ErrorResponse
// @Failure      404  {object}  models.ErrorResponse
// @Security     BearerAuth
// @Router       /api/assessments/{id} [delete]
func DeleteAssessment(c *fiber.Ctx) error {
	if err := assessments.DeleteAssessment(c.Params("id"), principalID(c)); err != nil {
		return assessmentError(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "Assessment deleted successfully",
	})
}

// GetAssessmentTemplate godoc
// @Summary      Get the blank questionnaire
// @Description  The full chapter/area/requirement tree with empty answers
// @Tags         assessments
// @Produce      json
// @Success      200  {object}  models.AssessmentDetail
// @Failure      500  {object}  models.ErrorResponse
// @Security     BearerAuth
// @Router       /api/assessments/template [get]
func GetAssessmentTemplate(c *fiber.Ctx) error {
	template, err := assessments.GetTemplate()
	if err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.JSON(template)
}

type createAssessmentRequest struct {
	Name string `validate:"required"`
}

// assessmentError maps service errors onto the responses the frontend
// expects: 404 for a missing id, 400 + message for an ownership violation
// (that one is historical — the panel's UI reads the message body, not the
// status).
func assessmentError(c *fiber.Ctx, err error) error {
	switch err {
	case assessments.ErrNotFound:
		return utils.HandleError(c, fiber.StatusNotFound, err.Error())
	case assessments.ErrForbidden:
		return utils.HandleError(c, fiber.StatusBadRequest, err.Error())
	default:
		return utils.HandleError(c, fiber.StatusInternalServerError, err.Error())
	}
}
