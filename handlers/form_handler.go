package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lkwun/formbuilder-go/builder"
	"github.com/lkwun/formbuilder-go/dto"
	"github.com/lkwun/formbuilder-go/response"
	"github.com/lkwun/formbuilder-go/services"
	"github.com/lkwun/formbuilder-go/utils"
)

type FormHandler struct {
	forms *services.FormService
}

func NewFormHandler(forms *services.FormService) *FormHandler {
	return &FormHandler{forms: forms}
}

// CreateForm godoc
// @Summary Create a form with an empty field list and default styles
// @Tags forms
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param input body dto.CreateFormInput true "Form title"
// @Success 201 {object} models.Form
// @Failure 400 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /forms [post]
func (h *FormHandler) CreateForm(c *gin.Context) {
	uid, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	var input dto.CreateFormInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid input: " + err.Error()})
		return
	}

	form, err := h.forms.CreateForm(uid, input)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusCreated, form)
}

// GetForms godoc
// @Summary List the caller's forms
// @Tags forms
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.Form
// @Failure 500 {object} response.ErrorResponse
// @Router /forms [get]
func (h *FormHandler) GetForms(c *gin.Context) {
	uid, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	forms, err := h.forms.GetOwnerForms(uid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, forms)
}

// GetPublicForm godoc
// @Summary Fetch a form definition for public rendering
// @Tags forms
// @Produce json
// @Param id path int true "Form ID"
// @Success 200 {object} models.Form
// @Failure 404 {object} response.ErrorResponse
// @Router /forms/{id} [get]
func (h *FormHandler) GetPublicForm(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid form id"})
		return
	}

	form, err := h.forms.GetPublicForm(id)
	if errors.Is(err, services.ErrFormNotFound) {
		c.JSON(http.StatusNotFound, response.ErrorResponse{Error: err.Error()})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, form)
}

// UpdateForm godoc
// @Summary Replace a form's title, fields or styles
// @Tags forms
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Form ID"
// @Param input body dto.UpdateFormInput true "Attributes to replace"
// @Success 200 {object} models.Form
// @Failure 403 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /forms/{id} [put]
func (h *FormHandler) UpdateForm(c *gin.Context) {
	uid, id, ok := h.ownerAndID(c)
	if !ok {
		return
	}

	var input dto.UpdateFormInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid input: " + err.Error()})
		return
	}

	form, err := h.forms.UpdateForm(uid, id, input)
	if err != nil {
		h.writeFormError(c, err)
		return
	}
	c.JSON(http.StatusOK, form)
}

// DeleteForm godoc
// @Summary Delete a form and its submissions
// @Tags forms
// @Produce json
// @Security BearerAuth
// @Param id path int true "Form ID"
// @Success 200 {object} response.MessageResponse
// @Failure 403 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /forms/{id} [delete]
func (h *FormHandler) DeleteForm(c *gin.Context) {
	uid, id, ok := h.ownerAndID(c)
	if !ok {
		return
	}

	if err := h.forms.DeleteForm(uid, id); err != nil {
		h.writeFormError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: "The form has been deleted."})
}

// AddField godoc
// @Summary Append a field to a form
// @Tags fields
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Form ID"
// @Param input body dto.AddFieldInput true "Field definition"
// @Success 200 {object} models.Form
// @Failure 403 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /forms/{id}/fields [post]
func (h *FormHandler) AddField(c *gin.Context) {
	uid, id, ok := h.ownerAndID(c)
	if !ok {
		return
	}

	var input dto.AddFieldInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid input: " + err.Error()})
		return
	}

	form, err := h.forms.AddField(uid, id, input)
	if err != nil {
		h.writeFormError(c, err)
		return
	}
	c.JSON(http.StatusOK, form)
}

// UpdateField godoc
// @Summary Patch one field's attributes
// @Tags fields
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Form ID"
// @Param fieldId path string true "Field ID"
// @Param input body dto.UpdateFieldInput true "Attributes to patch"
// @Success 200 {object} models.Form
// @Failure 403 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /forms/{id}/fields/{fieldId} [put]
func (h *FormHandler) UpdateField(c *gin.Context) {
	uid, id, ok := h.ownerAndID(c)
	if !ok {
		return
	}

	var input dto.UpdateFieldInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid input: " + err.Error()})
		return
	}

	form, err := h.forms.UpdateField(uid, id, c.Param("fieldId"), input)
	if err != nil {
		h.writeFormError(c, err)
		return
	}
	c.JSON(http.StatusOK, form)
}

// DeleteField godoc
// @Summary Remove one field from a form
// @Tags fields
// @Produce json
// @Security BearerAuth
// @Param id path int true "Form ID"
// @Param fieldId path string true "Field ID"
// @Success 200 {object} models.Form
// @Failure 403 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /forms/{id}/fields/{fieldId} [delete]
func (h *FormHandler) DeleteField(c *gin.Context) {
	uid, id, ok := h.ownerAndID(c)
	if !ok {
		return
	}

	form, err := h.forms.DeleteField(uid, id, c.Param("fieldId"))
	if err != nil {
		h.writeFormError(c, err)
		return
	}
	c.JSON(http.StatusOK, form)
}

// MoveField godoc
// @Summary Move one field to a new position, preserving the order of the rest
// @Tags fields
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Form ID"
// @Param fieldId path string true "Field ID"
// @Param input body dto.MoveFieldInput true "Target position (zero-based)"
// @Success 200 {object} models.Form
// @Failure 400 {object} response.ErrorResponse
// @Failure 403 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /forms/{id}/fields/{fieldId}/move [post]
func (h *FormHandler) MoveField(c *gin.Context) {
	uid, id, ok := h.ownerAndID(c)
	if !ok {
		return
	}

	var input dto.MoveFieldInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid input: " + err.Error()})
		return
	}

	form, err := h.forms.MoveField(uid, id, c.Param("fieldId"), *input.Position)
	if err != nil {
		h.writeFormError(c, err)
		return
	}
	c.JSON(http.StatusOK, form)
}

func (h *FormHandler) ownerAndID(c *gin.Context) (uint, uint, bool) {
	uid, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return 0, 0, false
	}
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid form id"})
		return 0, 0, false
	}
	return uid, id, true
}

func (h *FormHandler) writeFormError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrFormNotFound), errors.Is(err, services.ErrFieldNotFound):
		c.JSON(http.StatusNotFound, response.ErrorResponse{Error: err.Error()})
	case errors.Is(err, services.ErrNotOwner):
		c.JSON(http.StatusForbidden, response.ErrorResponse{Error: err.Error()})
	case errors.Is(err, builder.ErrPositionOutOfRange):
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
	}
}
