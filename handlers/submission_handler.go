package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lkwun/formbuilder-go/dto"
	"github.com/lkwun/formbuilder-go/response"
	"github.com/lkwun/formbuilder-go/services"
	"github.com/lkwun/formbuilder-go/stream"
	"github.com/lkwun/formbuilder-go/utils"
)

type SubmissionHandler struct {
	submissions *services.SubmissionService
	hub         *stream.Hub
}

func NewSubmissionHandler(submissions *services.SubmissionService, hub *stream.Hub) *SubmissionHandler {
	return &SubmissionHandler{submissions: submissions, hub: hub}
}

// CreateSubmission godoc
// @Summary Submit answers against a form (public)
// @Tags submissions
// @Accept json
// @Produce json
// @Param id path int true "Form ID"
// @Param input body dto.CreateSubmissionInput true "Answers keyed by field label"
// @Success 201 {object} models.Submission
// @Failure 400 {object} response.ValidationErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /forms/{id}/submit [post]
func (h *SubmissionHandler) CreateSubmission(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid form id"})
		return
	}

	var input dto.CreateSubmissionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid input: " + err.Error()})
		return
	}

	submission, err := h.submissions.CreateSubmission(id, input)
	if err != nil {
		var vErr *services.ValidationError
		switch {
		case errors.As(err, &vErr):
			c.JSON(http.StatusBadRequest, response.ValidationErrorResponse{
				Error:  vErr.Error(),
				Fields: vErr.Fields,
			})
		case errors.Is(err, services.ErrFormNotFound):
			c.JSON(http.StatusNotFound, response.ErrorResponse{Error: err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		}
		return
	}

	c.JSON(http.StatusCreated, submission)
}

// GetFormSubmissions godoc
// @Summary List submissions of an owned form
// @Tags submissions
// @Produce json
// @Security BearerAuth
// @Param id path int true "Form ID"
// @Success 200 {array} models.Submission
// @Failure 403 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /forms/{id}/submissions [get]
func (h *SubmissionHandler) GetFormSubmissions(c *gin.Context) {
	uid, id, ok := h.ownerAndID(c)
	if !ok {
		return
	}

	submissions, err := h.submissions.ListSubmissions(uid, id)
	if err != nil {
		h.writeSubmissionError(c, err)
		return
	}
	c.JSON(http.StatusOK, submissions)
}

// ExportSubmissionsCSV godoc
// @Summary Download submissions of an owned form as CSV
// @Tags submissions
// @Produce text/csv
// @Security BearerAuth
// @Param id path int true "Form ID"
// @Success 200 {string} string "CSV content"
// @Failure 403 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /forms/{id}/submissions/export [get]
func (h *SubmissionHandler) ExportSubmissionsCSV(c *gin.Context) {
	uid, id, ok := h.ownerAndID(c)
	if !ok {
		return
	}

	data, filename, err := h.submissions.ExportCSV(uid, id)
	if err != nil {
		h.writeSubmissionError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", data)
}

func (h *SubmissionHandler) ownerAndID(c *gin.Context) (uint, uint, bool) {
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

func (h *SubmissionHandler) writeSubmissionError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrFormNotFound):
		c.JSON(http.StatusNotFound, response.ErrorResponse{Error: err.Error()})
	case errors.Is(err, services.ErrNotOwner):
		c.JSON(http.StatusForbidden, response.ErrorResponse{Error: err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
	}
}
