package dto

import "github.com/lkwun/formbuilder-go/models"

type CreateSubmissionInput struct {
	Responses []models.FieldResponse `json:"responses" binding:"required"`
}
