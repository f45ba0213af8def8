package dto

import "github.com/lkwun/formbuilder-go/models"

type CreateFormInput struct {
	Title string `json:"title" binding:"required"`
}

// UpdateFormInput replaces the provided top-level attributes wholesale.
// Fields and styles are not merged per entry.
type UpdateFormInput struct {
	Title  *string              `json:"title"`
	Fields *[]models.Field      `json:"fields"`
	Styles *models.StyleOptions `json:"styles"`
}

type AddFieldInput struct {
	ID          string           `json:"id"`
	Type        models.FieldType `json:"type" binding:"required,oneof=text email number textarea dropdown radio checkbox"`
	Label       string           `json:"label" binding:"required"`
	Required    bool             `json:"required"`
	Placeholder string           `json:"placeholder"`
	Options     []string         `json:"options"`
	Min         *float64         `json:"min"`
	Max         *float64         `json:"max"`
}

type UpdateFieldInput struct {
	Label       *string   `json:"label"`
	Required    *bool     `json:"required"`
	Placeholder *string   `json:"placeholder"`
	Options     *[]string `json:"options"`
	Min         *float64  `json:"min"`
	Max         *float64  `json:"max"`
}

type MoveFieldInput struct {
	Position *int `json:"position" binding:"required"`
}
