package models

import (
	"time"

	"gorm.io/datatypes"
)

type FieldType string

const (
	FieldText     FieldType = "text"
	FieldEmail    FieldType = "email"
	FieldNumber   FieldType = "number"
	FieldTextarea FieldType = "textarea"
	FieldDropdown FieldType = "dropdown"
	FieldRadio    FieldType = "radio"
	FieldCheckbox FieldType = "checkbox"
)

// HasOptions reports whether the field kind carries an options list.
func (t FieldType) HasOptions() bool {
	return t == FieldDropdown || t == FieldRadio || t == FieldCheckbox
}

// Field is one input definition inside a form. The ID is an opaque string
// chosen by the builder client; the server assigns one when it is blank.
type Field struct {
	ID          string    `json:"id"`
	Type        FieldType `json:"type"`
	Label       string    `json:"label"`
	Required    bool      `json:"required"`
	Placeholder string    `json:"placeholder,omitempty"`
	Options     []string  `json:"options,omitempty"`
	Min         *float64  `json:"min,omitempty"`
	Max         *float64  `json:"max,omitempty"`
}

type StyleOptions struct {
	BackgroundColor string `json:"backgroundColor"`
	TextColor       string `json:"textColor"`
	ButtonColor     string `json:"buttonColor"`
}

func DefaultStyles() StyleOptions {
	return StyleOptions{
		BackgroundColor: "#111827",
		TextColor:       "#FFFFFF",
		ButtonColor:     "#0891B2",
	}
}

type Form struct {
	FID       uint                             `gorm:"primaryKey;column:f_id" json:"id"`
	Title     string                           `gorm:"size:200;not null" json:"title"`
	OwnerID   uint                             `gorm:"column:owner_id;not null;index" json:"ownerId"`
	Fields    datatypes.JSONSlice[Field]       `json:"fields"`
	Styles    datatypes.JSONType[StyleOptions] `json:"styles"`
	CreatedAt time.Time                        `gorm:"column:create_at;autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time                        `gorm:"column:update_at;autoUpdateTime" json:"updatedAt"`
}
