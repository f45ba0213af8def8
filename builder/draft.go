// Package builder holds the in-memory working copy of a form under
// editing. All field and style edits go through a Draft so the selected
// field and the field list always observe the same underlying state.
package builder

import (
	"errors"

	"github.com/google/uuid"
	"github.com/lkwun/formbuilder-go/dto"
	"github.com/lkwun/formbuilder-go/models"
)

var (
	ErrFieldNotFound      = errors.New("field not found")
	ErrPositionOutOfRange = errors.New("position out of range")
	ErrUnknownStyleKey    = errors.New("unknown style key")
)

type Draft struct {
	Title    string
	fields   []models.Field
	styles   models.StyleOptions
	selected string
}

func NewDraft(title string, fields []models.Field, styles models.StyleOptions) *Draft {
	d := &Draft{
		Title:  title,
		fields: make([]models.Field, len(fields)),
		styles: styles,
	}
	copy(d.fields, fields)
	return d
}

func (d *Draft) Fields() []models.Field {
	return d.fields
}

func (d *Draft) Styles() models.StyleOptions {
	return d.styles
}

// AddField appends a field to the draft and selects it. A blank id gets a
// generated one; choice kinds without options start with a single template
// option, matching the builder palette.
func (d *Draft) AddField(field models.Field) *models.Field {
	if field.ID == "" {
		field.ID = "field_" + uuid.NewString()
	}
	if field.Type.HasOptions() && len(field.Options) == 0 {
		field.Options = []string{"Option 1"}
	}
	d.fields = append(d.fields, field)
	d.selected = field.ID
	return &d.fields[len(d.fields)-1]
}

// DeleteField removes a field by id, clearing the selection when the
// removed field was selected.
func (d *Draft) DeleteField(id string) error {
	idx := d.indexOf(id)
	if idx < 0 {
		return ErrFieldNotFound
	}
	d.fields = append(d.fields[:idx], d.fields[idx+1:]...)
	if d.selected == id {
		d.selected = ""
	}
	return nil
}

// UpdateField patches the attributes set in the input on one field.
func (d *Draft) UpdateField(id string, input dto.UpdateFieldInput) error {
	idx := d.indexOf(id)
	if idx < 0 {
		return ErrFieldNotFound
	}
	field := &d.fields[idx]
	if input.Label != nil {
		field.Label = *input.Label
	}
	if input.Required != nil {
		field.Required = *input.Required
	}
	if input.Placeholder != nil {
		field.Placeholder = *input.Placeholder
	}
	if input.Options != nil {
		field.Options = *input.Options
	}
	if input.Min != nil {
		field.Min = input.Min
	}
	if input.Max != nil {
		field.Max = input.Max
	}
	return nil
}

// MoveField moves one field to the given position. Every other field keeps
// its relative order.
func (d *Draft) MoveField(id string, position int) error {
	idx := d.indexOf(id)
	if idx < 0 {
		return ErrFieldNotFound
	}
	if position < 0 || position >= len(d.fields) {
		return ErrPositionOutOfRange
	}
	if position == idx {
		return nil
	}
	field := d.fields[idx]
	rest := append(d.fields[:idx], d.fields[idx+1:]...)
	d.fields = append(rest[:position], append([]models.Field{field}, rest[position:]...)...)
	return nil
}

// SetStyle patches one style key.
func (d *Draft) SetStyle(key, value string) error {
	switch key {
	case "backgroundColor":
		d.styles.BackgroundColor = value
	case "textColor":
		d.styles.TextColor = value
	case "buttonColor":
		d.styles.ButtonColor = value
	default:
		return ErrUnknownStyleKey
	}
	return nil
}

// Select marks a field as the one being edited in the properties panel.
func (d *Draft) Select(id string) error {
	if d.indexOf(id) < 0 {
		return ErrFieldNotFound
	}
	d.selected = id
	return nil
}

// Selected returns a pointer to the selected field inside the draft's
// list, or nil when nothing is selected. Edits through the pointer are
// visible in Fields and vice versa.
func (d *Draft) Selected() *models.Field {
	if d.selected == "" {
		return nil
	}
	idx := d.indexOf(d.selected)
	if idx < 0 {
		return nil
	}
	return &d.fields[idx]
}

func (d *Draft) indexOf(id string) int {
	for i, f := range d.fields {
		if f.ID == id {
			return i
		}
	}
	return -1
}
