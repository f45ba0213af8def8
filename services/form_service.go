package services

import (
	"errors"

	"github.com/lkwun/formbuilder-go/builder"
	"github.com/lkwun/formbuilder-go/dto"
	"github.com/lkwun/formbuilder-go/models"
	"github.com/lkwun/formbuilder-go/repositories"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var (
	ErrFormNotFound  = errors.New("form not found")
	ErrNotOwner      = errors.New("not the owner of this form")
	ErrFieldNotFound = builder.ErrFieldNotFound
)

type FormService struct {
	repos *repositories.Repos
}

func NewFormService(repos *repositories.Repos) *FormService {
	return &FormService{repos: repos}
}

func (s *FormService) CreateForm(ownerID uint, input dto.CreateFormInput) (models.Form, error) {
	form := models.Form{
		Title:   input.Title,
		OwnerID: ownerID,
		Fields:  datatypes.NewJSONSlice([]models.Field{}),
		Styles:  datatypes.NewJSONType(models.DefaultStyles()),
	}
	if err := s.repos.Form.CreateForm(&form); err != nil {
		return models.Form{}, err
	}
	return form, nil
}

func (s *FormService) GetOwnerForms(ownerID uint) ([]models.Form, error) {
	return s.repos.Form.GetFormsByOwner(ownerID)
}

// GetPublicForm serves the unauthenticated read. Nothing is redacted: the
// public renderer needs the full field and style definition.
func (s *FormService) GetPublicForm(formID uint) (models.Form, error) {
	form, err := s.repos.Form.GetFormByID(formID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Form{}, ErrFormNotFound
	}
	return form, err
}

// UpdateForm replaces the provided top-level attributes wholesale; fields
// and styles are never merged per entry. Last write wins between
// concurrent editors.
func (s *FormService) UpdateForm(ownerID, formID uint, input dto.UpdateFormInput) (models.Form, error) {
	form, err := s.getOwnedForm(ownerID, formID)
	if err != nil {
		return models.Form{}, err
	}

	if input.Title != nil {
		form.Title = *input.Title
	}
	if input.Fields != nil {
		form.Fields = datatypes.NewJSONSlice(*input.Fields)
	}
	if input.Styles != nil {
		form.Styles = datatypes.NewJSONType(*input.Styles)
	}

	if err := s.repos.Form.SaveForm(&form); err != nil {
		return models.Form{}, err
	}
	return form, nil
}

// DeleteForm removes a form and its submissions.
func (s *FormService) DeleteForm(ownerID, formID uint) error {
	if _, err := s.getOwnedForm(ownerID, formID); err != nil {
		return err
	}
	if err := s.repos.Submission.DeleteSubmissionsByFormID(formID); err != nil {
		return err
	}
	return s.repos.Form.DeleteForm(formID)
}

func (s *FormService) AddField(ownerID, formID uint, input dto.AddFieldInput) (models.Form, error) {
	return s.editFields(ownerID, formID, func(d *builder.Draft) error {
		d.AddField(models.Field{
			ID:          input.ID,
			Type:        input.Type,
			Label:       input.Label,
			Required:    input.Required,
			Placeholder: input.Placeholder,
			Options:     input.Options,
			Min:         input.Min,
			Max:         input.Max,
		})
		return nil
	})
}

func (s *FormService) UpdateField(ownerID, formID uint, fieldID string, input dto.UpdateFieldInput) (models.Form, error) {
	return s.editFields(ownerID, formID, func(d *builder.Draft) error {
		return d.UpdateField(fieldID, input)
	})
}

func (s *FormService) DeleteField(ownerID, formID uint, fieldID string) (models.Form, error) {
	return s.editFields(ownerID, formID, func(d *builder.Draft) error {
		return d.DeleteField(fieldID)
	})
}

func (s *FormService) MoveField(ownerID, formID uint, fieldID string, position int) (models.Form, error) {
	return s.editFields(ownerID, formID, func(d *builder.Draft) error {
		return d.MoveField(fieldID, position)
	})
}

func (s *FormService) editFields(ownerID, formID uint, edit func(*builder.Draft) error) (models.Form, error) {
	form, err := s.getOwnedForm(ownerID, formID)
	if err != nil {
		return models.Form{}, err
	}

	draft := builder.NewDraft(form.Title, form.Fields, form.Styles.Data())
	if err := edit(draft); err != nil {
		return models.Form{}, err
	}

	form.Fields = datatypes.NewJSONSlice(draft.Fields())
	if err := s.repos.Form.SaveForm(&form); err != nil {
		return models.Form{}, err
	}
	return form, nil
}

func (s *FormService) getOwnedForm(ownerID, formID uint) (models.Form, error) {
	form, err := s.repos.Form.GetFormByID(formID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Form{}, ErrFormNotFound
	}
	if err != nil {
		return models.Form{}, err
	}
	if form.OwnerID != ownerID {
		return models.Form{}, ErrNotOwner
	}
	return form, nil
}
