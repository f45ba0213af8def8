package services

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"errors"
	"log"

	"github.com/lkwun/formbuilder-go/dto"
	"github.com/lkwun/formbuilder-go/models"
	"github.com/lkwun/formbuilder-go/repositories"
	"github.com/lkwun/formbuilder-go/stream"
	"github.com/lkwun/formbuilder-go/validation"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ValidationError carries per-field messages for a rejected submission.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return "submission failed validation"
}

type SubmissionService struct {
	repos *repositories.Repos
	hub   *stream.Hub
}

func NewSubmissionService(repos *repositories.Repos, hub *stream.Hub) *SubmissionService {
	return &SubmissionService{repos: repos, hub: hub}
}

// CreateSubmission accepts a public submission. The renderer validates
// before posting, but the server re-runs the same rules against the stored
// field definitions and is authoritative.
func (s *SubmissionService) CreateSubmission(formID uint, input dto.CreateSubmissionInput) (models.Submission, error) {
	form, err := s.repos.Form.GetFormByID(formID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Submission{}, ErrFormNotFound
	}
	if err != nil {
		return models.Submission{}, err
	}

	if errs := validation.ValidateResponses(form.Fields, input.Responses); len(errs) > 0 {
		return models.Submission{}, &ValidationError{Fields: errs}
	}

	submission := models.Submission{
		FormID:    formID,
		Responses: datatypes.NewJSONSlice(input.Responses),
	}
	if err := s.repos.Submission.CreateSubmission(&submission); err != nil {
		return models.Submission{}, err
	}

	if payload, err := json.Marshal(submission); err == nil {
		s.hub.Publish(formID, payload)
	} else {
		log.Println("Failed to encode submission for stream:", err)
	}

	return submission, nil
}

func (s *SubmissionService) ListSubmissions(ownerID, formID uint) ([]models.Submission, error) {
	if err := s.CheckOwner(ownerID, formID); err != nil {
		return nil, err
	}
	return s.repos.Submission.GetSubmissionsByFormID(formID)
}

// ExportCSV renders all submissions of a form as CSV, one column per form
// field in field order. When the form definition no longer lists any
// fields, the first submission's labels decide the columns.
func (s *SubmissionService) ExportCSV(ownerID, formID uint) ([]byte, string, error) {
	form, err := s.repos.Form.GetFormByID(formID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, "", ErrFormNotFound
	}
	if err != nil {
		return nil, "", err
	}
	if form.OwnerID != ownerID {
		return nil, "", ErrNotOwner
	}

	submissions, err := s.repos.Submission.GetSubmissionsByFormID(formID)
	if err != nil {
		return nil, "", err
	}

	var headers []string
	for _, field := range form.Fields {
		headers = append(headers, field.Label)
	}
	if len(headers) == 0 && len(submissions) > 0 {
		for _, r := range submissions[0].Responses {
			headers = append(headers, r.FieldLabel)
		}
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(headers); err != nil {
		return nil, "", err
	}
	for _, submission := range submissions {
		answers := make(map[string]string, len(submission.Responses))
		for _, r := range submission.Responses {
			answers[r.FieldLabel] = r.Answer
		}
		row := make([]string, len(headers))
		for i, header := range headers {
			row[i] = answers[header]
		}
		if err := w.Write(row); err != nil {
			return nil, "", err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, "", err
	}

	return buf.Bytes(), form.Title + "_submissions.csv", nil
}

// CheckOwner verifies the form exists and belongs to ownerID without
// loading any submissions.
func (s *SubmissionService) CheckOwner(ownerID, formID uint) error {
	form, err := s.repos.Form.GetFormByID(formID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrFormNotFound
	}
	if err != nil {
		return err
	}
	if form.OwnerID != ownerID {
		return ErrNotOwner
	}
	return nil
}
