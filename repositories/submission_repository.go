package repositories

import (
	"github.com/lkwun/formbuilder-go/db"
	"github.com/lkwun/formbuilder-go/models"
)

type SubmissionRepo interface {
	CreateSubmission(submission *models.Submission) error
	GetSubmissionsByFormID(formID uint) ([]models.Submission, error)
	DeleteSubmissionsByFormID(formID uint) error
}

type DBSubmissionRepo struct{}

func (r *DBSubmissionRepo) CreateSubmission(submission *models.Submission) error {
	return db.DB.Create(submission).Error
}

func (r *DBSubmissionRepo) GetSubmissionsByFormID(formID uint) ([]models.Submission, error) {
	var submissions []models.Submission
	err := db.DB.Where("form_id = ?", formID).Find(&submissions).Error
	return submissions, err
}

func (r *DBSubmissionRepo) DeleteSubmissionsByFormID(formID uint) error {
	return db.DB.Where("form_id = ?", formID).Delete(&models.Submission{}).Error
}
