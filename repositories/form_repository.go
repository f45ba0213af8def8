package repositories

import (
	"github.com/lkwun/formbuilder-go/db"
	"github.com/lkwun/formbuilder-go/models"
)

type FormRepo interface {
	CreateForm(form *models.Form) error
	GetFormByID(id uint) (models.Form, error)
	GetFormsByOwner(ownerID uint) ([]models.Form, error)
	SaveForm(form *models.Form) error
	DeleteForm(id uint) error
}

type DBFormRepo struct{}

func (r *DBFormRepo) CreateForm(form *models.Form) error {
	return db.DB.Create(form).Error
}

func (r *DBFormRepo) GetFormByID(id uint) (models.Form, error) {
	var form models.Form
	if err := db.DB.First(&form, id).Error; err != nil {
		return models.Form{}, err
	}
	return form, nil
}

func (r *DBFormRepo) GetFormsByOwner(ownerID uint) ([]models.Form, error) {
	var forms []models.Form
	err := db.DB.Where("owner_id = ?", ownerID).Order("create_at desc").Find(&forms).Error
	return forms, err
}

func (r *DBFormRepo) SaveForm(form *models.Form) error {
	return db.DB.Save(form).Error
}

func (r *DBFormRepo) DeleteForm(id uint) error {
	return db.DB.Delete(&models.Form{}, id).Error
}
