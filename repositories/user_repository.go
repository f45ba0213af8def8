package repositories

import (
	"github.com/lkwun/formbuilder-go/db"
	"github.com/lkwun/formbuilder-go/models"
)

type UserRepo interface {
	GetUserByEmail(email string) (models.User, error)
	GetUserByUsernameOrEmail(username, email string) (models.User, error)
	GetUserByID(id uint) (models.User, error)
	CreateUser(user *models.User) error
}

type DBUserRepo struct{}

func (r *DBUserRepo) GetUserByEmail(email string) (models.User, error) {
	var user models.User
	if err := db.DB.Where("email = ?", email).First(&user).Error; err != nil {
		return models.User{}, err
	}
	return user, nil
}

func (r *DBUserRepo) GetUserByUsernameOrEmail(username, email string) (models.User, error) {
	var user models.User
	err := db.DB.Where("username = ? OR email = ?", username, email).First(&user).Error
	if err != nil {
		return models.User{}, err
	}
	return user, nil
}

func (r *DBUserRepo) GetUserByID(id uint) (models.User, error) {
	var user models.User
	if err := db.DB.First(&user, id).Error; err != nil {
		return models.User{}, err
	}
	return user, nil
}

func (r *DBUserRepo) CreateUser(user *models.User) error {
	return db.DB.Create(user).Error
}
