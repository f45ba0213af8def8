package services

import (
	"errors"

	"github.com/lkwun/formbuilder-go/config"
	"github.com/lkwun/formbuilder-go/dto"
	"github.com/lkwun/formbuilder-go/middleware"
	"github.com/lkwun/formbuilder-go/models"
	"github.com/lkwun/formbuilder-go/repositories"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrUserTaken           = errors.New("username or email already exists")
	ErrUserNotFound        = errors.New("user not found")
	ErrInvalidPassword     = errors.New("invalid password")
	ErrPasswordHashFailure = errors.New("failed to hash password")
)

type UserService struct {
	repos *repositories.Repos
}

func NewUserService(repos *repositories.Repos) *UserService {
	return &UserService{repos: repos}
}

func (s *UserService) RegisterUser(input dto.RegisterInput) (models.User, error) {
	_, err := s.repos.User.GetUserByUsernameOrEmail(input.Username, input.Email)
	if err == nil {
		return models.User{}, ErrUserTaken
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return models.User{}, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, ErrPasswordHashFailure
	}

	user := models.User{
		Username: input.Username,
		Email:    input.Email,
		Password: string(hashed),
	}
	if err := s.repos.User.CreateUser(&user); err != nil {
		// A concurrent registration can slip past the lookup and trip the
		// unique constraint instead.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return models.User{}, ErrUserTaken
		}
		return models.User{}, err
	}
	return user, nil
}

// LoginUser distinguishes an unknown email from a wrong password so the
// handler can report them separately.
func (s *UserService) LoginUser(email, password string) (models.User, string, error) {
	user, err := s.repos.User.GetUserByEmail(email)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.User{}, "", ErrUserNotFound
	}
	if err != nil {
		return models.User{}, "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return models.User{}, "", ErrInvalidPassword
	}

	token, err := middleware.GenerateToken(user.UID, user.Username, config.TokenTTL)
	if err != nil {
		return models.User{}, "", err
	}

	return user, token, nil
}
