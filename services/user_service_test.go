package services

import (
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/lkwun/formbuilder-go/dto"
	"github.com/lkwun/formbuilder-go/middleware"
	"github.com/lkwun/formbuilder-go/models"
	"github.com/lkwun/formbuilder-go/repositories"
	"github.com/lkwun/formbuilder-go/repositories/mock_repositories"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// --------------------- Setup ---------------------
func setupUserServiceMocks(t *testing.T) (*UserService, *mock_repositories.MockUserRepo) {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	mockUser := mock_repositories.NewMockUserRepo(ctrl)
	repos := &repositories.Repos{
		User: mockUser,
	}
	svc := NewUserService(repos)
	return svc, mockUser
}

// --------------------- RegisterUser ---------------------
func TestRegisterUser_Success(t *testing.T) {
	svc, mockUser := setupUserServiceMocks(t)

	input := dto.RegisterInput{
		Username: "alice",
		Email:    "alice@test.com",
		Password: "123456",
	}

	mockUser.EXPECT().GetUserByUsernameOrEmail("alice", "alice@test.com").Return(models.User{}, gorm.ErrRecordNotFound)
	mockUser.EXPECT().CreateUser(gomock.Any()).DoAndReturn(func(u *models.User) error {
		assert.Equal(t, "alice", u.Username)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.Password), []byte("123456")))
		return nil
	})

	user, err := svc.RegisterUser(input)
	assert.NoError(t, err)
	assert.Equal(t, "alice", user.Username)
	assert.NotEqual(t, "123456", user.Password)
}

func TestRegisterUser_Taken(t *testing.T) {
	svc, mockUser := setupUserServiceMocks(t)

	mockUser.EXPECT().GetUserByUsernameOrEmail("admin", "admin@test.com").Return(models.User{UID: 1}, nil)

	input := dto.RegisterInput{Username: "admin", Email: "admin@test.com", Password: "123456"}
	_, err := svc.RegisterUser(input)
	assert.ErrorIs(t, err, ErrUserTaken)
}

func TestRegisterUser_ConcurrentDuplicate(t *testing.T) {
	svc, mockUser := setupUserServiceMocks(t)

	// the lookup sees nothing, but a concurrent insert wins the race and
	// the create trips the unique constraint
	mockUser.EXPECT().GetUserByUsernameOrEmail("carol", "carol@test.com").Return(models.User{}, gorm.ErrRecordNotFound)
	mockUser.EXPECT().CreateUser(gomock.Any()).Return(gorm.ErrDuplicatedKey)

	input := dto.RegisterInput{Username: "carol", Email: "carol@test.com", Password: "123456"}
	_, err := svc.RegisterUser(input)
	assert.ErrorIs(t, err, ErrUserTaken)
}

func TestRegisterUser_LookupFails(t *testing.T) {
	svc, mockUser := setupUserServiceMocks(t)

	mockUser.EXPECT().GetUserByUsernameOrEmail("bob", "bob@test.com").Return(models.User{}, errors.New("db down"))

	input := dto.RegisterInput{Username: "bob", Email: "bob@test.com", Password: "123456"}
	_, err := svc.RegisterUser(input)
	assert.EqualError(t, err, "db down")
}

// --------------------- LoginUser ---------------------
func TestLoginUser_Success(t *testing.T) {
	svc, mockUser := setupUserServiceMocks(t)

	hashed, _ := bcrypt.GenerateFromPassword([]byte("123456"), bcrypt.DefaultCost)
	user := models.User{UID: 1, Username: "bob", Email: "bob@test.com", Password: string(hashed)}

	mockUser.EXPECT().GetUserByEmail("bob@test.com").Return(user, nil)

	oldGen := middleware.GenerateToken
	middleware.GenerateToken = func(uid uint, username string, ttl time.Duration) (string, error) {
		return "token123", nil
	}
	defer func() { middleware.GenerateToken = oldGen }()

	u, token, err := svc.LoginUser("bob@test.com", "123456")
	assert.NoError(t, err)
	assert.Equal(t, "bob", u.Username)
	assert.Equal(t, "token123", token)
}

func TestLoginUser_InvalidPassword(t *testing.T) {
	svc, mockUser := setupUserServiceMocks(t)

	hashed, _ := bcrypt.GenerateFromPassword([]byte("123456"), bcrypt.DefaultCost)
	user := models.User{UID: 1, Username: "bob", Email: "bob@test.com", Password: string(hashed)}

	mockUser.EXPECT().GetUserByEmail("bob@test.com").Return(user, nil)

	u, token, err := svc.LoginUser("bob@test.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidPassword)
	assert.Equal(t, models.User{}, u)
	assert.Empty(t, token)
}

func TestLoginUser_UnknownEmail(t *testing.T) {
	svc, mockUser := setupUserServiceMocks(t)

	mockUser.EXPECT().GetUserByEmail("ghost@test.com").Return(models.User{}, gorm.ErrRecordNotFound)

	u, token, err := svc.LoginUser("ghost@test.com", "123456")
	assert.ErrorIs(t, err, ErrUserNotFound)
	assert.Equal(t, models.User{}, u)
	assert.Empty(t, token)
}

func TestLoginUser_TokenFailure(t *testing.T) {
	svc, mockUser := setupUserServiceMocks(t)

	hashed, _ := bcrypt.GenerateFromPassword([]byte("123456"), bcrypt.DefaultCost)
	user := models.User{UID: 1, Username: "bob", Email: "bob@test.com", Password: string(hashed)}

	mockUser.EXPECT().GetUserByEmail("bob@test.com").Return(user, nil)

	oldGen := middleware.GenerateToken
	middleware.GenerateToken = func(uid uint, username string, ttl time.Duration) (string, error) {
		return "", errors.New("signing failed")
	}
	defer func() { middleware.GenerateToken = oldGen }()

	_, token, err := svc.LoginUser("bob@test.com", "123456")
	assert.EqualError(t, err, "signing failed")
	assert.Empty(t, token)
}
