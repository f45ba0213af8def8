package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lkwun/formbuilder-go/dto"
	"github.com/lkwun/formbuilder-go/response"
	"github.com/lkwun/formbuilder-go/services"
	"github.com/lkwun/formbuilder-go/utils"
)

type AuthHandler struct {
	users *services.UserService
}

func NewAuthHandler(users *services.UserService) *AuthHandler {
	return &AuthHandler{users: users}
}

// Register godoc
// @Summary User registration
// @Tags auth
// @Accept json
// @Produce json
// @Param input body dto.RegisterInput true "Registration info"
// @Success 201 {object} response.RegisterResponse
// @Failure 400 {object} response.ErrorResponse "Invalid input"
// @Failure 409 {object} response.ErrorResponse "Username or email already exists"
// @Failure 500 {object} response.ErrorResponse
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var input dto.RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid input: " + err.Error()})
		return
	}

	user, err := h.users.RegisterUser(input)
	if err != nil {
		if errors.Is(err, services.ErrUserTaken) {
			c.JSON(http.StatusConflict, response.ErrorResponse{Error: err.Error()})
		} else {
			c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		}
		return
	}

	c.JSON(http.StatusCreated, response.RegisterResponse{
		Message: "User registered successfully",
		User:    dto.ToUserDTO(user),
	})
}

// Login godoc
// @Summary User login
// @Tags auth
// @Accept json
// @Produce json
// @Param input body dto.LoginInput true "Credentials"
// @Success 200 {object} response.LoginResponse
// @Failure 400 {object} response.ErrorResponse "Invalid input"
// @Failure 401 {object} response.ErrorResponse "Invalid password"
// @Failure 404 {object} response.ErrorResponse "User not found"
// @Failure 500 {object} response.ErrorResponse
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var input dto.LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid input: " + err.Error()})
		return
	}

	user, token, err := h.users.LoginUser(input.Email, input.Password)
	switch {
	case errors.Is(err, services.ErrUserNotFound):
		c.JSON(http.StatusNotFound, response.ErrorResponse{Error: err.Error()})
		return
	case errors.Is(err, services.ErrInvalidPassword):
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: err.Error()})
		return
	case err != nil:
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, response.LoginResponse{
		Message:     "User logged in successfully",
		User:        dto.ToUserDTO(user),
		AccessToken: token,
	})
}

// Check godoc
// @Summary Verify the bearer token
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.AuthCheckResponse
// @Failure 401 {object} response.ErrorResponse
// @Router /auth/check [get]
func (h *AuthHandler) Check(c *gin.Context) {
	uid, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}
	c.JSON(http.StatusOK, response.AuthCheckResponse{Authenticated: true, UserID: uid})
}
