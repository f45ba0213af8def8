package dto

import "github.com/lkwun/formbuilder-go/models"

type RegisterInput struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// UserDTO is the public user summary. The password hash never leaves the
// service layer.
type UserDTO struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

func ToUserDTO(u models.User) UserDTO {
	return UserDTO{ID: u.UID, Username: u.Username, Email: u.Email}
}
