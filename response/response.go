package response

import "github.com/lkwun/formbuilder-go/dto"

type ErrorResponse struct {
	Error string `json:"error"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

// ValidationErrorResponse reports a rejected submission with one message
// per failing field label.
type ValidationErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields"`
}

type RegisterResponse struct {
	Message string      `json:"message"`
	User    dto.UserDTO `json:"user"`
}

type LoginResponse struct {
	Message     string      `json:"message"`
	User        dto.UserDTO `json:"user"`
	AccessToken string      `json:"accessToken"`
}

type AuthCheckResponse struct {
	Authenticated bool `json:"authenticated"`
	UserID        uint `json:"user_id"`
}
