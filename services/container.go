package services

import (
	"github.com/lkwun/formbuilder-go/repositories"
	"github.com/lkwun/formbuilder-go/stream"
)

type Services struct {
	User       *UserService
	Form       *FormService
	Submission *SubmissionService
}

func New(repos *repositories.Repos, hub *stream.Hub) *Services {
	return &Services{
		User:       NewUserService(repos),
		Form:       NewFormService(repos),
		Submission: NewSubmissionService(repos, hub),
	}
}
