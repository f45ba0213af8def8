package handlers

import (
	"github.com/lkwun/formbuilder-go/services"
	"github.com/lkwun/formbuilder-go/stream"
)

type Handlers struct {
	Auth       *AuthHandler
	Form       *FormHandler
	Submission *SubmissionHandler
}

func New(svc *services.Services, hub *stream.Hub) *Handlers {
	return &Handlers{
		Auth:       NewAuthHandler(svc.User),
		Form:       NewFormHandler(svc.Form),
		Submission: NewSubmissionHandler(svc.Submission, hub),
	}
}
