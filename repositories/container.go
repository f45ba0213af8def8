package repositories

type Repos struct {
	User       UserRepo
	Form       FormRepo
	Submission SubmissionRepo
}

func New() *Repos {
	return &Repos{
		User:       &DBUserRepo{},
		Form:       &DBFormRepo{},
		Submission: &DBSubmissionRepo{},
	}
}
