package dto

import "github.com/gohire/recruitment-service/internal/recruitment/domain"

type LoggedInPersonOutput struct {
	ID        int64  `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Username  string `json:"username"`
	Role      string `json:"role"`
}

func NewLoggedInPersonOutput(p *domain.Person) LoggedInPersonOutput {
	return LoggedInPersonOutput{
		ID:        p.ID,
		FirstName: p.FirstName,
		LastName:  p.LastName,
		Username:  p.Username,
		Role:      string(p.Role),
	}
}

type MessageOutput struct {
	Message string `json:"message"`
}

type ErrorOutput struct {
	ErrorType string `json:"errorType"`
	Message   string `json:"message"`
}

type WhoOutput struct {
	Username string `json:"username"`
}
