package dto

import "github.com/gohire/recruitment-service/internal/recruitment/domain"

type CreateApplicantInput struct {
	FirstName    string `json:"firstName" validate:"required,max=255"`
	LastName     string `json:"lastName" validate:"required,max=255"`
	Email        string `json:"email" validate:"required,email,max=255"`
	PersonNumber string `json:"personNumber" validate:"required,personnumber"`
	Username     string `json:"username" validate:"required,max=255"`
	Password     string `json:"password" validate:"required,bcryptmax"`
}

type ApplicantOutput struct {
	ID        int64  `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Status    string `json:"status"`
}

func NewApplicantOutput(a domain.Applicant) ApplicantOutput {
	return ApplicantOutput{
		ID:        a.ID,
		FirstName: a.FirstName,
		LastName:  a.LastName,
		Status:    string(a.Status),
	}
}

func NewApplicantOutputs(applicants []domain.Applicant) []ApplicantOutput {
	out := make([]ApplicantOutput, 0, len(applicants))
	for _, a := range applicants {
		out = append(out, NewApplicantOutput(a))
	}
	return out
}
