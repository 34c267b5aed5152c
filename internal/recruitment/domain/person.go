package domain

import "time"

type Role string

const (
	RoleRecruiter Role = "recruiter"
	RoleApplicant Role = "applicant"
)

type ApplicationStatus string

const (
	StatusUnhandled ApplicationStatus = "unhandled"
	StatusAccepted  ApplicationStatus = "accepted"
	StatusRejected  ApplicationStatus = "rejected"
)

type Person struct {
	ID           int64
	FirstName    string
	LastName     string
	Email        string
	PersonNumber string
	Username     string
	PasswordHash string
	Role         Role
}

// Applicant is a person's application as seen by recruiters. ID is the
// applicant's person id.
type Applicant struct {
	ID        int64
	FirstName string
	LastName  string
	Status    ApplicationStatus
}

// Session is the server-side record bound to a logged in client.
type Session struct {
	ID        string    `json:"id"`
	PersonID  int64     `json:"person_id"`
	Username  string    `json:"username"`
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}
