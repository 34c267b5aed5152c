package dto

// ChangeStatusInput carries the recruiter's credentials next to the decision
// so they can be re-checked before the status is written.
type ChangeStatusInput struct {
	ID        int64  `json:"id" validate:"required,min=1"`
	NewStatus string `json:"newStatus" validate:"required,oneof=accepted rejected"`
	Username  string `json:"username" validate:"required,max=255"`
	Password  string `json:"password" validate:"required,max=255"`
}
