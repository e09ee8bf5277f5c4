package models

import "time"

// Solution is a free-text answer submitted for a question by an
// authenticated account. Records are append-only: they are never updated
// or deleted by the application, and nothing prevents an account from
// submitting several solutions for the same question.
type Solution struct {
	// SolutionID is the internal identifier assigned by the database.
	SolutionID int64 `json:"-"`

	// Email is the email of the account the submission is attributed to.
	// It is taken from the authenticated account, never from the request.
	Email string `json:"email"`

	// ConfirmEmail is the email the caller typed into the submission form.
	// It is recorded as-is and is NOT checked against Email; downstream
	// review compares the two manually.
	ConfirmEmail string `json:"confirmEmail"`

	// SolutionText is the free-form solution body.
	SolutionText string `json:"solution"`

	// QuestionID identifies the question the solution answers.
	QuestionID string `json:"quesId"`

	// CreatedAt is the timestamp when the submission was recorded.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the Solution model.
func (s Solution) TableName() string {
	return "solutions"
}
