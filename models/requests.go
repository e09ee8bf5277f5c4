package models

// Credentials carries the email/password pair accepted by the register and
// login endpoints.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ChecklistRequest carries the question ID for the check/uncheck endpoints.
type ChecklistRequest struct {
	CheckedQues string `json:"checkedQues"`
}

// UploadRequest carries a solution submission. Email is intentionally
// absent: the submitting account is always resolved from the session
// credential, never from the body.
type UploadRequest struct {
	ConfirmEmail string `json:"confirmEmail"`
	Solution     string `json:"solution"`
	QuesID       string `json:"quesId"`
}

// UnsubscribeRequest carries the credentials and account ID for account
// deletion. Unsubscribe does not use the Authorization header; the caller
// re-proves ownership with the full credential pair.
type UnsubscribeRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	ID       int64  `json:"id"`
}
