package models

import "time"

// Account represents a registered user of the checklist service.
// It contains identity attributes, the stored password digest, and the
// ordered list of question IDs the account has marked completed.
// Sensitive fields must never be exposed outside trusted boundaries.
type Account struct {
	// AccountID is the internal unique identifier of the account,
	// assigned by the database at creation time.
	// It is not exposed via JSON and is used only at the persistence layer.
	AccountID int64 `json:"-"`

	// Email is the unique login identifier of the account.
	Email string `json:"email"`

	// PasswordHash stores the bcrypt digest of the account password.
	// This value MUST be a derived value, never plaintext, and is never
	// serialized to clients.
	PasswordHash string `json:"-"`

	// Checked is the ordered sequence of question IDs the account has
	// marked as completed. Duplicates are permitted: marking the same
	// question twice records it twice.
	Checked []string `json:"checked"`

	// JoinedAt is the timestamp when the account was created.
	JoinedAt time.Time `json:"joined_at"`
}

// TableName returns the name of the database table
// associated with the Account model.
func (a Account) TableName() string {
	return "accounts"
}
