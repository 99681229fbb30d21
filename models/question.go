package models

import "time"

// MaxQuestionTextLength bounds the length of Question.QuestionText,
// mirroring the column constraint in the questions table.
const MaxQuestionTextLength = 10000

// Question represents a single submitted question form entry.
// Every question is owned by exactly one user; deleting the owner cascades
// to the owner's questions at the storage layer.
type Question struct {
	// ID is the internal unique identifier of the question.
	ID int64 `json:"id"`

	// QuestionText is the free-form question body.
	// Required; bounded by [MaxQuestionTextLength].
	QuestionText string `json:"question_text"`

	// UserID references the owning user account.
	UserID int64 `json:"user"`

	// CreatedAt is server-assigned at insertion time. Listings are ordered
	// by this field ascending.
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is server-assigned and refreshed on every modification.
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the Question model.
func (q Question) TableName() string {
	return "questions"
}
