// Package domain defines the persistence models for questions and their
// answers. These types are mapped with GORM and double as the JSON
// projections returned by the API.
package domain

import (
	"time"
)

// Question is a posted question. Rows are immutable once created except by
// deletion; there is no update path.
//
// Fields:
//   - QuestionUUID: stable UUIDv4 primary key (char(36)), generated at insert.
//   - Title / Description: user-supplied text, never empty once persisted
//     (enforced upstream at the handler layer).
//   - CreatedAt: set at insertion time (UTC) and never mutated.
type Question struct {
	QuestionUUID string    `json:"question_uuid" gorm:"type:char(36);primaryKey;column:question_uuid"`
	Title        string    `json:"title"         gorm:"type:varchar(255);not null"`
	Description  string    `json:"description"   gorm:"type:text;not null"`
	CreatedAt    time.Time `json:"created_at"`
}

// TableName returns the database table name for Question.
func (Question) TableName() string { return "questions" }

// Answer is a reply to exactly one question, linked by question_uuid. The
// foreign key is enforced by the store: inserting an answer for a missing
// question fails with a constraint violation. Deleting a question does not
// cascade to its answers.
type Answer struct {
	AnswerUUID   string    `json:"answer_uuid"   gorm:"type:char(36);primaryKey;column:answer_uuid"`
	QuestionUUID string    `json:"question_uuid" gorm:"type:char(36);not null;index:idx_question_answers;column:question_uuid"`
	Content      string    `json:"content"       gorm:"type:text;not null"`
	CreatedAt    time.Time `json:"created_at"`

	// Question is the parent row. The association declares the constraint;
	// answers are never preloaded through it.
	Question Question `json:"-" gorm:"foreignKey:QuestionUUID;references:QuestionUUID;constraint:OnUpdate:CASCADE"`
}

// TableName returns the database table name for Answer.
func (Answer) TableName() string { return "answers" }
