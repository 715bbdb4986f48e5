// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for the Answer
// model.
//
// Every operation is scoped by or validated against an identifier, so all
// three entry points start with UUID parsing. CreateAnswer is the one place
// where a storage error is inspected: a foreign-key violation means the
// referenced question does not exist and is re-classified as ErrInvalidUUID
// instead of being propagated raw.
package repo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/tbourn/go-qa-backend/internal/domain"
)

// CreateAnswer inserts a new answer referencing questionUUID.
//
// The questionUUID must parse as a UUID (ErrInvalidUUID otherwise). If the
// insert violates the questions foreign key, the error is returned as
// ErrInvalidUUID with detail "question not found"; any other storage failure
// is propagated unchanged.
func CreateAnswer(ctx context.Context, db *gorm.DB, questionUUID, content string) (*domain.Answer, error) {
	qid, err := uuid.Parse(questionUUID)
	if err != nil {
		return nil, invalidUUID(err.Error())
	}

	a := &domain.Answer{
		AnswerUUID:   uuid.NewString(),
		QuestionUUID: qid.String(),
		Content:      content,
		CreatedAt:    time.Now().UTC(),
	}
	if err := db.WithContext(ctx).Create(a).Error; err != nil {
		if isForeignKeyViolation(err) {
			return nil, invalidUUID("question not found")
		}
		return nil, err
	}
	return a, nil
}

// ListAnswers returns all answers for a question in storage-native order.
// The questionUUID must parse as a UUID. A question with no answers (or an
// unknown question) yields an empty, non-nil slice, never an error.
func ListAnswers(ctx context.Context, db *gorm.DB, questionUUID string) ([]domain.Answer, error) {
	qid, err := uuid.Parse(questionUUID)
	if err != nil {
		return nil, invalidUUID(err.Error())
	}
	out := []domain.Answer{}
	err = db.WithContext(ctx).Where("question_uuid = ?", qid.String()).Find(&out).Error
	return out, err
}

// DeleteAnswer removes an answer by identifier. The identifier must parse as
// a UUID; deleting an id that matches no row is a success.
func DeleteAnswer(ctx context.Context, db *gorm.DB, answerUUID string) error {
	id, err := uuid.Parse(answerUUID)
	if err != nil {
		return invalidUUID(err.Error())
	}
	return db.WithContext(ctx).Delete(&domain.Answer{}, "answer_uuid = ?", id.String()).Error
}
