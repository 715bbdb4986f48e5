// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for the Question
// model.
//
// All functions are context-aware and accept a *gorm.DB handle, making them
// safe for use within transactions or connection-scoped operations. They
// follow the "thin repository" approach: no business logic, only CRUD
// persistence and query composition.
//
// Error semantics:
//   - DeleteQuestion returns ErrInvalidUUID (wrapped) when the supplied
//     identifier fails UUID parsing, before touching the store.
//   - On DB errors the raw gorm error is propagated.
//   - Deletes are idempotent: zero matched rows is success.
package repo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/tbourn/go-qa-backend/internal/domain"
)

// CreateQuestion inserts a new question row with a generated UUID primary
// key and a UTC timestamp, and returns the persisted row. The identifier is
// never client-supplied, so no UUID validation happens here.
func CreateQuestion(ctx context.Context, db *gorm.DB, title, description string) (*domain.Question, error) {
	q := &domain.Question{
		QuestionUUID: uuid.NewString(),
		Title:        title,
		Description:  description,
		CreatedAt:    time.Now().UTC(),
	}
	if err := db.WithContext(ctx).Create(q).Error; err != nil {
		return nil, err
	}
	return q, nil
}

// ListQuestions returns every question in storage-native order (no ORDER BY
// is issued; callers get whatever the store yields). An empty table produces
// an empty, non-nil slice rather than an error.
func ListQuestions(ctx context.Context, db *gorm.DB) ([]domain.Question, error) {
	out := []domain.Question{}
	err := db.WithContext(ctx).Find(&out).Error
	return out, err
}

// DeleteQuestion removes a question by identifier. The identifier must parse
// as a UUID; otherwise ErrInvalidUUID is returned without a store round
// trip. Deleting an id that matches no row is a success.
func DeleteQuestion(ctx context.Context, db *gorm.DB, questionUUID string) error {
	id, err := uuid.Parse(questionUUID)
	if err != nil {
		return invalidUUID(err.Error())
	}
	return db.WithContext(ctx).Delete(&domain.Question{}, "question_uuid = ?", id.String()).Error
}
