// Package services – AnswerService
//
// This file implements the AnswerService, which coordinates repository
// operations for creating, listing, and deleting answers. Every operation is
// scoped to a parent question (or to a single answer) by identifier; the
// repository owns UUID parsing and the foreign-key re-classification.
package services

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"github.com/tbourn/go-qa-backend/internal/domain"
)

// AnswerRepo defines the repository contract required by AnswerService.
type AnswerRepo interface {
	// CreateAnswer inserts a new answer referencing questionUUID.
	CreateAnswer(ctx context.Context, db *gorm.DB, questionUUID, content string) (*domain.Answer, error)

	// ListAnswers returns all answers for the given question.
	ListAnswers(ctx context.Context, db *gorm.DB, questionUUID string) ([]domain.Answer, error)

	// DeleteAnswer removes an answer by identifier (idempotent).
	DeleteAnswer(ctx context.Context, db *gorm.DB, answerUUID string) error
}

// AnswerService provides answer-level operations. It holds no per-request
// state and is safe for concurrent use over the shared pooled DB handle.
type AnswerService struct {
	// DB is the GORM handle used for persistence.
	DB *gorm.DB
	// Repo is the answer repository used by this service.
	Repo AnswerRepo
}

// NewAnswerService constructs an AnswerService.
func NewAnswerService(db *gorm.DB, r AnswerRepo) *AnswerService {
	return &AnswerService{DB: db, Repo: r}
}

// Create persists a new answer for questionUUID. Content is trimmed; empty
// content is rejected with ErrEmptyContent before any store round trip.
// Identifier validation and the "question not found" classification happen
// in the repository.
func (s *AnswerService) Create(ctx context.Context, questionUUID, content string) (*domain.Answer, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, ErrEmptyContent
	}
	return s.Repo.CreateAnswer(ctx, s.DB, questionUUID, content)
}

// List returns all answers for a question. A question with no answers yields
// an empty slice.
func (s *AnswerService) List(ctx context.Context, questionUUID string) ([]domain.Answer, error) {
	return s.Repo.ListAnswers(ctx, s.DB, questionUUID)
}

// Delete removes an answer by identifier. Deleting a missing row is a
// success.
func (s *AnswerService) Delete(ctx context.Context, answerUUID string) error {
	return s.Repo.DeleteAnswer(ctx, s.DB, answerUUID)
}
