// Package services – QuestionService
//
// This file implements the QuestionService, which coordinates repository
// operations for creating, listing, and deleting questions. Input text is
// trimmed and guarded against empty values; identifier validation and the
// storage error taxonomy live in the repo layer.
package services

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"github.com/tbourn/go-qa-backend/internal/domain"
)

// QuestionRepo defines the repository contract required by QuestionService.
// Implementations are responsible for persistence of question rows.
type QuestionRepo interface {
	// CreateQuestion inserts a new question row with a generated identifier.
	CreateQuestion(ctx context.Context, db *gorm.DB, title, description string) (*domain.Question, error)

	// ListQuestions returns all questions in storage-native order.
	ListQuestions(ctx context.Context, db *gorm.DB) ([]domain.Question, error)

	// DeleteQuestion removes a question by identifier (idempotent).
	DeleteQuestion(ctx context.Context, db *gorm.DB, questionUUID string) error
}

// QuestionService provides question-level operations. It holds no per-request
// state and is safe for concurrent use over the shared pooled DB handle.
type QuestionService struct {
	// DB is the GORM handle used for persistence.
	DB *gorm.DB
	// Repo is the question repository used by this service.
	Repo QuestionRepo
}

// NewQuestionService constructs a QuestionService.
func NewQuestionService(db *gorm.DB, r QuestionRepo) *QuestionService {
	return &QuestionService{DB: db, Repo: r}
}

// Create persists a new question. Title and description are trimmed; empty
// values are rejected with ErrEmptyTitle / ErrEmptyDescription before any
// store round trip.
func (s *QuestionService) Create(ctx context.Context, title, description string) (*domain.Question, error) {
	title = strings.TrimSpace(title)
	description = strings.TrimSpace(description)
	if title == "" {
		return nil, ErrEmptyTitle
	}
	if description == "" {
		return nil, ErrEmptyDescription
	}
	return s.Repo.CreateQuestion(ctx, s.DB, title, description)
}

// List returns all questions. No ordering guarantee is made.
func (s *QuestionService) List(ctx context.Context) ([]domain.Question, error) {
	return s.Repo.ListQuestions(ctx, s.DB)
}

// Delete removes a question by identifier. UUID validation happens in the
// repository; deleting a missing row is a success.
func (s *QuestionService) Delete(ctx context.Context, questionUUID string) error {
	return s.Repo.DeleteQuestion(ctx, s.DB, questionUUID)
}
