// Question HTTP handlers.
//
// This file exposes REST endpoints for question resources:
//   - POST   /question   (create)
//   - GET    /questions  (list all, ETag support)
//   - DELETE /question   (delete by identifier, idempotent)
//
// Handlers are transport-thin: they validate input shape (required fields,
// UUID format of client-supplied identifiers), delegate to application
// services, and translate results into HTTP responses. Storage-level
// failures surfaced by the data layer always map to 500; only
// pre-delegation validation produces 400.
package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/tbourn/go-qa-backend/internal/domain"
	"github.com/tbourn/go-qa-backend/internal/repo"
	"github.com/tbourn/go-qa-backend/internal/services"
)

//
// Service contracts (context-aware)
//

// QuestionService defines question lifecycle operations consumed by HTTP
// handlers.
//
// Implementations should be safe for concurrent use and must honor the
// provided context for cancellation and timeouts.
type QuestionService interface {
	// Create persists a new question with the given title and description.
	Create(ctx context.Context, title, description string) (*domain.Question, error)
	// List returns all questions (no ordering guarantee).
	List(ctx context.Context) ([]domain.Question, error)
	// Delete removes a question by identifier; missing rows are a success.
	Delete(ctx context.Context, questionUUID string) error
}

// AnswerService defines answer lifecycle operations consumed by HTTP
// handlers.
//
// Implementations should be safe for concurrent use and must honor the
// provided context for cancellation and timeouts.
type AnswerService interface {
	// Create persists a new answer referencing questionUUID.
	Create(ctx context.Context, questionUUID, content string) (*domain.Answer, error)
	// List returns all answers for a question.
	List(ctx context.Context, questionUUID string) ([]domain.Answer, error)
	// Delete removes an answer by identifier; missing rows are a success.
	Delete(ctx context.Context, answerUUID string) error
}

//
// Handler wiring
//

// Handlers groups HTTP endpoints for questions and answers. It depends on
// abstract service interfaces to keep transport concerns separate from
// business logic.
type Handlers struct {
	qSvc QuestionService
	aSvc AnswerService
}

// New constructs and returns a Handlers instance bound to the given services.
func New(qSvc QuestionService, aSvc AnswerService) *Handlers {
	return &Handlers{qSvc: qSvc, aSvc: aSvc}
}

//
// DTOs
//

// CreateQuestionRequest is the JSON payload for posting a question.
type CreateQuestionRequest struct {
	// Title is the question headline. It must be non-empty.
	Title string `json:"title" example:"How are foreign keys enforced?"`
	// Description is the question body. It must be non-empty.
	Description string `json:"description" example:"Specifically for SQLite with PRAGMA foreign_keys=ON."`
}

// QuestionIDRequest carries a question identifier in a request body.
type QuestionIDRequest struct {
	// QuestionUUID is the target question identifier (UUID format).
	QuestionUUID string `json:"question_uuid" example:"141add05-4415-4938-b5a1-17e0d3171aff"`
}

//
// Handlers
//

// CreateQuestion godoc
// @ID          createQuestion
// @Summary     Post a new question
// @Description Persists a question and returns it with the generated identifier and timestamp.
// @Tags        Questions
// @Accept      json
// @Produce     json
//
// @Param       body  body  handlers.CreateQuestionRequest  true  "Question payload"
//
// @Success     200  {object}  domain.Question
// @Failure     400  {object}  handlers.ErrorResponse  "Empty title or description"
// @Failure     500  {object}  handlers.ErrorResponse  "Storage error"
// @Router      /question [post]
func (h *Handlers) CreateQuestion(c *gin.Context) {
	var req CreateQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid JSON body")
		return
	}
	if strings.TrimSpace(req.Title) == "" {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "title is required")
		return
	}
	if strings.TrimSpace(req.Description) == "" {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "description is required")
		return
	}

	q, err := h.qSvc.Create(c.Request.Context(), req.Title, req.Description)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrEmptyTitle):
			fail(c, http.StatusBadRequest, ErrCodeBadRequest, "title is required")
		case errors.Is(err, services.ErrEmptyDescription):
			fail(c, http.StatusBadRequest, ErrCodeBadRequest, "description is required")
		default:
			fail(c, http.StatusInternalServerError, ErrCodeCreateFailed, err.Error())
		}
		return
	}
	ok(c, http.StatusOK, q)
}

// ListQuestions godoc
// @ID          listQuestions
// @Summary     List all questions
// @Description Returns every question. Supports weak ETag via If-None-Match and may return 304.
// @Tags        Questions
// @Produce     json
//
// @Param       If-None-Match  header  string  false "Return 304 if ETag matches"  example(W/\"abc123\")
//
// @Success     200  {array} domain.Question
// @Header      200  {string} ETag "Weak ETag for current result"
// @Success     304  {string} string "Not Modified"
// @Failure     500  {object} handlers.ErrorResponse "Storage error"
// @Router      /questions [get]
func (h *Handlers) ListQuestions(c *gin.Context) {
	ctx := c.Request.Context()

	// ETag pre-check (best effort).
	if db := h.questionDB(); db != nil {
		count, maxTS, err := repo.QuestionsStats(ctx, db)
		if err == nil {
			var ts int64
			if maxTS != nil {
				// Nanosecond precision: a delete-and-reinsert within the
				// same second must still change the ETag.
				ts = maxTS.UnixNano()
			}
			etag := fmt.Sprintf(`W/"questions:%d:%d"`, count, ts)
			c.Header("ETag", etag)
			if inm := c.GetHeader("If-None-Match"); inm != "" && inm == etag {
				c.Status(http.StatusNotModified)
				return
			}
		}
	}

	items, err := h.qSvc.List(ctx)
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeListFailed, err.Error())
		return
	}
	ok(c, http.StatusOK, items)
}

// DeleteQuestion godoc
// @ID          deleteQuestion
// @Summary     Delete a question
// @Description Deletes a question by identifier. Deleting an unknown identifier succeeds.
// @Tags        Questions
// @Accept      json
// @Produce     json
//
// @Param       body  body  handlers.QuestionIDRequest  true  "Question identifier"
//
// @Success     200  {string} string "OK"
// @Failure     400  {object} handlers.ErrorResponse "Empty or malformed question_uuid"
// @Failure     500  {object} handlers.ErrorResponse "Storage error"
// @Router      /question [delete]
func (h *Handlers) DeleteQuestion(c *gin.Context) {
	var req QuestionIDRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid JSON body")
		return
	}
	if strings.TrimSpace(req.QuestionUUID) == "" {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "question_uuid is required")
		return
	}
	if _, err := uuid.Parse(req.QuestionUUID); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "question_uuid must be a UUID")
		return
	}

	if err := h.qSvc.Delete(c.Request.Context(), req.QuestionUUID); err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeDeleteFailed, err.Error())
		return
	}
	okEmpty(c)
}

// questionDB exposes the concrete service's DB handle for best-effort ETag
// stats. Returns nil when the service is not the production implementation.
func (h *Handlers) questionDB() *gorm.DB {
	if svc, okSvc := h.qSvc.(*services.QuestionService); okSvc {
		return svc.DB
	}
	return nil
}
