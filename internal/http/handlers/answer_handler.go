// Answer HTTP handlers.
//
// This file exposes REST endpoints for answer resources:
//   - POST   /answer   (create, scoped to a question)
//   - GET    /answers  (list answers of a question, ETag support)
//   - DELETE /answer   (delete by identifier, idempotent)
//
// The question_uuid on POST /answer is client-supplied and is validated for
// UUID shape here before delegation. An answer insert that references a
// well-formed but unknown question fails inside the data layer (foreign-key
// violation) and surfaces as a 500, not a 400 — transport validation covers
// shape only, never existence.
package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/tbourn/go-qa-backend/internal/repo"
	"github.com/tbourn/go-qa-backend/internal/services"
)

//
// DTOs
//

// CreateAnswerRequest is the JSON payload for answering a question.
type CreateAnswerRequest struct {
	// QuestionUUID identifies the question being answered (UUID format).
	QuestionUUID string `json:"question_uuid" example:"141add05-4415-4938-b5a1-17e0d3171aff"`
	// Content is the answer text. It must be non-empty.
	Content string `json:"content" example:"Enable PRAGMA foreign_keys and declare the constraint."`
}

// AnswerIDRequest carries an answer identifier in a request body.
type AnswerIDRequest struct {
	// AnswerUUID is the target answer identifier (UUID format).
	AnswerUUID string `json:"answer_uuid" example:"fa4dfbe0-c3bf-47bd-b32f-d7de221cf43b"`
}

//
// Handlers
//

// CreateAnswer godoc
// @ID          createAnswer
// @Summary     Answer a question
// @Description Persists an answer referencing an existing question and returns it.
// @Tags        Answers
// @Accept      json
// @Produce     json
//
// @Param       body  body  handlers.CreateAnswerRequest  true  "Answer payload"
//
// @Success     200  {object}  domain.Answer
// @Failure     400  {object}  handlers.ErrorResponse  "Empty content or malformed question_uuid"
// @Failure     500  {object}  handlers.ErrorResponse  "Storage error (including unknown question)"
// @Router      /answer [post]
func (h *Handlers) CreateAnswer(c *gin.Context) {
	var req CreateAnswerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid JSON body")
		return
	}
	if strings.TrimSpace(req.Content) == "" {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "content is required")
		return
	}
	if _, err := uuid.Parse(req.QuestionUUID); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "question_uuid must be a UUID")
		return
	}

	a, err := h.aSvc.Create(c.Request.Context(), req.QuestionUUID, req.Content)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrEmptyContent):
			fail(c, http.StatusBadRequest, ErrCodeBadRequest, "content is required")
		default:
			// Data-layer failures stay 500, including the unknown-question
			// case re-classified from the FK violation.
			fail(c, http.StatusInternalServerError, ErrCodeCreateFailed, err.Error())
		}
		return
	}
	ok(c, http.StatusOK, a)
}

// ListAnswers godoc
// @ID          listAnswers
// @Summary     List answers of a question
// @Description Returns every answer belonging to the given question. The identifier is read from the JSON body, with the question_uuid query parameter as a fallback.
// @Tags        Answers
// @Accept      json
// @Produce     json
//
// @Param       body           body    handlers.QuestionIDRequest  false  "Question identifier"
// @Param       question_uuid  query   string  false "Question identifier (fallback)"  format(uuid)
// @Param       If-None-Match  header  string  false "Return 304 if ETag matches"
//
// @Success     200  {array} domain.Answer
// @Header      200  {string} ETag "Weak ETag for current result"
// @Success     304  {string} string "Not Modified"
// @Failure     400  {object} handlers.ErrorResponse "Malformed body, empty or malformed question_uuid"
// @Failure     500  {object} handlers.ErrorResponse "Storage error"
// @Router      /answers [get]
func (h *Handlers) ListAnswers(c *gin.Context) {
	ctx := c.Request.Context()

	qid, err := h.bindQuestionID(c)
	if err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid JSON body")
		return
	}
	if qid == "" {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "question_uuid is required")
		return
	}
	if _, err := uuid.Parse(qid); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "question_uuid must be a UUID")
		return
	}

	// ETag pre-check (best effort).
	if db := h.answerDB(); db != nil {
		count, maxTS, err := repo.AnswersStats(ctx, db, qid)
		if err == nil {
			var ts int64
			if maxTS != nil {
				// Nanosecond precision: a delete-and-reinsert within the
				// same second must still change the ETag.
				ts = maxTS.UnixNano()
			}
			etag := fmt.Sprintf(`W/"answers:%s:%d:%d"`, qid, count, ts)
			c.Header("ETag", etag)
			if inm := c.GetHeader("If-None-Match"); inm != "" && inm == etag {
				c.Status(http.StatusNotModified)
				return
			}
		}
	}

	items, err := h.aSvc.List(ctx, qid)
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeListFailed, err.Error())
		return
	}
	ok(c, http.StatusOK, items)
}

// DeleteAnswer godoc
// @ID          deleteAnswer
// @Summary     Delete an answer
// @Description Deletes an answer by identifier. Deleting an unknown identifier succeeds.
// @Tags        Answers
// @Accept      json
// @Produce     json
//
// @Param       body  body  handlers.AnswerIDRequest  true  "Answer identifier"
//
// @Success     200  {string} string "OK"
// @Failure     400  {object} handlers.ErrorResponse "Empty or malformed answer_uuid"
// @Failure     500  {object} handlers.ErrorResponse "Storage error"
// @Router      /answer [delete]
func (h *Handlers) DeleteAnswer(c *gin.Context) {
	var req AnswerIDRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid JSON body")
		return
	}
	if strings.TrimSpace(req.AnswerUUID) == "" {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "answer_uuid is required")
		return
	}
	if _, err := uuid.Parse(req.AnswerUUID); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "answer_uuid must be a UUID")
		return
	}

	if err := h.aSvc.Delete(c.Request.Context(), req.AnswerUUID); err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeDeleteFailed, err.Error())
		return
	}
	okEmpty(c)
}

// bindQuestionID reads the question identifier for GET /answers from the
// JSON body when one is present, falling back to the question_uuid query
// parameter. GET bodies are legitimate here but awkward for some clients.
// A present-but-malformed body is a client error and is reported, never
// silently traded for the query parameter.
func (h *Handlers) bindQuestionID(c *gin.Context) (string, error) {
	if c.Request.Body != nil && c.Request.ContentLength != 0 {
		var req QuestionIDRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			return "", err
		}
		if id := strings.TrimSpace(req.QuestionUUID); id != "" {
			return id, nil
		}
	}
	return strings.TrimSpace(c.Query("question_uuid")), nil
}

// answerDB exposes the concrete service's DB handle for best-effort ETag
// stats. Returns nil when the service is not the production implementation.
func (h *Handlers) answerDB() *gorm.DB {
	if svc, okSvc := h.aSvc.(*services.AnswerService); okSvc {
		return svc.DB
	}
	return nil
}
