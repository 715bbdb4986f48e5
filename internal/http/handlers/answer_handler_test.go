package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"

	"github.com/tbourn/go-qa-backend/internal/domain"
)

// seedQuestion creates a question through the API and returns its identifier.
func seedQuestion(t *testing.T, r http.Handler) string {
	t.Helper()
	var buf bytes.Buffer
	_ = json.NewEncoder(&buf).Encode(map[string]string{"title": "seed", "description": "seed"})
	req := httptest.NewRequest(http.MethodPost, "/question", &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("seed question: %d (%s)", w.Code, w.Body.String())
	}
	var q domain.Question
	if err := json.Unmarshal(w.Body.Bytes(), &q); err != nil {
		t.Fatalf("decode seed question: %v", err)
	}
	return q.QuestionUUID
}

// ---------- CreateAnswer ----------

func TestCreateAnswer_Validation_NoServiceCall(t *testing.T) {
	a := &stubAnswerSvc{}
	r := newEngine(New(&stubQuestionSvc{}, a))

	// Empty content.
	w := doJSON(t, r, http.MethodPost, "/answer", map[string]string{"question_uuid": uuid.NewString(), "content": ""})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("empty content: expected 400, got %d", w.Code)
	}
	// Malformed question_uuid: client-supplied, so it must validate here.
	w = doJSON(t, r, http.MethodPost, "/answer", map[string]string{"question_uuid": "not-a-uuid", "content": "hi"})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("malformed uuid: expected 400, got %d", w.Code)
	}
	if a.calls != 0 {
		t.Fatalf("service must not be invoked on validation failure")
	}
}

func TestCreateAnswer_UnknownQuestion_Is500(t *testing.T) {
	r, _ := newLiveEngine(t)

	// Well-formed UUID but no such question: the FK violation surfaces from
	// the data layer and maps to 500, not 400.
	w := doJSON(t, r, http.MethodPost, "/answer", map[string]string{
		"question_uuid": uuid.NewString(),
		"content":       "hi",
	})
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500 for unknown question, got %d (%s)", w.Code, w.Body.String())
	}
	var resp ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode error envelope: %v", err)
	}
	if resp.Code != ErrCodeCreateFailed {
		t.Fatalf("expected code %q, got %q", ErrCodeCreateFailed, resp.Code)
	}
}

func TestCreateAnswer_Success(t *testing.T) {
	r, _ := newLiveEngine(t)
	qid := seedQuestion(t, r)

	w := doJSON(t, r, http.MethodPost, "/answer", map[string]string{"question_uuid": qid, "content": "the answer"})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d (%s)", w.Code, w.Body.String())
	}
	var a domain.Answer
	if err := json.Unmarshal(w.Body.Bytes(), &a); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if _, err := uuid.Parse(a.AnswerUUID); err != nil {
		t.Fatalf("answer_uuid not a UUID: %q", a.AnswerUUID)
	}
	if a.QuestionUUID != qid || a.Content != "the answer" || a.CreatedAt.IsZero() {
		t.Fatalf("unexpected answer: %+v", a)
	}
}

// ---------- ListAnswers ----------

func TestListAnswers_Validation(t *testing.T) {
	a := &stubAnswerSvc{}
	r := newEngine(New(&stubQuestionSvc{}, a))

	// No identifier at all.
	w := doJSON(t, r, http.MethodGet, "/answers", nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("missing uuid: expected 400, got %d", w.Code)
	}
	// Malformed identifier in body.
	w = doJSON(t, r, http.MethodGet, "/answers", map[string]string{"question_uuid": "nope"})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("malformed uuid: expected 400, got %d", w.Code)
	}
	if a.calls != 0 {
		t.Fatalf("service must not be invoked on validation failure")
	}
}

func TestListAnswers_MalformedBody_IsBadRequest(t *testing.T) {
	a := &stubAnswerSvc{}
	r := newEngine(New(&stubQuestionSvc{}, a))

	// A malformed body is a client error even when a usable query parameter
	// is present; it must be reported, not silently traded for the fallback.
	req := httptest.NewRequest(http.MethodGet, "/answers?question_uuid="+uuid.NewString(), bytes.NewBufferString("{not json"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("malformed body: expected 400, got %d (%s)", w.Code, w.Body.String())
	}
	var resp ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode error envelope: %v", err)
	}
	if resp.Message != "invalid JSON body" {
		t.Fatalf("expected %q, got %q", "invalid JSON body", resp.Message)
	}
	if a.calls != 0 {
		t.Fatalf("service must not be invoked on a malformed body")
	}
}

func TestListAnswers_EmptyIsArray(t *testing.T) {
	r, _ := newLiveEngine(t)
	qid := seedQuestion(t, r)

	w := doJSON(t, r, http.MethodGet, "/answers", map[string]string{"question_uuid": qid})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d (%s)", w.Code, w.Body.String())
	}
	if got := w.Body.String(); got != "[]" && got != "[]\n" {
		t.Fatalf("expected empty JSON array, got %q", got)
	}
}

func TestListAnswers_QueryParamFallback(t *testing.T) {
	r, _ := newLiveEngine(t)
	qid := seedQuestion(t, r)

	if w := doJSON(t, r, http.MethodPost, "/answer", map[string]string{"question_uuid": qid, "content": "a1"}); w.Code != http.StatusOK {
		t.Fatalf("seed answer: %d", w.Code)
	}

	req := httptest.NewRequest(http.MethodGet, "/answers?question_uuid="+qid, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 via query param, got %d", w.Code)
	}
	var list []domain.Answer
	if err := json.Unmarshal(w.Body.Bytes(), &list); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(list) != 1 || list[0].Content != "a1" {
		t.Fatalf("unexpected listing: %+v", list)
	}
}

func TestListAnswers_ScopedToQuestion(t *testing.T) {
	r, _ := newLiveEngine(t)
	q1 := seedQuestion(t, r)
	q2 := seedQuestion(t, r)

	for _, c := range []string{"one", "two"} {
		if w := doJSON(t, r, http.MethodPost, "/answer", map[string]string{"question_uuid": q1, "content": c}); w.Code != http.StatusOK {
			t.Fatalf("seed answer %q: %d", c, w.Code)
		}
	}

	w := doJSON(t, r, http.MethodGet, "/answers", map[string]string{"question_uuid": q2})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var list []domain.Answer
	if err := json.Unmarshal(w.Body.Bytes(), &list); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(list) != 0 {
		t.Fatalf("answers leaked across questions: %+v", list)
	}
}

func TestListAnswers_ServiceError_Is500(t *testing.T) {
	a := &stubAnswerSvc{list: func(context.Context, string) ([]domain.Answer, error) {
		return nil, errors.New("db down")
	}}
	r := newEngine(New(&stubQuestionSvc{}, a))

	w := doJSON(t, r, http.MethodGet, "/answers", map[string]string{"question_uuid": uuid.NewString()})
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
}

// ---------- DeleteAnswer ----------

func TestDeleteAnswer_Validation(t *testing.T) {
	a := &stubAnswerSvc{}
	r := newEngine(New(&stubQuestionSvc{}, a))

	w := doJSON(t, r, http.MethodDelete, "/answer", map[string]string{"answer_uuid": ""})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("empty uuid: expected 400, got %d", w.Code)
	}
	w = doJSON(t, r, http.MethodDelete, "/answer", map[string]string{"answer_uuid": "nope"})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("malformed uuid: expected 400, got %d", w.Code)
	}
	if a.calls != 0 {
		t.Fatalf("service must not be invoked on validation failure")
	}
}

func TestDeleteAnswer_UnknownUUID_Succeeds(t *testing.T) {
	r, _ := newLiveEngine(t)

	w := doJSON(t, r, http.MethodDelete, "/answer", map[string]string{"answer_uuid": uuid.NewString()})
	if w.Code != http.StatusOK {
		t.Fatalf("expected idempotent 200, got %d (%s)", w.Code, w.Body.String())
	}
}

func TestDeleteAnswer_RemovesRow(t *testing.T) {
	r, _ := newLiveEngine(t)
	qid := seedQuestion(t, r)

	w := doJSON(t, r, http.MethodPost, "/answer", map[string]string{"question_uuid": qid, "content": "bye"})
	if w.Code != http.StatusOK {
		t.Fatalf("seed answer: %d", w.Code)
	}
	var a domain.Answer
	if err := json.Unmarshal(w.Body.Bytes(), &a); err != nil {
		t.Fatalf("decode: %v", err)
	}

	if w := doJSON(t, r, http.MethodDelete, "/answer", map[string]string{"answer_uuid": a.AnswerUUID}); w.Code != http.StatusOK {
		t.Fatalf("delete: expected 200, got %d", w.Code)
	}

	lw := doJSON(t, r, http.MethodGet, "/answers", map[string]string{"question_uuid": qid})
	if got := lw.Body.String(); got != "[]" && got != "[]\n" {
		t.Fatalf("expected empty listing after delete, got %q", got)
	}
}
