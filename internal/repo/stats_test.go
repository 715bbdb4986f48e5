package repo

import (
	"context"
	"testing"
	"time"

	"github.com/tbourn/go-qa-backend/internal/domain"
)

func TestQuestionsStats_EmptyAndSeeded(t *testing.T) {
	db := newRepoDB(t, &domain.Question{})

	count, maxTS, err := QuestionsStats(context.Background(), db)
	if err != nil {
		t.Fatalf("QuestionsStats (empty): %v", err)
	}
	if count != 0 || maxTS != nil {
		t.Fatalf("expected (0, nil), got (%d, %v)", count, maxTS)
	}

	t1 := time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)
	t2 := t1.Add(time.Hour)
	for i, ts := range []time.Time{t1, t2} {
		q := domain.Question{QuestionUUID: string(rune('a' + i)), Title: "t", Description: "d", CreatedAt: ts}
		if err := db.Create(&q).Error; err != nil {
			t.Fatalf("seed %d: %v", i, err)
		}
	}

	count, maxTS, err = QuestionsStats(context.Background(), db)
	if err != nil {
		t.Fatalf("QuestionsStats: %v", err)
	}
	if count != 2 {
		t.Fatalf("expected count=2, got %d", count)
	}
	if maxTS == nil || !maxTS.Equal(t2) {
		t.Fatalf("expected max created_at %v, got %v", t2, maxTS)
	}
}

func TestAnswersStats_ScopedToQuestion(t *testing.T) {
	db := newRepoDB(t, &domain.Question{}, &domain.Answer{})

	q1, err := CreateQuestion(context.Background(), db, "q1", "d")
	if err != nil {
		t.Fatalf("seed q1: %v", err)
	}
	q2, err := CreateQuestion(context.Background(), db, "q2", "d")
	if err != nil {
		t.Fatalf("seed q2: %v", err)
	}
	if _, err := CreateAnswer(context.Background(), db, q1.QuestionUUID, "a"); err != nil {
		t.Fatalf("seed answer: %v", err)
	}

	count, maxTS, err := AnswersStats(context.Background(), db, q1.QuestionUUID)
	if err != nil {
		t.Fatalf("AnswersStats q1: %v", err)
	}
	if count != 1 || maxTS == nil {
		t.Fatalf("expected (1, non-nil), got (%d, %v)", count, maxTS)
	}

	count, maxTS, err = AnswersStats(context.Background(), db, q2.QuestionUUID)
	if err != nil {
		t.Fatalf("AnswersStats q2: %v", err)
	}
	if count != 0 || maxTS != nil {
		t.Fatalf("expected (0, nil) for question without answers, got (%d, %v)", count, maxTS)
	}
}

func TestStats_Error_NoTable(t *testing.T) {
	db := newRepoDB(t /* no migrations */)

	if _, _, err := QuestionsStats(context.Background(), db); err == nil {
		t.Fatalf("expected error when questions table missing")
	}
	if _, _, err := AnswersStats(context.Background(), db, "any"); err == nil {
		t.Fatalf("expected error when answers table missing")
	}
}
