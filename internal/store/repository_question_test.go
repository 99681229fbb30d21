package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-cbt-forms/internal/logger"
	"github.com/MKhiriev/go-cbt-forms/models"
	"github.com/jackc/pgerrcode"
)

var questionColumns = []string{"id", "question_text", "user_id", "created_at", "updated_at"}

func newTestQuestionRepo(t *testing.T) (*questionRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.NewLogger("test")
	repo := &questionRepository{
		db:     &DB{DB: db, logger: l},
		logger: l,
	}
	return repo, mock, db
}

func TestCreateQuestion_Success(t *testing.T) {
	repo, mock, db := newTestQuestionRepo(t)
	defer db.Close()

	ctx := context.Background()
	question := models.Question{QuestionText: "How do I stop catastrophizing?", UserID: 3}

	now := time.Now()
	rows := sqlmock.
		NewRows(questionColumns).
		AddRow(11, question.QuestionText, question.UserID, now, now)

	mock.ExpectQuery("INSERT INTO questions").
		WithArgs(question.QuestionText, question.UserID).
		WillReturnRows(rows)

	created, err := repo.CreateQuestion(ctx, question)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.ID != 11 {
		t.Errorf("expected ID=11, got %d", created.ID)
	}
	if created.CreatedAt.IsZero() || created.UpdatedAt.IsZero() {
		t.Error("expected server-assigned timestamps to be populated")
	}
}

func TestCreateQuestion_UnknownUser(t *testing.T) {
	repo, mock, db := newTestQuestionRepo(t)
	defer db.Close()

	ctx := context.Background()
	question := models.Question{QuestionText: "orphan", UserID: 404}

	mock.ExpectQuery("INSERT INTO questions").
		WillReturnError(pgError(pgerrcode.ForeignKeyViolation))

	_, err := repo.CreateQuestion(ctx, question)
	if !errors.Is(err, ErrNoUserWasFound) {
		t.Fatalf("expected ErrNoUserWasFound, got %v", err)
	}
}

func TestCreateQuestion_UnexpectedDBError(t *testing.T) {
	repo, mock, db := newTestQuestionRepo(t)
	defer db.Close()

	ctx := context.Background()
	question := models.Question{QuestionText: "q", UserID: 3}

	mock.ExpectQuery("INSERT INTO questions").
		WillReturnError(errors.New("db network error"))

	_, err := repo.CreateQuestion(ctx, question)
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if errors.Is(err, ErrNoUserWasFound) {
		t.Fatalf("expected generic DB error, got %v", err)
	}
}

func TestListQuestions_OrderedOldestFirst(t *testing.T) {
	repo, mock, db := newTestQuestionRepo(t)
	defer db.Close()

	earlier := time.Now().Add(-time.Hour)
	later := time.Now()

	rows := sqlmock.
		NewRows(questionColumns).
		AddRow(1, "first", 3, earlier, earlier).
		AddRow(2, "second", 4, later, later)

	mock.ExpectQuery("SELECT (.+) FROM questions").
		WillReturnRows(rows)

	questions, err := repo.ListQuestions(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(questions) != 2 {
		t.Fatalf("expected 2 questions, got %d", len(questions))
	}
	if questions[0].QuestionText != "first" {
		t.Errorf("expected oldest question first, got %q", questions[0].QuestionText)
	}
}

func TestListQuestions_Empty(t *testing.T) {
	repo, mock, db := newTestQuestionRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT (.+) FROM questions").
		WillReturnRows(sqlmock.NewRows(questionColumns))

	questions, err := repo.ListQuestions(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if questions == nil || len(questions) != 0 {
		t.Fatalf("expected empty non-nil slice, got %v", questions)
	}
}

func TestListQuestions_QueryError(t *testing.T) {
	repo, mock, db := newTestQuestionRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT (.+) FROM questions").
		WillReturnError(errors.New("db is down"))

	_, err := repo.ListQuestions(context.Background())
	if !errors.Is(err, ErrExecutingQuery) {
		t.Fatalf("expected ErrExecutingQuery, got %v", err)
	}
}
