package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-cbt-forms/internal/logger"
	"github.com/MKhiriev/go-cbt-forms/models"
	"github.com/jackc/pgerrcode"
)

// questionRepository is the PostgreSQL-backed implementation of
// [QuestionRepository]. It handles question form persistence against the
// "questions" table.
type questionRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewQuestionRepository constructs a [QuestionRepository] backed by the
// provided database connection and logger.
func NewQuestionRepository(db *DB, logger *logger.Logger) QuestionRepository {
	logger.Debug().Msg("creating question repository")
	return &questionRepository{
		db:     db,
		logger: logger,
	}
}

// CreateQuestion persists a new question record and returns the fully
// populated [models.Question] with server-assigned fields (ID, CreatedAt,
// UpdatedAt).
//
// Error handling:
//   - PostgreSQL foreign_key_violation (23503) → [ErrNoUserWasFound]: the
//     question references a user that does not exist.
//   - Any other driver-level error → wrapped as "unexpected DB error".
//   - Scan failure → returned directly.
func (r *questionRepository) CreateQuestion(ctx context.Context, question models.Question) (models.Question, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createQuestion, question.QuestionText, question.UserID)

	// create question in db
	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*questionRepository.CreateQuestion").Msg("error: row is nil")

		switch postgresError(err) {
		case pgerrcode.ForeignKeyViolation:
			return models.Question{}, ErrNoUserWasFound
		default:
			return models.Question{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	// scan saved question from db
	if err := row.Scan(&question.ID, &question.QuestionText, &question.UserID, &question.CreatedAt, &question.UpdatedAt); err != nil {
		log.Err(err).Str("func", "*questionRepository.CreateQuestion").Msg("error: scanning error")
		if postgresError(err) == pgerrcode.ForeignKeyViolation {
			return models.Question{}, ErrNoUserWasFound
		}
		return models.Question{}, err
	}

	return question, nil
}

// ListQuestions returns every question record ordered by CreatedAt ascending,
// so the earliest submitted form comes first.
//
// Error handling:
//   - Query failure → wrapped in [ErrExecutingQuery].
//   - Scan failure mid-iteration → wrapped in [ErrScanningRows].
func (r *questionRepository) ListQuestions(ctx context.Context) ([]models.Question, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, listQuestions)
	if err != nil {
		log.Err(err).Str("func", "*questionRepository.ListQuestions").Msg("error: executing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	questions := make([]models.Question, 0)
	for rows.Next() {
		var question models.Question
		if err := rows.Scan(&question.ID, &question.QuestionText, &question.UserID, &question.CreatedAt, &question.UpdatedAt); err != nil {
			log.Err(err).Str("func", "*questionRepository.ListQuestions").Msg("error: scanning error")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		questions = append(questions, question)
	}
	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", "*questionRepository.ListQuestions").Msg("error: rows iteration error")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return questions, nil
}
