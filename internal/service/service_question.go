package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-cbt-forms/internal/logger"
	"github.com/MKhiriev/go-cbt-forms/internal/store"
	"github.com/MKhiriev/go-cbt-forms/models"
)

// questionService is the concrete implementation of [QuestionService].
type questionService struct {
	questionRepository store.QuestionRepository

	logger *logger.Logger
}

// NewQuestionService constructs a [QuestionService] wired to the given
// QuestionRepository.
func NewQuestionService(questionRepository store.QuestionRepository, logger *logger.Logger) QuestionService {
	return &questionService{
		questionRepository: questionRepository,
		logger:             logger,
	}
}

// Create persists a new question owned by the user named in the request.
//
// Returns [*ValidationError] when the text is missing or too long, when no
// owner is given, and when the owner does not exist (the storage layer's
// foreign key rejection is folded into the same per-field error shape the
// original API used).
func (s *questionService) Create(ctx context.Context, request models.QuestionCreateRequest) (models.Question, error) {
	log := logger.FromContext(ctx)

	if err := validateQuestionCreate(request); err != nil {
		log.Error().Int64("user", request.UserID).Msg("invalid question data provided")
		return models.Question{}, err
	}

	createdQuestion, err := s.questionRepository.CreateQuestion(ctx, models.Question{
		QuestionText: request.QuestionText,
		UserID:       request.UserID,
	})
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			fields := models.FieldErrors{}
			fields.Add("user", "user does not exist")
			return models.Question{}, newValidationError(fields)
		}
		log.Err(err).Int64("user", request.UserID).Msg("question creation ended with error")
		return models.Question{}, fmt.Errorf("question creation ended with error: %w", err)
	}

	return createdQuestion, nil
}

// List returns every question ordered by creation time, oldest first.
func (s *questionService) List(ctx context.Context) ([]models.Question, error) {
	log := logger.FromContext(ctx)

	questions, err := s.questionRepository.ListQuestions(ctx)
	if err != nil {
		log.Err(err).Msg("question listing ended with error")
		return nil, fmt.Errorf("question listing ended with error: %w", err)
	}

	return questions, nil
}

// validateQuestionCreate checks the question body and owner reference.
func validateQuestionCreate(request models.QuestionCreateRequest) error {
	fields := models.FieldErrors{}

	if request.QuestionText == "" {
		fields.Add("question_text", "this field is required")
	} else if len(request.QuestionText) > models.MaxQuestionTextLength {
		fields.Add("question_text", fmt.Sprintf("ensure this field has no more than %d characters", models.MaxQuestionTextLength))
	}
	if request.UserID <= 0 {
		fields.Add("user", "this field is required")
	}

	return newValidationError(fields)
}
