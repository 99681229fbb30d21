package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-cbt-forms/internal/logger"
	"github.com/MKhiriev/go-cbt-forms/internal/mock"
	"github.com/MKhiriev/go-cbt-forms/internal/store"
	"github.com/MKhiriev/go-cbt-forms/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestQuestionSvc(t *testing.T, ctrl *gomock.Controller) (*questionService, *mock.MockQuestionRepository) {
	t.Helper()

	mockQuestions := mock.NewMockQuestionRepository(ctrl)
	svc := NewQuestionService(mockQuestions, logger.Nop()).(*questionService)

	return svc, mockQuestions
}

func TestQuestionService_Create_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockQuestions := newTestQuestionSvc(t, ctrl)
	ctx := context.Background()

	request := models.QuestionCreateRequest{QuestionText: "How do I reframe negative thoughts?", UserID: 3}

	now := time.Now()
	mockQuestions.EXPECT().
		CreateQuestion(ctx, models.Question{QuestionText: request.QuestionText, UserID: 3}).
		Return(models.Question{ID: 11, QuestionText: request.QuestionText, UserID: 3, CreatedAt: now, UpdatedAt: now}, nil)

	created, err := svc.Create(ctx, request)
	require.NoError(t, err)
	assert.Equal(t, int64(11), created.ID)
}

func TestQuestionService_Create_Validation(t *testing.T) {
	tests := []struct {
		name    string
		request models.QuestionCreateRequest
		field   string
	}{
		{
			name:    "empty text",
			request: models.QuestionCreateRequest{UserID: 3},
			field:   "question_text",
		},
		{
			name:    "text too long",
			request: models.QuestionCreateRequest{QuestionText: strings.Repeat("x", models.MaxQuestionTextLength+1), UserID: 3},
			field:   "question_text",
		},
		{
			name:    "missing user",
			request: models.QuestionCreateRequest{QuestionText: "q"},
			field:   "user",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc, _ := newTestQuestionSvc(t, ctrl)

			_, err := svc.Create(context.Background(), tt.request)

			var validationErr *ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.Contains(t, validationErr.Fields, tt.field)
		})
	}
}

func TestQuestionService_Create_MaxLengthTextAccepted(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockQuestions := newTestQuestionSvc(t, ctrl)
	ctx := context.Background()

	text := strings.Repeat("x", models.MaxQuestionTextLength)
	mockQuestions.EXPECT().
		CreateQuestion(ctx, gomock.Any()).
		Return(models.Question{ID: 1, QuestionText: text, UserID: 3}, nil)

	_, err := svc.Create(ctx, models.QuestionCreateRequest{QuestionText: text, UserID: 3})
	require.NoError(t, err)
}

func TestQuestionService_Create_UnknownOwner(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockQuestions := newTestQuestionSvc(t, ctrl)
	ctx := context.Background()

	mockQuestions.EXPECT().
		CreateQuestion(ctx, gomock.Any()).
		Return(models.Question{}, store.ErrNoUserWasFound)

	_, err := svc.Create(ctx, models.QuestionCreateRequest{QuestionText: "orphan", UserID: 404})

	// the missing owner surfaces as a field error, like any other bad input
	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Contains(t, validationErr.Fields, "user")
}

func TestQuestionService_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockQuestions := newTestQuestionSvc(t, ctrl)
	ctx := context.Background()

	mockQuestions.EXPECT().
		ListQuestions(ctx).
		Return([]models.Question{{ID: 1}, {ID: 2}}, nil)

	questions, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, questions, 2)
}
