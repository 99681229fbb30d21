package http

import (
	"context"
	"net/http"

	"github.com/MKhiriev/go-cbt-forms/internal/logger"
	"github.com/MKhiriev/go-cbt-forms/internal/service"
	"github.com/MKhiriev/go-cbt-forms/models"
)

// Hand-rolled stubs with function fields: each test fills in only the
// methods it expects to be called. An unexpected call panics on the nil
// function field and fails the test loudly.

type mockAuthService struct {
	registerFn     func(ctx context.Context, request models.RegisterRequest) (models.User, error)
	authenticateFn func(ctx context.Context, email, password string) (models.User, error)
}

func (m *mockAuthService) Register(ctx context.Context, request models.RegisterRequest) (models.User, error) {
	return m.registerFn(ctx, request)
}

func (m *mockAuthService) Authenticate(ctx context.Context, email, password string) (models.User, error) {
	return m.authenticateFn(ctx, email, password)
}

type mockTokenService struct {
	issuePairFn      func(ctx context.Context, user models.User) (models.TokenPair, error)
	refreshFn        func(ctx context.Context, refreshToken string) (models.Token, error)
	revokeFn         func(ctx context.Context, refreshToken string) error
	validateAccessFn func(ctx context.Context, accessToken string) (models.Token, error)
}

func (m *mockTokenService) IssuePair(ctx context.Context, user models.User) (models.TokenPair, error) {
	return m.issuePairFn(ctx, user)
}

func (m *mockTokenService) Refresh(ctx context.Context, refreshToken string) (models.Token, error) {
	return m.refreshFn(ctx, refreshToken)
}

func (m *mockTokenService) Revoke(ctx context.Context, refreshToken string) error {
	return m.revokeFn(ctx, refreshToken)
}

func (m *mockTokenService) ValidateAccess(ctx context.Context, accessToken string) (models.Token, error) {
	return m.validateAccessFn(ctx, accessToken)
}

type mockUserService struct {
	createFn  func(ctx context.Context, request models.UserCreateRequest) (models.User, error)
	getByIDFn func(ctx context.Context, userID int64) (models.User, error)
	updateFn  func(ctx context.Context, update models.UserUpdate) (models.User, error)
	deleteFn  func(ctx context.Context, userID int64) error
	listFn    func(ctx context.Context) ([]models.User, error)
}

func (m *mockUserService) Create(ctx context.Context, request models.UserCreateRequest) (models.User, error) {
	return m.createFn(ctx, request)
}

func (m *mockUserService) GetByID(ctx context.Context, userID int64) (models.User, error) {
	return m.getByIDFn(ctx, userID)
}

func (m *mockUserService) Update(ctx context.Context, update models.UserUpdate) (models.User, error) {
	return m.updateFn(ctx, update)
}

func (m *mockUserService) Delete(ctx context.Context, userID int64) error {
	return m.deleteFn(ctx, userID)
}

func (m *mockUserService) List(ctx context.Context) ([]models.User, error) {
	return m.listFn(ctx)
}

type mockQuestionService struct {
	createFn func(ctx context.Context, request models.QuestionCreateRequest) (models.Question, error)
	listFn   func(ctx context.Context) ([]models.Question, error)
}

func (m *mockQuestionService) Create(ctx context.Context, request models.QuestionCreateRequest) (models.Question, error) {
	return m.createFn(ctx, request)
}

func (m *mockQuestionService) List(ctx context.Context) ([]models.Question, error) {
	return m.listFn(ctx)
}

type mockAppInfoService struct {
	version string
}

func (m *mockAppInfoService) GetAppVersion(_ context.Context) string {
	return m.version
}

// ---- Helpers ----

func newTestHandler(services *service.Services) *Handler {
	return &Handler{
		logger:   logger.Nop(),
		services: services,
	}
}

// injectNopLogger puts a nop logger into the request context so that
// handlers calling logger.FromRequest do not emit output during tests.
func injectNopLogger(r *http.Request) *http.Request {
	nop := logger.Nop()
	ctx := nop.Logger.WithContext(r.Context())
	return r.WithContext(ctx)
}
