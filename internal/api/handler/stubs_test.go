package handler

import (
	"context"
	"net/http/httptest"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/pulsepoint/wellness-api/internal/api/middleware"
	"github.com/pulsepoint/wellness-api/internal/core/domain"
	"github.com/pulsepoint/wellness-api/internal/core/ports"
)

type stubAuthService struct {
	registerFn func(ctx context.Context, in ports.RegisterInput) error
	loginFn    func(ctx context.Context, username, password string) (*ports.LoginResult, error)
	sessionFn  func(ctx context.Context, p domain.Principal) (*domain.Profile, error)
	grantFn    func(ctx context.Context, userID int64, role string) error
}

func (s *stubAuthService) Register(ctx context.Context, in ports.RegisterInput) error {
	return s.registerFn(ctx, in)
}

func (s *stubAuthService) Login(ctx context.Context, username, password string) (*ports.LoginResult, error) {
	return s.loginFn(ctx, username, password)
}

func (s *stubAuthService) GetCurrentSession(ctx context.Context, p domain.Principal) (*domain.Profile, error) {
	return s.sessionFn(ctx, p)
}

func (s *stubAuthService) GrantRole(ctx context.Context, userID int64, role string) error {
	return s.grantFn(ctx, userID, role)
}

type stubEntryService struct {
	createFn func(ctx context.Context, in ports.CreateEntryInput) (*ports.CreateEntryResult, error)
	getFn    func(ctx context.Context, id, userID int64) (*domain.HealthEntry, error)
	updateFn func(ctx context.Context, id, userID int64, m domain.Metrics) error
	deleteFn func(ctx context.Context, id, userID int64) error
}

func (s *stubEntryService) Create(ctx context.Context, in ports.CreateEntryInput) (*ports.CreateEntryResult, error) {
	return s.createFn(ctx, in)
}

func (s *stubEntryService) Get(ctx context.Context, id, userID int64) (*domain.HealthEntry, error) {
	return s.getFn(ctx, id, userID)
}

func (s *stubEntryService) List(ctx context.Context, userID int64) ([]*domain.HealthEntry, error) {
	return []*domain.HealthEntry{}, nil
}

func (s *stubEntryService) Update(ctx context.Context, id, userID int64, m domain.Metrics) error {
	return s.updateFn(ctx, id, userID, m)
}

func (s *stubEntryService) Delete(ctx context.Context, id, userID int64) error {
	return s.deleteFn(ctx, id, userID)
}

type stubStatsService struct {
	stats []domain.DailyStats
}

func (s *stubStatsService) GetDailyStatsForWorkplace(ctx context.Context, managerID int64) ([]domain.DailyStats, error) {
	return s.stats, nil
}

type stubWorkplaceService struct {
	createFn func(ctx context.Context, name string) (*domain.Workplace, error)
	getFn    func(ctx context.Context, id int64) (*domain.Workplace, error)
	deleteFn func(ctx context.Context, id int64) error
}

func (s *stubWorkplaceService) List(ctx context.Context) ([]*domain.Workplace, error) {
	return []*domain.Workplace{}, nil
}

func (s *stubWorkplaceService) Get(ctx context.Context, id int64) (*domain.Workplace, error) {
	return s.getFn(ctx, id)
}

func (s *stubWorkplaceService) Create(ctx context.Context, name string) (*domain.Workplace, error) {
	return s.createFn(ctx, name)
}

func (s *stubWorkplaceService) Update(ctx context.Context, id int64, name string) error {
	return nil
}

func (s *stubWorkplaceService) Delete(ctx context.Context, id int64) error {
	return s.deleteFn(ctx, id)
}

// newContext builds an echo context with the package validator and, when
// p is non-nil, an authenticated principal.
func newContext(method, target, body string, p *domain.Principal) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = NewValidator()

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if p != nil {
		c.Set(middleware.PrincipalKey, *p)
	}
	return c, rec
}

func withID(c echo.Context, id string) {
	c.SetParamNames("id")
	c.SetParamValues(id)
}

var alice = &domain.Principal{UserID: 7, Roles: domain.Roles{domain.RoleUser}}
