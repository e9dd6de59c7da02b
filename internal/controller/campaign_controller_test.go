package controller

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"pet-house-be/internal/dto"
	"pet-house-be/internal/entity"
	"pet-house-be/internal/pkg/apperror"
	"pet-house-be/internal/pkg/logger"
	"pet-house-be/internal/pkg/serverutils"
	"pet-house-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

type userResolver struct{}

func (userResolver) ResolvePrincipal(_ context.Context, email string) (entity.Principal, error) {
	return entity.Principal{Email: email, Role: entity.UserRoleUser}, nil
}

type stubCampaignService struct {
	service.ICampaignService
	listSort   entity.CampaignSort
	listPage   serverutils.Page
	randomHits int
	created    *dto.CampaignRequest
	createdBy  string
	pauseErr   error
}

func (s *stubCampaignService) List(_ context.Context, sort entity.CampaignSort, page serverutils.Page) (*dto.CampaignPageResponse, error) {
	s.listSort = sort
	s.listPage = page
	return &dto.CampaignPageResponse{Items: []dto.CampaignResponse{}, Page: page.Page + 1, Limit: page.Limit}, nil
}

func (s *stubCampaignService) Random(context.Context) ([]dto.CampaignResponse, error) {
	s.randomHits++
	return []dto.CampaignResponse{}, nil
}

func (s *stubCampaignService) Create(_ context.Context, p entity.Principal, req *dto.CampaignRequest) (*dto.CampaignResponse, error) {
	s.created = req
	s.createdBy = p.Email
	return &dto.CampaignResponse{PetName: req.PetName, AuthorEmail: p.Email}, nil
}

func (s *stubCampaignService) TogglePause(context.Context, entity.Principal, uuid.UUID) (*dto.PauseResponse, error) {
	if s.pauseErr != nil {
		return nil, s.pauseErr
	}
	return &dto.PauseResponse{Pause: true}, nil
}

func newCampaignApp(svc service.ICampaignService) *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: serverutils.NewErrorHandler(logger.NewNopLogger())})
	auth := serverutils.NewAuthMiddleware(testSecret, "token", userResolver{})
	NewCampaignController(svc, auth).RegisterRoutes(app.Group("/api"))
	return app
}

func bearer(t *testing.T, email string) string {
	t.Helper()
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"email": email}).SignedString([]byte(testSecret))
	require.NoError(t, err)
	return "Bearer " + tok
}

func TestCampaignListIsPublic(t *testing.T) {
	svc := &stubCampaignService{}
	app := newCampaignApp(svc)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/campaigns?sort=Asc&page=2&limit=5", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, entity.CampaignSortAsc, svc.listSort)
	assert.Equal(t, serverutils.Page{Page: 1, Limit: 5}, svc.listPage)
}

func TestCampaignRandomIsNotTreatedAsId(t *testing.T) {
	svc := &stubCampaignService{}
	app := newCampaignApp(svc)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/campaigns/random", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, 1, svc.randomHits)
}

func TestCampaignCreate(t *testing.T) {
	body := `{"pet_name":"Milo","donation_img":"https://img.example.com/m.png","max_donation":500,"donation_last_date":"01,02,2027","short_description":"Surgery"}`

	t.Run("requires a token", func(t *testing.T) {
		svc := &stubCampaignService{}
		req := httptest.NewRequest("POST", "/api/campaigns", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")

		resp, err := newCampaignApp(svc).Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
		assert.Nil(t, svc.created)
	})

	t.Run("author comes from the token", func(t *testing.T) {
		svc := &stubCampaignService{}
		req := httptest.NewRequest("POST", "/api/campaigns", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", bearer(t, "author@example.com"))

		resp, err := newCampaignApp(svc).Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
		require.NotNil(t, svc.created)
		assert.Equal(t, "author@example.com", svc.createdBy)
	})

	t.Run("invalid body is rejected before the service", func(t *testing.T) {
		svc := &stubCampaignService{}
		req := httptest.NewRequest("POST", "/api/campaigns", strings.NewReader(`{"pet_name":"Milo","max_donation":0}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", bearer(t, "author@example.com"))

		resp, err := newCampaignApp(svc).Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
		assert.Nil(t, svc.created)
	})
}

func TestCampaignPauseErrors(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		serviceErr error
		wantStatus int
	}{
		{name: "malformed id", path: "/api/campaigns/not-a-uuid/pause", wantStatus: fiber.StatusBadRequest},
		{name: "not the author", path: "/api/campaigns/" + uuid.NewString() + "/pause", serviceErr: apperror.Forbidden("nope"), wantStatus: fiber.StatusForbidden},
		{name: "missing campaign", path: "/api/campaigns/" + uuid.NewString() + "/pause", serviceErr: apperror.NotFound("campaign not found"), wantStatus: fiber.StatusNotFound},
		{name: "ok", path: "/api/campaigns/" + uuid.NewString() + "/pause", wantStatus: fiber.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &stubCampaignService{pauseErr: tt.serviceErr}
			req := httptest.NewRequest("PATCH", tt.path, nil)
			req.Header.Set("Authorization", bearer(t, "author@example.com"))

			resp, err := newCampaignApp(svc).Test(req)
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, resp.StatusCode)

			var envelope serverutils.BaseResponse[json.RawMessage]
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
			assert.Equal(t, tt.wantStatus, envelope.Code)
			assert.Equal(t, tt.wantStatus == fiber.StatusOK, envelope.Success)
		})
	}
}
