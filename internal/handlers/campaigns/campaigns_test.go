package campaigns

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/clippa/internal/domain"
	"github.com/GlebRadaev/clippa/internal/dto"
	"github.com/GlebRadaev/clippa/internal/service/campaignservice"
	"github.com/GlebRadaev/clippa/pkg/auth"
	"github.com/GlebRadaev/clippa/pkg/utils"
)

func NewMock(t *testing.T) (*CampaignHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func newRequest(method, target, body string, userID int, params map[string]string) *http.Request {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, bytes.NewReader([]byte(body)))
	}
	ctx := req.Context()
	if userID != 0 {
		ctx = context.WithValue(ctx, auth.UserIDKey, userID)
	}
	if len(params) > 0 {
		rctx := chi.NewRouteContext()
		for k, v := range params {
			rctx.URLParams.Add(k, v)
		}
		ctx = context.WithValue(ctx, chi.RouteCtxKey, rctx)
	}
	return req.WithContext(ctx)
}

func errorOf(t *testing.T, rr *httptest.ResponseRecorder) string {
	t.Helper()
	var resp utils.Response
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	return resp.Error
}

func TestListCampaigns(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		query        string
		prepareMock  func()
		expectedCode int
	}{
		{
			name:  "Defaults",
			query: "",
			prepareMock: func() {
				service.EXPECT().ListCampaigns(gomock.Any(), 1, 20).Return([]domain.Campaign{{ID: 1, Status: domain.CampaignActive}}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:  "Second page",
			query: "?page=2&limit=5",
			prepareMock: func() {
				service.EXPECT().ListCampaigns(gomock.Any(), 2, 5).Return([]domain.Campaign{}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "Bad page",
			query:        "?page=x",
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:  "Internal error",
			query: "",
			prepareMock: func() {
				service.EXPECT().ListCampaigns(gomock.Any(), 1, 20).Return(nil, errors.New("db down"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			rr := httptest.NewRecorder()

			handler.ListCampaigns(rr, newRequest("GET", "/api/campaigns"+tt.query, "", 0, nil))

			assert.Equal(t, tt.expectedCode, rr.Code)
		})
	}
}

func TestGetCampaigns(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		userID       string
		prepareMock  func()
		expectedCode int
	}{
		{
			name:   "Creator campaigns",
			userID: "4",
			prepareMock: func() {
				service.EXPECT().GetCampaigns(gomock.Any(), 4).Return([]domain.Campaign{{ID: 1, CreatorID: 4, Clips: []domain.Clip{}}}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "Bad user id",
			userID:       "abc",
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:   "Internal error",
			userID: "4",
			prepareMock: func() {
				service.EXPECT().GetCampaigns(gomock.Any(), 4).Return(nil, errors.New("db down"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			rr := httptest.NewRecorder()

			handler.GetCampaigns(rr, newRequest("GET", "/api/campaigns/user/"+tt.userID, "", 0, map[string]string{"userId": tt.userID}))

			assert.Equal(t, tt.expectedCode, rr.Code)
		})
	}
}

func TestGetCampaignByID(t *testing.T) {
	handler, service := NewMock(t)
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)

	details := &domain.CampaignDetails{
		Campaign:         domain.Campaign{ID: 7, Name: "Launch", Clips: []domain.Clip{{ID: 1, Views: 10}}},
		FeaturedClippers: []domain.ClipperStats{{ClipperID: 2, TotalViews: 10, ClipCount: 1}},
	}

	tests := []struct {
		name          string
		id            string
		query         string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Without window",
			id:   "7",
			prepareMock: func() {
				service.EXPECT().GetCampaignByID(gomock.Any(), 7, nil, nil).Return(details, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:  "With window",
			id:    "7",
			query: "?startDate=2024-01-01T00:00:00Z&endDate=2024-02-01T00:00:00Z",
			prepareMock: func() {
				service.EXPECT().GetCampaignByID(gomock.Any(), 7, &start, &end).Return(details, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:          "Bad start date",
			id:            "7",
			query:         "?startDate=yesterday",
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid startDate",
		},
		{
			name:          "Bad end date",
			id:            "7",
			query:         "?endDate=2024-02-01",
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid endDate",
		},
		{
			name:          "Bad id",
			id:            "seven",
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid campaign id",
		},
		{
			name: "Not found",
			id:   "9",
			prepareMock: func() {
				service.EXPECT().GetCampaignByID(gomock.Any(), 9, nil, nil).Return(nil, campaignservice.ErrCampaignNotFound)
			},
			expectedCode:  http.StatusNotFound,
			expectedError: "Campaign not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			rr := httptest.NewRecorder()

			handler.GetCampaignByID(rr, newRequest("GET", "/api/campaigns/"+tt.id+tt.query, "", 0, map[string]string{"campaignId": tt.id}))

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedError != "" {
				assert.Equal(t, tt.expectedError, errorOf(t, rr))
				return
			}
			var resp dto.CampaignDetailsResponseDTO
			require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
			assert.Equal(t, 7, resp.ID)
			assert.Len(t, resp.FeaturedClippers, 1)
		})
	}
}

func TestCreateCampaign(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Created",
			body: `{"name":"Launch","description":"d","budget":1500,"link":"https://example.com"}`,
			prepareMock: func() {
				service.EXPECT().CreateCampaign(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, c *domain.Campaign) (*domain.Campaign, error) {
						assert.Equal(t, 3, c.CreatorID)
						assert.Equal(t, "Launch", c.Name)
						assert.True(t, c.Budget.Equal(decimal.NewFromInt(1500)))
						c.ID = 10
						c.Status = domain.CampaignActive
						c.Analytics = &domain.CampaignAnalytics{CampaignID: 10}
						return c, nil
					})
			},
			expectedCode: http.StatusCreated,
		},
		{
			name:          "Missing name",
			body:          `{"budget":100}`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "name is required",
		},
		{
			name: "Zero budget",
			body: `{"name":"Launch","budget":0}`,
			prepareMock: func() {
				service.EXPECT().CreateCampaign(gomock.Any(), gomock.Any()).Return(nil, campaignservice.ErrInvalidBudget)
			},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Budget must be greater than 0",
		},
		{
			name:          "Invalid body",
			body:          `{`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid request body",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			rr := httptest.NewRecorder()

			handler.CreateCampaign(rr, newRequest("POST", "/api/campaigns", tt.body, 3, nil))

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedError != "" {
				assert.Equal(t, tt.expectedError, errorOf(t, rr))
				return
			}
			var resp dto.CampaignResponseDTO
			require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
			assert.Equal(t, 10, resp.ID)
			assert.NotNil(t, resp.Analytics)
		})
	}
}

func TestAddClip(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Created",
			body: `{"campaignId":7,"title":"t","platform":"tiktok","videoUrl":"https://tiktok.com/v/1","views":100}`,
			prepareMock: func() {
				service.EXPECT().AddClip(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, c *domain.Clip) (*domain.Clip, error) {
						assert.Equal(t, 2, c.ClipperID)
						assert.Equal(t, domain.PlatformTikTok, c.Platform)
						assert.Equal(t, int64(100), c.Views)
						c.ID = 11
						return c, nil
					})
			},
			expectedCode: http.StatusCreated,
		},
		{
			name:          "Unknown platform",
			body:          `{"campaignId":7,"platform":"vimeo","videoUrl":"https://vimeo.com/1"}`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "platform must be one of: youtube instagram tiktok",
		},
		{
			name:          "Negative views",
			body:          `{"campaignId":7,"platform":"youtube","videoUrl":"https://youtu.be/1","views":-1}`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "views must be at least 0",
		},
		{
			name:          "Bad video url",
			body:          `{"campaignId":7,"platform":"youtube","videoUrl":"not a url"}`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "videoUrl must be a valid URL",
		},
		{
			name: "Campaign missing",
			body: `{"campaignId":99,"platform":"youtube","videoUrl":"https://youtu.be/1"}`,
			prepareMock: func() {
				service.EXPECT().AddClip(gomock.Any(), gomock.Any()).Return(nil, campaignservice.ErrCampaignNotFound)
			},
			expectedCode:  http.StatusNotFound,
			expectedError: "Campaign not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			rr := httptest.NewRecorder()

			handler.AddClip(rr, newRequest("POST", "/api/campaigns/clips", tt.body, 2, nil))

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedError != "" {
				assert.Equal(t, tt.expectedError, errorOf(t, rr))
			}
		})
	}
}

func TestUpdateCampaignAnalytics(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		id           string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Recomputed",
			id:   "7",
			prepareMock: func() {
				service.EXPECT().UpdateCampaignAnalytics(gomock.Any(), 7).Return(&domain.CampaignAnalytics{
					CampaignID: 7,
					TotalViews: 2000,
					CPM:        decimal.RequireFromString("2.5"),
				}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Not found",
			id:   "8",
			prepareMock: func() {
				service.EXPECT().UpdateCampaignAnalytics(gomock.Any(), 8).Return(nil, campaignservice.ErrCampaignNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name:         "Bad id",
			id:           "0",
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			rr := httptest.NewRecorder()

			handler.UpdateCampaignAnalytics(rr, newRequest("POST", "/api/campaigns/"+tt.id+"/analytics", "", 1, map[string]string{"campaignId": tt.id}))

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedCode == http.StatusOK {
				var resp dto.AnalyticsUpdateResponseDTO
				require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
				assert.Equal(t, int64(2000), resp.Analytics.TotalViews)
			}
		})
	}
}

func TestFeedback(t *testing.T) {
	handler, service := NewMock(t)

	t.Run("Add feedback", func(t *testing.T) {
		service.EXPECT().AddFeedback(gomock.Any(), &domain.CampaignFeedback{CampaignID: 7, UserID: 2, Rating: 5, Comment: "great"}).
			Return(&domain.CampaignFeedback{ID: 1, CampaignID: 7, UserID: 2, Rating: 5, Comment: "great"}, nil)
		rr := httptest.NewRecorder()

		handler.AddFeedback(rr, newRequest("POST", "/api/campaigns/7/feedback", `{"rating":5,"comment":"great"}`, 2, map[string]string{"campaignId": "7"}))

		assert.Equal(t, http.StatusCreated, rr.Code)
	})

	t.Run("Rating out of range", func(t *testing.T) {
		rr := httptest.NewRecorder()

		handler.AddFeedback(rr, newRequest("POST", "/api/campaigns/7/feedback", `{"rating":6}`, 2, map[string]string{"campaignId": "7"}))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, "Rating must be between 1 and 5", errorOf(t, rr))
	})

	t.Run("List feedback", func(t *testing.T) {
		service.EXPECT().ListFeedback(gomock.Any(), 7).Return([]domain.CampaignFeedback{{ID: 1, Rating: 4}}, nil)
		rr := httptest.NewRecorder()

		handler.ListFeedback(rr, newRequest("GET", "/api/campaigns/7/feedback", "", 0, map[string]string{"campaignId": "7"}))

		assert.Equal(t, http.StatusOK, rr.Code)
		var resp []dto.FeedbackResponseDTO
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
		assert.Len(t, resp, 1)
	})

	t.Run("List feedback of missing campaign", func(t *testing.T) {
		service.EXPECT().ListFeedback(gomock.Any(), 9).Return(nil, campaignservice.ErrCampaignNotFound)
		rr := httptest.NewRecorder()

		handler.ListFeedback(rr, newRequest("GET", "/api/campaigns/9/feedback", "", 0, map[string]string{"campaignId": "9"}))

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestLeaderboard(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		query        string
		prepareMock  func()
		expectedCode int
	}{
		{
			name:  "Default size",
			query: "",
			prepareMock: func() {
				service.EXPECT().Leaderboard(gomock.Any(), 10).Return(&domain.Leaderboard{
					TotalClippers: 1,
					Top:           []domain.LeaderboardEntry{{Rank: 1, UserID: 2, Views: 100}},
				}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "Bad limit",
			query:        "?limit=all",
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:  "Internal error",
			query: "?limit=3",
			prepareMock: func() {
				service.EXPECT().Leaderboard(gomock.Any(), 3).Return(nil, errors.New("db down"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			rr := httptest.NewRecorder()

			handler.Leaderboard(rr, newRequest("GET", "/api/leaderboard"+tt.query, "", 0, nil))

			assert.Equal(t, tt.expectedCode, rr.Code)
		})
	}
}
