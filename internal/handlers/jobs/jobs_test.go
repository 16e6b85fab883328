package jobs

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/clippa/internal/domain"
	"github.com/GlebRadaev/clippa/internal/dto"
	"github.com/GlebRadaev/clippa/internal/service/jobservice"
	"github.com/GlebRadaev/clippa/pkg/utils"
)

func NewMock(t *testing.T) (*JobHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func TestListJobs(t *testing.T) {
	handler, service := NewMock(t)

	page := &domain.JobPage{
		Items:      []domain.Job{{ID: 2, Title: "Edit", Reward: decimal.NewFromInt(50)}},
		Total:      1,
		Page:       1,
		Limit:      12,
		TotalPages: 1,
	}

	tests := []struct {
		name          string
		query         string
		prepareMock   func()
		expectedCode  int
		expectedCache string
	}{
		{
			name:  "Default page",
			query: "",
			prepareMock: func() {
				service.EXPECT().ListJobs(context.Background(), 1, 12).Return(page, nil)
				service.EXPECT().CacheTTL().Return(30 * time.Second)
			},
			expectedCode:  http.StatusOK,
			expectedCache: "public, max-age=30",
		},
		{
			name:  "Explicit page",
			query: "?page=3&limit=5",
			prepareMock: func() {
				service.EXPECT().ListJobs(context.Background(), 3, 5).Return(&domain.JobPage{Items: []domain.Job{}, Page: 3, Limit: 5}, nil)
				service.EXPECT().CacheTTL().Return(time.Minute)
			},
			expectedCode:  http.StatusOK,
			expectedCache: "public, max-age=60",
		},
		{
			name:         "Bad limit",
			query:        "?limit=many",
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:  "Internal error",
			query: "",
			prepareMock: func() {
				service.EXPECT().ListJobs(context.Background(), 1, 12).Return(nil, errors.New("db down"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := httptest.NewRequest("GET", "/api/jobs"+tt.query, nil)
			rr := httptest.NewRecorder()

			handler.ListJobs(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			assert.Equal(t, tt.expectedCache, rr.Header().Get("Cache-Control"))
			if tt.expectedCode == http.StatusOK {
				var resp dto.JobPageResponseDTO
				require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
				assert.NotNil(t, resp.Items)
			}
		})
	}
}

func TestCreateJob(t *testing.T) {
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
			body: `{"title":"Edit shorts","description":"d","reward":200}`,
			prepareMock: func() {
				service.EXPECT().CreateJob(context.Background(), gomock.Any()).DoAndReturn(
					func(_ context.Context, j *domain.Job) (*domain.Job, error) {
						assert.Equal(t, "Edit shorts", j.Title)
						assert.True(t, j.Reward.Equal(decimal.NewFromInt(200)))
						j.ID = 4
						return j, nil
					})
			},
			expectedCode: http.StatusCreated,
		},
		{
			name:          "Title missing",
			body:          `{"reward":1}`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "title is required",
		},
		{
			name: "Negative reward",
			body: `{"title":"Edit","reward":-5}`,
			prepareMock: func() {
				service.EXPECT().CreateJob(context.Background(), gomock.Any()).Return(nil, jobservice.ErrInvalidReward)
			},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Reward must not be negative",
		},
		{
			name: "Internal error",
			body: `{"title":"Edit"}`,
			prepareMock: func() {
				service.EXPECT().CreateJob(context.Background(), gomock.Any()).Return(nil, errors.New("db down"))
			},
			expectedCode:  http.StatusInternalServerError,
			expectedError: "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := httptest.NewRequest("POST", "/api/jobs", bytes.NewReader([]byte(tt.body)))
			rr := httptest.NewRecorder()

			handler.CreateJob(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedError != "" {
				var resp utils.Response
				require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
				assert.Equal(t, tt.expectedError, resp.Error)
			}
		})
	}
}
