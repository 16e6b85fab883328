package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	_ "github.com/GlebRadaev/clippa/docs"
	"github.com/GlebRadaev/clippa/internal/config"
	"github.com/GlebRadaev/clippa/internal/handlers/accounts"
	"github.com/GlebRadaev/clippa/internal/handlers/auth"
	"github.com/GlebRadaev/clippa/internal/handlers/campaigns"
	"github.com/GlebRadaev/clippa/internal/handlers/jobs"
	"github.com/GlebRadaev/clippa/internal/handlers/wallet"
	"github.com/GlebRadaev/clippa/internal/service"
	pkgauth "github.com/GlebRadaev/clippa/pkg/auth"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	services := &service.Services{
		AuthService:     auth.NewMockService(ctrl),
		WalletService:   wallet.NewMockService(ctrl),
		CampaignService: campaigns.NewMockService(ctrl),
		AccountService:  accounts.NewMockService(ctrl),
		JobService:      jobs.NewMockService(ctrl),
		JWTService:      pkgauth.NewMockJWTServiceInterface(ctrl),
	}

	h := New(services, &config.Config{AllowedOrigins: []string{"http://localhost:5173"}})
	assert.NotNil(t, h, "Handlers should not be nil")
	assert.Equal(t, []string{"http://localhost:5173"}, h.AllowedOrigins)
	assert.Same(t, services.JWTService, h.Tokens)
}

func newRouter(t *testing.T) chi.Router {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	authHandler := NewMockAuthHandler(ctrl)
	walletHandler := NewMockWalletHandler(ctrl)
	campaignHandler := NewMockCampaignHandler(ctrl)
	accountHandler := NewMockAccountHandler(ctrl)
	jobHandler := NewMockJobHandler(ctrl)
	tokens := pkgauth.NewMockJWTServiceInterface(ctrl)

	authHandler.EXPECT().Register(gomock.Any(), gomock.Any()).AnyTimes()
	authHandler.EXPECT().Login(gomock.Any(), gomock.Any()).AnyTimes()
	authHandler.EXPECT().SwitchRole(gomock.Any(), gomock.Any()).AnyTimes()
	authHandler.EXPECT().Me(gomock.Any(), gomock.Any()).AnyTimes()
	authHandler.EXPECT().UpdateProfile(gomock.Any(), gomock.Any()).AnyTimes()
	walletHandler.EXPECT().GetWallet(gomock.Any(), gomock.Any()).AnyTimes()
	walletHandler.EXPECT().GetTransactions(gomock.Any(), gomock.Any()).AnyTimes()
	walletHandler.EXPECT().AddFunds(gomock.Any(), gomock.Any()).AnyTimes()
	walletHandler.EXPECT().Withdraw(gomock.Any(), gomock.Any()).AnyTimes()
	campaignHandler.EXPECT().ListCampaigns(gomock.Any(), gomock.Any()).AnyTimes()
	campaignHandler.EXPECT().GetCampaigns(gomock.Any(), gomock.Any()).AnyTimes()
	campaignHandler.EXPECT().GetCampaignByID(gomock.Any(), gomock.Any()).AnyTimes()
	campaignHandler.EXPECT().CreateCampaign(gomock.Any(), gomock.Any()).AnyTimes()
	campaignHandler.EXPECT().AddClip(gomock.Any(), gomock.Any()).AnyTimes()
	campaignHandler.EXPECT().UpdateCampaignAnalytics(gomock.Any(), gomock.Any()).AnyTimes()
	campaignHandler.EXPECT().AddFeedback(gomock.Any(), gomock.Any()).AnyTimes()
	campaignHandler.EXPECT().ListFeedback(gomock.Any(), gomock.Any()).AnyTimes()
	campaignHandler.EXPECT().Leaderboard(gomock.Any(), gomock.Any()).AnyTimes()
	accountHandler.EXPECT().GetConnectedAccounts(gomock.Any(), gomock.Any()).AnyTimes()
	accountHandler.EXPECT().GetAvailablePlatforms(gomock.Any(), gomock.Any()).AnyTimes()
	accountHandler.EXPECT().ConnectAccount(gomock.Any(), gomock.Any()).AnyTimes()
	accountHandler.EXPECT().DisconnectAccount(gomock.Any(), gomock.Any()).AnyTimes()
	jobHandler.EXPECT().ListJobs(gomock.Any(), gomock.Any()).AnyTimes()
	jobHandler.EXPECT().CreateJob(gomock.Any(), gomock.Any()).AnyTimes()

	tokens.EXPECT().ValidateToken("clipper").Return(&pkgauth.Claims{UserID: 7, Role: "clipper"}, nil).AnyTimes()
	tokens.EXPECT().ValidateToken("creator").Return(&pkgauth.Claims{UserID: 9, Role: "creator"}, nil).AnyTimes()
	tokens.EXPECT().ValidateToken("expired").Return(nil, errors.New("token is expired")).AnyTimes()

	h := &Handlers{
		AuthHandler:     authHandler,
		WalletHandler:   walletHandler,
		CampaignHandler: campaignHandler,
		AccountHandler:  accountHandler,
		JobHandler:      jobHandler,
		Tokens:          tokens,
		AllowedOrigins:  []string{"http://localhost:5173"},
	}

	router := chi.NewRouter()
	h.InitRoutes(router)
	return router
}

func TestInitRoutes(t *testing.T) {
	router := newRouter(t)

	tests := []struct {
		method string
		url    string
		token  string
		status int
	}{
		{"GET", "/", "", http.StatusOK},
		{"GET", "/metrics", "", http.StatusOK},
		{"POST", "/api/auth/register", "", http.StatusOK},
		{"POST", "/api/auth/login", "", http.StatusOK},
		{"POST", "/api/auth/switch-role", "", http.StatusUnauthorized},
		{"GET", "/api/auth/me", "", http.StatusUnauthorized},
		{"GET", "/api/auth/me", "expired", http.StatusForbidden},
		{"GET", "/api/auth/me", "clipper", http.StatusOK},
		{"PUT", "/api/auth/profile", "clipper", http.StatusOK},
		{"GET", "/api/wallet/7", "", http.StatusUnauthorized},
		{"GET", "/api/wallet/7", "clipper", http.StatusOK},
		{"GET", "/api/wallet/8", "clipper", http.StatusForbidden},
		{"GET", "/api/wallet/7/transactions", "clipper", http.StatusOK},
		{"POST", "/api/wallet/7/add", "clipper", http.StatusOK},
		{"POST", "/api/wallet/7/withdraw", "clipper", http.StatusOK},
		{"POST", "/api/wallet/9/withdraw", "clipper", http.StatusForbidden},
		{"GET", "/api/campaigns", "", http.StatusOK},
		{"GET", "/api/campaigns/user/9", "", http.StatusOK},
		{"GET", "/api/campaigns/3", "", http.StatusOK},
		{"GET", "/api/campaigns/3/feedback", "", http.StatusOK},
		{"POST", "/api/campaigns", "", http.StatusUnauthorized},
		{"POST", "/api/campaigns", "clipper", http.StatusForbidden},
		{"POST", "/api/campaigns", "creator", http.StatusOK},
		{"POST", "/api/campaigns/clips", "creator", http.StatusForbidden},
		{"POST", "/api/campaigns/clips", "clipper", http.StatusOK},
		{"POST", "/api/campaigns/3/analytics", "", http.StatusUnauthorized},
		{"POST", "/api/campaigns/3/analytics", "creator", http.StatusOK},
		{"POST", "/api/campaigns/3/feedback", "clipper", http.StatusOK},
		{"GET", "/api/leaderboard", "", http.StatusOK},
		{"GET", "/api/connected-accounts/user/7", "", http.StatusUnauthorized},
		{"GET", "/api/connected-accounts/user/7", "clipper", http.StatusOK},
		{"GET", "/api/connected-accounts/user/7/available", "clipper", http.StatusOK},
		{"GET", "/api/connected-accounts/user/9/available", "clipper", http.StatusForbidden},
		{"POST", "/api/connected-accounts", "clipper", http.StatusOK},
		{"DELETE", "/api/connected-accounts/4", "clipper", http.StatusOK},
		{"GET", "/api/jobs", "", http.StatusOK},
		{"POST", "/api/jobs", "", http.StatusUnauthorized},
		{"POST", "/api/jobs", "creator", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.url+" "+tt.token, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.url, nil)
			if tt.token != "" {
				req.Header.Set("Authorization", "Bearer "+tt.token)
			}
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
		})
	}
}

func TestInitRoutes_Health(t *testing.T) {
	router := newRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "CLIPPA API is running", rec.Body.String())
}

func TestInitRoutes_CORS(t *testing.T) {
	router := newRouter(t)

	req := httptest.NewRequest(http.MethodOptions, "/api/jobs", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, "http://localhost:5173", rec.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/api/jobs", nil)
	req.Header.Set("Origin", "http://evil.example")
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}
