package handlers

import (
	"net/http"

	_ "github.com/GlebRadaev/clippa/docs"
	"github.com/GlebRadaev/clippa/internal/config"
	accounthandlers "github.com/GlebRadaev/clippa/internal/handlers/accounts"
	authhandlers "github.com/GlebRadaev/clippa/internal/handlers/auth"
	campaignhandlers "github.com/GlebRadaev/clippa/internal/handlers/campaigns"
	jobhandlers "github.com/GlebRadaev/clippa/internal/handlers/jobs"
	wallethandlers "github.com/GlebRadaev/clippa/internal/handlers/wallet"
	"github.com/GlebRadaev/clippa/internal/monitoring"
	"github.com/GlebRadaev/clippa/internal/service"
	"github.com/GlebRadaev/clippa/pkg/auth"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"
)

//go:generate mockgen -source=handlers.go -destination=mock_handlers.go -package=handlers

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
	SwitchRole(w http.ResponseWriter, r *http.Request)
	Me(w http.ResponseWriter, r *http.Request)
	UpdateProfile(w http.ResponseWriter, r *http.Request)
}

type WalletHandler interface {
	GetWallet(w http.ResponseWriter, r *http.Request)
	GetTransactions(w http.ResponseWriter, r *http.Request)
	AddFunds(w http.ResponseWriter, r *http.Request)
	Withdraw(w http.ResponseWriter, r *http.Request)
}

type CampaignHandler interface {
	ListCampaigns(w http.ResponseWriter, r *http.Request)
	GetCampaigns(w http.ResponseWriter, r *http.Request)
	GetCampaignByID(w http.ResponseWriter, r *http.Request)
	CreateCampaign(w http.ResponseWriter, r *http.Request)
	AddClip(w http.ResponseWriter, r *http.Request)
	UpdateCampaignAnalytics(w http.ResponseWriter, r *http.Request)
	AddFeedback(w http.ResponseWriter, r *http.Request)
	ListFeedback(w http.ResponseWriter, r *http.Request)
	Leaderboard(w http.ResponseWriter, r *http.Request)
}

type AccountHandler interface {
	GetConnectedAccounts(w http.ResponseWriter, r *http.Request)
	GetAvailablePlatforms(w http.ResponseWriter, r *http.Request)
	ConnectAccount(w http.ResponseWriter, r *http.Request)
	DisconnectAccount(w http.ResponseWriter, r *http.Request)
}

type JobHandler interface {
	ListJobs(w http.ResponseWriter, r *http.Request)
	CreateJob(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuthHandler     AuthHandler
	WalletHandler   WalletHandler
	CampaignHandler CampaignHandler
	AccountHandler  AccountHandler
	JobHandler      JobHandler

	Tokens         auth.JWTServiceInterface
	AllowedOrigins []string
}

func New(s *service.Services, cfg *config.Config) *Handlers {
	return &Handlers{
		AuthHandler:     authhandlers.New(s.AuthService),
		WalletHandler:   wallethandlers.New(s.WalletService),
		CampaignHandler: campaignhandlers.New(s.CampaignService),
		AccountHandler:  accounthandlers.New(s.AccountService),
		JobHandler:      jobhandlers.New(s.JobService),
		Tokens:          s.JWTService,
		AllowedOrigins:  cfg.AllowedOrigins,
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
		monitoring.Init().Middleware,
		cors.Handler(cors.Options{
			AllowedOrigins:   h.AllowedOrigins,
			AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
			ExposedHeaders:   []string{"Authorization"},
			AllowCredentials: true,
			MaxAge:           300,
		}),
	)

	r.Get("/", health)
	r.Handle("/metrics", monitoring.Handler())
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))

	authenticated := auth.AuthMiddleware(h.Tokens)

	r.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", h.AuthHandler.Register)
			r.Post("/login", h.AuthHandler.Login)

			r.Group(func(r chi.Router) {
				r.Use(authenticated)
				r.Post("/switch-role", h.AuthHandler.SwitchRole)
				r.Get("/me", h.AuthHandler.Me)
				r.Put("/profile", h.AuthHandler.UpdateProfile)
			})
		})

		r.Route("/wallet/{userId}", func(r chi.Router) {
			r.Use(authenticated, auth.RequireOwner("userId"))
			r.Get("/", h.WalletHandler.GetWallet)
			r.Get("/transactions", h.WalletHandler.GetTransactions)
			r.Post("/add", h.WalletHandler.AddFunds)
			r.Post("/withdraw", h.WalletHandler.Withdraw)
		})

		r.Route("/campaigns", func(r chi.Router) {
			r.Get("/", h.CampaignHandler.ListCampaigns)
			r.Get("/user/{userId}", h.CampaignHandler.GetCampaigns)
			r.Get("/{campaignId}", h.CampaignHandler.GetCampaignByID)
			r.Get("/{campaignId}/feedback", h.CampaignHandler.ListFeedback)

			r.Group(func(r chi.Router) {
				r.Use(authenticated)
				r.With(auth.RequireRole("creator")).Post("/", h.CampaignHandler.CreateCampaign)
				r.With(auth.RequireRole("clipper")).Post("/clips", h.CampaignHandler.AddClip)
				r.Post("/{campaignId}/analytics", h.CampaignHandler.UpdateCampaignAnalytics)
				r.Post("/{campaignId}/feedback", h.CampaignHandler.AddFeedback)
			})
		})
		r.Get("/leaderboard", h.CampaignHandler.Leaderboard)

		r.Route("/connected-accounts", func(r chi.Router) {
			r.Use(authenticated)
			r.Route("/user/{userId}", func(r chi.Router) {
				r.Use(auth.RequireOwner("userId"))
				r.Get("/", h.AccountHandler.GetConnectedAccounts)
				r.Get("/available", h.AccountHandler.GetAvailablePlatforms)
			})
			r.Post("/", h.AccountHandler.ConnectAccount)
			r.Delete("/{accountId}", h.AccountHandler.DisconnectAccount)
		})

		r.Route("/jobs", func(r chi.Router) {
			r.Get("/", h.JobHandler.ListJobs)
			r.With(authenticated).Post("/", h.JobHandler.CreateJob)
		})
	})

	return r
}

func health(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("CLIPPA API is running"))
}
