package service

import (
	"github.com/GlebRadaev/clippa/internal/config"
	"github.com/GlebRadaev/clippa/internal/handlers/accounts"
	"github.com/GlebRadaev/clippa/internal/handlers/auth"
	"github.com/GlebRadaev/clippa/internal/handlers/campaigns"
	"github.com/GlebRadaev/clippa/internal/handlers/jobs"
	"github.com/GlebRadaev/clippa/internal/handlers/wallet"

	pkgauth "github.com/GlebRadaev/clippa/pkg/auth"

	"github.com/GlebRadaev/clippa/internal/repo"
	"github.com/GlebRadaev/clippa/internal/service/accountservice"
	"github.com/GlebRadaev/clippa/internal/service/authservice"
	"github.com/GlebRadaev/clippa/internal/service/campaignservice"
	"github.com/GlebRadaev/clippa/internal/service/jobservice"
	"github.com/GlebRadaev/clippa/internal/service/walletservice"
)

type Services struct {
	AuthService     auth.Service
	WalletService   wallet.Service
	CampaignService campaigns.Service
	AccountService  accounts.Service
	JobService      jobs.Service
	JWTService      pkgauth.JWTServiceInterface
}

func New(repo *repo.Repositories, cfg *config.Config, jobsCache jobservice.Cache) *Services {
	jwtService := pkgauth.NewJWTService(cfg.JWTSecret)

	authService := authservice.New(repo.UserRepo, pkgauth.NewHashService(0), jwtService, cfg.TokenTTL)
	walletService := walletservice.New(repo.WalletRepo, repo.TransactionRepo, repo.TXManager)
	campaignService := campaignservice.New(repo.CampaignRepo, repo.ClipRepo, repo.AnalyticsRepo, repo.FeedbackRepo, repo.TXManager)
	accountService := accountservice.New(repo.AccountRepo)
	jobService := jobservice.New(repo.JobRepo, jobsCache, cfg.JobsCacheTTL)

	return &Services{
		AuthService:     authService,
		WalletService:   walletService,
		CampaignService: campaignService,
		AccountService:  accountService,
		JobService:      jobService,
		JWTService:      jwtService,
	}
}
