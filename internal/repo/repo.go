package repo

import (
	"github.com/GlebRadaev/clippa/internal/clipstats"
	"github.com/GlebRadaev/clippa/internal/pg"
	accountrepo "github.com/GlebRadaev/clippa/internal/repo/account-repo"
	analyticsrepo "github.com/GlebRadaev/clippa/internal/repo/analytics-repo"
	campaignrepo "github.com/GlebRadaev/clippa/internal/repo/campaign-repo"
	cliprepo "github.com/GlebRadaev/clippa/internal/repo/clip-repo"
	feedbackrepo "github.com/GlebRadaev/clippa/internal/repo/feedback-repo"
	jobrepo "github.com/GlebRadaev/clippa/internal/repo/job-repo"
	transactionrepo "github.com/GlebRadaev/clippa/internal/repo/transaction-repo"
	userrepo "github.com/GlebRadaev/clippa/internal/repo/user-repo"
	walletrepo "github.com/GlebRadaev/clippa/internal/repo/wallet-repo"
	"github.com/GlebRadaev/clippa/internal/service/accountservice"
	"github.com/GlebRadaev/clippa/internal/service/authservice"
	"github.com/GlebRadaev/clippa/internal/service/campaignservice"
	"github.com/GlebRadaev/clippa/internal/service/jobservice"
	"github.com/GlebRadaev/clippa/internal/service/walletservice"
)

type Repositories struct {
	UserRepo        authservice.Repo
	WalletRepo      walletservice.WalletRepo
	TransactionRepo walletservice.TransactionRepo
	CampaignRepo    campaignservice.CampaignRepo
	ClipRepo        campaignservice.ClipRepo
	ClipStatsRepo   clipstats.ClipRepo
	AnalyticsRepo   campaignservice.AnalyticsRepo
	FeedbackRepo    campaignservice.FeedbackRepo
	AccountRepo     accountservice.Repo
	JobRepo         jobservice.Repo
	TXManager       pg.TXManager
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	clipRepo := cliprepo.New(conn)

	return &Repositories{
		UserRepo:        userrepo.New(conn),
		WalletRepo:      walletrepo.New(conn),
		TransactionRepo: transactionrepo.New(conn),
		CampaignRepo:    campaignrepo.New(conn),
		ClipRepo:        clipRepo,
		ClipStatsRepo:   clipRepo,
		AnalyticsRepo:   analyticsrepo.New(conn),
		FeedbackRepo:    feedbackrepo.New(conn),
		AccountRepo:     accountrepo.New(conn),
		JobRepo:         jobrepo.New(conn),
		TXManager:       txManager,
	}
}
