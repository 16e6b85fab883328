package domain

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

type Role string

const (
	RoleClipper Role = "clipper"
	RoleCreator Role = "creator"
)

func (r Role) Valid() bool {
	return r == RoleClipper || r == RoleCreator
}

type Platform string

const (
	PlatformYouTube   Platform = "youtube"
	PlatformInstagram Platform = "instagram"
	PlatformTikTok    Platform = "tiktok"
)

// Platforms lists every platform a clip can be posted to, in display order.
var Platforms = []Platform{PlatformYouTube, PlatformInstagram, PlatformTikTok}

func (p Platform) Valid() bool {
	for _, known := range Platforms {
		if p == known {
			return true
		}
	}
	return false
}

type TransactionType string

const (
	TransactionCredit TransactionType = "credit"
	TransactionDebit  TransactionType = "debit"
)

type CampaignStatus string

const (
	CampaignActive    CampaignStatus = "active"
	CampaignPaused    CampaignStatus = "paused"
	CampaignCompleted CampaignStatus = "completed"
)

type User struct {
	ID           int       `db:"id"`
	Name         string    `db:"name"`
	Email        string    `db:"email"`
	PasswordHash string    `db:"password_hash"`
	Role         Role      `db:"role"`
	Username     string    `db:"username"`
	Bio          string    `db:"bio"`
	AvatarURL    string    `db:"avatar_url"`
	CreatedAt    time.Time `db:"created_at"`
}

type Profile struct {
	Name      string
	Username  string
	Bio       string
	AvatarURL string
}

type Wallet struct {
	ID           int             `db:"id"`
	UserID       int             `db:"user_id"`
	Balance      decimal.Decimal `db:"balance"`
	CreatedAt    time.Time       `db:"created_at"`
	UpdatedAt    time.Time       `db:"updated_at"`
	Transactions []Transaction
}

type Transaction struct {
	ID          int             `db:"id"`
	WalletID    int             `db:"wallet_id"`
	Amount      decimal.Decimal `db:"amount"`
	Type        TransactionType `db:"type"`
	Description string          `db:"description"`
	CreatedAt   time.Time       `db:"created_at"`
}

type Campaign struct {
	ID           int             `db:"id"`
	CreatorID    int             `db:"creator_id"`
	Name         string          `db:"name"`
	Description  string          `db:"description"`
	Budget       decimal.Decimal `db:"budget"`
	TotalSpent   decimal.Decimal `db:"total_spent"`
	Status       CampaignStatus  `db:"status"`
	ThumbnailURL string          `db:"thumbnail_url"`
	Link         string          `db:"link"`
	CreatedAt    time.Time       `db:"created_at"`
	UpdatedAt    time.Time       `db:"updated_at"`
	Analytics    *CampaignAnalytics
	Clips        []Clip
}

type Clip struct {
	ID            int             `db:"id"`
	CampaignID    int             `db:"campaign_id"`
	ClipperID     int             `db:"clipper_id"`
	Title         string          `db:"title"`
	Platform      Platform        `db:"platform"`
	VideoURL      string          `db:"video_url"`
	Views         int64           `db:"views"`
	Likes         int64           `db:"likes"`
	Shares        int64           `db:"shares"`
	RewardEarned  decimal.Decimal `db:"reward_earned"`
	CreatedAt     time.Time       `db:"created_at"`
	UpdatedAt     time.Time       `db:"updated_at"`
	StatsSyncedAt *time.Time      `db:"stats_synced_at"`
}

type ClipStats struct {
	Views  int64
	Likes  int64
	Shares int64
}

type CampaignAnalytics struct {
	ID             int             `db:"id"`
	CampaignID     int             `db:"campaign_id"`
	TotalViews     int64           `db:"total_views"`
	TotalLikes     int64           `db:"total_likes"`
	TotalShares    int64           `db:"total_shares"`
	TotalClippers  int             `db:"total_clippers"`
	YoutubeViews   int64           `db:"youtube_views"`
	InstagramViews int64           `db:"instagram_views"`
	TiktokViews    int64           `db:"tiktok_views"`
	CPM            decimal.Decimal `db:"cpm"`
	Demographics   json.RawMessage `db:"demographics"`
	UpdatedAt      time.Time       `db:"updated_at"`
}

// ClipperStats is one clipper's contribution to a campaign.
type ClipperStats struct {
	ClipperID   int
	TotalViews  int64
	TotalLikes  int64
	TotalReward decimal.Decimal
	ClipCount   int
}

type CampaignDetails struct {
	Campaign         Campaign
	FeaturedClippers []ClipperStats
}

type CampaignFeedback struct {
	ID         int       `db:"id"`
	CampaignID int       `db:"campaign_id"`
	UserID     int       `db:"user_id"`
	Rating     int       `db:"rating"`
	Comment    string    `db:"comment"`
	CreatedAt  time.Time `db:"created_at"`
}

type LeaderboardEntry struct {
	Rank      int
	UserID    int
	Name      string
	Campaigns int
	Views     int64
}

type Leaderboard struct {
	TotalClippers  int
	TotalViews     int64
	TotalCampaigns int
	Top            []LeaderboardEntry
}

type ConnectedAccount struct {
	ID           int       `db:"id"`
	UserID       int       `db:"user_id"`
	Platform     Platform  `db:"platform"`
	Username     string    `db:"username"`
	AccountID    string    `db:"account_id"`
	AccessToken  string    `db:"access_token"`
	RefreshToken string    `db:"refresh_token"`
	IsActive     bool      `db:"is_active"`
	ConnectedAt  time.Time `db:"connected_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}

type Job struct {
	ID          int             `db:"id"`
	Title       string          `db:"title"`
	Description string          `db:"description"`
	Reward      decimal.Decimal `db:"reward"`
	CreatedAt   time.Time       `db:"created_at"`
}

type JobPage struct {
	Items      []Job
	Total      int
	Page       int
	Limit      int
	TotalPages int
}

type PlatformAvailability struct {
	Available []Platform
	Connected []Platform
}
