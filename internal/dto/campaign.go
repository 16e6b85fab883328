package dto

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"

	"github.com/GlebRadaev/clippa/internal/domain"
)

type CreateCampaignRequestDTO struct {
	Name         string          `json:"name" validate:"required,max=255" example:"Summer launch"`
	Description  string          `json:"description" example:"Clip our launch stream"`
	Budget       decimal.Decimal `json:"budget" swaggertype:"number" example:"1500"`
	ThumbnailURL string          `json:"thumbnailUrl,omitempty" validate:"omitempty,url" example:"https://cdn.example.com/thumb.png"`
	Link         string          `json:"link,omitempty" validate:"omitempty,url" example:"https://example.com/launch"`
}

type AddClipRequestDTO struct {
	CampaignID   int             `json:"campaignId" validate:"required,min=1" example:"7"`
	Title        string          `json:"title" validate:"max=255" example:"Best moment"`
	Platform     string          `json:"platform" validate:"required,oneof=youtube instagram tiktok" example:"tiktok"`
	VideoURL     string          `json:"videoUrl" validate:"required,url" example:"https://tiktok.com/@jane/video/1"`
	Views        int64           `json:"views" validate:"min=0" example:"1000"`
	Likes        int64           `json:"likes" validate:"min=0" example:"120"`
	Shares       int64           `json:"shares" validate:"min=0" example:"8"`
	RewardEarned decimal.Decimal `json:"rewardEarned" swaggertype:"number" example:"12.5"`
}

type FeedbackRequestDTO struct {
	Rating  int    `json:"rating" validate:"required,min=1,max=5" example:"5"`
	Comment string `json:"comment" validate:"max=2000" example:"Great campaign"`
}

type AnalyticsResponseDTO struct {
	TotalViews     int64           `json:"totalViews" example:"15000"`
	TotalLikes     int64           `json:"totalLikes" example:"900"`
	TotalShares    int64           `json:"totalShares" example:"40"`
	TotalClippers  int             `json:"totalClippers" example:"4"`
	YoutubeViews   int64           `json:"youtubeViews" example:"5000"`
	InstagramViews int64           `json:"instagramViews" example:"2500"`
	TiktokViews    int64           `json:"tiktokViews" example:"7500"`
	CPM            decimal.Decimal `json:"cpm" swaggertype:"number" example:"3.3333"`
	Demographics   json.RawMessage `json:"demographics,omitempty" swaggertype:"object"`
	UpdatedAt      time.Time       `json:"updatedAt" example:"2024-05-02T10:00:00Z"`
}

type ClipResponseDTO struct {
	ID           int             `json:"id" example:"11"`
	CampaignID   int             `json:"campaignId" example:"7"`
	ClipperID    int             `json:"clipperId" example:"2"`
	Title        string          `json:"title" example:"Best moment"`
	Platform     string          `json:"platform" example:"tiktok"`
	VideoURL     string          `json:"videoUrl" example:"https://tiktok.com/@jane/video/1"`
	Views        int64           `json:"views" example:"1000"`
	Likes        int64           `json:"likes" example:"120"`
	Shares       int64           `json:"shares" example:"8"`
	RewardEarned decimal.Decimal `json:"rewardEarned" swaggertype:"number" example:"12.5"`
	CreatedAt    time.Time       `json:"createdAt" example:"2024-05-01T10:00:00Z"`
}

type CampaignResponseDTO struct {
	ID           int                   `json:"id" example:"7"`
	CreatorID    int                   `json:"creatorId" example:"1"`
	Name         string                `json:"name" example:"Summer launch"`
	Description  string                `json:"description" example:"Clip our launch stream"`
	Budget       decimal.Decimal       `json:"budget" swaggertype:"number" example:"1500"`
	TotalSpent   decimal.Decimal       `json:"totalSpent" swaggertype:"number" example:"50"`
	Status       string                `json:"status" example:"active"`
	ThumbnailURL string                `json:"thumbnailUrl,omitempty" example:"https://cdn.example.com/thumb.png"`
	Link         string                `json:"link,omitempty" example:"https://example.com/launch"`
	CreatedAt    time.Time             `json:"createdAt" example:"2024-05-01T10:00:00Z"`
	UpdatedAt    time.Time             `json:"updatedAt" example:"2024-05-02T10:00:00Z"`
	Analytics    *AnalyticsResponseDTO `json:"analytics"`
	Clips        []ClipResponseDTO     `json:"clips,omitempty"`
}

type ClipperStatsResponseDTO struct {
	ClipperID   int             `json:"clipperId" example:"2"`
	TotalViews  int64           `json:"totalViews" example:"9000"`
	TotalLikes  int64           `json:"totalLikes" example:"300"`
	TotalReward decimal.Decimal `json:"totalReward" swaggertype:"number" example:"40"`
	ClipCount   int             `json:"clipCount" example:"3"`
}

type CampaignDetailsResponseDTO struct {
	CampaignResponseDTO
	FeaturedClippers []ClipperStatsResponseDTO `json:"featuredClippers"`
}

type AnalyticsUpdateResponseDTO struct {
	Message   string               `json:"message" example:"Analytics updated successfully"`
	Analytics AnalyticsResponseDTO `json:"analytics"`
}

type FeedbackResponseDTO struct {
	ID         int       `json:"id" example:"4"`
	CampaignID int       `json:"campaignId" example:"7"`
	UserID     int       `json:"userId" example:"2"`
	Rating     int       `json:"rating" example:"5"`
	Comment    string    `json:"comment" example:"Great campaign"`
	CreatedAt  time.Time `json:"createdAt" example:"2024-05-01T10:00:00Z"`
}

type LeaderboardEntryResponseDTO struct {
	Rank      int    `json:"rank" example:"1"`
	UserID    int    `json:"userId" example:"2"`
	Name      string `json:"name" example:"Jane Doe"`
	Campaigns int    `json:"campaigns" example:"3"`
	Views     int64  `json:"views" example:"42000"`
}

type LeaderboardResponseDTO struct {
	TotalClippers  int                           `json:"totalClippers" example:"120"`
	TotalViews     int64                         `json:"totalViews" example:"1500000"`
	TotalCampaigns int                           `json:"totalCampaigns" example:"35"`
	Top            []LeaderboardEntryResponseDTO `json:"top"`
}

func NewAnalyticsResponse(a *domain.CampaignAnalytics) *AnalyticsResponseDTO {
	if a == nil {
		return nil
	}
	return &AnalyticsResponseDTO{
		TotalViews:     a.TotalViews,
		TotalLikes:     a.TotalLikes,
		TotalShares:    a.TotalShares,
		TotalClippers:  a.TotalClippers,
		YoutubeViews:   a.YoutubeViews,
		InstagramViews: a.InstagramViews,
		TiktokViews:    a.TiktokViews,
		CPM:            a.CPM,
		Demographics:   a.Demographics,
		UpdatedAt:      a.UpdatedAt,
	}
}

func NewClipResponse(c *domain.Clip) ClipResponseDTO {
	return ClipResponseDTO{
		ID:           c.ID,
		CampaignID:   c.CampaignID,
		ClipperID:    c.ClipperID,
		Title:        c.Title,
		Platform:     string(c.Platform),
		VideoURL:     c.VideoURL,
		Views:        c.Views,
		Likes:        c.Likes,
		Shares:       c.Shares,
		RewardEarned: c.RewardEarned,
		CreatedAt:    c.CreatedAt,
	}
}

func NewCampaignResponse(c *domain.Campaign) CampaignResponseDTO {
	resp := CampaignResponseDTO{
		ID:           c.ID,
		CreatorID:    c.CreatorID,
		Name:         c.Name,
		Description:  c.Description,
		Budget:       c.Budget,
		TotalSpent:   c.TotalSpent,
		Status:       string(c.Status),
		ThumbnailURL: c.ThumbnailURL,
		Link:         c.Link,
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
		Analytics:    NewAnalyticsResponse(c.Analytics),
	}
	if c.Clips != nil {
		resp.Clips = make([]ClipResponseDTO, len(c.Clips))
		for i := range c.Clips {
			resp.Clips[i] = NewClipResponse(&c.Clips[i])
		}
	}
	return resp
}

func NewCampaignsResponse(campaigns []domain.Campaign) []CampaignResponseDTO {
	out := make([]CampaignResponseDTO, len(campaigns))
	for i := range campaigns {
		out[i] = NewCampaignResponse(&campaigns[i])
	}
	return out
}

func NewCampaignDetailsResponse(d *domain.CampaignDetails) CampaignDetailsResponseDTO {
	featured := make([]ClipperStatsResponseDTO, len(d.FeaturedClippers))
	for i, s := range d.FeaturedClippers {
		featured[i] = ClipperStatsResponseDTO{
			ClipperID:   s.ClipperID,
			TotalViews:  s.TotalViews,
			TotalLikes:  s.TotalLikes,
			TotalReward: s.TotalReward,
			ClipCount:   s.ClipCount,
		}
	}
	return CampaignDetailsResponseDTO{
		CampaignResponseDTO: NewCampaignResponse(&d.Campaign),
		FeaturedClippers:    featured,
	}
}

func NewFeedbackResponse(f *domain.CampaignFeedback) FeedbackResponseDTO {
	return FeedbackResponseDTO{
		ID:         f.ID,
		CampaignID: f.CampaignID,
		UserID:     f.UserID,
		Rating:     f.Rating,
		Comment:    f.Comment,
		CreatedAt:  f.CreatedAt,
	}
}

func NewLeaderboardResponse(l *domain.Leaderboard) LeaderboardResponseDTO {
	top := make([]LeaderboardEntryResponseDTO, len(l.Top))
	for i, e := range l.Top {
		top[i] = LeaderboardEntryResponseDTO{
			Rank:      e.Rank,
			UserID:    e.UserID,
			Name:      e.Name,
			Campaigns: e.Campaigns,
			Views:     e.Views,
		}
	}
	return LeaderboardResponseDTO{
		TotalClippers:  l.TotalClippers,
		TotalViews:     l.TotalViews,
		TotalCampaigns: l.TotalCampaigns,
		Top:            top,
	}
}
