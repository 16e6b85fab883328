package campaignservice

import (
	"encoding/json"
	"sort"

	"github.com/GlebRadaev/clippa/internal/domain"
	"github.com/shopspring/decimal"
)

const FeaturedClippersLimit = 10

var thousand = decimal.NewFromInt(1000)

// ComputeAnalytics aggregates a campaign's clips into a fresh analytics row
// and returns it together with the campaign's total spend.
func ComputeAnalytics(campaignID int, clips []domain.Clip) (*domain.CampaignAnalytics, decimal.Decimal) {
	a := &domain.CampaignAnalytics{CampaignID: campaignID}
	spent := decimal.Zero
	clippers := make(map[int]struct{})

	for _, c := range clips {
		a.TotalViews += c.Views
		a.TotalLikes += c.Likes
		a.TotalShares += c.Shares
		spent = spent.Add(c.RewardEarned)
		clippers[c.ClipperID] = struct{}{}

		switch c.Platform {
		case domain.PlatformYouTube:
			a.YoutubeViews += c.Views
		case domain.PlatformInstagram:
			a.InstagramViews += c.Views
		case domain.PlatformTikTok:
			a.TiktokViews += c.Views
		}
	}
	a.TotalClippers = len(clippers)
	a.CPM = CPM(spent, a.TotalViews)
	a.Demographics = platformShares(a)
	return a, spent
}

// CPM is the cost per thousand views, rounded to four places. It is zero
// when there are no views.
func CPM(spent decimal.Decimal, views int64) decimal.Decimal {
	if views <= 0 {
		return decimal.Zero
	}
	return spent.Div(decimal.NewFromInt(views)).Mul(thousand).Round(4)
}

// platformShares reports each platform's percentage of total views.
func platformShares(a *domain.CampaignAnalytics) json.RawMessage {
	shares := map[string]float64{
		string(domain.PlatformYouTube):   0,
		string(domain.PlatformInstagram): 0,
		string(domain.PlatformTikTok):    0,
	}
	if a.TotalViews > 0 {
		total := decimal.NewFromInt(a.TotalViews)
		percent := func(v int64) float64 {
			return decimal.NewFromInt(v).Mul(decimal.NewFromInt(100)).Div(total).Round(2).InexactFloat64()
		}
		shares[string(domain.PlatformYouTube)] = percent(a.YoutubeViews)
		shares[string(domain.PlatformInstagram)] = percent(a.InstagramViews)
		shares[string(domain.PlatformTikTok)] = percent(a.TiktokViews)
	}
	raw, err := json.Marshal(map[string]any{"platformShare": shares})
	if err != nil {
		return json.RawMessage(`{}`)
	}
	return raw
}

// FeaturedClippers groups clips by clipper and returns the top contributors
// by total views. Ties go to the lower clipper id.
func FeaturedClippers(clips []domain.Clip, limit int) []domain.ClipperStats {
	byClipper := make(map[int]*domain.ClipperStats)
	for _, c := range clips {
		stats, ok := byClipper[c.ClipperID]
		if !ok {
			stats = &domain.ClipperStats{ClipperID: c.ClipperID, TotalReward: decimal.Zero}
			byClipper[c.ClipperID] = stats
		}
		stats.TotalViews += c.Views
		stats.TotalLikes += c.Likes
		stats.TotalReward = stats.TotalReward.Add(c.RewardEarned)
		stats.ClipCount++
	}

	result := make([]domain.ClipperStats, 0, len(byClipper))
	for _, stats := range byClipper {
		result = append(result, *stats)
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].TotalViews != result[j].TotalViews {
			return result[i].TotalViews > result[j].TotalViews
		}
		return result[i].ClipperID < result[j].ClipperID
	})
	if limit > 0 && len(result) > limit {
		result = result[:limit]
	}
	return result
}
