package campaigns

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/GlebRadaev/clippa/internal/domain"
	"github.com/GlebRadaev/clippa/internal/dto"
	"github.com/GlebRadaev/clippa/internal/service/campaignservice"
	"github.com/GlebRadaev/clippa/pkg/auth"
	"github.com/GlebRadaev/clippa/pkg/utils"
	"github.com/GlebRadaev/clippa/pkg/validate"
)

//go:generate mockgen -source=campaigns.go -destination=mock_service.go -package=campaigns
type Service interface {
	ListCampaigns(ctx context.Context, page, limit int) ([]domain.Campaign, error)
	GetCampaigns(ctx context.Context, creatorID int) ([]domain.Campaign, error)
	GetCampaignByID(ctx context.Context, id int, from, to *time.Time) (*domain.CampaignDetails, error)
	CreateCampaign(ctx context.Context, c *domain.Campaign) (*domain.Campaign, error)
	AddClip(ctx context.Context, clip *domain.Clip) (*domain.Clip, error)
	UpdateCampaignAnalytics(ctx context.Context, id int) (*domain.CampaignAnalytics, error)
	AddFeedback(ctx context.Context, f *domain.CampaignFeedback) (*domain.CampaignFeedback, error)
	ListFeedback(ctx context.Context, campaignID int) ([]domain.CampaignFeedback, error)
	Leaderboard(ctx context.Context, limit int) (*domain.Leaderboard, error)
}

type CampaignHandler struct {
	campaignService Service
}

func New(campaignService Service) *CampaignHandler {
	return &CampaignHandler{
		campaignService: campaignService,
	}
}

// ListCampaigns godoc
//
//	@Summary		List active campaigns
//	@Tags			Campaigns
//	@Produce		json
//	@Param			page	query		int	false	"Page number"	default(1)
//	@Param			limit	query		int	false	"Page size"		default(20)
//	@Success		200		{array}		dto.CampaignResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid paging parameters"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/campaigns [get]
func (h *CampaignHandler) ListCampaigns(w http.ResponseWriter, r *http.Request) {
	page, err := queryInt(r, "page", 1)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid page")
		return
	}
	limit, err := queryInt(r, "limit", campaignservice.DefaultPageSize)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid limit")
		return
	}

	campaigns, err := h.campaignService.ListCampaigns(r.Context(), page, limit)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewCampaignsResponse(campaigns))
}

// GetCampaigns godoc
//
//	@Summary		Campaigns of a creator
//	@Description	Newest first, each with analytics and its clips
//	@Tags			Campaigns
//	@Produce		json
//	@Param			userId	path		int	true	"Creator user ID"
//	@Success		200		{array}		dto.CampaignResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid user id"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/campaigns/user/{userId} [get]
func (h *CampaignHandler) GetCampaigns(w http.ResponseWriter, r *http.Request) {
	userID, err := strconv.Atoi(chi.URLParam(r, "userId"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid user id")
		return
	}

	campaigns, err := h.campaignService.GetCampaigns(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewCampaignsResponse(campaigns))
}

// GetCampaignByID godoc
//
//	@Summary		Campaign details
//	@Description	Campaign with analytics, clips ordered by views and the top 10 clippers. Clips can be limited to a creation window.
//	@Tags			Campaigns
//	@Produce		json
//	@Param			campaignId	path		int		true	"Campaign ID"
//	@Param			startDate	query		string	false	"RFC3339 window start"
//	@Param			endDate		query		string	false	"RFC3339 window end"
//	@Success		200			{object}	dto.CampaignDetailsResponseDTO
//	@Failure		400			{object}	utils.Response	"Invalid id or dates"
//	@Failure		404			{object}	utils.Response	"Campaign not found"
//	@Failure		500			{object}	utils.Response	"Internal server error"
//	@Router			/api/campaigns/{campaignId} [get]
func (h *CampaignHandler) GetCampaignByID(w http.ResponseWriter, r *http.Request) {
	id, ok := campaignID(w, r)
	if !ok {
		return
	}
	from, err := queryTime(r, "startDate")
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid startDate")
		return
	}
	to, err := queryTime(r, "endDate")
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid endDate")
		return
	}

	details, err := h.campaignService.GetCampaignByID(r.Context(), id, from, to)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewCampaignDetailsResponse(details))
}

// CreateCampaign godoc
//
//	@Summary		Create campaign
//	@Description	Creator only. An empty analytics row is created together with the campaign.
//	@Tags			Campaigns
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CreateCampaignRequestDTO	true	"Campaign"
//	@Success		201		{object}	dto.CampaignResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		403		{object}	utils.Response	"Creator role required"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/campaigns [post]
func (h *CampaignHandler) CreateCampaign(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.CreateCampaignRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	campaign, err := h.campaignService.CreateCampaign(r.Context(), &domain.Campaign{
		CreatorID:    userID,
		Name:         req.Name,
		Description:  req.Description,
		Budget:       req.Budget,
		ThumbnailURL: req.ThumbnailURL,
		Link:         req.Link,
	})
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.NewCampaignResponse(campaign))
}

// AddClip godoc
//
//	@Summary		Submit clip
//	@Description	Clipper only. Counters default to 0 and must not be negative.
//	@Tags			Campaigns
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.AddClipRequestDTO	true	"Clip"
//	@Success		201		{object}	dto.ClipResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		403		{object}	utils.Response	"Clipper role required"
//	@Failure		404		{object}	utils.Response	"Campaign not found"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/campaigns/clips [post]
func (h *CampaignHandler) AddClip(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.AddClipRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	clip, err := h.campaignService.AddClip(r.Context(), &domain.Clip{
		CampaignID:   req.CampaignID,
		ClipperID:    userID,
		Title:        req.Title,
		Platform:     domain.Platform(req.Platform),
		VideoURL:     req.VideoURL,
		Views:        req.Views,
		Likes:        req.Likes,
		Shares:       req.Shares,
		RewardEarned: req.RewardEarned,
	})
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.NewClipResponse(clip))
}

// UpdateCampaignAnalytics godoc
//
//	@Summary		Recompute campaign analytics
//	@Description	Sums clip counters, per-platform views, unique clippers and CPM, and stores total spend
//	@Tags			Campaigns
//	@Security		BearerAuth
//	@Produce		json
//	@Param			campaignId	path		int	true	"Campaign ID"
//	@Success		200			{object}	dto.AnalyticsUpdateResponseDTO
//	@Failure		400			{object}	utils.Response	"Invalid campaign id"
//	@Failure		401			{object}	utils.Response	"User not authorized"
//	@Failure		404			{object}	utils.Response	"Campaign not found"
//	@Failure		500			{object}	utils.Response	"Internal server error"
//	@Router			/api/campaigns/{campaignId}/analytics [post]
func (h *CampaignHandler) UpdateCampaignAnalytics(w http.ResponseWriter, r *http.Request) {
	id, ok := campaignID(w, r)
	if !ok {
		return
	}

	analytics, err := h.campaignService.UpdateCampaignAnalytics(r.Context(), id)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.AnalyticsUpdateResponseDTO{
		Message:   "Analytics updated successfully",
		Analytics: *dto.NewAnalyticsResponse(analytics),
	})
}

// AddFeedback godoc
//
//	@Summary		Leave campaign feedback
//	@Tags			Campaigns
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			campaignId	path		int						true	"Campaign ID"
//	@Param			request		body		dto.FeedbackRequestDTO	true	"Rating 1..5 and comment"
//	@Success		201			{object}	dto.FeedbackResponseDTO
//	@Failure		400			{object}	utils.Response	"Invalid request body"
//	@Failure		401			{object}	utils.Response	"User not authorized"
//	@Failure		404			{object}	utils.Response	"Campaign not found"
//	@Failure		500			{object}	utils.Response	"Internal server error"
//	@Router			/api/campaigns/{campaignId}/feedback [post]
func (h *CampaignHandler) AddFeedback(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)
	id, ok := campaignID(w, r)
	if !ok {
		return
	}

	var req dto.FeedbackRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, campaignservice.ErrInvalidRating.Error())
		return
	}

	feedback, err := h.campaignService.AddFeedback(r.Context(), &domain.CampaignFeedback{
		CampaignID: id,
		UserID:     userID,
		Rating:     req.Rating,
		Comment:    req.Comment,
	})
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.NewFeedbackResponse(feedback))
}

// ListFeedback godoc
//
//	@Summary		Campaign feedback
//	@Tags			Campaigns
//	@Produce		json
//	@Param			campaignId	path		int	true	"Campaign ID"
//	@Success		200			{array}		dto.FeedbackResponseDTO
//	@Failure		400			{object}	utils.Response	"Invalid campaign id"
//	@Failure		404			{object}	utils.Response	"Campaign not found"
//	@Failure		500			{object}	utils.Response	"Internal server error"
//	@Router			/api/campaigns/{campaignId}/feedback [get]
func (h *CampaignHandler) ListFeedback(w http.ResponseWriter, r *http.Request) {
	id, ok := campaignID(w, r)
	if !ok {
		return
	}

	feedback, err := h.campaignService.ListFeedback(r.Context(), id)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	response := make([]dto.FeedbackResponseDTO, len(feedback))
	for i := range feedback {
		response[i] = dto.NewFeedbackResponse(&feedback[i])
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// Leaderboard godoc
//
//	@Summary		Clipper leaderboard
//	@Description	Platform totals and the top clippers by views
//	@Tags			Campaigns
//	@Produce		json
//	@Param			limit	query		int	false	"Number of clippers"	default(10)
//	@Success		200		{object}	dto.LeaderboardResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid limit"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/leaderboard [get]
func (h *CampaignHandler) Leaderboard(w http.ResponseWriter, r *http.Request) {
	limit, err := queryInt(r, "limit", campaignservice.DefaultLeaderboard)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid limit")
		return
	}

	board, err := h.campaignService.Leaderboard(r.Context(), limit)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewLeaderboardResponse(board))
}

func respondWithServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, campaignservice.ErrCampaignNotFound):
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, campaignservice.ErrNameRequired),
		errors.Is(err, campaignservice.ErrInvalidBudget),
		errors.Is(err, campaignservice.ErrInvalidPlatform),
		errors.Is(err, campaignservice.ErrVideoURLRequired),
		errors.Is(err, campaignservice.ErrNegativeCounters),
		errors.Is(err, campaignservice.ErrInvalidDateRange),
		errors.Is(err, campaignservice.ErrInvalidRating):
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}

func campaignID(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, "campaignId"))
	if err != nil || id < 1 {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid campaign id")
		return 0, false
	}
	return id, true
}

func queryInt(r *http.Request, key string, def int) (int, error) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return def, nil
	}
	return strconv.Atoi(raw)
}

func queryTime(r *http.Request, key string) (*time.Time, error) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
