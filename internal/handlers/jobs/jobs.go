package jobs

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/GlebRadaev/clippa/internal/domain"
	"github.com/GlebRadaev/clippa/internal/dto"
	"github.com/GlebRadaev/clippa/internal/service/jobservice"
	"github.com/GlebRadaev/clippa/pkg/utils"
	"github.com/GlebRadaev/clippa/pkg/validate"
)

//go:generate mockgen -source=jobs.go -destination=mock_service.go -package=jobs
type Service interface {
	ListJobs(ctx context.Context, page, limit int) (*domain.JobPage, error)
	CreateJob(ctx context.Context, job *domain.Job) (*domain.Job, error)
	CacheTTL() time.Duration
}

type JobHandler struct {
	jobService Service
}

func New(jobService Service) *JobHandler {
	return &JobHandler{
		jobService: jobService,
	}
}

// ListJobs godoc
//
//	@Summary		List jobs
//	@Description	Newest first. Pages are cached for a short time and the response carries a matching Cache-Control header.
//	@Tags			Jobs
//	@Produce		json
//	@Param			page	query		int	false	"Page number"		default(1)
//	@Param			limit	query		int	false	"Page size, 1..100"	default(12)
//	@Success		200		{object}	dto.JobPageResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid paging parameters"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/jobs [get]
func (h *JobHandler) ListJobs(w http.ResponseWriter, r *http.Request) {
	page, err := queryInt(r, "page", 1)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid page")
		return
	}
	limit, err := queryInt(r, "limit", jobservice.DefaultLimit)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid limit")
		return
	}

	jobs, err := h.jobService.ListJobs(r.Context(), page, limit)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	w.Header().Set("Cache-Control", fmt.Sprintf("public, max-age=%d", int(h.jobService.CacheTTL().Seconds())))
	utils.RespondWithJSON(w, http.StatusOK, dto.NewJobPageResponse(jobs))
}

// CreateJob godoc
//
//	@Summary		Post a job
//	@Tags			Jobs
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CreateJobRequestDTO	true	"Job"
//	@Success		201		{object}	dto.JobResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/jobs [post]
func (h *JobHandler) CreateJob(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateJobRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	job, err := h.jobService.CreateJob(r.Context(), &domain.Job{
		Title:       req.Title,
		Description: req.Description,
		Reward:      req.Reward,
	})
	if err != nil {
		switch {
		case errors.Is(err, jobservice.ErrTitleRequired), errors.Is(err, jobservice.ErrInvalidReward):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.NewJobResponse(job))
}

func queryInt(r *http.Request, key string, def int) (int, error) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return def, nil
	}
	return strconv.Atoi(raw)
}
