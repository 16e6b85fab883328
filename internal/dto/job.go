package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/GlebRadaev/clippa/internal/domain"
)

type CreateJobRequestDTO struct {
	Title       string          `json:"title" validate:"required,max=255" example:"Edit 10 shorts"`
	Description string          `json:"description" example:"Vertical edits of a podcast"`
	Reward      decimal.Decimal `json:"reward" swaggertype:"number" example:"200"`
}

type JobResponseDTO struct {
	ID          int             `json:"id" example:"3"`
	Title       string          `json:"title" example:"Edit 10 shorts"`
	Description string          `json:"description" example:"Vertical edits of a podcast"`
	Reward      decimal.Decimal `json:"reward" swaggertype:"number" example:"200"`
	CreatedAt   time.Time       `json:"createdAt" example:"2024-05-01T10:00:00Z"`
}

type JobPageResponseDTO struct {
	Items      []JobResponseDTO `json:"items"`
	Total      int              `json:"total" example:"40"`
	Page       int              `json:"page" example:"1"`
	Limit      int              `json:"limit" example:"12"`
	TotalPages int              `json:"totalPages" example:"4"`
}

func NewJobResponse(j *domain.Job) JobResponseDTO {
	return JobResponseDTO{
		ID:          j.ID,
		Title:       j.Title,
		Description: j.Description,
		Reward:      j.Reward,
		CreatedAt:   j.CreatedAt,
	}
}

func NewJobPageResponse(p *domain.JobPage) JobPageResponseDTO {
	items := make([]JobResponseDTO, len(p.Items))
	for i := range p.Items {
		items[i] = NewJobResponse(&p.Items[i])
	}
	return JobPageResponseDTO{
		Items:      items,
		Total:      p.Total,
		Page:       p.Page,
		Limit:      p.Limit,
		TotalPages: p.TotalPages,
	}
}
