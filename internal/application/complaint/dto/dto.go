package dto

import (
	"time"

	"civicdesk/internal/domain/complaint"
	"civicdesk/internal/shared/mapper"
)

type ComplaintDTO struct {
	ID            uint          `json:"id"`
	Reference     string        `json:"reference"`
	Category      string        `json:"category"`
	Description   string        `json:"description"`
	Location      string        `json:"location"`
	Status        string        `json:"status"`
	PhotoPath     string        `json:"photo_path,omitempty"`
	PriorityScore int           `json:"priority_score"`
	Breakdown     *BreakdownDTO `json:"priority_breakdown,omitempty"`
	Severity      string        `json:"severity"`
	Reasoning     string        `json:"reasoning"`
	ReporterID    uint          `json:"reporter_id"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}

type BreakdownDTO struct {
	ComplaintCountScore float64 `json:"complaint_count_score"`
	TimePendingScore    float64 `json:"time_pending_score"`
	AreaWeightScore     float64 `json:"area_weight_score"`
	CategoryMultiplier  float64 `json:"category_multiplier"`
}

type ComplaintListItemDTO struct {
	ID            uint   `json:"id"`
	Reference     string `json:"reference"`
	Category      string `json:"category"`
	Location      string `json:"location"`
	Status        string `json:"status"`
	PriorityScore int    `json:"priority_score"`
	Severity      string `json:"severity"`
	ReporterID    uint   `json:"reporter_id"`
	CreatedAt     string `json:"created_at"`
	UpdatedAt     string `json:"updated_at"`
}

// ComplaintSummaryDTO is the compact shape embedded in duplicate
// rejections so the reporter can recognize the existing complaint.
type ComplaintSummaryDTO struct {
	ID          uint   `json:"id"`
	Reference   string `json:"reference"`
	Category    string `json:"category"`
	Description string `json:"description"`
	Location    string `json:"location"`
	Status      string `json:"status"`
	CreatedAt   string `json:"created_at"`
}

func ToComplaintDTO(c *complaint.Complaint) *ComplaintDTO {
	if c == nil {
		return nil
	}

	out := &ComplaintDTO{
		ID:            c.ID(),
		Reference:     c.Reference(),
		Category:      c.Category().String(),
		Description:   c.Description(),
		Location:      c.Location(),
		Status:        c.Status().String(),
		PhotoPath:     c.PhotoPath(),
		PriorityScore: c.PriorityScore(),
		Severity:      c.Severity().String(),
		Reasoning:     c.Reasoning(),
		ReporterID:    c.ReporterID(),
		CreatedAt:     c.CreatedAt(),
		UpdatedAt:     c.UpdatedAt(),
	}

	if b := c.Breakdown(); b != nil {
		out.Breakdown = &BreakdownDTO{
			ComplaintCountScore: b.ComplaintCountScore,
			TimePendingScore:    b.TimePendingScore,
			AreaWeightScore:     b.AreaWeightScore,
			CategoryMultiplier:  b.CategoryMultiplier,
		}
	}

	return out
}

func ToComplaintListItemDTO(c *complaint.Complaint) ComplaintListItemDTO {
	return ComplaintListItemDTO{
		ID:            c.ID(),
		Reference:     c.Reference(),
		Category:      c.Category().String(),
		Location:      c.Location(),
		Status:        c.Status().String(),
		PriorityScore: c.PriorityScore(),
		Severity:      c.Severity().String(),
		ReporterID:    c.ReporterID(),
		CreatedAt:     c.CreatedAt().Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt:     c.UpdatedAt().Format("2006-01-02T15:04:05Z07:00"),
	}
}

func ToComplaintListItemDTOs(complaints []*complaint.Complaint) []ComplaintListItemDTO {
	return mapper.MapSlice(complaints, ToComplaintListItemDTO)
}

func ToComplaintSummaryDTO(c *complaint.Complaint) *ComplaintSummaryDTO {
	if c == nil {
		return nil
	}

	return &ComplaintSummaryDTO{
		ID:          c.ID(),
		Reference:   c.Reference(),
		Category:    c.Category().String(),
		Description: c.Description(),
		Location:    c.Location(),
		Status:      c.Status().String(),
		CreatedAt:   c.CreatedAt().Format("2006-01-02T15:04:05Z07:00"),
	}
}
