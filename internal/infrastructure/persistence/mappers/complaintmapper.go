package mappers

import (
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/datatypes"

	"civicdesk/internal/domain/complaint"
	vo "civicdesk/internal/domain/complaint/valueobjects"
	"civicdesk/internal/infrastructure/persistence/models"
)

// ComplaintMapper handles the conversion between Complaint domain entities and persistence models.
type ComplaintMapper interface {
	// ToModel converts a complaint domain entity to a persistence model.
	ToModel(c *complaint.Complaint) (*models.ComplaintModel, error)

	// ToDomain converts a complaint persistence model to a domain entity.
	ToDomain(model *models.ComplaintModel) (*complaint.Complaint, error)
}

// ComplaintMapperImpl is the concrete implementation of ComplaintMapper.
type ComplaintMapperImpl struct{}

// NewComplaintMapper creates a new ComplaintMapper.
func NewComplaintMapper() ComplaintMapper {
	return &ComplaintMapperImpl{}
}

// ToModel converts a complaint domain entity to a persistence model.
func (m *ComplaintMapperImpl) ToModel(c *complaint.Complaint) (*models.ComplaintModel, error) {
	model := &models.ComplaintModel{
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
		CreatedAt:     c.CreatedAt().UnixMilli(),
		UpdatedAt:     c.UpdatedAt().UnixMilli(),
	}

	if c.HasEmbedding() {
		embeddingBytes, err := json.Marshal(c.Embedding())
		if err != nil {
			return nil, fmt.Errorf("failed to marshal complaint embedding: %w", err)
		}
		model.Embedding = datatypes.JSON(embeddingBytes)
	}

	if breakdown := c.Breakdown(); breakdown != nil {
		breakdownBytes, err := json.Marshal(breakdown)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal complaint breakdown: %w", err)
		}
		model.Breakdown = datatypes.JSON(breakdownBytes)
	}

	return model, nil
}

// ToDomain converts a complaint persistence model to a domain entity.
func (m *ComplaintMapperImpl) ToDomain(model *models.ComplaintModel) (*complaint.Complaint, error) {
	category, err := vo.NewCategory(model.Category)
	if err != nil {
		return nil, fmt.Errorf("invalid complaint category (id=%d): %w", model.ID, err)
	}
	status, err := vo.NewStatus(model.Status)
	if err != nil {
		return nil, fmt.Errorf("invalid complaint status (id=%d): %w", model.ID, err)
	}
	severity, err := vo.NewSeverity(model.Severity)
	if err != nil {
		return nil, fmt.Errorf("invalid complaint severity (id=%d): %w", model.ID, err)
	}

	var embedding []float32
	if len(model.Embedding) > 0 {
		if err := json.Unmarshal(model.Embedding, &embedding); err != nil {
			return nil, fmt.Errorf("failed to unmarshal complaint embedding (id=%d): %w", model.ID, err)
		}
	}

	var breakdown *complaint.PriorityBreakdown
	if len(model.Breakdown) > 0 {
		breakdown = &complaint.PriorityBreakdown{}
		if err := json.Unmarshal(model.Breakdown, breakdown); err != nil {
			return nil, fmt.Errorf("failed to unmarshal complaint breakdown (id=%d): %w", model.ID, err)
		}
	}

	createdAt := convertMillisToTime(model.CreatedAt)
	updatedAt := convertMillisToTime(model.UpdatedAt)

	return complaint.ReconstructComplaint(
		model.ID,
		model.Reference,
		category,
		model.Description,
		model.Location,
		status,
		model.PhotoPath,
		embedding,
		model.PriorityScore,
		breakdown,
		severity,
		model.Reasoning,
		model.ReporterID,
		createdAt,
		updatedAt,
	)
}

func convertMillisToTime(millis int64) time.Time {
	return time.Unix(0, millis*int64(time.Millisecond))
}
