package complaint

import (
	"fmt"
	"time"

	vo "civicdesk/internal/domain/complaint/valueobjects"
)

// Complaint is the aggregate root for a citizen-submitted issue report.
type Complaint struct {
	id            uint
	reference     string
	category      vo.Category
	description   string
	location      string
	status        vo.Status
	photoPath     string
	embedding     []float32
	priorityScore int
	breakdown     *PriorityBreakdown
	severity      vo.Severity
	reasoning     string
	reporterID    uint
	createdAt     time.Time
	updatedAt     time.Time
}

func NewComplaint(
	description string,
	location string,
	category vo.Category,
	reporterID uint,
) (*Complaint, error) {
	if len(description) == 0 {
		return nil, fmt.Errorf("description is required")
	}
	if len(description) > 5000 {
		return nil, fmt.Errorf("description exceeds maximum length of 5000 characters")
	}
	if len(location) == 0 {
		return nil, fmt.Errorf("location is required")
	}
	if len(location) > 300 {
		return nil, fmt.Errorf("location exceeds maximum length of 300 characters")
	}
	if !category.IsValid() {
		return nil, fmt.Errorf("invalid category")
	}
	if reporterID == 0 {
		return nil, fmt.Errorf("reporter ID is required")
	}

	now := time.Now()
	return &Complaint{
		category:    category,
		description: description,
		location:    location,
		status:      vo.StatusAssigned,
		reporterID:  reporterID,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

func ReconstructComplaint(
	id uint,
	reference string,
	category vo.Category,
	description string,
	location string,
	status vo.Status,
	photoPath string,
	embedding []float32,
	priorityScore int,
	breakdown *PriorityBreakdown,
	severity vo.Severity,
	reasoning string,
	reporterID uint,
	createdAt, updatedAt time.Time,
) (*Complaint, error) {
	if id == 0 {
		return nil, fmt.Errorf("complaint ID cannot be zero")
	}
	if len(reference) == 0 {
		return nil, fmt.Errorf("complaint reference is required")
	}
	if !category.IsValid() {
		return nil, fmt.Errorf("invalid category")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid status")
	}
	if !severity.IsValid() {
		return nil, fmt.Errorf("invalid severity")
	}

	return &Complaint{
		id:            id,
		reference:     reference,
		category:      category,
		description:   description,
		location:      location,
		status:        status,
		photoPath:     photoPath,
		embedding:     embedding,
		priorityScore: priorityScore,
		breakdown:     breakdown,
		severity:      severity,
		reasoning:     reasoning,
		reporterID:    reporterID,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}, nil
}

func (c *Complaint) ID() uint              { return c.id }
func (c *Complaint) Reference() string     { return c.reference }
func (c *Complaint) Category() vo.Category { return c.category }
func (c *Complaint) Description() string   { return c.description }
func (c *Complaint) Location() string      { return c.location }
func (c *Complaint) Status() vo.Status     { return c.status }
func (c *Complaint) PhotoPath() string     { return c.photoPath }
func (c *Complaint) PriorityScore() int    { return c.priorityScore }
func (c *Complaint) Severity() vo.Severity { return c.severity }
func (c *Complaint) Reasoning() string     { return c.reasoning }
func (c *Complaint) ReporterID() uint      { return c.reporterID }
func (c *Complaint) CreatedAt() time.Time  { return c.createdAt }
func (c *Complaint) UpdatedAt() time.Time  { return c.updatedAt }

func (c *Complaint) Embedding() []float32 {
	if c.embedding == nil {
		return nil
	}
	out := make([]float32, len(c.embedding))
	copy(out, c.embedding)
	return out
}

func (c *Complaint) HasEmbedding() bool {
	return len(c.embedding) > 0
}

func (c *Complaint) Breakdown() *PriorityBreakdown {
	if c.breakdown == nil {
		return nil
	}
	b := *c.breakdown
	return &b
}

func (c *Complaint) SetID(id uint) error {
	if c.id != 0 {
		return fmt.Errorf("complaint ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("complaint ID cannot be zero")
	}
	c.id = id
	return nil
}

func (c *Complaint) SetReference(reference string) error {
	if len(c.reference) > 0 {
		return fmt.Errorf("complaint reference is already set")
	}
	if len(reference) == 0 {
		return fmt.Errorf("complaint reference cannot be empty")
	}
	c.reference = reference
	return nil
}

// SetPhotoPath records the stored upload path for the attached photo.
func (c *Complaint) SetPhotoPath(path string) {
	c.photoPath = path
	c.updatedAt = time.Now()
}

// SetEmbedding attaches the description embedding produced at intake.
// An absent embedding excludes this complaint from duplicate comparisons.
func (c *Complaint) SetEmbedding(embedding []float32) {
	if len(embedding) == 0 {
		c.embedding = nil
		return
	}
	c.embedding = make([]float32, len(embedding))
	copy(c.embedding, embedding)
}

// AttachPriority records the scorer's assessment. The score is set once at
// creation and never recomputed afterwards.
func (c *Complaint) AttachPriority(a *Assessment) error {
	if a == nil {
		return fmt.Errorf("assessment cannot be nil")
	}
	if c.breakdown != nil {
		return fmt.Errorf("priority is already attached")
	}
	if a.Score < 0 || a.Score > 100 {
		return fmt.Errorf("priority score out of range: %d", a.Score)
	}

	c.priorityScore = a.Score
	b := a.Breakdown
	c.breakdown = &b
	c.severity = a.Severity
	c.reasoning = a.Reasoning
	return nil
}

func (c *Complaint) ChangeStatus(newStatus vo.Status) error {
	if !newStatus.IsValid() {
		return fmt.Errorf("invalid status: %s", newStatus)
	}
	if c.status == newStatus {
		return nil
	}
	if !c.status.CanTransitionTo(newStatus) {
		return fmt.Errorf("cannot transition from %s to %s", c.status, newStatus)
	}

	c.status = newStatus
	c.updatedAt = time.Now()
	return nil
}

// HoursPending reports how long the complaint has been open, in hours.
func (c *Complaint) HoursPending(now time.Time) float64 {
	if c.createdAt.IsZero() || now.Before(c.createdAt) {
		return 0
	}
	return now.Sub(c.createdAt).Hours()
}

func (c *Complaint) CanBeViewedBy(userID uint, role string) bool {
	if role == "admin" {
		return true
	}
	return c.reporterID == userID
}

func (c *Complaint) Validate() error {
	if len(c.description) == 0 {
		return fmt.Errorf("description is required")
	}
	if len(c.location) == 0 {
		return fmt.Errorf("location is required")
	}
	if !c.category.IsValid() {
		return fmt.Errorf("invalid category")
	}
	if !c.status.IsValid() {
		return fmt.Errorf("invalid status")
	}
	if c.reporterID == 0 {
		return fmt.Errorf("reporter ID is required")
	}
	return nil
}
