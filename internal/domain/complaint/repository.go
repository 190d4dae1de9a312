package complaint

import (
	"context"
	"time"

	vo "civicdesk/internal/domain/complaint/valueobjects"
)

type Repository interface {
	Save(ctx context.Context, c *Complaint) error
	Update(ctx context.Context, c *Complaint) error
	Delete(ctx context.Context, complaintID uint) error
	FindByID(ctx context.Context, complaintID uint) (*Complaint, error)
	FindByReference(ctx context.Context, reference string) (*Complaint, error)
	List(ctx context.Context, filter Filter) ([]*Complaint, int64, error)

	// RecentWindow returns complaints created at or after since, newest
	// first, capped at limit. It feeds the duplicate detector.
	RecentWindow(ctx context.Context, since time.Time, limit int) ([]*Complaint, error)

	// CountSameLocation counts complaints whose location contains the
	// given fragment, case-insensitively, excluding excludeID.
	CountSameLocation(ctx context.Context, location string, excludeID uint) (int64, error)

	CountByStatus(ctx context.Context) (map[vo.Status]int64, error)
	CountByCategory(ctx context.Context) (map[vo.Category]int64, error)
}

type Filter struct {
	Status     *vo.Status
	Category   *vo.Category
	Severity   *vo.Severity
	ReporterID *uint
	Location   string
	Page       int
	PageSize   int
	SortBy     string
	SortOrder  string
}
