package usecases

import (
	"context"

	"civicdesk/internal/application/complaint/dto"
	"civicdesk/internal/domain/complaint"
	vo "civicdesk/internal/domain/complaint/valueobjects"
	"civicdesk/internal/shared/authorization"
	"civicdesk/internal/shared/constants"
	"civicdesk/internal/shared/errors"
	"civicdesk/internal/shared/logger"
)

type ListByPriorityQuery struct {
	Page     int
	PageSize int
	UserID   uint
	UserRole string
}

// ListByPriorityResult groups complaints into severity buckets, ordered
// critical first and by priority score inside each bucket.
type ListByPriorityResult struct {
	Buckets []SeverityBucket
	Total   int64
}

type SeverityBucket struct {
	Severity   string
	Complaints []dto.ComplaintListItemDTO
}

type ListByPriorityUseCase struct {
	complaintRepo complaint.Repository
	logger        logger.Interface
}

func NewListByPriorityUseCase(
	complaintRepo complaint.Repository,
	logger logger.Interface,
) *ListByPriorityUseCase {
	return &ListByPriorityUseCase{
		complaintRepo: complaintRepo,
		logger:        logger,
	}
}

func (uc *ListByPriorityUseCase) Execute(ctx context.Context, query ListByPriorityQuery) (*ListByPriorityResult, error) {
	filter := complaint.Filter{
		Page:      query.Page,
		PageSize:  query.PageSize,
		SortBy:    "priority_score",
		SortOrder: "DESC",
	}

	if filter.Page < 1 {
		filter.Page = constants.DefaultPage
	}
	if filter.PageSize < 1 {
		filter.PageSize = constants.DefaultPageSize
	}
	if filter.PageSize > constants.MaxPageSize {
		filter.PageSize = constants.MaxPageSize
	}

	if !authorization.UserRole(query.UserRole).IsAdmin() {
		reporterID := query.UserID
		filter.ReporterID = &reporterID
	}

	complaints, total, err := uc.complaintRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list complaints by priority", "error", err)
		return nil, errors.NewInternalError("failed to list complaints by priority")
	}

	grouped := make(map[vo.Severity][]dto.ComplaintListItemDTO)
	for _, c := range complaints {
		grouped[c.Severity()] = append(grouped[c.Severity()], dto.ToComplaintListItemDTO(c))
	}

	buckets := make([]SeverityBucket, 0, len(vo.AllSeverities()))
	for _, severity := range vo.AllSeverities() {
		items := grouped[severity]
		if items == nil {
			items = []dto.ComplaintListItemDTO{}
		}
		buckets = append(buckets, SeverityBucket{
			Severity:   severity.String(),
			Complaints: items,
		})
	}

	return &ListByPriorityResult{
		Buckets: buckets,
		Total:   total,
	}, nil
}
