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

type ListComplaintsQuery struct {
	Status    string
	Category  string
	Severity  string
	Location  string
	Page      int
	PageSize  int
	SortBy    string
	SortOrder string
	UserID    uint
	UserRole  string
}

type ListComplaintsResult struct {
	Complaints []dto.ComplaintListItemDTO
	Total      int64
	Page       int
	PageSize   int
}

type ListComplaintsUseCase struct {
	complaintRepo complaint.Repository
	logger        logger.Interface
}

func NewListComplaintsUseCase(
	complaintRepo complaint.Repository,
	logger logger.Interface,
) *ListComplaintsUseCase {
	return &ListComplaintsUseCase{
		complaintRepo: complaintRepo,
		logger:        logger,
	}
}

func (uc *ListComplaintsUseCase) Execute(ctx context.Context, query ListComplaintsQuery) (*ListComplaintsResult, error) {
	filter, err := uc.buildFilter(query)
	if err != nil {
		return nil, err
	}

	complaints, total, err := uc.complaintRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list complaints", "error", err)
		return nil, errors.NewInternalError("failed to list complaints")
	}

	return &ListComplaintsResult{
		Complaints: dto.ToComplaintListItemDTOs(complaints),
		Total:      total,
		Page:       filter.Page,
		PageSize:   filter.PageSize,
	}, nil
}

func (uc *ListComplaintsUseCase) buildFilter(query ListComplaintsQuery) (complaint.Filter, error) {
	filter := complaint.Filter{
		Location:  query.Location,
		Page:      query.Page,
		PageSize:  query.PageSize,
		SortBy:    query.SortBy,
		SortOrder: query.SortOrder,
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

	if query.Status != "" {
		status, err := vo.NewStatus(query.Status)
		if err != nil {
			return filter, errors.NewValidationError("invalid status filter")
		}
		filter.Status = &status
	}

	if query.Category != "" {
		category, err := vo.NewCategory(query.Category)
		if err != nil {
			return filter, errors.NewValidationError("invalid category filter")
		}
		filter.Category = &category
	}

	if query.Severity != "" {
		severity, err := vo.NewSeverity(query.Severity)
		if err != nil {
			return filter, errors.NewValidationError("invalid severity filter")
		}
		filter.Severity = &severity
	}

	// Citizens only ever see their own complaints.
	if !authorization.UserRole(query.UserRole).IsAdmin() {
		reporterID := query.UserID
		filter.ReporterID = &reporterID
	}

	return filter, nil
}
