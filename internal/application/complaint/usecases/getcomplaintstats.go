package usecases

import (
	"context"

	"civicdesk/internal/domain/complaint"
	vo "civicdesk/internal/domain/complaint/valueobjects"
	"civicdesk/internal/shared/errors"
	"civicdesk/internal/shared/logger"
)

type GetComplaintStatsQuery struct {
	UserID   uint
	UserRole string
}

type GetComplaintStatsResult struct {
	TotalComplaints int64
	OpenComplaints  int64
	Completed       int64
	ByStatus        map[string]int64
	ByCategory      map[string]int64
}

type GetComplaintStatsUseCase struct {
	complaintRepo complaint.Repository
	logger        logger.Interface
}

func NewGetComplaintStatsUseCase(
	complaintRepo complaint.Repository,
	logger logger.Interface,
) *GetComplaintStatsUseCase {
	return &GetComplaintStatsUseCase{
		complaintRepo: complaintRepo,
		logger:        logger,
	}
}

func (uc *GetComplaintStatsUseCase) Execute(
	ctx context.Context,
	query GetComplaintStatsQuery,
) (*GetComplaintStatsResult, error) {
	result := &GetComplaintStatsResult{
		ByStatus:   make(map[string]int64),
		ByCategory: make(map[string]int64),
	}

	byStatus, err := uc.complaintRepo.CountByStatus(ctx)
	if err != nil {
		uc.logger.Errorw("failed to count complaints by status", "error", err)
		return nil, errors.NewInternalError("failed to load complaint stats")
	}

	byCategory, err := uc.complaintRepo.CountByCategory(ctx)
	if err != nil {
		uc.logger.Errorw("failed to count complaints by category", "error", err)
		return nil, errors.NewInternalError("failed to load complaint stats")
	}

	for _, status := range vo.AllStatuses() {
		result.ByStatus[status.String()] = 0
	}
	for _, category := range vo.AllCategories() {
		result.ByCategory[category.String()] = 0
	}

	for status, count := range byStatus {
		result.ByStatus[status.String()] = count
		result.TotalComplaints += count
		if status == vo.StatusCompleted {
			result.Completed += count
		} else {
			result.OpenComplaints += count
		}
	}

	for category, count := range byCategory {
		result.ByCategory[category.String()] = count
	}

	uc.logger.Infow("complaint stats retrieved successfully",
		"total", result.TotalComplaints,
		"open", result.OpenComplaints,
		"completed", result.Completed)

	return result, nil
}
