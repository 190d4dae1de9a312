package usecases

import (
	"context"
	"fmt"

	"civicdesk/internal/application/complaint/dto"
	"civicdesk/internal/domain/complaint"
	"civicdesk/internal/shared/errors"
	"civicdesk/internal/shared/logger"
)

type GetComplaintQuery struct {
	ComplaintID uint
	Reference   string
	UserID      uint
	UserRole    string
}

type GetComplaintUseCase struct {
	complaintRepo complaint.Repository
	logger        logger.Interface
}

func NewGetComplaintUseCase(
	complaintRepo complaint.Repository,
	logger logger.Interface,
) *GetComplaintUseCase {
	return &GetComplaintUseCase{
		complaintRepo: complaintRepo,
		logger:        logger,
	}
}

func (uc *GetComplaintUseCase) Execute(ctx context.Context, query GetComplaintQuery) (*dto.ComplaintDTO, error) {
	if query.ComplaintID == 0 && query.Reference == "" {
		return nil, errors.NewValidationError("complaint ID or reference is required")
	}

	var (
		c          *complaint.Complaint
		err        error
		identifier string
	)
	if query.ComplaintID != 0 {
		c, err = uc.complaintRepo.FindByID(ctx, query.ComplaintID)
		identifier = fmt.Sprintf("%d", query.ComplaintID)
	} else {
		c, err = uc.complaintRepo.FindByReference(ctx, query.Reference)
		identifier = query.Reference
	}
	if err != nil {
		uc.logger.Debugw("complaint not found",
			"complaint_id", query.ComplaintID, "reference", query.Reference, "error", err)
		return nil, errors.NewNotFoundError(fmt.Sprintf("complaint %s not found", identifier))
	}

	if !c.CanBeViewedBy(query.UserID, query.UserRole) {
		return nil, errors.NewForbiddenError("you do not have access to this complaint")
	}

	return dto.ToComplaintDTO(c), nil
}
