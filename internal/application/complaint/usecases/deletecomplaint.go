package usecases

import (
	"context"
	"fmt"

	"civicdesk/internal/domain/complaint"
	"civicdesk/internal/shared/errors"
	"civicdesk/internal/shared/logger"
)

// PhotoRemover deletes a stored photo by its public path.
type PhotoRemover interface {
	Remove(publicPath string) error
}

type DeleteComplaintCommand struct {
	ComplaintID uint
	DeletedBy   uint
}

type DeleteComplaintResult struct {
	ComplaintID uint
	Reference   string
}

type DeleteComplaintUseCase struct {
	complaintRepo complaint.Repository
	photos        PhotoRemover
	logger        logger.Interface
}

func NewDeleteComplaintUseCase(
	complaintRepo complaint.Repository,
	photos PhotoRemover,
	logger logger.Interface,
) *DeleteComplaintUseCase {
	return &DeleteComplaintUseCase{
		complaintRepo: complaintRepo,
		photos:        photos,
		logger:        logger,
	}
}

func (uc *DeleteComplaintUseCase) Execute(ctx context.Context, cmd DeleteComplaintCommand) (*DeleteComplaintResult, error) {
	uc.logger.Infow("executing delete complaint use case",
		"complaint_id", cmd.ComplaintID, "deleted_by", cmd.DeletedBy)

	if cmd.ComplaintID == 0 {
		return nil, errors.NewValidationError("complaint ID is required")
	}

	c, err := uc.complaintRepo.FindByID(ctx, cmd.ComplaintID)
	if err != nil {
		return nil, errors.NewNotFoundError(fmt.Sprintf("complaint %d not found", cmd.ComplaintID))
	}

	if err := uc.complaintRepo.Delete(ctx, cmd.ComplaintID); err != nil {
		uc.logger.Errorw("failed to delete complaint", "complaint_id", cmd.ComplaintID, "error", err)
		return nil, errors.NewInternalError("failed to delete complaint")
	}

	if uc.photos != nil && c.PhotoPath() != "" {
		if err := uc.photos.Remove(c.PhotoPath()); err != nil {
			uc.logger.Warnw("failed to remove complaint photo",
				"complaint_id", cmd.ComplaintID, "photo_path", c.PhotoPath(), "error", err)
		}
	}

	uc.logger.Infow("complaint deleted successfully",
		"complaint_id", cmd.ComplaintID, "reference", c.Reference())

	return &DeleteComplaintResult{
		ComplaintID: c.ID(),
		Reference:   c.Reference(),
	}, nil
}
