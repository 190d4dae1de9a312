package usecases

import (
	"context"
	"fmt"

	"civicdesk/internal/domain/complaint"
	vo "civicdesk/internal/domain/complaint/valueobjects"
	"civicdesk/internal/domain/user"
	"civicdesk/internal/shared/errors"
	"civicdesk/internal/shared/logger"
)

// NotificationService delivers complaint lifecycle emails. A nil service
// disables notifications.
type NotificationService interface {
	SendComplaintReceivedEmail(to, reference string) error
	SendStatusChangedEmail(to, reference, oldStatus, newStatus string) error
}

type UpdateStatusCommand struct {
	ComplaintID uint
	NewStatus   string
	ChangedBy   uint
}

type UpdateStatusResult struct {
	ComplaintID uint
	Reference   string
	OldStatus   string
	NewStatus   string
	UpdatedAt   string
}

type UpdateStatusUseCase struct {
	complaintRepo complaint.Repository
	userRepo      user.Repository
	notifier      NotificationService
	logger        logger.Interface
}

func NewUpdateStatusUseCase(
	complaintRepo complaint.Repository,
	userRepo user.Repository,
	notifier NotificationService,
	logger logger.Interface,
) *UpdateStatusUseCase {
	return &UpdateStatusUseCase{
		complaintRepo: complaintRepo,
		userRepo:      userRepo,
		notifier:      notifier,
		logger:        logger,
	}
}

func (uc *UpdateStatusUseCase) Execute(ctx context.Context, cmd UpdateStatusCommand) (*UpdateStatusResult, error) {
	uc.logger.Infow("executing update status use case",
		"complaint_id", cmd.ComplaintID, "new_status", cmd.NewStatus)

	if cmd.ComplaintID == 0 {
		return nil, errors.NewValidationError("complaint ID is required")
	}

	newStatus, err := vo.NewStatus(cmd.NewStatus)
	if err != nil {
		return nil, errors.NewValidationError("invalid status")
	}

	c, err := uc.complaintRepo.FindByID(ctx, cmd.ComplaintID)
	if err != nil {
		uc.logger.Debugw("complaint not found", "complaint_id", cmd.ComplaintID, "error", err)
		return nil, errors.NewNotFoundError(fmt.Sprintf("complaint %d not found", cmd.ComplaintID))
	}

	oldStatus := c.Status()

	if err := c.ChangeStatus(newStatus); err != nil {
		uc.logger.Errorw("failed to change complaint status",
			"complaint_id", cmd.ComplaintID, "error", err)
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.complaintRepo.Update(ctx, c); err != nil {
		uc.logger.Errorw("failed to update complaint", "complaint_id", cmd.ComplaintID, "error", err)
		return nil, errors.NewInternalError("failed to update complaint")
	}

	if oldStatus != c.Status() {
		uc.notifyReporter(ctx, c, oldStatus.String())
	}

	uc.logger.Infow("complaint status updated successfully",
		"complaint_id", cmd.ComplaintID,
		"old_status", oldStatus.String(),
		"new_status", c.Status().String())

	return &UpdateStatusResult{
		ComplaintID: c.ID(),
		Reference:   c.Reference(),
		OldStatus:   oldStatus.String(),
		NewStatus:   c.Status().String(),
		UpdatedAt:   c.UpdatedAt().Format("2006-01-02T15:04:05Z07:00"),
	}, nil
}

// notifyReporter emails the reporter about the transition. Delivery
// problems are logged and never fail the update.
func (uc *UpdateStatusUseCase) notifyReporter(ctx context.Context, c *complaint.Complaint, oldStatus string) {
	if uc.notifier == nil {
		return
	}

	reporter, err := uc.userRepo.FindByID(ctx, c.ReporterID())
	if err != nil {
		uc.logger.Warnw("failed to load reporter for notification",
			"complaint_id", c.ID(), "reporter_id", c.ReporterID(), "error", err)
		return
	}

	if err := uc.notifier.SendStatusChangedEmail(
		reporter.Email().String(),
		c.Reference(),
		oldStatus,
		c.Status().String(),
	); err != nil {
		uc.logger.Warnw("failed to send status change email",
			"complaint_id", c.ID(), "error", err)
	}
}
