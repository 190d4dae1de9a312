package usecases

import (
	"context"

	"civicdesk/internal/application/complaint/dto"
)

type SubmitComplaintExecutor interface {
	Execute(ctx context.Context, cmd SubmitComplaintCommand) (*SubmitComplaintResult, error)
}

type GetComplaintExecutor interface {
	Execute(ctx context.Context, query GetComplaintQuery) (*dto.ComplaintDTO, error)
}

type ListComplaintsExecutor interface {
	Execute(ctx context.Context, query ListComplaintsQuery) (*ListComplaintsResult, error)
}

type ListByPriorityExecutor interface {
	Execute(ctx context.Context, query ListByPriorityQuery) (*ListByPriorityResult, error)
}

type UpdateStatusExecutor interface {
	Execute(ctx context.Context, cmd UpdateStatusCommand) (*UpdateStatusResult, error)
}

type DeleteComplaintExecutor interface {
	Execute(ctx context.Context, cmd DeleteComplaintCommand) (*DeleteComplaintResult, error)
}

type GetComplaintStatsExecutor interface {
	Execute(ctx context.Context, query GetComplaintStatsQuery) (*GetComplaintStatsResult, error)
}
