package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "civicdesk/internal/domain/complaint/valueobjects"
)

func TestGetComplaintStatsUseCase_Execute(t *testing.T) {
	mockRepo := &mockComplaintRepository{
		CountByStatusFunc: func(ctx context.Context) (map[vo.Status]int64, error) {
			return map[vo.Status]int64{
				vo.StatusAssigned:   4,
				vo.StatusInProgress: 2,
				vo.StatusCompleted:  3,
			}, nil
		},
		CountByCategoryFunc: func(ctx context.Context) (map[vo.Category]int64, error) {
			return map[vo.Category]int64{
				vo.CategoryGarbage:  5,
				vo.CategoryDrainage: 4,
			}, nil
		},
	}

	useCase := NewGetComplaintStatsUseCase(mockRepo, &mockLogger{})

	result, err := useCase.Execute(context.Background(), GetComplaintStatsQuery{UserID: 1, UserRole: "admin"})

	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, int64(9), result.TotalComplaints)
	assert.Equal(t, int64(6), result.OpenComplaints)
	assert.Equal(t, int64(3), result.Completed)
	assert.Equal(t, int64(4), result.ByStatus[vo.StatusAssigned.String()])
	assert.Equal(t, int64(5), result.ByCategory[vo.CategoryGarbage.String()])

	// Every known status and category appears, even with zero counts.
	for _, status := range vo.AllStatuses() {
		_, ok := result.ByStatus[status.String()]
		assert.True(t, ok)
	}
	for _, category := range vo.AllCategories() {
		_, ok := result.ByCategory[category.String()]
		assert.True(t, ok)
	}
}

func TestGetComplaintStatsUseCase_Execute_EmptyDatabase(t *testing.T) {
	useCase := NewGetComplaintStatsUseCase(&mockComplaintRepository{}, &mockLogger{})

	result, err := useCase.Execute(context.Background(), GetComplaintStatsQuery{UserID: 1, UserRole: "admin"})

	require.NoError(t, err)
	assert.Zero(t, result.TotalComplaints)
	assert.Equal(t, int64(0), result.ByStatus[vo.StatusAssigned.String()])
}
