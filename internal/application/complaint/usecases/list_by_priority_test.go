package usecases

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"civicdesk/internal/domain/complaint"
	vo "civicdesk/internal/domain/complaint/valueobjects"
)

func scoredComplaint(t *testing.T, complaintID uint, score int) *complaint.Complaint {
	t.Helper()

	breakdown := &complaint.PriorityBreakdown{
		ComplaintCountScore: 50,
		TimePendingScore:    50,
		AreaWeightScore:     50,
		CategoryMultiplier:  1.0,
	}
	c, err := complaint.ReconstructComplaint(
		complaintID,
		fmt.Sprintf("cmp_list%05d", complaintID),
		vo.CategoryDrainage,
		"Blocked drain on the corner",
		"Canal Street",
		vo.StatusAssigned,
		"",
		nil,
		score,
		breakdown,
		vo.SeverityForScore(score),
		"scored",
		3,
		time.Now().Add(-2*time.Hour),
		time.Now().Add(-2*time.Hour),
	)
	require.NoError(t, err)
	return c
}

func TestListByPriorityUseCase_Execute_BucketsBySeverity(t *testing.T) {
	complaints := []*complaint.Complaint{
		scoredComplaint(t, 1, 95),
		scoredComplaint(t, 2, 82),
		scoredComplaint(t, 3, 70),
		scoredComplaint(t, 4, 45),
		scoredComplaint(t, 5, 10),
	}

	mockRepo := &mockComplaintRepository{
		ListFunc: func(ctx context.Context, filter complaint.Filter) ([]*complaint.Complaint, int64, error) {
			assert.Equal(t, "priority_score", filter.SortBy)
			assert.Equal(t, "DESC", filter.SortOrder)
			assert.Nil(t, filter.ReporterID)
			return complaints, int64(len(complaints)), nil
		},
	}

	useCase := NewListByPriorityUseCase(mockRepo, &mockLogger{})

	result, err := useCase.Execute(context.Background(), ListByPriorityQuery{
		UserID:   1,
		UserRole: "admin",
	})

	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, int64(5), result.Total)
	require.Len(t, result.Buckets, 4)

	assert.Equal(t, vo.SeverityCritical.String(), result.Buckets[0].Severity)
	assert.Len(t, result.Buckets[0].Complaints, 2)
	assert.Equal(t, vo.SeverityHigh.String(), result.Buckets[1].Severity)
	assert.Len(t, result.Buckets[1].Complaints, 1)
	assert.Equal(t, vo.SeverityMedium.String(), result.Buckets[2].Severity)
	assert.Len(t, result.Buckets[2].Complaints, 1)
	assert.Equal(t, vo.SeverityLow.String(), result.Buckets[3].Severity)
	assert.Len(t, result.Buckets[3].Complaints, 1)
}

func TestListByPriorityUseCase_Execute_EmptyBucketsPresent(t *testing.T) {
	mockRepo := &mockComplaintRepository{}

	useCase := NewListByPriorityUseCase(mockRepo, &mockLogger{})

	result, err := useCase.Execute(context.Background(), ListByPriorityQuery{
		UserID:   1,
		UserRole: "admin",
	})

	require.NoError(t, err)
	require.Len(t, result.Buckets, 4)
	for _, bucket := range result.Buckets {
		assert.NotNil(t, bucket.Complaints)
		assert.Empty(t, bucket.Complaints)
	}
}

func TestListByPriorityUseCase_Execute_CitizenScopedToOwnComplaints(t *testing.T) {
	mockRepo := &mockComplaintRepository{
		ListFunc: func(ctx context.Context, filter complaint.Filter) ([]*complaint.Complaint, int64, error) {
			require.NotNil(t, filter.ReporterID)
			assert.Equal(t, uint(3), *filter.ReporterID)
			return nil, 0, nil
		},
	}

	useCase := NewListByPriorityUseCase(mockRepo, &mockLogger{})

	_, err := useCase.Execute(context.Background(), ListByPriorityQuery{
		UserID:   3,
		UserRole: "citizen",
	})

	require.NoError(t, err)
}
