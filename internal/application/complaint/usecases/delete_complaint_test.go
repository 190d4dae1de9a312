package usecases

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"civicdesk/internal/domain/complaint"
	vo "civicdesk/internal/domain/complaint/valueobjects"
	apperrors "civicdesk/internal/shared/errors"
)

func TestDeleteComplaintUseCase_Execute_Success(t *testing.T) {
	existing := storedComplaint(t, 11, nil)

	deleted := false
	mockRepo := &mockComplaintRepository{
		FindByIDFunc: func(ctx context.Context, complaintID uint) (*complaint.Complaint, error) {
			return existing, nil
		},
		DeleteFunc: func(ctx context.Context, complaintID uint) error {
			assert.Equal(t, uint(11), complaintID)
			deleted = true
			return nil
		},
	}

	useCase := NewDeleteComplaintUseCase(mockRepo, &mockPhotoRemover{}, &mockLogger{})

	result, err := useCase.Execute(context.Background(), DeleteComplaintCommand{
		ComplaintID: 11,
		DeletedBy:   1,
	})

	require.NoError(t, err)
	require.NotNil(t, result)
	assert.True(t, deleted)
	assert.Equal(t, uint(11), result.ComplaintID)
	assert.Equal(t, "cmp_existing01", result.Reference)
}

func TestDeleteComplaintUseCase_Execute_RemovesPhoto(t *testing.T) {
	withPhoto, err := complaint.NewComplaint(
		"Overflowing bin behind the library",
		"Library Square",
		vo.CategoryGarbage,
		3,
	)
	require.NoError(t, err)
	require.NoError(t, withPhoto.SetID(12))
	require.NoError(t, withPhoto.SetReference("cmp_withphoto1"))
	withPhoto.SetPhotoPath("/uploads/abc.jpg")

	removedPath := ""
	mockRepo := &mockComplaintRepository{
		FindByIDFunc: func(ctx context.Context, complaintID uint) (*complaint.Complaint, error) {
			return withPhoto, nil
		},
	}
	remover := &mockPhotoRemover{
		RemoveFunc: func(publicPath string) error {
			removedPath = publicPath
			return nil
		},
	}

	useCase := NewDeleteComplaintUseCase(mockRepo, remover, &mockLogger{})

	_, err = useCase.Execute(context.Background(), DeleteComplaintCommand{ComplaintID: 12, DeletedBy: 1})

	require.NoError(t, err)
	assert.Equal(t, "/uploads/abc.jpg", removedPath)
}

func TestDeleteComplaintUseCase_Execute_PhotoRemovalFailureIsNonFatal(t *testing.T) {
	existing := storedComplaint(t, 11, nil)
	existing.SetPhotoPath("/uploads/gone.jpg")

	mockRepo := &mockComplaintRepository{
		FindByIDFunc: func(ctx context.Context, complaintID uint) (*complaint.Complaint, error) {
			return existing, nil
		},
	}
	remover := &mockPhotoRemover{
		RemoveFunc: func(publicPath string) error {
			return errors.New("disk unavailable")
		},
	}

	useCase := NewDeleteComplaintUseCase(mockRepo, remover, &mockLogger{})

	result, err := useCase.Execute(context.Background(), DeleteComplaintCommand{ComplaintID: 11, DeletedBy: 1})

	require.NoError(t, err)
	require.NotNil(t, result)
}

func TestDeleteComplaintUseCase_Execute_NotFound(t *testing.T) {
	mockRepo := &mockComplaintRepository{
		FindByIDFunc: func(ctx context.Context, complaintID uint) (*complaint.Complaint, error) {
			return nil, errors.New("complaint not found")
		},
	}

	useCase := NewDeleteComplaintUseCase(mockRepo, &mockPhotoRemover{}, &mockLogger{})

	result, err := useCase.Execute(context.Background(), DeleteComplaintCommand{ComplaintID: 404, DeletedBy: 1})

	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, apperrors.IsNotFoundError(err))
}
