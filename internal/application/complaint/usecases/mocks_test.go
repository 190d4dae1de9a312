package usecases

import (
	"context"
	"time"

	"civicdesk/internal/domain/complaint"
	vo "civicdesk/internal/domain/complaint/valueobjects"
	"civicdesk/internal/domain/user"
	"civicdesk/internal/infrastructure/ml"
	"civicdesk/internal/shared/logger"
)

type mockComplaintRepository struct {
	SaveFunc              func(ctx context.Context, c *complaint.Complaint) error
	UpdateFunc            func(ctx context.Context, c *complaint.Complaint) error
	DeleteFunc            func(ctx context.Context, complaintID uint) error
	FindByIDFunc          func(ctx context.Context, complaintID uint) (*complaint.Complaint, error)
	FindByReferenceFunc   func(ctx context.Context, reference string) (*complaint.Complaint, error)
	ListFunc              func(ctx context.Context, filter complaint.Filter) ([]*complaint.Complaint, int64, error)
	RecentWindowFunc      func(ctx context.Context, since time.Time, limit int) ([]*complaint.Complaint, error)
	CountSameLocationFunc func(ctx context.Context, location string, excludeID uint) (int64, error)
	CountByStatusFunc     func(ctx context.Context) (map[vo.Status]int64, error)
	CountByCategoryFunc   func(ctx context.Context) (map[vo.Category]int64, error)
}

func (m *mockComplaintRepository) Save(ctx context.Context, c *complaint.Complaint) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, c)
	}
	return nil
}

func (m *mockComplaintRepository) Update(ctx context.Context, c *complaint.Complaint) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, c)
	}
	return nil
}

func (m *mockComplaintRepository) Delete(ctx context.Context, complaintID uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, complaintID)
	}
	return nil
}

func (m *mockComplaintRepository) FindByID(ctx context.Context, complaintID uint) (*complaint.Complaint, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, complaintID)
	}
	return nil, nil
}

func (m *mockComplaintRepository) FindByReference(ctx context.Context, reference string) (*complaint.Complaint, error) {
	if m.FindByReferenceFunc != nil {
		return m.FindByReferenceFunc(ctx, reference)
	}
	return nil, nil
}

func (m *mockComplaintRepository) List(ctx context.Context, filter complaint.Filter) ([]*complaint.Complaint, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, 0, nil
}

func (m *mockComplaintRepository) RecentWindow(ctx context.Context, since time.Time, limit int) ([]*complaint.Complaint, error) {
	if m.RecentWindowFunc != nil {
		return m.RecentWindowFunc(ctx, since, limit)
	}
	return nil, nil
}

func (m *mockComplaintRepository) CountSameLocation(ctx context.Context, location string, excludeID uint) (int64, error) {
	if m.CountSameLocationFunc != nil {
		return m.CountSameLocationFunc(ctx, location, excludeID)
	}
	return 0, nil
}

func (m *mockComplaintRepository) CountByStatus(ctx context.Context) (map[vo.Status]int64, error) {
	if m.CountByStatusFunc != nil {
		return m.CountByStatusFunc(ctx)
	}
	return map[vo.Status]int64{}, nil
}

func (m *mockComplaintRepository) CountByCategory(ctx context.Context) (map[vo.Category]int64, error) {
	if m.CountByCategoryFunc != nil {
		return m.CountByCategoryFunc(ctx)
	}
	return map[vo.Category]int64{}, nil
}

type mockUserRepository struct {
	SaveFunc          func(ctx context.Context, u *user.User) error
	FindByIDFunc      func(ctx context.Context, userID uint) (*user.User, error)
	FindByEmailFunc   func(ctx context.Context, email string) (*user.User, error)
	ExistsByEmailFunc func(ctx context.Context, email string) (bool, error)
}

func (m *mockUserRepository) Save(ctx context.Context, u *user.User) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, u)
	}
	return nil
}

func (m *mockUserRepository) FindByID(ctx context.Context, userID uint) (*user.User, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, userID)
	}
	return nil, nil
}

func (m *mockUserRepository) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	if m.FindByEmailFunc != nil {
		return m.FindByEmailFunc(ctx, email)
	}
	return nil, nil
}

func (m *mockUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	if m.ExistsByEmailFunc != nil {
		return m.ExistsByEmailFunc(ctx, email)
	}
	return false, nil
}

type mockClassifier struct {
	ClassifyFunc func(ctx context.Context, text string) (*ml.Prediction, error)
}

func (m *mockClassifier) Classify(ctx context.Context, text string) (*ml.Prediction, error) {
	if m.ClassifyFunc != nil {
		return m.ClassifyFunc(ctx, text)
	}
	return &ml.Prediction{Category: "other", Confidence: 0}, nil
}

type mockEmbedder struct {
	EmbedFunc func(ctx context.Context, text string) ([]float32, error)
}

func (m *mockEmbedder) Embed(ctx context.Context, text string) ([]float32, error) {
	if m.EmbedFunc != nil {
		return m.EmbedFunc(ctx, text)
	}
	return nil, nil
}

type mockNotifier struct {
	SendComplaintReceivedEmailFunc func(to, reference string) error
	SendStatusChangedEmailFunc     func(to, reference, oldStatus, newStatus string) error
}

func (m *mockNotifier) SendComplaintReceivedEmail(to, reference string) error {
	if m.SendComplaintReceivedEmailFunc != nil {
		return m.SendComplaintReceivedEmailFunc(to, reference)
	}
	return nil
}

func (m *mockNotifier) SendStatusChangedEmail(to, reference, oldStatus, newStatus string) error {
	if m.SendStatusChangedEmailFunc != nil {
		return m.SendStatusChangedEmailFunc(to, reference, oldStatus, newStatus)
	}
	return nil
}

type mockPhotoRemover struct {
	RemoveFunc func(publicPath string) error
}

func (m *mockPhotoRemover) Remove(publicPath string) error {
	if m.RemoveFunc != nil {
		return m.RemoveFunc(publicPath)
	}
	return nil
}

type mockLogger struct {
	DebugwFunc func(msg string, keysAndValues ...interface{})
	InfowFunc  func(msg string, keysAndValues ...interface{})
	WarnwFunc  func(msg string, keysAndValues ...interface{})
	ErrorwFunc func(msg string, keysAndValues ...interface{})
}

func (m *mockLogger) Debugw(msg string, keysAndValues ...interface{}) {
	if m.DebugwFunc != nil {
		m.DebugwFunc(msg, keysAndValues...)
	}
}

func (m *mockLogger) Infow(msg string, keysAndValues ...interface{}) {
	if m.InfowFunc != nil {
		m.InfowFunc(msg, keysAndValues...)
	}
}

func (m *mockLogger) Warnw(msg string, keysAndValues ...interface{}) {
	if m.WarnwFunc != nil {
		m.WarnwFunc(msg, keysAndValues...)
	}
}

func (m *mockLogger) Errorw(msg string, keysAndValues ...interface{}) {
	if m.ErrorwFunc != nil {
		m.ErrorwFunc(msg, keysAndValues...)
	}
}

func (m *mockLogger) With(args ...any) logger.Interface { return m }

func (m *mockLogger) Named(name string) logger.Interface { return m }
