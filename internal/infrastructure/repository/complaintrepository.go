package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"civicdesk/internal/domain/complaint"
	vo "civicdesk/internal/domain/complaint/valueobjects"
	"civicdesk/internal/infrastructure/persistence/mappers"
	"civicdesk/internal/infrastructure/persistence/models"
	db "civicdesk/internal/shared/db"
)

// allowedComplaintOrderByFields defines the whitelist of allowed ORDER BY fields
// to prevent SQL injection attacks.
var allowedComplaintOrderByFields = map[string]bool{
	"id":             true,
	"reference":      true,
	"category":       true,
	"location":       true,
	"status":         true,
	"priority_score": true,
	"severity":       true,
	"reporter_id":    true,
	"created_at":     true,
	"updated_at":     true,
}

type ComplaintRepository struct {
	db     *gorm.DB
	mapper mappers.ComplaintMapper
}

func NewComplaintRepository(db *gorm.DB) *ComplaintRepository {
	return &ComplaintRepository{
		db:     db,
		mapper: mappers.NewComplaintMapper(),
	}
}

func (r *ComplaintRepository) Save(ctx context.Context, c *complaint.Complaint) error {
	model, err := r.mapper.ToModel(c)
	if err != nil {
		return err
	}
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save complaint: %w", err)
	}

	if err := c.SetID(model.ID); err != nil {
		return err
	}

	return nil
}

func (r *ComplaintRepository) Update(ctx context.Context, c *complaint.Complaint) error {
	model, err := r.mapper.ToModel(c)
	if err != nil {
		return err
	}
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.ComplaintModel{}).
		Where("id = ?", model.ID).
		Updates(model)

	if result.Error != nil {
		return fmt.Errorf("failed to update complaint: %w", result.Error)
	}

	// Note: RowsAffected may be 0 when updated values are identical to existing values.

	return nil
}

func (r *ComplaintRepository) Delete(ctx context.Context, complaintID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)
	result := tx.Delete(&models.ComplaintModel{}, complaintID)
	if result.Error != nil {
		return fmt.Errorf("failed to delete complaint: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("complaint not found")
	}
	return nil
}

func (r *ComplaintRepository) FindByID(ctx context.Context, complaintID uint) (*complaint.Complaint, error) {
	var model models.ComplaintModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		First(&model, complaintID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("complaint not found")
		}
		return nil, fmt.Errorf("failed to find complaint: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *ComplaintRepository) FindByReference(ctx context.Context, reference string) (*complaint.Complaint, error) {
	var model models.ComplaintModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("reference = ?", reference).
		First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("complaint not found")
		}
		return nil, fmt.Errorf("failed to find complaint: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *ComplaintRepository) List(
	ctx context.Context,
	filter complaint.Filter,
) ([]*complaint.Complaint, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.Model(&models.ComplaintModel{})

	if filter.Status != nil {
		query = query.Where("status = ?", filter.Status.String())
	}
	if filter.Category != nil {
		query = query.Where("category = ?", filter.Category.String())
	}
	if filter.Severity != nil {
		query = query.Where("severity = ?", filter.Severity.String())
	}
	if filter.ReporterID != nil {
		query = query.Where("reporter_id = ?", *filter.ReporterID)
	}
	if filter.Location != "" {
		query = query.Where("LOWER(location) LIKE ?", "%"+strings.ToLower(filter.Location)+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count complaints: %w", err)
	}

	// Apply sorting with whitelist validation to prevent SQL injection
	sortBy := strings.ToLower(filter.SortBy)
	if sortBy != "" && allowedComplaintOrderByFields[sortBy] {
		order := strings.ToUpper(filter.SortOrder)
		if order != "ASC" && order != "DESC" {
			order = "DESC"
		}
		query = query.Order(sortBy + " " + order)
	} else {
		query = query.Order("created_at DESC")
	}

	if filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Limit(filter.PageSize).Offset(offset)
	}

	var complaintModels []models.ComplaintModel
	if err := query.Find(&complaintModels).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list complaints: %w", err)
	}

	complaints := make([]*complaint.Complaint, len(complaintModels))
	for i, model := range complaintModels {
		c, err := r.mapper.ToDomain(&model)
		if err != nil {
			return nil, 0, err
		}
		complaints[i] = c
	}

	return complaints, total, nil
}

func (r *ComplaintRepository) RecentWindow(
	ctx context.Context,
	since time.Time,
	limit int,
) ([]*complaint.Complaint, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var complaintModels []models.ComplaintModel
	if err := tx.
		Where("created_at >= ?", since.UnixMilli()).
		Order("created_at DESC").
		Limit(limit).
		Find(&complaintModels).Error; err != nil {
		return nil, fmt.Errorf("failed to load recent complaints: %w", err)
	}

	complaints := make([]*complaint.Complaint, len(complaintModels))
	for i, model := range complaintModels {
		c, err := r.mapper.ToDomain(&model)
		if err != nil {
			return nil, err
		}
		complaints[i] = c
	}

	return complaints, nil
}

func (r *ComplaintRepository) CountSameLocation(
	ctx context.Context,
	location string,
	excludeID uint,
) (int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	query := tx.
		Model(&models.ComplaintModel{}).
		Where("LOWER(location) LIKE ?", "%"+strings.ToLower(location)+"%")
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count complaints by location: %w", err)
	}

	return count, nil
}

func (r *ComplaintRepository) CountByStatus(ctx context.Context) (map[vo.Status]int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var rows []struct {
		Status string
		Count  int64
	}
	if err := tx.
		Model(&models.ComplaintModel{}).
		Select("status, COUNT(*) as count").
		Group("status").
		Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to count complaints by status: %w", err)
	}

	counts := make(map[vo.Status]int64, len(rows))
	for _, row := range rows {
		counts[vo.Status(row.Status)] = row.Count
	}

	return counts, nil
}

func (r *ComplaintRepository) CountByCategory(ctx context.Context) (map[vo.Category]int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var rows []struct {
		Category string
		Count    int64
	}
	if err := tx.
		Model(&models.ComplaintModel{}).
		Select("category, COUNT(*) as count").
		Group("category").
		Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to count complaints by category: %w", err)
	}

	counts := make(map[vo.Category]int64, len(rows))
	for _, row := range rows {
		counts[vo.Category(row.Category)] = row.Count
	}

	return counts, nil
}
