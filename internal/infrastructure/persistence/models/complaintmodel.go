package models

import "gorm.io/datatypes"

type ComplaintModel struct {
	ID            uint           `gorm:"primaryKey"`
	Reference     string         `gorm:"uniqueIndex;size:50;not null"`
	Category      string         `gorm:"size:50;not null;index"`
	Description   string         `gorm:"type:text;not null"`
	Location      string         `gorm:"size:300;not null;index"`
	Status        string         `gorm:"size:20;not null;index"`
	PhotoPath     string         `gorm:"size:500"`
	Embedding     datatypes.JSON `gorm:"type:json"`
	PriorityScore int            `gorm:"not null;index"`
	Breakdown     datatypes.JSON `gorm:"type:json"`
	Severity      string         `gorm:"size:20;not null;index"`
	Reasoning     string         `gorm:"type:text"`
	ReporterID    uint           `gorm:"not null;index"`
	CreatedAt     int64          `gorm:"autoCreateTime:milli;not null;index"`
	UpdatedAt     int64          `gorm:"autoUpdateTime:milli;not null"`

	// Note: No foreign key constraints or associations.
	// All relationships are managed by application business logic.
}

func (ComplaintModel) TableName() string {
	return "complaints"
}
