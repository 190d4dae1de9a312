package migration

import (
	"fmt"

	"github.com/pressly/goose/v3"
	"gorm.io/gorm"

	"civicdesk/internal/shared/logger"
)

// GooseStrategy runs SQL migrations from a scripts directory using goose.
type GooseStrategy struct {
	scriptsPath string
	dialect     string
	logger      logger.Interface
}

func NewGooseStrategy(scriptsPath, driver string, log logger.Interface) *GooseStrategy {
	dialect := "sqlite3"
	if driver == "mysql" {
		dialect = "mysql"
	}
	return &GooseStrategy{
		scriptsPath: scriptsPath,
		dialect:     dialect,
		logger:      log.With("component", "migration.goose"),
	}
}

// Migrate runs all pending up migrations.
func (s *GooseStrategy) Migrate(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	if err := goose.SetDialect(s.dialect); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	currentVersion, err := goose.GetDBVersion(sqlDB)
	if err != nil {
		return fmt.Errorf("failed to get current version: %w", err)
	}

	s.logger.Infow("starting goose migration",
		"scripts_path", s.scriptsPath, "current_version", currentVersion)

	if err := goose.Up(sqlDB, s.scriptsPath); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	finalVersion, err := goose.GetDBVersion(sqlDB)
	if err != nil {
		return fmt.Errorf("failed to get final version: %w", err)
	}

	s.logger.Infow("migration completed",
		"from_version", currentVersion, "to_version", finalVersion)

	return nil
}

// MigrateDown rolls back the given number of migrations.
func (s *GooseStrategy) MigrateDown(db *gorm.DB, steps int) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	if err := goose.SetDialect(s.dialect); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	for i := 0; i < steps; i++ {
		if err := goose.Down(sqlDB, s.scriptsPath); err != nil {
			return fmt.Errorf("failed to rollback migration: %w", err)
		}
	}

	return nil
}

// GetVersion returns the current migration version.
func (s *GooseStrategy) GetVersion(db *gorm.DB) (int64, error) {
	sqlDB, err := db.DB()
	if err != nil {
		return 0, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	if err := goose.SetDialect(s.dialect); err != nil {
		return 0, fmt.Errorf("failed to set goose dialect: %w", err)
	}

	return goose.GetDBVersion(sqlDB)
}

// Status prints the status of all migrations.
func (s *GooseStrategy) Status(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	if err := goose.SetDialect(s.dialect); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	return goose.Status(sqlDB, s.scriptsPath)
}

// Create generates a new pair of timestamped SQL migration files.
func (s *GooseStrategy) Create(name string) error {
	if err := goose.SetDialect(s.dialect); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	return goose.Create(nil, s.scriptsPath, name, "sql")
}
