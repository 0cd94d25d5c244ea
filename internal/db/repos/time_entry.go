package repos

import (
	"context"

	"gorm.io/gorm"

	"github.com/solobooks/solobooks/internal/db/models"
)

// TimeEntryRepository handles database operations for time entries
type TimeEntryRepository struct {
	db *gorm.DB
}

// NewTimeEntryRepository creates a new instance of TimeEntryRepository
func NewTimeEntryRepository(db *gorm.DB) *TimeEntryRepository {
	return &TimeEntryRepository{db: db}
}

// Create creates a new time entry in the database
func (r *TimeEntryRepository) Create(ctx context.Context, entry *models.TimeEntry) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

// GetByID retrieves a time entry by ID
func (r *TimeEntryRepository) GetByID(ctx context.Context, id uint) (*models.TimeEntry, error) {
	var entry models.TimeEntry
	if err := r.db.WithContext(ctx).First(&entry, id).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}

// ListByTask retrieves all time entries for a task ordered by entry date
func (r *TimeEntryRepository) ListByTask(ctx context.Context, taskID uint) ([]models.TimeEntry, error) {
	var entries []models.TimeEntry
	err := r.db.WithContext(ctx).
		Where(models.TimeEntry{TaskID: taskID}).
		Order("entry_date").
		Find(&entries).Error
	return entries, err
}

// Delete deletes a time entry by ID
func (r *TimeEntryRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.TimeEntry{}, id).Error
}
