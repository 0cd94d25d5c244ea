package repos

import (
	"context"

	"gorm.io/gorm"

	"github.com/solobooks/solobooks/internal/db/models"
)

// ProjectRepository handles database operations for projects
type ProjectRepository struct {
	db *gorm.DB
}

// NewProjectRepository creates a new instance of ProjectRepository
func NewProjectRepository(db *gorm.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

// WithTx returns a copy of the repository bound to the given transaction
func (r *ProjectRepository) WithTx(tx *gorm.DB) *ProjectRepository {
	return &ProjectRepository{db: tx}
}

// Create creates a new project in the database
func (r *ProjectRepository) Create(ctx context.Context, project *models.Project) error {
	return r.db.WithContext(ctx).Create(project).Error
}

// Get retrieves a project by ID, scoped to its owner
func (r *ProjectRepository) Get(ctx context.Context, ownerID uint, id uint) (*models.Project, error) {
	var project models.Project
	err := r.db.WithContext(ctx).Where(models.Project{OwnerID: ownerID}).
		First(&project, id).Error
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// GetWithTasks retrieves a project by ID with its tasks and their time entries
func (r *ProjectRepository) GetWithTasks(ctx context.Context, ownerID uint, id uint) (*models.Project, error) {
	var project models.Project
	err := r.db.WithContext(ctx).Where(models.Project{OwnerID: ownerID}).
		Preload("Tasks.TimeEntries").
		First(&project, id).Error
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// List retrieves all projects for an owner ordered by deadline, with pagination
func (r *ProjectRepository) List(ctx context.Context, ownerID uint, opts *models.ListOptions) ([]models.Project, error) {
	var projects []models.Project
	query := applyListOptions(r.db.WithContext(ctx).Where(models.Project{OwnerID: ownerID}).Order("deadline"), opts)
	err := query.Find(&projects).Error
	return projects, err
}

// Update persists changes to an existing project
func (r *ProjectRepository) Update(ctx context.Context, ownerID uint, project *models.Project) error {
	return r.db.WithContext(ctx).Model(&models.Project{}).
		Where(models.Project{Model: gorm.Model{ID: project.ID}, OwnerID: ownerID}).
		Updates(project).Error
}

// UpdateField updates a single column of a project
func (r *ProjectRepository) UpdateField(ctx context.Context, ownerID uint, id uint, field string, value interface{}) error {
	result := r.db.WithContext(ctx).Model(&models.Project{}).
		Where(models.Project{Model: gorm.Model{ID: id}, OwnerID: ownerID}).
		Update(field, value)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Delete deletes a project by ID together with its tasks and invoices
func (r *ProjectRepository) Delete(ctx context.Context, ownerID uint, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := r.WithTx(tx).Get(ctx, ownerID, id); err != nil {
			return err
		}
		if err := tx.Where(models.Task{OwnerID: ownerID, ProjectID: id}).
			Delete(&models.Task{}).Error; err != nil {
			return err
		}
		if err := tx.Where(models.Invoice{OwnerID: ownerID, ProjectID: id}).
			Delete(&models.Invoice{}).Error; err != nil {
			return err
		}
		return tx.Where(models.Project{OwnerID: ownerID}).
			Delete(&models.Project{}, id).Error
	})
}

// CountTasks returns the total and completed task counts for a project
func (r *ProjectRepository) CountTasks(ctx context.Context, ownerID uint, id uint) (total int64, completed int64, err error) {
	err = r.db.WithContext(ctx).Model(&models.Task{}).
		Where(models.Task{OwnerID: ownerID, ProjectID: id}).
		Count(&total).Error
	if err != nil {
		return 0, 0, err
	}
	err = r.db.WithContext(ctx).Model(&models.Task{}).
		Where(models.Task{OwnerID: ownerID, ProjectID: id}).
		Where(models.TaskCompletedField+" = ?", true).
		Count(&completed).Error
	return total, completed, err
}
