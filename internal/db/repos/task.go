package repos

import (
	"context"

	"gorm.io/gorm"

	"github.com/solobooks/solobooks/internal/db/models"
)

// TaskRepository handles database operations for tasks
type TaskRepository struct {
	db *gorm.DB
}

// NewTaskRepository creates a new instance of TaskRepository
func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

// WithTx returns a copy of the repository bound to the given transaction
func (r *TaskRepository) WithTx(tx *gorm.DB) *TaskRepository {
	return &TaskRepository{db: tx}
}

// Create creates a new task in the database
func (r *TaskRepository) Create(ctx context.Context, task *models.Task) error {
	return r.db.WithContext(ctx).Create(task).Error
}

// GetByID retrieves a task by ID, scoped to its owner
func (r *TaskRepository) GetByID(ctx context.Context, ownerID uint, id uint) (*models.Task, error) {
	var task models.Task
	err := r.db.WithContext(ctx).
		Where(models.Task{OwnerID: ownerID}).
		Preload("TimeEntries").
		First(&task, id).Error
	if err != nil {
		return nil, err
	}
	return &task, nil
}

// ListByProject retrieves all tasks for a specific project with pagination
func (r *TaskRepository) ListByProject(ctx context.Context, ownerID uint, projectID uint, opts *models.ListOptions) ([]models.Task, error) {
	var tasks []models.Task
	query := applyListOptions(r.db.WithContext(ctx).
		Where(models.Task{OwnerID: ownerID, ProjectID: projectID}).
		Preload("TimeEntries"), opts)
	err := query.Find(&tasks).Error
	return tasks, err
}

// ListEligibleForBilling retrieves the tasks of a project that can appear on
// a new invoice: completed, billable, and not yet billed. Rows are locked
// for update so two concurrent invoice generations cannot bill the same
// task twice.
func (r *TaskRepository) ListEligibleForBilling(ctx context.Context, ownerID uint, projectID uint) ([]models.Task, error) {
	var tasks []models.Task
	err := lockForUpdate(r.db.WithContext(ctx)).
		Where(models.Task{OwnerID: ownerID, ProjectID: projectID}).
		Where("is_completed = ? AND is_billable = ? AND has_been_billed = ?", true, true, false).
		Find(&tasks).Error
	if err != nil {
		return nil, err
	}
	// Preload separately: FOR UPDATE cannot lock a left-joined preload
	for i := range tasks {
		if err := r.db.WithContext(ctx).
			Where(models.TimeEntry{TaskID: tasks[i].ID}).
			Find(&tasks[i].TimeEntries).Error; err != nil {
			return nil, err
		}
	}
	return tasks, nil
}

// Update persists changes to an existing task
func (r *TaskRepository) Update(ctx context.Context, ownerID uint, task *models.Task) error {
	return r.db.WithContext(ctx).Model(&models.Task{}).
		Where(models.Task{Model: gorm.Model{ID: task.ID}, OwnerID: ownerID}).
		Updates(task).Error
}

// SetCompleted updates the completion flag of a task
func (r *TaskRepository) SetCompleted(ctx context.Context, ownerID uint, id uint, completed bool) error {
	return r.db.WithContext(ctx).Model(&models.Task{}).
		Where(models.Task{Model: gorm.Model{ID: id}, OwnerID: ownerID}).
		Update(models.TaskCompletedField, completed).Error
}

// MarkBilled marks tasks as billed and records the line item that bills them
func (r *TaskRepository) MarkBilled(ctx context.Context, ownerID uint, taskIDs []uint, lineItemID uint) error {
	if len(taskIDs) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Model(&models.Task{}).
		Where("owner_id = ? AND id IN ?", ownerID, taskIDs).
		Updates(map[string]interface{}{
			models.TaskBilledField:   true,
			models.TaskLineItemField: lineItemID,
		}).Error
}

// ResetBilling clears the billed flag and line item reference of every task
// billed by the given line items. Used when an invoice is deleted so its
// tasks become billable again.
func (r *TaskRepository) ResetBilling(ctx context.Context, ownerID uint, lineItemIDs []uint) error {
	if len(lineItemIDs) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Model(&models.Task{}).
		Where("owner_id = ? AND line_item_id IN ?", ownerID, lineItemIDs).
		Updates(map[string]interface{}{
			models.TaskBilledField:   false,
			models.TaskLineItemField: nil,
		}).Error
}

// Delete deletes a task by ID together with its time entries
func (r *TaskRepository) Delete(ctx context.Context, ownerID uint, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		task, err := r.WithTx(tx).GetByID(ctx, ownerID, id)
		if err != nil {
			return err
		}
		if err := tx.Where(models.TimeEntry{TaskID: task.ID}).
			Delete(&models.TimeEntry{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Task{}, task.ID).Error
	})
}
