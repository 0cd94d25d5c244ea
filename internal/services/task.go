package services

import (
	"context"
	"fmt"

	"github.com/solobooks/solobooks/internal/db/models"
	"github.com/solobooks/solobooks/internal/db/repos"
)

// ErrNotHourlyProject is returned when logging time against a task whose
// project is not billed hourly
var ErrNotHourlyProject = fmt.Errorf("time can only be logged on hourly projects")

// QuickLogHours is the increment logged by the quick-log shortcut
const QuickLogHours = 0.25

// Task handles task-related operations
type Task struct {
	repo           *repos.TaskRepository
	entries        *repos.TimeEntryRepository
	projectService *Project
}

// NewTaskService creates a new instance of TaskService
func NewTaskService(repo *repos.TaskRepository, entries *repos.TimeEntryRepository, projectService *Project) *Task {
	return &Task{
		repo:           repo,
		entries:        entries,
		projectService: projectService,
	}
}

// Create creates a new task on a project. Billing fields that do not match
// the project's billing type are cleared.
func (s *Task) Create(ctx context.Context, task *models.Task) error {
	project, err := s.projectService.Get(ctx, task.OwnerID, task.ProjectID)
	if err != nil {
		return err
	}

	switch project.BillingType {
	case models.BillingTypeHourly:
		task.TaskFee = nil
	case models.BillingTypePerTask:
		task.OverrideRate = nil
	default:
		task.TaskFee = nil
		task.OverrideRate = nil
	}
	task.IsBillable = true
	return s.repo.Create(ctx, task)
}

// Get retrieves a task by ID with its time entries
func (s *Task) Get(ctx context.Context, ownerID uint, id uint) (*models.Task, error) {
	return s.repo.GetByID(ctx, ownerID, id)
}

// ListByProject retrieves all tasks for a project with pagination
func (s *Task) ListByProject(ctx context.Context, ownerID uint, projectID uint, opts *models.ListOptions) ([]models.Task, error) {
	return s.repo.ListByProject(ctx, ownerID, projectID, opts)
}

// Update updates the task's description and billing fields
func (s *Task) Update(ctx context.Context, ownerID uint, task *models.Task) error {
	return s.repo.Update(ctx, ownerID, task)
}

// ToggleCompleted flips the completion flag of a task and returns the new value
func (s *Task) ToggleCompleted(ctx context.Context, ownerID uint, id uint) (bool, error) {
	task, err := s.repo.GetByID(ctx, ownerID, id)
	if err != nil {
		return false, err
	}
	completed := !task.IsCompleted
	if err := s.repo.SetCompleted(ctx, ownerID, id, completed); err != nil {
		return false, err
	}
	return completed, nil
}

// Delete deletes a task with its time entries
func (s *Task) Delete(ctx context.Context, ownerID uint, id uint) error {
	return s.repo.Delete(ctx, ownerID, id)
}

// LogTime records hours worked against a task on an hourly project and
// returns the task's new total
func (s *Task) LogTime(ctx context.Context, ownerID uint, taskID uint, entry *models.TimeEntry) (float64, error) {
	task, err := s.repo.GetByID(ctx, ownerID, taskID)
	if err != nil {
		return 0, err
	}
	project, err := s.projectService.Get(ctx, ownerID, task.ProjectID)
	if err != nil {
		return 0, err
	}
	if project.BillingType != models.BillingTypeHourly {
		return 0, ErrNotHourlyProject
	}

	entry.TaskID = task.ID
	if err := s.entries.Create(ctx, entry); err != nil {
		return 0, err
	}
	return task.TotalHoursLogged() + entry.HoursWorked, nil
}

// QuickLogTime records a quarter hour against a task
func (s *Task) QuickLogTime(ctx context.Context, ownerID uint, taskID uint) (float64, error) {
	return s.LogTime(ctx, ownerID, taskID, &models.TimeEntry{HoursWorked: QuickLogHours})
}

// DeleteTimeEntry deletes a time entry after checking the owning task
// belongs to the caller
func (s *Task) DeleteTimeEntry(ctx context.Context, ownerID uint, entryID uint) error {
	entry, err := s.entries.GetByID(ctx, entryID)
	if err != nil {
		return err
	}
	if _, err := s.repo.GetByID(ctx, ownerID, entry.TaskID); err != nil {
		return err
	}
	return s.entries.Delete(ctx, entryID)
}
