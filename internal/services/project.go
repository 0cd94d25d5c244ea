package services

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/solobooks/solobooks/internal/db/models"
	"github.com/solobooks/solobooks/internal/db/repos"
)

// Project handles project-related operations
type Project struct {
	repo *repos.ProjectRepository
}

// NewProjectService creates a new instance of ProjectService
func NewProjectService(repo *repos.ProjectRepository) *Project {
	return &Project{repo: repo}
}

// Create creates a new project. Only the rate field matching the billing
// type is kept; the others are zeroed so stale values can never leak into
// invoice generation.
func (s *Project) Create(ctx context.Context, project *models.Project) error {
	switch project.BillingType {
	case models.BillingTypeHourly:
		project.FlatFeeAmount = decimal.Zero
	case models.BillingTypeFlatFee:
		project.HourlyRate = decimal.Zero
	case models.BillingTypePerTask:
		project.HourlyRate = decimal.Zero
		project.FlatFeeAmount = decimal.Zero
	}
	return s.repo.Create(ctx, project)
}

// Get retrieves a project by ID
func (s *Project) Get(ctx context.Context, ownerID uint, id uint) (*models.Project, error) {
	return s.repo.Get(ctx, ownerID, id)
}

// GetWithTasks retrieves a project with its tasks and time entries
func (s *Project) GetWithTasks(ctx context.Context, ownerID uint, id uint) (*models.Project, error) {
	return s.repo.GetWithTasks(ctx, ownerID, id)
}

// List retrieves all projects with pagination
func (s *Project) List(ctx context.Context, ownerID uint, opts *models.ListOptions) ([]models.Project, error) {
	return s.repo.List(ctx, ownerID, opts)
}

// UpdateTitle renames a project
func (s *Project) UpdateTitle(ctx context.Context, ownerID uint, id uint, title string) error {
	return s.repo.UpdateField(ctx, ownerID, id, models.ProjectTitleField, title)
}

// SaveNotes replaces the project's notes
func (s *Project) SaveNotes(ctx context.Context, ownerID uint, id uint, notes string) error {
	return s.repo.UpdateField(ctx, ownerID, id, models.ProjectNotesField, notes)
}

// Delete deletes a project with its tasks and invoices
func (s *Project) Delete(ctx context.Context, ownerID uint, id uint) error {
	return s.repo.Delete(ctx, ownerID, id)
}

// TaskCounts returns the total and completed task counts for a project
func (s *Project) TaskCounts(ctx context.Context, ownerID uint, id uint) (total int64, completed int64, err error) {
	return s.repo.CountTasks(ctx, ownerID, id)
}
