package repos

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/solobooks/solobooks/internal/db"
	"github.com/solobooks/solobooks/internal/db/models"
)

const testOwnerID uint = 1

// RepoSuite runs repository tests against a fresh in-memory database per test
type RepoSuite struct {
	suite.Suite

	ctx context.Context
	DB  *gorm.DB

	Users       *UserRepository
	Clients     *ClientRepository
	Projects    *ProjectRepository
	Tasks       *TaskRepository
	TimeEntries *TimeEntryRepository
	Invoices    *InvoiceRepository
	Expenses    *ExpenseRepository
}

// SetupTest opens a fresh in-memory database before every test
func (s *RepoSuite) SetupTest() {
	s.ctx = context.Background()

	database, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	s.Require().NoError(err, "failed to open database")

	// A second pooled connection would see its own empty in-memory database
	sqlDB, err := database.DB()
	s.Require().NoError(err)
	sqlDB.SetMaxOpenConns(1)

	s.Require().NoError(db.Migrate(database), "failed to run migrations")
	s.DB = database

	s.Users = NewUserRepository(database)
	s.Clients = NewClientRepository(database)
	s.Projects = NewProjectRepository(database)
	s.Tasks = NewTaskRepository(database)
	s.TimeEntries = NewTimeEntryRepository(database)
	s.Invoices = NewInvoiceRepository(database)
	s.Expenses = NewExpenseRepository(database)
}

// TearDownTest closes the database after every test
func (s *RepoSuite) TearDownTest() {
	if s.DB != nil {
		sqlDB, err := s.DB.DB()
		if err == nil && sqlDB != nil {
			_ = sqlDB.Close()
		}
	}
}

// createProject persists a client and a project for it
func (s *RepoSuite) createProject(billingType models.BillingType) *models.Project {
	client := &models.Client{OwnerID: testOwnerID, Name: "Acme Corp"}
	s.Require().NoError(s.Clients.Create(s.ctx, client))

	project := &models.Project{
		OwnerID:     testOwnerID,
		ClientID:    client.ID,
		Title:       "Test Project",
		BillingType: billingType,
		HourlyRate:  decimal.RequireFromString("100.00"),
	}
	s.Require().NoError(s.Projects.Create(s.ctx, project))
	return project
}

// createTask persists a completed, billable task on the project
func (s *RepoSuite) createTask(projectID uint, description string) *models.Task {
	task := &models.Task{
		OwnerID:     testOwnerID,
		ProjectID:   projectID,
		Description: description,
		IsCompleted: true,
		IsBillable:  true,
	}
	s.Require().NoError(s.Tasks.Create(s.ctx, task))
	return task
}

func TestRepoSuite(t *testing.T) {
	suite.Run(t, new(RepoSuite))
}
