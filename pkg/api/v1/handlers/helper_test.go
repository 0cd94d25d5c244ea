package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"strconv"
	"testing"

	fiber "github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/solobooks/solobooks/internal/api/middleware"
	"github.com/solobooks/solobooks/internal/db"
	"github.com/solobooks/solobooks/internal/db/models"
	"github.com/solobooks/solobooks/internal/db/repos"
	"github.com/solobooks/solobooks/internal/services"
	"github.com/solobooks/solobooks/internal/types"
	"github.com/solobooks/solobooks/pkg/api/v1/handlers"
	"github.com/solobooks/solobooks/pkg/api/v1/routes"
)

const testOwnerID uint = 1

// HandlerSuite exercises the HTTP layer against a fresh in-memory database
type HandlerSuite struct {
	suite.Suite

	ctx context.Context
	DB  *gorm.DB
	App *fiber.App

	clients       *services.Client
	projects      *services.Project
	tasks         *services.Task
	taskRepo      *repos.TaskRepository
	timeEntryRepo *repos.TimeEntryRepository
}

// SetupTest wires the full stack the way cmd/main.go does
func (s *HandlerSuite) SetupTest() {
	s.ctx = context.Background()

	database, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	s.Require().NoError(err, "failed to open database")

	// A second pooled connection would see its own empty in-memory database
	sqlDB, err := database.DB()
	s.Require().NoError(err)
	sqlDB.SetMaxOpenConns(1)

	s.Require().NoError(db.Migrate(database), "failed to run migrations")
	s.DB = database

	clientRepo := repos.NewClientRepository(database)
	projectRepo := repos.NewProjectRepository(database)
	s.taskRepo = repos.NewTaskRepository(database)
	s.timeEntryRepo = repos.NewTimeEntryRepository(database)
	invoiceRepo := repos.NewInvoiceRepository(database)
	expenseRepo := repos.NewExpenseRepository(database)
	userRepo := repos.NewUserRepository(database)

	s.clients = services.NewClientService(clientRepo)
	s.projects = services.NewProjectService(projectRepo)
	s.tasks = services.NewTaskService(s.taskRepo, s.timeEntryRepo, s.projects)
	invoiceService := services.NewInvoiceService(database, invoiceRepo, s.taskRepo, projectRepo)
	expenseService := services.NewExpenseService(expenseRepo)
	userService := services.NewUserService(userRepo)
	dashboardService := services.NewDashboardService(database)

	s.App = fiber.New()
	routes.RegisterRoutes(
		s.App,
		handlers.NewClientHandler(s.clients),
		handlers.NewProjectHandler(s.projects),
		handlers.NewTaskHandler(s.tasks),
		handlers.NewInvoiceHandler(invoiceService, s.projects, s.clients),
		handlers.NewExpenseHandler(expenseService),
		handlers.NewUserHandler(userService),
		handlers.NewDashboardHandler(dashboardService),
	)
}

// TearDownTest closes the database after every test
func (s *HandlerSuite) TearDownTest() {
	if s.DB != nil {
		sqlDB, err := s.DB.DB()
		if err == nil && sqlDB != nil {
			_ = sqlDB.Close()
		}
	}
}

// request performs an in-process HTTP request as the given owner and
// decodes the response envelope
func (s *HandlerSuite) request(method, path string, body interface{}, ownerID uint) (int, types.SlugResponse) {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		s.Require().NoError(err)
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if ownerID != 0 {
		req.Header.Set(middleware.OwnerIDHeader, strconv.FormatUint(uint64(ownerID), 10))
	}

	resp, err := s.App.Test(req, -1)
	s.Require().NoError(err)
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(resp.Body)
	s.Require().NoError(err)

	var envelope types.SlugResponse
	if len(raw) > 0 {
		s.Require().NoError(json.Unmarshal(raw, &envelope), "body: %s", raw)
	}
	return resp.StatusCode, envelope
}

// decodeData re-marshals the envelope's data field into out
func (s *HandlerSuite) decodeData(envelope types.SlugResponse, out interface{}) {
	raw, err := json.Marshal(envelope.Data)
	s.Require().NoError(err)
	s.Require().NoError(json.Unmarshal(raw, out))
}

// createProject persists a client and a project for it
func (s *HandlerSuite) createProject(billingType models.BillingType) *models.Project {
	client := &models.Client{OwnerID: testOwnerID, Name: "Acme Corp"}
	s.Require().NoError(s.clients.Create(s.ctx, client))

	project := &models.Project{
		OwnerID:     testOwnerID,
		ClientID:    client.ID,
		Title:       "Test Project",
		BillingType: billingType,
	}
	switch billingType {
	case models.BillingTypeHourly:
		project.HourlyRate = decimal.RequireFromString("100.00")
	case models.BillingTypeFlatFee:
		project.FlatFeeAmount = decimal.RequireFromString("1500.00")
	}
	s.Require().NoError(s.projects.Create(s.ctx, project))
	return project
}

// createBilledTask persists a completed billable task with hours logged
func (s *HandlerSuite) createBilledTask(projectID uint, description string, hours float64) *models.Task {
	task := &models.Task{
		OwnerID:     testOwnerID,
		ProjectID:   projectID,
		Description: description,
	}
	s.Require().NoError(s.tasks.Create(s.ctx, task))
	s.Require().NoError(s.taskRepo.SetCompleted(s.ctx, testOwnerID, task.ID, true))
	if hours > 0 {
		s.Require().NoError(s.timeEntryRepo.Create(s.ctx, &models.TimeEntry{
			TaskID:      task.ID,
			HoursWorked: hours,
		}))
	}
	return task
}

func TestHandlerSuite(t *testing.T) {
	suite.Run(t, new(HandlerSuite))
}
