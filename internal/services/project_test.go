package services

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/solobooks/solobooks/internal/db/models"
)

func (s *ServiceSuite) TestCreateProjectZeroesMismatchedRates() {
	client := &models.Client{OwnerID: testOwnerID, Name: "Acme Corp"}
	s.Require().NoError(s.Clients.Create(s.ctx, client))

	project := &models.Project{
		OwnerID:       testOwnerID,
		ClientID:      client.ID,
		Title:         "Retainer Work",
		BillingType:   models.BillingTypeHourly,
		HourlyRate:    decimal.RequireFromString("95.00"),
		FlatFeeAmount: decimal.RequireFromString("2000.00"),
	}
	s.Require().NoError(s.Projects.Create(s.ctx, project))

	got, err := s.Projects.Get(s.ctx, testOwnerID, project.ID)
	s.Require().NoError(err)
	s.True(got.HourlyRate.Equal(decimal.RequireFromString("95.00")))
	s.True(got.FlatFeeAmount.IsZero(), "flat fee has no meaning on an hourly project")
}

func (s *ServiceSuite) TestCreatePerTaskProjectZeroesBothRates() {
	client := &models.Client{OwnerID: testOwnerID, Name: "Acme Corp"}
	s.Require().NoError(s.Clients.Create(s.ctx, client))

	project := &models.Project{
		OwnerID:       testOwnerID,
		ClientID:      client.ID,
		Title:         "Piece Work",
		BillingType:   models.BillingTypePerTask,
		HourlyRate:    decimal.RequireFromString("95.00"),
		FlatFeeAmount: decimal.RequireFromString("2000.00"),
	}
	s.Require().NoError(s.Projects.Create(s.ctx, project))

	got, err := s.Projects.Get(s.ctx, testOwnerID, project.ID)
	s.Require().NoError(err)
	s.True(got.HourlyRate.IsZero())
	s.True(got.FlatFeeAmount.IsZero())
}

func (s *ServiceSuite) TestUpdateTitleAndSaveNotes() {
	project := s.createProject(models.BillingTypeHourly)

	s.Require().NoError(s.Projects.UpdateTitle(s.ctx, testOwnerID, project.ID, "Renamed Project"))
	s.Require().NoError(s.Projects.SaveNotes(s.ctx, testOwnerID, project.ID, "kickoff call on Monday"))

	got, err := s.Projects.Get(s.ctx, testOwnerID, project.ID)
	s.Require().NoError(err)
	s.Equal("Renamed Project", got.Title)
	s.Equal("kickoff call on Monday", got.Notes)
}

func (s *ServiceSuite) TestUpdateTitleScopedToOwner() {
	project := s.createProject(models.BillingTypeHourly)

	err := s.Projects.UpdateTitle(s.ctx, testOwnerID+1, project.ID, "Hijacked")
	s.Require().ErrorIs(err, gorm.ErrRecordNotFound)

	got, err := s.Projects.Get(s.ctx, testOwnerID, project.ID)
	s.Require().NoError(err)
	s.Equal("Test Project", got.Title)
}

func (s *ServiceSuite) TestTaskCounts() {
	project := s.createProject(models.BillingTypeHourly)
	s.createTask(project.ID, "Done A")
	s.createTask(project.ID, "Done B")

	open := &models.Task{OwnerID: testOwnerID, ProjectID: project.ID, Description: "Open"}
	s.Require().NoError(s.Tasks.Create(s.ctx, open))

	total, completed, err := s.Projects.TaskCounts(s.ctx, testOwnerID, project.ID)
	s.Require().NoError(err)
	s.Equal(int64(3), total)
	s.Equal(int64(2), completed)
}

func (s *ServiceSuite) TestDeleteProjectRemovesTasksAndInvoices() {
	project := s.createProject(models.BillingTypeHourly)
	task := s.createTask(project.ID, "Work")
	s.logHours(task.ID, 2)

	invoice, err := s.Invoices.Generate(s.ctx, testOwnerID, project.ID)
	s.Require().NoError(err)

	s.Require().NoError(s.Projects.Delete(s.ctx, testOwnerID, project.ID))

	_, err = s.Projects.Get(s.ctx, testOwnerID, project.ID)
	s.Require().ErrorIs(err, gorm.ErrRecordNotFound)
	_, err = s.Tasks.Get(s.ctx, testOwnerID, task.ID)
	s.Require().ErrorIs(err, gorm.ErrRecordNotFound)
	_, err = s.Invoices.Get(s.ctx, testOwnerID, invoice.ID)
	s.Require().ErrorIs(err, gorm.ErrRecordNotFound)
}
