package services

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/solobooks/solobooks/internal/db/models"
)

func (s *ServiceSuite) TestCreateTaskClearsMismatchedBillingFields() {
	project := s.createProject(models.BillingTypeHourly)

	fee := decimal.RequireFromString("50.00")
	rate := decimal.RequireFromString("90.00")
	task := &models.Task{
		OwnerID:      testOwnerID,
		ProjectID:    project.ID,
		Description:  "Mixed fields",
		TaskFee:      &fee,
		OverrideRate: &rate,
	}
	s.Require().NoError(s.Tasks.Create(s.ctx, task))

	got, err := s.Tasks.Get(s.ctx, testOwnerID, task.ID)
	s.Require().NoError(err)
	s.Nil(got.TaskFee, "a task fee has no meaning on an hourly project")
	s.Require().NotNil(got.OverrideRate)
	s.True(got.OverrideRate.Equal(rate))
	s.True(got.IsBillable, "new tasks default to billable")
}

func (s *ServiceSuite) TestLogTimeOnHourlyProject() {
	project := s.createProject(models.BillingTypeHourly)
	task := s.createTask(project.ID, "Work")

	total, err := s.Tasks.LogTime(s.ctx, testOwnerID, task.ID, &models.TimeEntry{HoursWorked: 2})
	s.Require().NoError(err)
	s.InDelta(2, total, 0.001)

	total, err = s.Tasks.LogTime(s.ctx, testOwnerID, task.ID, &models.TimeEntry{HoursWorked: 1.5})
	s.Require().NoError(err)
	s.InDelta(3.5, total, 0.001)
}

func (s *ServiceSuite) TestLogTimeRejectedOffHourlyProjects() {
	project := s.createProject(models.BillingTypeFlatFee)
	task := s.createTask(project.ID, "Flat fee work")

	_, err := s.Tasks.LogTime(s.ctx, testOwnerID, task.ID, &models.TimeEntry{HoursWorked: 1})
	s.Require().ErrorIs(err, ErrNotHourlyProject)
}

func (s *ServiceSuite) TestQuickLogTimeAddsQuarterHour() {
	project := s.createProject(models.BillingTypeHourly)
	task := s.createTask(project.ID, "Work")

	total, err := s.Tasks.QuickLogTime(s.ctx, testOwnerID, task.ID)
	s.Require().NoError(err)
	s.InDelta(QuickLogHours, total, 0.001)

	total, err = s.Tasks.QuickLogTime(s.ctx, testOwnerID, task.ID)
	s.Require().NoError(err)
	s.InDelta(2*QuickLogHours, total, 0.001)
}

func (s *ServiceSuite) TestToggleCompleted() {
	project := s.createProject(models.BillingTypeHourly)
	task := &models.Task{OwnerID: testOwnerID, ProjectID: project.ID, Description: "Toggle me"}
	s.Require().NoError(s.Tasks.Create(s.ctx, task))

	completed, err := s.Tasks.ToggleCompleted(s.ctx, testOwnerID, task.ID)
	s.Require().NoError(err)
	s.True(completed)

	completed, err = s.Tasks.ToggleCompleted(s.ctx, testOwnerID, task.ID)
	s.Require().NoError(err)
	s.False(completed)
}

func (s *ServiceSuite) TestDeleteTimeEntryChecksTaskOwnership() {
	project := s.createProject(models.BillingTypeHourly)
	task := s.createTask(project.ID, "Work")
	s.logHours(task.ID, 1)

	entries, err := s.timeEntryRepo.ListByTask(s.ctx, task.ID)
	s.Require().NoError(err)
	s.Require().Len(entries, 1)

	err = s.Tasks.DeleteTimeEntry(s.ctx, testOwnerID+1, entries[0].ID)
	s.Require().ErrorIs(err, gorm.ErrRecordNotFound, "another owner must not delete the entry")

	s.Require().NoError(s.Tasks.DeleteTimeEntry(s.ctx, testOwnerID, entries[0].ID))

	entries, err = s.timeEntryRepo.ListByTask(s.ctx, task.ID)
	s.Require().NoError(err)
	s.Empty(entries)
}
