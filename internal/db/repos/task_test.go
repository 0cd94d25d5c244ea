package repos

import (
	"gorm.io/gorm"

	"github.com/solobooks/solobooks/internal/db/models"
)

func (s *RepoSuite) TestListEligibleForBillingFilters() {
	project := s.createProject(models.BillingTypeHourly)

	eligible := s.createTask(project.ID, "Done and billable")

	incomplete := &models.Task{
		OwnerID: testOwnerID, ProjectID: project.ID,
		Description: "Still in progress", IsBillable: true,
	}
	s.Require().NoError(s.Tasks.Create(s.ctx, incomplete))

	nonBillable := &models.Task{
		OwnerID: testOwnerID, ProjectID: project.ID,
		Description: "Internal cleanup", IsCompleted: true, IsBillable: false,
	}
	s.Require().NoError(s.Tasks.Create(s.ctx, nonBillable))

	alreadyBilled := &models.Task{
		OwnerID: testOwnerID, ProjectID: project.ID,
		Description: "On a previous invoice", IsCompleted: true, IsBillable: true, HasBeenBilled: true,
	}
	s.Require().NoError(s.Tasks.Create(s.ctx, alreadyBilled))

	tasks, err := s.Tasks.ListEligibleForBilling(s.ctx, testOwnerID, project.ID)
	s.Require().NoError(err)
	s.Require().Len(tasks, 1)
	s.Equal(eligible.ID, tasks[0].ID)
}

func (s *RepoSuite) TestListEligibleForBillingPreloadsTimeEntries() {
	project := s.createProject(models.BillingTypeHourly)
	task := s.createTask(project.ID, "Timed work")

	s.Require().NoError(s.TimeEntries.Create(s.ctx, &models.TimeEntry{TaskID: task.ID, HoursWorked: 2}))
	s.Require().NoError(s.TimeEntries.Create(s.ctx, &models.TimeEntry{TaskID: task.ID, HoursWorked: 1.5}))

	tasks, err := s.Tasks.ListEligibleForBilling(s.ctx, testOwnerID, project.ID)
	s.Require().NoError(err)
	s.Require().Len(tasks, 1)
	s.InDelta(3.5, tasks[0].TotalHoursLogged(), 0.001)
}

func (s *RepoSuite) TestListEligibleForBillingScopedToProjectAndOwner() {
	project := s.createProject(models.BillingTypeHourly)
	other := s.createProject(models.BillingTypeHourly)
	s.createTask(other.ID, "Other project's task")

	foreign := &models.Task{
		OwnerID: testOwnerID + 1, ProjectID: project.ID,
		Description: "Someone else's task", IsCompleted: true, IsBillable: true,
	}
	s.Require().NoError(s.Tasks.Create(s.ctx, foreign))

	tasks, err := s.Tasks.ListEligibleForBilling(s.ctx, testOwnerID, project.ID)
	s.Require().NoError(err)
	s.Empty(tasks)
}

func (s *RepoSuite) TestMarkBilledAndResetBilling() {
	project := s.createProject(models.BillingTypeHourly)
	first := s.createTask(project.ID, "First")
	second := s.createTask(project.ID, "Second")

	const lineItemID uint = 7
	s.Require().NoError(s.Tasks.MarkBilled(s.ctx, testOwnerID, []uint{first.ID, second.ID}, lineItemID))

	tasks, err := s.Tasks.ListEligibleForBilling(s.ctx, testOwnerID, project.ID)
	s.Require().NoError(err)
	s.Empty(tasks, "billed tasks must leave the billable pool")

	s.Require().NoError(s.Tasks.ResetBilling(s.ctx, testOwnerID, []uint{lineItemID}))

	tasks, err = s.Tasks.ListEligibleForBilling(s.ctx, testOwnerID, project.ID)
	s.Require().NoError(err)
	s.Len(tasks, 2)
}

func (s *RepoSuite) TestMarkBilledWithNoTasksIsANoOp() {
	s.Require().NoError(s.Tasks.MarkBilled(s.ctx, testOwnerID, nil, 1))
	s.Require().NoError(s.Tasks.ResetBilling(s.ctx, testOwnerID, nil))
}

func (s *RepoSuite) TestQuantityDefaultsToOneOnCreate() {
	project := s.createProject(models.BillingTypePerTask)
	task := s.createTask(project.ID, "Defaults")
	s.Equal(1, task.Quantity)
}

func (s *RepoSuite) TestDeleteTaskRemovesTimeEntries() {
	project := s.createProject(models.BillingTypeHourly)
	task := s.createTask(project.ID, "Doomed")
	entry := &models.TimeEntry{TaskID: task.ID, HoursWorked: 1}
	s.Require().NoError(s.TimeEntries.Create(s.ctx, entry))

	s.Require().NoError(s.Tasks.Delete(s.ctx, testOwnerID, task.ID))

	_, err := s.Tasks.GetByID(s.ctx, testOwnerID, task.ID)
	s.Require().ErrorIs(err, gorm.ErrRecordNotFound)
	_, err = s.TimeEntries.GetByID(s.ctx, entry.ID)
	s.Require().ErrorIs(err, gorm.ErrRecordNotFound)
}
