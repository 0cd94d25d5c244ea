package repos

import (
	"github.com/shopspring/decimal"

	"github.com/solobooks/solobooks/internal/db/models"
)

func (s *RepoSuite) TestListCategoriesSeedsDefaultsOnce() {
	categories, err := s.Expenses.ListCategories(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(categories, len(models.DefaultExpenseCategories))

	// A second call must not duplicate the seed
	categories, err = s.Expenses.ListCategories(s.ctx)
	s.Require().NoError(err)
	s.Len(categories, len(models.DefaultExpenseCategories))
}

func (s *RepoSuite) TestExpensesOrderedByMostRecentDate() {
	project := s.createProject(models.BillingTypeHourly)
	categories, err := s.Expenses.ListCategories(s.ctx)
	s.Require().NoError(err)

	older := &models.Expense{
		OwnerID: testOwnerID, ProjectID: project.ID, CategoryID: categories[0].ID,
		Description: "Domain renewal", Amount: decimal.RequireFromString("15.00"),
	}
	s.Require().NoError(s.Expenses.Create(s.ctx, older))

	newer := &models.Expense{
		OwnerID: testOwnerID, ProjectID: project.ID, CategoryID: categories[0].ID,
		Description: "Stock photos", Amount: decimal.RequireFromString("42.50"),
		Date: older.Date.AddDate(0, 0, 1),
	}
	s.Require().NoError(s.Expenses.Create(s.ctx, newer))

	expenses, err := s.Expenses.List(s.ctx, testOwnerID, nil)
	s.Require().NoError(err)
	s.Require().Len(expenses, 2)
	s.Equal("Stock photos", expenses[0].Description)
}
