package repos

import (
	"gorm.io/gorm"

	"github.com/solobooks/solobooks/internal/db/models"
)

func (s *RepoSuite) TestDeleteClientWithProjectsIsRefused() {
	project := s.createProject(models.BillingTypeHourly)

	err := s.Clients.Delete(s.ctx, testOwnerID, project.ClientID)
	s.Require().ErrorIs(err, ErrClientHasProjects)

	_, err = s.Clients.Get(s.ctx, testOwnerID, project.ClientID)
	s.Require().NoError(err, "refused delete must not remove the client")
}

func (s *RepoSuite) TestDeleteClientWithoutProjects() {
	client := &models.Client{OwnerID: testOwnerID, Name: "Short-lived"}
	s.Require().NoError(s.Clients.Create(s.ctx, client))

	s.Require().NoError(s.Clients.Delete(s.ctx, testOwnerID, client.ID))

	_, err := s.Clients.Get(s.ctx, testOwnerID, client.ID)
	s.Require().ErrorIs(err, gorm.ErrRecordNotFound)
}

func (s *RepoSuite) TestListClientsOrderedByName() {
	for _, name := range []string{"Zeta", "Acme", "Mango"} {
		s.Require().NoError(s.Clients.Create(s.ctx, &models.Client{OwnerID: testOwnerID, Name: name}))
	}

	clients, err := s.Clients.List(s.ctx, testOwnerID, nil)
	s.Require().NoError(err)
	s.Require().Len(clients, 3)
	s.Equal("Acme", clients[0].Name)
	s.Equal("Mango", clients[1].Name)
	s.Equal("Zeta", clients[2].Name)
}

func (s *RepoSuite) TestListClientsIncludeDeleted() {
	kept := &models.Client{OwnerID: testOwnerID, Name: "Kept"}
	gone := &models.Client{OwnerID: testOwnerID, Name: "Gone"}
	s.Require().NoError(s.Clients.Create(s.ctx, kept))
	s.Require().NoError(s.Clients.Create(s.ctx, gone))
	s.Require().NoError(s.Clients.Delete(s.ctx, testOwnerID, gone.ID))

	opts := &models.ListOptions{Limit: models.DefaultLimit}
	clients, err := s.Clients.List(s.ctx, testOwnerID, opts)
	s.Require().NoError(err)
	s.Require().Len(clients, 1)
	s.Equal("Kept", clients[0].Name)

	opts.IncludeDeleted = true
	clients, err = s.Clients.List(s.ctx, testOwnerID, opts)
	s.Require().NoError(err)
	s.Require().Len(clients, 2, "soft-deleted clients must show up when asked for")
}
