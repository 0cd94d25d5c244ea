package services

import (
	"context"

	"github.com/solobooks/solobooks/internal/db/models"
	"github.com/solobooks/solobooks/internal/db/repos"
)

// Client handles client-related operations
type Client struct {
	repo *repos.ClientRepository
}

// NewClientService creates a new instance of ClientService
func NewClientService(repo *repos.ClientRepository) *Client {
	return &Client{repo: repo}
}

// Create creates a new client
func (s *Client) Create(ctx context.Context, client *models.Client) error {
	return s.repo.Create(ctx, client)
}

// Get retrieves a client by ID
func (s *Client) Get(ctx context.Context, ownerID uint, id uint) (*models.Client, error) {
	return s.repo.Get(ctx, ownerID, id)
}

// List retrieves all clients with pagination
func (s *Client) List(ctx context.Context, ownerID uint, opts *models.ListOptions) ([]models.Client, error) {
	return s.repo.List(ctx, ownerID, opts)
}

// Delete deletes a client. A client that still has projects is refused.
func (s *Client) Delete(ctx context.Context, ownerID uint, id uint) error {
	return s.repo.Delete(ctx, ownerID, id)
}
