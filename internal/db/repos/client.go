package repos

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/solobooks/solobooks/internal/db/models"
)

// ErrClientHasProjects is returned when deleting a client that still owns projects
var ErrClientHasProjects = fmt.Errorf("client still has projects")

// ClientRepository handles database operations for clients
type ClientRepository struct {
	db *gorm.DB
}

// NewClientRepository creates a new instance of ClientRepository
func NewClientRepository(db *gorm.DB) *ClientRepository {
	return &ClientRepository{db: db}
}

// WithTx returns a copy of the repository bound to the given transaction
func (r *ClientRepository) WithTx(tx *gorm.DB) *ClientRepository {
	return &ClientRepository{db: tx}
}

// Create creates a new client in the database
func (r *ClientRepository) Create(ctx context.Context, client *models.Client) error {
	return r.db.WithContext(ctx).Create(client).Error
}

// Get retrieves a client by ID, scoped to its owner
func (r *ClientRepository) Get(ctx context.Context, ownerID uint, id uint) (*models.Client, error) {
	var client models.Client
	err := r.db.WithContext(ctx).Where(models.Client{OwnerID: ownerID}).
		First(&client, id).Error
	if err != nil {
		return nil, err
	}
	return &client, nil
}

// List retrieves all clients for an owner ordered by name, with pagination
func (r *ClientRepository) List(ctx context.Context, ownerID uint, opts *models.ListOptions) ([]models.Client, error) {
	var clients []models.Client
	query := applyListOptions(r.db.WithContext(ctx).Where(models.Client{OwnerID: ownerID}).Order("name"), opts)
	err := query.Find(&clients).Error
	return clients, err
}

// Delete deletes a client by ID. A client that still has projects cannot
// be deleted.
func (r *ClientRepository) Delete(ctx context.Context, ownerID uint, id uint) error {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Project{}).
		Where(models.Project{OwnerID: ownerID, ClientID: id}).
		Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return ErrClientHasProjects
	}
	return r.db.WithContext(ctx).Where(models.Client{OwnerID: ownerID}).
		Delete(&models.Client{}, id).Error
}
