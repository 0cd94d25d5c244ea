package models

import (
	"fmt"

	"gorm.io/gorm"
)

// Client represents a customer that projects are billed to
type Client struct {
	gorm.Model
	OwnerID  uint      `json:"-" gorm:"not null;index"`
	Name     string    `json:"name" gorm:"not null;index"`
	Email    string    `json:"email" gorm:""`
	Projects []Project `json:"projects,omitempty" gorm:"foreignKey:ClientID"`
}

// Validate ensures that the client data is valid
func (c *Client) Validate() error {
	if c.Name == "" {
		return fmt.Errorf("client name cannot be empty")
	}
	return nil
}

// BeforeCreate is a GORM hook that runs before creating a new client
func (c *Client) BeforeCreate(_ *gorm.DB) error {
	return c.Validate()
}
