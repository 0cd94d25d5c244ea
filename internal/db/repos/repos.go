// Package repos provides database repository implementations
package repos

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/solobooks/solobooks/internal/db/models"
)

// applyListOptions applies pagination and soft-delete visibility to a
// listing query
func applyListOptions(query *gorm.DB, opts *models.ListOptions) *gorm.DB {
	if opts == nil {
		return query
	}
	if opts.IncludeDeleted {
		query = query.Unscoped()
	}
	return query.Limit(opts.Limit).Offset(opts.Offset)
}

// lockForUpdate adds a row-level FOR UPDATE lock on dialects that support
// it. SQLite has a single writer, so the transaction itself is the lock
// there.
func lockForUpdate(tx *gorm.DB) *gorm.DB {
	if tx.Dialector.Name() == "sqlite" {
		return tx
	}
	return tx.Clauses(clause.Locking{Strength: "UPDATE"})
}
