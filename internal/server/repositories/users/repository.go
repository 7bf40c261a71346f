// Package users holds the user record store: one Repository interface and
// its MongoDB, PostgreSQL, SQLite and in-memory implementations.
package users

import (
	"context"

	"github.com/dmitrijs2005/credkeeper/internal/server/models"
)

// Repository persists user records. Implementations must enforce email
// uniqueness and report a duplicate as common.ErrorAlreadyExists, and a
// missing record as common.ErrorNotFound.
type Repository interface {
	// Create stores user, filling in ID and CreatedAt.
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	// FindAll lists every user, oldest first, without passwords.
	FindAll(ctx context.Context) ([]*models.UserInfo, error)
	// DeleteAll empties the store. Used by seeding and tests only.
	DeleteAll(ctx context.Context) error
}
