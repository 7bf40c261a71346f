// Package repomanager owns the storage backend connection and vends the
// users repository bound to it.
package repomanager

import (
	"context"

	"github.com/dmitrijs2005/credkeeper/internal/server/repositories/users"
)

// TxFunc is run by WithinTransaction with a repository bound to the
// transaction (or to the plain connection when the backend has none).
type TxFunc func(ctx context.Context, repo users.Repository) error

type RepositoryManager interface {
	Users() users.Repository
	// RunMigrations brings the schema (or indexes) up to date.
	RunMigrations(ctx context.Context) error
	Ping(ctx context.Context) error
	WithinTransaction(ctx context.Context, fn TxFunc) error
	Close(ctx context.Context) error
}
