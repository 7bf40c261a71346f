package repomanager

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/credkeeper/internal/common"
	"github.com/dmitrijs2005/credkeeper/internal/server/repositories/users"
)

// UnavailableRepositoryManager stands in for a store that could not be
// reached at startup. Everything except Close fails.
type UnavailableRepositoryManager struct {
	cause error
	users *users.UnavailableRepository
}

func NewUnavailable(cause error) *UnavailableRepositoryManager {
	return &UnavailableRepositoryManager{cause: cause, users: users.NewUnavailableRepository(cause)}
}

func (m *UnavailableRepositoryManager) err() error {
	return fmt.Errorf("%w: %v", common.ErrorStorageUnavailable, m.cause)
}

func (m *UnavailableRepositoryManager) Users() users.Repository { return m.users }

func (m *UnavailableRepositoryManager) RunMigrations(context.Context) error { return m.err() }

func (m *UnavailableRepositoryManager) Ping(context.Context) error { return m.err() }

func (m *UnavailableRepositoryManager) WithinTransaction(context.Context, TxFunc) error {
	return m.err()
}

func (m *UnavailableRepositoryManager) Close(context.Context) error { return nil }
