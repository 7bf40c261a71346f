package users

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/credkeeper/internal/common"
	"github.com/dmitrijs2005/credkeeper/internal/server/models"
)

// UnavailableRepository fails every call. The server uses it in development
// mode when the initial connection to the real store could not be made.
type UnavailableRepository struct {
	cause error
}

func NewUnavailableRepository(cause error) *UnavailableRepository {
	return &UnavailableRepository{cause: cause}
}

func (r *UnavailableRepository) err() error {
	return fmt.Errorf("%w: %v", common.ErrorStorageUnavailable, r.cause)
}

func (r *UnavailableRepository) Create(context.Context, *models.User) (*models.User, error) {
	return nil, r.err()
}

func (r *UnavailableRepository) GetUserByEmail(context.Context, string) (*models.User, error) {
	return nil, r.err()
}

func (r *UnavailableRepository) FindAll(context.Context) ([]*models.UserInfo, error) {
	return nil, r.err()
}

func (r *UnavailableRepository) DeleteAll(context.Context) error {
	return r.err()
}
