package seed

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/dmitrijs2005/credkeeper/internal/common"
	"github.com/dmitrijs2005/credkeeper/internal/logging"
	"github.com/dmitrijs2005/credkeeper/internal/server/models"
	"github.com/dmitrijs2005/credkeeper/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/credkeeper/internal/server/repositories/users"
)

var ErrEmptyCredential = errors.New("email and password are required")

type Seeder struct {
	manager repomanager.RepositoryManager
	out     io.Writer
	logger  logging.Logger
}

func NewSeeder(m repomanager.RepositoryManager, out io.Writer, logger logging.Logger) *Seeder {
	return &Seeder{manager: m, out: out, logger: logger.With("module", "seed")}
}

// Run wipes every stored user and creates creds in their place. On the SQL
// backends the whole batch is one transaction. Created users are printed to
// the seeder's writer once the batch succeeds.
func (s *Seeder) Run(ctx context.Context, creds []Credential) ([]*models.User, error) {
	for _, c := range creds {
		if c.Email == "" || c.Password == "" {
			return nil, ErrEmptyCredential
		}
	}

	var created []*models.User
	err := s.manager.WithinTransaction(ctx, func(ctx context.Context, repo users.Repository) error {
		created = created[:0]

		if err := repo.DeleteAll(ctx); err != nil {
			return fmt.Errorf("clear users: %w", err)
		}
		s.logger.Info(ctx, "existing users removed")

		for _, c := range creds {
			u, err := repo.Create(ctx, &models.User{
				Email:    common.NormalizeEmail(c.Email),
				Password: c.Password,
			})
			if err != nil {
				return fmt.Errorf("create %s: %w", c.Email, err)
			}
			created = append(created, u)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	for _, u := range created {
		fmt.Fprintf(s.out, "created user %s (id %s)\n", u.Email, u.ID)
	}
	fmt.Fprintf(s.out, "%d test users created\n", len(created))

	return created, nil
}
