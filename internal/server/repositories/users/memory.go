package users

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/dmitrijs2005/credkeeper/internal/common"
	"github.com/dmitrijs2005/credkeeper/internal/server/models"
	"github.com/google/uuid"
)

// MemoryRepository keeps users in process memory. It backs CI mode and tests.
type MemoryRepository struct {
	mu      sync.RWMutex
	byEmail map[string]*models.User
	ordered []*models.User
	now     func() time.Time
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		byEmail: make(map[string]*models.User),
		now:     time.Now,
	}
}

func (r *MemoryRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byEmail[user.Email]; exists {
		return nil, fmt.Errorf("%w: %s", common.ErrorAlreadyExists, user.Email)
	}

	user.ID = uuid.NewString()
	user.CreatedAt = r.now().UTC()

	stored := *user
	r.byEmail[stored.Email] = &stored
	r.ordered = append(r.ordered, &stored)

	return user, nil
}

func (r *MemoryRepository) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.byEmail[email]
	if !ok {
		return nil, common.ErrorNotFound
	}
	cp := *u
	return &cp, nil
}

func (r *MemoryRepository) FindAll(ctx context.Context) ([]*models.UserInfo, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*models.UserInfo, 0, len(r.ordered))
	for _, u := range r.ordered {
		result = append(result, u.Info())
	}
	return result, nil
}

func (r *MemoryRepository) DeleteAll(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.byEmail = make(map[string]*models.User)
	r.ordered = nil
	return nil
}
