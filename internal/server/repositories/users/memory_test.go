package users

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/dmitrijs2005/credkeeper/internal/common"
	"github.com/dmitrijs2005/credkeeper/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryRepository_CreateAndGet(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()

	created, err := repo.Create(ctx, &models.User{Email: "alice@example.com", Password: "secret"})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)

	got, err := repo.GetUserByEmail(ctx, "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, "secret", got.Password)

	// returned records are copies
	got.Password = "changed"
	again, err := repo.GetUserByEmail(ctx, "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, "secret", again.Password)
}

func TestMemoryRepository_NotFound(t *testing.T) {
	_, err := NewMemoryRepository().GetUserByEmail(context.Background(), "ghost@example.com")
	require.ErrorIs(t, err, common.ErrorNotFound)
}

func TestMemoryRepository_ConcurrentDuplicateCreate(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()

	const n = 32
	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		ok, dups int
	)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := repo.Create(ctx, &models.User{Email: "same@example.com", Password: fmt.Sprint(i)})
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				ok++
			case errors.Is(err, common.ErrorAlreadyExists):
				dups++
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 1, ok)
	assert.Equal(t, n-1, dups)

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestMemoryRepository_FindAllKeepsInsertionOrder(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()

	emails := []string{"z@example.com", "a@example.com", "m@example.com"}
	for _, e := range emails {
		_, err := repo.Create(ctx, &models.User{Email: e, Password: "pw"})
		require.NoError(t, err)
	}

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	for i, e := range emails {
		assert.Equal(t, e, all[i].Email)
	}

	require.NoError(t, repo.DeleteAll(ctx))
	all, err = repo.FindAll(ctx)
	require.NoError(t, err)
	assert.NotNil(t, all)
	assert.Empty(t, all)

	_, err = repo.Create(ctx, &models.User{Email: "z@example.com", Password: "pw"})
	require.NoError(t, err, "email must be free again after DeleteAll")
}

func TestUnavailableRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewUnavailableRepository(errors.New("connection refused"))

	_, err := repo.Create(ctx, &models.User{Email: "a@example.com"})
	assert.ErrorIs(t, err, common.ErrorStorageUnavailable)
	assert.Contains(t, err.Error(), "connection refused")

	_, err = repo.GetUserByEmail(ctx, "a@example.com")
	assert.ErrorIs(t, err, common.ErrorStorageUnavailable)

	_, err = repo.FindAll(ctx)
	assert.ErrorIs(t, err, common.ErrorStorageUnavailable)

	assert.ErrorIs(t, repo.DeleteAll(ctx), common.ErrorStorageUnavailable)
}
