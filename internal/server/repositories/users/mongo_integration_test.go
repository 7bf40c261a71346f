//go:build integration

package users

import (
	"context"
	"testing"

	"github.com/dmitrijs2005/credkeeper/internal/common"
	"github.com/dmitrijs2005/credkeeper/internal/server/models"
	"github.com/dmitrijs2005/credkeeper/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

func TestMongoRepository_Integration(t *testing.T) {
	ctx := context.Background()

	client, err := mongo.Connect(options.Client().ApplyURI(testutil.StartMongo(t)))
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Disconnect(ctx) })

	coll := client.Database("credkeeper_test").Collection(MongoCollection)
	repo := NewMongoRepository(coll)
	require.NoError(t, repo.EnsureIndexes(ctx))
	require.NoError(t, repo.EnsureIndexes(ctx), "index creation must be idempotent")

	first, err := repo.Create(ctx, &models.User{Email: "a@example.com", Password: "pw1"})
	require.NoError(t, err)
	assert.Len(t, first.ID, 24)

	_, err = repo.Create(ctx, &models.User{Email: "a@example.com", Password: "pw2"})
	require.ErrorIs(t, err, common.ErrorAlreadyExists)

	_, err = repo.Create(ctx, &models.User{Email: "b@example.com", Password: "pw3"})
	require.NoError(t, err)

	got, err := repo.GetUserByEmail(ctx, "a@example.com")
	require.NoError(t, err)
	assert.Equal(t, first.ID, got.ID)
	assert.Equal(t, "pw1", got.Password)

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "a@example.com", all[0].Email)

	// the stored document still holds the password; only the listing drops it
	raw := bson.M{}
	require.NoError(t, coll.FindOne(ctx, bson.D{{Key: "email", Value: "b@example.com"}}).Decode(&raw))
	assert.Equal(t, "pw3", raw["password"])

	require.NoError(t, repo.DeleteAll(ctx))
	_, err = repo.GetUserByEmail(ctx, "a@example.com")
	require.ErrorIs(t, err, common.ErrorNotFound)
}
