package repomanager

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/credkeeper/internal/filex"
	"github.com/dmitrijs2005/credkeeper/internal/server/config"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// New connects to the backend selected by cfg and verifies the connection
// with a ping. Migrations are left to the caller.
func New(ctx context.Context, cfg *config.Config) (RepositoryManager, error) {
	var (
		m   RepositoryManager
		err error
	)

	switch storage := cfg.EffectiveStorage(); storage {
	case config.StorageMemory:
		return NewMemoryRepositoryManager(), nil
	case config.StoragePostgres:
		m, err = openSQL("pgx", cfg.DatabaseDSN, NewPostgresRepositoryManager)
	case config.StorageSQLite:
		path, perr := filex.EnsureParentDir(cfg.SQLitePath)
		if perr != nil {
			return nil, perr
		}
		m, err = openSQL("sqlite", path, NewSQLiteRepositoryManager)
	case config.StorageMongo:
		m, err = openMongo(cfg.MongoURI, cfg.MongoDatabase)
	default:
		return nil, fmt.Errorf("unknown storage type %q", storage)
	}
	if err != nil {
		return nil, err
	}

	if err := m.Ping(ctx); err != nil {
		_ = m.Close(ctx)
		return nil, fmt.Errorf("ping %s: %w", cfg.EffectiveStorage(), err)
	}
	return m, nil
}

func openSQL(driver, dsn string, build func(*sql.DB) *SQLRepositoryManager) (RepositoryManager, error) {
	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", driver, err)
	}
	if driver == "sqlite" {
		// SQLite allows a single writer
		db.SetMaxOpenConns(1)
	}
	return build(db), nil
}

func openMongo(uri, database string) (RepositoryManager, error) {
	client, err := mongo.Connect(options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}
	return NewMongoRepositoryManager(client, database), nil
}
