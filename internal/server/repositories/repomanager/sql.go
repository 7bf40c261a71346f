package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/credkeeper/internal/dbx"
	"github.com/dmitrijs2005/credkeeper/internal/server/migrations"
	"github.com/dmitrijs2005/credkeeper/internal/server/repositories/users"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"
)

// SQLRepositoryManager serves the database/sql backends. Postgres and
// SQLite differ only in the goose dialect, the migrations directory and the
// repository constructor.
type SQLRepositoryManager struct {
	db            *sql.DB
	dialect       string
	migrationsDir string
	newUsers      func(dbx.DBTX) users.Repository
}

// NewPostgresRepositoryManager constructs a PostgreSQL-backed RepositoryManager.
func NewPostgresRepositoryManager(db *sql.DB) *SQLRepositoryManager {
	return &SQLRepositoryManager{
		db:            db,
		dialect:       "pgx",
		migrationsDir: migrations.PostgresDir,
		newUsers: func(db dbx.DBTX) users.Repository {
			return users.NewPostgresRepository(db)
		},
	}
}

// NewSQLiteRepositoryManager constructs a SQLite-backed RepositoryManager.
func NewSQLiteRepositoryManager(db *sql.DB) *SQLRepositoryManager {
	return &SQLRepositoryManager{
		db:            db,
		dialect:       "sqlite3",
		migrationsDir: migrations.SQLiteDir,
		newUsers: func(db dbx.DBTX) users.Repository {
			return users.NewSQLiteRepository(db)
		},
	}
}

// Users returns a users.Repository bound to the connection pool.
func (m *SQLRepositoryManager) Users() users.Repository {
	return m.newUsers(m.db)
}

// gooseUpContext is a seam for testing goose.UpContext.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

// RunMigrations sets up goose with the embedded migrations and runs the
// ones for this dialect.
func (m *SQLRepositoryManager) RunMigrations(ctx context.Context) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect(m.dialect); err != nil {
		return err
	}
	if err := gooseUpContext(ctx, m.db, m.migrationsDir); err != nil {
		return err
	}
	return nil
}

func (m *SQLRepositoryManager) Ping(ctx context.Context) error {
	return m.db.PingContext(ctx)
}

// WithinTransaction runs fn against a repository bound to a single
// transaction, committing when fn succeeds.
func (m *SQLRepositoryManager) WithinTransaction(ctx context.Context, fn TxFunc) error {
	return dbx.WithTx(ctx, m.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		return fn(ctx, m.newUsers(tx))
	})
}

func (m *SQLRepositoryManager) Close(context.Context) error {
	return m.db.Close()
}
