package database

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jackc/pgx/v5/pgxpool"

	"blog-publisher/internal/logger"
	"blog-publisher/internal/metrics"
	"blog-publisher/migrations"
)

// Tables lists the tables the application requires, parents first.
var Tables = []string{"blog", "comment"}

// ErrSchemaIncomplete is returned when required tables are absent after bootstrap.
var ErrSchemaIncomplete = errors.New("schema incomplete")

// BootstrapOptions controls how the schema is brought up.
type BootstrapOptions struct {
	// Reset rolls back every applied migration before migrating up again,
	// leaving both tables empty.
	Reset bool
}

// Bootstrap applies pending schema migrations and verifies that every table in
// Tables exists. It returns the migration version in effect afterwards.
func Bootstrap(ctx context.Context, pool *pgxpool.Pool, databaseURL string, opts BootstrapOptions) (version uint, err error) {
	mode := "migrate"
	if opts.Reset {
		mode = "reset"
	}
	defer func() { metrics.ObserveBootstrap(mode, version, err) }()

	if err := ctx.Err(); err != nil {
		return 0, err
	}

	m, err := newMigrator(databaseURL)
	if err != nil {
		return 0, err
	}
	defer func() {
		if srcErr, dbErr := m.Close(); srcErr != nil || dbErr != nil {
			logger.Warn("Failed to close migrator",
				slog.Any("source_error", srcErr),
				slog.Any("database_error", dbErr))
		}
	}()

	stop := context.AfterFunc(ctx, func() {
		select {
		case m.GracefulStop <- true:
		default:
		}
	})
	defer stop()

	if opts.Reset {
		if err := rollback(ctx, m, pool); err != nil {
			return 0, err
		}
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return 0, fmt.Errorf("apply migrations: %w", err)
	}

	version, dirty, err := m.Version()
	if err != nil {
		return 0, fmt.Errorf("read schema version: %w", err)
	}
	if dirty {
		return version, fmt.Errorf("schema version %d is dirty", version)
	}

	missing, err := CheckTables(ctx, pool)
	if err != nil {
		return version, err
	}
	if len(missing) > 0 {
		return version, fmt.Errorf("%w: missing %s", ErrSchemaIncomplete, strings.Join(missing, ", "))
	}

	logger.Info("Schema ready",
		slog.String("mode", mode),
		slog.Uint64("version", uint64(version)),
		slog.Any("tables", Tables))
	return version, nil
}

// CheckTables reports which of Tables do not exist in the current search path.
func CheckTables(ctx context.Context, pool *pgxpool.Pool) ([]string, error) {
	var missing []string
	for _, table := range Tables {
		var name *string
		if err := pool.QueryRow(ctx, `SELECT to_regclass($1)::text`, table).Scan(&name); err != nil {
			return nil, fmt.Errorf("check table %s: %w", table, err)
		}
		if name == nil {
			missing = append(missing, table)
		}
	}
	return missing, nil
}

func rollback(ctx context.Context, m *migrate.Migrate, pool *pgxpool.Pool) error {
	version, dirty, err := m.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		// Unversioned tables are invisible to Down.
		if _, err := pool.Exec(ctx, `DROP TABLE IF EXISTS comment, blog`); err != nil {
			return fmt.Errorf("drop unversioned tables: %w", err)
		}
		logger.Info("Dropped unversioned tables before reset", slog.Any("tables", Tables))
		return nil
	}
	if err != nil {
		return fmt.Errorf("read schema version: %w", err)
	}
	if dirty {
		logger.Warn("Forcing dirty schema version before reset",
			slog.Uint64("version", uint64(version)))
		if err := m.Force(int(version)); err != nil {
			return fmt.Errorf("force schema version %d: %w", version, err)
		}
	}
	if err := m.Down(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("roll back migrations: %w", err)
	}
	logger.Info("Schema rolled back", slog.Uint64("from_version", uint64(version)))
	return nil
}

func newMigrator(databaseURL string) (*migrate.Migrate, error) {
	src, err := iofs.New(migrations.FS, ".")
	if err != nil {
		return nil, fmt.Errorf("open migrations: %w", err)
	}
	m, err := migrate.NewWithSourceInstance("iofs", src, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("create migrator: %w", err)
	}
	m.Log = migrateLogger{}
	return m, nil
}

// migrateLogger routes migrate's progress output to the application logger.
type migrateLogger struct{}

func (migrateLogger) Printf(format string, v ...interface{}) {
	logger.Debug(strings.TrimSpace(fmt.Sprintf(format, v...)), slog.String("component", "migrate"))
}

func (migrateLogger) Verbose() bool {
	return false
}
