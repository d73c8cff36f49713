package catalogdb

import (
	"context"
	"embed"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/pressly/goose/v3"
	"go.uber.org/zap"
	_ "modernc.org/sqlite"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

func init() {
	// modernc registers as "sqlite", which sqlx does not know uses ? binds.
	sqlx.BindDriver(DriverSQLite, sqlx.QUESTION)
}

// Open connects to the catalog database, retrying while it comes up.
func Open(ctx context.Context, driver, dsn string, logger *zap.Logger) (*sqlx.DB, error) {
	const operation = "catalogdb.Open"

	policy := backoff.NewExponentialBackOff()
	policy.MaxElapsedTime = time.Minute
	policy.MaxInterval = 10 * time.Second

	var db *sqlx.DB
	err := backoff.RetryNotify(
		func() error {
			conn, err := sqlx.ConnectContext(ctx, driver, dsn)
			if err != nil {
				return fmt.Errorf("connect: %w", err)
			}
			db = conn
			return nil
		},
		backoff.WithContext(policy, ctx),
		func(err error, next time.Duration) {
			logger.Warn("[catalog][infra] connection failed, retrying",
				zap.String("driver", driver), zap.Error(err), zap.Duration("next_attempt_in", next))
		},
	)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", operation, err)
	}

	if driver == DriverSQLite {
		// a single writer avoids SQLITE_BUSY under concurrent requests
		db.SetMaxOpenConns(1)
		if _, err := db.ExecContext(ctx, `PRAGMA foreign_keys = ON; PRAGMA busy_timeout = 5000;`); err != nil {
			db.Close()
			return nil, fmt.Errorf("%s: set sqlite pragmas: %w", operation, err)
		}
	}

	logger.Info("[catalog][infra] connected", zap.String("driver", driver))
	return db, nil
}

// Migrate applies the embedded schema and seed migrations.
func Migrate(ctx context.Context, db *sqlx.DB, driver string) error {
	dialect := "postgres"
	if driver == DriverSQLite {
		dialect = "sqlite3"
	}

	goose.SetBaseFS(migrationsFS)
	defer goose.SetBaseFS(nil)

	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("set goose dialect: %w", err)
	}
	if err := goose.UpContext(ctx, db.DB, "migrations"); err != nil {
		return fmt.Errorf("run goose up migrations: %w", err)
	}
	return nil
}
