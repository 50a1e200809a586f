package sqlite

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	sqlite3 "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog"
	sqldblogger "github.com/simukti/sqldb-logger"
	"github.com/simukti/sqldb-logger/logadapter/zerologadapter"

	"github.com/golang-migrate/migrate/v4"
	migratesqlite3 "github.com/golang-migrate/migrate/v4/database/sqlite3"
	_ "github.com/golang-migrate/migrate/v4/source/file"

	"todoapi/pkg/config"
)

type DB struct {
	*sql.DB
	QueryBuilder *squirrel.StatementBuilderType
}

func NewDB(cfg *config.AppConfig, logger zerolog.Logger) (*DB, error) {
	migrationDB, err := sql.Open("sqlite3", cfg.DatabasePath)

	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	if err := RunMigrations(migrationDB, cfg.MigrationsPath); err != nil {
		migrationDB.Close()
		return nil, err
	}

	migrationDB.Close()

	sqlDB := sqldblogger.OpenDriver(cfg.DatabasePath, &sqlite3.SQLiteDriver{}, zerologadapter.New(logger))

	if err := sqlDB.Ping(); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite database: %w", err)
	}

	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)

	return Wrap(sqlDB), nil
}

// Wrap attaches the query builder to an already opened connection.
// Tests use it with an in-memory database.
func Wrap(sqlDB *sql.DB) *DB {
	queryBuilder := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question)

	return &DB{
		DB:           sqlDB,
		QueryBuilder: &queryBuilder,
	}
}

func RunMigrations(db *sql.DB, migrationsPath string) error {
	driver, err := migratesqlite3.WithInstance(db, &migratesqlite3.Config{})

	if err != nil {
		return fmt.Errorf("create migration driver: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance(
		"file://"+migrationsPath,
		"sqlite3",
		driver,
	)

	if err != nil {
		return fmt.Errorf("create migration instance: %w", err)
	}

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("run migrations: %w", err)
	}

	return nil
}
