package test

import (
	"database/sql"
	"log"
	"os"
	"path/filepath"
	"runtime"

	_ "github.com/mattn/go-sqlite3"

	"todoapi/internal/adapter/database/sqlite"
)

// findProjectRoot walks up from this file until it finds go.mod, so
// migrations resolve no matter which package runs the tests.
func findProjectRoot() string {
	_, filename, _, _ := runtime.Caller(0)
	dir := filepath.Dir(filename)

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}

		parent := filepath.Dir(dir)

		if parent == dir {
			break
		}

		dir = parent
	}

	if wd, err := os.Getwd(); err == nil {
		return wd
	}

	log.Fatal("could not find project root directory")
	return ""
}

func InitTestDB() *sqlite.DB {
	sqlDB, err := sql.Open("sqlite3", ":memory:")

	if err != nil {
		log.Fatal(err)
	}

	// A second connection would see a different empty in-memory database.
	sqlDB.SetMaxOpenConns(1)

	migrationsPath := filepath.Join(findProjectRoot(), "db", "migrations")

	if err := sqlite.RunMigrations(sqlDB, migrationsPath); err != nil {
		log.Fatal(err)
	}

	return sqlite.Wrap(sqlDB)
}
