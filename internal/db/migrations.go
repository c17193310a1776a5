package db

import (
	"fmt"
	"io/fs"
	"path"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
	embeddedmigrations "github.com/terraincognita07/mesflow/migrations"
	"gorm.io/gorm"
)

const createSchemaMigrationsSQL = `
CREATE TABLE IF NOT EXISTS schema_migrations (
  version TEXT PRIMARY KEY,
  name TEXT NOT NULL,
  applied_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
)`

var migrationNamePattern = regexp.MustCompile(`^(\d+)_[^/]*\.sql$`)

// migration is one forward-only SQL file. Version is the numeric prefix of
// the file name and orders execution.
type migration struct {
	Version string
	Name    string
	SQL     string
}

func applyEmbeddedMigrations(database *gorm.DB) error {
	migrations, err := readMigrations(embeddedmigrations.Files)
	if err != nil {
		return err
	}
	return runMigrations(database, migrations)
}

// runMigrations applies every migration not yet recorded in
// schema_migrations, each inside its own transaction.
func runMigrations(database *gorm.DB, migrations []migration) error {
	if err := database.Exec(createSchemaMigrationsSQL).Error; err != nil {
		return fmt.Errorf("create schema_migrations table: %w", err)
	}

	var applied []string
	if err := database.Raw(`SELECT version FROM schema_migrations`).Scan(&applied).Error; err != nil {
		return fmt.Errorf("load applied migration versions: %w", err)
	}
	done := make(map[string]bool, len(applied))
	for _, version := range applied {
		done[version] = true
	}

	for _, pending := range migrations {
		if done[pending.Version] {
			continue
		}
		if err := database.Transaction(func(tx *gorm.DB) error {
			return execMigration(tx, pending)
		}); err != nil {
			return err
		}
		log.Info().Str("component", "migrations").Str("name", pending.Name).Msg("applied migration")
	}
	return nil
}

func execMigration(tx *gorm.DB, pending migration) error {
	statements := splitSQLStatements(pending.SQL)
	if len(statements) == 0 {
		return fmt.Errorf("migration %s has no SQL statements", pending.Name)
	}
	for _, statement := range statements {
		if err := tx.Exec(statement).Error; err != nil {
			return fmt.Errorf("execute migration %s statement %q: %w", pending.Name, statement, err)
		}
	}
	if err := tx.Exec(`INSERT INTO schema_migrations(version, name) VALUES (?, ?)`, pending.Version, pending.Name).Error; err != nil {
		return fmt.Errorf("record migration %s: %w", pending.Name, err)
	}
	return nil
}

// readMigrations loads the *.sql files of fsys in version order. Files
// without a numeric prefix are ignored; a repeated version is an error.
func readMigrations(fsys fs.FS) ([]migration, error) {
	names, err := fs.Glob(fsys, "*.sql")
	if err != nil {
		return nil, fmt.Errorf("list migrations: %w", err)
	}

	migrations := make([]migration, 0, len(names))
	byVersion := make(map[int]string, len(names))
	for _, name := range names {
		matches := migrationNamePattern.FindStringSubmatch(path.Base(name))
		if matches == nil {
			continue
		}
		order, err := strconv.Atoi(matches[1])
		if err != nil {
			return nil, fmt.Errorf("parse migration version from %s: %w", name, err)
		}
		if existing, ok := byVersion[order]; ok {
			return nil, fmt.Errorf("duplicate migration version %d in %s and %s", order, existing, name)
		}
		byVersion[order] = name

		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return nil, fmt.Errorf("read migration %s: %w", name, err)
		}
		migrations = append(migrations, migration{Version: matches[1], Name: name, SQL: string(content)})
	}

	sort.Slice(migrations, func(i, j int) bool {
		left, _ := strconv.Atoi(migrations[i].Version)
		right, _ := strconv.Atoi(migrations[j].Version)
		return left < right
	})
	return migrations, nil
}

func splitSQLStatements(sqlText string) []string {
	statements := make([]string, 0)
	for _, part := range strings.Split(sqlText, ";") {
		if statement := strings.TrimSpace(part); statement != "" {
			statements = append(statements, statement)
		}
	}
	return statements
}
