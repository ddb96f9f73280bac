// Package sqlite stores locations, time entries and the business profile in
// a single SQLite file.
//
// Schema changes live in embedded migration files named
// NNNN_name.up.sql / NNNN_name.down.sql under migrations/sqlite3. The applied
// version is kept in the schema_migrations table.
package sqlite

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"log/slog"
	"path"
	"regexp"
	"sort"
	"strconv"

	"github.com/cmlabs-hris/timetracker-backend-go/internal/pkg/database"
)

//go:embed migrations/sqlite3/*.sql
var migrationsFS embed.FS

const migrationsDir = "migrations/sqlite3"

var reMigrationFilename = regexp.MustCompile(`^(?P<Version>\d{4})_(?P<Name>[^.]+)\.(?P<Direction>(up|down))\.sql$`)

var ErrMigrateCurrentVersionSameAsTarget = errors.New("current version is the same as target version")

// SchemaMigration represents a single database migration
type SchemaMigration struct {
	Version int
	Name    string
	Up      bool
	SQL     string
}

// MigrationRunner applies embedded migrations to a database.
type MigrationRunner struct {
	db     *database.SQLiteDB
	logger *slog.Logger
}

func NewMigrationRunner(db *database.SQLiteDB) *MigrationRunner {
	return &MigrationRunner{
		db:     db,
		logger: slog.With("component", "migrations", "driver", database.SQLiteDriver),
	}
}

// Migrate moves the schema to target. A target of -1 means the latest
// version, 0 the empty database.
func (mr *MigrationRunner) Migrate(ctx context.Context, target int) error {
	if _, err := mr.db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS schema_migrations (
		version    INTEGER PRIMARY KEY,
		applied_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`); err != nil {
		return fmt.Errorf("create schema_migrations: %w", err)
	}

	current, err := mr.CurrentVersion(ctx)
	if err != nil {
		return err
	}

	migrations, err := mr.LoadMigrations(current, target)
	if errors.Is(err, ErrMigrateCurrentVersionSameAsTarget) {
		mr.logger.Debug("Schema is up to date", "version", current)
		return nil
	}
	if err != nil {
		return err
	}

	for _, m := range migrations {
		if err := mr.apply(ctx, m); err != nil {
			return fmt.Errorf("migration %04d_%s: %w", m.Version, m.Name, err)
		}
		mr.logger.Info("Applied migration", "version", m.Version, "name", m.Name, "up", m.Up)
	}
	return nil
}

func (mr *MigrationRunner) apply(ctx context.Context, m SchemaMigration) error {
	tx, err := mr.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, m.SQL); err != nil {
		return err
	}
	if m.Up {
		_, err = tx.ExecContext(ctx, `INSERT INTO schema_migrations (version) VALUES (?)`, m.Version)
	} else {
		_, err = tx.ExecContext(ctx, `DELETE FROM schema_migrations WHERE version = ?`, m.Version)
	}
	if err != nil {
		return err
	}
	return tx.Commit()
}

// CurrentVersion returns the highest applied version, 0 for a fresh database.
func (mr *MigrationRunner) CurrentVersion(ctx context.Context) (int, error) {
	var version int
	if err := mr.db.GetContext(ctx, &version, `SELECT COALESCE(MAX(version), 0) FROM schema_migrations`); err != nil {
		return -1, fmt.Errorf("read schema version: %w", err)
	}
	return version, nil
}

// LatestVersion returns the highest embedded up migration.
func (mr *MigrationRunner) LatestVersion() (int, error) {
	all, err := readMigrations()
	if err != nil {
		return -1, err
	}

	latest := 0
	for _, m := range all {
		if m.Up && m.Version > latest {
			latest = m.Version
		}
	}
	return latest, nil
}

// LoadMigrations returns the migrations between prior and target in the order
// they must run.
func (mr *MigrationRunner) LoadMigrations(prior, target int) ([]SchemaMigration, error) {
	if target == -1 {
		latest, err := mr.LatestVersion()
		if err != nil {
			return nil, fmt.Errorf("failed to get latest migration version: %w", err)
		}
		target = latest
	}

	if prior == target {
		return nil, ErrMigrateCurrentVersionSameAsTarget
	}

	all, err := readMigrations()
	if err != nil {
		return nil, err
	}

	var selected []SchemaMigration
	for _, m := range all {
		if skipMigration(m, prior, target) {
			continue
		}
		selected = append(selected, m)
	}

	if prior < target {
		sort.Slice(selected, func(i, j int) bool { return selected[i].Version < selected[j].Version })
	} else {
		sort.Slice(selected, func(i, j int) bool { return selected[i].Version > selected[j].Version })
	}

	mr.logger.Debug("Loaded migrations", "count", len(selected), "from_version", prior, "to_version", target)
	return selected, nil
}

func skipMigration(m SchemaMigration, current, target int) bool {
	if target > current {
		return !m.Up || m.Version > target || m.Version <= current
	}
	return m.Up || m.Version <= target || m.Version > current
}

func readMigrations() ([]SchemaMigration, error) {
	entries, err := migrationsFS.ReadDir(migrationsDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read migration directory: %w", err)
	}

	var out []SchemaMigration
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		m, err := parseMigrationFile(path.Join(migrationsDir, entry.Name()))
		if err != nil {
			slog.Warn("Failed to parse migration file", "file", entry.Name(), "error", err)
			continue
		}
		out = append(out, m)
	}
	return out, nil
}

// parseMigrationFile expects NNNN_description.up.sql or NNNN_description.down.sql
func parseMigrationFile(p string) (SchemaMigration, error) {
	parts := reMigrationFilename.FindStringSubmatch(path.Base(p))
	if parts == nil {
		return SchemaMigration{}, fmt.Errorf("invalid migration filename: %s", path.Base(p))
	}

	sql, err := migrationsFS.ReadFile(p)
	if err != nil {
		return SchemaMigration{}, fmt.Errorf("failed to read migration file: %w", err)
	}

	version, _ := strconv.Atoi(parts[reMigrationFilename.SubexpIndex("Version")])
	return SchemaMigration{
		Version: version,
		Name:    parts[reMigrationFilename.SubexpIndex("Name")],
		Up:      parts[reMigrationFilename.SubexpIndex("Direction")] == "up",
		SQL:     string(sql),
	}, nil
}
