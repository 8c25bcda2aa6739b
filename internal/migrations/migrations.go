// Package migrations applies the embedded SQL schema migrations.
package migrations

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/roommate-matcher/internal/logger"
)

//go:embed sql/*.sql
var files embed.FS

// Migration is a versioned pair of up/down scripts.
type Migration struct {
	Version string // e.g. "0001"
	Name    string // e.g. "init"
	Up      string
	Down    string
}

// Status reports whether a migration has been applied.
type Status struct {
	Version   string
	Name      string
	AppliedAt *time.Time
}

const createTable = `
	CREATE TABLE IF NOT EXISTS schema_migrations (
		version    VARCHAR(32) PRIMARY KEY,
		name       VARCHAR(255) NOT NULL,
		applied_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)
`

// Load reads the embedded migrations sorted by version.
func Load() ([]Migration, error) {
	return load(files, "sql")
}

func load(fsys fs.FS, dir string) ([]Migration, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, err
	}

	byVersion := make(map[string]*Migration)
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		// <version>_<name>.<up|down>.sql
		base := strings.TrimSuffix(e.Name(), ".sql")
		stem, direction, ok := cut(base, ".")
		if !ok || (direction != "up" && direction != "down") {
			return nil, fmt.Errorf("unexpected migration file name %q", e.Name())
		}
		version, name, ok := strings.Cut(stem, "_")
		if !ok {
			return nil, fmt.Errorf("unexpected migration file name %q", e.Name())
		}

		body, err := fs.ReadFile(fsys, path.Join(dir, e.Name()))
		if err != nil {
			return nil, err
		}

		m, ok := byVersion[version]
		if !ok {
			m = &Migration{Version: version, Name: name}
			byVersion[version] = m
		}
		if direction == "up" {
			m.Up = string(body)
		} else {
			m.Down = string(body)
		}
	}

	migrations := make([]Migration, 0, len(byVersion))
	for _, m := range byVersion {
		if m.Up == "" {
			return nil, fmt.Errorf("migration %s_%s has no up script", m.Version, m.Name)
		}
		migrations = append(migrations, *m)
	}
	sort.Slice(migrations, func(i, j int) bool { return migrations[i].Version < migrations[j].Version })
	return migrations, nil
}

// cut splits s around the last instance of sep.
func cut(s, sep string) (before, after string, found bool) {
	if i := strings.LastIndex(s, sep); i >= 0 {
		return s[:i], s[i+len(sep):], true
	}
	return s, "", false
}

func applied(ctx context.Context, db *sqlx.DB) (map[string]time.Time, error) {
	if _, err := db.ExecContext(ctx, createTable); err != nil {
		return nil, fmt.Errorf("failed to create schema_migrations: %w", err)
	}

	var rows []struct {
		Version   string    `db:"version"`
		AppliedAt time.Time `db:"applied_at"`
	}
	if err := db.SelectContext(ctx, &rows, `SELECT version, applied_at FROM schema_migrations`); err != nil {
		return nil, fmt.Errorf("failed to read applied migrations: %w", err)
	}

	out := make(map[string]time.Time, len(rows))
	for _, r := range rows {
		out[r.Version] = r.AppliedAt
	}
	return out, nil
}

// Up applies every pending migration in version order and returns the applied versions.
func Up(ctx context.Context, db *sqlx.DB) ([]string, error) {
	migrations, err := Load()
	if err != nil {
		return nil, err
	}
	done, err := applied(ctx, db)
	if err != nil {
		return nil, err
	}

	var versions []string
	for _, m := range migrations {
		if _, ok := done[m.Version]; ok {
			continue
		}
		logger.Log.Infow("applying migration", "version", m.Version, "name", m.Name)
		err := inTx(ctx, db, func(tx *sqlx.Tx) error {
			if _, err := tx.ExecContext(ctx, m.Up); err != nil {
				return err
			}
			_, err := tx.ExecContext(ctx,
				`INSERT INTO schema_migrations (version, name) VALUES ($1, $2)`, m.Version, m.Name)
			return err
		})
		if err != nil {
			return versions, fmt.Errorf("migration %s_%s failed: %w", m.Version, m.Name, err)
		}
		versions = append(versions, m.Version)
	}
	return versions, nil
}

// Down reverts up to steps applied migrations, newest first, and returns the reverted versions.
func Down(ctx context.Context, db *sqlx.DB, steps int) ([]string, error) {
	migrations, err := Load()
	if err != nil {
		return nil, err
	}
	done, err := applied(ctx, db)
	if err != nil {
		return nil, err
	}

	var versions []string
	for i := len(migrations) - 1; i >= 0 && len(versions) < steps; i-- {
		m := migrations[i]
		if _, ok := done[m.Version]; !ok {
			continue
		}
		if m.Down == "" {
			return versions, fmt.Errorf("migration %s_%s has no down script", m.Version, m.Name)
		}
		logger.Log.Infow("reverting migration", "version", m.Version, "name", m.Name)
		err := inTx(ctx, db, func(tx *sqlx.Tx) error {
			if _, err := tx.ExecContext(ctx, m.Down); err != nil {
				return err
			}
			_, err := tx.ExecContext(ctx, `DELETE FROM schema_migrations WHERE version = $1`, m.Version)
			return err
		})
		if err != nil {
			return versions, fmt.Errorf("revert %s_%s failed: %w", m.Version, m.Name, err)
		}
		versions = append(versions, m.Version)
	}
	return versions, nil
}

// List returns every known migration with its applied timestamp, if any.
func List(ctx context.Context, db *sqlx.DB) ([]Status, error) {
	migrations, err := Load()
	if err != nil {
		return nil, err
	}
	done, err := applied(ctx, db)
	if err != nil {
		return nil, err
	}

	out := make([]Status, 0, len(migrations))
	for _, m := range migrations {
		s := Status{Version: m.Version, Name: m.Name}
		if at, ok := done[m.Version]; ok {
			s.AppliedAt = &at
		}
		out = append(out, s)
	}
	return out, nil
}

func inTx(ctx context.Context, db *sqlx.DB, fn func(tx *sqlx.Tx) error) error {
	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}
