// Package index handles the persistent SQLite reference index.
//
// The index lives at <workspace>/.crossref/index.db and stores one row per
// indexed file and one row per extracted reference occurrence. It exists so
// backlink queries don't rescan the workspace; the locator in
// internal/search remains the source of truth for live, range-accurate
// results.
package index

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	_ "modernc.org/sqlite"

	"github.com/aidanlsb/crossref/internal/parser"
	"github.com/aidanlsb/crossref/internal/paths"
	"github.com/aidanlsb/crossref/internal/sqlutil"
)

// schemaVersion is bumped whenever the table layout changes; an index with
// a different version is dropped and rebuilt.
const schemaVersion = 1

// ErrFileNotIndexed indicates the requested source file is not in the index.
var ErrFileNotIndexed = errors.New("file not indexed")

// Database is the SQLite index handle.
type Database struct {
	db *sql.DB
}

// DB returns the underlying sql.DB for advanced queries.
func (d *Database) DB() *sql.DB {
	return d.db
}

// Open opens or creates the index for a workspace.
func Open(workspacePath string) (*Database, error) {
	dbDir := filepath.Join(workspacePath, ".crossref")
	if err := os.MkdirAll(dbDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create .crossref directory: %w", err)
	}

	db, err := sql.Open("sqlite", filepath.Join(dbDir, "index.db"))
	if err != nil {
		return nil, fmt.Errorf("failed to open index: %w", err)
	}

	d := &Database{db: db}
	if err := d.initialize(); err != nil {
		db.Close()
		return nil, err
	}
	return d, nil
}

// OpenInMemory opens an in-memory index, used by tests.
func OpenInMemory() (*Database, error) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, err
	}
	d := &Database{db: db}
	if err := d.initialize(); err != nil {
		db.Close()
		return nil, err
	}
	return d, nil
}

// Close closes the index.
func (d *Database) Close() error {
	return d.db.Close()
}

func (d *Database) initialize() error {
	if _, err := d.db.Exec(`
		CREATE TABLE IF NOT EXISTS meta (
			key   TEXT PRIMARY KEY,
			value TEXT NOT NULL
		)`); err != nil {
		return fmt.Errorf("failed to create meta table: %w", err)
	}

	var stored string
	err := d.db.QueryRow(`SELECT value FROM meta WHERE key = 'schema_version'`).Scan(&stored)
	switch {
	case err == sql.ErrNoRows:
		// Fresh database.
	case err != nil:
		return fmt.Errorf("failed to read schema version: %w", err)
	case stored != fmt.Sprint(schemaVersion):
		if _, err := d.db.Exec(`DROP TABLE IF EXISTS refs; DROP TABLE IF EXISTS files`); err != nil {
			return fmt.Errorf("failed to drop outdated schema: %w", err)
		}
	}

	_, err = d.db.Exec(`
		CREATE TABLE IF NOT EXISTS files (
			path  TEXT PRIMARY KEY,
			mtime INTEGER NOT NULL DEFAULT 0
		);
		CREATE TABLE IF NOT EXISTS refs (
			source_path TEXT NOT NULL,
			target      TEXT NOT NULL,
			target_raw  TEXT NOT NULL,
			label       TEXT NOT NULL DEFAULT '',
			line        INTEGER NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_refs_target ON refs(target);
		CREATE INDEX IF NOT EXISTS idx_refs_source ON refs(source_path);
		INSERT OR REPLACE INTO meta (key, value) VALUES ('schema_version', '` + fmt.Sprint(schemaVersion) + `');
	`)
	if err != nil {
		return fmt.Errorf("failed to initialize schema: %w", err)
	}
	return nil
}

// canonicalTarget normalizes a written target for index matching:
// forward slashes, no leading slash, no target extension, lowercase.
func canonicalTarget(target string) string {
	t := paths.NormalizeSlashes(strings.TrimSpace(target))
	t = paths.TrimLeadingSlash(t)
	t = paths.StripTargetExt(t)
	return strings.ToLower(t)
}

// IndexDocument replaces the indexed state of one file: its row in files
// and every reference extracted from it. Runs in one transaction.
func (d *Database) IndexDocument(path string, refs []parser.Reference, mtime int64) error {
	tx, err := d.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`INSERT OR REPLACE INTO files (path, mtime) VALUES (?, ?)`, path, mtime); err != nil {
		return fmt.Errorf("failed to upsert file: %w", err)
	}
	if _, err := tx.Exec(`DELETE FROM refs WHERE source_path = ?`, path); err != nil {
		return fmt.Errorf("failed to clear old refs: %w", err)
	}

	stmt, err := tx.Prepare(`INSERT INTO refs (source_path, target, target_raw, label, line) VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare ref insert: %w", err)
	}
	defer stmt.Close()

	for _, ref := range refs {
		if _, err := stmt.Exec(path, canonicalTarget(ref.Target), ref.Target, ref.Label, ref.Line); err != nil {
			return fmt.Errorf("failed to insert ref: %w", err)
		}
	}

	return tx.Commit()
}

// Backlink is one indexed reference occurrence pointing at a target.
type Backlink struct {
	SourcePath string
	TargetRaw  string
	Label      string
	Line       int
}

// Backlinks returns every indexed reference to target, ordered by source
// path then line. A path-qualified target also matches references written
// with its bare basename, since short refs resolve by basename.
func (d *Database) Backlinks(target string) ([]Backlink, error) {
	canonical := canonicalTarget(target)
	short := canonicalTarget(paths.Basename(target))

	rows, err := d.db.Query(`
		SELECT source_path, target_raw, label, line
		FROM refs
		WHERE target = ? OR target = ?
		ORDER BY source_path, line`, canonical, short)
	if err != nil {
		return nil, fmt.Errorf("failed to query backlinks: %w", err)
	}

	return scanBacklinks(rows)
}

// Outgoing returns every indexed reference written in sourcePath.
func (d *Database) Outgoing(sourcePath string) ([]Backlink, error) {
	rows, err := d.db.Query(`
		SELECT source_path, target_raw, label, line
		FROM refs
		WHERE source_path = ?
		ORDER BY line`, sourcePath)
	if err != nil {
		return nil, fmt.Errorf("failed to query outgoing refs: %w", err)
	}

	return scanBacklinks(rows)
}

func scanBacklinks(rows *sql.Rows) ([]Backlink, error) {
	return sqlutil.ScanRows(rows, func(rows *sql.Rows) (Backlink, error) {
		var b Backlink
		err := rows.Scan(&b.SourcePath, &b.TargetRaw, &b.Label, &b.Line)
		return b, err
	})
}

// RemoveFile removes one file and its references from the index.
func (d *Database) RemoveFile(path string) error {
	tx, err := d.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM refs WHERE source_path = ?`, path); err != nil {
		return fmt.Errorf("failed to delete refs: %w", err)
	}
	if _, err := tx.Exec(`DELETE FROM files WHERE path = ?`, path); err != nil {
		return fmt.Errorf("failed to delete file: %w", err)
	}
	return tx.Commit()
}

// AllFilePaths returns every indexed file path.
func (d *Database) AllFilePaths() ([]string, error) {
	rows, err := d.db.Query(`SELECT path FROM files ORDER BY path`)
	if err != nil {
		return nil, err
	}

	return sqlutil.ScanRows(rows, func(rows *sql.Rows) (string, error) {
		var p string
		err := rows.Scan(&p)
		return p, err
	})
}

// RemoveDeletedFiles drops indexed files that are not in the live set and
// returns the removed paths.
func (d *Database) RemoveDeletedFiles(livePaths []string) ([]string, error) {
	var removed []string

	if len(livePaths) == 0 {
		indexed, err := d.AllFilePaths()
		if err != nil {
			return nil, err
		}
		removed = indexed
	} else {
		placeholders, args := sqlutil.InClauseArgs(livePaths)
		rows, err := d.db.Query(
			`SELECT path FROM files WHERE path NOT IN (`+placeholders+`) ORDER BY path`, args...)
		if err != nil {
			return nil, fmt.Errorf("failed to query deleted files: %w", err)
		}
		removed, err = sqlutil.ScanRows(rows, func(rows *sql.Rows) (string, error) {
			var p string
			err := rows.Scan(&p)
			return p, err
		})
		if err != nil {
			return nil, err
		}
	}

	for _, p := range removed {
		if err := d.RemoveFile(p); err != nil {
			return nil, err
		}
	}
	return removed, nil
}

// ClearAll removes all indexed data but keeps the schema.
func (d *Database) ClearAll() error {
	_, err := d.db.Exec(`DELETE FROM refs; DELETE FROM files`)
	return err
}

// Stats summarizes index contents.
type Stats struct {
	Files int
	Refs  int
}

// IndexStats returns file and reference counts.
func (d *Database) IndexStats() (*Stats, error) {
	var s Stats
	if err := d.db.QueryRow(`SELECT COUNT(*) FROM files`).Scan(&s.Files); err != nil {
		return nil, err
	}
	if err := d.db.QueryRow(`SELECT COUNT(*) FROM refs`).Scan(&s.Refs); err != nil {
		return nil, err
	}
	return &s, nil
}

// FileMtime returns the recorded mtime for an indexed file.
func (d *Database) FileMtime(path string) (int64, error) {
	var mtime int64
	err := d.db.QueryRow(`SELECT mtime FROM files WHERE path = ?`, path).Scan(&mtime)
	if err == sql.ErrNoRows {
		return 0, ErrFileNotIndexed
	}
	return mtime, err
}
