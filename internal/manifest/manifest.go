// Package manifest keeps a journal of report runs in a SQLite database
// next to the generated charts. Each run records the input it consumed
// and every artifact it wrote, so successive runs over the same output
// directory stay auditable.
package manifest

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
	"github.com/spaolacci/murmur3"

	"github.com/gdpruler/benchplot/internal/errors"
)

const schemaSQL = `
CREATE TABLE IF NOT EXISTS runs (
	run_id          TEXT PRIMARY KEY,
	input_file      TEXT NOT NULL,
	record_count    INTEGER NOT NULL,
	views_generated INTEGER NOT NULL DEFAULT 0,
	views_skipped   INTEGER NOT NULL DEFAULT 0,
	started_at      TIMESTAMP NOT NULL,
	finished_at     TIMESTAMP
);

CREATE TABLE IF NOT EXISTS artifacts (
	run_id      TEXT NOT NULL REFERENCES runs(run_id),
	view        TEXT NOT NULL,
	path        TEXT NOT NULL,
	size_bytes  INTEGER NOT NULL,
	fingerprint TEXT NOT NULL,
	PRIMARY KEY (run_id, path)
);

CREATE INDEX IF NOT EXISTS idx_artifacts_view ON artifacts(view);
`

// Run identifies one report generation pass.
type Run struct {
	ID          string
	InputFile   string
	RecordCount int
	StartedAt   time.Time
}

// Artifact is one file written during a run.
type Artifact struct {
	RunID       string
	View        string
	Path        string
	SizeBytes   int64
	Fingerprint string
}

// Journal is the SQLite-backed run manifest. A single write connection
// serializes all inserts; the tool is single-process so no reader pool
// is needed.
type Journal struct {
	db     *sql.DB
	dbPath string
	mu     sync.Mutex

	insertArtifactStmt *sql.Stmt
}

// Open opens (creating if needed) the manifest database at dbPath.
func Open(dbPath string) (*Journal, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, errors.NewManifestError(errors.CodeManifestIO,
			fmt.Sprintf("opening %s", dbPath), err)
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, errors.NewManifestError(errors.CodeManifestIO,
			fmt.Sprintf("initializing schema in %s", dbPath), err)
	}

	stmt, err := db.Prepare(`
		INSERT OR REPLACE INTO artifacts (run_id, view, path, size_bytes, fingerprint)
		VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		db.Close()
		return nil, errors.NewManifestError(errors.CodeManifestIO,
			"preparing artifact insert", err)
	}

	return &Journal{db: db, dbPath: dbPath, insertArtifactStmt: stmt}, nil
}

// BeginRun registers a new run and returns it with a fresh ID.
func (j *Journal) BeginRun(ctx context.Context, inputFile string, recordCount int) (*Run, error) {
	j.mu.Lock()
	defer j.mu.Unlock()

	run := &Run{
		ID:          uuid.New().String(),
		InputFile:   inputFile,
		RecordCount: recordCount,
		StartedAt:   time.Now().UTC(),
	}

	_, err := j.db.ExecContext(ctx, `
		INSERT INTO runs (run_id, input_file, record_count, started_at)
		VALUES (?, ?, ?, ?)`,
		run.ID, run.InputFile, run.RecordCount, run.StartedAt)
	if err != nil {
		return nil, errors.NewManifestError(errors.CodeManifestIO,
			fmt.Sprintf("registering run %s", run.ID), err)
	}
	return run, nil
}

// FinishRun records the run's view counts and completion time.
func (j *Journal) FinishRun(ctx context.Context, runID string, generated, skipped int) error {
	j.mu.Lock()
	defer j.mu.Unlock()

	res, err := j.db.ExecContext(ctx, `
		UPDATE runs SET views_generated = ?, views_skipped = ?, finished_at = ?
		WHERE run_id = ?`,
		generated, skipped, time.Now().UTC(), runID)
	if err != nil {
		return errors.NewManifestError(errors.CodeManifestIO,
			fmt.Sprintf("finishing run %s", runID), err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return errors.NewManifestError(errors.CodeManifestIO,
			fmt.Sprintf("finishing run %s: unknown run", runID), nil)
	}
	return nil
}

// RecordArtifact fingerprints the file at path and registers it under
// the run. The fingerprint is the 64-bit murmur3 hash of the file
// content.
func (j *Journal) RecordArtifact(ctx context.Context, runID, view, path string) (*Artifact, error) {
	size, fingerprint, err := fingerprintFile(path)
	if err != nil {
		return nil, errors.NewManifestError(errors.CodeManifestIO,
			fmt.Sprintf("fingerprinting %s", path), err)
	}

	art := &Artifact{
		RunID:       runID,
		View:        view,
		Path:        path,
		SizeBytes:   size,
		Fingerprint: fingerprint,
	}

	j.mu.Lock()
	defer j.mu.Unlock()

	_, err = j.insertArtifactStmt.ExecContext(ctx,
		art.RunID, art.View, art.Path, art.SizeBytes, art.Fingerprint)
	if err != nil {
		return nil, errors.NewManifestError(errors.CodeManifestIO,
			fmt.Sprintf("recording artifact %s", path), err)
	}
	return art, nil
}

// Runs returns all recorded runs, most recent first.
func (j *Journal) Runs(ctx context.Context) ([]*Run, error) {
	rows, err := j.db.QueryContext(ctx, `
		SELECT run_id, input_file, record_count, started_at
		FROM runs ORDER BY started_at DESC, run_id`)
	if err != nil {
		return nil, errors.NewManifestError(errors.CodeManifestIO,
			"listing runs", err)
	}
	defer rows.Close()

	var out []*Run
	for rows.Next() {
		r := &Run{}
		if err := rows.Scan(&r.ID, &r.InputFile, &r.RecordCount, &r.StartedAt); err != nil {
			return nil, errors.NewManifestError(errors.CodeManifestIO,
				"scanning run row", err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// Artifacts returns the artifacts recorded for a run, ordered by view
// then path.
func (j *Journal) Artifacts(ctx context.Context, runID string) ([]*Artifact, error) {
	rows, err := j.db.QueryContext(ctx, `
		SELECT run_id, view, path, size_bytes, fingerprint
		FROM artifacts WHERE run_id = ?
		ORDER BY view, path`, runID)
	if err != nil {
		return nil, errors.NewManifestError(errors.CodeManifestIO,
			fmt.Sprintf("listing artifacts for run %s", runID), err)
	}
	defer rows.Close()

	var out []*Artifact
	for rows.Next() {
		a := &Artifact{}
		if err := rows.Scan(&a.RunID, &a.View, &a.Path, &a.SizeBytes, &a.Fingerprint); err != nil {
			return nil, errors.NewManifestError(errors.CodeManifestIO,
				"scanning artifact row", err)
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

// Close closes the manifest database.
func (j *Journal) Close() error {
	j.mu.Lock()
	defer j.mu.Unlock()

	if j.insertArtifactStmt != nil {
		j.insertArtifactStmt.Close()
	}
	return j.db.Close()
}

func fingerprintFile(path string) (int64, string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, "", err
	}
	return int64(len(data)), fmt.Sprintf("%016x", murmur3.Sum64(data)), nil
}
