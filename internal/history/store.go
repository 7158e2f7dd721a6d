// Package history keeps a SQLite log of finished downloads. Only terminal
// outcomes are stored; progress events never reach the database.
package history

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/ytget/ytgrab/internal/model"
)

const dirPerm = 0755

const schema = `
CREATE TABLE IF NOT EXISTS downloads (
	id          INTEGER PRIMARY KEY AUTOINCREMENT,
	job_id      TEXT NOT NULL,
	url         TEXT NOT NULL,
	title       TEXT,
	media_kind  TEXT NOT NULL,
	quality     TEXT NOT NULL,
	output_path TEXT,
	status      TEXT NOT NULL,
	error       TEXT,
	finished_at INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_downloads_finished_at ON downloads(finished_at);
`

// Entry is one finished download
type Entry struct {
	JobID      string
	URL        string
	Title      string
	MediaKind  model.MediaKind
	Quality    model.Quality
	OutputPath string
	Status     model.JobStatus
	Error      string
	FinishedAt time.Time
}

// EntryFromJob converts a finished job into a history entry
func EntryFromJob(job *model.Job) Entry {
	return Entry{
		JobID:      job.ID,
		URL:        job.Request.SourceURL,
		Title:      job.DisplayTitle(),
		MediaKind:  job.Request.MediaKind,
		Quality:    job.Request.Quality,
		OutputPath: job.OutputPath,
		Status:     job.Status,
		Error:      job.LastError,
		FinishedAt: job.FinishedAt,
	}
}

// Store is a SQLite-backed history
type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the history database at path
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), dirPerm); err != nil {
		return nil, fmt.Errorf("failed to create history dir: %w", err)
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open history db: %w", err)
	}
	// One writer at a time; sqlite serializes anyway
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate history db: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the database
func (s *Store) Close() error {
	return s.db.Close()
}

// Record appends a finished download
func (s *Store) Record(ctx context.Context, e Entry) error {
	if !e.Status.IsFinished() {
		return fmt.Errorf("refusing to record unfinished job %s (status %s)", e.JobID, e.Status)
	}
	if e.FinishedAt.IsZero() {
		e.FinishedAt = time.Now()
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO downloads (job_id, url, title, media_kind, quality, output_path, status, error, finished_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		e.JobID, e.URL, e.Title, string(e.MediaKind), string(e.Quality), e.OutputPath,
		string(e.Status), e.Error, e.FinishedAt.UnixNano(),
	)
	if err != nil {
		return fmt.Errorf("failed to insert history entry: %w", err)
	}
	return nil
}

// Recent returns up to limit entries, newest first
func (s *Store) Recent(ctx context.Context, limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = 50
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT job_id, url, COALESCE(title, ''), media_kind, quality, COALESCE(output_path, ''),
		        status, COALESCE(error, ''), finished_at
		 FROM downloads ORDER BY finished_at DESC, id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query history: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var (
			e                     Entry
			kind, quality, status string
			finishedAt            int64
		)
		if err := rows.Scan(&e.JobID, &e.URL, &e.Title, &kind, &quality, &e.OutputPath, &status, &e.Error, &finishedAt); err != nil {
			return nil, fmt.Errorf("failed to scan history row: %w", err)
		}
		e.MediaKind = model.MediaKind(kind)
		e.Quality = model.Quality(quality)
		e.Status = model.JobStatus(status)
		e.FinishedAt = time.Unix(0, finishedAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate history: %w", err)
	}
	return entries, nil
}
