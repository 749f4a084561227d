// Package sessionstore keeps the edited screening collection in an embedded
// DuckDB database so an editing session can be resumed.
package sessionstore

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "github.com/duckdb/duckdb-go/v2"

	"prescreen/internal/question"
)

// MemoryPath opens a private in-memory database.
const MemoryPath = ":memory:"

// Store persists screening collections keyed by session id.
type Store struct {
	db *sql.DB
}

// Info describes the stored row of a session.
type Info struct {
	SessionID   string
	Fingerprint string
	Questions   int
	Revision    int
	UpdatedAt   time.Time
}

// Open opens (creating if needed) the database at path and applies the schema.
func Open(ctx context.Context, path string) (*Store, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, errors.New("sessionstore: path is required")
	}
	if path != MemoryPath {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("create session dir: %w", err)
		}
	}
	db, err := sql.Open("duckdb", dsnFor(path))
	if err != nil {
		return nil, fmt.Errorf("open duckdb: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping duckdb: %w", err)
	}
	if err := EnsureSchema(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}
	return &Store{db: db}, nil
}

func dsnFor(path string) string {
	if path == MemoryPath {
		return ""
	}
	return path
}

// Close releases the database.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Save writes data under sessionID. It reports false when the stored
// fingerprint already matches and nothing was written.
func (s *Store) Save(ctx context.Context, sessionID string, data question.ScreeningData) (bool, error) {
	if err := requireSession(sessionID); err != nil {
		return false, err
	}
	if err := question.Check(data); err != nil {
		return false, fmt.Errorf("save session %q: %w", sessionID, err)
	}
	canonical, err := CanonicalJSON(data)
	if err != nil {
		return false, err
	}
	fingerprint := fingerprintBytes(canonical)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("begin save: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var current string
	err = tx.QueryRowContext(ctx, `SELECT fingerprint FROM sessions WHERE session_id = ?`, sessionID).Scan(&current)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		_, err = tx.ExecContext(
			ctx,
			`INSERT INTO sessions (session_id, fingerprint, payload, question_count, revision, created_at, updated_at)
			 VALUES (?, ?, ?, ?, 1, now(), now())`,
			sessionID,
			fingerprint,
			string(canonical),
			len(data.Questions),
		)
		if err != nil {
			return false, fmt.Errorf("insert session: %w", err)
		}
	case err != nil:
		return false, fmt.Errorf("lookup session: %w", err)
	case current == fingerprint:
		return false, nil
	default:
		_, err = tx.ExecContext(
			ctx,
			`UPDATE sessions
			 SET fingerprint = ?, payload = ?, question_count = ?, revision = revision + 1, updated_at = now()
			 WHERE session_id = ?`,
			fingerprint,
			string(canonical),
			len(data.Questions),
			sessionID,
		)
		if err != nil {
			return false, fmt.Errorf("update session: %w", err)
		}
	}
	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("commit save: %w", err)
	}
	return true, nil
}

// Load returns the collection saved under sessionID. Stored data that no
// longer satisfies the collection invariants is an error.
func (s *Store) Load(ctx context.Context, sessionID string) (question.ScreeningData, bool, error) {
	if err := requireSession(sessionID); err != nil {
		return question.ScreeningData{}, false, err
	}
	var payload string
	err := s.db.QueryRowContext(ctx, `SELECT payload FROM sessions WHERE session_id = ?`, sessionID).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return question.ScreeningData{}, false, nil
	}
	if err != nil {
		return question.ScreeningData{}, false, fmt.Errorf("load session: %w", err)
	}
	var data question.ScreeningData
	if err := json.Unmarshal([]byte(payload), &data); err != nil {
		return question.ScreeningData{}, false, fmt.Errorf("decode session %q: %w", sessionID, err)
	}
	if err := question.Check(data); err != nil {
		return question.ScreeningData{}, false, fmt.Errorf("session %q: %w", sessionID, err)
	}
	return data, true, nil
}

// Info returns the stored metadata of sessionID.
func (s *Store) Info(ctx context.Context, sessionID string) (Info, bool, error) {
	if err := requireSession(sessionID); err != nil {
		return Info{}, false, err
	}
	info := Info{SessionID: sessionID}
	err := s.db.QueryRowContext(
		ctx,
		`SELECT fingerprint, question_count, revision, updated_at FROM sessions WHERE session_id = ?`,
		sessionID,
	).Scan(&info.Fingerprint, &info.Questions, &info.Revision, &info.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return Info{}, false, nil
	}
	if err != nil {
		return Info{}, false, fmt.Errorf("session info: %w", err)
	}
	return info, true, nil
}

// Delete removes sessionID. Deleting a missing session is not an error.
func (s *Store) Delete(ctx context.Context, sessionID string) error {
	if err := requireSession(sessionID); err != nil {
		return err
	}
	if _, err := s.db.ExecContext(ctx, `DELETE FROM sessions WHERE session_id = ?`, sessionID); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

func requireSession(sessionID string) error {
	if strings.TrimSpace(sessionID) == "" {
		return errors.New("sessionstore: session id is required")
	}
	return nil
}
