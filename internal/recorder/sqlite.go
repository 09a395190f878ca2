package recorder

import (
	"database/sql"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// SQLiteRecorder appends action events to a SQLite database.
type SQLiteRecorder struct {
	db      *sql.DB
	mu      sync.Mutex
	session string
}

// NewSQLiteRecorder opens (or creates) the SQLite database and runs migrations.
// Every recorder gets its own session id.
func NewSQLiteRecorder(dbPath string) (*SQLiteRecorder, error) {
	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create db dir: %w", err)
		}
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	r := &SQLiteRecorder{db: db, session: uuid.NewString()}
	if err := r.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	log.Printf("[INFO] sqlite recorder opened: %s", dbPath)
	return r, nil
}

func (r *SQLiteRecorder) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS actions (
			id         INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp  INTEGER NOT NULL,
			session_id TEXT NOT NULL,
			action     TEXT NOT NULL,
			symbols    TEXT,
			period     TEXT,
			outcome    TEXT,
			row_count  INTEGER,
			note       TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_actions_ts ON actions(timestamp)`,
		`CREATE INDEX IF NOT EXISTS idx_actions_session ON actions(session_id)`,
	}

	for _, s := range stmts {
		if _, err := r.db.Exec(s); err != nil {
			return fmt.Errorf("exec %q: %w", s[:40], err)
		}
	}
	return nil
}

// Session returns the id stamped on every row written by r.
func (r *SQLiteRecorder) Session() string { return r.session }

func (r *SQLiteRecorder) RecordAction(evt *ActionEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, err := r.db.Exec(`INSERT INTO actions
		(timestamp, session_id, action, symbols, period, outcome, row_count, note)
		VALUES (?,?,?,?,?,?,?,?)`,
		time.Now().Unix(), r.session, evt.Action,
		strings.Join(evt.Symbols, ","), evt.Window,
		evt.Outcome, evt.Rows, evt.Note,
	)
	return err
}

func (r *SQLiteRecorder) Close() error {
	log.Println("[INFO] closing sqlite recorder")
	return r.db.Close()
}
