package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"strings"
	"time"

	"todo-list/internal/errors"
	"todo-list/internal/logging"

	_ "modernc.org/sqlite"
)

// Repository defines the interface for database operations
type Repository interface {
	// Schema
	EnsureSchema(ctx context.Context) error
	TableExists(ctx context.Context) (bool, error)

	// Create operations
	CreateTask(ctx context.Context, task *Task) error

	// Read operations
	ListTasks(ctx context.Context) ([]*Task, error)

	// Update operations
	UpdateTask(ctx context.Context, task *Task) error

	// Delete operations
	DeleteTasks(ctx context.Context, ids []int64) (int64, error)
	DeleteTasksByText(ctx context.Context, text string) (int64, error)

	// Utility
	Path() string
	Close() error
}

// Options tunes how the database file is opened
type Options struct {
	// BusyTimeout is how long a statement waits on SQLite's file lock before failing.
	BusyTimeout time.Duration
}

// DefaultOptions returns the options used by New and Open
func DefaultOptions() Options {
	return Options{BusyTimeout: 5 * time.Second}
}

// SQLiteRepository implements the Repository interface
type SQLiteRepository struct {
	db   *sql.DB
	path string
}

// New opens the database at dbPath and ensures the todos table exists
func New(dbPath string) (*SQLiteRepository, error) {
	return NewWithOptions(dbPath, DefaultOptions())
}

// NewWithOptions is New with explicit open options
func NewWithOptions(dbPath string, opts Options) (*SQLiteRepository, error) {
	repo, err := OpenWithOptions(dbPath, opts)
	if err != nil {
		return nil, err
	}

	if err := repo.EnsureSchema(context.Background()); err != nil {
		repo.Close()
		return nil, err
	}

	return repo, nil
}

// Open opens the database at dbPath without touching the schema
func Open(dbPath string) (*SQLiteRepository, error) {
	return OpenWithOptions(dbPath, DefaultOptions())
}

// DSNReserved holds the characters the driver reads as DSN delimiters
const DSNReserved = "?#"

// OpenWithOptions is Open with explicit open options
func OpenWithOptions(dbPath string, opts Options) (*SQLiteRepository, error) {
	if strings.ContainsAny(dbPath, DSNReserved) {
		return nil, errors.NewInvalidInputError("database path", dbPath, "must not contain ? or #")
	}

	db, err := sql.Open("sqlite", buildDSN(dbPath, opts))
	if err != nil {
		return nil, errors.NewDatabaseError("open database", err)
	}

	// No idle connections: every operation dials its own and closes it on release.
	db.SetMaxIdleConns(0)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, errors.NewDatabaseError("connect database", err)
	}

	logging.Debugf("[DB]: opened %s\n", dbPath)
	return &SQLiteRepository{db: db, path: dbPath}, nil
}

func buildDSN(dbPath string, opts Options) string {
	q := url.Values{}
	q.Add("_pragma", fmt.Sprintf("busy_timeout(%d)", opts.BusyTimeout.Milliseconds()))
	q.Add("_txlock", "immediate")
	return dbPath + "?" + q.Encode()
}

// Path returns the database file the repository was opened on
func (r *SQLiteRepository) Path() string {
	return r.path
}

// Close closes the database handle
func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}

// CreateTask inserts a task and sets its ID from the store
func (r *SQLiteRepository) CreateTask(ctx context.Context, task *Task) error {
	query := `INSERT INTO todos (task) VALUES (?)`

	return r.withTx(ctx, "create task", func(tx *sql.Tx) error {
		id, err := ExecuteWithLastInsertID(ctx, tx, query, task.Text)
		if err != nil {
			return err
		}
		task.ID = id
		return nil
	})
}

// ListTasks retrieves all tasks in insertion order
func (r *SQLiteRepository) ListTasks(ctx context.Context) ([]*Task, error) {
	query := `SELECT id, task FROM todos ORDER BY id ASC`

	var tasks []*Task
	err := r.withConn(ctx, "list tasks", func(conn *sql.Conn) error {
		var err error
		tasks, err = QueryMultiple(ctx, conn, query, ScanTasks, "tasks")
		return err
	})
	return tasks, err
}

// UpdateTask overwrites the text of the task with task.ID. A missing ID is a no-op.
func (r *SQLiteRepository) UpdateTask(ctx context.Context, task *Task) error {
	query := `UPDATE todos SET task = ? WHERE id = ?`

	return r.withTx(ctx, "update task", func(tx *sql.Tx) error {
		n, err := ExecuteWithRowsAffected(ctx, tx, query, task.Text, task.ID)
		if err != nil {
			return err
		}
		logging.Debugf("[DB]: update task %d touched %d row(s)\n", task.ID, n)
		return nil
	})
}

// DeleteTasks removes every task whose ID is in ids and returns how many rows went away.
// IDs that do not exist are ignored.
func (r *SQLiteRepository) DeleteTasks(ctx context.Context, ids []int64) (int64, error) {
	query := `DELETE FROM todos WHERE id = ?`

	var removed int64
	err := r.withTx(ctx, "delete tasks", func(tx *sql.Tx) error {
		stmt, err := tx.PrepareContext(ctx, query)
		if err != nil {
			return HandleDatabaseError("prepare delete", err)
		}
		defer stmt.Close()

		for _, id := range ids {
			result, err := stmt.ExecContext(ctx, id)
			if err != nil {
				return HandleDatabaseError("delete task", err)
			}
			n, err := RowsAffected(result)
			if err != nil {
				return err
			}
			removed += n
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return removed, nil
}

// DeleteTasksByText removes every task whose text matches exactly
func (r *SQLiteRepository) DeleteTasksByText(ctx context.Context, text string) (int64, error) {
	query := `DELETE FROM todos WHERE task = ?`

	var removed int64
	err := r.withTx(ctx, "delete tasks by text", func(tx *sql.Tx) error {
		var err error
		removed, err = ExecuteWithRowsAffected(ctx, tx, query, text)
		return err
	})
	return removed, err
}
