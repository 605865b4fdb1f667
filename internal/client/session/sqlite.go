package session

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"

	"github.com/eventlane/eventlane/internal/client/models"
	"github.com/eventlane/eventlane/internal/client/session/migrations"
	"github.com/eventlane/eventlane/internal/dbx"
)

// Open opens (creating if needed) the local session database and applies
// pending migrations.
func Open(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open session db: %w", err)
	}
	if err := runMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate session db: %w", err)
	}
	return db, nil
}

func runMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("sqlite3"); err != nil {
		return err
	}
	return goose.UpContext(ctx, db, ".")
}

// SQLiteStore is the durable Store used by the real client. It survives
// process restarts and is readable before the first authenticated call.
type SQLiteStore struct {
	db *sql.DB
}

func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

func (s *SQLiteStore) get(ctx context.Context, q dbx.DBTX, key string) ([]byte, error) {
	var value []byte
	err := q.QueryRowContext(ctx, `SELECT value FROM session WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get session[%s]: %w", key, err)
	}
	return value, nil
}

func (s *SQLiteStore) set(ctx context.Context, q dbx.DBTX, key string, value []byte) error {
	_, err := q.ExecContext(ctx, `
		INSERT INTO session (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)
	if err != nil {
		return fmt.Errorf("failed to set session[%s]: %w", key, err)
	}
	return nil
}

func (s *SQLiteStore) Token(ctx context.Context) (string, error) {
	value, err := s.get(ctx, s.db, keyToken)
	if err != nil {
		return "", err
	}
	return string(value), nil
}

func (s *SQLiteStore) SetToken(ctx context.Context, token string) error {
	return s.set(ctx, s.db, keyToken, []byte(token))
}

func (s *SQLiteStore) User(ctx context.Context) (*models.User, error) {
	value, err := s.get(ctx, s.db, keyUser)
	if err != nil {
		return nil, err
	}
	if len(value) == 0 {
		return nil, nil
	}
	var u models.User
	if err := json.Unmarshal(value, &u); err != nil {
		return nil, fmt.Errorf("decode stored user: %w", err)
	}
	return &u, nil
}

func (s *SQLiteStore) SetUser(ctx context.Context, user *models.User) error {
	if user == nil {
		_, err := s.db.ExecContext(ctx, `DELETE FROM session WHERE key = ?`, keyUser)
		return err
	}
	value, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("encode user: %w", err)
	}
	return s.set(ctx, s.db, keyUser, value)
}

// ClearAuth deletes the token and user in a single transaction.
func (s *SQLiteStore) ClearAuth(ctx context.Context) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM session WHERE key = ?`, keyToken); err != nil {
			return fmt.Errorf("failed to clear token: %w", err)
		}
		if _, err := tx.ExecContext(ctx, `DELETE FROM session WHERE key = ?`, keyUser); err != nil {
			return fmt.Errorf("failed to clear user: %w", err)
		}
		return nil
	})
}
