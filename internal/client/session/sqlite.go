package session

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/salesdesk/internal/client/migrations"
	"github.com/dmitrijs2005/salesdesk/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/salesdesk/internal/common"
	"github.com/dmitrijs2005/salesdesk/internal/dbx"
	"github.com/pressly/goose/v3"

	_ "modernc.org/sqlite"
)

const busyTimeoutPragma = "_pragma=busy_timeout(5000)"

// SQLiteStore persists the credential in a local SQLite file, so it survives
// restarts of the client.
type SQLiteStore struct {
	db  *sql.DB
	now func() time.Time
}

// RunMigrations applies the embedded schema. It is idempotent.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	goose.SetLogger(goose.NopLogger())

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	return goose.UpContext(ctx, db, ".")
}

// OpenSQLiteStore opens (creating if needed) the database at dsn and migrates it.
func OpenSQLiteStore(ctx context.Context, dsn string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", withBusyTimeout(dsn))
	if err != nil {
		return nil, fmt.Errorf("open session db: %w", err)
	}
	// One connection serializes the 401 clear with concurrent reads; the busy
	// timeout covers a second process sharing the file.
	db.SetMaxOpenConns(1)

	if err := RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate session db: %w", err)
	}

	return &SQLiteStore{db: db, now: time.Now}, nil
}

func withBusyTimeout(dsn string) string {
	if strings.Contains(dsn, "busy_timeout") {
		return dsn
	}
	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	return dsn + sep + busyTimeoutPragma
}

func (s *SQLiteStore) repo(db dbx.DBTX) metadata.Repository {
	return metadata.NewSQLiteRepository(db)
}

func (s *SQLiteStore) Get(ctx context.Context) (string, bool, error) {
	v, err := s.repo(s.db).Get(ctx, common.TokenSlotKey)
	if err != nil {
		return "", false, err
	}
	if len(v) == 0 {
		return "", false, nil
	}
	return string(v), true, nil
}

// Set writes the token and its timestamp in one transaction.
func (s *SQLiteStore) Set(ctx context.Context, token string) error {
	savedAt := s.now().UTC().Format(time.RFC3339Nano)

	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repo(tx)
		if err := repo.Set(ctx, common.TokenSlotKey, []byte(token)); err != nil {
			return err
		}
		return repo.Set(ctx, common.TokenSavedAtKey, []byte(savedAt))
	})
}

func (s *SQLiteStore) Clear(ctx context.Context) error {
	return s.repo(s.db).Delete(ctx, common.TokenSlotKey, common.TokenSavedAtKey)
}

// SavedAt reports when the current credential was written.
func (s *SQLiteStore) SavedAt(ctx context.Context) (time.Time, bool, error) {
	v, err := s.repo(s.db).Get(ctx, common.TokenSavedAtKey)
	if err != nil || len(v) == 0 {
		return time.Time{}, false, err
	}
	t, err := time.Parse(time.RFC3339Nano, string(v))
	if err != nil {
		return time.Time{}, false, fmt.Errorf("parse %s: %w", common.TokenSavedAtKey, err)
	}
	return t, true, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
