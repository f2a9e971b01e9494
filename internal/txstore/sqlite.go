package txstore

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/nao1215/paygate/pkg/migration"
	_ "modernc.org/sqlite"
)

//go:embed migrations/*.up.sql
var migrationsFS embed.FS

// SQLiteStore はSQLiteの transactions テーブルを照会する Lookup。
type SQLiteStore struct {
	// db はSQLiteデータベース接続。
	db *sql.DB
}

// OpenSQLite はSQLiteデータベースを開き、マイグレーションを適用する。
// dsn には modernc.org/sqlite のDSN（例: "/data/ledger.db?_pragma=busy_timeout(5000)"）を指定する。
func OpenSQLite(ctx context.Context, dsn string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("データベース接続に失敗: %w", err)
	}
	store, err := NewSQLiteStore(ctx, db)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	return store, nil
}

// NewSQLiteStore は開いたDB接続からSQLiteStoreを生成し、マイグレーションを適用する。
func NewSQLiteStore(ctx context.Context, db *sql.DB) (*SQLiteStore, error) {
	if err := migration.Run(ctx, db, migrationsFS, "migrations"); err != nil {
		return nil, fmt.Errorf("スキーマ初期化に失敗: %w", err)
	}
	return &SQLiteStore{db: db}, nil
}

// FindTransaction は取引IDで取引を照会する。
func (s *SQLiteStore) FindTransaction(ctx context.Context, id string) (Transaction, error) {
	var tx Transaction
	err := s.db.QueryRowContext(ctx,
		"SELECT id, status FROM transactions WHERE id = ?", id,
	).Scan(&tx.ID, &tx.Status)
	if errors.Is(err, sql.ErrNoRows) {
		return Transaction{}, ErrNotFound
	}
	if err != nil {
		return Transaction{}, fmt.Errorf("取引の取得に失敗: id=%s: %w", id, err)
	}
	return tx, nil
}

// Close はDB接続を閉じる。
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
