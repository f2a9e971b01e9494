package txstore

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/nao1215/paygate/pkg/httpclient"
)

// newTestSQLiteStore はインメモリSQLiteを使ったテスト用ストアを生成する。
func newTestSQLiteStore(t *testing.T) *SQLiteStore {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("インメモリDB接続に失敗: %v", err)
	}
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	store, err := NewSQLiteStore(context.Background(), db)
	if err != nil {
		t.Fatalf("ストアの生成に失敗: %v", err)
	}
	return store
}

// seedTransaction はテスト用の取引レコードをDBに挿入する。
func seedTransaction(t *testing.T, s *SQLiteStore, id, status string) {
	t.Helper()

	if _, err := s.db.Exec(
		"INSERT INTO transactions (id, status, amount, currency) VALUES (?, ?, ?, ?)",
		id, status, 100.0, "USD",
	); err != nil {
		t.Fatalf("テスト用取引の挿入に失敗: %v", err)
	}
}

// TestStub はStubを検証する。
func TestStub(t *testing.T) {
	t.Parallel()

	tx, err := Stub{}.FindTransaction(context.Background(), "TXN999999")
	if err != nil {
		t.Fatalf("FindTransaction()でエラーが発生: %v", err)
	}
	if tx.ID != "TXN999999" {
		t.Errorf("ID = %q, want %q", tx.ID, "TXN999999")
	}
	if tx.Status != StatusSuccessful {
		t.Errorf("Status = %q, want %q", tx.Status, StatusSuccessful)
	}
}

// TestSQLiteStore はSQLiteStoreを検証する。
func TestSQLiteStore(t *testing.T) {
	t.Parallel()

	t.Run("登録済みの取引が取得できること", func(t *testing.T) {
		t.Parallel()

		s := newTestSQLiteStore(t)
		seedTransaction(t, s, "TXN123456", "PENDING")

		tx, err := s.FindTransaction(context.Background(), "TXN123456")
		if err != nil {
			t.Fatalf("FindTransaction()でエラーが発生: %v", err)
		}
		if tx.ID != "TXN123456" {
			t.Errorf("ID = %q, want %q", tx.ID, "TXN123456")
		}
		if tx.Status != "PENDING" {
			t.Errorf("Status = %q, want %q", tx.Status, "PENDING")
		}
	})

	t.Run("未登録の取引はErrNotFoundになること", func(t *testing.T) {
		t.Parallel()

		s := newTestSQLiteStore(t)
		_, err := s.FindTransaction(context.Background(), "TXN000000")
		if !errors.Is(err, ErrNotFound) {
			t.Errorf("err = %v, want ErrNotFound", err)
		}
	})

	t.Run("閉じた接続での照会は内部障害になること", func(t *testing.T) {
		t.Parallel()

		s := newTestSQLiteStore(t)
		if err := s.Close(); err != nil {
			t.Fatalf("Close()でエラーが発生: %v", err)
		}

		_, err := s.FindTransaction(context.Background(), "TXN123456")
		if err == nil {
			t.Fatal("FindTransaction()がエラーを返すべきだが、nilが返った")
		}
		if errors.Is(err, ErrNotFound) {
			t.Error("内部障害がErrNotFoundとして扱われた")
		}
	})

	t.Run("マイグレーションを2回適用してもエラーにならないこと", func(t *testing.T) {
		t.Parallel()

		s := newTestSQLiteStore(t)
		if _, err := NewSQLiteStore(context.Background(), s.db); err != nil {
			t.Fatalf("2回目のNewSQLiteStore()でエラーが発生: %v", err)
		}
	})
}

// TestLedgerStore はLedgerStoreを検証する。
func TestLedgerStore(t *testing.T) {
	t.Parallel()

	t.Run("台帳サービスの応答から取引が取得できること", func(t *testing.T) {
		t.Parallel()

		var gotPath string
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(Transaction{ID: "TXN654321", Status: "FAILED"})
		}))
		defer ts.Close()

		tx, err := NewLedgerStore(httpclient.New(ts.URL)).FindTransaction(context.Background(), "TXN654321")
		if err != nil {
			t.Fatalf("FindTransaction()でエラーが発生: %v", err)
		}
		if gotPath != "/api/v1/transactions/TXN654321" {
			t.Errorf("Path = %q, want %q", gotPath, "/api/v1/transactions/TXN654321")
		}
		if tx.Status != "FAILED" {
			t.Errorf("Status = %q, want %q", tx.Status, "FAILED")
		}
	})

	t.Run("台帳サービスが404を返した場合ErrNotFoundになること", func(t *testing.T) {
		t.Parallel()

		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer ts.Close()

		_, err := NewLedgerStore(httpclient.New(ts.URL)).FindTransaction(context.Background(), "TXN000404")
		if !errors.Is(err, ErrNotFound) {
			t.Errorf("err = %v, want ErrNotFound", err)
		}
	})

	t.Run("台帳サービスが503を返した場合は内部障害になること", func(t *testing.T) {
		t.Parallel()

		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		}))
		defer ts.Close()

		_, err := NewLedgerStore(httpclient.New(ts.URL)).FindTransaction(context.Background(), "TXN000503")
		if err == nil {
			t.Fatal("FindTransaction()がエラーを返すべきだが、nilが返った")
		}
		if errors.Is(err, ErrNotFound) {
			t.Error("503応答がErrNotFoundとして扱われた")
		}
	})

	t.Run("応答にIDが無い場合は照会したIDを補完すること", func(t *testing.T) {
		t.Parallel()

		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"status":"SUCCESSFUL"}`))
		}))
		defer ts.Close()

		tx, err := NewLedgerStore(httpclient.New(ts.URL)).FindTransaction(context.Background(), "TXN111111")
		if err != nil {
			t.Fatalf("FindTransaction()でエラーが発生: %v", err)
		}
		if tx.ID != "TXN111111" {
			t.Errorf("ID = %q, want %q", tx.ID, "TXN111111")
		}
	})
}

// Lookupインターフェースを満たすことをコンパイル時に確認する。
var (
	_ Lookup = Stub{}
	_ Lookup = (*SQLiteStore)(nil)
	_ Lookup = (*LedgerStore)(nil)
)
