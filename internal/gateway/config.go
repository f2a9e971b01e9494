package gateway

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// 取引照会ケイパビリティの種類。
const (
	// StoreStub は常に取引が存在するスタブ。
	StoreStub = "stub"
	// StoreSQLite はSQLiteの取引テーブル。
	StoreSQLite = "sqlite"
	// StoreLedger は外部の取引台帳サービス。
	StoreLedger = "http"
)

// Config はGatewayサーバーの設定。
type Config struct {
	// Port はサーバーのリッスンポート。
	Port string
	// AllowedOrigins はCORSで許可するオリジン。
	AllowedOrigins []string
	// VerifyTokens が true の場合、アクセスゲートで署名と有効期限を検証する。
	VerifyTokens bool
	// TxStore は取引照会ケイパビリティの種類（stub, sqlite, http）。
	TxStore string
	// SQLiteDSN はTxStoreがsqliteの場合のDSN。
	SQLiteDSN string
	// LedgerURL はTxStoreがhttpの場合の台帳サービスのベースURL。
	LedgerURL string
	// LedgerToken は台帳サービスに送るBearerトークン。空なら送らない。
	LedgerToken string
}

// LoadConfig は環境変数から設定を読み込む。
func LoadConfig() (Config, error) {
	verify, err := strconv.ParseBool(getEnvOr("AUTH_VERIFY_TOKENS", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("AUTH_VERIFY_TOKENS の値が不正: %w", err)
	}

	cfg := Config{
		Port:           getEnvOr("PORT", "8080"),
		AllowedOrigins: splitList(getEnvOr("ALLOWED_ORIGINS", "http://localhost:8080")),
		VerifyTokens:   verify,
		TxStore:        strings.ToLower(getEnvOr("TXSTORE", StoreStub)),
		SQLiteDSN:      getEnvOr("TXSTORE_SQLITE_PATH", "/data/ledger.db?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"),
		LedgerURL:      getEnvOr("LEDGER_URL", "http://localhost:8090"),
		LedgerToken:    os.Getenv("LEDGER_TOKEN"),
	}

	switch cfg.TxStore {
	case StoreStub, StoreSQLite, StoreLedger:
	default:
		return Config{}, fmt.Errorf("TXSTORE の値が不正: %q (stub, sqlite, http のいずれか)", cfg.TxStore)
	}
	return cfg, nil
}

// getEnvOr は環境変数を取得し、設定されていない場合はデフォルト値を返す。
func getEnvOr(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}

// splitList はカンマ区切りの文字列を分割し、空要素を除いて返す。
func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
