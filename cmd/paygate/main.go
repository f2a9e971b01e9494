// 決済検証APIサービスのエントリポイント。
// 決済・返金・取引状態照会のリクエストを受付判定し、テスト用のトークン発行も担当する。
package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"
	"github.com/nao1215/paygate/internal/gateway"
	"github.com/nao1215/paygate/pkg/middleware"
)

func main() {
	// .envファイルは任意。存在しなければ環境変数のみを使う。
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file found, using environment variables: %v", err)
	}

	cfg, err := gateway.LoadConfig()
	if err != nil {
		log.Fatalf("設定の読み込みに失敗: %v", err)
	}

	// 署名鍵はプロセスごとに一度だけ生成する。再起動すると発行済みトークンは無効になる。
	signingKey, err := middleware.NewSigningKey()
	if err != nil {
		log.Fatalf("署名鍵の生成に失敗: %v", err)
	}

	server, err := gateway.NewServer(context.Background(), cfg, signingKey)
	if err != nil {
		log.Fatalf("paygateサーバーの初期化に失敗: %v", err)
	}
	defer server.Close()

	log.Printf("paygateサービスを起動します: :%s (txstore=%s, verify_tokens=%t)", cfg.Port, cfg.TxStore, cfg.VerifyTokens)
	if err := server.Run(); err != nil {
		log.Fatalf("paygateサービスの起動に失敗: %v", err)
	}
}
