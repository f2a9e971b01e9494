package gateway

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/nao1215/paygate/internal/admission"
	"github.com/nao1215/paygate/internal/txstore"
	"github.com/nao1215/paygate/pkg/httpclient"
	"github.com/nao1215/paygate/pkg/middleware"
)

// Server は決済検証APIのHTTPサーバー。
type Server struct {
	// router はGinのHTTPルーター。
	router *gin.Engine
	// port はサーバーのリッスンポート。
	port string
	// issuer はトークン発行者。署名鍵は起動時に注入される。
	issuer *middleware.TokenIssuer
	// admission は業務操作ごとの受付判定パイプライン。
	admission *admission.Service
	// metrics は受付判定の結果件数。
	metrics *metrics
	// now はレスポンスのタイムスタンプに使う現在時刻。
	now func() time.Time
	// closer は取引照会ケイパビリティが保持するリソース。不要なら nil。
	closer io.Closer
}

// NewServer は新しいGatewayサーバーを生成する。
// signingKey はプロセス起動時に一度だけ生成した署名鍵。
func NewServer(ctx context.Context, cfg Config, signingKey []byte) (*Server, error) {
	store, closer, err := openStore(ctx, cfg)
	if err != nil {
		return nil, err
	}

	s := newServer(cfg, signingKey, store)
	s.closer = closer
	return s, nil
}

// newServer は取引照会ケイパビリティを受け取ってサーバーを組み立てる。
func newServer(cfg Config, signingKey []byte, store txstore.Lookup) *Server {
	issuer := middleware.NewTokenIssuer(signingKey)

	gate := middleware.GateConfig{PublicPrefixes: middleware.DefaultPublicPrefixes}
	if cfg.VerifyTokens {
		gate.Verifier = issuer
	}

	router := gin.New()
	router.Use(middleware.Recovery())
	router.Use(gin.Logger())
	router.Use(middleware.CORS(cfg.AllowedOrigins))
	router.Use(middleware.AccessGate(gate))

	s := &Server{
		router:    router,
		port:      cfg.Port,
		issuer:    issuer,
		admission: admission.NewService(admission.DefaultPolicy(), store),
		metrics:   newMetrics(),
		now:       time.Now,
	}
	s.setupRoutes()

	return s
}

// openStore は設定に応じた取引照会ケイパビリティを生成する。
func openStore(ctx context.Context, cfg Config) (txstore.Lookup, io.Closer, error) {
	switch cfg.TxStore {
	case StoreSQLite:
		store, err := txstore.OpenSQLite(ctx, cfg.SQLiteDSN)
		if err != nil {
			return nil, nil, fmt.Errorf("取引ストアの初期化に失敗: %w", err)
		}
		return store, store, nil
	case StoreLedger:
		var opts []httpclient.Option
		if cfg.LedgerToken != "" {
			opts = append(opts, httpclient.WithHeader("Authorization", "Bearer "+cfg.LedgerToken))
		}
		return txstore.NewLedgerStore(httpclient.New(cfg.LedgerURL, opts...)), nil, nil
	default:
		return txstore.Stub{}, nil, nil
	}
}

// Handler はテストや独自のhttp.Serverから使うためのHTTPハンドラを返す。
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run はHTTPサーバーを起動する。
func (s *Server) Run() error {
	return s.router.Run(fmt.Sprintf(":%s", s.port))
}

// Close はサーバーが保持するリソースを解放する。
func (s *Server) Close() error {
	if s.closer == nil {
		return nil
	}
	return s.closer.Close()
}

// setupRoutes はAPIルーティングを設定する。
// 認証の要否はルートではなくアクセスゲートの公開パス一覧で決まる。
func (s *Server) setupRoutes() {
	// トークン発行（認証不要）
	s.router.GET("/auth/token", s.handleIssueToken())

	api := s.router.Group("/api")
	{
		// 決済検証
		api.POST("/payments/validate", s.handleValidatePayment())
		// 返金依頼
		api.POST("/refunds/request", s.handleRequestRefund())
		// 取引状態照会
		api.GET("/transactions/status/:transactionId", s.handleTransactionStatus())
	}

	// APIドキュメント（認証不要）
	s.router.GET("/v3/api-docs", s.handleAPIDocs())

	// ヘルスチェック
	s.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "service": "paygate"})
	})

	// メトリクス
	s.router.GET("/metrics", s.metrics.handler())
}
