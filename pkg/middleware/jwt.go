package middleware

import (
	"crypto/rand"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// TokenLifetime は発行したトークンの有効期間。
const TokenLifetime = time.Hour

// signingKeySize は署名鍵のバイト長（HS256）。
const signingKeySize = 32

// bearerPrefix はAuthorizationヘッダーの認証スキーム接頭辞。
const bearerPrefix = "Bearer "

// UnauthorizedMessage はアクセスゲートが拒否した際のレスポンスボディ。
const UnauthorizedMessage = "Missing or invalid JWT token"

// contextKeySubject は検証済みのサブジェクトをGinコンテキストに格納するキー。
const contextKeySubject = "subject"

// DefaultPublicPrefixes は認証不要なパスの接頭辞。
// APIドキュメント、トークン発行、ヘルスチェック、メトリクスが該当する。
var DefaultPublicPrefixes = []string{
	"/v3/api-docs",
	"/swagger-ui",
	"/swagger-ui.html",
	"/swagger-resources",
	"/webjars",
	"/auth/token",
	"/health",
	"/metrics",
}

// ErrInvalidToken はトークンの署名または有効期限の検証に失敗したことを表す。
var ErrInvalidToken = errors.New("トークンが無効です")

// NewSigningKey はプロセス起動時に一度だけ生成する署名鍵を返す。
// 鍵はメモリ上にのみ保持され、再起動すると失われる。
func NewSigningKey() ([]byte, error) {
	key := make([]byte, signingKeySize)
	if _, err := rand.Read(key); err != nil {
		return nil, fmt.Errorf("署名鍵の生成に失敗: %w", err)
	}
	return key, nil
}

// TokenIssuer はサブジェクトに対して有効期限付きの署名済みトークンを発行する。
// 起動後は読み取り専用であり、複数のリクエストから同時に使用できる。
type TokenIssuer struct {
	// key はHS256の署名鍵。
	key []byte
	// now は現在時刻を返す。テストで差し替える。
	now func() time.Time
}

// NewTokenIssuer は署名鍵を注入してTokenIssuerを生成する。
func NewTokenIssuer(key []byte) *TokenIssuer {
	copied := make([]byte, len(key))
	copy(copied, key)
	return &TokenIssuer{key: copied, now: time.Now}
}

// Issue はサブジェクトのトークンを発行する。サブジェクトは検証しない（空文字列も可）。
// 同じ秒内に発行しても値が重複しないよう、トークンごとに jti を採番する。
func (i *TokenIssuer) Issue(subject string) (string, error) {
	issuedAt := i.now()
	claims := jwt.RegisteredClaims{
		ID:        uuid.NewString(),
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(issuedAt),
		ExpiresAt: jwt.NewNumericDate(issuedAt.Add(TokenLifetime)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(i.key)
	if err != nil {
		return "", fmt.Errorf("JWTトークンの署名に失敗: %w", err)
	}
	return signed, nil
}

// Verify はトークンの署名と有効期限を検証してクレームを返す。
func (i *TokenIssuer) Verify(tokenString string) (*jwt.RegisteredClaims, error) {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(_ *jwt.Token) (any, error) {
		return i.key, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(i.now),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}
	if !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// GateConfig はアクセスゲートの設定。
type GateConfig struct {
	// PublicPrefixes は認証を省略するパスの接頭辞。
	PublicPrefixes []string
	// Verifier が nil の場合、Bearer形式であればトークンの中身は検証しない。
	// 設定した場合は署名と有効期限を検証し、サブジェクトをコンテキストに格納する。
	Verifier *TokenIssuer
}

// AccessGate は全リクエストの前段で認証ヘッダーを確認するGinミドルウェアを返す。
// 拒否時は401とテキストのボディを返し、以降のハンドラを実行しない。
func AccessGate(cfg GateConfig) gin.HandlerFunc {
	prefixes := make([]string, len(cfg.PublicPrefixes))
	copy(prefixes, cfg.PublicPrefixes)

	return func(c *gin.Context) {
		path := c.Request.URL.Path
		for _, p := range prefixes {
			if strings.HasPrefix(path, p) {
				c.Next()
				return
			}
		}

		tokenString, found := strings.CutPrefix(c.GetHeader("Authorization"), bearerPrefix)
		if !found || tokenString == "" {
			abortUnauthorized(c)
			return
		}

		// Verifier未設定時は形式のみ確認する。期限切れや偽造トークンも通過する。
		if cfg.Verifier != nil {
			claims, err := cfg.Verifier.Verify(tokenString)
			if err != nil {
				abortUnauthorized(c)
				return
			}
			c.Set(contextKeySubject, claims.Subject)
		}

		c.Next()
	}
}

// abortUnauthorized は401を返してリクエストを中断する。
func abortUnauthorized(c *gin.Context) {
	c.String(http.StatusUnauthorized, UnauthorizedMessage)
	c.Abort()
}

// GetSubject はGinコンテキストから検証済みのサブジェクトを取得する。
// トークン検証が無効な場合は空文字列を返す。
func GetSubject(c *gin.Context) string {
	subject, _ := c.Get(contextKeySubject)
	if s, ok := subject.(string); ok {
		return s
	}
	return ""
}
