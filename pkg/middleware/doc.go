// Package middleware はGinベースのHTTP APIで使用する共通ミドルウェアを提供する。
//
// トークンの発行とアクセスゲート、パニックリカバリ、CORS設定を含む。
// アクセスゲートは既定ではBearer形式の確認のみを行い、署名と有効期限の
// 検証は GateConfig.Verifier を設定した場合にのみ実施する。
package middleware
