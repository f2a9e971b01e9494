// Package gateway は決済検証APIのHTTPサーバーを提供する。
//
// トークン発行、アクセスゲート、決済検証・返金依頼・取引状態照会の
// ルーティングを担当する。各ハンドラはリクエストを解析して
// admission.Service に渡し、結果を共通レスポンス形式で返すだけで、
// 判定ロジックは持たない。
package gateway
