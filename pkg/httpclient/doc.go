// Package httpclient は下流サービスへのJSON照会を行うHTTPクライアントを提供する。
//
// 取引台帳サービスへの取引照会で使用する。2xx以外の応答は StatusError として
// 返すため、呼び出し側は errors.As でステータスコードを判別できる。
package httpclient
