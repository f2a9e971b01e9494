package admission

import "net/http"

// Code はパイプライン実行結果の種別を表す。
type Code int

const (
	// CodeOK はリクエストが受理されたことを表す。
	CodeOK Code = iota
	// CodeBadRequest は入力が欠落または不正な形式であることを表す。
	CodeBadRequest
	// CodeUnprocessableEntity は形式は正しいが業務ルールに違反していることを表す。
	CodeUnprocessableEntity
	// CodeUnauthorized は認証情報が欠落または不正であることを表す。
	// アクセスゲートのみが生成し、パイプラインは生成しない。
	CodeUnauthorized
	// CodeNotFound は参照先のエンティティが存在しないことを表す。
	CodeNotFound
)

// String はメトリクスのラベル等で使用する名前を返す。
func (c Code) String() string {
	switch c {
	case CodeOK:
		return "OK"
	case CodeBadRequest:
		return "BadRequest"
	case CodeUnprocessableEntity:
		return "UnprocessableEntity"
	case CodeUnauthorized:
		return "Unauthorized"
	case CodeNotFound:
		return "NotFound"
	default:
		return "Unknown"
	}
}

// HTTPStatus は結果種別に対応するHTTPステータスコードを返す。
func (c Code) HTTPStatus() int {
	switch c {
	case CodeOK:
		return http.StatusOK
	case CodeBadRequest:
		return http.StatusBadRequest
	case CodeUnprocessableEntity:
		return http.StatusUnprocessableEntity
	case CodeUnauthorized:
		return http.StatusUnauthorized
	case CodeNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// Outcome は1回のパイプライン実行の結果。生成後に変更しない。
type Outcome struct {
	// ID は受理時に採番された識別子。Code が CodeOK の場合のみ設定される。
	ID string
	// Message は呼び出し元に返す説明文。
	Message string
	// Code は結果種別。
	Code Code
}

// Accepted は結果が受理であるかを返す。
func (o Outcome) Accepted() bool {
	return o.Code == CodeOK
}

// Rejection はルールが拒否した理由。
type Rejection struct {
	// Code は拒否時の結果種別。
	Code Code
	// Message は拒否理由の説明文。
	Message string
}

// Reject は Rejection を生成する。
func Reject(code Code, message string) *Rejection {
	return &Rejection{Code: code, Message: message}
}
