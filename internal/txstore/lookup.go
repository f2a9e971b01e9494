// Package txstore は取引の存在確認を行う照会ケイパビリティを提供する。
//
// 受付パイプラインは Lookup インターフェースのみに依存する。既定の Stub は
// 常に取引が存在するものとして応答し、SQLite と外部台帳サービス（HTTP）の
// 実装に差し替えることができる。
package txstore

import (
	"context"
	"errors"
)

// ErrNotFound は指定した取引が存在しないことを表す。
var ErrNotFound = errors.New("取引が見つかりません")

// StatusSuccessful は正常に完了した取引の状態。
const StatusSuccessful = "SUCCESSFUL"

// Transaction は照会結果の取引。
type Transaction struct {
	// ID は取引ID（例: TXN123456）。
	ID string `json:"id"`
	// Status は取引の状態（例: SUCCESSFUL）。
	Status string `json:"status"`
}

// Lookup は取引IDで取引を照会するケイパビリティ。
// 存在しない場合は ErrNotFound を返す。それ以外のエラーは内部障害として扱われる。
type Lookup interface {
	FindTransaction(ctx context.Context, id string) (Transaction, error)
}

// Stub は常に取引が存在し SUCCESSFUL であると応答する Lookup。
type Stub struct{}

// FindTransaction は常に成功した取引を返す。
func (Stub) FindTransaction(_ context.Context, id string) (Transaction, error) {
	return Transaction{ID: id, Status: StatusSuccessful}, nil
}
