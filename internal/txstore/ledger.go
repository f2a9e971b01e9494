package txstore

import (
	"context"
	"fmt"
	"net/url"

	"github.com/nao1215/paygate/pkg/httpclient"
)

// LedgerStore は外部の取引台帳サービスにHTTPで照会する Lookup。
// GET /api/v1/transactions/{id} が404を返した場合は取引なしとして扱う。
type LedgerStore struct {
	client *httpclient.Client
}

// NewLedgerStore は台帳サービスのクライアントからLedgerStoreを生成する。
func NewLedgerStore(client *httpclient.Client) *LedgerStore {
	return &LedgerStore{client: client}
}

// FindTransaction は台帳サービスから取引を取得する。
func (s *LedgerStore) FindTransaction(ctx context.Context, id string) (Transaction, error) {
	var tx Transaction
	err := s.client.GetJSON(ctx, "/api/v1/transactions/"+url.PathEscape(id), &tx)
	if httpclient.IsNotFound(err) {
		return Transaction{}, ErrNotFound
	}
	if err != nil {
		return Transaction{}, fmt.Errorf("台帳サービスへの照会に失敗: id=%s: %w", id, err)
	}
	if tx.ID == "" {
		tx.ID = id
	}
	return tx, nil
}
