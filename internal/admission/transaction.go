package admission

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"github.com/nao1215/paygate/internal/txstore"
)

// OperationTransactionStatus は取引状態照会の操作名。
const OperationTransactionStatus = "transaction-status"

// transactionIDPattern は取引IDの形式。"TXN" + 数字6桁。
var transactionIDPattern = regexp.MustCompile(`^TXN\d{6}$`)

// transactionQuery は1回の照会の状態。照会ルールが見つかった取引を found に格納する。
type transactionQuery struct {
	id    string
	found txstore.Transaction
}

func transactionRules(store txstore.Lookup) []Rule[*transactionQuery] {
	return []Rule[*transactionQuery]{
		{
			Name: "transaction-id-required",
			Check: func(_ context.Context, q *transactionQuery) (*Rejection, error) {
				if isBlank(q.id) {
					return Reject(CodeBadRequest, "Transaction ID is required"), nil
				}
				return nil, nil
			},
		},
		{
			Name: "transaction-id-format",
			Check: func(_ context.Context, q *transactionQuery) (*Rejection, error) {
				if !transactionIDPattern.MatchString(q.id) {
					return Reject(CodeBadRequest, "Invalid transaction ID format. Example: TXN123456"), nil
				}
				return nil, nil
			},
		},
		{
			Name: "transaction-exists",
			Check: func(ctx context.Context, q *transactionQuery) (*Rejection, error) {
				tx, err := store.FindTransaction(ctx, q.id)
				if errors.Is(err, txstore.ErrNotFound) {
					return Reject(CodeNotFound, "Transaction not found"), nil
				}
				if err != nil {
					return nil, fmt.Errorf("取引の照会に失敗: %w", err)
				}
				q.found = tx
				return nil, nil
			},
		},
	}
}

// newTransactionPipeline は取引状態照会パイプラインを生成する。
func newTransactionPipeline(store txstore.Lookup, opts ...Option) *Pipeline[*transactionQuery] {
	return NewPipeline(OperationTransactionStatus, transactionRules(store), func(q *transactionQuery) string {
		status := q.found.Status
		if status == "" {
			status = txstore.StatusSuccessful
		}
		return fmt.Sprintf("Transaction %s is %s", q.id, status)
	}, opts...)
}
