package admission

import (
	"context"

	"github.com/nao1215/paygate/internal/txstore"
)

// Service は3つの業務操作のパイプラインをまとめたもの。
// HTTPハンドラはリクエストを解析してこのServiceに渡し、結果をそのまま応答する。
type Service struct {
	payment     *Pipeline[PaymentRequest]
	refund      *Pipeline[RefundRequest]
	transaction *Pipeline[*transactionQuery]
}

// NewService は業務ルールと取引照会ケイパビリティからServiceを生成する。
// store が nil の場合は txstore.Stub を使用する。
func NewService(policy Policy, store txstore.Lookup, opts ...Option) *Service {
	if store == nil {
		store = txstore.Stub{}
	}
	return &Service{
		payment:     newPaymentPipeline(policy, opts...),
		refund:      newRefundPipeline(policy, opts...),
		transaction: newTransactionPipeline(store, opts...),
	}
}

// ValidatePayment は決済リクエストを検証する。
func (s *Service) ValidatePayment(ctx context.Context, req PaymentRequest) (Outcome, error) {
	return s.payment.Run(ctx, req)
}

// RequestRefund は返金依頼を検証する。
func (s *Service) RequestRefund(ctx context.Context, req RefundRequest) (Outcome, error) {
	return s.refund.Run(ctx, req)
}

// TransactionStatus は取引IDを検証し、取引の状態を照会する。
func (s *Service) TransactionStatus(ctx context.Context, transactionID string) (Outcome, error) {
	return s.transaction.Run(ctx, &transactionQuery{id: transactionID})
}
