package admission

import (
	"context"
	"fmt"
)

// OperationRefund は返金依頼の操作名。
const OperationRefund = "refund"

// RefundRequest は返金依頼リクエスト。
type RefundRequest struct {
	// TransactionID は返金対象の取引ID。
	TransactionID string `json:"transactionId"`
	// Amount は返金金額。
	Amount float64 `json:"amount"`
}

func refundRules(policy Policy) []Rule[RefundRequest] {
	return []Rule[RefundRequest]{
		{
			Name: "transaction-id-required",
			Check: func(_ context.Context, req RefundRequest) (*Rejection, error) {
				if isBlank(req.TransactionID) {
					return Reject(CodeBadRequest, "Transaction ID is required"), nil
				}
				return nil, nil
			},
		},
		{
			Name: "positive-amount",
			Check: func(_ context.Context, req RefundRequest) (*Rejection, error) {
				if req.Amount <= 0 {
					return Reject(CodeBadRequest, "Amount must be positive"), nil
				}
				return nil, nil
			},
		},
		{
			Name: "refund-limit",
			Check: func(_ context.Context, req RefundRequest) (*Rejection, error) {
				if req.Amount > policy.RefundLimit {
					return Reject(CodeUnprocessableEntity, "Refund amount exceeds allowed limit"), nil
				}
				return nil, nil
			},
		},
	}
}

// newRefundPipeline は返金依頼パイプラインを生成する。
func newRefundPipeline(policy Policy, opts ...Option) *Pipeline[RefundRequest] {
	return NewPipeline(OperationRefund, refundRules(policy), func(req RefundRequest) string {
		return fmt.Sprintf("Refund request for transaction %s is accepted", req.TransactionID)
	}, opts...)
}
