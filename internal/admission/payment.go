package admission

import "context"

// OperationPayment は決済検証の操作名。
const OperationPayment = "payment"

// PaymentRequest は決済検証リクエスト。リクエストごとに生成され、永続化されない。
type PaymentRequest struct {
	// Amount は決済金額。
	Amount float64 `json:"amount"`
	// Currency は通貨コード（USD, EUR）。
	Currency string `json:"currency"`
	// PaymentMethod は決済手段（CARD, UPI, BANK_TRANSFER）。
	PaymentMethod string `json:"paymentMethod"`
}

// paymentRules は決済検証のルール列を返す。
// 上限チェックが符号チェックより先に来る順序を変更してはならない。
func paymentRules(policy Policy) []Rule[PaymentRequest] {
	return []Rule[PaymentRequest]{
		{
			Name: "daily-limit",
			Check: func(_ context.Context, req PaymentRequest) (*Rejection, error) {
				if req.Amount > policy.DailyPaymentLimit {
					return Reject(CodeUnprocessableEntity, "Amount exceeds daily processing limit"), nil
				}
				return nil, nil
			},
		},
		{
			// 0 は通過する
			Name: "non-negative-amount",
			Check: func(_ context.Context, req PaymentRequest) (*Rejection, error) {
				if req.Amount < 0 {
					return Reject(CodeBadRequest, "Amount should be positive"), nil
				}
				return nil, nil
			},
		},
		{
			Name: "supported-currency",
			Check: func(_ context.Context, req PaymentRequest) (*Rejection, error) {
				if !containsFold(policy.Currencies, req.Currency) {
					return Reject(CodeUnprocessableEntity, "Currency not supported for payment"), nil
				}
				return nil, nil
			},
		},
		{
			Name: "allowed-payment-method",
			Check: func(_ context.Context, req PaymentRequest) (*Rejection, error) {
				if !containsFold(policy.PaymentMethods, req.PaymentMethod) {
					return Reject(CodeUnprocessableEntity, "Payment method not allowed"), nil
				}
				return nil, nil
			},
		},
	}
}

// newPaymentPipeline は決済検証パイプラインを生成する。
func newPaymentPipeline(policy Policy, opts ...Option) *Pipeline[PaymentRequest] {
	return NewPipeline(OperationPayment, paymentRules(policy), func(PaymentRequest) string {
		return "Payment request is valid"
	}, opts...)
}
