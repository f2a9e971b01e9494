package admission

import "strings"

// Policy は業務ルールの閾値と許可リスト。
type Policy struct {
	// DailyPaymentLimit は1回の決済で処理できる金額の上限。
	DailyPaymentLimit float64
	// RefundLimit は1回の返金で処理できる金額の上限。
	RefundLimit float64
	// Currencies は決済に使用できる通貨コード。大文字小文字は区別しない。
	Currencies []string
	// PaymentMethods は使用できる決済手段。大文字小文字は区別しない。
	PaymentMethods []string
}

// DefaultPolicy は既定の業務ルールを返す。
func DefaultPolicy() Policy {
	return Policy{
		DailyPaymentLimit: 10000,
		RefundLimit:       5000,
		Currencies:        []string{"USD", "EUR"},
		PaymentMethods:    []string{"CARD", "UPI", "BANK_TRANSFER"},
	}
}

// containsFold は allowed に v が大文字小文字を区別せず含まれるかを返す。
// 空文字列は常に含まれないものとして扱う。
func containsFold(allowed []string, v string) bool {
	if v == "" {
		return false
	}
	for _, a := range allowed {
		if strings.EqualFold(a, v) {
			return true
		}
	}
	return false
}

// isBlank は文字列が空または空白のみであるかを返す。
func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
