package admission

import "time"

// internalErrorMessage は内部障害時に返す固定メッセージ。詳細は呼び出し元に漏らさない。
const internalErrorMessage = "Internal server error"

// Envelope は全操作で共通のレスポンスボディ。
type Envelope struct {
	// ID は受理時に採番された識別子。受理以外では null。
	ID *string `json:"id"`
	// Message は結果の説明文。
	Message string `json:"message"`
	// Timestamp は整形時刻（UTC）。
	Timestamp time.Time `json:"timestamp"`
}

// Format は結果をレスポンスボディに整形する。副作用はない。
func Format(o Outcome, now time.Time) Envelope {
	env := Envelope{
		Message:   o.Message,
		Timestamp: now.UTC(),
	}
	if o.Accepted() && o.ID != "" {
		id := o.ID
		env.ID = &id
	}
	return env
}

// InternalError は内部障害時のレスポンスボディを返す。
func InternalError(now time.Time) Envelope {
	return Envelope{
		Message:   internalErrorMessage,
		Timestamp: now.UTC(),
	}
}
