package admission

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// Rule はパイプラインを構成する1段のチェック。
type Rule[T any] struct {
	// Name はルール名。エラーメッセージとテストで使用する。
	Name string
	// Check はリクエストを検査する。通過なら (nil, nil)、拒否なら Rejection を返す。
	// error は業務上の拒否ではなく内部障害を表し、パイプライン全体を中断する。
	Check func(ctx context.Context, req T) (*Rejection, error)
}

// Pipeline は順序付きルール列を評価する汎用エンジン。
// 構築後は不変であり、複数のゴルーチンから同時に使用できる。
type Pipeline[T any] struct {
	// operation は業務操作名。
	operation string
	// rules は評価順に並んだルール。
	rules []Rule[T]
	// accept は全ルール通過時のメッセージを組み立てる。
	accept func(req T) string
	// newID は受理時の識別子を採番する。
	newID func() string
}

// Option はパイプラインの生成オプション。
type Option func(*options)

type options struct {
	newID func() string
}

// WithIDGenerator は受理時の識別子採番関数を差し替える。
func WithIDGenerator(f func() string) Option {
	return func(o *options) {
		o.newID = f
	}
}

// NewPipeline は新しいパイプラインを生成する。rules は渡された順序で評価される。
func NewPipeline[T any](operation string, rules []Rule[T], accept func(req T) string, opts ...Option) *Pipeline[T] {
	o := options{newID: uuid.NewString}
	for _, opt := range opts {
		opt(&o)
	}

	copied := make([]Rule[T], len(rules))
	copy(copied, rules)

	return &Pipeline[T]{
		operation: operation,
		rules:     copied,
		accept:    accept,
		newID:     o.newID,
	}
}

// Operation は業務操作名を返す。
func (p *Pipeline[T]) Operation() string {
	return p.operation
}

// RuleNames は評価順のルール名を返す。
func (p *Pipeline[T]) RuleNames() []string {
	names := make([]string, 0, len(p.rules))
	for _, r := range p.rules {
		names = append(names, r.Name)
	}
	return names
}

// Run はルールを先頭から評価し、最初の拒否または受理の結果を返す。
// ルールが内部障害を返した場合のみ error を返す。
func (p *Pipeline[T]) Run(ctx context.Context, req T) (Outcome, error) {
	for _, r := range p.rules {
		rejection, err := r.Check(ctx, req)
		if err != nil {
			return Outcome{}, fmt.Errorf("%s: ルール %q の評価に失敗: %w", p.operation, r.Name, err)
		}
		if rejection != nil {
			return Outcome{Code: rejection.Code, Message: rejection.Message}, nil
		}
	}

	return Outcome{
		ID:      p.newID(),
		Message: p.accept(req),
		Code:    CodeOK,
	}, nil
}
