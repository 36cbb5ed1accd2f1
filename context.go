package fedhost

import (
	"context"

	"github.com/ghettovoice/fedhost/target"
)

type ctxKey string

const targetCtxKey ctxKey = "target"

// ContextWithTarget returns a new context carrying the destination the request was addressed to
// before delegation.
func ContextWithTarget(ctx context.Context, tgt *target.Target) context.Context {
	return context.WithValue(ctx, targetCtxKey, tgt)
}

// TargetFromContext returns the target stored by [ContextWithTarget].
func TargetFromContext(ctx context.Context) (*target.Target, bool) {
	tgt, ok := ctx.Value(targetCtxKey).(*target.Target)
	return tgt, ok && tgt != nil
}
