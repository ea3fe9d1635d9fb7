package middleware

import (
	"context"

	goRoles "github.com/MrEthical07/goRoles"
)

type roleSetContextKey struct{}

func withSet[T goRoles.Role](ctx context.Context, s goRoles.Set[T]) context.Context {
	return context.WithValue(ctx, roleSetContextKey{}, s)
}

// FromContext returns the role set a guard injected for this request, if any.
func FromContext[T goRoles.Role](ctx context.Context) (goRoles.Set[T], bool) {
	s, ok := ctx.Value(roleSetContextKey{}).(goRoles.Set[T])
	return s, ok
}
