package test

import (
	"net/http"
	"testing"

	goRoles "github.com/MrEthical07/goRoles"
	"github.com/MrEthical07/goRoles/middleware"
	"github.com/MrEthical07/goRoles/unchecked"
)

type perm uint64

// This test intentionally guards public API compile-compat for consumers.
func TestPublicAPISurfaceCompile(t *testing.T) {
	_ = goRoles.NewRegistry[perm]
	_ = goRoles.Validate
	_ = goRoles.ValidRoleValue

	var _ *goRoles.Registry[perm]
	var _ *goRoles.Manager[perm]
	var _ goRoles.Set[perm]
	var _ goRoles.Declaration
	var _ goRoles.MetricsSnapshot
	var _ goRoles.MetricID

	var _ error = goRoles.ErrFrozen
	var _ error = goRoles.ErrNotFrozen
	var _ error = goRoles.ErrEmptyName
	var _ error = goRoles.ErrNoDeclarations
	var _ error = &goRoles.InvalidRoleError{}
	var _ error = &goRoles.CollisionError{}
	var _ error = &goRoles.DuplicateNameError{}

	var _ func(*goRoles.Registry[perm], string, perm) error = (*goRoles.Registry[perm]).Declare
	var _ func(*goRoles.Registry[perm]) (*goRoles.Manager[perm], error) = (*goRoles.Registry[perm]).Freeze
	var _ func(*goRoles.Registry[perm]) *goRoles.Manager[perm] = (*goRoles.Registry[perm]).MustFreeze
	var _ func(*goRoles.Manager[perm]) goRoles.Set[perm] = (*goRoles.Manager[perm]).Empty
	var _ func(*goRoles.Manager[perm], uint64) goRoles.Set[perm] = (*goRoles.Manager[perm]).FromValue
	var _ func(goRoles.Set[perm], perm) goRoles.Set[perm] = goRoles.Set[perm].Add
	var _ func(goRoles.Set[perm], perm) goRoles.Set[perm] = goRoles.Set[perm].Remove
	var _ func(goRoles.Set[perm], perm) bool = goRoles.Set[perm].Has
	var _ func(goRoles.Set[perm]) uint64 = goRoles.Set[perm].Value

	var _ unchecked.Set[perm]
	var _ unchecked.Value[perm]
	_ = unchecked.Empty[perm]
	_ = unchecked.FromValue[perm]
	_ = unchecked.Role[perm]
	_ = unchecked.Raw[perm]
	_ = unchecked.TryRole[perm]
	_ = unchecked.TryRaw[perm]

	var _ func(*goRoles.Manager[perm], middleware.Extractor[perm], ...perm) func(http.Handler) http.Handler = middleware.Require[perm]
	var _ func(*goRoles.Manager[perm], middleware.Extractor[perm], ...perm) func(http.Handler) http.Handler = middleware.RequireAny[perm]
	_ = middleware.BearerExtractor[perm]
	_ = middleware.FromContext[perm]
}
