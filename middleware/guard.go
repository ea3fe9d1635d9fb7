package middleware

import (
	"net/http"

	goRoles "github.com/MrEthical07/goRoles"
)

// Extractor obtains the caller's role set from an incoming request. A nil
// error means the set is authoritative for this request; an error rejects
// the request as unauthenticated.
type Extractor[T goRoles.Role] func(r *http.Request) (goRoles.Set[T], error)

// Require returns middleware that rejects requests whose role set is missing
// any of the required roles. Extraction failures yield 401, missing roles
// 403; on success the set is injected into the request context.
func Require[T goRoles.Role](m *goRoles.Manager[T], extract Extractor[T], required ...T) func(http.Handler) http.Handler {
	return guard(m, extract, func(s goRoles.Set[T]) bool {
		return m.Authorize(s, required...)
	})
}

// RequireAny is like [Require] but admits requests holding at least one of
// the given roles.
func RequireAny[T goRoles.Role](m *goRoles.Manager[T], extract Extractor[T], roles ...T) func(http.Handler) http.Handler {
	return guard(m, extract, func(s goRoles.Set[T]) bool {
		return m.AuthorizeAny(s, roles...)
	})
}

func guard[T goRoles.Role](m *goRoles.Manager[T], extract Extractor[T], allow func(goRoles.Set[T]) bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if m == nil || extract == nil {
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}

			set, err := extract(r)
			if err != nil {
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}

			if !allow(set) {
				http.Error(w, "forbidden", http.StatusForbidden)
				return
			}

			next.ServeHTTP(w, r.WithContext(withSet(r.Context(), set)))
		})
	}
}
