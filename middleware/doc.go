// Package middleware exposes HTTP guards that enforce role requirements on
// wrapped handlers, built on top of goRoles.Manager checks.
//
// # Guards
//
//   - [Require] — rejects unless the request's role set has every required role.
//   - [RequireAny] — rejects unless it has at least one.
//
// Each guard obtains the request's role set through a caller-supplied
// [Extractor] (for example [BearerExtractor], which reads the raw permission
// integer from a signed JWT claim), checks it through the manager so denials
// land in the metrics counters, and injects the set into the request context
// for downstream handlers ([FromContext]).
//
// # Architecture boundaries
//
// This package translates HTTP semantics into Manager checks. It does NOT
// decide where role sets come from — extraction is injected.
//
// # What this package must NOT do
//
//   - Persist or look up role sets itself (the Extractor owns that).
//   - Make authorization decisions beyond pass/reject from Manager checks.
package middleware
