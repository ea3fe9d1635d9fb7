// Package internaldefs holds the shared metric definitions consumed by the
// exporter packages. It exists so the prometheus and otel exporters emit the
// same names and help strings without importing each other.
package internaldefs

import (
	goRoles "github.com/MrEthical07/goRoles"
)

// CounterDef binds a goRoles metric ID to its exported name and help text.
type CounterDef struct {
	ID   goRoles.MetricID
	Name string
	Help string
}

// CounterDefs lists every exported counter in a stable order.
var CounterDefs = []CounterDef{
	{ID: goRoles.MetricFreezeOK, Name: "goroles_freeze_ok_total", Help: "Registry freezes that passed validation."},
	{ID: goRoles.MetricFreezeRejected, Name: "goroles_freeze_rejected_total", Help: "Registry freezes rejected by the validator."},
	{ID: goRoles.MetricSetsFromValue, Name: "goroles_sets_from_value_total", Help: "Role sets reconstituted from raw values."},
	{ID: goRoles.MetricRoleChecks, Name: "goroles_role_checks_total", Help: "Authorization checks performed."},
	{ID: goRoles.MetricRoleCheckDenied, Name: "goroles_role_checks_denied_total", Help: "Authorization checks that denied access."},
}
