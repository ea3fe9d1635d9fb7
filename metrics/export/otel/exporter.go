// Package otel bridges goRoles metrics into an OpenTelemetry meter via
// observable counters collected on demand.
package otel

import (
	"context"
	"errors"
	"fmt"

	"go.opentelemetry.io/otel/metric"

	goRoles "github.com/MrEthical07/goRoles"
	"github.com/MrEthical07/goRoles/metrics/export/internaldefs"
)

var (
	ErrNilMeter  = errors.New("nil meter")
	ErrNilSource = errors.New("nil metrics source")
)

// MetricsSource yields counter snapshots; goRoles.Manager satisfies it.
type MetricsSource interface {
	MetricsSnapshot() goRoles.MetricsSnapshot
}

type observedCounter struct {
	id         goRoles.MetricID
	instrument metric.Int64ObservableCounter
}

// Exporter registers one observable counter per goRoles metric and feeds
// them from snapshots inside the meter's collection callback.
type Exporter struct {
	source       MetricsSource
	registration metric.Registration
	counters     []observedCounter
}

// NewExporter registers the goRoles counters on the given meter, reading
// from source (typically a frozen goRoles.Manager) at every collection.
func NewExporter(meter metric.Meter, source MetricsSource) (*Exporter, error) {
	if meter == nil {
		return nil, ErrNilMeter
	}
	if source == nil {
		return nil, ErrNilSource
	}

	exporter := &Exporter{
		source:   source,
		counters: make([]observedCounter, 0, len(internaldefs.CounterDefs)),
	}

	observables := make([]metric.Observable, 0, len(internaldefs.CounterDefs))
	for _, def := range internaldefs.CounterDefs {
		ins, err := meter.Int64ObservableCounter(def.Name, metric.WithDescription(def.Help))
		if err != nil {
			return nil, fmt.Errorf("create observable counter %s: %w", def.Name, err)
		}
		exporter.counters = append(exporter.counters, observedCounter{id: def.ID, instrument: ins})
		observables = append(observables, ins)
	}

	registration, err := meter.RegisterCallback(func(_ context.Context, observer metric.Observer) error {
		snapshot := exporter.source.MetricsSnapshot()
		for _, c := range exporter.counters {
			observer.ObserveInt64(c.instrument, int64(snapshot.Counters[c.id]))
		}
		return nil
	}, observables...)
	if err != nil {
		return nil, fmt.Errorf("register callback: %w", err)
	}

	exporter.registration = registration
	return exporter, nil
}

// Close unregisters the collection callback.
func (e *Exporter) Close() error {
	if e == nil || e.registration == nil {
		return nil
	}
	return e.registration.Unregister()
}
