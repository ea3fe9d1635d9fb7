// Package prometheus renders goRoles metrics in the Prometheus text
// exposition format without depending on the Prometheus client library.
package prometheus

import (
	"net/http"
	"strconv"
	"strings"

	goRoles "github.com/MrEthical07/goRoles"
	"github.com/MrEthical07/goRoles/metrics/export/internaldefs"
)

// MetricsSource yields counter snapshots; goRoles.Manager satisfies it.
type MetricsSource interface {
	MetricsSnapshot() goRoles.MetricsSnapshot
}

// Exporter renders a source's counters in Prometheus text exposition format.
type Exporter struct {
	source MetricsSource
}

// NewExporter creates an exporter reading from the given source, typically a
// frozen goRoles.Manager.
func NewExporter(source MetricsSource) *Exporter {
	return &Exporter{source: source}
}

// Handler returns an http.Handler that serves the rendered metrics.
func (e *Exporter) Handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; version=0.0.4; charset=utf-8")
		_, _ = w.Write([]byte(e.Render()))
	})
}

// Render writes the current counters in Prometheus text exposition format.
// A source with no recorded activity renders empty.
func (e *Exporter) Render() string {
	if e == nil || e.source == nil {
		return ""
	}

	snapshot := e.source.MetricsSnapshot()

	var total uint64
	for _, v := range snapshot.Counters {
		total += v
	}
	if total == 0 {
		return ""
	}

	var b strings.Builder
	b.Grow(2048)

	for _, def := range internaldefs.CounterDefs {
		writeCounter(&b, def.Name, def.Help, snapshot.Counters[def.ID])
	}

	return b.String()
}

func writeCounter(b *strings.Builder, name, help string, value uint64) {
	b.WriteString("# HELP ")
	b.WriteString(name)
	b.WriteByte(' ')
	b.WriteString(escapeHelp(help))
	b.WriteByte('\n')
	b.WriteString("# TYPE ")
	b.WriteString(name)
	b.WriteString(" counter\n")
	b.WriteString(name)
	b.WriteByte(' ')
	b.WriteString(strconv.FormatUint(value, 10))
	b.WriteByte('\n')
}

func escapeHelp(help string) string {
	help = strings.ReplaceAll(help, "\\", "\\\\")
	help = strings.ReplaceAll(help, "\n", "\\n")
	return help
}
