// Package metrics counts what the frontend sees across driver runs.
package metrics

import (
	"io"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"

	"github.com/metaphox/nightcode/ast"
	"github.com/metaphox/nightcode/diag"
)

var (
	// Registry holds every frontend metric. It is separate from the default
	// registry so the exposition only carries frontend series.
	Registry = prometheus.NewRegistry()

	sourcesTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "nightcode_sources_total",
			Help: "Count of source texts passed through the lexer",
		},
	)

	tokensTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "nightcode_tokens_total",
			Help: "Count of tokens emitted by the lexer",
		}, []string{"kind"},
	)

	diagnosticsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "nightcode_diagnostics_total",
			Help: "Count of diagnostics reported by the parser",
		}, []string{"kind"},
	)
)

func init() {
	Registry.MustRegister(sourcesTotal, tokensTotal, diagnosticsTotal)
}

// ObserveTokens records one lexed source and its tokens.
func ObserveTokens(tokens []ast.Token) {
	sourcesTotal.Inc()
	for _, tok := range tokens {
		tokensTotal.WithLabelValues(tok.Kind.String()).Inc()
	}
}

// ObserveDiagnostic records one reported diagnostic.
func ObserveDiagnostic(err *diag.Error) {
	diagnosticsTotal.WithLabelValues(err.Kind.String()).Inc()
}

// Write prints every registered metric in the Prometheus text format.
func Write(w io.Writer) error {
	families, err := Registry.Gather()
	if err != nil {
		return err
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return err
		}
	}
	return nil
}
