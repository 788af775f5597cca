package metrics

import (
	"bytes"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/metaphox/nightcode/ast"
	"github.com/metaphox/nightcode/diag"
)

func TestObserveTokens(t *testing.T) {
	sources := testutil.ToFloat64(sourcesTotal)
	ints := testutil.ToFloat64(tokensTotal.WithLabelValues("LiteralInteger"))
	eofs := testutil.ToFloat64(tokensTotal.WithLabelValues("EOF"))

	ObserveTokens([]ast.Token{
		{Kind: ast.LiteralInteger, Value: "1"},
		{Kind: ast.PunOperatorPlus, Value: "+"},
		{Kind: ast.LiteralInteger, Value: "2"},
		{Kind: ast.EOF, Value: "\x00"},
	})

	assert.Equal(t, sources+1, testutil.ToFloat64(sourcesTotal))
	assert.Equal(t, ints+2, testutil.ToFloat64(tokensTotal.WithLabelValues("LiteralInteger")))
	assert.Equal(t, eofs+1, testutil.ToFloat64(tokensTotal.WithLabelValues("EOF")))
}

func TestObserveDiagnostic(t *testing.T) {
	before := testutil.ToFloat64(diagnosticsTotal.WithLabelValues("SyntaxError"))
	ObserveDiagnostic(diag.Syntax("found undefined token", ast.Location{Line: 1, Ch: 1}))
	assert.Equal(t, before+1, testutil.ToFloat64(diagnosticsTotal.WithLabelValues("SyntaxError")))
}

func TestWrite(t *testing.T) {
	ObserveTokens([]ast.Token{{Kind: ast.EOF, Value: "\x00"}})

	var buf bytes.Buffer
	require.NoError(t, Write(&buf))
	assert.Contains(t, buf.String(), "# TYPE nightcode_sources_total counter")
	assert.Contains(t, buf.String(), `nightcode_tokens_total{kind="EOF"}`)
}
