// Package driver runs the frontend pipeline over one source file and prints
// what each stage produced.
package driver

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/go-logr/logr"

	"github.com/metaphox/nightcode/ast"
	"github.com/metaphox/nightcode/diag"
	"github.com/metaphox/nightcode/internal/config"
	"github.com/metaphox/nightcode/internal/metrics"
	"github.com/metaphox/nightcode/lexer"
	"github.com/metaphox/nightcode/parser"
)

// RunFile reads cfg.SourcePath and runs it through Run.
func RunFile(ctx context.Context, cfg *config.Config, out io.Writer) (string, error) {
	raw, err := os.ReadFile(cfg.SourcePath)
	if err != nil {
		return "", fmt.Errorf("reading source: %w", err)
	}
	src := string(raw)
	return src, Run(ctx, cfg, src, out)
}

// Run tokenizes src, prints the tokens and their count, parses them in the
// configured mode and prints the tree. A failed parse returns the *diag.Error
// without printing it; rendering is left to the caller.
func Run(ctx context.Context, cfg *config.Config, src string, out io.Writer) error {
	logger := logr.FromContextOrDiscard(ctx).WithValues("source", cfg.SourcePath, "mode", string(cfg.Mode))
	start := time.Now()

	tokens := lexer.Tokenize(src)
	metrics.ObserveTokens(tokens)
	logger.V(1).Info("tokenized source", "tokens", len(tokens), "latency", time.Since(start).String())

	if cfg.DumpTokens {
		for _, tok := range tokens {
			fmt.Fprintln(out, tok)
		}
	}
	fmt.Fprintf(out, "total tokens count: %d\n", len(tokens))

	node, err := parse(cfg.Mode, tokens)
	if err != nil {
		var derr *diag.Error
		if errors.As(err, &derr) {
			metrics.ObserveDiagnostic(derr)
			logger.Info("parse failed", "kind", derr.Kind.String(), "line", derr.Location.Line, "ch", derr.Location.Ch, "message", derr.Message)
		}
		return err
	}
	logger.V(1).Info("parsed source", "latency", time.Since(start).String())

	fmt.Fprintf(out, "parsed: %s\n", node)
	return nil
}

func parse(mode config.Mode, tokens []ast.Token) (ast.ValueNode, error) {
	switch mode {
	case config.ModeLiteral:
		return parser.Parse(tokens)
	case config.ModeExpression:
		return parser.ParseExpression(tokens)
	}
	return nil, fmt.Errorf("%w: %q", config.ErrUnknownMode, mode)
}
