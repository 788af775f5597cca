package driver

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-logr/logr"
	"github.com/go-logr/logr/testr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/metaphox/nightcode/diag"
	"github.com/metaphox/nightcode/internal/config"
)

func newTestContext(t *testing.T) context.Context {
	return logr.NewContext(context.Background(), testr.New(t))
}

func TestRunLiteralMode(t *testing.T) {
	var out bytes.Buffer
	cfg := config.Default()

	require.NoError(t, Run(newTestContext(t), cfg, "1+2", &out))
	assert.Equal(t,
		"token (at line: 1, ch: 1) | value: 1 | kind: LiteralInteger\n"+
			"token (at line: 1, ch: 2) | value: + | kind: PunOperatorPlus\n"+
			"token (at line: 1, ch: 3) | value: 2 | kind: LiteralInteger\n"+
			"token (at line: 1, ch: 4) | value: \\0 | kind: EOF\n"+
			"total tokens count: 4\n"+
			"parsed: 1\n",
		out.String())
}

func TestRunExpressionMode(t *testing.T) {
	var out bytes.Buffer
	cfg := config.Default()
	cfg.Mode = config.ModeExpression
	cfg.DumpTokens = false

	require.NoError(t, Run(newTestContext(t), cfg, "1 + 2 * (3 - -4);", &out))
	assert.Equal(t, "total tokens count: 12\nparsed: (1 + (2 * (3 - (-4))))\n", out.String())
}

func TestRunReturnsDiagnostic(t *testing.T) {
	var out bytes.Buffer
	cfg := config.Default()
	cfg.DumpTokens = false

	err := Run(newTestContext(t), cfg, "@", &out)
	var derr *diag.Error
	require.True(t, errors.As(err, &derr))
	assert.Equal(t, diag.SyntaxError, derr.Kind)
	assert.Equal(t, "total tokens count: 2\n", out.String())
}

func TestRunUnknownMode(t *testing.T) {
	cfg := config.Default()
	cfg.Mode = "pratt"
	err := Run(context.Background(), cfg, "1", &bytes.Buffer{})
	assert.ErrorIs(t, err, config.ErrUnknownMode)
}

func TestRunFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "main.nc")
	require.NoError(t, os.WriteFile(path, []byte("3.14\n"), 0o644))

	var out bytes.Buffer
	cfg := config.Default()
	cfg.SourcePath = path
	cfg.DumpTokens = false

	src, err := RunFile(newTestContext(t), cfg, &out)
	require.NoError(t, err)
	assert.Equal(t, "3.14\n", src)
	assert.Equal(t, "total tokens count: 2\nparsed: 3.14\n", out.String())
}

func TestRunFileMissing(t *testing.T) {
	cfg := config.Default()
	cfg.SourcePath = filepath.Join(t.TempDir(), "absent.nc")
	_, err := RunFile(context.Background(), cfg, &bytes.Buffer{})
	assert.ErrorIs(t, err, os.ErrNotExist)
}
