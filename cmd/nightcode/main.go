package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/go-logr/logr"

	"github.com/metaphox/nightcode/diag"
	"github.com/metaphox/nightcode/internal/config"
	"github.com/metaphox/nightcode/internal/driver"
	"github.com/metaphox/nightcode/internal/logging"
	"github.com/metaphox/nightcode/internal/metrics"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg := config.Default()
	if path := configPath(os.Args[1:]); path != "" {
		if err := cfg.LoadFile(path); err != nil {
			return err
		}
	}

	set := flag.NewFlagSet(os.Args[0], flag.ExitOnError)
	set.String("config", "", "Path to a YAML config file")
	cfg.Bind(set)
	_ = set.Parse(os.Args[1:])
	if set.NArg() > 0 {
		cfg.SourcePath = set.Arg(0)
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, sync, err := logging.New(cfg.Debug)
	if err != nil {
		return err
	}
	defer sync()
	ctx := logr.NewContext(context.Background(), logger)

	src, err := driver.RunFile(ctx, cfg, os.Stdout)
	if cfg.Metrics {
		if merr := metrics.Write(os.Stdout); merr != nil {
			logger.Error(merr, "writing metrics")
		}
	}

	var derr *diag.Error
	if errors.As(err, &derr) {
		sync()
		if cfg.Snippet {
			fmt.Fprint(os.Stdout, derr.Snippet(src))
			os.Exit(1)
		}
		derr.Throw()
	}
	return err
}

// configPath finds the -config flag ahead of full flag parsing so that file
// values become the defaults the other flags override.
func configPath(args []string) string {
	for i, arg := range args {
		if arg == "--" {
			break
		}
		name, value, hasValue := strings.Cut(strings.TrimLeft(arg, "-"), "=")
		if !strings.HasPrefix(arg, "-") || name != "config" {
			continue
		}
		if hasValue {
			return value
		}
		if i+1 < len(args) {
			return args[i+1]
		}
	}
	return ""
}
