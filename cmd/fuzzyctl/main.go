// SPDX-License-Identifier: MIT

// Command fuzzyctl loads, checks, converts and evaluates fuzzy systems.
//
//	fuzzyctl eval --def follow.yaml --set distance=40
//	fuzzyctl pack --def follow.yaml --out follow.fls
//	fuzzyctl inspect --in follow.fls
//	fuzzyctl check --def follow.yaml
//	fuzzyctl follow --target 100 --ticks 50
package main

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/pelletier/go-toml/v2"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/lvfuzzy/fuzzy"
)

// fileConfig is the optional TOML configuration.
type fileConfig struct {
	Verbose     bool   `toml:"verbose,omitempty"`
	Subdivision int    `toml:"subdivision,omitempty"`
	MaxDepth    int    `toml:"max_depth,omitempty"`
	MetricsFile string `toml:"metrics_file,omitempty"`
}

func loadConfig(path string) (fileConfig, error) {
	var cfg fileConfig
	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to load configuration: %w", err)
	}
	err = toml.NewDecoder(bytes.NewReader(raw)).DisallowUnknownFields().Decode(&cfg)
	if err != nil {
		return cfg, fmt.Errorf("failed to decode configuration: %w", err)
	}

	return cfg, nil
}

func initLogger(verbose bool) (*zap.Logger, error) {
	c := zap.NewDevelopmentConfig()
	c.DisableStacktrace = true
	c.EncoderConfig.EncodeCaller = func(
		caller zapcore.EntryCaller, enc zapcore.PrimitiveArrayEncoder) {
		p := caller.TrimmedPath()
		if len(p) > 30 {
			p = "..." + p[len(p)-27:]
		}
		enc.AppendString(fmt.Sprintf("%30s", p))
	}
	if !verbose {
		c.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}

	return c.Build()
}

// runner carries what every command shares once Before has run.
type runner struct {
	log *zap.Logger
	cfg fileConfig
	out io.Writer
}

// systemOptions turns the configuration into options for every loaded system.
func (r *runner) systemOptions(extra ...fuzzy.Option) []fuzzy.Option {
	opts := []fuzzy.Option{fuzzy.WithLogger(r.log)}
	if r.cfg.Subdivision > 0 {
		opts = append(opts, fuzzy.WithSubdivision(r.cfg.Subdivision))
	}
	if r.cfg.MaxDepth > 0 {
		opts = append(opts, fuzzy.WithMaxDepth(r.cfg.MaxDepth))
	}

	return append(opts, extra...)
}

func newApp(out io.Writer) *cli.App {
	r := &runner{log: zap.NewNop(), out: out}

	return &cli.App{
		Name:      "fuzzyctl",
		Usage:     "evaluate and manage fuzzy inference systems",
		Writer:    out,
		ErrWriter: out,
		// errors are reported by main
		ExitErrHandler: func(*cli.Context, error) {},
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "config",
				Usage: "TOML configuration file",
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "enable debug logging",
			},
		},
		Before: func(ctx *cli.Context) error {
			if path := ctx.String("config"); path != "" {
				cfg, err := loadConfig(path)
				if err != nil {
					return err
				}
				r.cfg = cfg
			}
			log, err := initLogger(r.cfg.Verbose || ctx.Bool("verbose"))
			if err != nil {
				return fmt.Errorf("failed to build logger: %w", err)
			}
			r.log = log

			return nil
		},
		After: func(*cli.Context) error {
			_ = r.log.Sync()
			return nil
		},
		Commands: []*cli.Command{
			r.evalCommand(),
			r.packCommand(),
			r.inspectCommand(),
			r.checkCommand(),
			r.followCommand(),
		},
	}
}

func main() {
	if err := newApp(os.Stdout).Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
