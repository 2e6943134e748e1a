// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/urfave/cli/v2"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/katalvlaran/lvfuzzy/codec"
	"github.com/katalvlaran/lvfuzzy/fuzzy"
	"github.com/katalvlaran/lvfuzzy/metrics"
)

var errNoDefinition = errors.New("at least one --def is required")

// assignment is one --set name=value pair.
type assignment struct {
	name  string
	value float64
}

func parseAssignments(raw []string) ([]assignment, error) {
	out := make([]assignment, 0, len(raw))
	for _, s := range raw {
		name, val, ok := strings.Cut(s, "=")
		name = strings.TrimSpace(name)
		if !ok || name == "" {
			return nil, fmt.Errorf("invalid assignment %q, want name=value", s)
		}
		x, err := strconv.ParseFloat(strings.TrimSpace(val), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid value in %q: %w", s, err)
		}
		out = append(out, assignment{name: name, value: x})
	}

	return out, nil
}

// loadAll reads every definition into one registry so their systems can
// read each other. The first one is returned.
func (r *runner) loadAll(paths []string, extra ...fuzzy.Option) (*fuzzy.System, *fuzzy.Registry, error) {
	if len(paths) == 0 {
		return nil, nil, errNoDefinition
	}
	reg := fuzzy.NewRegistry(fuzzy.WithRegistryLogger(r.log))
	var first *fuzzy.System
	for _, p := range paths {
		sys, err := codec.ReadFile(p, r.systemOptions(append(extra, fuzzy.WithRegistry(reg))...)...)
		if err != nil {
			return nil, nil, err
		}
		r.log.Debug("definition loaded",
			zap.String("file", p),
			zap.String("system", sys.ID()),
			zap.String("name", sys.Name()),
		)
		if first == nil {
			first = sys
		}
	}

	return first, reg, nil
}

// pick returns the system whose id or name is sel, or def when sel is empty.
func pick(reg *fuzzy.Registry, def *fuzzy.System, sel string) (*fuzzy.System, error) {
	if sel == "" {
		return def, nil
	}
	if s, ok := reg.Lookup(sel); ok {
		return s, nil
	}
	for _, id := range reg.IDs() {
		if s, _ := reg.Lookup(id); s.Name() == sel {
			return s, nil
		}
	}

	return nil, fmt.Errorf("no system %q loaded", sel)
}

func (r *runner) evalCommand() *cli.Command {
	return &cli.Command{
		Name:  "eval",
		Usage: "set input values and print the defuzzified output",
		Flags: []cli.Flag{
			&cli.StringSliceFlag{Name: "def", Usage: "definition file (.yaml or .fls); repeat to load referenced systems"},
			&cli.StringFlag{Name: "system", Usage: "id or name of the system to evaluate (default: first --def)"},
			&cli.StringSliceFlag{Name: "set", Usage: "input assignment name=value, applied to every loaded system having that variable"},
			&cli.BoolFlag{Name: "raw", Usage: "print the centroid instead of the normalized output"},
			&cli.StringFlag{Name: "metrics-file", Usage: "write Prometheus metrics to this file"},
		},
		Action: func(ctx *cli.Context) error {
			sets, err := parseAssignments(ctx.StringSlice("set"))
			if err != nil {
				return err
			}

			promReg := prometheus.NewRegistry()
			col := metrics.NewCollector(promReg)
			first, reg, err := r.loadAll(ctx.StringSlice("def"), fuzzy.WithObserver(col))
			if err != nil {
				return err
			}
			sys, err := pick(reg, first, ctx.String("system"))
			if err != nil {
				return err
			}

			for _, a := range sets {
				applied := false
				for _, id := range reg.IDs() {
					s, _ := reg.Lookup(id)
					if _, err := s.VariableByName(a.name); err != nil {
						continue
					}
					if err := s.SetValue(a.name, a.value); err != nil {
						return fmt.Errorf("set %s: %w", a.name, err)
					}
					applied = true
				}
				if !applied {
					return fmt.Errorf("set %s: %w", a.name, fuzzy.ErrVariableNotFound)
				}
			}

			out, err := sys.Output()
			if err != nil {
				return err
			}
			if ctx.Bool("raw") {
				res, _ := sys.Defuzzify()
				out = res.Centroid.X
			}
			r.log.Info("evaluated",
				zap.String("system", sys.ID()),
				zap.Float64("output", out),
			)
			fmt.Fprintln(ctx.App.Writer, strconv.FormatFloat(out, 'g', -1, 64))

			path := ctx.String("metrics-file")
			if path == "" {
				path = r.cfg.MetricsFile
			}
			if path != "" {
				if err := prometheus.WriteToTextfile(path, promReg); err != nil {
					return fmt.Errorf("failed to write metrics: %w", err)
				}
			}

			return nil
		},
	}
}

func (r *runner) packCommand() *cli.Command {
	return &cli.Command{
		Name:  "pack",
		Usage: "convert a definition into the binary envelope",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "def", Required: true, Usage: "source definition"},
			&cli.StringFlag{Name: "out", Required: true, Usage: "destination file (.fls)"},
		},
		Action: func(ctx *cli.Context) error {
			sys, err := codec.ReadFile(ctx.String("def"), r.systemOptions()...)
			if err != nil {
				return err
			}
			if err = codec.WriteFile(ctx.String("out"), sys); err != nil {
				return err
			}
			r.log.Info("packed", zap.String("system", sys.ID()), zap.String("out", ctx.String("out")))

			return nil
		},
	}
}

func (r *runner) inspectCommand() *cli.Command {
	return &cli.Command{
		Name:  "inspect",
		Usage: "print a definition as YAML",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "in", Required: true, Usage: "definition file (.fls or .yaml)"},
		},
		Action: func(ctx *cli.Context) error {
			sys, err := codec.ReadFile(ctx.String("in"), r.systemOptions()...)
			if err != nil {
				return err
			}
			b, err := codec.EncodeYAML(sys)
			if err != nil {
				return err
			}
			_, err = ctx.App.Writer.Write(b)

			return err
		},
	}
}

func (r *runner) checkCommand() *cli.Command {
	return &cli.Command{
		Name:  "check",
		Usage: "validate wiring: targets, operands, duplicate writers and cycles",
		Flags: []cli.Flag{
			&cli.StringSliceFlag{Name: "def", Usage: "definition file; repeat to check cross-system references"},
		},
		Action: func(ctx *cli.Context) error {
			_, reg, err := r.loadAll(ctx.StringSlice("def"))
			if err != nil {
				return err
			}

			problems := 0
			for _, id := range reg.IDs() {
				s, _ := reg.Lookup(id)
				errs := multierr.Errors(s.ValidateContext(ctx.Context))
				for _, e := range errs {
					fmt.Fprintf(ctx.App.Writer, "%s: %v\n", label(s), e)
				}
				if len(errs) == 0 {
					fmt.Fprintf(ctx.App.Writer, "%s: ok\n", label(s))
				}
				problems += len(errs)
			}
			if problems > 0 {
				return fmt.Errorf("%d problem(s) found", problems)
			}

			return nil
		},
	}
}

func (r *runner) followCommand() *cli.Command {
	return &cli.Command{
		Name:  "follow",
		Usage: "move a source toward a target, speed driven by the distance",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "def", Usage: "definition with a \"distance\" input (default: built-in)"},
			&cli.Float64Flag{Name: "source", Value: 0, Usage: "start position"},
			&cli.Float64Flag{Name: "target", Value: 100, Usage: "target position"},
			&cli.Float64Flag{Name: "dt", Value: 0.1, Usage: "seconds per tick"},
			&cli.IntFlag{Name: "ticks", Value: 50, Usage: "number of ticks"},
		},
		Action: func(ctx *cli.Context) error {
			var (
				sys *fuzzy.System
				err error
			)
			if path := ctx.String("def"); path != "" {
				sys, err = codec.ReadFile(path, r.systemOptions()...)
			} else {
				sys, err = codec.DecodeYAML(followDefinition, r.systemOptions()...)
			}
			if err != nil {
				return err
			}

			pos, target, dt := ctx.Float64("source"), ctx.Float64("target"), ctx.Float64("dt")
			for tick := 0; tick < ctx.Int("ticks"); tick++ {
				dist := math.Abs(target - pos)
				if err = sys.SetValue("distance", dist); err != nil {
					return err
				}
				var speed float64
				if speed, err = sys.Output(); err != nil {
					return err
				}
				step := speed * sys.OutputVariable().MaxNominal() * dt
				pos += math.Copysign(math.Min(step, dist), target-pos)
				fmt.Fprintf(ctx.App.Writer, "%d\t%.3f\t%.3f\t%.3f\n", tick, pos, dist, speed)
			}

			return nil
		},
	}
}

func label(s *fuzzy.System) string {
	if s.Name() != "" {
		return s.Name()
	}

	return s.ID()
}
