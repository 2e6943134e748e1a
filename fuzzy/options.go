// SPDX-License-Identifier: MIT

package fuzzy

import (
	"go.uber.org/zap"

	"github.com/katalvlaran/lvfuzzy/inference"
	"github.com/katalvlaran/lvfuzzy/variable"
)

// Option configures a System at construction.
type Option func(*config)

type config struct {
	id          string
	name        string
	registry    *Registry
	log         *zap.Logger
	observer    Observer
	maxDepth    int
	subdivision int
	newID       func() string
	inputOpts   []variable.Option
	outputOpts  []variable.Option
}

func defaultConfig() config {
	return config{
		log:      zap.NewNop(),
		observer: NopObserver{},
		maxDepth: inference.DefaultMaxDepth,
		newID:    newUUID,
	}
}

// WithID fixes the system id instead of generating one.
func WithID(id string) Option {
	return func(c *config) { c.id = id }
}

// WithName sets the human-readable name.
func WithName(name string) Option {
	return func(c *config) { c.name = name }
}

// WithRegistry registers the new system in r, making it readable as an
// operand by other systems of r.
func WithRegistry(r *Registry) Option {
	return func(c *config) { c.registry = r }
}

// WithLogger sets the logger. A nil logger has no effect.
func WithLogger(l *zap.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.log = l
		}
	}
}

// WithObserver installs an Observer notified after every Output.
// A nil observer has no effect.
func WithObserver(o Observer) Option {
	return func(c *config) {
		if o != nil {
			c.observer = o
		}
	}
}

// WithMaxDepth overrides inference.DefaultMaxDepth.
func WithMaxDepth(d int) Option {
	return func(c *config) {
		if d >= 1 {
			c.maxDepth = d
		}
	}
}

// WithSubdivision sets the sample count of the output variable.
func WithSubdivision(n int) Option {
	return func(c *config) {
		if n >= 1 {
			c.subdivision = n
		}
	}
}

// WithIDGenerator replaces the uuid generator used for every new id.
func WithIDGenerator(fn func() string) Option {
	return func(c *config) {
		if fn != nil {
			c.newID = fn
		}
	}
}

// WithInputOptions configures the input variable created by New and every
// later AddInput call.
func WithInputOptions(opts ...variable.Option) Option {
	return func(c *config) { c.inputOpts = append(c.inputOpts, opts...) }
}

// WithOutputOptions configures the output variable created by New.
func WithOutputOptions(opts ...variable.Option) Option {
	return func(c *config) { c.outputOpts = append(c.outputOpts, opts...) }
}
