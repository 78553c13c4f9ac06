// SPDX-License-Identifier: MIT
// Package: lvalign/align
//
// options.go: functional options and the resolved per-call config.
//
// Contract:
//   • Options are functional (type Option func(*config)), applied in order,
//     later overrides earlier.
//   • Defaults are deterministic: a discarding logger, and renaming works
//     on a copy with automatic y<i> labels.
//   • Option constructors never panic: a nil names slice passed to WithNames
//     still means "explicit names", and is then checked for length.

package align

import (
	"github.com/go-logr/logr"
)

// Option customizes a single align call.
type Option func(*config)

// config is the resolved option set of one call. Passed by value.
type config struct {
	logger   logr.Logger // V(1) summaries, V(2) per-column decisions
	inPlace  bool        // RenameInternalNodes mutates its argument
	names    []string    // explicit internal node names, level order
	namesSet bool        // names was supplied, even if empty
}

// newConfig applies opts over the defaults.
func newConfig(opts ...Option) config {
	cfg := config{logger: logr.Discard()}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}

// WithLogger routes diagnostic output to l.
func WithLogger(l logr.Logger) Option {
	return func(c *config) { c.logger = l }
}

// WithInPlace makes RenameInternalNodes rename the tree it is given and
// return that same tree instead of a copy. The tree is mutated, so callers
// must not share it across goroutines during the call.
func WithInPlace() Option {
	return func(c *config) { c.inPlace = true }
}

// WithNames supplies explicit internal node names, assigned positionally in
// level order (root first). The slice is copied.
func WithNames(names []string) Option {
	cp := make([]string, len(names))
	copy(cp, names)

	return func(c *config) {
		c.names = cp
		c.namesSet = true
	}
}
