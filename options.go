package appdir

import (
	"log/slog"

	"github.com/jmgilman/go/appdir/fs/billy"
	"github.com/jmgilman/go/appdir/fs/core"
)

// Option configures the components of this package.
type Option func(*options)

type options struct {
	fs       core.FS
	roots    *Roots
	logger   *slog.Logger
	resolver *Resolver
}

// WithFS sets the filesystem provider. The default is the local disk through
// billy.NewLocal.
func WithFS(fsys core.FS) Option {
	return func(o *options) {
		o.fs = fsys
	}
}

// WithRoots fixes the base directories instead of loading them from the
// platform and environment. Every root must be absolute.
func WithRoots(roots Roots) Option {
	return func(o *options) {
		o.roots = &roots
	}
}

// WithLogger sets the logger. By default nothing is logged.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithResolver reuses an existing Resolver, skipping root resolution.
// WithRoots is ignored when a resolver is given.
func WithResolver(r *Resolver) Option {
	return func(o *options) {
		o.resolver = r
	}
}

func buildOptions(opts []Option) *options {
	o := &options{}
	for _, opt := range opts {
		if opt != nil {
			opt(o)
		}
	}
	if o.fs == nil {
		o.fs = billy.NewLocal()
	}
	return o
}

// loadResolver returns the configured resolver or builds one from the
// configured roots.
func (o *options) loadResolver() (*Resolver, error) {
	if o.resolver != nil {
		return o.resolver, nil
	}
	roots, err := o.loadRoots()
	if err != nil {
		return nil, err
	}
	return newResolver(roots, newLogger(o.logger))
}

func (o *options) loadRoots() (Roots, error) {
	if o.roots == nil {
		return LoadRoots()
	}
	if err := o.roots.validate(); err != nil {
		return Roots{}, err
	}
	return o.roots.clean(), nil
}
