package gomap

import (
	"github.com/go-kit/log"
	"github.com/yayaml-go/yayaml/schema"
)

// DefaultDepth is how many collection levels below the top value ToIR
// descends into before stringifying.
const DefaultDepth = 2

// MapOption is an option for the mapping from Go values to IR.
type MapOption interface {
	applyMap(*mapConfig)
}

// UnmapOption is an option for the mapping from IR to Go values.
type UnmapOption interface {
	applyUnmap(*unmapConfig)
}

// Option applies to both directions.
type Option interface {
	MapOption
	UnmapOption
}

type mapConfig struct {
	schema    schema.Schema
	depth     int
	logger    log.Logger
	onWarning func(Warning)
}

type unmapConfig struct {
	schema     schema.Schema
	logger     log.Logger
	keepFormat bool
}

func newMapConfig(opts []MapOption) *mapConfig {
	cfg := &mapConfig{
		schema: schema.Default(),
		depth:  DefaultDepth,
		logger: log.NewNopLogger(),
	}
	for _, opt := range opts {
		opt.applyMap(cfg)
	}
	return cfg
}

func newUnmapConfig(opts []UnmapOption) *unmapConfig {
	cfg := &unmapConfig{
		schema: schema.Default(),
		logger: log.NewNopLogger(),
	}
	for _, opt := range opts {
		opt.applyUnmap(cfg)
	}
	return cfg
}

type mapFunc func(*mapConfig)

func (f mapFunc) applyMap(c *mapConfig) { f(c) }

type unmapFunc func(*unmapConfig)

func (f unmapFunc) applyUnmap(c *unmapConfig) { f(c) }

type bothOption struct {
	m mapFunc
	u unmapFunc
}

func (o bothOption) applyMap(c *mapConfig)     { o.m(c) }
func (o bothOption) applyUnmap(c *unmapConfig) { o.u(c) }

// WithSchema selects the schema. A nil schema leaves the default, core.
func WithSchema(s schema.Schema) Option {
	return bothOption{
		m: func(c *mapConfig) {
			if s != nil {
				c.schema = s
			}
		},
		u: func(c *unmapConfig) {
			if s != nil {
				c.schema = s
			}
		},
	}
}

// WithLogger receives warnings at warn level and member access failures
// at debug level.
func WithLogger(l log.Logger) Option {
	return bothOption{
		m: func(c *mapConfig) {
			if l != nil {
				c.logger = l
			}
		},
		u: func(c *unmapConfig) {
			if l != nil {
				c.logger = l
			}
		},
	}
}

// Depth bounds descent into collections and composites. Values at a
// negative remaining depth are stringified.
func Depth(n int) MapOption {
	return mapFunc(func(c *mapConfig) { c.depth = n })
}

// OnWarning is called for every warning as it is raised.
func OnWarning(f func(Warning)) MapOption {
	return mapFunc(func(c *mapConfig) { c.onWarning = f })
}

// KeepFormat wraps parsed values with non default styles or comments in
// format.Annotated so that they survive being emitted again.
func KeepFormat(v bool) UnmapOption {
	return unmapFunc(func(c *unmapConfig) { c.keepFormat = v })
}
