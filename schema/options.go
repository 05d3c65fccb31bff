package schema

// Option configures schema construction, mirroring the functional
// options the teacher's builder exposes for per-field configuration —
// here scoped to schema-wide concerns instead of one field.
type Option func(*Config)

// Config holds schema-wide settings applied once at construction time.
type Config struct {
	// MaxDepth bounds selection-set nesting during validation; 0 means
	// unlimited.
	MaxDepth int
}

// WithMaxDepth rejects documents whose selection sets nest deeper than
// depth during validation.
func WithMaxDepth(depth int) Option {
	return func(c *Config) {
		c.MaxDepth = depth
	}
}

// NewConfig applies opts over the zero-value Config.
func NewConfig(opts ...Option) *Config {
	c := &Config{}
	for _, opt := range opts {
		opt(c)
	}
	return c
}
