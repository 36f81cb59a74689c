package damage

// Option configures a Driver during creation.
//
// Example:
//
//	d, err := damage.NewDriver(hooks,
//	    damage.WithSurfaceSize(1280, 720),
//	    damage.WithHistoryCapacity(4),
//	)
type Option func(*Config)

// WithConfig replaces the whole configuration, typically one read with
// LoadConfig. Options given after it still apply.
func WithConfig(cfg Config) Option {
	return func(c *Config) {
		*c = cfg
	}
}

// WithHistoryCapacity sets how many frame damages are remembered.
// It bounds the largest buffer age that can be reconstructed exactly.
func WithHistoryCapacity(n int) Option {
	return func(c *Config) {
		c.HistoryCapacity = n
	}
}

// WithFallbackAge sets the buffer age assumed when the driver has no
// buffer age capability.
func WithFallbackAge(age int) Option {
	return func(c *Config) {
		c.FallbackAge = age
	}
}

// WithSurfaceSize sets the initial surface size.
func WithSurfaceSize(width, height int) Option {
	return func(c *Config) {
		c.Width, c.Height = width, height
	}
}
