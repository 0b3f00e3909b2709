package server

// Config holds configuration for the HTTP server.
type Config struct {
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"3000"`
	// Swagger enables the interactive API documentation under /swagger.
	Swagger bool `mapstructure:"swagger" default:"true"`
	// Metrics enables the Prometheus scrape endpoint under /metrics.
	Metrics bool `mapstructure:"metrics" default:"true"`
	// BodyLimit is the maximum accepted request body size in bytes.
	BodyLimit int `mapstructure:"body_limit" default:"1048576"`
}

// DefaultBodyLimit is used when BodyLimit is not positive.
const DefaultBodyLimit = 1 << 20

// Address returns the listen address for the configured port.
func (c Config) Address() string {
	return ":" + c.Port
}

// EffectiveBodyLimit returns BodyLimit, falling back to DefaultBodyLimit.
func (c Config) EffectiveBodyLimit() int {
	if c.BodyLimit <= 0 {
		return DefaultBodyLimit
	}
	return c.BodyLimit
}
