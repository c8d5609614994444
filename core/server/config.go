package server

// Config holds configuration for the local HTTP surface.
type Config struct {
	// Host is the interface the server binds to. The surface presents a
	// single-user local catalog, so it stays on loopback by default.
	Host string `mapstructure:"host" default:"127.0.0.1"`
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"8080"`
}

// Addr returns the listen address in host:port form.
func (c Config) Addr() string {
	return c.Host + ":" + c.Port
}
