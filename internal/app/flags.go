package app

import "flag"

// Config represents the command-line parameters shared by the viewers.
type Config struct {
	Server string
	Scale  int
	TPS    int

	// Width, Height and Velocity create a new world on start when Width is set.
	Width    int
	Height   int
	Velocity float64
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Server: "http://localhost:3000", Scale: 16, TPS: 60}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Server, "server", c.Server, "base URL of the life server")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "frames per second")
	fs.IntVar(&c.Width, "width", c.Width, "create a new world with this width on start")
	fs.IntVar(&c.Height, "height", c.Height, "height of the world created on start")
	fs.Float64Var(&c.Velocity, "velocity", c.Velocity, "seconds per generation for the world created on start")
}
