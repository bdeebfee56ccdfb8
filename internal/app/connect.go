package app

import (
	"context"
	"fmt"

	"life-web/internal/client"
	"life-web/internal/sim"
)

// Connect reaches the server, creates a world when cfg asks for one, and
// returns the client with the current snapshot.
func Connect(ctx context.Context, cfg *Config) (*client.Client, sim.Snapshot, error) {
	c := client.New(cfg.Server, nil)
	if cfg.Width > 0 {
		h := cfg.Height
		if h <= 0 {
			h = cfg.Width
		}
		if err := c.NewWorld(ctx, cfg.Width, h, cfg.Velocity); err != nil {
			return nil, sim.Snapshot{}, fmt.Errorf("create world: %w", err)
		}
	}
	snap, err := c.Snapshot(ctx)
	if err != nil {
		return nil, sim.Snapshot{}, fmt.Errorf("fetch world from %s: %w", cfg.Server, err)
	}
	return c, snap, nil
}
