//go:build !ebiten

package ui

import "life-web/internal/sim"

// HUDHeight is the pixel height reserved above the grid.
const HUDHeight = 34

// HUD is a no-op placeholder for headless builds.
type HUD struct{}

// NewHUD returns nil in the headless build.
func NewHUD() *HUD { return nil }

// Update is a no-op in the headless build.
func (h *HUD) Update(sim.Snapshot, error, bool) {}

// Draw is a no-op in the headless build.
func (h *HUD) Draw(any, int) {}
