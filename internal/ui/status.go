package ui

import (
	"fmt"
	"strings"

	"life-web/internal/sim"
)

// StatusLine summarizes a snapshot for the viewers' header line.
func StatusLine(snap sim.Snapshot, err error, paused bool) string {
	var b strings.Builder
	if snap.World.IsZero() {
		b.WriteString("waiting for world")
	} else {
		fmt.Fprintf(&b, "generation %d  alive %d/%d  every %gs",
			snap.Generation, snap.World.Population(), snap.Width*snap.Height, snap.Velocity)
	}
	if paused {
		b.WriteString("  [paused]")
	}
	if err != nil {
		fmt.Fprintf(&b, "  error: %v", err)
	}
	return b.String()
}

// Help lists the key bindings shared by the viewers.
const Help = "space pause  n step  r new world  q quit"
