//go:build ebiten

package main

import (
	"context"
	"errors"
	"flag"
	"log"

	"life-web/internal/app"
	"life-web/internal/feed"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	c, snap, err := app.Connect(ctx, cfg)
	if err != nil {
		log.Fatal(err)
	}
	f := feed.New(c)
	go f.Run(ctx)

	game := app.New(f, snap.Width, snap.Height, cfg.Scale, snap.Velocity)

	ebiten.SetWindowTitle("Game of Life — " + cfg.Server)
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(game.Layout(0, 0))

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
