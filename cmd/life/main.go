//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"life-ca/internal/app"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	cfg.BindGUI(flag.CommandLine)
	flag.Parse()

	game := app.New(cfg)
	w, h := game.Layout(0, 0)

	ebiten.SetWindowTitle("life-ca — Conway's Game of Life")
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
