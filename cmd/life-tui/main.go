package main

import (
	"flag"

	"life-ca/internal/app"
	"life-ca/internal/tui"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	fps := flag.Float64("fps", 60, "terminal redraws per second")
	flag.Parse()

	tui.Run(cfg.LifeConfig(), *fps)
}
