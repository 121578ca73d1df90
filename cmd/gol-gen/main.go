package main

import (
	"flag"
	"log"

	"gol/internal/app"
	_ "gol/internal/patterns"
)

func main() {
	cfg := app.NewGenConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	if err := app.Generate(*cfg); err != nil {
		log.Fatal(err)
	}
	log.Printf("wrote %dx%d %s board to %s", cfg.Width, cfg.Height, cfg.Pattern, cfg.Out)
}
