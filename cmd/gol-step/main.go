package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"time"

	"gol/internal/app"
)

func main() {
	cfg := app.NewStepConfig()
	cfg.Bind(flag.CommandLine)
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [flags] file.gol...\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	paths := flag.Args()
	if len(paths) == 0 {
		flag.Usage()
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	start := time.Now()
	if err := app.NewStepper(*cfg, nil).Run(ctx, paths); err != nil {
		log.Fatal(err)
	}
	log.Printf("stepped %d file(s) %d turn(s) in %s", len(paths), cfg.Turns, time.Since(start).Round(time.Millisecond))
}
