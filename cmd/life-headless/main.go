package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"

	"life-ca/internal/app"
	"life-ca/internal/driver"
	"life-ca/internal/render"
	"life-ca/pkg/sims/life"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	generations := flag.Int("generations", 0, "stop after this many generations (0 runs until interrupted)")
	quiet := flag.Bool("quiet", false, "only print the final board")
	commands := flag.Bool("stdin", false, "read control commands (pause, resume, size N, speed N, ...) from stdin")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	loop := driver.NewLoop(16)
	d := driver.New(life.New(cfg.LifeConfig()), driver.NewTickerScheduler(loop))
	d.OnStep(func(e *life.Engine) {
		if !*quiet {
			printFrame(os.Stdout, e)
		}
		if *generations > 0 && e.Generation() >= *generations {
			cancel()
		}
	})

	if !*quiet {
		printFrame(os.Stdout, d.Engine())
	}
	loop.Post(d.Start)
	if *commands {
		go readCommands(os.Stdin, loop, d)
	}

	err := loop.Run(ctx)
	d.Close()
	if *quiet {
		printFrame(os.Stdout, d.Engine())
	}
	if err != nil && !errors.Is(err, context.Canceled) {
		log.Fatal(err)
	}
}

func readCommands(r io.Reader, loop *driver.Loop, d *driver.Driver) {
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		cmd, err := driver.ParseCommand(sc.Text())
		if err != nil {
			log.Printf("ignoring command: %v", err)
			continue
		}
		if !loop.Post(func() { cmd(d) }) {
			return
		}
	}
	if err := sc.Err(); err != nil {
		log.Printf("reading commands: %v", err)
	}
}

func printFrame(w io.Writer, e *life.Engine) {
	state := "running"
	if !e.Running() {
		state = "paused"
	}
	fmt.Fprintf(w, "gen %d  live %d  size %d  %s  %dms\n%s\n",
		e.Generation(), e.Grid().Alive(), e.Size(), state, e.IntervalMs(), render.Text(e.Grid()))
}
