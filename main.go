package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/gyre/audio"
	"github.com/lixenwraith/gyre/config"
	"github.com/lixenwraith/gyre/core"
	"github.com/lixenwraith/gyre/engine"
)

func main() {
	configPath := flag.String("config", "", "path to TOML config file")
	variantFlag := flag.String("variant", "", "axis table variant: star or rosette (overrides config)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "gyre: %v\n", err)
		os.Exit(1)
	}
	if *variantFlag != "" {
		cfg.Field.Variant = *variantFlag
	}

	variant, styleID, orient, err := cfg.Resolve()
	if err != nil {
		fmt.Fprintf(os.Stderr, "gyre: %v\n", err)
		os.Exit(1)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "gyre: terminal: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "gyre: terminal init: %v\n", err)
		os.Exit(1)
	}
	core.SetCrashCleanup(screen.Fini)

	sound := audio.NewService()
	if err := sound.Init(); err != nil {
		// Non-fatal, the field can run without sound
		log.Printf("audio initialization failed: %v", err)
	}
	sound.SetVolume(cfg.Audio.Volume)
	sound.SetMuted(cfg.Audio.Muted)
	if err := sound.Start(); err != nil {
		log.Printf("audio start failed: %v", err)
	}

	app, err := engine.NewApp(screen, sound, engine.Config{
		Variant:     variant,
		Style:       styleID,
		Orientation: orient,
	})
	if err != nil {
		screen.Fini()
		fmt.Fprintf(os.Stderr, "gyre: %v\n", err)
		os.Exit(1)
	}

	loop := engine.NewLoop(cfg.Render.FPS, app.Tick)
	core.Go(func() {
		engine.PollInput(screen, app.Queue())
	})

	loop.Run()

	app.Teardown()
	screen.Fini()
}
