//go:build ebiten

package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"snowglobe/internal/app"
	"snowglobe/internal/interpret"
	"snowglobe/internal/preset"
	"snowglobe/internal/scene"
	"snowglobe/internal/settings"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	store := settings.Open()
	params, err := store.Load()
	if err != nil {
		log.Printf("using default parameters: %v", err)
	}

	presets := preset.BuiltIn()
	if cfg.PresetFile != "" {
		extra, err := preset.LoadFile(cfg.PresetFile)
		if err != nil {
			log.Fatalf("load presets: %v", err)
		}
		presets = append(presets, extra...)
	}
	if cfg.Preset != "" {
		p, ok := preset.Find(presets, cfg.Preset)
		if !ok {
			log.Fatalf("unknown preset %q", cfg.Preset)
		}
		params = p.Params
	}

	if cfg.Describe != "" {
		if cfg.InterpretURL == "" {
			log.Fatal("-describe requires -interpret-url")
		}
		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Second)
		interpreted, err := interpret.NewClient(cfg.InterpretURL).Interpret(ctx, cfg.Describe, params)
		cancel()
		if err != nil {
			log.Printf("interpretation failed, keeping previous parameters: %v", err)
		} else {
			params = interpreted
		}
	}

	world := scene.NewWorld(params, cfg.Seed, cfg.Cycle)
	game := app.New(world, presets, cfg.PanelWidth, cfg.Seed)

	ebiten.SetWindowTitle("snowglobe")
	ebiten.SetWindowSize(1100, 700)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(cfg.TPS)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}

	if err := store.Save(world.Params()); err != nil {
		log.Printf("save settings: %v", err)
	}
}
