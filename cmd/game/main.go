package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/Draeloric/Synaptic-Weave/internal/audio"
	"github.com/Draeloric/Synaptic-Weave/internal/game"
)

func main() {
	var configPath string
	flag.StringVar(&configPath, "config", "", "optional YAML config file")
	flag.Parse()

	cfg, err := game.LoadConfig(configPath)
	if err != nil {
		log.Fatal(err)
	}

	var sounds *audio.Manager
	if cfg.Audio.Enabled {
		sounds = audio.NewManager(cfg.Audio.MasterVolume)
		if err := sounds.Initialize(); err != nil {
			// Audio is a nicety; play on without it.
			log.Printf("audio disabled: %v", err)
			sounds = nil
		}
	}

	snapshots := game.FileSnapshotWriter{Dir: cfg.SnapshotDir}

	ebiten.SetWindowTitle("Synaptic Weave")
	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	if err := ebiten.RunGame(game.New(cfg, snapshots, sounds)); err != nil {
		log.Fatal(err)
	}
}
