package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/plus3/blockfall/config"
	debugui_ebiten "github.com/plus3/blockfall/debugui/ebiten"
)

func main() {
	configPath := flag.String("config", "", "Path to a YAML config file.")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	backend := debugui_ebiten.NewImguiBackend("blockfall", ScreenWidth, ScreenHeight)
	game := NewGame(cfg, backend, log.Default())

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
