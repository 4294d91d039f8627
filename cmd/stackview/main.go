package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/stackdrop/grid/debugui"
	debugui_ebiten "github.com/plus3/stackdrop/grid/debugui/ebiten"
	"github.com/plus3/stackdrop/internal/config"
	"github.com/plus3/stackdrop/notation"
	"go.uber.org/zap"
)

const inspectorWidth = 640

func main() {
	configPath := flag.String("config", "", "Path to a YAML config file.")
	inspector := flag.Bool("inspector", true, "Show the Dear ImGui inspector panels.")
	flag.Parse()

	if flag.NArg() != 1 {
		log.Fatal("usage: stackview [flags] <line>, for example: stackview I0,I6,T4,J8,T6,I0,T3")
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal(err)
	}
	logger, err := zap.NewDevelopment()
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	moves, err := notation.ParseLine(flag.Arg(0))
	if err != nil {
		log.Fatal(err)
	}

	game, err := NewGame(cfg.View, moves, logger)
	if err != nil {
		log.Fatal(err)
	}

	width, height := game.ScreenSize()
	if *inspector && cfg.View.Inspector {
		ins := debugui.NewInspector(game.player.Grid(), 120)
		game.player.AddObserver(ins.Record)
		game.overlay = debugui_ebiten.NewOverlay("stackview", width+inspectorWidth, height, ins)
	} else {
		ebiten.SetWindowSize(width, height)
		ebiten.SetWindowTitle("stackview")
	}

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
