package main

import (
	"flag"
	"log"
	"os"

	"chosenoffset.com/corridor/internal/audio"
	"chosenoffset.com/corridor/internal/config"
	"chosenoffset.com/corridor/internal/game"
	"chosenoffset.com/corridor/internal/render"
	ebitenrender "chosenoffset.com/corridor/internal/render/ebiten"
	"chosenoffset.com/corridor/internal/render/terminal"
	"chosenoffset.com/corridor/internal/world"
	"chosenoffset.com/corridor/internal/world/maploader"
)

var (
	configFlag  = flag.String("config", "", "Path to a YAML config file")
	mapFlag     = flag.String("map", "", "Path to a map file (overrides the config)")
	backendFlag = flag.String("backend", "ebiten", "Renderer backend: ebiten or terminal")
	muteFlag    = flag.Bool("mute", false, "Disable sound")
	logFlag     = flag.String("log", "corridor.log", "Log file for the terminal backend")
)

func main() {
	flag.Parse()

	if *backendFlag == "terminal" {
		// The terminal owns stdout and stderr while the game runs
		f, err := os.OpenFile(*logFlag, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			log.Fatalf("Failed to open log file: %v", err)
		}
		defer f.Close()
		log.SetOutput(f)
	}

	cfg, err := config.LoadConfig(*configFlag)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	layout, err := loadLayout(cfg)
	if err != nil {
		log.Fatalf("Failed to load map: %v", err)
	}
	w := world.New(layout, cfg)
	log.Printf("Map loaded: %d walls, %d enemies", len(w.Walls), len(w.Enemies))

	sound := audio.NewSoundManager()
	if !*muteFlag {
		if err := sound.Initialize(); err != nil {
			log.Printf("Warning: Failed to initialize audio: %v", err)
		}
		defer sound.Cleanup()
	}

	var (
		engine   render.Engine
		inputMgr render.InputManager
	)
	switch *backendFlag {
	case "ebiten":
		engine = ebitenrender.NewEngine(cfg.Camera.FovY, cfg.Camera.Near, cfg.Camera.Far)
		inputMgr = ebitenrender.NewInputManager()
	case "terminal":
		termInput := terminal.NewInputManager(cfg.Window.Width, cfg.Window.Height)
		engine = terminal.NewEngine(termInput, cfg.Window.TPS, cfg.Camera.FovY, cfg.Camera.Near, cfg.Camera.Far)
		inputMgr = termInput
	default:
		log.Fatalf("Unknown backend %q", *backendFlag)
	}

	g := game.New(w, inputMgr, sound, cfg)

	// Set up the window
	engine.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	engine.SetWindowTitle(cfg.Window.Title)
	engine.SetWindowResizable(true)

	log.Println("Starting game...")
	if err := engine.RunGame(g); err != nil {
		log.Fatal(err)
	}
}

// loadLayout reads the map named by the flag or the config, falling back to
// the built-in maze.
func loadLayout(cfg *config.Config) (*maploader.Layout, error) {
	path := *mapFlag
	if path == "" {
		path = cfg.Map.Path
	}
	if path == "" {
		return maploader.Parse(maploader.DefaultRows, cfg.Map.CellSize), nil
	}
	return maploader.LoadFile(path, cfg.Map.CellSize)
}
