package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/wanigame/wanirogue/internal/config"
	"github.com/wanigame/wanirogue/internal/dungeon"
	"github.com/wanigame/wanirogue/internal/logger"
	"github.com/wanigame/wanirogue/internal/mapfile"
)

func main() {
	width := flag.Int("width", 0, "Map width in cells (default from config)")
	height := flag.Int("height", 0, "Map height in cells (default from config)")
	seed := flag.Int64("seed", 0, "Seed for random generation (0 uses config, then the clock)")
	configPath := flag.String("config", "data/mapgen.yaml", "Path to generator config")
	loggingPath := flag.String("logging", "data/logging.yaml", "Path to logging config")
	outDir := flag.String("out", "", "Output directory for dungeon.yaml (empty to skip)")
	ascii := flag.Bool("ascii", false, "Print the map as ASCII")
	flag.Parse()

	logConfig, err := logger.LoadConfig(*loggingPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to load logging config: %v\n", err)
		os.Exit(1)
	}
	if err := logger.Initialize(logConfig); err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to initialize logger: %v\n", err)
		os.Exit(1)
	}

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		logger.Error("Failed to load generator config", "path", *configPath, "error", err)
		os.Exit(1)
	}

	logger.Debugf("Generator config loaded from %s", *configPath)

	// Flags override the config file
	if *width > 0 {
		cfg.Width = *width
	}
	if *height > 0 {
		cfg.Height = *height
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
		logger.Debug("Seed taken from clock", "seed", cfg.Seed)
	}

	w, h := dungeon.NormalizeSize(cfg.Width, cfg.Height)
	if w != cfg.Width || h != cfg.Height {
		logger.Debug("Requested size normalized", "requested_width", cfg.Width, "requested_height", cfg.Height, "width", w, "height", h)
	}
	fmt.Printf("Generating %dx%d dungeon (seed: %d)\n", w, h, cfg.Seed)

	gen := dungeon.NewGenerator(cfg.DungeonConfig(),
		dungeon.WithLogger(logger.Logger().With("component", "dungeon")))
	rng := dungeon.NewRandom(cfg.Seed)

	fmt.Print("Generating map... ")
	m := gen.Generate(cfg.Width, cfg.Height, rng)
	fmt.Println("OK")
	if len(m.Rooms) < cfg.Rooms.MinCount {
		logger.Warning("Fewer rooms placed than requested", "rooms", len(m.Rooms), "min_count", cfg.Rooms.MinCount)
	}

	if *ascii {
		fmt.Printf("\n%s\n\n", m)
	}

	fmt.Print("Choosing spawn point... ")
	spawn, err := m.RespawnableCoord(rng)
	if err != nil {
		fmt.Println("FAILED")
		if errors.Is(err, dungeon.ErrNoRooms) {
			logger.Error("Generated map has no rooms; try a larger size", "width", w, "height", h)
		} else {
			logger.Error("Failed to choose spawn point", "error", err)
		}
		os.Exit(1)
	}
	fmt.Printf("OK %s\n", spawn)

	if *outDir != "" {
		fmt.Printf("Writing %s... ", mapfile.FileName)
		path, err := mapfile.Write(*outDir, mapfile.FromMap(m, cfg.Seed))
		if err != nil {
			fmt.Printf("FAILED: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("OK")
		logger.Info("Map written", "path", path)
	}

	stats := m.Stats()
	fmt.Printf("\nDungeon generated successfully!\n")
	fmt.Printf("  - Size: %dx%d\n", m.Width, m.Height)
	fmt.Printf("  - Rooms: %d\n", len(m.Rooms))
	fmt.Printf("  - Room cells: %d\n", stats.RoomCells)
	fmt.Printf("  - Corridor cells: %d\n", stats.Corridors)
	fmt.Printf("  - Wall cells: %d\n", stats.Walls)
	fmt.Printf("  - Dead ends: %d\n", len(m.DeadEnds()))
	fmt.Printf("  - Connected: %v\n", m.Connected())

	logger.Always("Generation complete", "seed", cfg.Seed, "width", m.Width, "height", m.Height, "rooms", len(m.Rooms))
}
