package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"chosenoffset.com/discshadow/internal/config"
	"chosenoffset.com/discshadow/internal/game"
	ebitenrender "chosenoffset.com/discshadow/internal/render/ebiten"
	"chosenoffset.com/discshadow/internal/telemetry"
	"chosenoffset.com/discshadow/internal/ui/hud"
)

func main() {
	configPath := flag.String("config", "discshadow.json", "path to a JSON config file (missing file = defaults)")
	workers := flag.Int("workers", -1, "render workers, 0 = one per CPU (overrides config)")
	width := flag.Int("width", 0, "window width (overrides config)")
	height := flag.Int("height", 0, "window height (overrides config)")
	echo := flag.Bool("echo", false, "print telemetry to stdout as well as the overlay")
	flag.Parse()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *workers >= 0 {
		cfg.Render.Workers = *workers
	}
	if *width > 0 {
		cfg.Window.Width = *width
	}
	if *height > 0 {
		cfg.Window.Height = *height
	}
	if *echo {
		cfg.Telemetry.Echo = true
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid settings: %v", err)
	}

	log.Printf("CPU: %d logical cores, %s/%s, %s", runtime.NumCPU(), runtime.GOOS, runtime.GOARCH, runtime.Version())
	if model := telemetry.CPUModel(); model != "" {
		log.Printf("CPU model: %s", model)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var opts []telemetry.Option
	if cfg.TelemetryInterval() > 0 {
		opts = append(opts, telemetry.WithInterval(cfg.TelemetryInterval()))
	}
	if cfg.Telemetry.Echo {
		opts = append(opts, telemetry.WithSampleHook(func(s telemetry.Stats) {
			hud.Echo(os.Stdout, s)
		}))
	}
	monitor := telemetry.NewMonitor(opts...)
	monitor.Start(ctx)

	// Initialize the renderer backend (ebiten)
	renderer := ebitenrender.NewRenderer()
	inputMgr := ebitenrender.NewInputManager()
	engine := ebitenrender.NewEngine()

	g, err := game.NewGame(ctx, cfg, renderer, inputMgr, monitor)
	if err != nil {
		log.Fatalf("Failed to create game: %v", err)
	}
	g.GraphicsLibrary = engine.GraphicsLibrary

	// Set up the window
	engine.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	engine.SetWindowTitle(cfg.Window.Title)
	engine.SetWindowResizable(cfg.Window.Resizable)
	engine.SetTPS(cfg.Window.TPS)

	log.Printf("Starting %dx%d at %d TPS, %d render workers", cfg.Window.Width, cfg.Window.Height, engine.TPS(), g.Compositor.Concurrency())
	if err := engine.RunGame(g); err != nil {
		log.Fatal(err)
	}
	if cfg.Telemetry.Echo {
		os.Stdout.WriteString("\n")
	}
	log.Println("Bye")
}
