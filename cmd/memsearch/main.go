package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/rmacedo/memsearch/api"
	"github.com/rmacedo/memsearch/config"
	"github.com/rmacedo/memsearch/internal/engine"
	"github.com/rmacedo/memsearch/internal/logger"
	"github.com/rmacedo/memsearch/internal/metrics"
)

const appVersion = "1.0.0"

func main() {
	var (
		help       = flag.Bool("help", false, "Show help message")
		version    = flag.Bool("version", false, "Show version information")
		addr       = flag.String("addr", "", "Listen address (overrides config file)")
		configPath = flag.String("config", "", "Path to YAML server config file")
	)

	flag.Parse()

	if *help {
		fmt.Printf("memsearch - an in-memory boolean search engine\n\n")
		fmt.Printf("Usage: %s [options]\n\n", os.Args[0])
		fmt.Printf("Options:\n")
		flag.PrintDefaults()
		fmt.Printf("\nExamples:\n")
		fmt.Printf("  %s                          # Start server on default address :8080\n", os.Args[0])
		fmt.Printf("  %s --addr :9000             # Start server on port 9000\n", os.Args[0])
		fmt.Printf("  %s --config server.yaml     # Load server settings from file\n", os.Args[0])
		return
	}

	if *version {
		fmt.Printf("memsearch v%s\n", appVersion)
		return
	}

	cfg, err := config.LoadServerConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}
	if *addr != "" {
		cfg.Addr = *addr
	}

	logger.Setup(cfg.LogLevel, cfg.LogFormat)
	log := logger.WithComponent("main")

	searchEngine := engine.NewEngine(logger.WithComponent("engine"))

	var m *metrics.Metrics
	if cfg.MetricsEnabled {
		m = metrics.New(nil)
	}

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(api.RequestSizeLimitMiddleware(cfg.MaxRequestSize))
	router.Use(api.CORSMiddleware())

	api.SetupRoutes(router, searchEngine, m)

	log.Info("starting server", "addr", cfg.Addr, "metrics_enabled", cfg.MetricsEnabled)
	if err := router.Run(cfg.Addr); err != nil {
		slog.Error("server exited", "error", err)
		os.Exit(1)
	}
}
