package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"

	"github.com/pankajg09/data-dictionary-system/cli"
	"github.com/pankajg09/data-dictionary-system/config"
	"github.com/pankajg09/data-dictionary-system/controllers"
	"github.com/pankajg09/data-dictionary-system/routes"
)

func main() {
	mode := flag.String("mode", "server", "Mode to run: 'server' or 'cli'")
	configPath := flag.String("config", "config.yaml", "Path to the config file")
	flag.Parse()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	switch *mode {
	case "server":
		runServer(cfg)
	case "cli":
		runCLI(cfg)
	default:
		fmt.Printf("Unknown mode: %s\n", *mode)
		fmt.Println("Available modes: server, cli")
		os.Exit(1)
	}
}

func runServer(cfg *config.Config) {
	log := logrus.StandardLogger()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	e := echo.New()

	// Middleware
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	// Initialize controllers
	healthController := controllers.NewHealthController()
	analysisController := controllers.NewAnalysisController(cfg, log)

	// Setup routes
	routes.SetupRoutes(e, healthController, analysisController)

	log.WithFields(logrus.Fields{
		"port":      cfg.Server.Port,
		"providers": len(cfg.Providers),
	}).Info("starting data dictionary server")

	// Start server
	e.Logger.Fatal(e.Start(fmt.Sprintf(":%d", cfg.Server.Port)))
}

func runCLI(cfg *config.Config) {
	repl := cli.NewREPL(cfg)
	repl.Start()
}
