package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/nahid-dev/portfolio-api/internal/config"
	"github.com/nahid-dev/portfolio-api/internal/logger"
	"github.com/nahid-dev/portfolio-api/internal/router"
	"github.com/nahid-dev/portfolio-api/internal/setup"
)

func main() {
	var configFolder string
	flag.StringVar(&configFolder, "config_folder", "config", "path to folder with configs")
	flag.Parse()

	cfg := config.MustLoad(configFolder)
	logger.Initialize(cfg.Public.LogLevel, cfg.Public.LogJSON)

	ctx := context.Background()
	deps, err := setup.SetupDependencies(ctx, cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer deps.Storage.Cleanup(ctx)

	r := router.New(deps)

	port := cfg.Public.Port
	if envPort := os.Getenv("PORT"); envPort != "" {
		fmt.Sscanf(envPort, "%d", &port)
	}

	logger.Log.Info("server started", "port", port)
	log.Fatal(http.ListenAndServe(fmt.Sprintf(":%d", port), r))
}
