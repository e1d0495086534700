package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"weather-scraper/internal/cli"
	"weather-scraper/internal/config"
	"weather-scraper/internal/di"
	"weather-scraper/internal/infrastructure/env"
)

func main() {
	os.Exit(run())
}

func run() int {
	city, err := cli.ParseCurrentTempArgs(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, cli.CurrentTempUsage)
		return cli.ExitUsage
	}

	envService := env.NewEnvService()

	cfg, err := config.NewConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return cli.ExitFailure
	}

	container, err := di.NewContainer(cfg, "currenttemp "+city)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return cli.ExitFailure
	}
	defer container.Close()

	container.Logger.Info("Environment loaded", "app_env", envService.AppEnv(), "notes", strings.Join(envService.Notes(), "; "))

	ctx, cancel := context.WithTimeout(context.Background(), cfg.RunTimeout)
	defer cancel()

	code := cli.CurrentTemp(ctx, city, container.CurrentTemp, os.Stdout, os.Stderr)
	container.Logger.Info("Run finished", "city", city, "exit_code", code)
	return code
}
