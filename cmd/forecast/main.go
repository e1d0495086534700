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
	country, city, err := cli.ParseForecastArgs(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, cli.ForecastUsage)
		return cli.ExitUsage
	}

	envService := env.NewEnvService()

	cfg, err := config.NewConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, cli.ForecastErrorPrefix, err)
		return cli.ExitOK
	}

	container, err := di.NewContainer(cfg, "forecast "+country+" "+city)
	if err != nil {
		fmt.Fprintln(os.Stderr, cli.ForecastErrorPrefix, err)
		return cli.ExitOK
	}
	defer container.Close()

	container.Logger.Info("Environment loaded", "app_env", envService.AppEnv(), "notes", strings.Join(envService.Notes(), "; "))

	ctx, cancel := context.WithTimeout(context.Background(), cfg.RunTimeout)
	defer cancel()

	code := cli.Forecast(ctx, country, city, container.Forecast, os.Stdout, os.Stderr)
	container.Logger.Info("Run finished", "country", country, "city", city)
	return code
}
