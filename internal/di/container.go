package di

import (
	"fmt"

	"weather-scraper/internal/application/port/output"
	"weather-scraper/internal/application/service"
	"weather-scraper/internal/config"
	"weather-scraper/internal/infrastructure/browser/rod"
	"weather-scraper/internal/infrastructure/logger"
	"weather-scraper/internal/usecase/currenttemp"
	"weather-scraper/internal/usecase/forecast"
)

type Container struct {
	Config      *config.Config
	Logger      output.LoggerPort
	Launcher    output.BrowserLauncher
	CurrentTemp *currenttemp.UseCase
	Forecast    *forecast.UseCase
}

// NewContainer wires both tools; task names the log file of this run.
func NewContainer(cfg *config.Config, task string) (*Container, error) {
	log, err := logger.NewLoggerAdapter(cfg.Log.Dir, task, cfg.Log.Level)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	browserCfg := rod.DefaultConfig()
	browserCfg.Bin = cfg.Browser.Bin
	browserCfg.NoSandbox = cfg.Browser.NoSandbox
	browserCfg.SlowMotion = cfg.Browser.SlowMotion
	browserCfg.Trace = cfg.Browser.Trace
	browserCfg.NavigationTimeout = cfg.Browser.NavigationTimeout
	launcher := rod.NewLauncher(browserCfg)

	recorder := service.NewScreenshotRecorder(cfg.DebugScreenshotDir, log)

	return &Container{
		Config:   cfg,
		Logger:   log,
		Launcher: launcher,
		CurrentTemp: currenttemp.New(launcher, cfg.OpenWeatherMap(), cfg.Browser.Headless,
			log.WithField("tool", "currenttemp"), recorder),
		Forecast: forecast.New(launcher, cfg.TimeAndDate(), cfg.Browser.Headless,
			log.WithField("tool", "forecast"), recorder),
	}, nil
}

func (c *Container) Close() {
	if c.Logger != nil {
		c.Logger.Close()
	}
}
