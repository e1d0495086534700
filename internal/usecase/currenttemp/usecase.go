package currenttemp

import (
	"context"
	"fmt"
	"strings"

	"weather-scraper/internal/application/port/input"
	"weather-scraper/internal/application/port/output"
	"weather-scraper/internal/application/service"
	"weather-scraper/internal/domain/entity"
	"weather-scraper/internal/infrastructure/sites"
)

var _ input.TemperatureLookup = (*UseCase)(nil)

type UseCase struct {
	launcher output.BrowserLauncher
	site     sites.OpenWeatherMapSite
	headless bool
	logger   output.LoggerPort
	recorder *service.ScreenshotRecorder
}

func New(
	launcher output.BrowserLauncher,
	site sites.OpenWeatherMapSite,
	headless bool,
	logger output.LoggerPort,
	recorder *service.ScreenshotRecorder,
) *UseCase {
	return &UseCase{
		launcher: launcher,
		site:     site,
		headless: headless,
		logger:   logger,
		recorder: recorder,
	}
}

func (uc *UseCase) Lookup(ctx context.Context, city string) (string, error) {
	var result string

	err := service.WithSession(ctx, uc.launcher, output.SessionOptions{Headless: uc.headless}, uc.logger,
		func(session output.BrowserSession) error {
			var err error
			result, err = uc.lookup(ctx, session, city)
			return err
		})
	if err != nil {
		return "", err
	}
	return result, nil
}

func (uc *UseCase) lookup(ctx context.Context, session output.BrowserSession, city string) (string, error) {
	searchURL := uc.site.SearchURL(city)
	uc.logger.Info("Searching city", "city", city, "url", searchURL)

	if err := session.Navigate(ctx, searchURL, uc.site.WaitUntil); err != nil {
		return "", fmt.Errorf("open search page: %w", err)
	}

	if err := uc.openFirstResult(ctx, session); err != nil {
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		uc.logger.Info("No search result", "city", city, "error", err)
		uc.recorder.Record(ctx, session, "currenttemp_city")
		return entity.CityNotFound, nil
	}

	text, err := uc.readTemperature(ctx, session)
	if err != nil {
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		uc.logger.Info("No temperature on city page", "city", city, "url", session.CurrentURL(), "error", err)
		uc.recorder.Record(ctx, session, "currenttemp_weather")
		return entity.WeatherDataNotFound, nil
	}

	temperature := strings.Replace(text, uc.site.UnitSuffix, "", 1)
	uc.logger.Info("Temperature found", "city", city, "raw", text, "temperature", temperature)
	return temperature, nil
}

func (uc *UseCase) openFirstResult(ctx context.Context, session output.BrowserSession) error {
	if err := session.WaitFor(ctx, uc.site.ResultLink, uc.site.ResultWait); err != nil {
		return err
	}
	return session.Click(ctx, uc.site.ResultLink)
}

func (uc *UseCase) readTemperature(ctx context.Context, session output.BrowserSession) (string, error) {
	if err := session.WaitFor(ctx, uc.site.Temperature, uc.site.TempWait); err != nil {
		return "", err
	}
	return session.Text(ctx, uc.site.Temperature)
}
