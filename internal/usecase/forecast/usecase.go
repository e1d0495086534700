package forecast

import (
	"context"
	"fmt"

	"weather-scraper/internal/application/port/input"
	"weather-scraper/internal/application/port/output"
	"weather-scraper/internal/application/service"
	"weather-scraper/internal/domain/entity"
	"weather-scraper/internal/infrastructure/htmltable"
	"weather-scraper/internal/infrastructure/sites"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var _ input.ForecastFetcher = (*UseCase)(nil)

type UseCase struct {
	launcher output.BrowserLauncher
	site     sites.TimeAndDateSite
	headless bool
	logger   output.LoggerPort
	recorder *service.ScreenshotRecorder
}

func New(
	launcher output.BrowserLauncher,
	site sites.TimeAndDateSite,
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

// BuildURL case-folds both arguments before interpolating them.
func (uc *UseCase) BuildURL(country, city string) string {
	lower := cases.Lower(language.Und)
	return uc.site.ForecastURL(lower.String(country), lower.String(city))
}

func (uc *UseCase) Fetch(ctx context.Context, country, city string) ([]entity.ForecastDay, error) {
	var days []entity.ForecastDay

	opts := output.SessionOptions{
		Headless: uc.headless,
		Viewport: &uc.site.Viewport,
	}

	err := service.WithSession(ctx, uc.launcher, opts, uc.logger, func(session output.BrowserSession) error {
		var err error
		days, err = uc.fetch(ctx, session, uc.BuildURL(country, city))
		return err
	})
	if err != nil {
		return nil, err
	}
	return days, nil
}

func (uc *UseCase) fetch(ctx context.Context, session output.BrowserSession, url string) ([]entity.ForecastDay, error) {
	uc.logger.Info("Opening forecast", "url", url)

	if err := session.Navigate(ctx, url, uc.site.WaitUntil); err != nil {
		return nil, fmt.Errorf("open forecast page: %w", err)
	}

	// A table that never shows up is reported as missing data below, not as a failure.
	if err := session.WaitFor(ctx, uc.site.Table, uc.site.TableWait); err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		uc.logger.Debug("Forecast table did not appear", "selector", uc.site.Table, "error", err)
	}

	tableHTML, found, err := session.OuterHTML(ctx, uc.site.Table)
	if err != nil {
		return nil, fmt.Errorf("read forecast table: %w", err)
	}
	if !found {
		uc.logger.Info("Forecast table missing", "url", session.CurrentURL())
		uc.recorder.Record(ctx, session, "forecast_table")
		return nil, nil
	}

	days, err := htmltable.ParseForecast(tableHTML, uc.site.Columns)
	if err != nil {
		return nil, err
	}

	uc.logger.Info("Forecast extracted", "days", len(days))
	return days, nil
}
