package input

import (
	"context"

	"weather-scraper/internal/domain/entity"
)

// TemperatureLookup returns a bare temperature or one of the entity
// not-found sentinels. An error means the lookup could not run at all.
type TemperatureLookup interface {
	Lookup(ctx context.Context, city string) (string, error)
}

// ForecastFetcher returns nil days, with no error, when the page has no
// forecast table.
type ForecastFetcher interface {
	Fetch(ctx context.Context, country, city string) ([]entity.ForecastDay, error)
}
