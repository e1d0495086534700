// Package sites holds the page contracts of the weather sites the tools
// scrape. The sites change their markup without notice; when scraping breaks,
// this file is the place to update.
package sites

import (
	"fmt"
	"strings"
	"time"

	"weather-scraper/internal/domain/entity"
)

// OpenWeatherMapSite describes the city search and current conditions pages.
type OpenWeatherMapSite struct {
	BaseURL    string
	SearchPath string
	WaitUntil  entity.WaitUntil

	ResultLink  string
	ResultWait  time.Duration
	Temperature string
	TempWait    time.Duration
	UnitSuffix  string
}

// SearchURL interpolates city as given: no escaping, no validation.
func (s OpenWeatherMapSite) SearchURL(city string) string {
	return strings.TrimRight(s.BaseURL, "/") + fmt.Sprintf(s.SearchPath, city)
}

// ColumnMap gives the cell index of each forecast field within a table row.
// Day is read from the row header, every other field from the row's td cells.
type ColumnMap struct {
	Temperature         int
	Weather             int
	FeelsLike           int
	Wind                int
	Humidity            int
	PrecipitationChance int
	PrecipitationAmount int
	UV                  int
	Sunrise             int
	Sunset              int
}

// TimeAndDateSite describes the extended forecast page.
type TimeAndDateSite struct {
	BaseURL      string
	ForecastPath string
	WaitUntil    entity.WaitUntil
	Viewport     entity.Viewport

	Table     string
	TableWait time.Duration
	Columns   ColumnMap
}

func (s TimeAndDateSite) ForecastURL(country, city string) string {
	return strings.TrimRight(s.BaseURL, "/") + fmt.Sprintf(s.ForecastPath, country, city)
}

var OpenWeatherMap = OpenWeatherMapSite{
	BaseURL:    "https://openweathermap.org",
	SearchPath: "/find?q=%s",
	WaitUntil:  entity.WaitNetworkIdle,

	ResultLink:  ".table td a",
	ResultWait:  5 * time.Second,
	Temperature: ".current-temp span",
	TempWait:    5 * time.Second,
	UnitSuffix:  "°C",
}

var TimeAndDate = TimeAndDateSite{
	BaseURL:      "https://www.timeanddate.com",
	ForecastPath: "/weather/%s/%s/ext",
	WaitUntil:    entity.WaitDOMContentLoaded,
	Viewport:     entity.Viewport{Width: 1280, Height: 800},

	Table:     "#wt-ext",
	TableWait: 20 * time.Second,
	// td 0 is the weather icon, td 5 the wind direction arrow.
	Columns: ColumnMap{
		Temperature:         1,
		Weather:             2,
		FeelsLike:           3,
		Wind:                4,
		Humidity:            6,
		PrecipitationChance: 7,
		PrecipitationAmount: 8,
		UV:                  9,
		Sunrise:             10,
		Sunset:              11,
	},
}
