package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"

	"weather-scraper/internal/infrastructure/sites"
)

type Browser struct {
	Headless          bool          `envconfig:"BROWSER_HEADLESS" default:"true"`
	Bin               string        `envconfig:"BROWSER_BIN"`
	NoSandbox         bool          `envconfig:"BROWSER_NO_SANDBOX" default:"false"`
	SlowMotion        time.Duration `envconfig:"BROWSER_SLOW_MOTION" default:"0s"`
	Trace             bool          `envconfig:"BROWSER_TRACE" default:"false"`
	NavigationTimeout time.Duration `envconfig:"NAVIGATION_TIMEOUT" default:"30s"`
}

type Log struct {
	Dir   string `envconfig:"LOG_DIR" default:"log"`
	Level string `envconfig:"LOG_LEVEL" default:"info"`
}

type Sites struct {
	OpenWeatherMapURL string `envconfig:"OPENWEATHERMAP_URL"`
	TimeAndDateURL    string `envconfig:"TIMEANDDATE_URL"`
}

type Config struct {
	Browser Browser
	Log     Log
	Sites   Sites

	RunTimeout         time.Duration `envconfig:"RUN_TIMEOUT" default:"2m"`
	DebugScreenshotDir string        `envconfig:"DEBUG_SCREENSHOT_DIR"`
}

func NewConfig() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// OpenWeatherMap returns the site table with the configured base URL applied.
func (c *Config) OpenWeatherMap() sites.OpenWeatherMapSite {
	site := sites.OpenWeatherMap
	if c.Sites.OpenWeatherMapURL != "" {
		site.BaseURL = c.Sites.OpenWeatherMapURL
	}
	return site
}

func (c *Config) TimeAndDate() sites.TimeAndDateSite {
	site := sites.TimeAndDate
	if c.Sites.TimeAndDateURL != "" {
		site.BaseURL = c.Sites.TimeAndDateURL
	}
	return site
}
