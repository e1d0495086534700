// Package cli holds the stdout, stderr and exit status contracts of the two
// command-line tools. The mains only wire dependencies and call in here.
package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"weather-scraper/internal/application/port/input"
)

const (
	ExitOK      = 0
	ExitFailure = 1
	ExitUsage   = 2
)

const (
	CurrentTempUsage = "usage: currenttemp <cityName>"
	ForecastUsage    = "usage: forecast <country> <city>"

	// ForecastErrorPrefix starts the single diagnostic line the forecast tool
	// writes when scraping fails.
	ForecastErrorPrefix = "Error scraping weather data:"
)

var ErrUsage = errors.New("missing arguments")

// ParseCurrentTempArgs takes the arguments after the program name. Anything
// past the first is ignored.
func ParseCurrentTempArgs(args []string) (string, error) {
	if len(args) < 1 {
		return "", fmt.Errorf("%w: %s", ErrUsage, CurrentTempUsage)
	}
	return args[0], nil
}

func ParseForecastArgs(args []string) (country, city string, err error) {
	if len(args) < 2 {
		return "", "", fmt.Errorf("%w: %s", ErrUsage, ForecastUsage)
	}
	return args[0], args[1], nil
}

// CurrentTemp prints one line and exits 0 for a temperature or either
// not-found message. Anything else is reported on stderr with exit status 1.
func CurrentTemp(ctx context.Context, city string, lookup input.TemperatureLookup, stdout, stderr io.Writer) int {
	result, err := lookup.Lookup(ctx, city)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return ExitFailure
	}

	fmt.Fprintln(stdout, result)
	return ExitOK
}

// Forecast prints the days as one JSON line, null when the page had no table.
// On failure it prints nothing to stdout, one diagnostic to stderr, and still
// exits 0.
func Forecast(ctx context.Context, country, city string, fetcher input.ForecastFetcher, stdout, stderr io.Writer) int {
	days, err := fetcher.Fetch(ctx, country, city)
	if err != nil {
		fmt.Fprintln(stderr, ForecastErrorPrefix, err)
		return ExitOK
	}

	enc := json.NewEncoder(stdout)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(days); err != nil {
		fmt.Fprintln(stderr, ForecastErrorPrefix, err)
	}
	return ExitOK
}
