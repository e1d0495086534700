package service

import (
	"context"
	"fmt"

	"weather-scraper/internal/application/port/output"
)

// WithSession opens a browser session, hands it to fn and closes it on every
// way out of fn, panics included. A failed close is logged and never replaces
// the error returned by fn.
func WithSession(
	ctx context.Context,
	launcher output.BrowserLauncher,
	opts output.SessionOptions,
	log output.LoggerPort,
	fn func(output.BrowserSession) error,
) error {
	session, err := launcher.Open(ctx, opts)
	if err != nil {
		return fmt.Errorf("open browser session: %w", err)
	}

	defer func() {
		if cerr := session.Close(); cerr != nil {
			log.Warn("Browser session close failed", "error", cerr)
		}
	}()

	return fn(session)
}
