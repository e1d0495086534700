package output

import (
	"context"
	"time"

	"weather-scraper/internal/domain/entity"
)

type SessionOptions struct {
	Headless bool
	Viewport *entity.Viewport
}

type BrowserLauncher interface {
	Open(ctx context.Context, opts SessionOptions) (BrowserSession, error)
}

// BrowserSession is one browser process with a single page, owned by the
// caller until Close.
type BrowserSession interface {
	Navigate(ctx context.Context, url string, until entity.WaitUntil) error
	WaitFor(ctx context.Context, selector string, timeout time.Duration) error
	Click(ctx context.Context, selector string) error
	Text(ctx context.Context, selector string) (string, error)
	// OuterHTML returns the markup of the first match without waiting.
	OuterHTML(ctx context.Context, selector string) (html string, found bool, err error)
	Screenshot(ctx context.Context) (*entity.Screenshot, error)

	CurrentURL() string
	Close() error
}
