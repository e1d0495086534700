package rod

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"net/url"
	"strings"
	"sync"
	"time"

	"weather-scraper/internal/application/port/output"
	"weather-scraper/internal/domain/entity"

	"github.com/disintegration/imaging"
	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
	"github.com/ysmood/gson"
)

const (
	defaultTimeout           = 10 * time.Second
	defaultNavigationTimeout = 30 * time.Second
	maxScreenshotWidth       = 1024
)

var (
	ErrInvalidURL      = errors.New("invalid url")
	ErrInvalidSelector = errors.New("invalid selector")
	ErrElementNotFound = errors.New("element not found")
	ErrSessionClosed   = errors.New("browser session closed")
)

var (
	_ output.BrowserLauncher = (*Launcher)(nil)
	_ output.BrowserSession  = (*BrowserAdapter)(nil)
)

type BrowserConfig struct {
	Bin               string
	NoSandbox         bool
	SlowMotion        time.Duration
	Trace             bool
	Timeout           time.Duration
	NavigationTimeout time.Duration
}

func DefaultConfig() BrowserConfig {
	return BrowserConfig{
		Timeout:           defaultTimeout,
		NavigationTimeout: defaultNavigationTimeout,
	}
}

// Launcher starts one browser process per Open call.
type Launcher struct {
	cfg BrowserConfig
}

func NewLauncher(cfg BrowserConfig) *Launcher {
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	if cfg.NavigationTimeout <= 0 {
		cfg.NavigationTimeout = defaultNavigationTimeout
	}
	return &Launcher{cfg: cfg}
}

func (l *Launcher) Open(ctx context.Context, opts output.SessionOptions) (output.BrowserSession, error) {
	return NewBrowserAdapter(ctx, l.cfg, opts)
}

type BrowserAdapter struct {
	browser  *rod.Browser
	launcher *launcher.Launcher
	page     *rod.Page

	timeout           time.Duration
	navigationTimeout time.Duration

	mu     sync.Mutex
	closed bool
}

func NewBrowserAdapter(ctx context.Context, cfg BrowserConfig, opts output.SessionOptions) (*BrowserAdapter, error) {
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	if cfg.NavigationTimeout <= 0 {
		cfg.NavigationTimeout = defaultNavigationTimeout
	}

	l := launcher.New().
		Headless(opts.Headless).
		NoSandbox(cfg.NoSandbox).
		Delete("use-mock-keychain")
	if cfg.Bin != "" {
		l = l.Bin(cfg.Bin)
	}

	controlURL, err := l.Launch()
	if err != nil {
		l.Cleanup()
		return nil, fmt.Errorf("failed to launch browser: %w", err)
	}

	browser := rod.New().
		ControlURL(controlURL).
		Trace(cfg.Trace).
		SlowMotion(cfg.SlowMotion)
	if err := browser.Connect(); err != nil {
		l.Kill()
		l.Cleanup()
		return nil, fmt.Errorf("failed to connect to browser: %w", err)
	}

	adapter := &BrowserAdapter{
		browser:           browser,
		launcher:          l,
		timeout:           cfg.Timeout,
		navigationTimeout: cfg.NavigationTimeout,
	}

	page, err := browser.Page(proto.TargetCreateTarget{URL: "about:blank"})
	if err != nil {
		_ = adapter.Close()
		return nil, fmt.Errorf("failed to open page: %w", err)
	}
	adapter.page = page

	if opts.Viewport != nil {
		err := page.SetViewport(&proto.EmulationSetDeviceMetricsOverride{
			Width:             opts.Viewport.Width,
			Height:            opts.Viewport.Height,
			DeviceScaleFactor: 1,
		})
		if err != nil {
			_ = adapter.Close()
			return nil, fmt.Errorf("failed to set viewport: %w", err)
		}
	}

	return adapter, nil
}

// Navigate loads url and blocks until the page reports the requested
// lifecycle event or the navigation timeout expires.
func (b *BrowserAdapter) Navigate(ctx context.Context, rawURL string, until entity.WaitUntil) error {
	if err := b.ready(); err != nil {
		return err
	}
	if err := validateURL(rawURL); err != nil {
		return err
	}

	event, err := lifecycleEvent(until)
	if err != nil {
		return err
	}

	page := b.page.Context(ctx).Timeout(b.navigationTimeout)
	defer page.CancelTimeout()

	_ = proto.PageSetLifecycleEventsEnabled{Enabled: true}.Call(page)
	wait := page.EachEvent(mainFrameLifecycle(page.FrameID, event))
	if err := page.Navigate(rawURL); err != nil {
		return fmt.Errorf("navigation failed: %w", err)
	}
	wait()

	if err := page.GetContext().Err(); err != nil {
		return fmt.Errorf("navigation to %s did not reach %s: %w", rawURL, until, err)
	}
	return nil
}

func (b *BrowserAdapter) WaitFor(ctx context.Context, selector string, timeout time.Duration) error {
	_, err := b.element(ctx, selector, timeout)
	return err
}

func (b *BrowserAdapter) Click(ctx context.Context, selector string) error {
	el, err := b.element(ctx, selector, b.timeout)
	if err != nil {
		return err
	}

	// A covered element is retried until the context ends; keep that within the element timeout.
	timed := el.Timeout(b.timeout)
	defer timed.CancelTimeout()

	if err := timed.Click(proto.InputMouseButtonLeft, 1); err != nil {
		return fmt.Errorf("click failed: %w", err)
	}
	return nil
}

func (b *BrowserAdapter) Text(ctx context.Context, selector string) (string, error) {
	el, err := b.element(ctx, selector, b.timeout)
	if err != nil {
		return "", err
	}

	// textContent, not innerText: whitespace and hidden children are kept as they are in the DOM.
	obj, err := el.Eval(`() => this.textContent`)
	if err != nil {
		return "", fmt.Errorf("failed to read text of %s: %w", selector, err)
	}
	return obj.Value.Str(), nil
}

func (b *BrowserAdapter) OuterHTML(ctx context.Context, selector string) (string, bool, error) {
	if err := b.ready(); err != nil {
		return "", false, err
	}
	if strings.TrimSpace(selector) == "" {
		return "", false, ErrInvalidSelector
	}

	has, el, err := b.page.Context(ctx).Has(selector)
	if err != nil {
		return "", false, fmt.Errorf("query %s: %w", selector, err)
	}
	if !has {
		return "", false, nil
	}

	html, err := el.HTML()
	if err != nil {
		return "", false, fmt.Errorf("failed to get HTML of %s: %w", selector, err)
	}
	return html, true, nil
}

func (b *BrowserAdapter) Screenshot(ctx context.Context) (*entity.Screenshot, error) {
	if err := b.ready(); err != nil {
		return nil, err
	}

	imgBytes, err := b.page.Context(ctx).Screenshot(true, &proto.PageCaptureScreenshot{
		Format:  proto.PageCaptureScreenshotFormatJpeg,
		Quality: gson.Int(80),
	})
	if err != nil {
		return nil, fmt.Errorf("screenshot failed: %w", err)
	}

	img, _, err := image.Decode(bytes.NewReader(imgBytes))
	if err != nil {
		return nil, fmt.Errorf("image decode failed: %w", err)
	}

	if img.Bounds().Dx() > maxScreenshotWidth {
		img = imaging.Resize(img, maxScreenshotWidth, 0, imaging.Lanczos)
	}

	buf := new(bytes.Buffer)
	if err := jpeg.Encode(buf, img, &jpeg.Options{Quality: 75}); err != nil {
		return nil, fmt.Errorf("jpeg encode failed: %w", err)
	}

	return &entity.Screenshot{
		Data:   buf.Bytes(),
		Format: "jpeg",
		Width:  img.Bounds().Dx(),
		Height: img.Bounds().Dy(),
	}, nil
}

func (b *BrowserAdapter) CurrentURL() string {
	if b.ready() != nil {
		return ""
	}
	info, err := b.page.Info()
	if err != nil {
		return ""
	}
	return info.URL
}

func (b *BrowserAdapter) IsReady() bool {
	return b.ready() == nil
}

// Close shuts the browser down and kills its process. Safe to call more than once.
func (b *BrowserAdapter) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return nil
	}
	b.closed = true

	var err error
	if b.browser != nil {
		err = b.browser.Close()
	}
	if b.launcher != nil {
		b.launcher.Kill()
		b.launcher.Cleanup()
	}
	return err
}

func (b *BrowserAdapter) ready() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed || b.page == nil {
		return ErrSessionClosed
	}
	return nil
}

func (b *BrowserAdapter) element(ctx context.Context, selector string, timeout time.Duration) (*rod.Element, error) {
	if err := b.ready(); err != nil {
		return nil, err
	}
	if strings.TrimSpace(selector) == "" {
		return nil, ErrInvalidSelector
	}

	page := b.page.Context(ctx).Timeout(timeout)
	defer page.CancelTimeout()

	var el *rod.Element
	var err error
	if strings.HasPrefix(selector, "/") {
		el, err = page.ElementX(selector)
	} else {
		el, err = page.Element(selector)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrElementNotFound, selector, err)
	}
	// Detach the element from the timed context so later calls are not cut short.
	return el.Context(ctx), nil
}

func lifecycleEvent(until entity.WaitUntil) (proto.PageLifecycleEventName, error) {
	switch until {
	case entity.WaitLoad, "":
		return proto.PageLifecycleEventNameLoad, nil
	case entity.WaitDOMContentLoaded:
		return proto.PageLifecycleEventNameDOMContentLoaded, nil
	case entity.WaitNetworkIdle:
		return proto.PageLifecycleEventNameNetworkAlmostIdle, nil
	default:
		return "", fmt.Errorf("unknown wait condition: %s", until)
	}
}

// mainFrameLifecycle matches the named lifecycle event of the page's own
// frame only; iframes report their own events.
func mainFrameLifecycle(frameID proto.PageFrameID, name proto.PageLifecycleEventName) func(*proto.PageLifecycleEvent) bool {
	return func(e *proto.PageLifecycleEvent) bool {
		return e.FrameID == frameID && e.Name == name
	}
}

func validateURL(rawURL string) error {
	if strings.TrimSpace(rawURL) == "" {
		return fmt.Errorf("%w: empty", ErrInvalidURL)
	}
	u, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidURL, err)
	}
	switch u.Scheme {
	case "http", "https", "about":
		return nil
	default:
		return fmt.Errorf("%w: unsupported scheme %q", ErrInvalidURL, u.Scheme)
	}
}
