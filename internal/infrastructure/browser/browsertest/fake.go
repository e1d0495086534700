// Package browsertest provides an in-memory browser for tests of code that
// drives pages through output.BrowserSession.
package browsertest

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"weather-scraper/internal/application/port/output"
	"weather-scraper/internal/domain/entity"
)

var (
	ErrNotFound = errors.New("fake: element not found")
	ErrClosed   = errors.New("fake: session closed")
)

type Element struct {
	Text string
	HTML string
	// Href is the page a click navigates to; empty means the click stays put.
	Href string
}

type Page struct {
	Elements map[string]Element
}

// Site is a fixed set of pages keyed by URL.
type Site struct {
	Pages map[string]Page
	// NavigateErrs makes navigation to the keyed URL fail.
	NavigateErrs map[string]error
	ClickErr     error
	TextErr      error
	OuterHTMLErr error
}

type Launcher struct {
	Site    *Site
	OpenErr error

	mu       sync.Mutex
	sessions []*Session
	options  []output.SessionOptions
}

var _ output.BrowserLauncher = (*Launcher)(nil)

func NewLauncher(site *Site) *Launcher {
	return &Launcher{Site: site}
}

func (l *Launcher) Open(ctx context.Context, opts output.SessionOptions) (output.BrowserSession, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.options = append(l.options, opts)
	if l.OpenErr != nil {
		return nil, l.OpenErr
	}

	s := &Session{site: l.Site, current: "about:blank"}
	l.sessions = append(l.sessions, s)
	return s, nil
}

func (l *Launcher) Sessions() []*Session {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]*Session(nil), l.sessions...)
}

func (l *Launcher) Options() []output.SessionOptions {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]output.SessionOptions(nil), l.options...)
}

// Navigation is one recorded Navigate call.
type Navigation struct {
	URL   string
	Until entity.WaitUntil
}

// Wait is one recorded WaitFor call.
type Wait struct {
	Selector string
	Timeout  time.Duration
}

type Session struct {
	site    *Site
	current string

	mu          sync.Mutex
	closeCount  int
	navigations []Navigation
	waits       []Wait
	shots       int
}

var _ output.BrowserSession = (*Session)(nil)

func (s *Session) Navigate(ctx context.Context, url string, until entity.WaitUntil) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closeCount > 0 {
		return ErrClosed
	}
	s.navigations = append(s.navigations, Navigation{URL: url, Until: until})
	if err, ok := s.site.NavigateErrs[url]; ok {
		return err
	}
	s.current = url
	return nil
}

func (s *Session) WaitFor(ctx context.Context, selector string, timeout time.Duration) error {
	s.mu.Lock()
	s.waits = append(s.waits, Wait{Selector: selector, Timeout: timeout})
	s.mu.Unlock()

	_, err := s.element(selector)
	return err
}

func (s *Session) Click(ctx context.Context, selector string) error {
	el, err := s.element(selector)
	if err != nil {
		return err
	}
	if s.site.ClickErr != nil {
		return s.site.ClickErr
	}

	if el.Href != "" {
		s.mu.Lock()
		s.current = el.Href
		s.mu.Unlock()
	}
	return nil
}

func (s *Session) Text(ctx context.Context, selector string) (string, error) {
	el, err := s.element(selector)
	if err != nil {
		return "", err
	}
	if s.site.TextErr != nil {
		return "", s.site.TextErr
	}
	return el.Text, nil
}

func (s *Session) OuterHTML(ctx context.Context, selector string) (string, bool, error) {
	if s.site.OuterHTMLErr != nil {
		return "", false, s.site.OuterHTMLErr
	}
	el, err := s.element(selector)
	if errors.Is(err, ErrNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return el.HTML, true, nil
}

func (s *Session) Screenshot(ctx context.Context) (*entity.Screenshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closeCount > 0 {
		return nil, ErrClosed
	}
	s.shots++
	return &entity.Screenshot{Data: []byte("jpeg:" + s.current), Format: "jpeg", Width: 1, Height: 1}, nil
}

func (s *Session) CurrentURL() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

func (s *Session) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closeCount++
	return nil
}

func (s *Session) CloseCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closeCount
}

func (s *Session) Navigations() []Navigation {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Navigation(nil), s.navigations...)
}

func (s *Session) Waits() []Wait {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Wait(nil), s.waits...)
}

func (s *Session) Screenshots() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.shots
}

func (s *Session) element(selector string) (Element, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closeCount > 0 {
		return Element{}, ErrClosed
	}
	page, ok := s.site.Pages[s.current]
	if !ok {
		return Element{}, fmt.Errorf("%w: %s (no page at %s)", ErrNotFound, selector, s.current)
	}
	el, ok := page.Elements[selector]
	if !ok {
		return Element{}, fmt.Errorf("%w: %s", ErrNotFound, selector)
	}
	return el, nil
}
