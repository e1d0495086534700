package service

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"weather-scraper/internal/application/port/output"
)

// ScreenshotRecorder saves a picture of the page when a lookup ends without
// data. An empty Dir disables it.
type ScreenshotRecorder struct {
	Dir    string
	Logger output.LoggerPort
	now    func() time.Time
}

func NewScreenshotRecorder(dir string, log output.LoggerPort) *ScreenshotRecorder {
	return &ScreenshotRecorder{Dir: dir, Logger: log, now: time.Now}
}

// Record never fails the caller; problems are only logged.
func (r *ScreenshotRecorder) Record(ctx context.Context, session output.BrowserSession, label string) string {
	if r == nil || r.Dir == "" {
		return ""
	}

	path, err := r.record(ctx, session, label)
	if err != nil {
		r.Logger.Warn("Debug screenshot failed", "label", label, "error", err)
		return ""
	}

	r.Logger.Info("Debug screenshot saved", "label", label, "path", path, "url", session.CurrentURL())
	return path
}

func (r *ScreenshotRecorder) record(ctx context.Context, session output.BrowserSession, label string) (string, error) {
	shot, err := session.Screenshot(ctx)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(r.Dir, 0755); err != nil {
		return "", fmt.Errorf("create screenshot dir: %w", err)
	}

	now := time.Now
	if r.now != nil {
		now = r.now
	}
	name := fmt.Sprintf("%s_%s.%s", label, now().Format("2006-01-02_15-04-05.000"), shot.Format)
	path := filepath.Join(r.Dir, name)

	if err := os.WriteFile(path, shot.Data, 0644); err != nil {
		return "", fmt.Errorf("write screenshot: %w", err)
	}
	return path, nil
}
