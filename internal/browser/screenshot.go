package browser

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/playwright-community/playwright-go"
	"go.uber.org/zap"
)

// ScreenshotDebugger captures the page when a search control the searcher
// expects is missing, which usually means the site changed its markup.
type ScreenshotDebugger struct {
	outputDir string
	log       *zap.SugaredLogger
}

func NewScreenshotDebugger(outputDir string, log *zap.SugaredLogger) *ScreenshotDebugger {
	os.MkdirAll(outputDir, 0755)
	return &ScreenshotDebugger{outputDir: outputDir, log: log}
}

func (s *ScreenshotDebugger) Capture(page playwright.Page, name string) {
	timestamp := time.Now().Format("2006-01-02_15-04-05")
	path := filepath.Join(s.outputDir, fmt.Sprintf("%s_%s.png", name, timestamp))

	_, err := page.Screenshot(playwright.PageScreenshotOptions{
		Path:     playwright.String(path),
		FullPage: playwright.Bool(true),
	})
	if err != nil {
		s.log.Warnw("failed to capture screenshot", "name", name, "error", err)
		return
	}
	s.log.Debugw("screenshot saved", "path", path)
}
