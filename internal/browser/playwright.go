package browser

import (
	"fmt"

	"github.com/playwright-community/playwright-go"
)

// Manager owns one Playwright runtime and one Chromium instance. Each site
// search gets its own page and never shares it with another search.
type Manager struct {
	pw      *playwright.Playwright
	browser playwright.Browser
}

func NewManager(headless bool) (*Manager, error) {
	pw, err := playwright.Run()
	if err != nil {
		return nil, fmt.Errorf("failed to start playwright: %w", err)
	}

	browser, err := pw.Chromium.Launch(playwright.BrowserTypeLaunchOptions{
		Headless: playwright.Bool(headless),
	})
	if err != nil {
		pw.Stop()
		return nil, fmt.Errorf("failed to launch browser: %w", err)
	}

	return &Manager{pw: pw, browser: browser}, nil
}

func (m *Manager) NewPage() (playwright.Page, error) {
	ctx, err := m.browser.NewContext(playwright.BrowserNewContextOptions{
		Viewport: &playwright.Size{Width: 1920, Height: 1080},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create browser context: %w", err)
	}
	return ctx.NewPage()
}

func (m *Manager) Close() error {
	if err := m.browser.Close(); err != nil {
		m.pw.Stop()
		return err
	}
	return m.pw.Stop()
}
