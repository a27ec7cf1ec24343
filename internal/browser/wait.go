package browser

import (
	"time"

	"github.com/playwright-community/playwright-go"
)

// Settle waits a fixed time for the remote page to apply a filter or finish
// a navigation. The sites re-render their result lists client-side with no
// reliable completion signal, so the searchers pause after every action.
func Settle(page playwright.Page, d time.Duration) {
	page.WaitForTimeout(float64(d.Milliseconds()))
}
