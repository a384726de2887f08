package browser

import (
	"time"

	"github.com/playwright-community/playwright-go"

	"github.com/joltrome/tierIV-qa-automation-Jerome/pkg/config"
)

// Session represents one isolated browser session: an engine-specific browser
// with a single context and page. Each test case owns its own Session; nothing
// is shared between them.
type Session struct {
	// Engine is the browser engine this session runs on
	Engine config.Engine

	// Browser is the Playwright browser instance
	Browser playwright.Browser

	// Context is the browser context (isolated cookies and storage)
	Context playwright.BrowserContext

	// Page is the session's page
	Page playwright.Page

	// Headless indicates if the browser is running without a visible window
	Headless bool

	// CreatedAt is the timestamp when the session was created
	CreatedAt time.Time
}

// Options configures a new browser session.
type Options struct {
	// Headless controls whether the browser runs without a visible window
	Headless bool

	// Viewport sets the page size; zero means the engine default
	Viewport config.Viewport

	// TimeoutMs sets the default timeout for page operations (milliseconds)
	TimeoutMs float64

	// Locale sets the browser locale, e.g. "en-US" or "ja-JP"
	Locale string
}

// OptionsFromConfig derives session options from the suite configuration.
func OptionsFromConfig(cfg *config.Config) Options {
	return Options{
		Headless:  cfg.Headless,
		Viewport:  cfg.Viewport,
		TimeoutMs: cfg.TimeoutMs,
	}
}
