// Package browser manages Playwright driver and browser lifecycles for the
// suite. A Manager owns the single Playwright driver process; each test case
// asks it for an isolated Session (browser + context + page) on the engine
// under test and closes that Session when done.
package browser

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/playwright-community/playwright-go"

	"github.com/joltrome/tierIV-qa-automation-Jerome/pkg/config"
)

// Manager owns the Playwright driver instance shared by all sessions in one
// test binary.
type Manager struct {
	mu          sync.Mutex
	playwright  *playwright.Playwright
	initialized bool
}

// NewManager creates a manager. Initialize must be called before Launch.
func NewManager() *Manager {
	return &Manager{}
}

// Initialize installs (if needed) and starts the Playwright driver. Driver
// output is discarded so it does not interleave with test output.
func (m *Manager) Initialize() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.initialized {
		return nil
	}

	opts := &playwright.RunOptions{
		Verbose: false,
		Stdout:  io.Discard,
		Stderr:  io.Discard,
	}

	if err := playwright.Install(opts); err != nil {
		return fmt.Errorf("failed to install playwright: %w", err)
	}

	pw, err := playwright.Run(opts)
	if err != nil {
		return fmt.Errorf("failed to start playwright: %w", err)
	}

	m.playwright = pw
	m.initialized = true
	return nil
}

// Launch starts a browser on the given engine and returns a fresh Session
// with its own context and page. Partially constructed resources are torn
// down on failure.
func (m *Manager) Launch(engine config.Engine, opts Options) (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		return nil, fmt.Errorf("browser manager not initialized")
	}

	browserType, err := m.engineType(engine)
	if err != nil {
		return nil, err
	}

	launchOpts := playwright.BrowserTypeLaunchOptions{
		Headless: playwright.Bool(opts.Headless),
	}
	b, err := browserType.Launch(launchOpts)
	if err != nil {
		return nil, fmt.Errorf("failed to launch %s: %w", engine, err)
	}

	contextOpts := playwright.BrowserNewContextOptions{}
	if opts.Viewport.Width > 0 && opts.Viewport.Height > 0 {
		contextOpts.Viewport = &playwright.Size{
			Width:  opts.Viewport.Width,
			Height: opts.Viewport.Height,
		}
	}
	if opts.Locale != "" {
		contextOpts.Locale = playwright.String(opts.Locale)
	}
	context, err := b.NewContext(contextOpts)
	if err != nil {
		b.Close()
		return nil, fmt.Errorf("failed to create context: %w", err)
	}

	page, err := context.NewPage()
	if err != nil {
		context.Close()
		b.Close()
		return nil, fmt.Errorf("failed to create page: %w", err)
	}

	if opts.TimeoutMs > 0 {
		page.SetDefaultTimeout(opts.TimeoutMs)
	}

	return &Session{
		Engine:    engine,
		Browser:   b,
		Context:   context,
		Page:      page,
		Headless:  opts.Headless,
		CreatedAt: time.Now(),
	}, nil
}

// Shutdown stops the Playwright driver. Sessions must be closed by their
// owners first; Shutdown does not track them.
func (m *Manager) Shutdown() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized || m.playwright == nil {
		return nil
	}

	if err := m.playwright.Stop(); err != nil {
		return fmt.Errorf("failed to stop playwright: %w", err)
	}
	m.playwright = nil
	m.initialized = false
	return nil
}

func (m *Manager) engineType(engine config.Engine) (playwright.BrowserType, error) {
	switch engine {
	case config.EngineChromium:
		return m.playwright.Chromium, nil
	case config.EngineFirefox:
		return m.playwright.Firefox, nil
	case config.EngineWebKit:
		return m.playwright.WebKit, nil
	default:
		return nil, fmt.Errorf("unknown browser engine %q", engine)
	}
}
