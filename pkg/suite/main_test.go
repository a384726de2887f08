// Package suite holds the end-to-end browser tests for the marketing site:
// header navigation, language switching, and footer link integrity. One
// Playwright driver serves the whole test binary; every test case launches
// its own isolated session, so no state is shared between cases. The engine
// under test comes from configuration (E2E_BROWSER), so CI runs this binary
// once per engine.
//
// These tests reach the live site over the network. They are skipped in
// -short mode.
package suite

import (
	"flag"
	"fmt"
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joltrome/tierIV-qa-automation-Jerome/pkg/browser"
	"github.com/joltrome/tierIV-qa-automation-Jerome/pkg/config"
	"github.com/joltrome/tierIV-qa-automation-Jerome/pkg/newtab"
	"github.com/joltrome/tierIV-qa-automation-Jerome/pkg/pages"
)

// EnvConfig optionally points at a YAML configuration file.
const EnvConfig = "E2E_CONFIG"

var (
	cfg *config.Config
	mgr *browser.Manager
)

func TestMain(m *testing.M) {
	flag.Parse()

	var err error
	cfg = config.Default()
	if path := os.Getenv(EnvConfig); path != "" {
		if cfg, err = config.Load(path); err != nil {
			fmt.Fprintf(os.Stderr, "load config: %v\n", err)
			os.Exit(1)
		}
	}
	if err := config.FromEnv(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "apply env overrides: %v\n", err)
		os.Exit(1)
	}

	mgr = browser.NewManager()
	if !testing.Short() {
		if err := mgr.Initialize(); err != nil {
			fmt.Fprintf(os.Stderr, "initialize playwright: %v\n", err)
			os.Exit(1)
		}
	}

	code := m.Run()

	if err := mgr.Shutdown(); err != nil {
		fmt.Fprintf(os.Stderr, "shutdown playwright: %v\n", err)
	}
	os.Exit(code)
}

// newSession launches an isolated browser session for one test case. The
// session is closed at cleanup, with a failure screenshot captured first.
func newSession(t *testing.T) *browser.Session {
	t.Helper()

	if testing.Short() {
		t.Skip("skipping browser test in short mode")
	}

	session, err := mgr.Launch(cfg.Engine, browser.OptionsFromConfig(cfg))
	require.NoError(t, err, "launch %s", cfg.Engine)

	t.Cleanup(func() {
		if t.Failed() {
			if path, err := session.Screenshot(cfg.ArtifactsDir); err == nil {
				t.Logf("failure screenshot: %s", path)
			} else {
				t.Logf("could not capture failure screenshot: %v", err)
			}
		}
		session.Close()
	})
	return session
}

// tabOptions returns newtab options with intermediate attempt failures
// routed into the test log. Everything else uses the defaults.
func tabOptions(t *testing.T) newtab.Options {
	return newtab.Options{Logf: t.Logf}
}

// openHome launches a session and lands on the home page in the given locale.
func openHome(t *testing.T, lang pages.Language) (*browser.Session, *pages.Home) {
	t.Helper()

	session := newSession(t)
	home := pages.NewHome(session.Page, cfg.BaseURL)
	require.NoError(t, home.Open(lang))
	return session, home
}
