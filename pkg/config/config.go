// Package config holds the suite configuration: which site to test, which
// browser engine to drive, and how patient the suite should be. Configuration
// is loaded from an optional YAML file, then overridden by environment
// variables, and is passed explicitly into each test's setup; there is no
// process-wide singleton.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/gobwas/glob"
	"gopkg.in/yaml.v3"
)

// Engine identifies a Playwright browser engine.
type Engine string

const (
	EngineChromium Engine = "chromium"
	EngineFirefox  Engine = "firefox"
	EngineWebKit   Engine = "webkit"
)

// Engines lists every engine the suite runs against.
var Engines = []Engine{EngineChromium, EngineFirefox, EngineWebKit}

// Environment variable overrides, applied after the YAML file.
const (
	EnvBaseURL   = "E2E_BASE_URL"
	EnvBrowser   = "E2E_BROWSER"
	EnvHeadless  = "E2E_HEADLESS"
	EnvArtifacts = "E2E_ARTIFACTS"
)

// Defaults for a zero-setup run.
const (
	DefaultBaseURL        = "https://tier4.jp"
	DefaultTimeoutMs      = 30000
	DefaultViewportWidth  = 1280
	DefaultViewportHeight = 720
	DefaultArtifactsDir   = "artifacts"
)

// Viewport is the browser window size used for every page.
type Viewport struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// Config is the full suite configuration.
type Config struct {
	// BaseURL is the root of the site under test, without a trailing slash
	BaseURL string `yaml:"base_url"`

	// Engine selects the browser engine: chromium, firefox, or webkit
	Engine Engine `yaml:"engine"`

	// Headless controls whether the browser runs without a visible window
	Headless bool `yaml:"headless"`

	// TimeoutMs is the default timeout for browser operations, in milliseconds
	TimeoutMs float64 `yaml:"timeout_ms"`

	// Viewport sets the page size for every test
	Viewport Viewport `yaml:"viewport"`

	// ArtifactsDir is where failure screenshots are written
	ArtifactsDir string `yaml:"artifacts_dir"`

	// SkipLinks holds glob patterns matched against link names; matching
	// links are excluded from integrity checks (e.g. a social network that
	// blocks datacenter traffic)
	SkipLinks []string `yaml:"skip_links"`
}

// Default returns the compiled-in configuration. Tests can run against it
// with no YAML file present.
func Default() *Config {
	return &Config{
		BaseURL:      DefaultBaseURL,
		Engine:       EngineChromium,
		Headless:     true,
		TimeoutMs:    DefaultTimeoutMs,
		Viewport:     Viewport{Width: DefaultViewportWidth, Height: DefaultViewportHeight},
		ArtifactsDir: DefaultArtifactsDir,
	}
}

// Load reads configuration from a YAML file, starting from defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// FromEnv applies environment variable overrides to cfg and validates the
// result. Unset variables leave the existing values untouched.
func FromEnv(cfg *Config) error {
	if v := os.Getenv(EnvBaseURL); v != "" {
		cfg.BaseURL = v
	}
	if v := os.Getenv(EnvBrowser); v != "" {
		cfg.Engine = Engine(v)
	}
	if v := os.Getenv(EnvHeadless); v != "" {
		headless, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("parse %s=%q: %w", EnvHeadless, v, err)
		}
		cfg.Headless = headless
	}
	if v := os.Getenv(EnvArtifacts); v != "" {
		cfg.ArtifactsDir = v
	}
	return cfg.Validate()
}

// Validate checks the configuration for values the suite cannot run with.
func (c *Config) Validate() error {
	switch c.Engine {
	case EngineChromium, EngineFirefox, EngineWebKit:
	default:
		return fmt.Errorf("unknown browser engine %q (want chromium, firefox, or webkit)", c.Engine)
	}
	if c.BaseURL == "" {
		return fmt.Errorf("base_url must not be empty")
	}
	if c.TimeoutMs <= 0 {
		return fmt.Errorf("timeout_ms must be positive, got %v", c.TimeoutMs)
	}
	if c.Viewport.Width <= 0 || c.Viewport.Height <= 0 {
		return fmt.Errorf("viewport must be positive, got %dx%d", c.Viewport.Width, c.Viewport.Height)
	}
	if _, err := c.compileSkips(); err != nil {
		return err
	}
	return nil
}

// SkipMatcher compiles the skip_links patterns into a single predicate over
// link names. With no patterns configured it never matches.
func (c *Config) SkipMatcher() (func(name string) bool, error) {
	globs, err := c.compileSkips()
	if err != nil {
		return nil, err
	}
	return func(name string) bool {
		for _, g := range globs {
			if g.Match(name) {
				return true
			}
		}
		return false
	}, nil
}

func (c *Config) compileSkips() ([]glob.Glob, error) {
	globs := make([]glob.Glob, 0, len(c.SkipLinks))
	for _, pattern := range c.SkipLinks {
		g, err := glob.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("compile skip pattern %q: %w", pattern, err)
		}
		globs = append(globs, g)
	}
	return globs, nil
}
