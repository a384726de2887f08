// Package main provides the e2e helper binary for the marketing-site suite.
// It installs the Playwright browsers CI needs, smoke-checks that the site
// is reachable before a run, and produces footer link-integrity reports
// without driving a browser.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/playwright-community/playwright-go"
	"github.com/sirupsen/logrus"

	"github.com/joltrome/tierIV-qa-automation-Jerome/pkg/config"
	"github.com/joltrome/tierIV-qa-automation-Jerome/pkg/linkcheck"
)

func main() {
	var (
		configPath = flag.String("config", "", "path to YAML suite configuration")
		baseURL    = flag.String("base-url", "", "override the site base URL")
		install    = flag.Bool("install", false, "install the Playwright driver and browsers")
		smoke      = flag.Bool("smoke", false, "check the site is reachable")
		links      = flag.Bool("links", false, "report footer link integrity")
		verbose    = flag.Bool("v", false, "enable debug logging")
	)
	flag.Parse()

	log := logrus.New()
	if *verbose {
		log.SetLevel(logrus.DebugLevel)
	}

	cfg, err := loadConfig(*configPath, *baseURL)
	if err != nil {
		log.WithError(err).Fatal("configuration")
	}

	if !*install && !*smoke && !*links {
		flag.Usage()
		os.Exit(2)
	}

	if *install {
		if err := installBrowsers(log); err != nil {
			log.WithError(err).Fatal("browser install failed")
		}
	}
	if *smoke {
		if err := smokeCheck(log, cfg); err != nil {
			log.WithError(err).Fatal("smoke check failed")
		}
	}
	if *links {
		if err := linkReport(log, cfg); err != nil {
			log.WithError(err).Fatal("link report failed")
		}
	}
}

func loadConfig(path, baseURL string) (*config.Config, error) {
	cfg := config.Default()
	if path != "" {
		var err error
		if cfg, err = config.Load(path); err != nil {
			return nil, err
		}
	}
	if err := config.FromEnv(cfg); err != nil {
		return nil, err
	}
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	return cfg, cfg.Validate()
}

// installBrowsers fetches the Playwright driver and every engine the suite
// runs against.
func installBrowsers(log *logrus.Logger) error {
	log.Info("installing playwright driver and browsers")

	browsers := make([]string, 0, len(config.Engines))
	for _, engine := range config.Engines {
		browsers = append(browsers, string(engine))
	}
	return playwright.Install(&playwright.RunOptions{
		Verbose:  false,
		Stdout:   io.Discard,
		Stderr:   io.Discard,
		Browsers: browsers,
	})
}

// smokeCheck probes both locale landing pages over HTTP.
func smokeCheck(log *logrus.Logger, cfg *config.Config) error {
	checker := linkcheck.New()
	ctx := context.Background()

	for _, path := range []string{"/", "/en/"} {
		url := cfg.BaseURL + path
		result := checker.Check(ctx, path, url, false)
		if !result.OK() {
			return fmt.Errorf("%s unreachable: %w", url, result.Err)
		}
		log.WithFields(logrus.Fields{"url": url, "status": result.Status}).Info("reachable")
	}
	return nil
}

// linkReport collects the English footer's anchors and probes each one,
// printing a pass/fail line per destination.
func linkReport(log *logrus.Logger, cfg *config.Config) error {
	skip, err := cfg.SkipMatcher()
	if err != nil {
		return err
	}

	checker := linkcheck.New()
	ctx := context.Background()

	pageURL := cfg.BaseURL + "/en/"
	collected, err := checker.CollectFooterLinks(ctx, pageURL)
	if err != nil {
		return err
	}
	log.WithField("count", len(collected)).Info("collected footer links")

	broken := 0
	for _, result := range checker.CheckAll(ctx, collected, skip) {
		entry := log.WithFields(logrus.Fields{"link": result.Name, "url": result.URL})
		switch {
		case result.Skipped:
			entry.Debug("skipped")
		case result.OK():
			entry.WithField("status", result.Status).Info("ok")
		default:
			broken++
			entry.WithError(result.Err).Error("broken")
		}
	}

	if broken > 0 {
		return fmt.Errorf("%d broken footer links", broken)
	}
	return nil
}
