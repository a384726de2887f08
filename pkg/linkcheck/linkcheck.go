// Package linkcheck verifies footer link integrity over plain HTTP: it
// collects the anchors from a rendered page, then probes each destination
// with a rate-limited GET. Document links are additionally validated as
// well-formed PDFs. The rate limiter keeps the suite polite toward the
// third-party destinations it probes.
package linkcheck

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"golang.org/x/time/rate"
)

// maxBodyBytes bounds how much of a destination body is read for validation.
const maxBodyBytes = 32 << 20

// Link is an anchor collected from a page.
type Link struct {
	// Text is the anchor's trimmed text content
	Text string

	// URL is the absolute destination
	URL string
}

// Result is the outcome of probing one destination.
type Result struct {
	// Name labels the link in reports
	Name string

	// URL is the probed destination
	URL string

	// Status is the final HTTP status code, zero if the request failed
	Status int

	// Skipped marks links excluded by configuration
	Skipped bool

	// Err is the failure, nil on success
	Err error
}

// OK reports whether the probe passed.
func (r Result) OK() bool {
	return r.Skipped || r.Err == nil
}

// Checker probes link destinations.
type Checker struct {
	// Client issues the probes; nil means a client with a 30s timeout
	Client *http.Client

	// Limiter paces outbound requests; nil means 2 requests per second
	Limiter *rate.Limiter

	// UserAgent is sent with every probe
	UserAgent string
}

// New returns a Checker with the default client, pacing, and user agent.
func New() *Checker {
	return &Checker{
		Client:    &http.Client{Timeout: 30 * time.Second},
		Limiter:   rate.NewLimiter(rate.Limit(2), 1),
		UserAgent: "tieriv-qa-linkcheck/1.0",
	}
}

// CollectFooterLinks fetches pageURL and returns every footer anchor with a
// usable destination, resolved to an absolute URL. Fragment-only and
// javascript anchors are dropped.
func (c *Checker) CollectFooterLinks(ctx context.Context, pageURL string) ([]Link, error) {
	body, _, err := c.fetch(ctx, pageURL)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", pageURL, err)
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", pageURL, err)
	}

	base, err := url.Parse(pageURL)
	if err != nil {
		return nil, fmt.Errorf("parse base url: %w", err)
	}

	var links []Link
	doc.Find("footer a[href]").Each(func(_ int, sel *goquery.Selection) {
		href, _ := sel.Attr("href")
		href = strings.TrimSpace(href)
		if href == "" || strings.HasPrefix(href, "#") || strings.HasPrefix(href, "javascript:") {
			return
		}
		ref, err := url.Parse(href)
		if err != nil {
			return
		}
		links = append(links, Link{
			Text: strings.TrimSpace(sel.Text()),
			URL:  base.ResolveReference(ref).String(),
		})
	})
	return links, nil
}

// Check probes one destination. wantPDF additionally validates the response
// body as a PDF document.
func (c *Checker) Check(ctx context.Context, name, rawURL string, wantPDF bool) Result {
	result := Result{Name: name, URL: rawURL}

	body, status, err := c.fetch(ctx, rawURL)
	result.Status = status
	if err != nil {
		result.Err = err
		return result
	}

	if wantPDF {
		if err := api.Validate(bytes.NewReader(body), nil); err != nil {
			result.Err = fmt.Errorf("%s is not a well-formed PDF: %w", rawURL, err)
		}
	}
	return result
}

// CheckAll probes every link, honoring the skip predicate by name. Results
// come back in input order, one per link.
func (c *Checker) CheckAll(ctx context.Context, links []Link, skip func(name string) bool) []Result {
	results := make([]Result, 0, len(links))
	for _, link := range links {
		if skip != nil && skip(link.Text) {
			results = append(results, Result{Name: link.Text, URL: link.URL, Skipped: true})
			continue
		}
		results = append(results, c.Check(ctx, link.Text, link.URL, false))
	}
	return results
}

// fetch GETs rawURL under the rate limit and returns the body and final
// status. Non-2xx statuses are errors; the client follows redirects, so a
// 3xx here means a broken redirect chain.
func (c *Checker) fetch(ctx context.Context, rawURL string) ([]byte, int, error) {
	if c.Limiter != nil {
		if err := c.Limiter.Wait(ctx); err != nil {
			return nil, 0, err
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, 0, err
	}
	if c.UserAgent != "" {
		req.Header.Set("User-Agent", c.UserAgent)
	}

	client := c.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, 0, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, resp.StatusCode, fmt.Errorf("read body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return body, resp.StatusCode, fmt.Errorf("GET %s: status %d", rawURL, resp.StatusCode)
	}
	return body, resp.StatusCode, nil
}
