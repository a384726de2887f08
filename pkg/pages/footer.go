package pages

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/playwright-community/playwright-go"

	"github.com/joltrome/tierIV-qa-automation-Jerome/pkg/newtab"
)

// SocialLink describes a footer link that opens an external social profile
// in a new tab.
type SocialLink struct {
	// Name is the human-readable label, used in test output and skip globs
	Name string

	// Selector locates the link within the footer
	Selector string

	// Hosts are the acceptable destination hosts; platforms that have been
	// renamed keep both their old and new domains here
	Hosts []string
}

// DocumentLink describes a footer link to a policy document.
type DocumentLink struct {
	// Name is the human-readable label, used in test output and skip globs
	Name string

	// Selector locates the link within the footer
	Selector string

	// PDF marks links whose body must be a well-formed PDF document
	PDF bool
}

var socialLinks = []SocialLink{
	{Name: "X", Selector: "footer a[href*='x.com'], footer a[href*='twitter.com']", Hosts: []string{"x.com", "twitter.com"}},
	{Name: "Facebook", Selector: "footer a[href*='facebook.com']", Hosts: []string{"facebook.com"}},
	{Name: "LinkedIn", Selector: "footer a[href*='linkedin.com']", Hosts: []string{"linkedin.com"}},
	{Name: "YouTube", Selector: "footer a[href*='youtube.com']", Hosts: []string{"youtube.com"}},
}

var documentLinks = []DocumentLink{
	{Name: "Privacy Policy", Selector: "footer a[href*='privacy']"},
	{Name: "Security Policy", Selector: "footer a[href*='security']", PDF: true},
	{Name: "Terms of Use", Selector: "footer a[href*='terms']"},
}

// Footer is the page object for the site footer. It needs the browsing
// context as well as the page, because social links spawn tabs from the
// context.
type Footer struct {
	page playwright.Page
	ctx  playwright.BrowserContext
}

// NewFooter creates the footer page object for a page within ctx.
func NewFooter(page playwright.Page, ctx playwright.BrowserContext) *Footer {
	return &Footer{page: page, ctx: ctx}
}

// FooterSocialLinks returns the social link table.
func FooterSocialLinks() []SocialLink { return socialLinks }

// FooterDocumentLinks returns the policy document link table.
func FooterDocumentLinks() []DocumentLink { return documentLinks }

// SocialLinks returns the social link table.
func (f *Footer) SocialLinks() []SocialLink { return socialLinks }

// DocumentLinks returns the policy document link table.
func (f *Footer) DocumentLinks() []DocumentLink { return documentLinks }

// LinkVisible reports whether the link at selector is present and visible
// after scrolling the footer into view.
func (f *Footer) LinkVisible(selector string) (bool, error) {
	loc := f.page.Locator(selector).First()
	if err := loc.ScrollIntoViewIfNeeded(); err != nil {
		return false, fmt.Errorf("scroll footer link into view: %w", err)
	}
	visible, err := loc.IsVisible()
	if err != nil {
		return false, fmt.Errorf("check footer link visibility: %w", err)
	}
	return visible, nil
}

// Href returns the href attribute of the link at selector.
func (f *Footer) Href(selector string) (string, error) {
	href, err := f.page.Locator(selector).First().GetAttribute("href")
	if err != nil {
		return "", fmt.Errorf("read footer link href: %w", err)
	}
	return href, nil
}

// OpenSocial clicks the social link and returns the tab it opened, retrying
// under the newtab contract. The caller owns the returned page and must
// close it. Recovery between attempts scrolls the link back into view,
// re-dismisses the consent dialog, and lets the UI settle.
func (f *Footer) OpenSocial(link SocialLink, opts newtab.Options) (playwright.Page, error) {
	loc := f.page.Locator(link.Selector).First()

	trigger := func() error {
		return loc.Click()
	}
	recoverUI := func() {
		_ = loc.ScrollIntoViewIfNeeded()
		DismissConsent(f.page)
		f.page.WaitForTimeout(500)
	}

	return newtab.OpenFromContext("open "+link.Name, f.ctx, trigger, recoverUI, opts)
}

// HostMatches reports whether rawURL's host is one of hosts or a subdomain
// of one (www.x.com matches x.com).
func HostMatches(rawURL string, hosts []string) bool {
	u, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	host := strings.ToLower(u.Hostname())
	for _, h := range hosts {
		h = strings.ToLower(h)
		if host == h || strings.HasSuffix(host, "."+h) {
			return true
		}
	}
	return false
}
