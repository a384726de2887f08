// Package pages contains the page objects and locator tables for the
// marketing site. All site-specific selectors live here; test cases and
// helpers operate on these tables rather than raw selectors.
package pages

import (
	"fmt"
	"strings"

	"github.com/playwright-community/playwright-go"
)

// Language identifies a site locale.
type Language string

const (
	LanguageEN Language = "en"
	LanguageJA Language = "ja"
)

// NavItem describes one entry in the header navigation.
type NavItem struct {
	// Name is the human-readable label, used in test output
	Name string

	// Selector locates the entry within the header
	Selector string

	// PathFragment must appear in the URL after navigating
	PathFragment string
}

// headerNavItems is the header navigation table for the English locale.
var headerNavItems = []NavItem{
	{Name: "Company", Selector: "header nav a[href*='/company']", PathFragment: "/company"},
	{Name: "Technology", Selector: "header nav a[href*='/technology']", PathFragment: "/technology"},
	{Name: "Solutions", Selector: "header nav a[href*='/solutions']", PathFragment: "/solutions"},
	{Name: "News", Selector: "header nav a[href*='/news']", PathFragment: "/news"},
	{Name: "Careers", Selector: "header nav a[href*='/careers']", PathFragment: "/careers"},
	{Name: "Contact", Selector: "header nav a[href*='/contact']", PathFragment: "/contact"},
}

// languageOption describes one entry in the header language switcher.
type languageOption struct {
	lang     Language
	selector string
	// pathPrefix is the locale's URL prefix relative to the site root
	pathPrefix string
}

var languageOptions = []languageOption{
	{lang: LanguageEN, selector: "header a[href^='/en']:has-text('EN')", pathPrefix: "/en"},
	{lang: LanguageJA, selector: "header a[hreflang='ja'], header a:has-text('JA')", pathPrefix: "/"},
}

// Home is the page object for the site's landing page and its header.
type Home struct {
	page    playwright.Page
	baseURL string
}

// NewHome creates the page object. baseURL has no trailing slash.
func NewHome(page playwright.Page, baseURL string) *Home {
	return &Home{page: page, baseURL: strings.TrimRight(baseURL, "/")}
}

// Page exposes the underlying page for assertions the object does not cover.
func (h *Home) Page() playwright.Page { return h.page }

// Open navigates to the landing page for the given language and clears the
// consent dialog so it cannot block later interactions.
func (h *Home) Open(lang Language) error {
	url := h.baseURL + "/"
	if lang == LanguageEN {
		url = h.baseURL + "/en/"
	}

	_, err := h.page.Goto(url, playwright.PageGotoOptions{
		WaitUntil: playwright.WaitUntilStateDomcontentloaded,
	})
	if err != nil {
		return fmt.Errorf("open %s: %w", url, err)
	}

	DismissConsent(h.page)
	return nil
}

// HeaderNavItems returns the header navigation table.
func HeaderNavItems() []NavItem {
	return headerNavItems
}

// NavItems returns the header navigation table.
func (h *Home) NavItems() []NavItem {
	return headerNavItems
}

// NavVisible reports whether the given header entry is visible.
func (h *Home) NavVisible(item NavItem) (bool, error) {
	visible, err := h.page.Locator(item.Selector).First().IsVisible()
	if err != nil {
		return false, fmt.Errorf("check %s nav visibility: %w", item.Name, err)
	}
	return visible, nil
}

// NavigateTo clicks a header entry and verifies the resulting URL contains
// the entry's path fragment.
func (h *Home) NavigateTo(item NavItem) error {
	if err := h.page.Locator(item.Selector).First().Click(); err != nil {
		return fmt.Errorf("click %s nav entry: %w", item.Name, err)
	}

	if err := h.page.WaitForLoadState(playwright.PageWaitForLoadStateOptions{
		State: playwright.LoadStateDomcontentloaded,
	}); err != nil {
		return fmt.Errorf("%s navigation did not complete: %w", item.Name, err)
	}

	if url := h.page.URL(); !strings.Contains(url, item.PathFragment) {
		return fmt.Errorf("%s navigation landed on %s, want fragment %s", item.Name, url, item.PathFragment)
	}
	return nil
}

// SwitchLanguage clicks the header language switcher for the target locale.
func (h *Home) SwitchLanguage(lang Language) error {
	var opt *languageOption
	for i := range languageOptions {
		if languageOptions[i].lang == lang {
			opt = &languageOptions[i]
			break
		}
	}
	if opt == nil {
		return fmt.Errorf("unknown language %q", lang)
	}

	if err := h.page.Locator(opt.selector).First().Click(); err != nil {
		return fmt.Errorf("click %s language switcher: %w", lang, err)
	}

	if err := h.page.WaitForLoadState(playwright.PageWaitForLoadStateOptions{
		State: playwright.LoadStateDomcontentloaded,
	}); err != nil {
		return fmt.Errorf("language switch to %s did not complete: %w", lang, err)
	}
	return nil
}

// Language reads the current locale from the document's lang attribute.
func (h *Home) Language() (Language, error) {
	lang, err := h.page.Locator("html").GetAttribute("lang")
	if err != nil {
		return "", fmt.Errorf("read html lang attribute: %w", err)
	}

	// The site reports regioned codes like "ja-JP"; the locale is the
	// leading subtag.
	if idx := strings.IndexByte(lang, '-'); idx > 0 {
		lang = lang[:idx]
	}
	return Language(strings.ToLower(lang)), nil
}
