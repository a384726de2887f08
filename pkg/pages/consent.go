package pages

import (
	"github.com/playwright-community/playwright-go"
)

// consentAcceptSelectors are tried in order when dismissing the cookie
// consent dialog. The site serves different banner markup per locale.
var consentAcceptSelectors = []string{
	"#cookie-consent button.accept",
	"button:has-text('Accept All')",
	"button:has-text('同意する')",
}

// DismissConsent closes the cookie consent dialog if one is blocking the
// page. Absence of the dialog is expected and benign: a prior dismissal
// persists in the browsing context, so this is safe to call repeatedly.
func DismissConsent(page playwright.Page) {
	for _, selector := range consentAcceptSelectors {
		button := page.Locator(selector).First()
		visible, err := button.IsVisible()
		if err != nil || !visible {
			continue
		}
		// Ignore click failures: the banner may have animated away between
		// the visibility probe and the click.
		_ = button.Click(playwright.LocatorClickOptions{
			Timeout: playwright.Float(2000),
		})
		return
	}
}
