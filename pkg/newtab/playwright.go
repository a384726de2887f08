package newtab

import (
	"time"

	"github.com/playwright-community/playwright-go"
)

// ContextSource adapts a Playwright browser context to Source. ExpectPage
// races the trigger against the context's page event, which is exactly the
// registration-then-trigger shape an attempt needs.
type ContextSource struct {
	Ctx playwright.BrowserContext
}

func (s ContextSource) ExpectTab(trigger func() error, timeout time.Duration) (Tab, error) {
	page, err := s.Ctx.ExpectPage(trigger, playwright.BrowserContextExpectPageOptions{
		Timeout: playwright.Float(float64(timeout.Milliseconds())),
	})
	if err != nil {
		return nil, err
	}
	return pageTab{page: page}, nil
}

type pageTab struct {
	page playwright.Page
}

func (t pageTab) WaitForReady(timeout time.Duration) error {
	return t.page.WaitForLoadState(playwright.PageWaitForLoadStateOptions{
		State:   playwright.LoadStateDomcontentloaded,
		Timeout: playwright.Float(float64(timeout.Milliseconds())),
	})
}

// OpenFromContext is the Playwright entry point: it runs Open against ctx and
// unwraps the result to a page handle the caller owns and must close.
func OpenFromContext(action string, ctx playwright.BrowserContext, trigger func() error, recoverUI RecoverFunc, opts Options) (playwright.Page, error) {
	tab, err := Open(action, ContextSource{Ctx: ctx}, trigger, recoverUI, opts)
	if err != nil {
		return nil, err
	}
	return tab.(pageTab).page, nil
}
