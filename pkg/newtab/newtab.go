// Package newtab opens a browser tab as the side effect of a user action,
// tolerating the flakiness inherent in that operation. The triggering click
// and the context's new-page event are not causally ordered, so the two are
// raced rather than sequenced; a slow rendering engine can miss the window,
// so failed attempts are retried with linear backoff and UI recovery in
// between. Callers get back either a fully loaded tab or a single terminal
// error, never both and never neither.
package newtab

import (
	"fmt"
	"time"
)

// Default bounds for one open operation.
const (
	DefaultMaxAttempts = 3
	DefaultOpenTimeout = 30 * time.Second
	DefaultLoadTimeout = 30 * time.Second
	DefaultBaseDelay   = 1 * time.Second
)

// Tab is a newly created tab whose initial load may still be in progress.
type Tab interface {
	// WaitForReady blocks until the tab has finished parsing its initial
	// content, or the timeout elapses.
	WaitForReady(timeout time.Duration) error
}

// Source registers interest in the browsing context's new-tab signal, runs
// the trigger, and resolves once both the trigger has completed and a tab has
// appeared, or fails once the timeout elapses.
type Source interface {
	ExpectTab(trigger func() error, timeout time.Duration) (Tab, error)
}

// RecoverFunc restores the triggering UI between attempts: scroll the element
// back into view, dismiss any blocking overlay, let the page settle. It runs
// strictly between consecutive attempts, never before the first and never
// after the last.
type RecoverFunc func()

// Options bounds a single open operation. The zero value means defaults.
type Options struct {
	// MaxAttempts is the total number of attempts before giving up
	MaxAttempts int

	// OpenTimeout bounds the wait for the new-tab signal, per attempt
	OpenTimeout time.Duration

	// LoadTimeout bounds the wait for the tab's initial load, per attempt
	LoadTimeout time.Duration

	// BaseDelay scales the backoff: the delay after failing attempt k is
	// k × BaseDelay
	BaseDelay time.Duration

	// Sleep is the delay function, injectable for tests; nil means time.Sleep
	Sleep func(time.Duration)

	// Logf observes intermediate attempt failures; nil discards them
	Logf func(format string, args ...any)
}

func (o Options) withDefaults() Options {
	if o.MaxAttempts <= 0 {
		o.MaxAttempts = DefaultMaxAttempts
	}
	if o.OpenTimeout <= 0 {
		o.OpenTimeout = DefaultOpenTimeout
	}
	if o.LoadTimeout <= 0 {
		o.LoadTimeout = DefaultLoadTimeout
	}
	if o.BaseDelay <= 0 {
		o.BaseDelay = DefaultBaseDelay
	}
	if o.Sleep == nil {
		o.Sleep = time.Sleep
	}
	if o.Logf == nil {
		o.Logf = func(string, ...any) {}
	}
	return o
}

// Open performs trigger until it yields a loaded tab, retrying failed
// attempts up to the configured maximum. action names the operation in logs
// and in the terminal error. Attempts are strictly sequential. The returned
// tab is owned by the caller.
//
// Only exhaustion is reported; individual attempt failures are logged through
// Options.Logf and recovered locally.
func Open(action string, src Source, trigger func() error, recoverUI RecoverFunc, opts Options) (Tab, error) {
	opts = opts.withDefaults()

	var lastErr error
	for attempt := 1; attempt <= opts.MaxAttempts; attempt++ {
		if attempt > 1 {
			opts.Sleep(time.Duration(attempt-1) * opts.BaseDelay)
			if recoverUI != nil {
				recoverUI()
			}
		}

		tab, err := src.ExpectTab(trigger, opts.OpenTimeout)
		if err == nil {
			err = tab.WaitForReady(opts.LoadTimeout)
			if err == nil {
				return tab, nil
			}
		}

		lastErr = err
		opts.Logf("%s: attempt %d/%d failed: %v", action, attempt, opts.MaxAttempts, err)
	}

	return nil, fmt.Errorf("%s: new tab did not open after %d attempts: %w", action, opts.MaxAttempts, lastErr)
}
