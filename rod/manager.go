package rod

import (
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
)

// DefaultMaxPages is the number of rendered pages after which the browser
// is relaunched.
const DefaultMaxPages = 50

// BrowserManager owns the headless Chrome process and relaunches it after a
// fixed number of pages, since Chrome's memory grows with every page even
// when pages are closed.
//
// BrowserManager is safe for concurrent use.
type BrowserManager struct {
	mu       sync.Mutex
	browser  *rod.Browser
	launcher *launcher.Launcher
	maxPages int64
	logger   *slog.Logger

	pages  atomic.Int64
	closed atomic.Bool
}

// ManagerOption configures a BrowserManager.
type ManagerOption func(*BrowserManager)

// WithMaxPages sets the number of pages rendered before relaunching.
func WithMaxPages(n int64) ManagerOption {
	return func(bm *BrowserManager) {
		bm.maxPages = n
	}
}

// WithManagerLogger reports relaunches at debug level.
func WithManagerLogger(logger *slog.Logger) ManagerOption {
	return func(bm *BrowserManager) {
		bm.logger = logger
	}
}

// NewBrowserManager launches a headless browser. Close must be called to
// stop it.
func NewBrowserManager(opts ...ManagerOption) (*BrowserManager, error) {
	bm := &BrowserManager{maxPages: DefaultMaxPages}
	for _, opt := range opts {
		opt(bm)
	}

	browser, lnchr, err := launch()
	if err != nil {
		return nil, err
	}
	bm.browser, bm.launcher = browser, lnchr
	return bm, nil
}

// Browser returns the running browser, relaunching it first when the page
// budget is spent. Call IncrementPageCount once the page is done.
func (bm *BrowserManager) Browser() *rod.Browser {
	bm.mu.Lock()
	defer bm.mu.Unlock()

	if bm.pages.Load() >= bm.maxPages {
		bm.relaunch()
	}
	return bm.browser
}

// IncrementPageCount records one rendered page.
func (bm *BrowserManager) IncrementPageCount() {
	bm.pages.Add(1)
}

// Close stops the browser. Close is safe to call multiple times.
func (bm *BrowserManager) Close() error {
	if !bm.closed.CompareAndSwap(false, true) {
		return nil
	}

	bm.mu.Lock()
	defer bm.mu.Unlock()

	err := shutdown(bm.browser, bm.launcher)
	bm.browser, bm.launcher = nil, nil
	return err
}

// LauncherPID returns the process ID of the browser launcher, or 0 once
// closed.
func (bm *BrowserManager) LauncherPID() int {
	bm.mu.Lock()
	defer bm.mu.Unlock()

	if bm.launcher == nil {
		return 0
	}
	return bm.launcher.PID()
}

// relaunch swaps in a fresh browser. The old one keeps serving when the
// launch fails. Must be called with mu held.
func (bm *BrowserManager) relaunch() {
	browser, lnchr, err := launch()
	if err != nil {
		if bm.logger != nil {
			bm.logger.Warn("browser relaunch failed", "err", err)
		}
		return
	}

	_ = shutdown(bm.browser, bm.launcher)
	bm.browser, bm.launcher = browser, lnchr

	if bm.logger != nil {
		bm.logger.Debug("browser relaunched", "pages", bm.pages.Load())
	}
	bm.pages.Store(0)
}

func launch() (*rod.Browser, *launcher.Launcher, error) {
	lnchr := launcher.New().
		Set("disable-background-timer-throttling").
		Set("disable-renderer-backgrounding").
		Set("disable-dev-shm-usage").
		Leakless(true).
		Headless(true)

	u, err := lnchr.Launch()
	if err != nil {
		return nil, nil, fmt.Errorf("launching browser: %w", err)
	}

	browser := rod.New().ControlURL(u)
	if err := browser.Connect(); err != nil {
		lnchr.Kill()
		return nil, nil, fmt.Errorf("connecting to browser: %w", err)
	}
	return browser, lnchr, nil
}

func shutdown(browser *rod.Browser, lnchr *launcher.Launcher) error {
	var err error
	if browser != nil {
		err = browser.Close()
	}
	if lnchr != nil {
		lnchr.Kill()
	}
	return err
}
