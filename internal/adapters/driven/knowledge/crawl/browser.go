package crawl

import (
	"context"
	"fmt"

	"github.com/chromedp/chromedp"
)

// Ensure ChromeBrowser implements the interface.
var _ Browser = (*ChromeBrowser)(nil)

// ChromeBrowser drives a headless Chrome/Chromium instance via the DevTools
// protocol. One browser process serves the whole crawl; each page load gets
// its own tab.
type ChromeBrowser struct {
	browserCtx  context.Context
	cancelCtx   context.CancelFunc
	cancelAlloc context.CancelFunc
}

// LaunchChrome starts a headless browser. Returned errors cover the whole
// class of environment problems (no Chrome binary, sandboxing restrictions);
// the crawl source maps them to an empty corpus.
func LaunchChrome(ctx context.Context) (Browser, error) {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.NoSandbox,
		chromedp.DisableGPU,
	)
	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, opts...)
	browserCtx, cancelCtx := chromedp.NewContext(allocCtx)

	// Start the browser process eagerly so launch failures surface here
	// instead of on the first page load.
	if err := chromedp.Run(browserCtx); err != nil {
		cancelCtx()
		cancelAlloc()
		return nil, fmt.Errorf("start headless browser: %w", err)
	}

	return &ChromeBrowser{
		browserCtx:  browserCtx,
		cancelCtx:   cancelCtx,
		cancelAlloc: cancelAlloc,
	}, nil
}

// PageHTML loads url in a fresh tab and returns the rendered document.
// The caller's context deadline bounds the navigation.
func (b *ChromeBrowser) PageHTML(ctx context.Context, url string) (string, error) {
	tabCtx, cancelTab := chromedp.NewContext(b.browserCtx)
	defer cancelTab()

	// chromedp contexts must descend from the browser context, so the
	// caller's deadline is re-applied to the tab context.
	if deadline, ok := ctx.Deadline(); ok {
		var cancel context.CancelFunc
		tabCtx, cancel = context.WithDeadline(tabCtx, deadline)
		defer cancel()
	}

	var page string
	err := chromedp.Run(tabCtx,
		chromedp.Navigate(url),
		chromedp.OuterHTML("html", &page),
	)
	if err != nil {
		return "", err
	}
	return page, nil
}

// Close shuts the browser process down.
func (b *ChromeBrowser) Close() error {
	b.cancelCtx()
	b.cancelAlloc()
	return nil
}
