package browser

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/chromedp/chromedp"

	"github.com/alejandrodnm/polyholders/internal/domain"
	"github.com/alejandrodnm/polyholders/internal/pagestate"
)

// Chrome renderiza páginas con un Chrome headless vía chromedp.
// Cada Render lanza su propio navegador y lo cierra al salir, también en error.
type Chrome struct {
	opts Options
}

// NewChrome crea un renderer Chrome.
func NewChrome(opts Options) *Chrome {
	opts.setDefaults()
	return &Chrome{opts: opts}
}

// Render navega a url, espera el script de estado y devuelve el HTML completo.
func (c *Chrome) Render(ctx context.Context, url string) ([]byte, error) {
	allocOpts := append([]chromedp.ExecAllocatorOption{}, chromedp.DefaultExecAllocatorOptions[:]...)
	allocOpts = append(allocOpts, chromedp.Flag("headless", c.opts.Headless))
	if c.opts.UserAgent != "" {
		allocOpts = append(allocOpts, chromedp.UserAgent(c.opts.UserAgent))
	}

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, allocOpts...)
	defer cancelAlloc()
	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx)
	defer cancelBrowser()

	// El primer Run arranca el navegador; no puede llevar timeout propio
	// porque al vencer cerraría el navegador entero.
	if err := chromedp.Run(browserCtx); err != nil {
		return nil, fmt.Errorf("browser.Chrome: start: %w", err)
	}
	slog.Debug("browser started", "headless", c.opts.Headless)

	navCtx, cancelNav := context.WithTimeout(browserCtx, c.opts.NavigationTimeout)
	defer cancelNav()
	if err := chromedp.Run(navCtx, chromedp.Navigate(url)); err != nil {
		return nil, fmt.Errorf("browser.Chrome: navigate %s: %w", url, err)
	}

	waitCtx, cancelWait := context.WithTimeout(browserCtx, min(c.opts.ScriptWait, c.opts.ActionTimeout))
	defer cancelWait()
	if err := chromedp.Run(waitCtx, chromedp.WaitReady(pagestate.ScriptSelector, chromedp.ByQuery)); err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, fmt.Errorf("browser.Chrome: %s not ready: %w", pagestate.ScriptSelector, domain.ErrStateNotFound)
		}
		return nil, fmt.Errorf("browser.Chrome: wait %s: %w", pagestate.ScriptSelector, err)
	}

	actionCtx, cancelAction := context.WithTimeout(browserCtx, c.opts.ActionTimeout)
	defer cancelAction()
	var html string
	if err := chromedp.Run(actionCtx, chromedp.OuterHTML("html", &html, chromedp.ByQuery)); err != nil {
		return nil, fmt.Errorf("browser.Chrome: read html: %w", err)
	}

	slog.Debug("page rendered", "url", url, "bytes", len(html))
	return []byte(html), nil
}
