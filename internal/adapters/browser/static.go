package browser

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/go-resty/resty/v2"
)

// Static descarga el HTML sin ejecutar JavaScript. Sirve porque Next.js
// incluye __NEXT_DATA__ en la respuesta server-side.
type Static struct {
	http *resty.Client
}

// NewStatic crea un renderer HTTP plano.
func NewStatic(opts Options) *Static {
	opts.setDefaults()
	client := resty.New()
	client.SetTimeout(opts.NavigationTimeout)
	client.SetHeader("Accept", "text/html,application/xhtml+xml")
	if opts.UserAgent != "" {
		client.SetHeader("User-Agent", opts.UserAgent)
	}
	return &Static{http: client}
}

// Render hace un GET de url y devuelve el cuerpo. Cualquier status no 2xx es error.
func (s *Static) Render(ctx context.Context, url string) ([]byte, error) {
	resp, err := s.http.R().SetContext(ctx).Get(url)
	if err != nil {
		return nil, fmt.Errorf("browser.Static: GET %s: %w", url, err)
	}
	if !resp.IsSuccess() {
		return nil, fmt.Errorf("browser.Static: GET %s: status %d", url, resp.StatusCode())
	}
	slog.Debug("page fetched", "url", url, "bytes", len(resp.Body()))
	return resp.Body(), nil
}
