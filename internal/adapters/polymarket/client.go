package polymarket

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"math"
	"net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/alejandrodnm/polyholders/internal/domain"
)

const (
	DefaultDataBase        = "https://data-api.polymarket.com"
	DefaultLeaderboardBase = "https://lb-api.polymarket.com"
	DefaultOrigin          = "https://polymarket.com"

	// Sin cabeceras de navegador la API responde 403 desde Cloudflare.
	DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/100.0.0.0 Safari/537.36"

	defaultTimeout = 20 * time.Second

	// Rate limits conservadores: el assembler ya espacia los holders,
	// esto protege ráfagas de las tres llamadas de perfil.
	dataRatePerSec = 10
	lbRatePerSec   = 5

	maxRetries    = 3
	baseRetryWait = 500 * time.Millisecond
)

// Options configura el Client. Los campos vacíos usan los valores de producción.
type Options struct {
	DataBase        string
	LeaderboardBase string
	Origin          string
	UserAgent       string
	Timeout         time.Duration
	RetryWait       time.Duration
	PositionsLimit  int
	OverFetchMargin int
}

// Client es el HTTP client de las APIs públicas de Polymarket (data-api y lb-api)
// con rate limiting y retries.
type Client struct {
	http            *http.Client
	dataBase        string
	lbBase          string
	headers         http.Header
	retryWait       time.Duration
	positionsLimit  int
	overFetchMargin int
	dataLimiter     *rate.Limiter
	lbLimiter       *rate.Limiter
}

// NewClient crea un Client con las opciones dadas.
func NewClient(opts Options) *Client {
	if opts.DataBase == "" {
		opts.DataBase = DefaultDataBase
	}
	if opts.LeaderboardBase == "" {
		opts.LeaderboardBase = DefaultLeaderboardBase
	}
	if opts.Origin == "" {
		opts.Origin = DefaultOrigin
	}
	if opts.UserAgent == "" {
		opts.UserAgent = DefaultUserAgent
	}
	if opts.Timeout <= 0 {
		opts.Timeout = defaultTimeout
	}
	if opts.RetryWait <= 0 {
		opts.RetryWait = baseRetryWait
	}
	if opts.PositionsLimit <= 0 {
		opts.PositionsLimit = defaultPositionsLimit
	}
	if opts.OverFetchMargin <= 0 {
		opts.OverFetchMargin = defaultOverFetchMargin
	}

	origin := strings.TrimRight(opts.Origin, "/")
	headers := http.Header{}
	headers.Set("User-Agent", opts.UserAgent)
	headers.Set("Accept", "application/json")
	headers.Set("Origin", origin)
	headers.Set("Referer", origin+"/")

	return &Client{
		http:            &http.Client{Timeout: opts.Timeout},
		dataBase:        strings.TrimRight(opts.DataBase, "/"),
		lbBase:          strings.TrimRight(opts.LeaderboardBase, "/"),
		headers:         headers,
		retryWait:       opts.RetryWait,
		positionsLimit:  opts.PositionsLimit,
		overFetchMargin: opts.OverFetchMargin,
		dataLimiter:     rate.NewLimiter(dataRatePerSec, 5),
		lbLimiter:       rate.NewLimiter(lbRatePerSec, 3),
	}
}

// get hace un GET con rate limiting y retries y decodifica el JSON en out.
func (c *Client) get(ctx context.Context, limiter *rate.Limiter, url string, out any) error {
	for attempt := 0; attempt <= maxRetries; attempt++ {
		if err := limiter.Wait(ctx); err != nil {
			return fmt.Errorf("rate limiter: %w", err)
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return fmt.Errorf("%w: build request: %v", domain.ErrAPI, err)
		}
		req.Header = c.headers.Clone()

		resp, err := c.http.Do(req)
		if err != nil {
			if attempt == maxRetries || ctx.Err() != nil {
				return fmt.Errorf("%w: GET %s failed after %d attempts: %v", domain.ErrAPI, url, attempt+1, err)
			}
			c.sleep(ctx, attempt)
			continue
		}

		if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500 {
			resp.Body.Close()
			if attempt == maxRetries {
				return fmt.Errorf("%w: GET %s: status %d after %d attempts", domain.ErrAPI, url, resp.StatusCode, attempt+1)
			}
			slog.Warn("api retryable status", "url", url, "status", resp.StatusCode, "attempt", attempt+1)
			c.sleep(ctx, attempt)
			continue
		}

		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			body, _ := io.ReadAll(io.LimitReader(resp.Body, 8<<10))
			resp.Body.Close()
			return fmt.Errorf("%w: GET %s: status %d: %s", domain.ErrAPI, url, resp.StatusCode, string(body))
		}

		err = json.NewDecoder(resp.Body).Decode(out)
		resp.Body.Close()
		if err != nil {
			return fmt.Errorf("%w: GET %s: decode response: %v", domain.ErrAPI, url, err)
		}
		return nil
	}
	return fmt.Errorf("%w: GET %s: exhausted %d retries", domain.ErrAPI, url, maxRetries)
}

// sleep espera con backoff exponencial, respetando el contexto.
func (c *Client) sleep(ctx context.Context, attempt int) {
	wait := time.Duration(math.Pow(2, float64(attempt))) * c.retryWait
	select {
	case <-time.After(wait):
	case <-ctx.Done():
	}
}
