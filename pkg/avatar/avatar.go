// Package avatar fetches profile pictures for dossier display. The cache is
// explicitly bounded and owned by the Client, concurrent fetches of the same
// URL collapse into one request, and outbound traffic is rate limited. A
// failed or unavailable fetch degrades to a deterministic initials
// placeholder; the reconciliation path never waits on an avatar.
package avatar

import (
	"context"
	"errors"
	"fmt"
	"hash/fnv"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
	"golang.org/x/time/rate"
)

// maxAvatarBytes caps a single fetched image.
const maxAvatarBytes = 1 << 20

// Options configures a Client.
type Options struct {
	CacheSize      int
	RequestsPerSec float64
	Timeout        time.Duration
	HTTPClient     *http.Client
}

// Client fetches and caches avatars.
type Client struct {
	http    *http.Client
	limiter *rate.Limiter
	group   singleflight.Group

	mu    sync.Mutex
	cache *lru
}

// New builds a Client. Zero option fields get working defaults.
func New(opts Options) *Client {
	if opts.CacheSize < 1 {
		opts.CacheSize = 256
	}
	if opts.RequestsPerSec <= 0 {
		opts.RequestsPerSec = 5
	}
	if opts.Timeout <= 0 {
		opts.Timeout = 10 * time.Second
	}
	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: opts.Timeout}
	}
	return &Client{
		http:    httpClient,
		limiter: rate.NewLimiter(rate.Limit(opts.RequestsPerSec), 1),
		cache:   newLRU(opts.CacheSize),
	}
}

// Get returns the avatar bytes for url, fetching on cache miss. Any fetch
// problem falls back to an initials placeholder for name rather than an
// error; only context cancellation aborts.
func (c *Client) Get(ctx context.Context, url, name string) ([]byte, error) {
	if url == "" {
		return Placeholder(name), nil
	}

	c.mu.Lock()
	cached, ok := c.cache.get(url)
	c.mu.Unlock()
	if ok {
		return cached, nil
	}

	data, err, _ := c.group.Do(url, func() (any, error) {
		return c.fetch(ctx, url)
	})
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		zap.L().Debug("avatar: fetch failed, using placeholder",
			zap.String("url", url), zap.Error(err))
		return Placeholder(name), nil
	}

	body := data.([]byte)
	c.mu.Lock()
	c.cache.put(url, body)
	c.mu.Unlock()
	return body, nil
}

// fetch downloads one avatar, retrying transient failures with backoff.
func (c *Client) fetch(ctx context.Context, url string) ([]byte, error) {
	var body []byte
	var lastErr error

	backoff := 200 * time.Millisecond
	for attempt := 0; attempt < maxFetchAttempts; attempt++ {
		if attempt > 0 {
			select {
			case <-time.After(backoff):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
			backoff *= 2
		}

		body, lastErr = c.fetchOnce(ctx, url)
		if lastErr == nil {
			return body, nil
		}
		if ctx.Err() != nil || !isTransient(lastErr) {
			return nil, lastErr
		}
	}
	return nil, lastErr
}

func (c *Client) fetchOnce(ctx context.Context, url string) ([]byte, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &statusError{code: resp.StatusCode}
	}
	return io.ReadAll(io.LimitReader(resp.Body, maxAvatarBytes))
}

const maxFetchAttempts = 3

type statusError struct {
	code int
}

func (e *statusError) Error() string {
	return fmt.Sprintf("avatar: status %d", e.code)
}

// isTransient reports whether a fetch error is worth retrying: network
// failures and server-side statuses are, client errors are not.
func isTransient(err error) bool {
	var se *statusError
	if errors.As(err, &se) {
		return se.code >= 500 || se.code == http.StatusTooManyRequests
	}
	return true
}

// CacheLen reports the number of cached avatars.
func (c *Client) CacheLen() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.cache.len()
}

// placeholderPalette are the background colors the initials placeholder
// rotates through; a name always maps to the same color.
var placeholderPalette = []string{
	"#4e79a7", "#f28e2b", "#59a14f", "#e15759", "#76b7b2", "#af7aa1",
}

// Placeholder renders a deterministic initials SVG for the given name.
func Placeholder(name string) []byte {
	initials := Initials(name)
	h := fnv.New32a()
	h.Write([]byte(strings.ToLower(name)))
	color := placeholderPalette[h.Sum32()%uint32(len(placeholderPalette))]

	svg := fmt.Sprintf(
		`<svg xmlns="http://www.w3.org/2000/svg" width="96" height="96">`+
			`<rect width="96" height="96" fill="%s"/>`+
			`<text x="48" y="60" font-family="sans-serif" font-size="36" fill="#fff" text-anchor="middle">%s</text>`+
			`</svg>`,
		color, initials)
	return []byte(svg)
}

// Initials derives up to two uppercase initials from a display name. An
// unusable name yields "?".
func Initials(name string) string {
	var initials []rune
	for _, word := range strings.Fields(name) {
		for _, r := range word {
			if strings.ContainsRune("([{\"'", r) {
				continue
			}
			initials = append(initials, []rune(strings.ToUpper(string(r)))...)
			break
		}
		if len(initials) == 2 {
			break
		}
	}
	if len(initials) == 0 {
		return "?"
	}
	return string(initials)
}
