// Package gutendex talks to a Gutendex compatible book API, the JSON front of
// a Project Gutenberg mirror.
package gutendex // import "github.com/Xunop/gutenshelf/internal/gutendex"

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/Xunop/gutenshelf/internal/log"
	"github.com/Xunop/gutenshelf/internal/model"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// ErrNotFound is returned when the API answers without a book.
var ErrNotFound = errors.New("book not found")

// StatusError is returned for any non-200 answer.
type StatusError struct {
	Code int
	URL  string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status code %d from %s", e.Code, e.URL)
}

// IsNotFound reports whether err means the requested book does not exist.
func IsNotFound(err error) bool {
	if errors.Is(err, ErrNotFound) {
		return true
	}
	var statusErr *StatusError
	return errors.As(err, &statusErr) && statusErr.Code == http.StatusNotFound
}

type Client struct {
	httpClient *http.Client
	baseURL    *url.URL
	userAgent  string
	timeout    time.Duration
	limiter    *rate.Limiter
}

type Option func(*Client)

// WithHTTPClient uses a copy of hc; later options never modify hc itself.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		clone := *hc
		c.httpClient = &clone
	}
}

// WithTimeout bounds every request, 0 keeps the transport default. It applies
// whatever the position of WithHTTPClient.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.timeout = d
	}
}

func WithUserAgent(ua string) Option {
	return func(c *Client) {
		c.userAgent = ua
	}
}

// WithRateLimit spaces requests to at most rps per second, 0 disables it.
func WithRateLimit(rps float64) Option {
	return func(c *Client) {
		if rps <= 0 {
			c.limiter = nil
			return
		}
		c.limiter = rate.NewLimiter(rate.Limit(rps), 1)
	}
}

func NewClient(baseURL string, opts ...Option) (*Client, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid api base url %q", baseURL)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, errors.Errorf("api base url %q must be absolute", baseURL)
	}

	c := &Client{
		httpClient: &http.Client{},
		baseURL:    u,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.timeout > 0 {
		c.httpClient.Timeout = c.timeout
	}
	return c, nil
}

// ListBooks fetches one page of GET /books with the filters of find.
func (c *Client) ListBooks(ctx context.Context, find model.FindBook) (*model.BookList, error) {
	var list model.BookList
	if err := c.get(ctx, c.baseURL.JoinPath("books"), find.Values(), &list); err != nil {
		return nil, errors.Wrap(err, "list books")
	}
	return &list, nil
}

// GetBook fetches GET /books/{id}.
func (c *Client) GetBook(ctx context.Context, id int) (*model.Book, error) {
	var book model.Book
	if err := c.get(ctx, c.baseURL.JoinPath("books", strconv.Itoa(id)), nil, &book); err != nil {
		return nil, errors.Wrapf(err, "get book %d", id)
	}
	if book.ID == 0 {
		return nil, errors.Wrapf(ErrNotFound, "get book %d", id)
	}
	return &book, nil
}

func (c *Client) get(ctx context.Context, endpoint *url.URL, query url.Values, target interface{}) error {
	if len(query) > 0 {
		endpoint.RawQuery = query.Encode()
	}
	rawURL := endpoint.String()

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return errors.Wrap(err, "rate limiter")
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return errors.Wrap(err, "build request")
	}
	req.Header.Set("Accept", "application/json")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	log.Debug("API request", zap.String("url", rawURL))
	start := time.Now()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Error("API request error", zap.String("url", rawURL), zap.Error(err))
		return errors.Wrap(err, "send request")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Error("API response error",
			zap.String("url", rawURL),
			zap.Int("status_code", resp.StatusCode),
			zap.Duration("duration", time.Since(start)))
		return &StatusError{Code: resp.StatusCode, URL: rawURL}
	}

	if err := json.NewDecoder(resp.Body).Decode(target); err != nil {
		log.Error("API response decode error", zap.String("url", rawURL), zap.Error(err))
		return errors.Wrap(err, "decode response")
	}

	log.Debug("API response",
		zap.String("url", rawURL),
		zap.Int("status_code", resp.StatusCode),
		zap.Duration("duration", time.Since(start)))
	return nil
}
