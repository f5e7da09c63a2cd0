package weibo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-pkgz/lgr"
)

// success sentinel of the m.weibo.cn API, any other value is failure
const statusOK = 1

// actionPrefix is the fixed namespace every check-in action scheme must carry
const actionPrefix = "/api/container/button"

// Client talks to the Weibo mobile API with one account's session identity.
// All calls, browsing and actions alike, carry the same cookie and browser
// header profile because the service ties actions to page-level session
// attributes.
type Client struct {
	baseURL      string
	cookie       string
	userAgent    string
	pageDelay    time.Duration
	checkinDelay time.Duration
	maxPages     int
	client       *http.Client
}

// Config holds client settings
type Config struct {
	BaseURL      string
	Cookie       string
	UserAgent    string
	Timeout      time.Duration
	PageDelay    time.Duration
	CheckinDelay time.Duration
	MaxPages     int
}

// NewClient creates a weibo client
func NewClient(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://m.weibo.cn"
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 30 * time.Second
	}
	if cfg.MaxPages == 0 {
		cfg.MaxPages = 50
	}
	return &Client{
		baseURL:      strings.TrimSuffix(cfg.BaseURL, "/"),
		cookie:       cfg.Cookie,
		userAgent:    cfg.UserAgent,
		pageDelay:    cfg.PageDelay,
		checkinDelay: cfg.CheckinDelay,
		maxPages:     cfg.MaxPages,
		client:       &http.Client{Timeout: cfg.Timeout},
	}
}

// CheckinDelay returns the pacing interval the caller must keep after each
// executed check-in action
func (c *Client) CheckinDelay() time.Duration {
	return c.checkinDelay
}

// get issues an authenticated GET against the base URL
func (c *Client) get(ctx context.Context, path string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	c.setSessionHeaders(req)
	return c.client.Do(req)
}

// setSessionHeaders applies the m.weibo.cn browser profile
func (c *Client) setSessionHeaders(req *http.Request) {
	req.Header.Set("Accept", "application/json, text/plain, */*")
	req.Header.Set("MWeibo-Pwa", "1")
	req.Header.Set("Referer", c.baseURL+"/p/tabbar?containerid=100803_-_recentvisit&page_type=tabbar")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}
	if c.cookie != "" {
		req.Header.Set("Cookie", c.cookie)
	}
}

// VerifySession checks that the account is authenticated. Any transport
// error, malformed payload or explicit logged-out indicator yields false.
func (c *Client) VerifySession(ctx context.Context) bool {
	resp, err := c.get(ctx, "/api/config")
	if err != nil {
		lgr.Printf("[WARN] session check failed: %v", err)
		return false
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		lgr.Printf("[WARN] session check unexpected status %d", resp.StatusCode)
		return false
	}

	var payload struct {
		Data struct {
			Login bool `json:"login"`
		} `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		lgr.Printf("[WARN] session check malformed response: %v", err)
		return false
	}
	return payload.Data.Login
}

// PerformAction executes a check-in action by its scheme. The scheme must
// begin with the action namespace prefix, otherwise the call is refused
// without touching the network. Succeeds only on an explicit success signal;
// everything else degrades to false.
func (c *Client) PerformAction(ctx context.Context, scheme string) bool {
	if !strings.HasPrefix(scheme, actionPrefix) {
		lgr.Printf("[WARN] rejected action with foreign scheme %q", scheme)
		return false
	}

	resp, err := c.get(ctx, scheme)
	if err != nil {
		lgr.Printf("[WARN] check-in action failed: %v", err)
		return false
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		lgr.Printf("[WARN] check-in action status %d", resp.StatusCode)
		return false
	}

	var payload struct {
		OK int `json:"ok"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		lgr.Printf("[WARN] check-in action malformed response: %v", err)
		return false
	}
	return payload.OK == statusOK
}
