package weibo

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_VerifySession(t *testing.T) {
	t.Run("logged in", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/config", r.URL.Path)
			assert.Equal(t, "SUB=abc", r.Header.Get("Cookie"))
			assert.Equal(t, "1", r.Header.Get("MWeibo-Pwa"))
			assert.Contains(t, r.Header.Get("Referer"), "containerid=100803_-_recentvisit")
			w.Write([]byte(`{"data":{"login":true}}`))
		}))
		defer ts.Close()

		c := NewClient(Config{BaseURL: ts.URL, Cookie: "SUB=abc", UserAgent: "test-agent"})
		assert.True(t, c.VerifySession(context.Background()))
	})

	t.Run("logged out", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"data":{"login":false}}`))
		}))
		defer ts.Close()

		c := NewClient(Config{BaseURL: ts.URL})
		assert.False(t, c.VerifySession(context.Background()))
	})

	t.Run("server error", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer ts.Close()

		c := NewClient(Config{BaseURL: ts.URL})
		assert.False(t, c.VerifySession(context.Background()))
	})

	t.Run("malformed payload", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`<html>not json</html>`))
		}))
		defer ts.Close()

		c := NewClient(Config{BaseURL: ts.URL})
		assert.False(t, c.VerifySession(context.Background()))
	})

	t.Run("unreachable server", func(t *testing.T) {
		c := NewClient(Config{BaseURL: "http://127.0.0.1:1", Timeout: 100 * time.Millisecond})
		assert.False(t, c.VerifySession(context.Background()))
	})
}

func TestClient_PerformAction(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/container/button", r.URL.Path)
			assert.Equal(t, "checkin", r.URL.Query().Get("action"))
			w.Write([]byte(`{"ok":1}`))
		}))
		defer ts.Close()

		c := NewClient(Config{BaseURL: ts.URL})
		assert.True(t, c.PerformAction(context.Background(), "/api/container/button?action=checkin&id=123"))
	})

	t.Run("explicit failure", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"ok":0,"msg":"今天已经签到过了"}`))
		}))
		defer ts.Close()

		c := NewClient(Config{BaseURL: ts.URL})
		assert.False(t, c.PerformAction(context.Background(), "/api/container/button?action=checkin"))
	})

	t.Run("non-2xx status", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusForbidden)
		}))
		defer ts.Close()

		c := NewClient(Config{BaseURL: ts.URL})
		assert.False(t, c.PerformAction(context.Background(), "/api/container/button?action=checkin"))
	})

	t.Run("foreign scheme refused without network", func(t *testing.T) {
		var hit bool
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			hit = true
		}))
		defer ts.Close()

		c := NewClient(Config{BaseURL: ts.URL})
		assert.False(t, c.PerformAction(context.Background(), "/api/other/endpoint?x=1"))
		assert.False(t, c.PerformAction(context.Background(), "https://evil.example.com/api/container/button"))
		assert.False(t, hit, "refused schemes never reach the network")
	})
}

func TestNewClient_Defaults(t *testing.T) {
	c := NewClient(Config{Cookie: "SUB=abc"})
	assert.Equal(t, "https://m.weibo.cn", c.baseURL)
	assert.Equal(t, 50, c.maxPages)
	assert.Equal(t, 30*time.Second, c.client.Timeout)

	c = NewClient(Config{BaseURL: "http://example.com/", MaxPages: 3, CheckinDelay: time.Second})
	assert.Equal(t, "http://example.com", c.baseURL, "trailing slash trimmed")
	require.Equal(t, time.Second, c.CheckinDelay())
}
