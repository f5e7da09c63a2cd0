package weibo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pageBody(sinceID string, names ...string) string {
	items := ""
	for i, name := range names {
		if i > 0 {
			items += ","
		}
		items += fmt.Sprintf(`{"title_sub":%q,"desc1":"LV.3","buttons":[{"name":"签到","scheme":"/api/container/button?id=%d"}]}`, name, i)
	}
	return fmt.Sprintf(`{"ok":1,"data":{"cards":[{"card_group":[%s]}],"cardlistInfo":{"since_id":%s}}}`, items, sinceID)
}

func TestClient_FetchTopics(t *testing.T) {
	t.Run("multi page with numeric cursor", func(t *testing.T) {
		var pages []string
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, "/api/container/getIndex", r.URL.Path)
			require.Equal(t, "100803_-_followsuper", r.URL.Query().Get("containerid"))
			cursor := r.URL.Query().Get("since_id")
			pages = append(pages, cursor)
			switch cursor {
			case "":
				w.Write([]byte(pageBody("42", "topic-a", "topic-b")))
			case "42":
				w.Write([]byte(pageBody(`"s-77"`, "topic-c"))) // string cursor mid-way
			case "s-77":
				w.Write([]byte(pageBody("0", "topic-d"))) // zero cursor terminates
			default:
				t.Fatalf("unexpected cursor %q", cursor)
			}
		}))
		defer ts.Close()

		c := NewClient(Config{BaseURL: ts.URL, PageDelay: time.Millisecond})
		topics, err := c.FetchTopics(context.Background())
		require.NoError(t, err)
		require.Len(t, topics, 4)
		assert.Equal(t, "topic-a", topics[0].Name)
		assert.Equal(t, "topic-d", topics[3].Name)
		assert.Equal(t, []string{"", "42", "s-77"}, pages, "cursor threaded through requests")
		require.Len(t, topics[0].Buttons, 1)
		assert.Equal(t, "签到", topics[0].Buttons[0].Name)
	})

	t.Run("single page, empty cursor", func(t *testing.T) {
		calls := 0
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls++
			w.Write([]byte(pageBody(`""`, "only")))
		}))
		defer ts.Close()

		c := NewClient(Config{BaseURL: ts.URL, PageDelay: time.Millisecond})
		topics, err := c.FetchTopics(context.Background())
		require.NoError(t, err)
		assert.Len(t, topics, 1)
		assert.Equal(t, 1, calls)
	})

	t.Run("null cursor terminates", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(pageBody("null", "only")))
		}))
		defer ts.Close()

		c := NewClient(Config{BaseURL: ts.URL, PageDelay: time.Millisecond})
		topics, err := c.FetchTopics(context.Background())
		require.NoError(t, err)
		assert.Len(t, topics, 1)
	})

	t.Run("first page failure", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer ts.Close()

		c := NewClient(Config{BaseURL: ts.URL, PageDelay: time.Millisecond})
		topics, err := c.FetchTopics(context.Background())
		assert.ErrorIs(t, err, ErrListFetchFailed)
		assert.Nil(t, topics)
	})

	t.Run("rejected payload on first page", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"ok":0,"msg":"not allowed"}`))
		}))
		defer ts.Close()

		c := NewClient(Config{BaseURL: ts.URL, PageDelay: time.Millisecond})
		_, err := c.FetchTopics(context.Background())
		require.ErrorIs(t, err, ErrListFetchFailed)
		assert.Contains(t, err.Error(), "not allowed")
	})

	t.Run("mid-way failure keeps partial result", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Query().Get("since_id") == "" {
				w.Write([]byte(pageBody("42", "topic-a", "topic-b")))
				return
			}
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer ts.Close()

		c := NewClient(Config{BaseURL: ts.URL, PageDelay: time.Millisecond})
		topics, err := c.FetchTopics(context.Background())
		require.NoError(t, err, "partial result is not an error")
		assert.Len(t, topics, 2)
	})

	t.Run("cancellation keeps partial result", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(pageBody("42", "topic-a")))
		}))
		defer ts.Close()

		// cancellation lands inside the inter-page delay, before page 2
		time.AfterFunc(100*time.Millisecond, cancel)
		c := NewClient(Config{BaseURL: ts.URL, PageDelay: 5 * time.Second})
		topics, err := c.FetchTopics(ctx)
		require.NoError(t, err)
		assert.Len(t, topics, 1)
	})

	t.Run("cancellation mid-page is not a list failure", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cancel() // cancellation lands while the first page is in flight
			<-r.Context().Done()
		}))
		defer ts.Close()

		c := NewClient(Config{BaseURL: ts.URL, PageDelay: time.Millisecond})
		topics, err := c.FetchTopics(ctx)
		require.NoError(t, err, "a cancelled fetch with nothing retrieved is still not a failure")
		assert.Empty(t, topics)
	})

	t.Run("page cap stops runaway cursor", func(t *testing.T) {
		calls := 0
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls++
			w.Write([]byte(pageBody("1", "t"))) // cursor never exhausts
		}))
		defer ts.Close()

		c := NewClient(Config{BaseURL: ts.URL, PageDelay: time.Millisecond, MaxPages: 3})
		topics, err := c.FetchTopics(context.Background())
		require.NoError(t, err)
		assert.Len(t, topics, 3)
		assert.Equal(t, 3, calls)
	})
}

func TestCursorString(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"number", `42`, "42"},
		{"string", `"abc"`, "abc"},
		{"empty string", `""`, ""},
		{"null", `null`, ""},
		{"zero", `0`, ""},
		{"absent", ``, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, cursorString(json.RawMessage(tt.raw)))
		})
	}
}
