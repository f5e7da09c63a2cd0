package weibo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/go-pkgz/lgr"

	"github.com/umputun/chaohua/pkg/domain"
)

// collection identifier of the followed super-topics list
const followedContainerID = "100803_-_followsuper"

// ErrListFetchFailed indicates the topic list could not be retrieved at all
var ErrListFetchFailed = errors.New("topic list fetch failed")

// listResponse is the wire shape of the paginated list endpoint
type listResponse struct {
	OK   int    `json:"ok"`
	Msg  string `json:"msg"`
	Data struct {
		Cards        []listCard `json:"cards"`
		CardlistInfo struct {
			SinceID json.RawMessage `json:"since_id"` // number or string, opaque cursor
		} `json:"cardlistInfo"`
	} `json:"data"`
}

type listCard struct {
	CardGroup []listGroupItem `json:"card_group"`
}

type listGroupItem struct {
	TitleSub string `json:"title_sub"`
	Desc1    string `json:"desc1"`
	Buttons  []struct {
		Name   string `json:"name"`
		Scheme string `json:"scheme"`
	} `json:"buttons"`
}

// FetchTopics retrieves the full set of followed super-topics via cursor
// pagination. Cancellation and mid-way transport failures degrade to the
// topics accumulated so far; the error is non-nil only when nothing was
// retrieved at all.
func (c *Client) FetchTopics(ctx context.Context) ([]domain.Topic, error) {
	var topics []domain.Topic
	sinceID := ""

	for page := 1; page <= c.maxPages; page++ {
		// cooperative stop takes priority over everything else
		if ctx.Err() != nil {
			lgr.Printf("[INFO] topic fetch cancelled after %d topics", len(topics))
			return topics, nil
		}

		pageTopics, nextCursor, err := c.fetchPage(ctx, sinceID)
		if err != nil {
			if ctx.Err() != nil { // stopped mid-page, not a list failure
				lgr.Printf("[INFO] topic fetch cancelled after %d topics", len(topics))
				return topics, nil
			}
			if len(topics) == 0 {
				return nil, fmt.Errorf("%w: %v", ErrListFetchFailed, err)
			}
			lgr.Printf("[WARN] page %d failed, keeping %d topics fetched so far: %v", page, len(topics), err)
			return topics, nil
		}

		topics = append(topics, pageTopics...)
		lgr.Printf("[DEBUG] page %d fetched, %d entries", page, len(pageTopics))

		if nextCursor == "" {
			return topics, nil // cursor exhausted, normal completion
		}
		sinceID = nextCursor

		// fixed pacing between pages
		select {
		case <-time.After(c.pageDelay):
		case <-ctx.Done():
		}
	}

	lgr.Printf("[WARN] page cap %d reached with cursor still present", c.maxPages)
	return topics, nil
}

// fetchPage retrieves one page and extracts its entries and the next cursor
func (c *Client) fetchPage(ctx context.Context, sinceID string) (topics []domain.Topic, nextCursor string, err error) {
	params := url.Values{"containerid": {followedContainerID}}
	if sinceID != "" {
		params.Set("since_id", sinceID)
	}

	resp, err := c.get(ctx, "/api/container/getIndex?"+params.Encode())
	if err != nil {
		return nil, "", fmt.Errorf("fetch page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, "", fmt.Errorf("fetch page: status %d", resp.StatusCode)
	}

	var payload listResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, "", fmt.Errorf("decode page: %w", err)
	}
	if payload.OK != statusOK {
		if payload.Msg != "" {
			return nil, "", fmt.Errorf("page rejected: %s", payload.Msg)
		}
		return nil, "", fmt.Errorf("page rejected: ok=%d", payload.OK)
	}

	for _, card := range payload.Data.Cards {
		for _, item := range card.CardGroup {
			topic := domain.Topic{Name: item.TitleSub, Descriptor: item.Desc1}
			for _, btn := range item.Buttons {
				topic.Buttons = append(topic.Buttons, domain.Button{Name: btn.Name, Scheme: btn.Scheme})
			}
			topics = append(topics, topic)
		}
	}

	return topics, cursorString(payload.Data.CardlistInfo.SinceID), nil
}

// cursorString normalizes the since_id cursor which arrives as either a
// JSON number or a string
func cursorString(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var asString string
	if err := json.Unmarshal(raw, &asString); err == nil {
		return asString
	}
	s := strings.TrimSpace(string(raw))
	if s == "null" || s == "0" {
		return ""
	}
	return s
}
