package sentiment

import (
	"context"
	"encoding/xml"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/titanalgo/titan/signals"
)

const defaultFeedURL = "https://news.google.com/rss/search"

// News fetches recent headlines for a ticker from a Google-News-style RSS
// feed and scores them. Network or decode failures are returned as errors;
// the sentiment detector treats any error as "no provider signal".
type News struct {
	BaseURL  string
	Client   *http.Client
	Articles int // headlines considered per query
}

func NewNews() *News {
	return &News{
		BaseURL:  defaultFeedURL,
		Client:   &http.Client{Timeout: 10 * time.Second},
		Articles: 5,
	}
}

type rssFeed struct {
	Channel struct {
		Items []struct {
			Title string `xml:"title"`
		} `xml:"item"`
	} `xml:"channel"`
}

func (n *News) Signals(ctx context.Context, ticker string) ([]signals.Signal, error) {
	u := fmt.Sprintf("%s?q=%s", n.BaseURL, url.QueryEscape(ticker))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("build news request: %w", err)
	}

	resp, err := n.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch news for %s: %w", ticker, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch news for %s: status %d", ticker, resp.StatusCode)
	}

	var feed rssFeed
	if err := xml.NewDecoder(resp.Body).Decode(&feed); err != nil {
		return nil, fmt.Errorf("decode news feed: %w", err)
	}

	var headlines []string
	for _, item := range feed.Channel.Items {
		headlines = append(headlines, item.Title)
		if len(headlines) == n.Articles {
			break
		}
	}
	if len(headlines) == 0 {
		return nil, nil
	}
	return scoreToSignals(ticker, headlines), nil
}
