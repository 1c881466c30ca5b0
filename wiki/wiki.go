// Package wiki fetches short page summaries for detail views. Every
// failure mode — transport, bad status, garbled JSON, missing fields —
// degrades to a placeholder; a broken summary never breaks the view that
// asked for it.
package wiki

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

const(
	kSummaryURLStem = "https://en.wikipedia.org/api/rest_v1/page/summary/"
	kUnavailable    = "Summary unavailable"
)

type Wiki struct {
	Client *http.Client
	URLStem string
}

func NewWiki(c *http.Client) *Wiki {
	if c == nil {
		c = &http.Client{Timeout: 10 * time.Second}
	}
	return &Wiki{Client:c, URLStem:kSummaryURLStem}
}

// Summary is what a detail view renders. Extract is always non-empty;
// ThumbnailURL and PageURL are empty when the page has none.
type Summary struct {
	Extract      string
	ThumbnailURL string
	PageURL      string
}

func Unavailable() Summary {
	return Summary{Extract: kUnavailable}
}

type summaryResponse struct {
	Extract   string `json:"extract"`
	Thumbnail struct {
		Source string `json:"source"`
	} `json:"thumbnail"`
	ContentUrls struct {
		Desktop struct {
			Page string `json:"page"`
		} `json:"desktop"`
	} `json:"content_urls"`
}

func (w *Wiki)GetSummaryUrl(title string) string {
	return w.URLStem + url.PathEscape(title)
}

// GetSummary returns a renderable Summary no matter what; the error is
// for callers that want to log why they got a placeholder.
func (w *Wiki)GetSummary(ctx context.Context, title string) (Summary, error) {
	req,err := http.NewRequestWithContext(ctx, "GET", w.GetSummaryUrl(title), nil)
	if err != nil {
		return Unavailable(), err
	}

	resp,err := w.Client.Do(req)
	if err != nil {
		return Unavailable(), err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Unavailable(), fmt.Errorf("wiki: bad status for %q: %s", title, resp.Status)
	}

	sr := summaryResponse{}
	if err := json.NewDecoder(resp.Body).Decode(&sr); err != nil {
		return Unavailable(), fmt.Errorf("wiki: decode for %q: %v", title, err)
	}

	out := Summary{
		Extract:      sr.Extract,
		ThumbnailURL: sr.Thumbnail.Source,
		PageURL:      sr.ContentUrls.Desktop.Page,
	}
	if out.Extract == "" {
		out.Extract = kUnavailable
	}
	return out, nil
}
