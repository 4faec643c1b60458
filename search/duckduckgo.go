package search

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/bytedance/sonic"
	"github.com/hupe1980/attune/core"
	"github.com/hupe1980/attune/internal/util"
)

// DefaultBaseURL is the DuckDuckGo Instant Answer endpoint.
const DefaultBaseURL = "https://api.duckduckgo.com/"

// DuckDuckGoOptions configures construction of a DuckDuckGo searcher.
type DuckDuckGoOptions struct {
	// BaseURL overrides the API endpoint (tests point this at a local server).
	BaseURL string
	// HTTPClient overrides the HTTP client. The resolver applies its own
	// deadline via context, so the zero-timeout default client is fine here.
	HTTPClient *http.Client
	// MaxSentences bounds the length of returned answers. Defaults to 2.
	MaxSentences int
	// UserAgent is sent with every request.
	UserAgent string
}

// DuckDuckGo implements core.Searcher against the Instant Answer API.
type DuckDuckGo struct {
	baseURL      string
	client       *http.Client
	maxSentences int
	userAgent    string
}

// Interface compliance (compile-time assertion)
var _ core.Searcher = (*DuckDuckGo)(nil)

// NewDuckDuckGo creates a DuckDuckGo searcher.
func NewDuckDuckGo(optFns ...func(o *DuckDuckGoOptions)) *DuckDuckGo {
	opts := DuckDuckGoOptions{
		BaseURL:      DefaultBaseURL,
		HTTPClient:   http.DefaultClient,
		MaxSentences: 2,
		UserAgent:    "attune/1.0",
	}
	for _, fn := range optFns {
		fn(&opts)
	}
	return &DuckDuckGo{
		baseURL:      opts.BaseURL,
		client:       opts.HTTPClient,
		maxSentences: opts.MaxSentences,
		userAgent:    opts.UserAgent,
	}
}

// instantAnswer is the subset of the Instant Answer response we consume.
type instantAnswer struct {
	Answer        string         `json:"Answer"`
	Definition    string         `json:"Definition"`
	Abstract      string         `json:"Abstract"`
	RelatedTopics []relatedTopic `json:"RelatedTopics"`
}

type relatedTopic struct {
	Text string `json:"Text"`
}

// Search queries the Instant Answer API and returns a trimmed answer, or
// core.ErrNoAnswer when no usable field is present. Network failures and
// timeouts are returned as-is; the resolver treats them like a miss.
func (d *DuckDuckGo) Search(ctx context.Context, query string) (string, error) {
	q := url.Values{}
	q.Set("q", query)
	q.Set("format", "json")
	q.Set("no_redirect", "1")
	q.Set("no_html", "1")
	q.Set("skip_disambig", "1")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, d.baseURL+"?"+q.Encode(), nil)
	if err != nil {
		return "", fmt.Errorf("build search request: %w", err)
	}
	req.Header.Set("User-Agent", d.userAgent)

	resp, err := d.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("search request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("search request: unexpected status %s", resp.Status)
	}

	var ia instantAnswer
	if err := sonic.ConfigDefault.NewDecoder(resp.Body).Decode(&ia); err != nil {
		return "", fmt.Errorf("decode search response: %w", err)
	}

	for _, field := range []string{ia.Answer, ia.Definition, ia.Abstract} {
		if trimmed := util.TrimSentences(field, d.maxSentences); trimmed != "" {
			return trimmed, nil
		}
	}
	for _, topic := range ia.RelatedTopics {
		if trimmed := util.TrimSentences(topic.Text, d.maxSentences); trimmed != "" {
			return trimmed, nil
		}
	}
	return "", core.ErrNoAnswer
}
