package reddit

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/oauth2"

	"github.com/five82/redditmodqueue/internal/config"
)

// Moderator defines the moderation operations the queue browser needs.
// This interface is implemented by *Client and can be used for testing.
type Moderator interface {
	Subreddit() string
	FetchQueue(ctx context.Context) ([]QueueItem, error)
	Remove(ctx context.Context, item QueueItem) error
	Approve(ctx context.Context, item QueueItem) error
	Ban(ctx context.Context, user string) error
}

// Ensure Client implements Moderator at compile time.
var _ Moderator = (*Client)(nil)

// Client talks to the reddit OAuth API on behalf of one subreddit.
type Client struct {
	baseURL   *url.URL
	http      *http.Client
	subreddit string
}

const (
	defaultAPIBase   = "https://oauth.reddit.com"
	defaultTokenURL  = "https://www.reddit.com/api/v1/access_token"
	defaultUserAgent = "redditmodqueue/0.1"
	requestTimeout   = 30 * time.Second
	pageLimit        = 100
)

// Option adjusts a Client at construction time.
type Option func(*clientOptions)

type clientOptions struct {
	apiBase  string
	tokenURL string
	base     *http.Client
}

// WithAPIBase points the client at a different API host.
func WithAPIBase(base string) Option {
	return func(o *clientOptions) { o.apiBase = base }
}

// WithTokenURL overrides the OAuth2 token endpoint.
func WithTokenURL(tokenURL string) Option {
	return func(o *clientOptions) { o.tokenURL = tokenURL }
}

// WithHTTPClient sets the HTTP client used for both token and API requests.
func WithHTTPClient(c *http.Client) Option {
	return func(o *clientOptions) { o.base = c }
}

// NewClient builds a Client for subreddit authenticated with the script-app
// credentials in settings. No network traffic happens until the first call.
func NewClient(settings config.Settings, subreddit string, opts ...Option) (*Client, error) {
	sub := normalizeSubreddit(subreddit)
	if sub == "" {
		return nil, fmt.Errorf("subreddit is required")
	}

	o := clientOptions{apiBase: defaultAPIBase, tokenURL: defaultTokenURL}
	for _, opt := range opts {
		opt(&o)
	}

	base, err := parseBaseURL(o.apiBase)
	if err != nil {
		return nil, err
	}

	userAgent := strings.TrimSpace(settings.UserAgent)
	if userAgent == "" {
		userAgent = defaultUserAgent
	}

	transport := http.DefaultTransport
	if o.base != nil && o.base.Transport != nil {
		transport = o.base.Transport
	}
	baseClient := &http.Client{
		Timeout:   requestTimeout,
		Transport: &userAgentTransport{base: transport, userAgent: userAgent},
	}

	oauthCfg := &oauth2.Config{
		ClientID:     settings.ClientID,
		ClientSecret: settings.ClientSecret,
		RedirectURL:  settings.RedirectURI,
		Endpoint: oauth2.Endpoint{
			TokenURL:  o.tokenURL,
			AuthStyle: oauth2.AuthStyleInHeader,
		},
	}

	ctx := context.WithValue(context.Background(), oauth2.HTTPClient, baseClient)
	src := &passwordSource{
		ctx:      ctx,
		cfg:      oauthCfg,
		username: settings.Username,
		password: settings.Password,
	}
	httpClient := oauth2.NewClient(ctx, src)
	httpClient.Timeout = requestTimeout

	return &Client{
		baseURL:   base,
		http:      httpClient,
		subreddit: sub,
	}, nil
}

// Subreddit returns the subreddit name without the r/ prefix.
func (c *Client) Subreddit() string {
	if c == nil {
		return ""
	}
	return c.subreddit
}

// FetchQueue retrieves every item currently awaiting moderation, following
// the listing cursor until reddit reports no further pages.
func (c *Client) FetchQueue(ctx context.Context) ([]QueueItem, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	var items []QueueItem
	after := ""
	seen := map[string]struct{}{}
	for {
		values := url.Values{}
		values.Set("limit", strconv.Itoa(pageLimit))
		values.Set("raw_json", "1")
		if after != "" {
			values.Set("after", after)
		}
		rel := &url.URL{Path: c.subredditPath("about/modqueue"), RawQuery: values.Encode()}

		var page listing
		if err := c.doURL(ctx, http.MethodGet, rel, nil, &page); err != nil {
			return nil, err
		}
		for _, child := range page.Data.Children {
			items = append(items, child.toQueueItem())
		}

		after = page.Data.After
		if after == "" {
			break
		}
		if _, dup := seen[after]; dup {
			break
		}
		seen[after] = struct{}{}
	}
	log.Printf("fetched %d mod queue items for r/%s", len(items), c.subreddit)
	return items, nil
}

// Remove removes the given item from the subreddit without marking it spam.
func (c *Client) Remove(ctx context.Context, item QueueItem) error {
	if c == nil {
		return fmt.Errorf("client is nil")
	}
	if strings.TrimSpace(item.Fullname) == "" {
		return fmt.Errorf("item id required")
	}
	form := url.Values{}
	form.Set("id", item.Fullname)
	form.Set("spam", "false")
	if err := c.post(ctx, "/api/remove", form); err != nil {
		return err
	}
	log.Printf("removed %s by %s", item.Fullname, item.Author)
	return nil
}

// Approve approves the given item.
func (c *Client) Approve(ctx context.Context, item QueueItem) error {
	if c == nil {
		return fmt.Errorf("client is nil")
	}
	if strings.TrimSpace(item.Fullname) == "" {
		return fmt.Errorf("item id required")
	}
	form := url.Values{}
	form.Set("id", item.Fullname)
	if err := c.post(ctx, "/api/approve", form); err != nil {
		return err
	}
	log.Printf("approved %s by %s", item.Fullname, item.Author)
	return nil
}

// Ban bans user from the subreddit with an empty ban reason.
func (c *Client) Ban(ctx context.Context, user string) error {
	if c == nil {
		return fmt.Errorf("client is nil")
	}
	name := strings.TrimPrefix(strings.TrimSpace(user), "u/")
	if name == "" {
		return fmt.Errorf("user name required")
	}
	form := url.Values{}
	form.Set("api_type", "json")
	form.Set("type", "banned")
	form.Set("name", name)
	form.Set("ban_reason", "")

	path := c.subredditPath("api/friend")
	var payload apiResponse
	if err := c.doURL(ctx, http.MethodPost, &url.URL{Path: path}, form, &payload); err != nil {
		return err
	}
	if msg := payload.errorText(); msg != "" {
		return fmt.Errorf("api %s: %s", path, msg)
	}
	log.Printf("banned %s from r/%s", name, c.subreddit)
	return nil
}

func (c *Client) subredditPath(suffix string) string {
	return "/r/" + url.PathEscape(c.subreddit) + "/" + strings.TrimPrefix(suffix, "/")
}

func (c *Client) post(ctx context.Context, path string, form url.Values) error {
	return c.doURL(ctx, http.MethodPost, &url.URL{Path: path}, form, nil)
}

func (c *Client) doURL(ctx context.Context, method string, rel *url.URL, form url.Values, dest any) error {
	reqURL := c.baseURL.ResolveReference(rel)

	req, err := http.NewRequestWithContext(ctx, method, reqURL.String(), strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 400 {
		return fmt.Errorf("api %s returned status %d", rel.Path, resp.StatusCode)
	}
	if dest == nil {
		return nil
	}
	decoder := json.NewDecoder(resp.Body)
	if err := decoder.Decode(dest); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// passwordSource performs the resource-owner password grant used by reddit
// script apps. Those grants carry no refresh token, so every expiry re-runs
// the grant; oauth2.NewClient caches the result until then.
type passwordSource struct {
	ctx      context.Context
	cfg      *oauth2.Config
	username string
	password string
}

func (s *passwordSource) Token() (*oauth2.Token, error) {
	tok, err := s.cfg.PasswordCredentialsToken(s.ctx, s.username, s.password)
	if err != nil {
		return nil, fmt.Errorf("reddit auth: %w", err)
	}
	return tok, nil
}

// userAgentTransport stamps every request, token requests included, with the
// configured User-Agent. reddit throttles requests without a descriptive one.
type userAgentTransport struct {
	base      http.RoundTripper
	userAgent string
}

func (t *userAgentTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	clone := req.Clone(req.Context())
	clone.Header.Set("User-Agent", t.userAgent)
	return t.base.RoundTrip(clone)
}

func normalizeSubreddit(name string) string {
	trimmed := strings.TrimSpace(name)
	trimmed = strings.TrimPrefix(trimmed, "/")
	trimmed = strings.TrimPrefix(trimmed, "r/")
	return strings.Trim(trimmed, "/")
}

func parseBaseURL(apiBase string) (*url.URL, error) {
	trimmed := strings.TrimSpace(apiBase)
	if trimmed == "" {
		trimmed = defaultAPIBase
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "https://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse api base %q: %w", apiBase, err)
	}
	u.Path = ""
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}
