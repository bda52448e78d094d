// Package wavu is the client for the Wavu Wiki MediaWiki API.
package wavu

//go:generate mockgen -destination=mock/mock_client.go -package=wavumock github.com/FottenSC/FrameData/internal/clients/wavu Client

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/FottenSC/FrameData/internal/errors"
)

const (
	defaultBaseURL     = "https://wavu.wiki/w/api.php"
	defaultUserAgent   = "FrameDataImporter/1.0 (github.com/FottenSC/FrameData)"
	defaultHTTPTimeout = 20 * time.Second

	movelistSuffix = "_movelist"
)

// Client defines the interface for fetching movelist documents.
type Client interface {
	// GetMovelist fetches the raw wikitext of a character's movelist page.
	// Returns errors.NotFound when the page does not exist and
	// errors.Unavailable for transport failures.
	GetMovelist(ctx context.Context, input *GetMovelistInput) (*GetMovelistOutput, error)
}

// GetMovelistInput defines the input for fetching a movelist
type GetMovelistInput struct {
	// Character is the roster name as used in page titles, e.g. "Devil_Jin"
	Character string
}

// GetMovelistOutput defines the output for fetching a movelist
type GetMovelistOutput struct {
	// Page is the resolved page title (after redirects)
	Page string
	// Wikitext is the raw markup of the page
	Wikitext string
}

// Config contains configuration options for the wavu client.
type Config struct {
	// BaseURL for the MediaWiki API (optional, defaults to the Wavu Wiki endpoint)
	BaseURL string
	// UserAgent sent with every request (the wiki asks for an identifying one)
	UserAgent string
	// HTTPTimeout for API requests (optional, defaults to 20 seconds)
	HTTPTimeout time.Duration
	// HTTPClient overrides the default client, mainly for tests
	HTTPClient *http.Client
}

// Validate validates the Config and sets defaults if not provided.
func (cfg *Config) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = defaultUserAgent
	}
	if cfg.HTTPTimeout == 0 {
		cfg.HTTPTimeout = defaultHTTPTimeout
	}
	if _, err := url.Parse(cfg.BaseURL); err != nil {
		return errors.InvalidArgumentf("invalid base URL %q: %v", cfg.BaseURL, err)
	}
	return nil
}

type client struct {
	baseURL   string
	userAgent string
	http      *http.Client
}

// New creates a wavu client with the provided configuration.
func New(cfg *Config) (Client, error) {
	if cfg == nil {
		cfg = &Config{}
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.HTTPTimeout}
	}

	return &client{
		baseURL:   cfg.BaseURL,
		userAgent: cfg.UserAgent,
		http:      httpClient,
	}, nil
}

// parseResponse mirrors the MediaWiki action=parse JSON envelope with
// formatversion=2.
type parseResponse struct {
	Parse *struct {
		Title    string `json:"title"`
		PageID   int    `json:"pageid"`
		Wikitext string `json:"wikitext"`
	} `json:"parse"`
	Error *struct {
		Code string `json:"code"`
		Info string `json:"info"`
	} `json:"error"`
}

func (c *client) GetMovelist(ctx context.Context, input *GetMovelistInput) (*GetMovelistOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input cannot be nil")
	}
	if input.Character == "" {
		return nil, errors.InvalidArgument("character cannot be empty")
	}

	page := input.Character
	if !strings.HasSuffix(page, movelistSuffix) {
		page += movelistSuffix
	}

	params := url.Values{
		"action":        {"parse"},
		"page":          {page},
		"prop":          {"wikitext"},
		"format":        {"json"},
		"formatversion": {"2"},
		"redirects":     {"1"},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to build request for %s", page)
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, errors.WrapWithCode(err, errors.CodeDeadlineExceeded,
				"request canceled for "+page)
		}
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable,
			"request failed for "+page)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Unavailablef("unexpected status %d for %s", resp.StatusCode, page)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable,
			"failed to read response for "+page)
	}

	var parsed parseResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, errors.Wrapf(err, "failed to decode response for %s", page)
	}

	if parsed.Error != nil {
		if parsed.Error.Code == "missingtitle" {
			return nil, errors.NotFoundf("page %s not found: %s", page, parsed.Error.Info)
		}
		return nil, errors.Internalf("API error for %s: %s", page, parsed.Error.Info)
	}
	if parsed.Parse == nil {
		return nil, errors.Internalf("no parse result for %s", page)
	}

	return &GetMovelistOutput{
		Page:     parsed.Parse.Title,
		Wikitext: parsed.Parse.Wikitext,
	}, nil
}
