package dogapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/five82/doggallery/internal/logger"
)

// ImageFetcher retrieves one batch of dog image URLs.
// This interface is implemented by *Client and can be used for testing.
type ImageFetcher interface {
	FetchImages(ctx context.Context) (ImageList, error)
}

// Ensure Client implements ImageFetcher at compile time.
var _ ImageFetcher = (*Client)(nil)

const (
	// ImageCount is the number of images requested per fetch.
	ImageCount = 10

	// DefaultBaseURL is the public dog.ceo API.
	DefaultBaseURL = "https://dog.ceo"

	defaultUserAgent = "doggallery/dev"
	defaultTimeout   = 10 * time.Second
)

var randomImagesPath = fmt.Sprintf("/api/breeds/image/random/%d", ImageCount)

// Options configure a Client.
type Options struct {
	BaseURL   string
	Timeout   time.Duration
	UserAgent string
	Logger    *logger.Logger
}

// Client talks to the dog.ceo HTTP API.
type Client struct {
	rest    *resty.Client
	baseURL *url.URL
	log     *logger.Logger
}

// NewClient builds a Client. Empty options fall back to the public API.
func NewClient(opts Options) (*Client, error) {
	base, err := parseBaseURL(opts.BaseURL)
	if err != nil {
		return nil, err
	}

	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	userAgent := strings.TrimSpace(opts.UserAgent)
	if userAgent == "" {
		userAgent = defaultUserAgent
	}
	log := opts.Logger
	if log == nil {
		log = logger.Discard()
	}
	log = log.Component("dogapi")

	rest := resty.New().
		SetBaseURL(base.String()).
		SetTimeout(timeout).
		SetRetryCount(0).
		SetLogger(log.Entry).
		SetHeader("Accept", "application/json").
		SetHeader("User-Agent", userAgent)

	return &Client{rest: rest, baseURL: base, log: log}, nil
}

// BaseURL returns the API root the client targets.
func (c *Client) BaseURL() string {
	if c == nil || c.baseURL == nil {
		return ""
	}
	return c.baseURL.String()
}

// FetchImages performs exactly one GET for ImageCount random images.
// Every failure is a *FetchError.
func (c *Client) FetchImages(ctx context.Context) (ImageList, error) {
	if c == nil {
		return nil, newTransportError(fmt.Errorf("client is nil"))
	}

	started := time.Now()
	resp, err := c.rest.R().
		SetContext(ctx).
		Get(randomImagesPath)
	if err != nil {
		return nil, newTransportError(err)
	}

	log := c.log.With(logger.Fields{
		logger.FieldStatus:     resp.StatusCode(),
		logger.FieldDurationMs: time.Since(started).Milliseconds(),
	})

	if !resp.IsSuccess() {
		log.Warn("image list request rejected")
		return nil, newStatusError(resp.StatusCode())
	}

	images, err := decodeImageList(resp.Body())
	if err != nil {
		log.WithError(err).Warn("image list response malformed")
		return nil, err
	}
	log.WithField(logger.FieldCount, len(images)).Debug("image list fetched")
	return images, nil
}

// decodeImageList validates the payload shape and extracts the URLs.
func decodeImageList(body []byte) (ImageList, error) {
	var payload struct {
		Message *[]string `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, newMalformedError(fmt.Errorf("decode response: %w", err))
	}
	if payload.Message == nil {
		return nil, newMalformedError(fmt.Errorf("response has no message list"))
	}
	return ImageList(*payload.Message).Clone(), nil
}

func parseBaseURL(raw string) (*url.URL, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		trimmed = DefaultBaseURL
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "https://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse api base url %q: %w", raw, err)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("parse api base url %q: missing host", raw)
	}
	u.Path = ""
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}
