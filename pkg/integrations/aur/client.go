package aur

import (
	"context"
	"errors"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/aurorder/pkg/buildinfo"
	"github.com/matzehuels/aurorder/pkg/cache"
	apperrors "github.com/matzehuels/aurorder/pkg/errors"
	"github.com/matzehuels/aurorder/pkg/integrations"
)

const (
	// DefaultEndpoint is the public AUR RPC endpoint.
	DefaultEndpoint = "https://aur.archlinux.org/rpc/"

	// DefaultMaxURLLength is the longest request URL the AUR web server accepts.
	DefaultMaxURLLength = 4443
)

// Config configures a [Client]. Zero values select the defaults.
type Config struct {
	Endpoint     string        // RPC endpoint (default: DefaultEndpoint)
	MaxURLLength int           // Request URL limit (default: DefaultMaxURLLength)
	UserAgent    string        // User-Agent header (default: buildinfo.UserAgent())
	Timeout      time.Duration // Per-request timeout (default: integrations.DefaultTimeout)
	Retries      int           // Retries of transient failures (default: 0)
	Cache        cache.Cache   // Response cache (default: none)
	CacheTTL     time.Duration // Lifetime of cached responses
	Logger       *log.Logger   // Debug output (default: discarded)
}

// Client queries package records from the AUR RPC.
//
// A Client holds no state between calls apart from its configuration and
// optional cache. It is safe for concurrent use once constructed.
type Client struct {
	*integrations.Client
	base   string
	maxLen int
	logger *log.Logger
}

// NewClient creates an AUR client from cfg.
func NewClient(cfg Config) *Client {
	if cfg.Endpoint == "" {
		cfg.Endpoint = DefaultEndpoint
	}
	if cfg.MaxURLLength <= 0 {
		cfg.MaxURLLength = DefaultMaxURLLength
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = buildinfo.UserAgent()
	}
	if cfg.Logger == nil {
		cfg.Logger = log.New(io.Discard)
	}

	hc := integrations.NewClient(cfg.Cache, "aur", cfg.CacheTTL, map[string]string{
		"User-Agent": cfg.UserAgent,
		"Accept":     "application/json",
	})
	hc.SetTimeout(cfg.Timeout)
	hc.SetRetries(cfg.Retries)

	return &Client{
		Client: hc,
		base:   BaseQuery(cfg.Endpoint),
		maxLen: cfg.MaxURLLength,
		logger: cfg.Logger,
	}
}

// MaxURLLength returns the request URL limit used for packing.
func (c *Client) MaxURLLength() int { return c.maxLen }

// Batches returns the request batches Info would issue for names.
func (c *Client) Batches(names []string) ([][]string, error) {
	return Pack(c.base, names, c.maxLen)
}

// Info fetches the records for names, issuing one request per batch.
// Requests are sequential; the first failing batch aborts the call and no
// partial result is returned. Names unknown to the AUR are absent from
// the result.
//
// If refresh is true, cached responses are ignored.
func (c *Client) Info(ctx context.Context, names []string, refresh bool) ([]PackageInfo, error) {
	batches, err := c.Batches(names)
	if err != nil {
		return nil, err
	}

	var out []PackageInfo
	for _, batch := range batches {
		results, err := c.fetchBatch(ctx, batch, refresh)
		if err != nil {
			return nil, err
		}
		out = append(out, results...)
	}
	return out, nil
}

func (c *Client) fetchBatch(ctx context.Context, batch []string, refresh bool) ([]PackageInfo, error) {
	url := QueryURL(c.base, batch)
	c.logger.Debug("querying aur", "names", len(batch), "url_length", len(url))

	var resp InfoResponse
	err := c.Cached(ctx, url, refresh, &resp, func() error {
		if err := c.Get(ctx, url, &resp); err != nil {
			return err
		}
		return validate(&resp)
	})
	if err != nil {
		return nil, classify(err, url)
	}
	return resp.Results, nil
}

func validate(resp *InfoResponse) error {
	if resp.Type == TypeError {
		code := apperrors.ErrCodeProtocolMismatch
		if strings.Contains(strings.ToLower(resp.Error), "rate limit") {
			code = apperrors.ErrCodeRateLimited
		}
		return apperrors.New(code, "aur rpc error: %s", resp.Error)
	}
	if resp.Version != RPCVersion {
		return apperrors.New(apperrors.ErrCodeProtocolMismatch,
			"unexpected rpc version %d, want %d", resp.Version, RPCVersion)
	}
	if resp.Type != TypeMultiInfo {
		return apperrors.New(apperrors.ErrCodeProtocolMismatch,
			"unexpected response type %q, want %q", resp.Type, TypeMultiInfo)
	}
	for i, r := range resp.Results {
		if r.Name == "" {
			return apperrors.New(apperrors.ErrCodeMalformedResponse, "result %d has no name", i)
		}
	}
	return nil
}

// classify maps transport-level errors onto coded errors. Errors that
// already carry a code pass through unchanged.
func classify(err error, url string) error {
	var coded *apperrors.Error
	if errors.As(err, &coded) {
		return err
	}
	switch {
	case errors.Is(err, integrations.ErrRateLimited):
		return apperrors.Wrap(apperrors.ErrCodeRateLimited, err, "query %s", url)
	case errors.Is(err, integrations.ErrMalformed):
		return apperrors.Wrap(apperrors.ErrCodeMalformedResponse, err, "decode response of %s", url)
	default:
		return apperrors.Wrap(apperrors.ErrCodeTransport, err, "query %s", url)
	}
}
