// Package allowlist fetches the newline-delimited list of eligible addresses
// published over HTTP. Entries are untrusted input: they are trimmed,
// lowercased and checked against the EVM address format before use.
package allowlist

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/gabapcia/airdrop/internal/addressbook"
	"github.com/gabapcia/airdrop/internal/eligibility"
	"github.com/gabapcia/airdrop/internal/pkg/logger"

	"github.com/ethereum/go-ethereum/common"
)

// defaultMaxBodySize bounds how much of the response is read.
const defaultMaxBodySize int64 = 16 << 20

// client is an eligibility.Source backed by an HTTP endpoint.
type client struct {
	url         string
	httpClient  *http.Client
	maxBodySize int64
}

// Compile-time assertion that client implements eligibility.Source.
var _ eligibility.Source = (*client)(nil)

// FetchEligible downloads the list and returns its valid entries in the
// published order. Duplicates keep their first position.
//
// Errors wrap eligibility.ErrFetch when the request fails, the server answers
// with a non-2xx status, or the body cannot be read.
func (c *client) FetchEligible(ctx context.Context) ([]addressbook.Address, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", eligibility.ErrFetch, err)
	}

	req.Header.Set("Accept", "text/plain")

	res, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", eligibility.ErrFetch, err)
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return nil, fmt.Errorf("%w: unexpected status %s", eligibility.ErrFetch, res.Status)
	}

	var (
		lines   []string
		dropped int
		scanner = bufio.NewScanner(io.LimitReader(res.Body, c.maxBodySize))
	)

	for scanner.Scan() {
		line := addressbook.Normalize(scanner.Text())
		if line == "" {
			continue
		}

		addr, ok := toAddress(line.String())
		if !ok {
			dropped++
			continue
		}

		lines = append(lines, addr)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", eligibility.ErrFetch, err)
	}

	if dropped > 0 {
		logger.Warn(ctx, "ignored malformed allow-list entries", "allowlist.dropped", dropped)
	}

	return addressbook.NormalizeAll(lines), nil
}

// toAddress returns s as a 0x-prefixed, 20-byte hex string. Entries
// written without the prefix are accepted and prefixed.
func toAddress(s string) (string, bool) {
	if !common.IsHexAddress(s) {
		return "", false
	}

	if !strings.HasPrefix(s, "0x") {
		s = "0x" + s
	}

	return s, true
}

type config struct {
	maxBodySize int64
}

type Option func(*config)

// WithMaxBodySize caps the number of bytes read from the response.
func WithMaxBodySize(n int64) Option {
	return func(c *config) {
		c.maxBodySize = n
	}
}

// NewClient returns an eligibility.Source reading the list at url.
func NewClient(httpClient *http.Client, url string, opts ...Option) *client {
	cfg := config{
		maxBodySize: defaultMaxBodySize,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &client{
		url:         url,
		httpClient:  httpClient,
		maxBodySize: cfg.maxBodySize,
	}
}
