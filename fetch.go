package eolfetch

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/cockroachdb/errors"
)

var errProductNameEmpty = errors.New("product name cannot be empty")

// FetchProduct retrieves the release cycles for a single product. A 404
// response maps to ErrNotFound, a 429 to ErrRateLimited, and any other
// non-200 status, malformed body or transport failure to ErrNetwork.
// There are no retries; one call means one GET.
func (c *Client) FetchProduct(ctx context.Context, product string) (cycles []json.RawMessage, err error) {
	if product == "" {
		return nil, errProductNameEmpty
	}

	resp, err := c.get(ctx, "/products/"+product)
	if err != nil {
		return nil, errors.Mark(err, ErrNetwork)
	}
	defer resp.Body.Close() //nolint:errcheck // ok

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		return nil, errors.Wrapf(ErrNotFound,
			"product %q (see %s for valid names)", product, c.buildURL("/products"))
	case http.StatusTooManyRequests:
		return nil, errors.Wrapf(ErrRateLimited, "product %q", product)
	default:
		return nil, errors.Mark(errors.Newf("unexpected status %s (%d)",
			http.StatusText(resp.StatusCode), resp.StatusCode), ErrNetwork)
	}

	if err = json.NewDecoder(resp.Body).Decode(&cycles); err != nil {
		return nil, errors.Mark(errors.Wrap(err, "decoding response"), ErrNetwork)
	}

	c.log.Debugw("fetched product", "product", product, "cycles", len(cycles))

	return
}

// Products returns the catalog of products known to endoflife.date.
func (c *Client) Products(ctx context.Context) (products []ProductSummary, err error) {
	resp, err := c.get(ctx, "/products")
	if err != nil {
		return nil, errors.Mark(err, ErrNetwork)
	}
	defer resp.Body.Close() //nolint:errcheck // ok

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Mark(errors.Newf("unexpected status %s (%d)",
			http.StatusText(resp.StatusCode), resp.StatusCode), ErrNetwork)
	}

	r := productListResponse{}
	if err = json.NewDecoder(resp.Body).Decode(&r); err != nil {
		return nil, errors.Mark(errors.Wrap(err, "decoding response"), ErrNetwork)
	}

	c.log.Debugw("fetched product catalog", "total", r.Total)

	return r.Result, nil
}

// get performs a single GET request against the given API endpoint.
func (c *Client) get(ctx context.Context, endpoint string) (resp *http.Response, err error) {
	urL := c.buildURL(endpoint)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, urL, http.NoBody)
	if err != nil {
		return nil, errors.Wrap(err, "creating request")
	}

	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	if resp, err = c.httpClient.Do(req); err != nil {
		return nil, errors.Wrapf(err, "requesting %s", urL)
	}

	return
}
