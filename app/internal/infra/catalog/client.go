// Package catalog is the HTTP client of the remote product catalog.
package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	domproduct "example.com/vibe-storefront/app/internal/domain/product"
)

// ErrUnavailable covers network failures and unexpected response statuses.
var ErrUnavailable = errors.New("catalog unavailable")

// Error describes a failed catalog call. Err is ErrUnavailable or
// domproduct.ErrProductNotFound.
type Error struct {
	Op         string
	StatusCode int
	Err        error
	cause      error
}

func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString("catalog ")
	b.WriteString(e.Op)
	if e.StatusCode != 0 {
		fmt.Fprintf(&b, ": status %d", e.StatusCode)
	}
	b.WriteString(": ")
	b.WriteString(e.Err.Error())
	if e.cause != nil {
		b.WriteString(": ")
		b.WriteString(e.cause.Error())
	}
	return b.String()
}

func (e *Error) Unwrap() error { return e.Err }

type Client struct {
	baseURL string
	http    *http.Client
}

type Option func(*Client)

func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 10 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ListItems searches the catalog. Text is sent trimmed and only when non-empty;
// categories are joined in the order given.
func (c *Client) ListItems(ctx context.Context, q domproduct.Query) ([]domproduct.Product, error) {
	var items []domproduct.Product
	if err := c.get(ctx, "list items", "/api/items", SearchParams(q), false, &items); err != nil {
		return nil, err
	}
	if items == nil {
		items = []domproduct.Product{}
	}
	return items, nil
}

func (c *Client) GetItem(ctx context.Context, id int64) (*domproduct.Product, error) {
	var p domproduct.Product
	if err := c.get(ctx, "get item", "/api/items/"+strconv.FormatInt(id, 10), nil, true, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (c *Client) GetRelated(ctx context.Context, id int64, limit int) ([]domproduct.Product, error) {
	params := url.Values{}
	params.Set("limit", strconv.Itoa(limit))

	var items []domproduct.Product
	if err := c.get(ctx, "get related", "/api/items/"+strconv.FormatInt(id, 10)+"/related", params, true, &items); err != nil {
		return nil, err
	}
	if items == nil {
		items = []domproduct.Product{}
	}
	return items, nil
}

func (c *Client) ListCategories(ctx context.Context) ([]string, error) {
	var resp struct {
		Categories []string `json:"categories"`
	}
	if err := c.get(ctx, "list categories", "/api/categories", nil, false, &resp); err != nil {
		return nil, err
	}
	if resp.Categories == nil {
		resp.Categories = []string{}
	}
	return resp.Categories, nil
}

// SearchParams builds the query string of a list request.
func SearchParams(q domproduct.Query) url.Values {
	q = q.Normalized()
	params := url.Values{}
	if q.Text != "" {
		params.Set("q", q.Text)
	}
	params.Set("sort_by", string(q.Sort))
	if len(q.Categories) > 0 {
		params.Set("categories", strings.Join(q.Categories, ","))
	}
	return params
}

// get decodes a JSON response into dst. A 404 maps to ErrProductNotFound only
// for item lookups.
func (c *Client) get(ctx context.Context, op, path string, params url.Values, itemLookup bool, dst any) error {
	u := c.baseURL + path
	if len(params) > 0 {
		u += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return &Error{Op: op, Err: ErrUnavailable, cause: err}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return &Error{Op: op, Err: ErrUnavailable, cause: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound && itemLookup {
		_, _ = io.Copy(io.Discard, resp.Body)
		return &Error{Op: op, StatusCode: resp.StatusCode, Err: domproduct.ErrProductNotFound}
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return &Error{Op: op, StatusCode: resp.StatusCode, Err: ErrUnavailable}
	}

	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		return &Error{Op: op, StatusCode: resp.StatusCode, Err: ErrUnavailable, cause: err}
	}
	return nil
}
