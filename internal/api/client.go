package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/minhvo/retail-suite/internal/model"
	"github.com/minhvo/retail-suite/internal/registry"
)

// Client talks to the remote retail backend. It is safe for
// concurrent use. Requests carry an explicit timeout because the
// transport default would leave a view in its loading state
// forever when the backend never answers.
type Client struct {
	base string
	http *http.Client
}

// New builds a client for the backend at base (no trailing slash).
// A non-positive timeout falls back to 15 seconds.
func New(base string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Client{
		base: base,
		http: &http.Client{Timeout: timeout},
	}
}

// Filters narrow a collection listing. Category only applies to
// products and Status only to orders; the backend ignores the
// rest.
type Filters struct {
	Search   string
	Category string
	Status   string
}

func (f Filters) query() string {
	q := url.Values{}
	if f.Search != "" {
		q.Set("search", f.Search)
	}
	if f.Category != "" {
		q.Set("category", f.Category)
	}
	if f.Status != "" {
		q.Set("status", f.Status)
	}
	if len(q) == 0 {
		return ""
	}
	return "?" + q.Encode()
}

// do runs one request and returns the response body. Non-2xx
// responses become the taxonomy errors from errors.go; a 401
// always maps to ErrAuthExpired.
func (c *Client) do(ctx context.Context, method, path, token string, payload any) ([]byte, error) {
	var body io.Reader
	if payload != nil {
		buf, err := json.Marshal(payload)
		if err != nil {
			return nil, err
		}
		body = bytes.NewReader(buf)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.base+path, body)
	if err != nil {
		return nil, err
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		// fetch rejection with no HTTP response: never assume the
		// mutation did not apply, so no automatic retry here
		return nil, fmt.Errorf("không thể kết nối máy chủ: %w", err)
	}
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode == http.StatusUnauthorized {
		return nil, ErrAuthExpired
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, decodeError(resp.StatusCode, data)
	}
	return data, nil
}

// List fetches a resource's collection, optionally filtered, and
// returns the records plus the column order inferred from the
// first record.
func (c *Client) List(ctx context.Context, d registry.Descriptor, f Filters, token string) ([]model.Record, []string, error) {
	data, err := c.do(ctx, http.MethodGet, d.Endpoint+f.query(), token, nil)
	if err != nil {
		return nil, nil, err
	}
	return model.DecodeList(data)
}

// Get fetches a single record by primary key.
func (c *Client) Get(ctx context.Context, d registry.Descriptor, id, token string) (model.Record, error) {
	data, err := c.do(ctx, http.MethodGet, d.Endpoint+"/"+url.PathEscape(id), token, nil)
	if err != nil {
		return nil, err
	}
	var rec model.Record
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, err
	}
	return rec, nil
}

// Create posts a new record to the bare collection endpoint.
func (c *Client) Create(ctx context.Context, d registry.Descriptor, rec model.Record, token string) error {
	_, err := c.do(ctx, http.MethodPost, d.Endpoint, token, rec)
	return err
}

// Update puts a record at the collection endpoint plus its key.
func (c *Client) Update(ctx context.Context, d registry.Descriptor, id string, rec model.Record, token string) error {
	_, err := c.do(ctx, http.MethodPut, d.Endpoint+"/"+url.PathEscape(id), token, rec)
	return err
}

// Delete removes a record by primary key. The backend answers 2xx
// with no required body.
func (c *Client) Delete(ctx context.Context, d registry.Descriptor, id, token string) error {
	_, err := c.do(ctx, http.MethodDelete, d.Endpoint+"/"+url.PathEscape(id), token, nil)
	return err
}

// Relations fetches the dependent child records of a parent,
// using the relation rule's scoped endpoint.
func (c *Client) Relations(ctx context.Context, rel registry.Relation, parentKey, token string) ([]model.Record, []string, error) {
	data, err := c.do(ctx, http.MethodGet, rel.ChildEndpoint(url.PathEscape(parentKey)), token, nil)
	if err != nil {
		return nil, nil, err
	}
	return model.DecodeList(data)
}

// CustomerOrders lists a customer's orders, newest first.
func (c *Client) CustomerOrders(ctx context.Context, customerID, token string) ([]model.Record, []string, error) {
	data, err := c.do(ctx, http.MethodGet, "/orders/"+url.PathEscape(customerID), token, nil)
	if err != nil {
		return nil, nil, err
	}
	return model.DecodeList(data)
}
