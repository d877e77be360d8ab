package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"

	"github.com/minhvo/retail-suite/internal/model"
)

// ReportFilter carries the optional date window and row limit the
// report endpoints accept.
type ReportFilter struct {
	StartDate string
	EndDate   string
	Limit     int
}

func (f ReportFilter) query() string {
	q := url.Values{}
	if f.StartDate != "" {
		q.Set("start_date", f.StartDate)
	}
	if f.EndDate != "" {
		q.Set("end_date", f.EndDate)
	}
	if f.Limit > 0 {
		q.Set("limit", strconv.Itoa(f.Limit))
	}
	if len(q) == 0 {
		return ""
	}
	return "?" + q.Encode()
}

// Report names accepted by Report. They map onto the backend's
// /reports/{name} family.
const (
	ReportRevenue     = "revenue"
	ReportTopProducts = "top-products"
	ReportInventory   = "inventory"
)

// Report fetches one aggregate report. Reports are consumed
// read-only; there is no mutation contract.
func (c *Client) Report(ctx context.Context, name string, f ReportFilter, token string) ([]model.Record, []string, error) {
	data, err := c.do(ctx, http.MethodGet, "/reports/"+name+f.query(), token, nil)
	if err != nil {
		return nil, nil, err
	}
	return model.DecodeList(data)
}

// Summary fetches the aggregate dashboard counters. Unlike the
// other reports this endpoint answers a single object.
func (c *Client) Summary(ctx context.Context, token string) (model.Record, error) {
	data, err := c.do(ctx, http.MethodGet, "/reports/summary", token, nil)
	if err != nil {
		return nil, err
	}
	var rec model.Record
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, err
	}
	return rec, nil
}
