package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/minhvo/retail-suite/internal/model"
)

// Credentials is the login payload: identifier is either email or
// phone, matched by the backend.
type Credentials struct {
	Identifier string `json:"identifier"`
	Password   string `json:"password"`
}

type loginResp struct {
	Message  string       `json:"message"`
	Customer model.Record `json:"customer"`
	Staff    model.Record `json:"staff"`
}

// LoginCustomer authenticates a customer and returns the customer
// record the backend responded with. Authentication itself happens
// on the backend; the caller caches the result in the session.
func (c *Client) LoginCustomer(ctx context.Context, creds Credentials) (model.Record, error) {
	return c.login(ctx, "/login/customer", creds)
}

// LoginStaff authenticates a staff member.
func (c *Client) LoginStaff(ctx context.Context, creds Credentials) (model.Record, error) {
	return c.login(ctx, "/login/staff", creds)
}

func (c *Client) login(ctx context.Context, path string, creds Credentials) (model.Record, error) {
	data, err := c.do(ctx, http.MethodPost, path, "", creds)
	if err != nil {
		return nil, err
	}
	var resp loginResp
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, err
	}
	if resp.Customer != nil {
		return resp.Customer, nil
	}
	return resp.Staff, nil
}

// RegisterCustomer creates a customer account. The record carries
// whatever registration fields the backend expects; errors follow
// the login contract.
func (c *Client) RegisterCustomer(ctx context.Context, rec model.Record) error {
	_, err := c.do(ctx, http.MethodPost, "/register/customer", "", rec)
	return err
}

// RegisterStaff creates a staff account.
func (c *Client) RegisterStaff(ctx context.Context, rec model.Record) error {
	_, err := c.do(ctx, http.MethodPost, "/register/staff", "", rec)
	return err
}
