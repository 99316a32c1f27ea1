package museum

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	errs "github.com/gianpd/zungri-web/internal/errors"
)

// Client talks to the content/booking REST API. Requests made on behalf of
// an authenticated visitor carry the request-scoped bearer token verified
// by the auth package; anonymous requests carry only the static API key.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

func NewClient(baseURL, apiKey string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Exhibits lists the exhibits featured on the home page
func (c *Client) Exhibits(ctx context.Context) ([]Exhibit, error) {
	var exhibits []Exhibit
	if err := c.get(ctx, "/v1/exhibits", "", &exhibits); err != nil {
		return nil, errs.Wrapf(err, "list exhibits")
	}
	return exhibits, nil
}

// TicketTypes lists the bookable entrance categories
func (c *Client) TicketTypes(ctx context.Context) ([]TicketType, error) {
	var ticketTypes []TicketType
	if err := c.get(ctx, "/v1/ticket-types", "", &ticketTypes); err != nil {
		return nil, errs.Wrapf(err, "list ticket types")
	}
	return ticketTypes, nil
}

// CreateBooking books tickets. The bearer token associates the booking with
// the visitor's account when present; it may be empty for guest bookings.
func (c *Client) CreateBooking(ctx context.Context, bearer string, req BookingRequest) (*Booking, error) {
	var booking Booking
	if err := c.post(ctx, "/v1/bookings", bearer, req, &booking); err != nil {
		return nil, errs.Wrapf(err, "create booking")
	}
	return &booking, nil
}

// Products lists the shop items
func (c *Client) Products(ctx context.Context) ([]Product, error) {
	var products []Product
	if err := c.get(ctx, "/v1/products", "", &products); err != nil {
		return nil, errs.Wrapf(err, "list products")
	}
	return products, nil
}

// Product fetches one shop item by slug
func (c *Client) Product(ctx context.Context, slug string) (*Product, error) {
	var product Product
	if err := c.get(ctx, "/v1/products/"+url.PathEscape(slug), "", &product); err != nil {
		return nil, errs.Wrapf(err, "get product %q", slug)
	}
	return &product, nil
}

// CreateOrder places a shop order
func (c *Client) CreateOrder(ctx context.Context, bearer string, req OrderRequest) (*Order, error) {
	var order Order
	if err := c.post(ctx, "/v1/orders", bearer, req, &order); err != nil {
		return nil, errs.Wrapf(err, "create order")
	}
	return &order, nil
}

// Orders lists the orders belonging to the authenticated visitor
func (c *Client) Orders(ctx context.Context, bearer string) ([]Order, error) {
	var orders []Order
	if err := c.get(ctx, "/v1/orders", bearer, &orders); err != nil {
		return nil, errs.Wrapf(err, "list orders")
	}
	return orders, nil
}

// SubmitContact delivers a contact form submission
func (c *Client) SubmitContact(ctx context.Context, msg ContactMessage) error {
	if err := c.post(ctx, "/v1/contact", "", msg, nil); err != nil {
		return errs.Wrapf(err, "submit contact message")
	}
	return nil
}

func (c *Client) get(ctx context.Context, path, bearer string, out any) error {
	return c.do(ctx, http.MethodGet, path, bearer, nil, out)
}

func (c *Client) post(ctx context.Context, path, bearer string, payload, out any) error {
	return c.do(ctx, http.MethodPost, path, bearer, payload, out)
}

func (c *Client) do(ctx context.Context, method, path, bearer string, payload, out any) error {
	var body io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return errs.Wrapf(err, "encode request")
		}
		body = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return errs.Wrapf(err, "build request")
	}
	req.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		req.Header.Set("X-Api-Key", c.apiKey)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errs.Wrapf(errs.ErrUnavailable, "%s %s: %v", method, path, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return errs.ErrNotFound
	case resp.StatusCode >= 500:
		return errs.Wrapf(errs.ErrUnavailable, "%s %s returned %d", method, path, resp.StatusCode)
	case resp.StatusCode >= 400:
		return fmt.Errorf("%s %s returned %d", method, path, resp.StatusCode)
	}

	if out == nil {
		io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errs.Wrapf(errs.ErrUnavailable, "decode response: %v", err)
	}
	return nil
}
