package shopapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/weblarek/storefront/internal/models"
)

// Client talks to the shop backend: product list, product by id, order
// create. It implements the remote contract the state layer depends on.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

// New creates a client for the given base URL. apiKey may be empty when the
// backend runs without auth.
func New(baseURL, apiKey string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		http:    &http.Client{Timeout: timeout},
	}
}

// GetProducts fetches the full catalog listing.
func (c *Client) GetProducts(ctx context.Context) (models.ProductList, error) {
	var list models.ProductList
	if err := c.get(ctx, "/api/product/", &list); err != nil {
		return models.ProductList{}, err
	}
	return list, nil
}

// GetProductByID fetches a single product.
func (c *Client) GetProductByID(ctx context.Context, id string) (models.Product, error) {
	var p models.Product
	if err := c.get(ctx, "/api/product/"+url.PathEscape(id), &p); err != nil {
		return models.Product{}, err
	}
	return p, nil
}

// CreateOrder submits an order and returns the backend confirmation.
func (c *Client) CreateOrder(ctx context.Context, order models.OrderRequest) (models.OrderResponse, error) {
	body, err := json.Marshal(order)
	if err != nil {
		return models.OrderResponse{}, fmt.Errorf("failed to encode order: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/order", bytes.NewReader(body))
	if err != nil {
		return models.OrderResponse{}, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	var resp models.OrderResponse
	if err := c.do(req, &resp); err != nil {
		return models.OrderResponse{}, err
	}
	return resp, nil
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out any) error {
	if c.apiKey != "" {
		req.Header.Set("api_key", c.apiKey)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return apiError(resp)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// apiError surfaces the backend's {"error": "..."} body when present,
// falling back to the HTTP status.
func apiError(resp *http.Response) error {
	var body struct {
		Error string `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err == nil && body.Error != "" {
		return errors.New(body.Error)
	}
	return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
}
