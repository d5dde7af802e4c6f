package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"storefront/models"
)

var (
	// ErrUnavailable covers transport failures, timeouts and non-success
	// upstream responses. The view layer shows a generic retry message.
	ErrUnavailable = errors.New("catalog unavailable")

	// ErrNotFound means the requested product id does not exist upstream.
	ErrNotFound = errors.New("product not found")
)

// Client talks to the external product API. Prices are normalized on
// ingest so the rest of the application only ever sees display prices.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

func (c *Client) Products(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	if err := c.getJSON(ctx, "/products", &products); err != nil {
		return nil, err
	}
	return normalizeAll(products), nil
}

func (c *Client) ProductByID(ctx context.Context, id int) (models.Product, error) {
	var product models.Product
	err := c.getJSON(ctx, "/products/"+strconv.Itoa(id), &product)
	if err != nil {
		return models.Product{}, err
	}
	// The upstream API answers 200 with an empty body for unknown ids.
	if product.ID == 0 {
		return models.Product{}, ErrNotFound
	}
	product.Price = Normalize(product.Price)
	return product, nil
}

func (c *Client) Categories(ctx context.Context) ([]string, error) {
	var categories []string
	if err := c.getJSON(ctx, "/products/categories", &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

func (c *Client) ProductsByCategory(ctx context.Context, category string) ([]models.Product, error) {
	var products []models.Product
	path := "/products/category/" + url.PathEscape(category)
	if err := c.getJSON(ctx, path, &products); err != nil {
		return nil, err
	}
	return normalizeAll(products), nil
}

func (c *Client) getJSON(ctx context.Context, path string, v interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return ErrNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: unexpected status %d", ErrUnavailable, resp.StatusCode)
	}

	dec := json.NewDecoder(resp.Body)
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("%w: decoding response: %v", ErrUnavailable, err)
	}
	return nil
}

func normalizeAll(products []models.Product) []models.Product {
	for i := range products {
		products[i].Price = Normalize(products[i].Price)
	}
	return products
}
