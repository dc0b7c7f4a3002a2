package openfoodfacts

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/eatelligence/scanner/internal/domain"
	"golang.org/x/time/rate"
)

// Client handles communication with the Open Food Facts API
type Client struct {
	httpClient  *http.Client
	baseURL     string
	userAgent   string
	rateLimiter *rate.Limiter
}

// NewClient creates a new Open Food Facts API client.
// ratePerMin caps outgoing requests; Open Food Facts asks consumers to stay
// polite and always send an identifying User-Agent.
func NewClient(baseURL, userAgent string, ratePerMin int) *Client {
	if ratePerMin <= 0 {
		ratePerMin = 100
	}
	limiter := rate.NewLimiter(rate.Limit(float64(ratePerMin)/60.0), 10) // burst of 10 requests

	return &Client{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		baseURL:     baseURL,
		userAgent:   userAgent,
		rateLimiter: limiter,
	}
}

// doRequest executes a single HTTP GET with proper headers and error handling.
// There is deliberately no retry loop: a failed call is reported once and the
// operation yields empty/none.
func (c *Client) doRequest(ctx context.Context, reqURL string) (*http.Response, error) {
	if err := c.rateLimiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter error: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "GET", reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrOFFAPIFailure, err)
	}

	return resp, nil
}

// GetProduct fetches a product by barcode.
// The v0 product endpoint answers 200 with status=0 for unknown codes.
func (c *Client) GetProduct(ctx context.Context, code string) (*domain.Product, error) {
	log.Printf("[OFF] GetProduct called with code: %q", code)

	reqURL := fmt.Sprintf("%s/api/v0/product/%s.json", c.baseURL, url.PathEscape(code))

	resp, err := c.doRequest(ctx, reqURL)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, domain.ErrProductNotFound
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: status %d, body: %s", domain.ErrOFFAPIFailure, resp.StatusCode, string(body))
	}

	var productResp productResponse
	if err := json.NewDecoder(resp.Body).Decode(&productResp); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	if productResp.Status != 1 {
		log.Printf("[OFF] No product found for code: %q", code)
		return nil, domain.ErrProductNotFound
	}

	return mapProduct(productResp.Product), nil
}

// SearchByCategory searches products in a category within one market, sorted
// by the database's own nutrition grade.
func (c *Client) SearchByCategory(ctx context.Context, category, countryTag string, pageSize int) ([]domain.Product, error) {
	log.Printf("[OFF] SearchByCategory called with category: %q, country: %q", category, countryTag)

	params := url.Values{}
	params.Add("action", "process")
	params.Add("tagtype_0", "categories")
	params.Add("tag_contains_0", "contains")
	params.Add("tag_0", category)
	params.Add("tagtype_1", "countries")
	params.Add("tag_contains_1", "contains")
	params.Add("tag_1", countryTag)
	params.Add("sort_by", "nutrition_grades")
	params.Add("page_size", strconv.Itoa(pageSize))
	params.Add("json", "1")

	return c.search(ctx, params)
}

// SearchByName runs a free-text product search.
func (c *Client) SearchByName(ctx context.Context, terms string, pageSize int) ([]domain.Product, error) {
	log.Printf("[OFF] SearchByName called with terms: %q", terms)

	params := url.Values{}
	params.Add("action", "process")
	params.Add("search_terms", terms)
	params.Add("search_simple", "1")
	params.Add("page_size", strconv.Itoa(pageSize))
	params.Add("json", "1")

	return c.search(ctx, params)
}

func (c *Client) search(ctx context.Context, params url.Values) ([]domain.Product, error) {
	reqURL := fmt.Sprintf("%s/cgi/search.pl?%s", c.baseURL, params.Encode())

	resp, err := c.doRequest(ctx, reqURL)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: status %d, body: %s", domain.ErrOFFAPIFailure, resp.StatusCode, string(body))
	}

	var searchResp searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&searchResp); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	products := make([]domain.Product, 0, len(searchResp.Products))
	for _, raw := range searchResp.Products {
		products = append(products, *mapProduct(raw))
	}

	log.Printf("[OFF] Search returned %d products", len(products))
	return products, nil
}
