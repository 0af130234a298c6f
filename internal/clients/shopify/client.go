// Package shopify is the thin catalog source: Admin GraphQL for
// products, Storefront GraphQL for collections. Responses are reshaped
// into domain records and nothing here is cached or persisted.
package shopify

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/shopcanvas/builder-backend/internal/platform/apierr"
	"github.com/shopcanvas/builder-backend/internal/platform/logger"
)

type Config struct {
	StoreDomain     string
	AdminToken      string
	StorefrontToken string
	APIVersion      string
	Timeout         time.Duration
}

type Client struct {
	cfg        Config
	httpClient *http.Client
	log        *logger.Logger
}

func NewClient(cfg Config, httpClient *http.Client, baseLog *logger.Logger) *Client {
	if cfg.APIVersion == "" {
		cfg.APIVersion = "2024-10"
	}
	if httpClient == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = 10 * time.Second
		}
		httpClient = &http.Client{Timeout: timeout}
	}
	return &Client{
		cfg:        cfg,
		httpClient: httpClient,
		log:        baseLog.With("client", "ShopifyClient"),
	}
}

// Configured reports whether the environment carries enough credentials
// to talk to the store. Unconfigured clients are expected: callers
// degrade to a mock catalog instead of failing.
func (c *Client) Configured() bool {
	return strings.TrimSpace(c.cfg.StoreDomain) != "" &&
		(strings.TrimSpace(c.cfg.AdminToken) != "" || strings.TrimSpace(c.cfg.StorefrontToken) != "")
}

type graphQLRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables,omitempty"`
}

type graphQLError struct {
	Message    string         `json:"message"`
	Extensions map[string]any `json:"extensions,omitempty"`
}

type graphQLResponse struct {
	Data   json.RawMessage `json:"data"`
	Errors []graphQLError  `json:"errors,omitempty"`
}

func (c *Client) baseURL() (string, error) {
	domain := strings.TrimSpace(c.cfg.StoreDomain)
	if domain == "" {
		return "", errors.New("shopify store domain is empty")
	}
	if !strings.HasPrefix(domain, "http://") && !strings.HasPrefix(domain, "https://") {
		domain = "https://" + domain
	}
	return strings.TrimRight(domain, "/"), nil
}

func (c *Client) adminRequest(ctx context.Context, query string, variables map[string]any, out any) error {
	base, err := c.baseURL()
	if err != nil {
		return apierr.Upstream(err)
	}
	endpoint := base + "/admin/api/" + c.cfg.APIVersion + "/graphql.json"
	headers := map[string]string{"X-Shopify-Access-Token": c.cfg.AdminToken}
	return c.graphqlRequest(ctx, endpoint, headers, query, variables, out)
}

func (c *Client) storefrontRequest(ctx context.Context, query string, variables map[string]any, out any) error {
	base, err := c.baseURL()
	if err != nil {
		return apierr.Upstream(err)
	}
	endpoint := base + "/api/" + c.cfg.APIVersion + "/graphql.json"
	headers := map[string]string{"X-Shopify-Storefront-Access-Token": c.cfg.StorefrontToken}
	return c.graphqlRequest(ctx, endpoint, headers, query, variables, out)
}

func (c *Client) graphqlRequest(ctx context.Context, endpoint string, headers map[string]string, query string, variables map[string]any, out any) error {
	payload := graphQLRequest{
		Query:     strings.TrimSpace(query),
		Variables: variables,
	}
	bodyBytes, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(bodyBytes))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return apierr.Upstream(err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return apierr.Upstream(err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return apierr.Upstream(fmt.Errorf("shopify request failed: %s: %s", resp.Status, strings.TrimSpace(string(respBody))))
	}

	var parsed graphQLResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return apierr.Upstream(err)
	}
	if len(parsed.Errors) > 0 {
		return apierr.Upstream(fmt.Errorf("shopify graphql errors: %s", formatGraphQLErrors(parsed.Errors)))
	}
	if out == nil {
		return nil
	}
	if len(parsed.Data) == 0 {
		return apierr.Upstream(errors.New("shopify graphql response missing data"))
	}
	if err := json.Unmarshal(parsed.Data, out); err != nil {
		return apierr.Upstream(err)
	}
	return nil
}

func formatGraphQLErrors(errs []graphQLError) string {
	parts := make([]string, 0, len(errs))
	for _, e := range errs {
		parts = append(parts, e.Message)
	}
	return strings.Join(parts, "; ")
}
