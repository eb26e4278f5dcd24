package cielo

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/noah-isme/cielo-link-api/internal/common"
	"github.com/noah-isme/cielo-link-api/internal/obs"
)

// Error codes raised by the client. They are caught and flattened into an
// error-shaped reply at the dispatcher boundary.
const (
	ErrTransport    = "TRANSPORT"
	ErrAuthFailed   = "AUTH_FAILED"
	ErrCreateFailed = "CREATE_FAILED"
	ErrNotFound     = "NOT_FOUND"
)

const (
	tokenPath    = "/api/public/v2/token"
	productsPath = "/api/public/v1/products/"
)

// Client talks to the Cielo Checkout public API (link de pagamento).
type Client struct {
	BaseURL     string
	Credentials string // base64-encoded client-id:client-secret pair
	HTTPClient  *http.Client
}

// New builds a Client with an instrumented HTTP transport. Timeouts are left
// to the transport defaults; there is no retry.
func New(baseURL, credentials string) *Client {
	return &Client{
		BaseURL:     strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		Credentials: strings.TrimSpace(credentials),
		HTTPClient:  &http.Client{Transport: otelhttp.NewTransport(http.DefaultTransport)},
	}
}

// response carries the raw outcome of a provider call. Bodies are kept as
// bytes because the provider answers some failures with plain text.
type response struct {
	StatusCode int
	Body       []byte
}

// decode reports whether the body parsed as JSON into v. Callers treat a
// false return as "body is raw text" rather than an error.
func (r response) decode(v any) bool {
	return json.Unmarshal(r.Body, v) == nil
}

func (r response) text() string {
	return strings.TrimSpace(string(r.Body))
}

func (c *Client) do(ctx context.Context, method, path, endpoint, authorization string, payload any) (response, error) {
	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return response{}, fmt.Errorf("encode %s payload: %w", endpoint, err)
		}
		body = bytes.NewReader(raw)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, body)
	if err != nil {
		return response{}, fmt.Errorf("build %s request: %w", endpoint, err)
	}
	req.Header.Set("Content-Type", "application/json")
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}

	res, err := c.httpClient().Do(req)
	if err != nil {
		c.countCall(endpoint, "transport_error")
		return response{}, common.NewAppError(ErrTransport, err.Error(), http.StatusBadGateway, err)
	}
	defer res.Body.Close()

	raw, err := io.ReadAll(res.Body)
	if err != nil {
		c.countCall(endpoint, "transport_error")
		return response{}, common.NewAppError(ErrTransport, err.Error(), http.StatusBadGateway, err)
	}
	c.countCall(endpoint, "ok")
	return response{StatusCode: res.StatusCode, Body: raw}, nil
}

func (c *Client) httpClient() *http.Client {
	if c.HTTPClient != nil {
		return c.HTTPClient
	}
	return http.DefaultClient
}

func (c *Client) countCall(endpoint, result string) {
	if obs.ProviderCallTotal != nil {
		obs.ProviderCallTotal.WithLabelValues(endpoint, result).Inc()
	}
}

// Token exchanges the configured basic-auth credential for a short-lived
// bearer token. Tokens are never cached; every logical operation fetches a
// fresh one.
func (c *Client) Token(ctx context.Context) (string, error) {
	res, err := c.do(ctx, http.MethodPost, tokenPath, "token", "Basic "+c.Credentials, nil)
	if err != nil {
		return "", err
	}
	var body struct {
		AccessToken string `json:"access_token"`
	}
	if !res.decode(&body) || strings.TrimSpace(body.AccessToken) == "" {
		return "", common.NewAppError(ErrAuthFailed, "Falha ao obter token: "+res.text(), http.StatusBadGateway, nil)
	}
	return body.AccessToken, nil
}

// CreateProduct submits a payment-link product. Success is decided by the
// presence of shortUrl in the reply, mirroring the provider contract.
func (c *Client) CreateProduct(ctx context.Context, token string, req CreateProductRequest) (Product, error) {
	res, err := c.do(ctx, http.MethodPost, productsPath, "product_create", "Bearer "+token, req)
	if err != nil {
		return Product{}, err
	}
	var product Product
	if !res.decode(&product) || strings.TrimSpace(product.ShortURL) == "" {
		return Product{}, common.NewAppError(ErrCreateFailed, "Erro na criação: "+res.text(), http.StatusBadGateway, nil)
	}
	return product, nil
}

// GetProduct fetches a previously created payment link by its provider id.
func (c *Client) GetProduct(ctx context.Context, token, id string) (Product, error) {
	res, err := c.do(ctx, http.MethodGet, productsPath+id, "product_get", "Bearer "+token, nil)
	if err != nil {
		return Product{}, err
	}
	if res.StatusCode != http.StatusOK {
		return Product{}, common.NewAppError(ErrNotFound, "Produto não encontrado: "+id, http.StatusNotFound, nil)
	}
	var product Product
	_ = res.decode(&product)
	return product, nil
}

// ListPayments fetches the orders recorded for a payment link. A non-JSON
// body or a missing orders field means no payments yet, not an error.
func (c *Client) ListPayments(ctx context.Context, token, id string) ([]Order, error) {
	res, err := c.do(ctx, http.MethodGet, productsPath+id+"/payments", "payments_list", "Bearer "+token, nil)
	if err != nil {
		return nil, err
	}
	var body struct {
		Orders []Order `json:"orders"`
	}
	_ = res.decode(&body)
	return body.Orders, nil
}
