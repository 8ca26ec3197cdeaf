package swish

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	// ProductionURL is the live Swish commerce API endpoint.
	ProductionURL = "https://cpc.getswish.net/swish-cpcapi/api/v1/"
	// SandboxURL is the merchant Swish simulator (MSS) endpoint.
	SandboxURL = "https://mss.cpc.getswish.net/swish-cpcapi/api/v1/"
)

// API is the set of Swish operations. Client implements it directly;
// Retrier wraps any implementation with a retry policy.
type API interface {
	CreatePayment(ctx context.Context, params PaymentParams) (*CreatedPayment, error)
	GetPayment(ctx context.Context, paymentID string) (*Payment, error)
	CreateRefund(ctx context.Context, params RefundParams) (*CreatedRefund, error)
	GetRefund(ctx context.Context, refundID string) (*Refund, error)
}

// Config carries everything needed to build a Client. Certificate material
// is read and the TLS transport is built once, in NewClient; every call
// reuses the pooled connections.
type Config struct {
	// MerchantNumber is the Swish number of the business receiving payments.
	// It is injected into every creation call; callers cannot override it.
	MerchantNumber string
	// BaseURL defaults to ProductionURL. TLS is mandatory: a plain http URL
	// is rejected.
	BaseURL string
	// CertPath points at the PKCS#12 client certificate bundle.
	CertPath string
	// RootCertPath points at the DER-encoded Swish root certificate.
	RootCertPath string
	// Passphrase unlocks the private key in the PKCS#12 bundle.
	Passphrase string
	// Timeout bounds each call end to end. Zero means no client-side bound;
	// use a context deadline for per-call control.
	Timeout time.Duration
	// HTTPClient replaces the mutual-TLS client entirely, primarily for
	// tests. When set, the certificate fields are ignored.
	HTTPClient *http.Client
	// Logger receives per-call debug logging. Defaults to slog.Default().
	Logger *slog.Logger
}

// Client calls the Swish API on behalf of a single merchant. It holds no
// mutable state and is safe for concurrent use; in-flight calls are
// independent and individually cancellable through their contexts.
type Client struct {
	merchantNumber string
	baseURL        string
	httpClient     *http.Client
	logger         *slog.Logger
}

var _ API = (*Client)(nil)

func NewClient(cfg Config) (*Client, error) {
	if cfg.MerchantNumber == "" {
		return nil, &ConfigError{Reason: "merchant number is required"}
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = ProductionURL
	}
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, &ConfigError{Reason: fmt.Sprintf("parsing base URL %q", baseURL), Err: err}
	}
	if parsed.Scheme != "https" {
		return nil, &ConfigError{Reason: fmt.Sprintf("base URL %q must use https", baseURL)}
	}
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		rootCert, err := readCertFile(cfg.RootCertPath)
		if err != nil {
			return nil, err
		}
		clientCert, err := readCertFile(cfg.CertPath)
		if err != nil {
			return nil, err
		}
		httpClient, err = newHTTPClient(rootCert, clientCert, cfg.Passphrase, cfg.Timeout)
		if err != nil {
			return nil, err
		}
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Client{
		merchantNumber: cfg.MerchantNumber,
		baseURL:        baseURL,
		httpClient:     httpClient,
		logger:         logger,
	}, nil
}

// CreatePayment creates a payment request. PayeeAlias is overwritten with
// the configured merchant number regardless of what the caller set. The
// identity of the created payment comes from the response headers, not the
// body; a 2xx response without a Location header fails with a ParseError.
func (c *Client) CreatePayment(ctx context.Context, params PaymentParams) (*CreatedPayment, error) {
	params.PayeeAlias = c.merchantNumber
	body := paymentRequest{PaymentParams: params, Currency: CurrencySEK}

	_, header, err := c.do(ctx, http.MethodPost, "paymentrequests", &body)
	if err != nil {
		return nil, err
	}

	location, requestToken := extractLocation(header)
	if location == "" {
		return nil, &ParseError{Message: "could not find resource location"}
	}
	return &CreatedPayment{
		ID:           idFromLocation(location),
		Location:     location,
		RequestToken: requestToken,
	}, nil
}

// GetPayment fetches a payment by the identifier a creation call returned.
func (c *Client) GetPayment(ctx context.Context, paymentID string) (*Payment, error) {
	return getResource[Payment](c, ctx, "paymentrequests/"+paymentID)
}

// CreateRefund creates a refund for an earlier payment. PayerAlias is
// overwritten with the configured merchant number: on a refund the merchant
// is the paying side.
func (c *Client) CreateRefund(ctx context.Context, params RefundParams) (*CreatedRefund, error) {
	params.PayerAlias = c.merchantNumber
	body := refundRequest{RefundParams: params, Currency: CurrencySEK}

	_, header, err := c.do(ctx, http.MethodPost, "refunds", &body)
	if err != nil {
		return nil, err
	}

	location, _ := extractLocation(header)
	if location == "" {
		return nil, &ParseError{Message: "could not find resource location"}
	}
	return &CreatedRefund{
		ID:       idFromLocation(location),
		Location: location,
	}, nil
}

// GetRefund fetches a refund by the identifier a creation call returned.
func (c *Client) GetRefund(ctx context.Context, refundID string) (*Refund, error) {
	return getResource[Refund](c, ctx, "refunds/"+refundID)
}

func getResource[T any](c *Client, ctx context.Context, path string) (*T, error) {
	body, _, err := c.do(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}
	var resource T
	if err := json.Unmarshal(body, &resource); err != nil {
		return nil, fmt.Errorf("error decoding json response: %w", err)
	}
	return &resource, nil
}

// do builds the request, performs it, and classifies the outcome.
func (c *Client) do(ctx context.Context, method, path string, reqBody any) ([]byte, http.Header, error) {
	req, err := c.newRequest(ctx, method, path, reqBody)
	if err != nil {
		return nil, nil, err
	}

	c.logger.DebugContext(ctx, "swish request", "method", method, "url", req.URL.String())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, nil, fmt.Errorf("error making request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, nil, fmt.Errorf("error reading response body: %w", err)
	}

	c.logger.DebugContext(ctx, "swish response",
		"method", method,
		"url", req.URL.String(),
		"status", resp.StatusCode,
	)

	return classify(resp.StatusCode, resp.Header, body)
}

func (c *Client) newRequest(ctx context.Context, method, path string, reqBody any) (*http.Request, error) {
	target, err := url.Parse(c.baseURL + path)
	if err != nil {
		return nil, &ConfigError{Reason: fmt.Sprintf("building request URL for %q", path), Err: err}
	}

	var bodyReader io.Reader
	if reqBody != nil {
		jsonData, err := json.Marshal(reqBody)
		if err != nil {
			return nil, fmt.Errorf("error marshalling json: %w", err)
		}
		bodyReader = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, target.String(), bodyReader)
	if err != nil {
		return nil, fmt.Errorf("error creating request: %w", err)
	}

	if reqBody != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return req, nil
}
