// Package psa is a client for the ConnectWise Manage REST API.
package psa

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/sony/gobreaker"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

var tracer = otel.Tracer("psa")

const (
	apiPath = "/v4_6_release/apis/3.0"

	companyPageSize   = 100
	agreementPageSize = 1000
)

// APIError is returned for any non-2xx response
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("ConnectWise API error: %d - %s", e.StatusCode, e.Body)
}

// RequestObserver is notified after every HTTP exchange. status is 0 when no response was received.
type RequestObserver func(endpoint string, status int, elapsed time.Duration)

// Option configures a Client
type Option func(*Client)

// WithHTTPClient replaces the default http.Client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithLogger sets the logger used for degraded-path warnings
func WithLogger(logger *zap.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithCircuitBreaker routes every request through cb
func WithCircuitBreaker(cb *gobreaker.CircuitBreaker) Option {
	return func(c *Client) {
		c.cb = cb
	}
}

// WithRequestObserver registers a callback for request metrics
func WithRequestObserver(obs RequestObserver) Option {
	return func(c *Client) {
		c.observe = obs
	}
}

// Client issues authenticated calls against one ConnectWise site. It holds no mutable state.
type Client struct {
	creds      Credentials
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
	cb         *gobreaker.CircuitBreaker
	observe    RequestObserver
}

// NewClient creates a client for creds
func NewClient(creds Credentials, opts ...Option) *Client {
	c := &Client{
		creds:      creds,
		baseURL:    NormalizeBaseURL(creds.SiteURL),
		httpClient: &http.Client{},
		logger:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// NormalizeBaseURL strips one trailing slash, adds https:// when no scheme is present
// and appends the versioned API path.
func NormalizeBaseURL(siteURL string) string {
	site := strings.TrimSuffix(siteURL, "/")
	if !strings.HasPrefix(site, "https://") && !strings.HasPrefix(site, "http://") {
		site = "https://" + site
	}
	return site + apiPath
}

// BaseURL returns the normalized API root
func (c *Client) BaseURL() string {
	return c.baseURL
}

// NewCircuitBreaker creates the breaker used around PSA requests.
// Client errors (4xx) are treated as successful calls.
func NewCircuitBreaker(name string) *gobreaker.CircuitBreaker {
	return gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        name,
		MaxRequests: 3,
		Interval:    30 * time.Second,
		Timeout:     10 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			return counts.Requests >= 5 && failureRatio >= 0.6
		},
		IsSuccessful: func(err error) bool {
			if err == nil {
				return true
			}
			var apiErr *APIError
			return errors.As(err, &apiErr) && apiErr.StatusCode < http.StatusInternalServerError
		},
	})
}

func (c *Client) authHeader() string {
	raw := c.creds.CompanyID + "+" + c.creds.PublicKey + ":" + c.creds.PrivateKey
	return "Basic " + base64.StdEncoding.EncodeToString([]byte(raw))
}

// get performs a GET against path and decodes the JSON body into out.
// endpoint is the low-cardinality label reported to the observer.
func (c *Client) get(ctx context.Context, endpoint, path string, params url.Values, out interface{}) error {
	if c.cb == nil {
		return c.do(ctx, endpoint, path, params, out)
	}
	_, err := c.cb.Execute(func() (interface{}, error) {
		return nil, c.do(ctx, endpoint, path, params, out)
	})
	return err
}

func (c *Client) do(ctx context.Context, endpoint, path string, params url.Values, out interface{}) error {
	target := c.baseURL + path
	if len(params) > 0 {
		target += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Authorization", c.authHeader())
	req.Header.Set("clientId", c.creds.ClientID)
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.report(endpoint, 0, start)
		return err
	}
	defer resp.Body.Close()
	c.report(endpoint, resp.StatusCode, start)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(resp.Body)
		return &APIError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode %s response: %w", endpoint, err)
	}
	return nil
}

func (c *Client) report(endpoint string, status int, start time.Time) {
	if c.observe != nil {
		c.observe(endpoint, status, time.Since(start))
	}
}

func endSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
}

// TestConnection calls /system/info. Failures are reported in the result, never as an error.
func (c *Client) TestConnection(ctx context.Context) ConnectionResult {
	ctx, span := tracer.Start(ctx, "psa.Client.TestConnection")
	defer span.End()

	if err := c.get(ctx, "/system/info", "/system/info", nil, nil); err != nil {
		endSpan(span, err)
		msg := err.Error()
		if msg == "" {
			msg = "Connection failed"
		}
		return ConnectionResult{Success: false, Message: msg}
	}
	return ConnectionResult{Success: true, Message: "Connection successful"}
}

// ListCompanyTypes returns every company type defined on the site
func (c *Client) ListCompanyTypes(ctx context.Context) ([]CompanyType, error) {
	ctx, span := tracer.Start(ctx, "psa.Client.ListCompanyTypes")
	defer span.End()

	var types []CompanyType
	if err := c.get(ctx, "/company/companies/types", "/company/companies/types", nil, &types); err != nil {
		endSpan(span, err)
		return nil, err
	}
	if types == nil {
		types = []CompanyType{}
	}
	return types, nil
}

// GetCompanies fetches one page of companies and the total count
func (c *Client) GetCompanies(ctx context.Context, page, pageSize int, conditions string) (*CompanyPage, error) {
	ctx, span := tracer.Start(ctx, "psa.Client.GetCompanies")
	defer span.End()
	span.SetAttributes(attribute.Int("psa.page", page), attribute.Int("psa.page_size", pageSize))

	params := url.Values{}
	params.Set("page", strconv.Itoa(page))
	params.Set("pageSize", strconv.Itoa(pageSize))
	if conditions != "" {
		params.Set("conditions", conditions)
	}

	var companies []Company
	if err := c.get(ctx, "/company/companies", "/company/companies", params, &companies); err != nil {
		endSpan(span, err)
		return nil, err
	}

	countParams := url.Values{}
	if conditions != "" {
		countParams.Set("conditions", conditions)
	}
	var count countResponse
	if err := c.get(ctx, "/company/companies/count", "/company/companies/count", countParams, &count); err != nil {
		endSpan(span, err)
		return nil, err
	}

	if companies == nil {
		companies = []Company{}
	}
	return &CompanyPage{Items: companies, TotalCount: count.Count}, nil
}

// GetAllCompanies pages through every company matching conditions.
// onProgress, when non-nil, is called after each page with the running and total counts.
// Any page error aborts the walk and no partial result is returned.
func (c *Client) GetAllCompanies(ctx context.Context, conditions string, onProgress func(soFar, total int)) ([]Company, error) {
	ctx, span := tracer.Start(ctx, "psa.Client.GetAllCompanies")
	defer span.End()

	page := 1
	first, err := c.GetCompanies(ctx, page, companyPageSize, conditions)
	if err != nil {
		endSpan(span, err)
		return nil, err
	}
	all := append([]Company{}, first.Items...)
	total := first.TotalCount
	if onProgress != nil {
		onProgress(len(all), total)
	}

	for len(all) < total {
		page++
		next, err := c.GetCompanies(ctx, page, companyPageSize, conditions)
		if err != nil {
			endSpan(span, err)
			return nil, err
		}
		all = append(all, next.Items...)
		if onProgress != nil {
			onProgress(len(all), total)
		}
		if len(next.Items) == 0 {
			break
		}
	}

	span.SetAttributes(attribute.Int("psa.companies", len(all)), attribute.Int("psa.pages", page))
	return all, nil
}

// GetCompany fetches a single company
func (c *Client) GetCompany(ctx context.Context, companyID int) (*Company, error) {
	ctx, span := tracer.Start(ctx, "psa.Client.GetCompany")
	defer span.End()
	span.SetAttributes(attribute.Int("psa.company_id", companyID))

	var company Company
	path := fmt.Sprintf("/company/companies/%d", companyID)
	if err := c.get(ctx, "/company/companies/{id}", path, nil, &company); err != nil {
		endSpan(span, err)
		return nil, err
	}
	return &company, nil
}

// GetContact fetches a single contact
func (c *Client) GetContact(ctx context.Context, contactID int) (*Contact, error) {
	ctx, span := tracer.Start(ctx, "psa.Client.GetContact")
	defer span.End()
	span.SetAttributes(attribute.Int("psa.contact_id", contactID))

	var contact Contact
	path := fmt.Sprintf("/company/contacts/%d", contactID)
	if err := c.get(ctx, "/company/contacts/{id}", path, nil, &contact); err != nil {
		endSpan(span, err)
		return nil, err
	}
	return &contact, nil
}

// GetAgreementsByCompany returns the company's non-cancelled agreements (single page)
func (c *Client) GetAgreementsByCompany(ctx context.Context, companyID int) ([]Agreement, error) {
	ctx, span := tracer.Start(ctx, "psa.Client.GetAgreementsByCompany")
	defer span.End()
	span.SetAttributes(attribute.Int("psa.company_id", companyID))

	params := url.Values{}
	params.Set("conditions", fmt.Sprintf("company/id=%d and cancelled=false", companyID))
	params.Set("pageSize", strconv.Itoa(agreementPageSize))

	var agreements []Agreement
	if err := c.get(ctx, "/finance/agreements", "/finance/agreements", params, &agreements); err != nil {
		endSpan(span, err)
		return nil, err
	}
	if agreements == nil {
		agreements = []Agreement{}
	}
	return agreements, nil
}

// GetAgreementAdditions returns the line items of one agreement (single page)
func (c *Client) GetAgreementAdditions(ctx context.Context, agreementID int) ([]AgreementAddition, error) {
	ctx, span := tracer.Start(ctx, "psa.Client.GetAgreementAdditions")
	defer span.End()
	span.SetAttributes(attribute.Int("psa.agreement_id", agreementID))

	params := url.Values{}
	params.Set("pageSize", strconv.Itoa(agreementPageSize))

	var additions []AgreementAddition
	path := fmt.Sprintf("/finance/agreements/%d/additions", agreementID)
	if err := c.get(ctx, "/finance/agreements/{id}/additions", path, params, &additions); err != nil {
		endSpan(span, err)
		return nil, err
	}
	if additions == nil {
		additions = []AgreementAddition{}
	}
	return additions, nil
}

// GetCompanyProductSKUs collects the distinct product identifiers across all active
// agreements of a company, in first-seen order. An agreement whose additions cannot be
// fetched is skipped and reported in Failures; only the agreement list itself is fatal.
func (c *Client) GetCompanyProductSKUs(ctx context.Context, companyID int) (*ProductSKUs, error) {
	ctx, span := tracer.Start(ctx, "psa.Client.GetCompanyProductSKUs")
	defer span.End()
	span.SetAttributes(attribute.Int("psa.company_id", companyID))

	agreements, err := c.GetAgreementsByCompany(ctx, companyID)
	if err != nil {
		endSpan(span, err)
		return nil, err
	}

	result := &ProductSKUs{SKUs: []string{}, Agreements: len(agreements)}
	seen := make(map[string]struct{})

	for _, agreement := range agreements {
		additions, err := c.GetAgreementAdditions(ctx, agreement.ID)
		if err != nil {
			c.logger.Warn("Failed to get additions for agreement",
				zap.Int("agreement_id", agreement.ID),
				zap.Int("company_id", companyID),
				zap.Error(err),
			)
			result.Failures = append(result.Failures, AdditionFailure{AgreementID: agreement.ID, Err: err})
			continue
		}
		for _, addition := range additions {
			sku := addition.SKU()
			if sku == "" {
				continue
			}
			if _, ok := seen[sku]; ok {
				continue
			}
			seen[sku] = struct{}{}
			result.SKUs = append(result.SKUs, sku)
		}
	}

	span.SetAttributes(attribute.Int("psa.skus", len(result.SKUs)))
	return result, nil
}
