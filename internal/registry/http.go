package registry

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/agenthands/thread/internal/core/model"
)

const (
	DefaultBaseURL = "https://api.company-information.service.gov.uk"
	DefaultTimeout = 30 * time.Second

	// error bodies are truncated to this many bytes in APIError
	maxErrorBody = 512
)

type Config struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
}

// HTTPClient talks to the registry REST API. Every call is a single GET;
// pagination is not followed and nothing is retried.
type HTTPClient struct {
	baseURL  string
	apiKey   string
	http     *http.Client
	validate *validator.Validate
}

var _ Client = (*HTTPClient)(nil)

func NewHTTPClient(cfg Config) *HTTPClient {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &HTTPClient{
		baseURL:  strings.TrimRight(baseURL, "/"),
		apiKey:   cfg.APIKey,
		http:     &http.Client{Timeout: timeout},
		validate: validator.New(),
	}
}

func (c *HTTPClient) ListOfficers(ctx context.Context, companyNumber string, params url.Values) ([]model.OfficerAppointmentItem, error) {
	path := fmt.Sprintf("/company/%s/officers", url.PathEscape(companyNumber))
	page, err := getValidated[model.Page[model.OfficerAppointmentItem]](ctx, c, path, params)
	if err != nil {
		return nil, err
	}
	return page.Items, nil
}

func (c *HTTPClient) ListAppointments(ctx context.Context, officerID string, params url.Values) ([]model.AppointmentItem, error) {
	path := fmt.Sprintf("/officers/%s/appointments", url.PathEscape(officerID))
	page, err := getValidated[model.Page[model.AppointmentItem]](ctx, c, path, params)
	if err != nil {
		return nil, err
	}
	return page.Items, nil
}

func (c *HTTPClient) GetProfile(ctx context.Context, companyNumber string) (*model.CompanyProfile, error) {
	path := fmt.Sprintf("/company/%s", url.PathEscape(companyNumber))
	profile, err := getValidated[model.CompanyProfile](ctx, c, path, nil)
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// SearchOfficers searches officers (or disqualified officers) by name.
func (c *HTTPClient) SearchOfficers(ctx context.Context, term string, disqualified bool, params url.Values) ([]model.OfficerSearchItem, error) {
	searchType := "officers"
	if disqualified {
		searchType = "disqualified-officers"
	}
	q := cloneParams(params)
	q.Set("q", term)
	page, err := getValidated[model.Page[model.OfficerSearchItem]](ctx, c, "/search/"+searchType, q)
	if err != nil {
		return nil, err
	}
	return page.Items, nil
}

func (c *HTTPClient) Insolvency(ctx context.Context, companyNumber string) (model.Record, error) {
	return c.getRecord(ctx, fmt.Sprintf("/company/%s/insolvency", url.PathEscape(companyNumber)), nil)
}

// FilingHistory lists a company's filings, or a single filing when
// transactionID is non-empty.
func (c *HTTPClient) FilingHistory(ctx context.Context, companyNumber, transactionID string, params url.Values) (model.Record, error) {
	path := fmt.Sprintf("/company/%s/filing-history", url.PathEscape(companyNumber))
	if transactionID != "" {
		path += "/" + url.PathEscape(transactionID)
	}
	return c.getRecord(ctx, path, params)
}

// Charges lists a company's charges, or a single charge when chargeID is non-empty.
func (c *HTTPClient) Charges(ctx context.Context, companyNumber, chargeID string, params url.Values) (model.Record, error) {
	path := fmt.Sprintf("/company/%s/charges", url.PathEscape(companyNumber))
	if chargeID != "" {
		path += "/" + url.PathEscape(chargeID)
	}
	return c.getRecord(ctx, path, params)
}

func (c *HTTPClient) getRecord(ctx context.Context, path string, params url.Values) (model.Record, error) {
	body, err := c.get(ctx, path, params)
	if err != nil {
		return nil, err
	}
	var rec model.Record
	if err := json.Unmarshal(body, &rec); err != nil {
		return nil, malformed("%s: %v", path, err)
	}
	return rec, nil
}

func getValidated[T any](ctx context.Context, c *HTTPClient, path string, params url.Values) (T, error) {
	var zero T
	body, err := c.get(ctx, path, params)
	if err != nil {
		return zero, err
	}

	var result T
	if err := json.Unmarshal(body, &result); err != nil {
		return zero, malformed("%s: %v", path, err)
	}
	if err := c.validate.Struct(result); err != nil {
		return zero, malformed("%s: %v", path, err)
	}
	return result, nil
}

func (c *HTTPClient) get(ctx context.Context, path string, params url.Values) ([]byte, error) {
	u := c.baseURL + path
	if len(params) > 0 {
		u += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request for %s: %w", path, err)
	}
	req.SetBasicAuth(c.apiKey, "")
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to query registry %s: %w", path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read registry response %s: %w", path, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg := strings.TrimSpace(string(body))
		if len(msg) > maxErrorBody {
			msg = msg[:maxErrorBody]
		}
		return nil, &APIError{StatusCode: resp.StatusCode, Path: path, Body: msg}
	}
	return body, nil
}

func cloneParams(params url.Values) url.Values {
	q := url.Values{}
	for k, v := range params {
		q[k] = append([]string(nil), v...)
	}
	return q
}
