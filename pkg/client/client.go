// Package client is the Go SDK for the meter analytics API. It carries the
// same data plumbing the dashboard uses: a memoizing reference cache for the
// dropdown lists and adapters that reshape report rows into chart series.
package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"path"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/watergrid/meter-analytics-api/internal/config"
	"github.com/watergrid/meter-analytics-api/internal/domain"
)

// UnreachableError means the server could not be reached at all, as opposed
// to the server answering with an error body.
type UnreachableError struct {
	cause error
}

func (e *UnreachableError) Error() string {
	return fmt.Sprintf("server unreachable: %v", e.cause)
}

func (e *UnreachableError) Unwrap() error {
	return e.cause
}

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// IsServerUnreachable reports whether err is a connectivity failure
func IsServerUnreachable(err error) bool {
	var target *UnreachableError
	return errors.As(err, &target)
}

// APIError is an error body returned by the server
type APIError struct {
	StatusCode int    `json:"-"`
	Message    string `json:"error"`
	Details    string `json:"details,omitempty"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("request failed with status %d: %s", e.StatusCode, e.Message)
}

type Client struct {
	httpClient *http.Client
	baseURL    string
}

func New(cfg config.Client) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: cfg.FetchTimeout,
		},
		baseURL: cfg.BaseURL,
	}
}

func (c *Client) get(ctx context.Context, endpoint string, params url.Values, out interface{}) error {
	target, err := url.Parse(c.baseURL)
	if err != nil {
		return errors.Wrap(err, "error parsing the base URL")
	}
	target.Path = path.Join(target.Path, endpoint)
	if params != nil {
		target.RawQuery = params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target.String(), nil)
	if err != nil {
		return errors.Wrap(err, "error creating the request")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &UnreachableError{cause: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		if err := json.NewDecoder(resp.Body).Decode(apiErr); err != nil {
			apiErr.Message = resp.Status
		}
		return apiErr
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.Wrap(err, "error decoding the response")
	}

	return nil
}

// Health checks the liveness endpoint
func (c *Client) Health(ctx context.Context) error {
	var status struct {
		Status string `json:"status"`
	}
	return c.get(ctx, "/api/health", nil, &status)
}

func (c *Client) Years(ctx context.Context) ([]domain.DimensionOption, error) {
	return c.getOptions(ctx, "/api/years")
}

func (c *Client) Divisions(ctx context.Context) ([]domain.DimensionOption, error) {
	return c.getOptions(ctx, "/api/divisions")
}

func (c *Client) Industries(ctx context.Context) ([]domain.DimensionOption, error) {
	return c.getOptions(ctx, "/api/industries")
}

func (c *Client) Months(ctx context.Context) ([]domain.DimensionOption, error) {
	return c.getOptions(ctx, "/api/months")
}

func (c *Client) getOptions(ctx context.Context, endpoint string) ([]domain.DimensionOption, error) {
	options := make([]domain.DimensionOption, 0)
	if err := c.get(ctx, endpoint, nil, &options); err != nil {
		return nil, err
	}
	return options, nil
}

func (c *Client) IndustryComparison(ctx context.Context, division, financialYear string) ([]domain.IndustryTotal, error) {
	params := url.Values{}
	params.Set("division", division)
	params.Set("financial_year", financialYear)

	rows := make([]domain.IndustryTotal, 0)
	if err := c.get(ctx, "/api/chart1", params, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

func (c *Client) DivisionComparison(ctx context.Context, financialYear string) ([]domain.DivisionTotal, error) {
	params := url.Values{}
	params.Set("financial_year", financialYear)

	rows := make([]domain.DivisionTotal, 0)
	if err := c.get(ctx, "/api/chart2", params, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

func (c *Client) YearlyTrend(ctx context.Context, industry string) ([]domain.YearTotal, error) {
	params := url.Values{}
	params.Set("industry", industry)

	rows := make([]domain.YearTotal, 0)
	if err := c.get(ctx, "/api/chart3", params, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

func (c *Client) TimeSeries(ctx context.Context, industry string) ([]domain.TimeSeriesPoint, error) {
	params := url.Values{}
	params.Set("industry", industry)

	rows := make([]domain.TimeSeriesPoint, 0)
	if err := c.get(ctx, "/api/chart4", params, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

// MonthlyByIndustry fetches chart5 rows. An empty or "all" financialYear is
// simply not sent, which the server reads as no year restriction.
func (c *Client) MonthlyByIndustry(ctx context.Context, industry, financialYear string) ([]domain.MonthTotal, error) {
	params := url.Values{}
	params.Set("industry", industry)
	if financialYear != "" && financialYear != "all" {
		params.Set("financial_year", financialYear)
	}

	rows := make([]domain.MonthTotal, 0)
	if err := c.get(ctx, "/api/chart5", params, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

func (c *Client) MonthlyByDivision(ctx context.Context, division, financialYear string) ([]domain.MonthTotal, error) {
	params := url.Values{}
	params.Set("division", division)
	params.Set("financial_year", financialYear)

	rows := make([]domain.MonthTotal, 0)
	if err := c.get(ctx, "/api/chart6", params, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

func (c *Client) AllData(ctx context.Context, page, pageSize int) (*domain.PagedReadings, error) {
	params := url.Values{}
	params.Set("page", fmt.Sprint(page))
	params.Set("pageSize", fmt.Sprint(pageSize))

	result := &domain.PagedReadings{}
	if err := c.get(ctx, "/api/alldata", params, result); err != nil {
		return nil, err
	}
	return result, nil
}

func (c *Client) Stats(ctx context.Context) (*domain.Stats, error) {
	stats := &domain.Stats{}
	if err := c.get(ctx, "/api/stats", nil, stats); err != nil {
		return nil, err
	}
	return stats, nil
}
