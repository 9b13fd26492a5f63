package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/watergrid/meter-analytics-api/internal/config"
)

func newTestClient(server *httptest.Server) *Client {
	return New(config.Client{
		BaseURL:      server.URL,
		FetchTimeout: 2 * time.Second,
	})
}

func TestClient_Years(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/years", r.URL.Path)
		assert.Equal(t, http.MethodGet, r.Method)

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"id":"2024-2025","name":"2024-2025"},{"id":"2023-2024","name":"2023-2024"}]`))
	}))
	defer server.Close()

	options, err := newTestClient(server).Years(context.Background())

	assert.NoError(t, err)
	assert.Len(t, options, 2)
	assert.Equal(t, "2024-2025", options[0].ID)
}

func TestClient_IndustryComparison_Params(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/chart1", r.URL.Path)
		assert.Equal(t, "EE_Adava", r.URL.Query().Get("division"))
		assert.Equal(t, "2023-2024", r.URL.Query().Get("financial_year"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"industryname":"Textiles","total_diff":120.5}]`))
	}))
	defer server.Close()

	rows, err := newTestClient(server).IndustryComparison(context.Background(), "EE_Adava", "2023-2024")

	assert.NoError(t, err)
	assert.Len(t, rows, 1)
	assert.Equal(t, "Textiles", rows[0].IndustryName)
	assert.Equal(t, 120.5, rows[0].TotalDiff)
}

func TestClient_MonthlyByIndustry_OmitsAllYearsParam(t *testing.T) {
	tests := []struct {
		name          string
		financialYear string
		sent          bool
	}{
		{
			name:          "The all sentinel is not sent",
			financialYear: "all",
			sent:          false,
		},
		{
			name:          "An empty year is not sent",
			financialYear: "",
			sent:          false,
		},
		{
			name:          "A concrete year is sent",
			financialYear: "2023-2024",
			sent:          true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, tt.sent, r.URL.Query().Has("financial_year"))

				w.Header().Set("Content-Type", "application/json")
				w.Write([]byte(`[]`))
			}))
			defer server.Close()

			_, err := newTestClient(server).MonthlyByIndustry(context.Background(), "Textiles", tt.financialYear)
			assert.NoError(t, err)
		})
	}
}

func TestClient_ErrorBodyBecomesAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":"Missing required parameter: industry"}`))
	}))
	defer server.Close()

	rows, err := newTestClient(server).YearlyTrend(context.Background(), "")

	assert.Nil(t, rows)
	assert.Error(t, err)

	var apiErr *APIError
	assert.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	assert.Equal(t, "Missing required parameter: industry", apiErr.Message)
	assert.False(t, IsServerUnreachable(err))
}

func TestClient_UnreachableServer(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // nothing is listening anymore

	_, err := newTestClient(server).Stats(context.Background())

	assert.Error(t, err)
	assert.True(t, IsServerUnreachable(err))
}

func TestClient_AllData(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "2", r.URL.Query().Get("page"))
		assert.Equal(t, "50", r.URL.Query().Get("pageSize"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"data":[],"total":45,"page":2,"pageSize":50,"hasMore":false,"totalPages":1,"currentPageRecords":0}`))
	}))
	defer server.Close()

	result, err := newTestClient(server).AllData(context.Background(), 2, 50)

	assert.NoError(t, err)
	assert.Equal(t, 45, result.Total)
	assert.False(t, result.HasMore)
}
