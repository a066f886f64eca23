package psa

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.Handler) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	c := NewClient(Credentials{
		CompanyID:  "acme",
		PublicKey:  "pub",
		PrivateKey: "priv",
		SiteURL:    srv.URL + "/",
		ClientID:   "client-123",
	}, WithHTTPClient(srv.Client()))
	return c, srv
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"bare host", "na.myconnectwise.net", "https://na.myconnectwise.net/v4_6_release/apis/3.0"},
		{"trailing slash", "https://na.myconnectwise.net/", "https://na.myconnectwise.net/v4_6_release/apis/3.0"},
		{"http kept", "http://localhost:8080", "http://localhost:8080/v4_6_release/apis/3.0"},
		{"only one slash stripped", "cw.example.com//", "https://cw.example.com//v4_6_release/apis/3.0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeBaseURL(tt.in))
		})
	}
}

func TestClient_SendsAuthHeaders(t *testing.T) {
	var gotAuth, gotClientID, gotPath string
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotClientID = r.Header.Get("clientId")
		gotPath = r.URL.Path
		writeJSON(w, map[string]string{"version": "v2024"})
	}))

	result := c.TestConnection(context.Background())

	assert.True(t, result.Success)
	assert.Equal(t, "Connection successful", result.Message)
	assert.Equal(t, "/v4_6_release/apis/3.0/system/info", gotPath)
	assert.Equal(t, "client-123", gotClientID)
	assert.Equal(t, "Basic "+base64.StdEncoding.EncodeToString([]byte("acme+pub:priv")), gotAuth)
}

func TestClient_TestConnectionFailureIsAResult(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte("bad credentials"))
	}))

	result := c.TestConnection(context.Background())

	assert.False(t, result.Success)
	assert.Equal(t, "ConnectWise API error: 401 - bad credentials", result.Message)
}

func TestClient_NonSuccessReturnsAPIError(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("boom"))
	}))

	_, err := c.ListCompanyTypes(context.Background())
	require.Error(t, err)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, 500, apiErr.StatusCode)
	assert.Equal(t, "boom", apiErr.Body)
}

func TestClient_ListCompanyTypesNullBody(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("null"))
	}))

	types, err := c.ListCompanyTypes(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, types)
	assert.Empty(t, types)
}

func companyPager(total int, served *[]int) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/v4_6_release/apis/3.0/company/companies/count":
			writeJSON(w, map[string]int{"count": total})
		case "/v4_6_release/apis/3.0/company/companies":
			page, _ := strconv.Atoi(r.URL.Query().Get("page"))
			size, _ := strconv.Atoi(r.URL.Query().Get("pageSize"))
			*served = append(*served, page)
			start := (page - 1) * size
			items := []map[string]interface{}{}
			for i := start; i < start+size && i < total; i++ {
				items = append(items, map[string]interface{}{"id": i + 1, "name": fmt.Sprintf("Company %d", i+1)})
			}
			writeJSON(w, items)
		default:
			http.NotFound(w, r)
		}
	})
}

func TestClient_GetAllCompaniesPaginates(t *testing.T) {
	var served []int
	c, _ := newTestClient(t, companyPager(250, &served))

	var progress [][2]int
	companies, err := c.GetAllCompanies(context.Background(), "", func(soFar, total int) {
		progress = append(progress, [2]int{soFar, total})
	})

	require.NoError(t, err)
	assert.Len(t, companies, 250)
	assert.Equal(t, []int{1, 2, 3}, served)
	assert.Equal(t, [][2]int{{100, 250}, {200, 250}, {250, 250}}, progress)
	for _, company := range companies {
		assert.NotNil(t, company.Types)
	}
}

func TestClient_GetAllCompaniesStopsOnEmptyPage(t *testing.T) {
	var pages []int
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/v4_6_release/apis/3.0/company/companies/count":
			// the count overstates what the list endpoint will return
			writeJSON(w, map[string]int{"count": 500})
		default:
			page, _ := strconv.Atoi(r.URL.Query().Get("page"))
			pages = append(pages, page)
			if page == 1 {
				writeJSON(w, []map[string]interface{}{{"id": 1, "name": "Only"}})
				return
			}
			writeJSON(w, []interface{}{})
		}
	}))

	companies, err := c.GetAllCompanies(context.Background(), "", nil)

	require.NoError(t, err)
	assert.Len(t, companies, 1)
	assert.Equal(t, []int{1, 2}, pages)
}

func TestClient_GetAllCompaniesDiscardsPartialResults(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/v4_6_release/apis/3.0/company/companies/count":
			writeJSON(w, map[string]int{"count": 150})
		default:
			if r.URL.Query().Get("page") == "2" {
				w.WriteHeader(http.StatusBadGateway)
				return
			}
			items := make([]map[string]interface{}, 100)
			for i := range items {
				items[i] = map[string]interface{}{"id": i + 1}
			}
			writeJSON(w, items)
		}
	}))

	companies, err := c.GetAllCompanies(context.Background(), "", nil)

	require.Error(t, err)
	assert.Nil(t, companies)
}

func TestClient_GetCompaniesPassesConditions(t *testing.T) {
	var listConditions, countConditions string
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/v4_6_release/apis/3.0/company/companies/count" {
			countConditions = r.URL.Query().Get("conditions")
			writeJSON(w, map[string]int{"count": 0})
			return
		}
		listConditions = r.URL.Query().Get("conditions")
		writeJSON(w, []interface{}{})
	}))

	page, err := c.GetCompanies(context.Background(), 1, 25, `deletedFlag=false`)

	require.NoError(t, err)
	assert.Equal(t, 0, page.TotalCount)
	assert.Equal(t, "deletedFlag=false", listConditions)
	assert.Equal(t, "deletedFlag=false", countConditions)
}

func TestClient_GetAgreementsByCompanyQuery(t *testing.T) {
	var query map[string]string
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query = map[string]string{
			"conditions": r.URL.Query().Get("conditions"),
			"pageSize":   r.URL.Query().Get("pageSize"),
		}
		writeJSON(w, []map[string]interface{}{{"id": 7, "name": "Managed Services"}})
	}))

	agreements, err := c.GetAgreementsByCompany(context.Background(), 42)

	require.NoError(t, err)
	require.Len(t, agreements, 1)
	assert.Equal(t, 7, agreements[0].ID)
	assert.Equal(t, "company/id=42 and cancelled=false", query["conditions"])
	assert.Equal(t, "1000", query["pageSize"])
}

func TestClient_GetCompanyProductSKUs(t *testing.T) {
	var mu sync.Mutex
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		defer mu.Unlock()
		switch r.URL.Path {
		case "/v4_6_release/apis/3.0/finance/agreements":
			writeJSON(w, []map[string]interface{}{{"id": 1}, {"id": 2}, {"id": 3}})
		case "/v4_6_release/apis/3.0/finance/agreements/1/additions":
			writeJSON(w, []map[string]interface{}{
				{"id": 10, "product": map[string]interface{}{"identifier": "SEN-CYL-PRO"}},
				{"id": 11, "product": map[string]interface{}{"identifier": "DNS-FILTER"}},
				{"id": 12},
			})
		case "/v4_6_release/apis/3.0/finance/agreements/2/additions":
			w.WriteHeader(http.StatusInternalServerError)
		case "/v4_6_release/apis/3.0/finance/agreements/3/additions":
			writeJSON(w, []map[string]interface{}{
				{"id": 13, "product": map[string]interface{}{"identifier": "SEN-CYL-PRO"}},
				{"id": 14, "product": map[string]interface{}{"identifier": "KB4-DIAMOND"}},
			})
		default:
			http.NotFound(w, r)
		}
	}))

	skus, err := c.GetCompanyProductSKUs(context.Background(), 42)

	require.NoError(t, err)
	assert.Equal(t, []string{"SEN-CYL-PRO", "DNS-FILTER", "KB4-DIAMOND"}, skus.SKUs)
	assert.Equal(t, 3, skus.Agreements)
	require.Len(t, skus.Failures, 1)
	assert.Equal(t, 2, skus.Failures[0].AgreementID)
}

func TestClient_GetCompanyProductSKUsAgreementListFails(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))

	skus, err := c.GetCompanyProductSKUs(context.Background(), 42)

	require.Error(t, err)
	assert.Nil(t, skus)
}

func TestClient_GetContact(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v4_6_release/apis/3.0/company/contacts/5", r.URL.Path)
		_, _ = w.Write([]byte(`{"id":5,"firstName":"Dana","lastName":""}`))
	}))

	contact, err := c.GetContact(context.Background(), 5)

	require.NoError(t, err)
	assert.Equal(t, "Dana", contact.FullName())
	assert.NotNil(t, contact.CommunicationItems)
}

func TestClient_RequestObserver(t *testing.T) {
	var endpoints []string
	var statuses []int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, map[string]interface{}{"id": 9, "name": "Acme"})
	}))
	defer srv.Close()

	c := NewClient(Credentials{SiteURL: srv.URL}, WithRequestObserver(func(endpoint string, status int, _ time.Duration) {
		endpoints = append(endpoints, endpoint)
		statuses = append(statuses, status)
	}))

	company, err := c.GetCompany(context.Background(), 9)

	require.NoError(t, err)
	assert.Equal(t, "Acme", company.Name)
	assert.Equal(t, []string{"/company/companies/{id}"}, endpoints)
	assert.Equal(t, []int{200}, statuses)
}

func TestClient_CircuitBreakerIgnoresClientErrors(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	c := NewClient(Credentials{SiteURL: srv.URL}, WithCircuitBreaker(NewCircuitBreaker("psa-test")))

	for i := 0; i < 10; i++ {
		_, err := c.GetCompany(context.Background(), 1)
		var apiErr *APIError
		require.True(t, errors.As(err, &apiErr))
	}
	assert.Equal(t, 10, calls)
}

func TestClient_CircuitBreakerOpensOnServerErrors(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	c := NewClient(Credentials{SiteURL: srv.URL}, WithCircuitBreaker(NewCircuitBreaker("psa-test")))

	for i := 0; i < 10; i++ {
		_, _ = c.GetCompany(context.Background(), 1)
	}
	assert.Equal(t, 5, calls)
}
