package destinations

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"simvia/internal/shared/config"
	"simvia/internal/shared/logger"
)

func newTestClient(baseURL string, maxRetries int) *Client {
	return NewClient(config.CatalogAPIConfig{
		BaseURL:        baseURL,
		Token:          "test-token",
		TimeoutSeconds: 5,
		MaxRetries:     maxRetries,
	}, logger.NewLogger())
}

func pageResponse(page, lastPage int, names ...string) string {
	data := ""
	for i, name := range names {
		if i > 0 {
			data += ","
		}
		data += fmt.Sprintf(`{"id":%d,"name":"%s","code":"C%d","type":"local"}`, i+1, name, i+1)
	}
	return fmt.Sprintf(`{"success":true,"data":[%s],"meta":{"current_page":%d,"last_page":%d}}`,
		data, page, lastPage)
}

func TestClient_FetchAll_AllPages(t *testing.T) {
	var requestedPages []int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))

		page, _ := strconv.Atoi(r.URL.Query().Get("page"))
		requestedPages = append(requestedPages, page)

		switch page {
		case 1:
			fmt.Fprint(w, pageResponse(1, 3, "Japan", "France"))
		case 2:
			fmt.Fprint(w, pageResponse(2, 3, "Spain"))
		case 3:
			fmt.Fprint(w, pageResponse(3, 3, "Italy"))
		default:
			t.Fatalf("unexpected page request: %d", page)
		}
	}))
	defer srv.Close()

	client := newTestClient(srv.URL, 0)
	result := client.FetchAll(context.Background())

	require.Len(t, result, 4)
	assert.Equal(t, []int{1, 2, 3}, requestedPages)
	assert.Equal(t, "Japan", result[0].Name)
	assert.Equal(t, "Italy", result[3].Name)
}

func TestClient_FetchAll_StopsOnServerError(t *testing.T) {
	var requestedPages []int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		page, _ := strconv.Atoi(r.URL.Query().Get("page"))
		requestedPages = append(requestedPages, page)

		if page == 2 {
			http.Error(w, "boom", http.StatusInternalServerError)
			return
		}
		fmt.Fprint(w, pageResponse(page, 3, "Japan"))
	}))
	defer srv.Close()

	client := newTestClient(srv.URL, 3)
	result := client.FetchAll(context.Background())

	// Page 1 results are kept; the 500 ends pagination without retries and
	// page 3 is never requested.
	require.Len(t, result, 1)
	assert.Equal(t, "Japan", result[0].Name)
	assert.Equal(t, []int{1, 2}, requestedPages)
}

func TestClient_FetchAll_StopsOnUnsuccessfulEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		page, _ := strconv.Atoi(r.URL.Query().Get("page"))
		if page == 2 {
			fmt.Fprint(w, `{"success":false,"data":null,"meta":{"current_page":2,"last_page":3}}`)
			return
		}
		fmt.Fprint(w, pageResponse(page, 3, "Japan", "France"))
	}))
	defer srv.Close()

	client := newTestClient(srv.URL, 0)
	result := client.FetchAll(context.Background())

	assert.Len(t, result, 2)
}

func TestClient_FetchAll_RetriesRetryableStatus(t *testing.T) {
	var attempts atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if attempts.Add(1) == 1 {
			http.Error(w, "try later", http.StatusServiceUnavailable)
			return
		}
		fmt.Fprint(w, pageResponse(1, 1, "Japan"))
	}))
	defer srv.Close()

	client := newTestClient(srv.URL, 2)
	result := client.FetchAll(context.Background())

	require.Len(t, result, 1)
	assert.Equal(t, int32(2), attempts.Load())
}

func TestClient_FetchAll_MissingConfig(t *testing.T) {
	client := NewClient(config.CatalogAPIConfig{}, logger.NewLogger())

	result := client.FetchAll(context.Background())

	assert.Empty(t, result)
}

func TestClient_FetchAll_SinglePage(t *testing.T) {
	var requests atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		fmt.Fprint(w, pageResponse(1, 1, "Japan"))
	}))
	defer srv.Close()

	client := newTestClient(srv.URL, 0)
	result := client.FetchAll(context.Background())

	assert.Len(t, result, 1)
	assert.Equal(t, int32(1), requests.Load())
}
