package server_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/flightpath/config"
	"github.com/katalvlaran/flightpath/search"
	"github.com/katalvlaran/flightpath/server"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func newServer(dataset string) http.Handler {
	cfg := config.DefaultServerConfig()
	cfg.Dataset = dataset

	return server.New(cfg, search.New(), nil).Handler()
}

func do(h http.Handler, method, path, body string, header map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	for k, v := range header {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	return w
}

type errorBody struct {
	Error     string `json:"error"`
	Kind      string `json:"kind"`
	RequestID string `json:"request_id"`
}

func TestHealth(t *testing.T) {
	w := do(newServer("testdata/flights.csv"), http.MethodGet, "/healthz", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())

	w = do(newServer("testdata/findme.csv"), http.MethodGet, "/healthz", "", nil)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestSearch_OneWay(t *testing.T) {
	w := do(newServer("testdata/flights.csv"), http.MethodPost, "/v1/search",
		`{"origin":"A","destination":"C"}`, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var its []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &its))
	require.Len(t, its, 2)
	assert.Equal(t, 150.0, its[0]["total_price"])
	assert.Equal(t, 200.0, its[1]["total_price"])

	_, err := uuid.Parse(w.Header().Get("X-Request-ID"))
	assert.NoError(t, err, "generated request id is a UUID")
}

func TestSearch_RoundTripWithBags(t *testing.T) {
	w := do(newServer("testdata/flights.csv"), http.MethodPost, "/v1/search",
		`{"origin":"A","destination":"C","bags":1,"reverse":true}`, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var its []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &its))
	require.Len(t, its, 2)
	// AB1+BC1+CA1 with one bag: 110 + 55 + 88
	assert.Equal(t, 253.0, its[0]["total_price"])
	assert.Equal(t, 1.0, its[0]["bags_count"])
}

func TestSearch_NoResultIsEmptyArray(t *testing.T) {
	w := do(newServer("testdata/flights.csv"), http.MethodPost, "/v1/search",
		`{"origin":"A","destination":"XXX"}`, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestSearch_EchoesRequestID(t *testing.T) {
	w := do(newServer("testdata/flights.csv"), http.MethodPost, "/v1/search",
		`{"origin":"A","destination":"C"}`, map[string]string{"X-Request-ID": "trace-42"})
	assert.Equal(t, "trace-42", w.Header().Get("X-Request-ID"))
}

func TestSearch_Errors(t *testing.T) {
	cases := []struct {
		name    string
		dataset string
		body    string
		status  int
		kind    string
	}{
		{"malformed body", "testdata/flights.csv", `{"origin":`, http.StatusBadRequest, "bad_request"},
		{"missing destination", "testdata/flights.csv", `{"origin":"A"}`, http.StatusBadRequest, "invalid_query"},
		{"too many bags", "testdata/flights.csv", `{"origin":"A","destination":"C","bags":1000}`, http.StatusBadRequest, "invalid_query"},
		{"bad start date", "testdata/flights.csv", `{"origin":"A","destination":"C","start_date":"tomorrow"}`, http.StatusBadRequest, "invalid_query"},
		{"missing dataset", "testdata/findme.csv", `{"origin":"A","destination":"C"}`, http.StatusUnprocessableEntity, "file_not_found"},
		{"wrong header", "testdata/wrong_header.csv", `{"origin":"A","destination":"C"}`, http.StatusUnprocessableEntity, "header_shape"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := do(newServer(tc.dataset), http.MethodPost, "/v1/search", tc.body,
				map[string]string{"X-Request-ID": "req-1"})
			assert.Equal(t, tc.status, w.Code)

			var body errorBody
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, tc.kind, body.Kind)
			assert.Equal(t, "req-1", body.RequestID)
			assert.NotEmpty(t, body.Error)
		})
	}
}

func TestMetrics(t *testing.T) {
	h := newServer("testdata/flights.csv")
	do(h, http.MethodPost, "/v1/search", `{"origin":"A","destination":"C"}`, nil)

	w := do(h, http.MethodGet, "/metrics", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "flightpath_queries_total")
	assert.Contains(t, w.Body.String(), `flightpath_http_requests_total{code="200",route="/v1/search"}`)
}

func TestRun_StopsOnCancel(t *testing.T) {
	cfg := config.DefaultServerConfig()
	cfg.Addr = "127.0.0.1:0"
	cfg.Dataset = "testdata/flights.csv"
	srv := server.New(cfg, search.New(), nil)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx) }()
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}
