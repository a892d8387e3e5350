package api_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tspsearch/api"
	"github.com/katalvlaran/tspsearch/tsp"
)

const squareBody = `A B 10
B C 10
C D 10
D A 10
A C 14
B D 14
`

func newServer(t *testing.T, defaults ...tsp.Option) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(api.New(log.New(io.Discard), defaults...).Handler())
	t.Cleanup(srv.Close)

	return srv
}

func post(t *testing.T, url, body string) (*http.Response, []byte) {
	t.Helper()
	resp, err := http.Post(url, "text/plain", strings.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	return resp, raw
}

func TestHealthz(t *testing.T) {
	srv := newServer(t)
	resp, err := http.Get(srv.URL + "/healthz")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))
}

func TestAlgorithms(t *testing.T) {
	srv := newServer(t)
	resp, err := http.Get(srv.URL + "/v1/algorithms")
	require.NoError(t, err)
	defer resp.Body.Close()

	var got []map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	require.Len(t, got, 3)
	assert.Equal(t, "dfs", got[0]["slug"])
	assert.Equal(t, "A* Search", got[2]["label"])
}

func TestSolveAll(t *testing.T) {
	srv := newServer(t)
	resp, raw := post(t, srv.URL+"/v1/solve", squareBody)
	require.Equal(t, http.StatusOK, resp.StatusCode, string(raw))

	var got api.SolveResponse
	require.NoError(t, json.Unmarshal(raw, &got))
	assert.NotEmpty(t, got.RunID)
	assert.Equal(t, 4, got.Cities)
	require.Len(t, got.Results, 3)
	for _, r := range got.Results {
		require.NotNil(t, r.Cost, r.Algorithm)
		assert.Equal(t, 40.0, *r.Cost, r.Algorithm)
		assert.Len(t, r.Tour, 5)
		assert.Equal(t, r.Tour[0], r.Tour[4])
		assert.Equal(t, got.RunID, r.RunID)
	}
}

func TestSolveSingleAlgorithm(t *testing.T) {
	srv := newServer(t)
	for _, url := range []string{"/v1/solve/astar", "/v1/solve?algo=astar&mst=kruskal"} {
		resp, raw := post(t, srv.URL+url, squareBody)
		require.Equal(t, http.StatusOK, resp.StatusCode, string(raw))

		var got api.SolveResponse
		require.NoError(t, json.Unmarshal(raw, &got))
		require.Len(t, got.Results, 1, url)
		assert.Equal(t, "A* Search", got.Results[0].Algorithm)
	}
}

func TestSolveUnreachable(t *testing.T) {
	srv := newServer(t)
	resp, raw := post(t, srv.URL+"/v1/solve/ucs", "A B 1\nC D 1\n")
	require.Equal(t, http.StatusOK, resp.StatusCode, string(raw))

	var got api.SolveResponse
	require.NoError(t, json.Unmarshal(raw, &got))
	require.Len(t, got.Results, 1)
	assert.True(t, got.Results[0].Unreachable)
	assert.Nil(t, got.Results[0].Cost)
}

func TestSolveErrors(t *testing.T) {
	srv := newServer(t)
	cases := []struct {
		name, url, body string
		status          int
	}{
		{"malformed line", "/v1/solve/dfs", "A B\n", http.StatusBadRequest},
		{"negative cost", "/v1/solve/dfs", "A B -3\n", http.StatusBadRequest},
		{"unknown algorithm", "/v1/solve/bfs", squareBody, http.StatusNotFound},
		{"bad max_expansions", "/v1/solve/dfs?max_expansions=x", squareBody, http.StatusBadRequest},
		{"bad single_start", "/v1/solve/dfs?single_start=maybe", squareBody, http.StatusBadRequest},
		{"bad mst", "/v1/solve/astar?mst=boruvka", squareBody, http.StatusBadRequest},
		{"expansion limit", "/v1/solve/ucs?max_expansions=2", squareBody, http.StatusUnprocessableEntity},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp, raw := post(t, srv.URL+tc.url, tc.body)
			assert.Equal(t, tc.status, resp.StatusCode, string(raw))

			var e map[string]string
			require.NoError(t, json.Unmarshal(raw, &e))
			assert.NotEmpty(t, e["error"])
		})
	}
}

func TestSolveServerDefaults(t *testing.T) {
	srv := newServer(t, tsp.WithMaxExpansions(1))
	resp, _ := post(t, srv.URL+"/v1/solve/dfs", squareBody)
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

	// Zero means unlimited and cannot lift the server cap.
	resp, raw := post(t, srv.URL+"/v1/solve/dfs?max_expansions=0", squareBody)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode, string(raw))

	// Values above the cap are clamped to it.
	resp, raw = post(t, srv.URL+"/v1/solve/dfs?max_expansions=1000000", squareBody)
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode, string(raw))
}

func TestSolveUncappedServerAcceptsZero(t *testing.T) {
	srv := newServer(t)
	resp, raw := post(t, srv.URL+"/v1/solve/dfs?max_expansions=0", squareBody)
	assert.Equal(t, http.StatusOK, resp.StatusCode, string(raw))

	// A request can still tighten an uncapped server.
	resp, raw = post(t, srv.URL+"/v1/solve/dfs?max_expansions=1", squareBody)
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode, string(raw))
}

func TestSolveCanceledRequest(t *testing.T) {
	s := api.New(log.New(io.Discard))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	req := httptest.NewRequest(http.MethodPost, "/v1/solve/ucs", strings.NewReader(squareBody)).WithContext(ctx)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code, rec.Body.String())
}

func TestSolveBodyTooLarge(t *testing.T) {
	var b strings.Builder
	for b.Len() <= int(api.DefaultMaxBody) {
		b.WriteString("Alpha Beta 1\n")
	}
	h := api.New(log.New(io.Discard)).Handler()
	req := httptest.NewRequest(http.MethodPost, "/v1/solve/dfs", strings.NewReader(b.String()))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}

func TestMetrics(t *testing.T) {
	srv := newServer(t)
	resp, _ := post(t, srv.URL+"/v1/solve/dfs", squareBody)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp, _ = post(t, srv.URL+"/v1/solve/ucs", "A B 1\nC D 1\n")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp, _ = post(t, srv.URL+"/v1/solve/ucs?max_expansions=1", squareBody)
	require.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

	mresp, err := http.Get(srv.URL + "/metrics")
	require.NoError(t, err)
	defer mresp.Body.Close()
	raw, err := io.ReadAll(mresp.Body)
	require.NoError(t, err)

	body := string(raw)
	assert.Contains(t, body, `tspsearch_solves_total{algo="dfs",result="ok"} 1`)
	assert.Contains(t, body, `tspsearch_solves_total{algo="ucs",result="unreachable"} 1`)
	assert.Contains(t, body, `tspsearch_solves_total{algo="ucs",result="limit"} 1`)
	assert.Contains(t, body, "tspsearch_solve_duration_seconds_bucket")
}
