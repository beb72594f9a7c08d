package httpserver

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordle/apps/solver/internal/store"
	"github.com/robalobadob/wordle/apps/solver/internal/words"
)

// testLexicon returns five words sharing no letters, so every flow
// through the API is deterministic.
func testLexicon() *words.Lexicon {
	return &words.Lexicon{Entries: []words.Entry{
		{Word: "ABCDE", Rank: 90, Noun: words.NounNone, Verb: words.VerbNone},
		{Word: "FGHIJ", Rank: 80, Noun: words.NounNone, Verb: words.VerbNone},
		{Word: "KLMNO", Rank: 70, Noun: words.NounNone, Verb: words.VerbNone},
		{Word: "PQRST", Rank: 60, Noun: words.NounNone, Verb: words.VerbNone},
		{Word: "UVWXY", Rank: 50, Noun: words.NounNone, Verb: words.VerbNone},
	}}
}

func newTestServer(t *testing.T) *Server {
	t.Helper()
	return New(store.NewMemoryStore(), testLexicon())
}

// doReq runs one request through the full middleware stack.
func doReq(s *Server, method, path, body string, hdr map[string]string) *httptest.ResponseRecorder {
	var rd io.Reader
	if body != "" {
		rd = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, rd)
	for k, v := range hdr {
		req.Header.Set(k, v)
	}
	rr := httptest.NewRecorder()
	s.Router().ServeHTTP(rr, req)
	return rr
}

func TestHealthAndBanner(t *testing.T) {
	s := newTestServer(t)

	rr := doReq(s, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"ok":true`)
	assert.Contains(t, rr.Header().Get("Content-Type"), "application/json")

	rr = doReq(s, http.MethodGet, "/", "", nil)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "wordle-solver")
}

func TestDebugWords(t *testing.T) {
	s := newTestServer(t)
	rr := doReq(s, http.MethodGet, "/debug/words", "", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	var counts map[string]int
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &counts))
	assert.Equal(t, 5, counts["words"])
	assert.Zero(t, counts["skipped"])
	assert.Zero(t, counts["excluded"])
}

func TestNotFoundIsJSON(t *testing.T) {
	s := newTestServer(t)
	rr := doReq(s, http.MethodGet, "/nope", "", nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Contains(t, rr.Body.String(), `"not_found"`)
	assert.Contains(t, rr.Body.String(), "/nope")
}

func TestCORSConfiguredOrigin(t *testing.T) {
	t.Setenv("CLIENT_ORIGIN", "https://app.example.com")
	s := newTestServer(t)

	rr := doReq(s, http.MethodOptions, "/api/session", "", nil)
	assert.Equal(t, http.StatusNoContent, rr.Code, "preflight short-circuits")
	assert.Equal(t, "https://app.example.com", rr.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", rr.Header().Get("Access-Control-Allow-Credentials"))
}

func TestCORSDefaultOrigin(t *testing.T) {
	t.Setenv("CLIENT_ORIGIN", "")
	s := newTestServer(t)

	rr := doReq(s, http.MethodGet, "/health", "", nil)
	assert.Equal(t, "http://localhost:5173", rr.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "Origin", rr.Header().Get("Vary"))
}

func TestGenID(t *testing.T) {
	a, b := genID(), genID()
	assert.Len(t, a, 22)
	assert.NotEqual(t, a, b)
	assert.NotContains(t, a, "=")
}
