package main

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const filingJSON = `{"success":true,"data":{
	"html":"<p>Revenue 1,250,000</p>",
	"rawHtml":"<html><body><p>Revenue 1,250,000</p></body></html>",
	"metadata":{"title":"Apple 10-K","description":"Annual report","language":"en-US","sourceURL":"https://www.sec.gov/aapl.htm","statusCode":200}}}`

type fakeFirecrawl struct {
	srv      *httptest.Server
	requests atomic.Int32
}

func newFakeFirecrawl(t *testing.T) *fakeFirecrawl {
	t.Helper()
	f := &fakeFirecrawl{}
	f.srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		f.requests.Add(1)
		switch r.Header.Get("Authorization") {
		case "Bearer good-key":
			w.Write([]byte(filingJSON))
		case "Bearer limited-key":
			w.WriteHeader(http.StatusTooManyRequests)
			w.Write([]byte(`{"success":false,"error":"rate limited"}`))
		default:
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"success":false,"error":"Unauthorized"}`))
		}
	}))
	t.Cleanup(f.srv.Close)
	return f
}

// setupCLI points the CLI at a temp store and the fake server.
func setupCLI(t *testing.T, baseURL string) string {
	t.Helper()
	dir := t.TempDir()
	origDir, _ := os.Getwd()
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { os.Chdir(origDir) })

	storePath := filepath.Join(dir, "state", "credentials.db")
	t.Setenv("XBRL_STORE_PATH", storePath)
	t.Setenv("XBRL_FIRECRAWL_BASE_URL", baseURL)
	t.Setenv("XBRL_FIRECRAWL_KEY", "")
	t.Setenv("XBRL_LOG_LEVEL", "error")
	return dir
}

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetIn(nil)
		rootCmd.SetArgs(nil)
	})
	err := rootCmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestCLI_ConnectFetchDisconnect(t *testing.T) {
	fc := newFakeFirecrawl(t)
	setupCLI(t, fc.srv.URL)

	out, err := execute(t, "", "status")
	require.NoError(t, err)
	assert.Contains(t, out, "not connected")

	out, err = execute(t, "", "connect", "good-key")
	require.NoError(t, err)
	assert.Contains(t, out, "API key validated successfully!")

	out, err = execute(t, "", "status")
	require.NoError(t, err)
	assert.Contains(t, out, "connected (********)")

	out, err = execute(t, "", "fetch", "apple-10k-2023", "--format", "summary", "--output", "")
	require.NoError(t, err)
	assert.Contains(t, out, "Apple 10-K")
	assert.Contains(t, out, "American English (en-US)")
	assert.Contains(t, out, "https://www.sec.gov/aapl.htm")

	out, err = execute(t, "", "disconnect")
	require.NoError(t, err)
	assert.Contains(t, out, "disconnected")

	before := fc.requests.Load()
	_, err = execute(t, "", "fetch", "https://example.com/report.htm", "--format", "summary", "--output", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "API key not found")
	assert.Equal(t, before, fc.requests.Load(), "no request without a credential")
}

func TestCLI_ConnectRejectsInvalidKey(t *testing.T) {
	fc := newFakeFirecrawl(t)
	setupCLI(t, fc.srv.URL)

	_, err := execute(t, "", "connect", "bad-key")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid API key")

	out, err := execute(t, "", "status")
	require.NoError(t, err)
	assert.Contains(t, out, "not connected")
}

func TestCLI_ConnectIndeterminate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	base := srv.URL
	srv.Close()
	setupCLI(t, base)

	_, err := execute(t, "", "connect", "good-key")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to validate API key")
}

func TestCLI_ConnectFromStdin(t *testing.T) {
	fc := newFakeFirecrawl(t)
	setupCLI(t, fc.srv.URL)

	out, err := execute(t, "  good-key  \n", "connect", "-")
	require.NoError(t, err)
	assert.Contains(t, out, "validated successfully")
}

func TestCLI_ConnectEmptyKey(t *testing.T) {
	fc := newFakeFirecrawl(t)
	setupCLI(t, fc.srv.URL)

	_, err := execute(t, "", "connect", "   ")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "please enter your Firecrawl API key")
	assert.Zero(t, fc.requests.Load())
}

func TestCLI_FetchRemoteFailure(t *testing.T) {
	fc := newFakeFirecrawl(t)
	setupCLI(t, fc.srv.URL)

	// Store the key directly; validation would fail on the rate limit.
	st, err := initStoreAt(t, os.Getenv("XBRL_STORE_PATH"))
	require.NoError(t, err)
	require.NoError(t, st.Save(context.Background(), "limited-key"))
	require.NoError(t, st.Close())

	_, err = execute(t, "", "fetch", "https://example.com/report.htm", "--format", "summary", "--output", "")
	require.Error(t, err)
	assert.Equal(t, "rate limited", err.Error())
}

func TestCLI_FetchToFile(t *testing.T) {
	fc := newFakeFirecrawl(t)
	dir := setupCLI(t, fc.srv.URL)

	_, err := execute(t, "", "connect", "good-key")
	require.NoError(t, err)

	path := filepath.Join(dir, "filing.html")
	_, err = execute(t, "", "fetch", "https://www.sec.gov/aapl.htm", "--format", "raw", "--output", path)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "<html><body><p>Revenue 1,250,000</p></body></html>", string(data))
}

func TestCLI_FetchBadFormat(t *testing.T) {
	fc := newFakeFirecrawl(t)
	setupCLI(t, fc.srv.URL)

	_, err := execute(t, "", "fetch", "apple-10k-2023", "--format", "pdf", "--output", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--format must be one of")
	assert.Zero(t, fc.requests.Load())
}

func TestCLI_SamplesAndPreview(t *testing.T) {
	setupCLI(t, "http://unused.local")

	out, err := execute(t, "", "samples", "--format", "table")
	require.NoError(t, err)
	assert.Contains(t, out, "apple-10k-2023")

	out, err = execute(t, "", "samples", "--format", "yaml")
	require.NoError(t, err)
	assert.Contains(t, out, "source_url: https://www.sec.gov/")

	out, err = execute(t, "", "preview", "--view", "code", "--locale", "en")
	require.NoError(t, err)
	assert.Contains(t, out, "company-financials.xbrl")
	assert.Contains(t, out, "<us-gaap:Revenue")

	out, err = execute(t, "", "preview", "--view", "visual", "--locale", "en")
	require.NoError(t, err)
	assert.Contains(t, out, "1,250,000 USD")

	_, err = execute(t, "", "preview", "--view", "chart", "--locale", "en")
	require.Error(t, err)
}

func TestCLI_SamplesFromConfigFile(t *testing.T) {
	dir := setupCLI(t, "http://unused.local")
	path := filepath.Join(dir, "samples.yaml")
	require.NoError(t, os.WriteFile(path, []byte("documents:\n  - name: custom-filing\n    source_url: https://example.com/custom.htm\n    description: Custom\n"), 0o644))
	t.Setenv("XBRL_SAMPLES_FILE", path)

	out, err := execute(t, "", "samples", "--format", "table")
	require.NoError(t, err)
	assert.Contains(t, out, "custom-filing")
	assert.NotContains(t, out, "apple-10k-2023")
}

func TestCLI_Waitlist(t *testing.T) {
	var posts atomic.Int32
	hook := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		posts.Add(1)
	}))
	t.Cleanup(hook.Close)

	setupCLI(t, "http://unused.local")
	t.Setenv("XBRL_WAITLIST_URL", hook.URL)

	out, err := execute(t, "", "waitlist", "--email", "student@example.edu")
	require.NoError(t, err)
	assert.Contains(t, out, "You're on the list!")
	assert.Equal(t, int32(1), posts.Load())

	_, err = execute(t, "", "waitlist", "--email", "nope")
	require.Error(t, err)
	assert.Equal(t, int32(1), posts.Load())
}
