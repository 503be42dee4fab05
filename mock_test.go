package eolfetch

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type mockResponse struct {
	Body string
	Code int
}

// mockTransport serves canned responses keyed by full request URL, recording
// the order in which paths were requested and the last request seen.
type mockTransport struct {
	lastReq   *http.Request
	err       error
	responses map[string]*mockResponse
	requested []string
}

func (m *mockTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	m.requested = append(m.requested, req.URL.Path)
	m.lastReq = req

	if m.err != nil {
		return nil, m.err
	}

	if resp, ok := m.responses[req.URL.String()]; ok {
		return newMockResponse(resp.Code, resp.Body), nil
	}

	// Default 404 response.
	return newMockResponse(http.StatusNotFound, "Not Found"), nil
}

func newMockResponse(statusCode int, body string) *http.Response {
	return &http.Response{
		StatusCode: statusCode,
		Status:     fmt.Sprintf("%d %s", statusCode, http.StatusText(statusCode)),
		Body:       io.NopCloser(strings.NewReader(body)),
		Header:     http.Header{},
	}
}

// newTestClient returns a client backed by transport, with status lines
// captured in the returned buffer.
func newTestClient(t *testing.T, transport *mockTransport) (*Client, *bytes.Buffer) {
	t.Helper()

	sink := &bytes.Buffer{}

	c, err := New(
		WithHTTPClient(&http.Client{Timeout: time.Second, Transport: transport}),
		WithSink(sink),
	)
	require.NoError(t, err)

	return c, sink
}

func productURL(product string) string {
	return DefaultBaseURL + "/products/" + product
}

func rawCycles(t *testing.T, body string) (cycles []json.RawMessage) {
	t.Helper()
	require.NoError(t, json.Unmarshal([]byte(body), &cycles))

	return
}

func mustParseURL(t *testing.T, raw string) *url.URL {
	t.Helper()

	u, err := url.Parse(raw)
	require.NoError(t, err)

	return u
}
