package test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/omnisig/go-txbuilder/internal/api"
	"github.com/omnisig/go-txbuilder/internal/api/router"
	"github.com/omnisig/go-txbuilder/internal/config"
)

// WithTestServer runs the closure against a fully-routed in-memory server.
func WithTestServer(t *testing.T, closure func(s *api.Server)) {
	t.Helper()

	s := api.NewServer(config.DefaultServiceConfigFromEnv())
	router.Init(s)

	closure(s)
}

// PerformRequest serves a single request against the server's handler chain
// without binding a socket. body may be nil, a raw string, raw []byte or any
// JSON-marshalable value.
func PerformRequest(t *testing.T, s *api.Server, method string, path string, body interface{}, headers http.Header) *httptest.ResponseRecorder {
	t.Helper()

	var reqBody []byte
	switch v := body.(type) {
	case nil:
	case string:
		reqBody = []byte(v)
	case []byte:
		reqBody = v
	default:
		var err error
		reqBody, err = json.Marshal(v)
		if err != nil {
			t.Fatalf("failed to marshal request body: %v", err)
		}
	}

	req := httptest.NewRequest(method, path, bytes.NewReader(reqBody))
	if headers != nil {
		req.Header = headers
	}
	if reqBody != nil && req.Header.Get(echoHeaderContentType) == "" {
		req.Header.Set(echoHeaderContentType, "application/json")
	}

	res := httptest.NewRecorder()
	s.Echo.ServeHTTP(res, req)

	return res
}

const echoHeaderContentType = "Content-Type"

// ParseResponseBody unmarshals the recorded JSON body into v.
func ParseResponseBody(t *testing.T, res *httptest.ResponseRecorder, v interface{}) {
	t.Helper()

	if err := json.Unmarshal(res.Body.Bytes(), v); err != nil {
		t.Fatalf("failed to parse response body: %v", err)
	}
}
