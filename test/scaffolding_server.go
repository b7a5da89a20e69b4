package test

import (
	"follower_bot/server"
	"follower_bot/shared"
	"follower_bot/test/mocks"
	"github.com/gorilla/mux"
	"go.uber.org/mock/gomock"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

const testApiKey = "k3y-for-tests"

type serverHarness struct {
	cfg         *shared.Config
	mockLogger  *mocks.MockILogger
	mockMetrics *mocks.MockIMetrics
	mockEngine  *mocks.MockIEngine
}

func setupServerTest(t *testing.T) (*gomock.Controller, *serverHarness) {
	ctrl := gomock.NewController(t)
	h := serverHarness{
		cfg:         shared.DefaultConfig(),
		mockLogger:  mocks.NewMockILogger(ctrl),
		mockMetrics: mocks.NewMockIMetrics(ctrl),
		mockEngine:  mocks.NewMockIEngine(ctrl),
	}
	h.cfg.AppName = "bot-under-test"
	h.cfg.AppEnv = "test"
	h.cfg.Secrets.ApiKey = testApiKey
	setupDummyLogger(h.mockLogger)
	setupDummyMetrics(h.mockMetrics)
	return ctrl, &h
}

func (h *serverHarness) router() *mux.Router {
	groups := []server.IHandlerGroup{
		server.NewPublicHandlerGroup(h.cfg, h.mockLogger, h.mockMetrics, h.mockEngine),
		server.NewControlHandlerGroup(h.cfg, h.mockLogger, h.mockMetrics, h.mockEngine),
		server.NewMetricsHandlerGroup(h.cfg, h.mockLogger),
	}
	return server.NewMux(groups, h.mockLogger)
}

// do sends a request through the router; headers come in name, value pairs.
func (h *serverHarness) do(method, path, body string, headers ...string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	rr := httptest.NewRecorder()
	h.router().ServeHTTP(rr, req)
	return rr
}

func (h *serverHarness) post(path, body string) *httptest.ResponseRecorder {
	return h.do(http.MethodPost, path, body, "X-API-Key", testApiKey)
}
