package api_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.uber.org/mock/gomock"

	"mca/internal/api"
	"mca/internal/config"
	"mca/pkg/logger"
	mockstorage "mca/pkg/storage/mock"
)

func TestMain(m *testing.M) {
	logger.Setup(logger.DevelopmentEnvironment)
	m.Run()
}

func newTestServer(t *testing.T) (*mockstorage.MockStorage, http.Handler) {
	t.Helper()

	ctrl := gomock.NewController(t)
	st := mockstorage.NewMockStorage(ctrl)

	cfg := &config.Config{}
	cfg.HTTP.Addr = ":0"
	cfg.HTTP.RequestTimeout = time.Second
	cfg.HTTP.MetricsPath = "/metrics"

	opts := api.NewOptions(cfg)
	registry := prometheus.NewRegistry()
	opts.Registerer = registry
	opts.Gatherer = registry

	srv, err := api.NewServer(api.Deps{Storage: st}, opts)
	require.NoError(t, err)
	require.Equal(t, ":0", srv.Addr)

	return st, srv.Handler
}

func get(h http.Handler, path string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))

	return rec
}

func TestServer_Healthz(t *testing.T) {
	st, h := newTestServer(t)

	st.EXPECT().Ping(gomock.Any()).Return(nil)
	rec := get(h, "/healthz")
	require.Equal(t, http.StatusOK, rec.Code)
	require.NotEmpty(t, rec.Header().Get("X-Request-Id"))

	st.EXPECT().Ping(gomock.Any()).Return(errors.New("connection refused"))
	rec = get(h, "/healthz")
	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestServer_MetricsExposeOtelInstruments(t *testing.T) {
	_, h := newTestServer(t)

	counter, err := otel.Meter("mca/internal/api_test").Int64Counter("api_test.probes")
	require.NoError(t, err)
	counter.Add(context.Background(), 1)

	rec := get(h, "/metrics")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "api_test_probes")
}

func TestServer_Pprof(t *testing.T) {
	_, h := newTestServer(t)

	require.Equal(t, http.StatusOK, get(h, "/debug/pprof/").Code)
	require.Equal(t, http.StatusOK, get(h, "/debug/pprof/cmdline").Code)
}

func TestServer_UnknownPath(t *testing.T) {
	_, h := newTestServer(t)

	require.Equal(t, http.StatusNotFound, get(h, "/v1/fundings").Code)
}
