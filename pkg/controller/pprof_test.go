package controller_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"mca/pkg/controller"
)

func TestPprofMux(t *testing.T) {
	mux := controller.PprofMux()

	for _, path := range []string{"/", "/cmdline", "/goroutine", "/heap"} {
		t.Run(path, func(t *testing.T) {
			rec := httptest.NewRecorder()
			mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "http://pprof.local"+path, nil))

			require.Equal(t, http.StatusOK, rec.Code)
			require.NotEmpty(t, rec.Header().Get("Content-Type"))
		})
	}
}
