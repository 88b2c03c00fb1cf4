package debug

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Japjeet07/ChefMaker-sub000/internal/metrics"
	"github.com/Japjeet07/ChefMaker-sub000/internal/status"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealthzFollowsState(t *testing.T) {
	machine := status.NewMachine(nil)
	srv := httptest.NewServer(NewRouter(metrics.New().Registry, machine))
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/healthz")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)

	require.NoError(t, machine.Transition(status.Ready, ""))
	resp, err = http.Get(srv.URL + "/healthz")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestMetricsEndpoint(t *testing.T) {
	m := metrics.New()
	m.MessageSent()

	rec := httptest.NewRecorder()
	NewRouter(m.Registry, status.NewMachine(nil)).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "chefchat_messages_sent_total 1")
}
