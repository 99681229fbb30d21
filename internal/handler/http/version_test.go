package http

import (
	"net/http"
	"testing"

	"github.com/MKhiriev/go-cbt-forms/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetServerVersion(t *testing.T) {
	h := newTestHandler(&service.Services{
		AppInfoService: &mockAppInfoService{version: "1.4.2"},
	})

	rr := executeHandler(h.getServerVersion, http.MethodGet, "/api/version/", "")

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "text/plain", rr.Header().Get("Content-Type"))
	assert.Equal(t, "1.4.2", rr.Body.String())
}
