package handler

import (
	"testing"

	"github.com/MKhiriev/go-cbt-forms/internal/config"
	"github.com/MKhiriev/go-cbt-forms/internal/logger"
	"github.com/MKhiriev/go-cbt-forms/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHandlers_HTTPAddressConfigured(t *testing.T) {
	handlers, err := NewHandlers(&service.Services{}, config.Server{HTTPAddress: ":8080"}, logger.Nop())
	require.NoError(t, err)
	assert.NotNil(t, handlers.HTTP)
}

func TestNewHandlers_NoAddressConfigured(t *testing.T) {
	_, err := NewHandlers(&service.Services{}, config.Server{}, logger.Nop())
	require.ErrorIs(t, err, errNoHandlersAreCreated)
}
