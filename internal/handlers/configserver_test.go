package handlers_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/Totarae/EazyBank/internal/config"
	"github.com/Totarae/EazyBank/internal/configserver"
	"github.com/Totarae/EazyBank/internal/handlers"
	"github.com/Totarae/EazyBank/internal/model"
	"github.com/Totarae/EazyBank/internal/router"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func newConfigServer(t *testing.T, dir string) *httptest.Server {
	t.Helper()
	logger := zaptest.NewLogger(t)

	r := router.NewRouter("configserver", logger, handlers.NewAdminHandler("1.0", model.ContactInfo{}).Register)
	handlers.NewConfigServerHandler(configserver.NewRepository(dir, logger), logger).Register(r)

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv
}

func TestConfigServer_Environment(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "cards.yml"), []byte("contact:\n  email: cards@eazybank.com\n"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "cards-prod.yml"), []byte("build_version: \"2.0\"\n"), 0o600))
	srv := newConfigServer(t, dir)

	env, err := config.FetchEnvironment(context.Background(), &http.Client{}, srv.URL, "cards", "prod")
	require.NoError(t, err)

	assert.Equal(t, "cards", env.Name)
	require.Len(t, env.PropertySources, 2)
	assert.Equal(t, "2.0", env.PropertySources[0].Source["build_version"])
	assert.Equal(t, "cards@eazybank.com", env.PropertySources[1].Source["contact.email"])

	// служебные эндпоинты под /api не перекрываются маршрутом {application}/{profile}
	resp := do(t, http.MethodGet, srv.URL+"/api/build-info", "", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestConfigServer_InvalidName(t *testing.T) {
	srv := newConfigServer(t, t.TempDir())

	resp := do(t, http.MethodGet, srv.URL+"/cards/pr%20od", "", nil)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "VALIDATION_FAILED", decode[model.ErrorResponse](t, resp).ErrorCode)
}
