package gateway

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Totarae/EazyBank/internal/correlation"
	"github.com/stretchr/testify/assert"
)

func TestFilter_HandlerWritesNothing(t *testing.T) {
	h := Filter(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(correlation.Header, "abc-123")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "abc-123", rec.Header().Get(correlation.Header))
}

func TestFilter_MutatesForwardedRequest(t *testing.T) {
	var forwarded, fromCtx string
	h := Filter(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		forwarded = r.Header.Get(correlation.Header)
		fromCtx = correlation.FromContext(r.Context())
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	id := rec.Header().Get(correlation.Header)
	assert.NotEmpty(t, id)
	assert.Equal(t, id, forwarded)
	assert.Equal(t, id, fromCtx)
}

func TestFilter_StampsBeforeStatus(t *testing.T) {
	h := Filter(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set(correlation.Header, "other")
		w.WriteHeader(http.StatusTeapot)
		// после отправки статуса заголовки уже не меняются
		w.Header().Set(correlation.Header, "late")
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(correlation.Header, "abc-123")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusTeapot, rec.Code)
	assert.Equal(t, "abc-123", rec.Result().Header.Get(correlation.Header))
}

func TestMatch(t *testing.T) {
	g := &Gateway{routes: []Route{{Name: "loans", Prefix: "/eazybank/loans"}}}

	for path, want := range map[string]bool{
		"/eazybank/loans":           true,
		"/eazybank/loans/api/fetch": true,
		"/eazybank/loansx":          false,
		"/eazybank":                 false,
	} {
		_, ok := g.match(path)
		assert.Equal(t, want, ok, path)
	}
}
