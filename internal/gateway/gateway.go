// Package gateway — пограничный шлюз: маршрутизация по префиксу пути и фильтр
// идентификатора корреляции вокруг неё.
package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httputil"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/Totarae/EazyBank/internal/apperr"
	"github.com/Totarae/EazyBank/internal/correlation"
	"github.com/Totarae/EazyBank/internal/metrics"
	"github.com/Totarae/EazyBank/internal/model"
	"go.uber.org/zap"
)

// Route — правило маршрутизации: запросы с префиксом Prefix уходят на Target,
// префикс при этом отрезается.
type Route struct {
	Name   string
	Prefix string
	Target *url.URL
}

// DefaultRoutes строит таблицу /eazybank/{accounts,loans,cards}/**.
func DefaultRoutes(accountsURL, loansURL, cardsURL string) ([]Route, error) {
	targets := []struct{ name, raw string }{
		{"accounts", accountsURL},
		{"loans", loansURL},
		{"cards", cardsURL},
	}

	routes := make([]Route, 0, len(targets))
	for _, t := range targets {
		u, err := url.Parse(t.raw)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return nil, fmt.Errorf("route %s: invalid target %q", t.name, t.raw)
		}
		routes = append(routes, Route{Name: t.name, Prefix: "/eazybank/" + t.name, Target: u})
	}
	return routes, nil
}

type routeKey struct{}

// Gateway проксирует запросы на сервисы по таблице маршрутов.
type Gateway struct {
	routes  []Route
	timeout time.Duration
	proxy   *httputil.ReverseProxy
	logger  *zap.Logger
}

// New создаёт шлюз. timeout ограничивает каждый проксируемый запрос целиком.
func New(routes []Route, timeout time.Duration, logger *zap.Logger) *Gateway {
	g := &Gateway{
		routes:  routes,
		timeout: timeout,
		logger:  logger,
	}
	g.proxy = &httputil.ReverseProxy{
		Rewrite:      g.rewrite,
		ErrorHandler: g.proxyError,
	}
	return g
}

// match ищет маршрут по префиксу пути; префикс совпадает только целым сегментом
func (g *Gateway) match(path string) (Route, bool) {
	for _, rt := range g.routes {
		if path == rt.Prefix || strings.HasPrefix(path, rt.Prefix+"/") {
			return rt, true
		}
	}
	return Route{}, false
}

func (g *Gateway) rewrite(pr *httputil.ProxyRequest) {
	rt, _ := pr.In.Context().Value(routeKey{}).(Route)

	path := strings.TrimPrefix(pr.In.URL.Path, rt.Prefix)
	if path == "" {
		path = "/"
	}
	pr.Out.URL.Path = path
	pr.Out.URL.RawPath = ""
	pr.SetURL(rt.Target)
	pr.SetXForwarded()

	correlation.Inject(pr.Out.Header, correlation.FromContext(pr.In.Context()))
}

func (g *Gateway) proxyError(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusBadGateway
	if errors.Is(err, context.DeadlineExceeded) {
		status = http.StatusGatewayTimeout
	}

	g.logger.Warn("Proxy request failed",
		zap.String("uri", r.RequestURI),
		zap.Int("status", status),
		zap.String("correlation_id", correlation.FromContext(r.Context())),
		zap.Error(err))

	writeError(w, r, status, apperr.CodeDownstreamUnavailable, http.StatusText(status))
}

// ServeHTTP выбирает маршрут и проксирует запрос. Неизвестный префикс — 404.
func (g *Gateway) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	rt, ok := g.match(r.URL.Path)
	if !ok {
		writeError(w, r, http.StatusNotFound, apperr.CodeNotFound, "No route found for path "+r.URL.Path)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), g.timeout)
	defer cancel()

	sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
	g.proxy.ServeHTTP(sw, r.WithContext(context.WithValue(ctx, routeKey{}, rt)))

	metrics.GatewayProxiedTotal.WithLabelValues(rt.Name, strconv.Itoa(sw.status)).Inc()
}

func writeError(w http.ResponseWriter, r *http.Request, status int, code apperr.Code, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(model.ErrorResponse{
		APIPath:      "uri=" + r.URL.Path,
		ErrorCode:    string(code),
		ErrorMessage: msg,
		ErrorTime:    time.Now().UTC(),
	})
}

type statusWriter struct {
	http.ResponseWriter
	status int
}

func (sw *statusWriter) WriteHeader(code int) {
	sw.status = code
	sw.ResponseWriter.WriteHeader(code)
}

func (sw *statusWriter) Unwrap() http.ResponseWriter {
	return sw.ResponseWriter
}
