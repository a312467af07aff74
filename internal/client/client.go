// Package client — адаптеры вызовов сервисов loans и cards.
//
// Каждый вызов делает ровно одну попытку и передаёт идентификатор корреляции.
// Успех — 2xx и непустое тело. Всё остальное (другой статус, пустое тело,
// сетевая ошибка, таймаут) означает отсутствие данных, а не ошибку.
// Ошибка возвращается только для 2xx с телом, которое не удалось разобрать.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/Totarae/EazyBank/internal/apperr"
	"github.com/Totarae/EazyBank/internal/correlation"
	"github.com/Totarae/EazyBank/internal/metrics"
	"github.com/Totarae/EazyBank/internal/model"
	"go.uber.org/zap"
)

const (
	fetchPath   = "/api/fetch"
	maxBodySize = 1 << 20
)

// Client — HTTP-клиент одного соседнего сервиса.
type Client struct {
	target  string
	baseURL string
	timeout time.Duration
	http    *http.Client
	logger  *zap.Logger
}

// New создаёт клиент сервиса target. timeout ограничивает каждый вызов целиком.
func New(target, baseURL string, timeout time.Duration, logger *zap.Logger) *Client {
	return &Client{
		target:  target,
		baseURL: strings.TrimRight(baseURL, "/"),
		timeout: timeout,
		http:    &http.Client{},
		logger:  logger.With(zap.String("target", target)),
	}
}

// fetch запрашивает запись T по номеру телефона.
// Нулевое значение T после разбора считается пустым ответом.
func fetch[T comparable](ctx context.Context, c *Client, correlationID, mobileNumber string) (*T, bool, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	start := time.Now()
	defer func() {
		metrics.DownstreamCallDuration.WithLabelValues(c.target).Observe(time.Since(start).Seconds())
	}()

	endpoint := c.baseURL + fetchPath + "?" + url.Values{"mobileNumber": {mobileNumber}}.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		c.unavailable(correlationID, fmt.Sprintf("build request: %v", err))
		return nil, false, nil
	}
	correlation.Inject(req.Header, correlationID)
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		c.unavailable(correlationID, err.Error())
		return nil, false, nil
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodySize))
		c.unavailable(correlationID, fmt.Sprintf("status %d", resp.StatusCode))
		return nil, false, nil
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		c.unavailable(correlationID, fmt.Sprintf("read body: %v", err))
		return nil, false, nil
	}

	body = bytes.TrimSpace(body)
	if len(body) == 0 || bytes.Equal(body, []byte("null")) {
		c.absent(correlationID)
		return nil, false, nil
	}

	var rec T
	if err := json.Unmarshal(body, &rec); err != nil {
		metrics.DownstreamCallsTotal.WithLabelValues(c.target, metrics.OutcomeMalformed).Inc()
		malformed := apperr.MalformedDownstreamResponse(c.target, err)
		c.logger.Warn("Malformed downstream response",
			zap.String("correlation_id", correlationID), zap.Error(malformed))
		return nil, false, malformed
	}

	var zero T
	if rec == zero {
		c.absent(correlationID)
		return nil, false, nil
	}

	metrics.DownstreamCallsTotal.WithLabelValues(c.target, metrics.OutcomeSuccess).Inc()
	return &rec, true, nil
}

func (c *Client) unavailable(correlationID, reason string) {
	metrics.DownstreamCallsTotal.WithLabelValues(c.target, metrics.OutcomeUnavailable).Inc()
	c.logger.Warn("Downstream call failed",
		zap.String("correlation_id", correlationID),
		zap.Error(apperr.DownstreamUnavailable(c.target, reason)))
}

func (c *Client) absent(correlationID string) {
	metrics.DownstreamCallsTotal.WithLabelValues(c.target, metrics.OutcomeAbsent).Inc()
	c.logger.Debug("Downstream returned empty body", zap.String("correlation_id", correlationID))
}

// LoansClient — адаптер сервиса loans.
type LoansClient struct {
	*Client
}

func NewLoansClient(baseURL string, timeout time.Duration, logger *zap.Logger) *LoansClient {
	return &LoansClient{Client: New("loans", baseURL, timeout, logger)}
}

func (c *LoansClient) FetchLoan(ctx context.Context, correlationID, mobileNumber string) (*model.Loan, bool, error) {
	return fetch[model.Loan](ctx, c.Client, correlationID, mobileNumber)
}

// CardsClient — адаптер сервиса cards.
type CardsClient struct {
	*Client
}

func NewCardsClient(baseURL string, timeout time.Duration, logger *zap.Logger) *CardsClient {
	return &CardsClient{Client: New("cards", baseURL, timeout, logger)}
}

func (c *CardsClient) FetchCard(ctx context.Context, correlationID, mobileNumber string) (*model.Card, bool, error) {
	return fetch[model.Card](ctx, c.Client, correlationID, mobileNumber)
}
