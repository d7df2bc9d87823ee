// Package provider содержит адаптеры upstream-провайдеров виртуальных
// номеров. Адаптеры — чистые HTTP-клиенты: весь доступ к кошельку и
// заказам остается на стороне движка.
package provider

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/numrent/numrent/internal/domain"
	"golang.org/x/time/rate"
)

const (
	// Дедлайн на один upstream HTTP вызов
	upstreamTimeout = 30 * time.Second

	// Окно аренды номера по умолчанию
	defaultRentalWindow = 20 * time.Minute
)

// Config содержит настройки одного адаптера
type Config struct {
	BaseURL string
	APIKey  string
	// CoinToUSD — курс монеты провайдера к USD (используется 5sim)
	CoinToUSD float64
	// RPS — лимит запросов в секунду к upstream API
	RPS float64
}

// newHTTPClient создает HTTP клиент с ретраями на транспортные ошибки.
// Ретраи безопасны: все операции адаптеров идемпотентны на стороне
// провайдера, кроме покупки, у которой ретраев нет.
func newHTTPClient() *http.Client {
	rc := retryablehttp.NewClient()
	rc.RetryMax = 2
	rc.RetryWaitMin = 500 * time.Millisecond
	rc.RetryWaitMax = 3 * time.Second
	rc.Logger = nil
	rc.HTTPClient.Timeout = upstreamTimeout
	return rc.StandardClient()
}

// newBuyClient создает клиент без ретраев для покупки номера:
// повтор getNumber может купить второй номер
func newBuyClient() *http.Client {
	return &http.Client{Timeout: upstreamTimeout}
}

// newLimiter создает token bucket для троттлинга upstream вызовов
func newLimiter(rps float64) *rate.Limiter {
	if rps <= 0 {
		rps = 5
	}
	return rate.NewLimiter(rate.Limit(rps), int(rps)+1)
}

// Registry хранит адаптеры и разрешает каноничные ID и алиасы
type Registry struct {
	byName  map[string]domain.ProviderAdapter
	ordered []domain.ProviderAdapter
}

// NewRegistry создает реестр адаптеров
func NewRegistry(adapters ...domain.ProviderAdapter) *Registry {
	r := &Registry{byName: make(map[string]domain.ProviderAdapter)}
	for _, a := range adapters {
		r.byName[a.ID()] = a
		for _, alias := range a.Aliases() {
			r.byName[alias] = a
		}
		r.ordered = append(r.ordered, a)
	}
	return r
}

// Get возвращает адаптер по ID или алиасу
func (r *Registry) Get(name string) (domain.ProviderAdapter, error) {
	a, ok := r.byName[name]
	if !ok {
		return nil, fmt.Errorf("provider %q: %w", name, domain.ErrUnknownProvider)
	}
	return a, nil
}

// All возвращает адаптеры в порядке регистрации
func (r *Registry) All() []domain.ProviderAdapter {
	return r.ordered
}

// waitLimiter ждет слот token bucket с учетом контекста
func waitLimiter(ctx context.Context, limiter *rate.Limiter) error {
	if err := limiter.Wait(ctx); err != nil {
		return fmt.Errorf("%w: %s", domain.ErrProviderUnavailable, err)
	}
	return nil
}

// transportErr оборачивает транспортную ошибку в ErrProviderUnavailable
func transportErr(provider string, err error) error {
	return fmt.Errorf("%s: %w: %s", provider, domain.ErrProviderUnavailable, err)
}

// unexpectedStatus оборачивает неожиданный HTTP статус upstream
func unexpectedStatus(provider string, code int) error {
	if code >= 500 {
		return fmt.Errorf("%s: %w: upstream status %d", provider, domain.ErrProviderUnavailable, code)
	}
	return fmt.Errorf("%s: %w: upstream status %d", provider, domain.ErrProviderRejected, code)
}

// normalizePhone приводит номер к виду E.164
func normalizePhone(raw string) string {
	if raw == "" || raw[0] == '+' {
		return raw
	}
	return "+" + raw
}
