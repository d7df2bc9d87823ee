package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/numrent/numrent/internal/domain"
	"github.com/redis/go-redis/v9"
)

// ServiceCache реализует domain.ServiceCache поверх Redis.
// Write-through снимок каталога: ключ на пару (провайдер, страна),
// поле хеша — код сервиса. Снимок перезаписывается при каждом успешном
// листинге каталога, поэтому покупка и расчет цены читают ту же цену,
// которую видел пользователь в листинге.
type ServiceCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewServiceCache создает новый ServiceCache
func NewServiceCache(client *redis.Client, ttl time.Duration) *ServiceCache {
	return &ServiceCache{
		client: client,
		ttl:    ttl,
	}
}

func cacheKey(provider, country string) string {
	return fmt.Sprintf("services:%s:%s", provider, country)
}

// Put записывает снимок каталога
func (c *ServiceCache) Put(ctx context.Context, entries []*domain.CachedService) error {
	if len(entries) == 0 {
		return nil
	}

	pipe := c.client.Pipeline()
	keys := make(map[string]struct{})
	for _, entry := range entries {
		data, err := json.Marshal(entry)
		if err != nil {
			return fmt.Errorf("cache: failed to marshal service %q: %w", entry.ServiceCode, err)
		}
		key := cacheKey(entry.Provider, entry.CountryCode)
		pipe.HSet(ctx, key, entry.ServiceCode, data)
		keys[key] = struct{}{}
	}
	for key := range keys {
		pipe.Expire(ctx, key, c.ttl)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("cache: failed to store services snapshot: %w", err)
	}

	return nil
}

// Get читает закэшированную цену. Возвращает nil, nil при промахе.
func (c *ServiceCache) Get(ctx context.Context, provider, country, service string) (*domain.CachedService, error) {
	data, err := c.client.HGet(ctx, cacheKey(provider, country), service).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("cache: failed to get service %s/%s/%s: %w", provider, country, service, err)
	}

	entry := &domain.CachedService{}
	if err := json.Unmarshal(data, entry); err != nil {
		return nil, fmt.Errorf("cache: failed to unmarshal service %s/%s/%s: %w", provider, country, service, err)
	}

	return entry, nil
}
