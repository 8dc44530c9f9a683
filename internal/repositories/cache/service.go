// Package cache wraps Redis for the read side of the anti-fraud API.
// Committed invoices are immutable, so cached verdicts never need
// invalidation, they simply expire.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"antifraud/internal/models"

	"github.com/redis/go-redis/v9"
)

type CacheService struct {
	client *redis.Client
	ttl    time.Duration
}

func NewCacheService(client *redis.Client, defaultTTL time.Duration) *CacheService {
	return &CacheService{
		client: client,
		ttl:    defaultTTL,
	}
}

// Base operations
func (s *CacheService) Set(ctx context.Context, key string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal cache value: %w", err)
	}
	return s.client.Set(ctx, key, data, s.ttl).Err()
}

func (s *CacheService) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	data, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return false, nil
		}
		return false, fmt.Errorf("failed to get cache value: %w", err)
	}

	if err := json.Unmarshal(data, dest); err != nil {
		return false, fmt.Errorf("failed to unmarshal cache value: %w", err)
	}
	return true, nil
}

func (s *CacheService) Delete(ctx context.Context, keys ...string) error {
	return s.client.Del(ctx, keys...).Err()
}

// Invoice caching
func (s *CacheService) CacheInvoice(ctx context.Context, invoice *models.Invoice) error {
	if invoice == nil {
		return fmt.Errorf("cannot cache nil invoice")
	}
	return s.Set(ctx, invoiceKey(invoice.ID), invoice)
}

func (s *CacheService) GetInvoice(ctx context.Context, id string) (*models.Invoice, bool, error) {
	var invoice models.Invoice
	found, err := s.Get(ctx, invoiceKey(id), &invoice)
	if err != nil || !found {
		return nil, false, err
	}
	return &invoice, true, nil
}

func invoiceKey(id string) string {
	return fmt.Sprintf("invoice:%s", id)
}

func (s *CacheService) HealthCheck(ctx context.Context) error {
	if err := s.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis connection failed: %w", err)
	}
	return nil
}

func (s *CacheService) Close() error {
	return s.client.Close()
}
