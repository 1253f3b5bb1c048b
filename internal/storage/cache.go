// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/canonical/access-service/internal/logging"
	"github.com/canonical/access-service/internal/tracing"
)

var _ LegacyStoreInterface = (*LegacyCache)(nil)

// LegacyCache memoizes legacy subscriber lookups by email for a bounded time.
// Failed lookups are never cached.
type LegacyCache struct {
	store LegacyStoreInterface
	cache *expirable.LRU[string, bool]

	tracer tracing.TracingInterface
	logger logging.LoggerInterface
}

func (c *LegacyCache) IsLegacySubscriber(ctx context.Context, email string) (bool, error) {
	ctx, span := c.tracer.Start(ctx, "storage.LegacyCache.IsLegacySubscriber")
	defer span.End()

	if legacy, ok := c.cache.Get(email); ok {
		return legacy, nil
	}

	legacy, err := c.store.IsLegacySubscriber(ctx, email)
	if err != nil {
		return false, err
	}

	c.cache.Add(email, legacy)

	return legacy, nil
}

func NewLegacyCache(store LegacyStoreInterface, size int, ttl time.Duration, tracer tracing.TracingInterface, logger logging.LoggerInterface) *LegacyCache {
	if size <= 0 {
		size = 1
	}

	c := new(LegacyCache)
	c.store = store
	c.cache = expirable.NewLRU[string, bool](size, nil, ttl)
	c.tracer = tracer
	c.logger = logger

	return c
}
