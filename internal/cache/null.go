package cache

import (
	"context"
	"time"
)

// NullCache is the default backend of `spritegen serve`: every sprite is
// rendered on demand and nothing is kept between requests.
type NullCache struct{}

// NewNullCache returns a backend that misses on every lookup.
func NewNullCache() Cache { return NullCache{} }

func (NullCache) Get(context.Context, string) ([]byte, bool, error) { return nil, false, nil }

func (NullCache) Set(context.Context, string, []byte, time.Duration) error { return nil }

func (NullCache) Delete(context.Context, string) error { return nil }

func (NullCache) Close() error { return nil }
