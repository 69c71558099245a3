package blobstore

import (
	"context"

	"golang.org/x/sync/semaphore"
	"golang.org/x/time/rate"
)

// ThrottleConfig holds limits for a Throttled store.
type ThrottleConfig struct {
	// OpsPerSec is the maximum number of store operations per second.
	// If 0, unlimited.
	OpsPerSec float64

	// MaxConcurrent is the maximum number of in-flight store operations.
	// If 0, unlimited.
	MaxConcurrent int64
}

// Throttled wraps a BlobStore with an operation rate limit and a concurrency
// cap. Useful against remote backends with request quotas.
type Throttled struct {
	inner   BlobStore
	limiter *rate.Limiter // nil if unlimited
	sem     *semaphore.Weighted
}

// NewThrottled creates a Throttled store around inner.
func NewThrottled(inner BlobStore, cfg ThrottleConfig) *Throttled {
	t := &Throttled{inner: inner}
	if cfg.OpsPerSec > 0 {
		t.limiter = rate.NewLimiter(rate.Limit(cfg.OpsPerSec), 1)
	}
	if cfg.MaxConcurrent > 0 {
		t.sem = semaphore.NewWeighted(cfg.MaxConcurrent)
	}
	return t
}

// acquire blocks until an operation slot and rate token are available.
func (t *Throttled) acquire(ctx context.Context) (release func(), err error) {
	if t.sem != nil {
		if err := t.sem.Acquire(ctx, 1); err != nil {
			return nil, err
		}
	}
	if t.limiter != nil {
		if err := t.limiter.Wait(ctx); err != nil {
			if t.sem != nil {
				t.sem.Release(1)
			}
			return nil, err
		}
	}
	return func() {
		if t.sem != nil {
			t.sem.Release(1)
		}
	}, nil
}

// Open opens a blob for reading. Only the Open call itself is throttled, not
// subsequent reads through the returned Blob.
func (t *Throttled) Open(ctx context.Context, name string) (Blob, error) {
	release, err := t.acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer release()
	return t.inner.Open(ctx, name)
}

// Put writes a blob atomically.
func (t *Throttled) Put(ctx context.Context, name string, data []byte) error {
	release, err := t.acquire(ctx)
	if err != nil {
		return err
	}
	defer release()
	return t.inner.Put(ctx, name, data)
}

// Delete removes a blob.
func (t *Throttled) Delete(ctx context.Context, name string) error {
	release, err := t.acquire(ctx)
	if err != nil {
		return err
	}
	defer release()
	return t.inner.Delete(ctx, name)
}

// List returns all blob names with the given prefix, sorted.
func (t *Throttled) List(ctx context.Context, prefix string) ([]string, error) {
	release, err := t.acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer release()
	return t.inner.List(ctx, prefix)
}
