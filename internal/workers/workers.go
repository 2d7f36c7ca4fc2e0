// Package workers bounds the amount of CPU-bound password hashing work
// running at any moment. bcrypt at the configured cost burns tens of
// milliseconds of CPU per call; without a limit a burst of registrations
// could occupy every runnable goroutine and starve unrelated requests.
package workers

import (
	"context"
	"runtime"

	"golang.org/x/crypto/bcrypt"
)

// HashPool serializes bcrypt operations through a fixed-size semaphore.
// The zero value is not usable; construct with NewHashPool.
type HashPool struct {
	sem chan struct{}
}

// NewHashPool creates a pool allowing at most size concurrent bcrypt
// operations. A non-positive size defaults to GOMAXPROCS.
func NewHashPool(size int) *HashPool {
	if size <= 0 {
		size = runtime.GOMAXPROCS(0)
	}

	return &HashPool{sem: make(chan struct{}, size)}
}

// Hash derives a bcrypt digest of password at the given cost, waiting for a
// pool slot first. Returns the context error if ctx is cancelled while
// waiting.
func (p *HashPool) Hash(ctx context.Context, password string, cost int) (string, error) {
	if err := p.acquire(ctx); err != nil {
		return "", err
	}
	defer p.release()

	digest, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}

	return string(digest), nil
}

// Compare verifies password against the bcrypt digest hashedPassword,
// waiting for a pool slot first. Returns bcrypt.ErrMismatchedHashAndPassword
// on mismatch and the context error if ctx is cancelled while waiting.
func (p *HashPool) Compare(ctx context.Context, hashedPassword, password string) error {
	if err := p.acquire(ctx); err != nil {
		return err
	}
	defer p.release()

	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
}

func (p *HashPool) acquire(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case p.sem <- struct{}{}:
		return nil
	}
}

func (p *HashPool) release() {
	<-p.sem
}
