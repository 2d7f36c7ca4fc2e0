package workers

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashPool_HashAndCompare(t *testing.T) {
	pool := NewHashPool(1)
	ctx := context.Background()

	digest, err := pool.Hash(ctx, "s3cret-password", bcrypt.MinCost)
	require.NoError(t, err)
	require.NotEmpty(t, digest)

	assert.NoError(t, pool.Compare(ctx, digest, "s3cret-password"))

	err = pool.Compare(ctx, digest, "wrong-password")
	assert.True(t, errors.Is(err, bcrypt.ErrMismatchedHashAndPassword))
}

func TestHashPool_DistinctSaltsPerHash(t *testing.T) {
	pool := NewHashPool(2)
	ctx := context.Background()

	first, err := pool.Hash(ctx, "same-password", bcrypt.MinCost)
	require.NoError(t, err)
	second, err := pool.Hash(ctx, "same-password", bcrypt.MinCost)
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestHashPool_CancelledContext(t *testing.T) {
	pool := NewHashPool(1)

	// occupy the only slot so the next acquire has to wait
	pool.sem <- struct{}{}
	defer func() { <-pool.sem }()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := pool.Hash(ctx, "password", bcrypt.MinCost)
	assert.ErrorIs(t, err, context.Canceled)

	err = pool.Compare(ctx, "$2a$04$whatever", "password")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestHashPool_ConcurrentUse(t *testing.T) {
	pool := NewHashPool(2)
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			digest, err := pool.Hash(ctx, "password", bcrypt.MinCost)
			assert.NoError(t, err)
			assert.NoError(t, pool.Compare(ctx, digest, "password"))
		}()
	}
	wg.Wait()
}
