package randutil

import (
	"math/rand"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLockedRand_sameSeedSameSequence(t *testing.T) {
	t.Parallel()

	a := NewLockedRand(rand.NewSource(2147483647))
	b := NewLockedRand(rand.NewSource(2147483647))

	for i := 0; i < 100; i++ {
		require.Equal(t, a.Intn(1000), b.Intn(1000))
	}
}

func TestLockedRand_concurrent(t *testing.T) {
	t.Parallel()

	lr := NewLockedRand(rand.NewSource(CryptoSeed()))

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 1000; j++ {
				n := lr.Intn(10)
				if n < 0 || n >= 10 {
					t.Errorf("Intn(10) returned %d", n)
					return
				}
			}
		}()
	}
	wg.Wait()
}

func TestCryptoSeed_variation(t *testing.T) {
	t.Parallel()

	seen := make(map[int64]bool)
	for i := 0; i < 10; i++ {
		seen[CryptoSeed()] = true
	}
	require.True(t, len(seen) > 1, "CryptoSeed returned the same value repeatedly")
}
