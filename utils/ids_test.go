package utils

import (
	"strconv"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBookingIDStrictlyIncreasing(t *testing.T) {
	orig := nowMilli
	defer func() { nowMilli = orig }()
	nowMilli = func() int64 { return 1700000000000 }

	first := NewBookingID()
	second := NewBookingID()
	assert.True(t, strings.HasPrefix(first, BookingIDPrefix))

	a, err := strconv.ParseInt(strings.TrimPrefix(first, BookingIDPrefix), 10, 64)
	require.NoError(t, err)
	b, err := strconv.ParseInt(strings.TrimPrefix(second, BookingIDPrefix), 10, 64)
	require.NoError(t, err)
	assert.Greater(t, b, a)
}

func TestNewBookingIDConcurrentUnique(t *testing.T) {
	const n = 200
	var (
		wg  sync.WaitGroup
		mu  sync.Mutex
		ids = make(map[string]struct{}, n)
	)
	for range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			id := NewBookingID()
			mu.Lock()
			ids[id] = struct{}{}
			mu.Unlock()
		}()
	}
	wg.Wait()
	assert.Len(t, ids, n)
}

func TestNewID(t *testing.T) {
	assert.NotEqual(t, NewID(), NewID())
	assert.Len(t, NewID(), 36)
}
