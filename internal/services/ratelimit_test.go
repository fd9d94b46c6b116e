package services

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testLimits = map[string]int{ClassImageProcessing: 2, ClassAPI: 5}

func TestMemoryRateLimiter_Allow(t *testing.T) {
	now := time.Date(2025, 1, 1, 12, 0, 10, 0, time.UTC)
	windowEnd := time.Date(2025, 1, 1, 12, 1, 0, 0, time.UTC)
	l := NewMemoryRateLimiter(testLimits, time.Minute)
	l.now = func() time.Time { return now }
	ctx := context.Background()

	d, err := l.Allow(ctx, "1.2.3.4", ClassImageProcessing)
	require.NoError(t, err)
	assert.True(t, d.Allowed)
	assert.Equal(t, 2, d.Limit)
	assert.Equal(t, 1, d.Remaining)
	assert.Equal(t, windowEnd, d.ResetAt)

	d, _ = l.Allow(ctx, "1.2.3.4", ClassImageProcessing)
	assert.True(t, d.Allowed)
	assert.Equal(t, 0, d.Remaining)

	d, _ = l.Allow(ctx, "1.2.3.4", ClassImageProcessing)
	assert.False(t, d.Allowed)
	assert.Equal(t, 0, d.Remaining)

	// other identifiers and classes have their own windows
	d, _ = l.Allow(ctx, "5.6.7.8", ClassImageProcessing)
	assert.True(t, d.Allowed)
	d, _ = l.Allow(ctx, "1.2.3.4", ClassAPI)
	assert.True(t, d.Allowed)
	assert.Equal(t, 4, d.Remaining)

	// a new window starts after reset
	now = windowEnd
	d, _ = l.Allow(ctx, "1.2.3.4", ClassImageProcessing)
	assert.True(t, d.Allowed)
	assert.Equal(t, 1, d.Remaining)
	assert.Equal(t, windowEnd.Add(time.Minute), d.ResetAt)
}

func TestMemoryRateLimiter_UnknownClassUsesAPIBudget(t *testing.T) {
	l := NewMemoryRateLimiter(testLimits, time.Minute)

	d, err := l.Allow(context.Background(), "ip", "other")
	require.NoError(t, err)
	assert.Equal(t, 5, d.Limit)
}

func TestMemoryRateLimiter_Concurrent(t *testing.T) {
	l := NewMemoryRateLimiter(map[string]int{ClassAPI: 50}, time.Hour)

	var wg sync.WaitGroup
	var allowed atomic.Int32
	for i := 0; i < 80; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if d, err := l.Allow(context.Background(), "ip", ClassAPI); err == nil && d.Allowed {
				allowed.Add(1)
			}
		}()
	}
	wg.Wait()

	d, err := l.Allow(context.Background(), "ip", ClassAPI)
	require.NoError(t, err)
	assert.False(t, d.Allowed)
	assert.LessOrEqual(t, allowed.Load(), int32(50))
}

func TestRedisRateLimiter_Allow(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	counter := NewMockRateLimitCounter(ctrl)
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	l := NewRedisRateLimiter(counter, testLimits, time.Minute)
	l.now = func() time.Time { return now }
	ctx := context.Background()

	counter.EXPECT().Increment(ctx, ClassImageProcessing, "ip", time.Minute).Return(int64(3), 20*time.Second, nil)

	d, err := l.Allow(ctx, "ip", ClassImageProcessing)
	require.NoError(t, err)
	assert.False(t, d.Allowed)
	assert.Equal(t, 0, d.Remaining)
	assert.Equal(t, now.Add(20*time.Second), d.ResetAt)
}

func TestRedisRateLimiter_FailsOpen(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	counter := NewMockRateLimitCounter(ctrl)
	l := NewRedisRateLimiter(counter, testLimits, time.Minute)

	counter.EXPECT().Increment(gomock.Any(), ClassAPI, "ip", time.Minute).Return(int64(0), time.Duration(0), errors.New("redis down"))

	d, err := l.Allow(context.Background(), "ip", ClassAPI)
	assert.Error(t, err)
	assert.True(t, d.Allowed)
	assert.Equal(t, 5, d.Remaining)
}
