package history

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSource struct {
	list  []string
	err   error
	calls int
}

func (f *fakeSource) Fetch(ctx context.Context) ([]string, error) {
	f.calls++
	return f.list, f.err
}

type fakeCache struct {
	snapshots map[string][]string
	snapErr   error
	saveErr   error
	pruneErr  error
	saved     []string
	pruned    []string
}

func newFakeCache() *fakeCache {
	return &fakeCache{snapshots: map[string][]string{}}
}

func (f *fakeCache) Snapshot(ctx context.Context, date string) ([]string, error) {
	if f.snapErr != nil {
		return nil, f.snapErr
	}
	return f.snapshots[date], nil
}

func (f *fakeCache) Save(ctx context.Context, date string, list []string) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.snapshots[date] = append([]string(nil), list...)
	f.saved = append(f.saved, date)
	return nil
}

func (f *fakeCache) Prune(ctx context.Context, date string) error {
	if f.pruneErr != nil {
		return f.pruneErr
	}
	f.pruned = append(f.pruned, date)
	return nil
}

var testNow = time.Date(2026, 8, 23, 12, 0, 0, 0, time.UTC)

func TestDateKey(t *testing.T) {
	assert.Equal(t, "2026-08-23", DateKey(testNow))

	// 05:00 in Jakarta is still the previous UTC day.
	jakarta := time.FixedZone("WIB", 7*60*60)
	assert.Equal(t, "2026-08-22", DateKey(time.Date(2026, 8, 23, 5, 0, 0, 0, jakarta)))
}

func TestLoadCacheHit(t *testing.T) {
	src := &fakeSource{list: []string{"FRESH"}}
	cache := newFakeCache()
	cache.snapshots["2026-08-23"] = []string{"CIGAR", "CRANE"}

	svc := &Service{Source: src, Cache: cache}
	got, err := svc.Load(context.Background(), testNow, false)
	require.NoError(t, err)
	assert.Equal(t, []string{"CIGAR", "CRANE"}, got)
	assert.Zero(t, src.calls, "a same-day snapshot skips the network")
}

func TestLoadCacheMissFetchesAndFills(t *testing.T) {
	src := &fakeSource{list: []string{"CRANE", "SLATE"}}
	cache := newFakeCache()

	svc := &Service{Source: src, Cache: cache}
	got, err := svc.Load(context.Background(), testNow, false)
	require.NoError(t, err)
	assert.Equal(t, []string{"CRANE", "SLATE"}, got)
	assert.Equal(t, 1, src.calls)
	assert.Equal(t, []string{"2026-08-23"}, cache.saved)
	assert.Equal(t, []string{"2026-08-23"}, cache.pruned, "older snapshots are dropped after a fill")
}

func TestLoadEmptySnapshotCountsAsMiss(t *testing.T) {
	src := &fakeSource{list: []string{"CRANE"}}
	cache := newFakeCache()
	cache.snapshots["2026-08-23"] = nil

	svc := &Service{Source: src, Cache: cache}
	got, err := svc.Load(context.Background(), testNow, false)
	require.NoError(t, err)
	assert.Equal(t, []string{"CRANE"}, got)
	assert.Equal(t, 1, src.calls)
}

func TestLoadRefreshBypassesRead(t *testing.T) {
	src := &fakeSource{list: []string{"FRESH"}}
	cache := newFakeCache()
	cache.snapshots["2026-08-23"] = []string{"STALE"}

	svc := &Service{Source: src, Cache: cache}
	got, err := svc.Load(context.Background(), testNow, true)
	require.NoError(t, err)
	assert.Equal(t, []string{"FRESH"}, got)
	assert.Equal(t, 1, src.calls)
	assert.Equal(t, []string{"FRESH"}, cache.snapshots["2026-08-23"],
		"a forced fetch still updates the cache")
}

func TestLoadCacheReadErrorDegrades(t *testing.T) {
	src := &fakeSource{list: []string{"CRANE"}}
	cache := newFakeCache()
	cache.snapErr = errors.New("disk on fire")

	svc := &Service{Source: src, Cache: cache}
	got, err := svc.Load(context.Background(), testNow, false)
	require.NoError(t, err, "cache trouble must not block the list")
	assert.Equal(t, []string{"CRANE"}, got)
	assert.Equal(t, 1, src.calls)
}

func TestLoadCacheWriteErrorDegrades(t *testing.T) {
	src := &fakeSource{list: []string{"CRANE"}}
	cache := newFakeCache()
	cache.saveErr = errors.New("disk full")

	svc := &Service{Source: src, Cache: cache}
	got, err := svc.Load(context.Background(), testNow, false)
	require.NoError(t, err)
	assert.Equal(t, []string{"CRANE"}, got)
	assert.Empty(t, cache.pruned, "no prune after a failed save")
}

func TestLoadNilCache(t *testing.T) {
	src := &fakeSource{list: []string{"CRANE"}}
	svc := &Service{Source: src}

	got, err := svc.Load(context.Background(), testNow, false)
	require.NoError(t, err)
	assert.Equal(t, []string{"CRANE"}, got)
}

func TestLoadFetchErrorPropagates(t *testing.T) {
	boom := errors.New("archive unreachable")
	svc := &Service{Source: &fakeSource{err: boom}, Cache: newFakeCache()}

	_, err := svc.Load(context.Background(), testNow, false)
	assert.ErrorIs(t, err, boom)
}
