package file

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/bnema/officehours/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogReadAllMissingFileIsEmpty(t *testing.T) {
	t.Parallel()

	log, err := NewLog(filepath.Join(t.TempDir(), "missing.log"), time.UTC)
	require.NoError(t, err)

	timepoints, err := log.ReadAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, timepoints)
}

func TestLogAppendThenReadAll(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "nested", "session.log")
	log, err := NewLog(path, time.UTC)
	require.NoError(t, err)

	want := []domain.Timepoint{
		{Instant: time.Date(2017, 1, 17, 8, 0, 0, 0, time.UTC), Kind: domain.EventStart},
		{Instant: time.Date(2017, 1, 17, 12, 0, 0, 0, time.UTC), Kind: domain.EventLock},
		{Instant: time.Date(2017, 1, 17, 12, 40, 0, 0, time.UTC), Kind: domain.EventUnlock},
	}
	for _, tp := range want {
		require.NoError(t, log.Append(context.Background(), tp))
	}

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "2017/01/17-08:00 Start\n2017/01/17-12:00 Lock\n2017/01/17-12:40 Unlock\n", string(data))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(logFileMode), info.Mode().Perm())

	got, err := log.ReadAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestLogAppendFormatsInLogLocation(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "session.log")
	cet := time.FixedZone("CET", 3600)
	log, err := NewLog(path, cet)
	require.NoError(t, err)

	require.NoError(t, log.Append(context.Background(), domain.Timepoint{
		Instant: time.Date(2017, 1, 17, 7, 0, 0, 0, time.UTC),
		Kind:    domain.EventStart,
	}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "2017/01/17-08:00 Start\n", string(data))
}

func TestLogReadAllReportsMalformedLine(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "session.log")
	require.NoError(t, os.WriteFile(path, []byte("2017/01/17-08:00 Start\n2017/01/17-09:00 Coffee\n"), 0o600))

	log, err := NewLog(path, time.UTC)
	require.NoError(t, err)

	_, err = log.ReadAll(context.Background())
	require.ErrorIs(t, err, domain.ErrMalformedLogLine)
	assert.ErrorContains(t, err, "line 2")
	assert.ErrorContains(t, err, path)
}

func TestLogAppendRejectsInvalidKind(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "session.log")
	log, err := NewLog(path, time.UTC)
	require.NoError(t, err)

	err = log.Append(context.Background(), domain.Timepoint{Instant: time.Now(), Kind: "Nap"})
	require.ErrorIs(t, err, domain.ErrMalformedLogLine)

	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))
}

func TestLogHonoursCanceledContext(t *testing.T) {
	t.Parallel()

	log, err := NewLog(filepath.Join(t.TempDir(), "session.log"), time.UTC)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = log.ReadAll(ctx)
	require.ErrorIs(t, err, context.Canceled)
	require.ErrorIs(t, log.Append(ctx, domain.Timepoint{Kind: domain.EventStart}), context.Canceled)
}

func TestNewLogRejectsEmptyPath(t *testing.T) {
	t.Parallel()

	_, err := NewLog("  ", time.UTC)
	assert.ErrorContains(t, err, "event log path is empty")
}

func TestLogConcurrentAppendsKeepWholeLines(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "session.log")
	first, err := NewLog(path, time.UTC)
	require.NoError(t, err)
	second, err := NewLog(path, time.UTC)
	require.NoError(t, err)

	instant := time.Date(2017, 1, 17, 8, 0, 0, 0, time.UTC)
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			log := first
			if i%2 == 1 {
				log = second
			}
			assert.NoError(t, log.Append(context.Background(), domain.Timepoint{Instant: instant, Kind: domain.EventLock}))
		}(i)
	}
	wg.Wait()

	got, err := first.ReadAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, got, 20)
}
