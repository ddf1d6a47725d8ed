package toml

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/bnema/officehours/internal/domain"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepository(t *testing.T, historyPath string) *Repository {
	t.Helper()

	config := viper.New()
	config.Set("history.path", historyPath)

	repo, err := NewRepository(config)
	require.NoError(t, err)
	return repo
}

func TestRepositoryRoundTrip(t *testing.T) {
	t.Parallel()

	repo := newTestRepository(t, filepath.Join(t.TempDir(), "history.toml"))

	first := domain.DailyReport{
		Date:    "2017-01-17",
		Report:  domain.Report{Start: "08:00", End: "17:30", Total: "09:30", Working: "08:30", Resting: "01:00"},
		Events:  4,
		SavedAt: time.Date(2017, 1, 17, 18, 0, 0, 0, time.UTC),
	}
	second := domain.DailyReport{
		Date:    "2017-01-18",
		Report:  domain.Report{Start: "09:00", End: "15:30", Total: "06:30", Working: "06:30", Resting: "00:00"},
		Events:  2,
		SavedAt: time.Date(2017, 1, 18, 16, 0, 0, 0, time.UTC),
	}

	require.NoError(t, repo.Save(context.Background(), first))
	require.NoError(t, repo.Save(context.Background(), second))

	got, err := repo.GetByDate(context.Background(), first.Date)
	require.NoError(t, err)
	assert.Equal(t, first, got)

	reports, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.ElementsMatch(t, []domain.DailyReport{first, second}, reports)
}

func TestRepositorySaveReplacesSameDate(t *testing.T) {
	t.Parallel()

	repo := newTestRepository(t, filepath.Join(t.TempDir(), "history.toml"))

	require.NoError(t, repo.Save(context.Background(), domain.DailyReport{Date: "2017-01-17", Events: 2}))
	require.NoError(t, repo.Save(context.Background(), domain.DailyReport{Date: "2017-01-17", Events: 6}))

	reports, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, reports, 1)
	assert.Equal(t, 6, reports[0].Events)
}

func TestRepositorySaveRejectsInvalidDate(t *testing.T) {
	t.Parallel()

	repo := newTestRepository(t, filepath.Join(t.TempDir(), "history.toml"))

	err := repo.Save(context.Background(), domain.DailyReport{Date: "17/01/2017"})
	assert.ErrorContains(t, err, "invalid report date")
}

func TestRepositorySaveCreatesDefaultPathAndEnforcesPermissions(t *testing.T) {
	homeDir := t.TempDir()
	t.Setenv("HOME", homeDir)

	repo, err := NewRepository(viper.New())
	require.NoError(t, err)

	require.NoError(t, repo.Save(context.Background(), domain.DailyReport{Date: "2017-01-17"}))

	historyPath := filepath.Join(homeDir, ".officehours", "history.toml")
	info, err := os.Stat(historyPath)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestRepositoryMissingFileBehaviors(t *testing.T) {
	t.Parallel()

	repo := newTestRepository(t, filepath.Join(t.TempDir(), "missing", "history.toml"))

	reports, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, reports)

	_, err = repo.GetByDate(context.Background(), "2017-01-17")
	require.ErrorIs(t, err, domain.ErrReportNotFound)
}

func TestRepositoryListMalformedTOMLReturnsError(t *testing.T) {
	t.Parallel()

	historyPath := filepath.Join(t.TempDir(), "history.toml")
	require.NoError(t, os.WriteFile(historyPath, []byte("reports = ["), 0o600))

	repo := newTestRepository(t, historyPath)

	_, err := repo.List(context.Background())
	require.Error(t, err)
	assert.ErrorContains(t, err, "decode history file")
}

func TestRepositorySaveCanceledContextReturnsContextError(t *testing.T) {
	t.Parallel()

	repo := newTestRepository(t, filepath.Join(t.TempDir(), "history.toml"))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := repo.Save(ctx, domain.DailyReport{Date: "2017-01-17"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestRepositoryConcurrentSavesAcrossInstancesPreserveAllDays(t *testing.T) {
	t.Parallel()

	historyPath := filepath.Join(t.TempDir(), "history.toml")
	repoA := newTestRepository(t, historyPath)
	repoB := newTestRepository(t, historyPath)

	const perRepoWrites = 25
	start := make(chan struct{})
	errCh := make(chan error, perRepoWrites*2)
	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		<-start
		for i := 1; i <= perRepoWrites; i++ {
			errCh <- repoA.Save(context.Background(), domain.DailyReport{Date: fmt.Sprintf("2017-01-%02d", i)})
		}
	}()

	go func() {
		defer wg.Done()
		<-start
		for i := 1; i <= perRepoWrites; i++ {
			errCh <- repoB.Save(context.Background(), domain.DailyReport{Date: fmt.Sprintf("2017-02-%02d", i)})
		}
	}()

	close(start)
	wg.Wait()
	close(errCh)

	for err := range errCh {
		require.NoError(t, err)
	}

	reports, err := repoA.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, reports, perRepoWrites*2)
}

func TestRepositorySaveSerializedTOMLIncludesVersion(t *testing.T) {
	t.Parallel()

	historyPath := filepath.Join(t.TempDir(), "history.toml")
	repo := newTestRepository(t, historyPath)

	require.NoError(t, repo.Save(context.Background(), domain.DailyReport{
		Date:   "2017-01-17",
		Report: domain.Report{Working: "08:30"},
	}))

	data, err := os.ReadFile(historyPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "version = 1")
	assert.Contains(t, string(data), "[[reports]]")
	assert.Contains(t, string(data), "08:30")
}

func TestRepositoryFutureSchemaVersionReturnsError(t *testing.T) {
	t.Parallel()

	historyPath := filepath.Join(t.TempDir(), "history.toml")
	require.NoError(t, os.WriteFile(historyPath, []byte(strings.Join([]string{
		"version = 999",
		"",
		"reports = []",
		"",
	}, "\n")), 0o600))

	repo := newTestRepository(t, historyPath)

	_, err := repo.List(context.Background())
	require.Error(t, err)
	assert.ErrorContains(t, err, "unsupported history schema version")
}
