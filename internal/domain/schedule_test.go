package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultScheduleTargets(t *testing.T) {
	t.Parallel()

	s := DefaultSchedule()
	require.NoError(t, s.Validate())

	assert.Equal(t, 8*time.Hour+42*time.Minute, s.Target(time.Monday))
	assert.Equal(t, 8*time.Hour+42*time.Minute, s.Target(time.Thursday))
	assert.Equal(t, 6*time.Hour+30*time.Minute, s.Target(time.Friday))
	assert.Zero(t, s.Target(time.Sunday))
}

func TestScheduleValidate(t *testing.T) {
	t.Parallel()

	assert.ErrorContains(t, Schedule{time.Monday: -time.Minute}.Validate(), "negative target")
	assert.ErrorContains(t, Schedule{time.Monday: 24 * time.Hour}.Validate(), "does not fit in a day")
	assert.NoError(t, Schedule{}.Validate())
}

func TestParseWeekday(t *testing.T) {
	t.Parallel()

	day, err := ParseWeekday(" Friday ")
	require.NoError(t, err)
	assert.Equal(t, time.Friday, day)

	day, err = ParseWeekday("sunday")
	require.NoError(t, err)
	assert.Equal(t, time.Sunday, day)

	_, err = ParseWeekday("fri")
	assert.ErrorContains(t, err, "unknown weekday")
}
