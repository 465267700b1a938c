package scheduler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddJobValidation(t *testing.T) {
	s, err := New()
	require.NoError(t, err)
	defer s.Stop()

	_, err = s.AddJob("", RolloverCron, func() {})
	assert.ErrorIs(t, err, ErrEmptyJobName)

	_, err = s.AddJob("job", "   ", func() {})
	assert.ErrorIs(t, err, ErrEmptyCronExpr)

	_, err = s.AddJob("job", "not a cron", func() {})
	assert.Error(t, err)
}

func TestRegisterRollover(t *testing.T) {
	s, err := New()
	require.NoError(t, err)
	defer s.Stop()

	job, err := s.RegisterRollover()
	require.NoError(t, err)
	assert.Equal(t, "season-rollover", job.Name())
}
