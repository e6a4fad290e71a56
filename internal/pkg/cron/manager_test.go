package cron

import (
	"Inkwell/internal/job"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterJobs(t *testing.T) {
	mgr := NewCronManager(job.NewContentStatsJob(nil))
	require.NoError(t, mgr.RegisterJobs())
	assert.Equal(t, 1, mgr.Entries())
}
