package services

import (
	"testing"

	"doppelx/models"

	"github.com/stretchr/testify/require"
)

func TestComputeActivityStats(t *testing.T) {
	activities := []models.Activity{
		{StudyHours: 2, Score: 70, SleepHours: 7, TasksCompleted: 3},
		{StudyHours: 3.5, Score: 85, SleepHours: 6, TasksCompleted: 1},
		{StudyHours: 1, Score: 55, SleepHours: 0, TasksCompleted: 0}, // zero sleep counts as 8
	}

	stats := ComputeActivityStats(activities)
	require.Equal(t, 3, stats.TotalActivities)
	require.InDelta(t, 6.5, stats.TotalStudyHours, 1e-9)
	require.Equal(t, 4, stats.TotalTasksCompleted)
	require.InDelta(t, 70, stats.AverageScore, 1e-9)
	require.InDelta(t, 7, stats.AverageSleepHours, 1e-9)
}

func TestComputeActivityStatsEmpty(t *testing.T) {
	stats := ComputeActivityStats(nil)
	require.Equal(t, 0, stats.TotalActivities)
	require.Zero(t, stats.TotalStudyHours)
	require.Zero(t, stats.AverageScore)
	require.Equal(t, float64(8), stats.AverageSleepHours)
}

func TestComputeActivityStatsRounding(t *testing.T) {
	activities := []models.Activity{
		{Score: 70, SleepHours: 7},
		{Score: 71, SleepHours: 7},
		{Score: 71, SleepHours: 8},
	}

	stats := ComputeActivityStats(activities)
	require.InDelta(t, 70.67, stats.AverageScore, 1e-9)
	require.InDelta(t, 7.33, stats.AverageSleepHours, 1e-9)
}

func TestComputeActivityStatsScoreInRange(t *testing.T) {
	activities := []models.Activity{
		{Score: 0}, {Score: 100}, {Score: 42},
	}

	stats := ComputeActivityStats(activities)
	require.GreaterOrEqual(t, stats.AverageScore, float64(0))
	require.LessOrEqual(t, stats.AverageScore, float64(100))
}
