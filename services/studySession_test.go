package services

import (
	"testing"

	"doppelx/models"

	"github.com/stretchr/testify/require"
)

func TestComputeStudyStats(t *testing.T) {
	sessions := []models.StudySession{
		{Type: "pomodoro", Duration: 1500, Completed: true},
		{Type: "pomodoro", Duration: 1200, Completed: false},
		{Type: "infinity", Duration: 3600, Completed: true},
		{Type: "infinity", Duration: 300, Completed: false},
	}

	stats := ComputeStudyStats(sessions)
	require.Equal(t, 4, stats.TotalSessions)
	require.Equal(t, 6600, stats.TotalTime)
	require.Equal(t, 2, stats.CompletedSessions)
	require.Equal(t, 2, stats.PomodoroSessions)
	require.Equal(t, 2, stats.InfinitySessions)
	require.InDelta(t, 1650, stats.AverageSessionTime, 1e-9)
}

func TestComputeStudyStatsEmpty(t *testing.T) {
	stats := ComputeStudyStats(nil)
	require.Equal(t, 0, stats.TotalSessions)
	require.Equal(t, 0, stats.TotalTime)
	require.Zero(t, stats.AverageSessionTime)
}
