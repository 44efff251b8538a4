package services

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"doppelx/config"
	"doppelx/models"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
)

// setupTestDB connects to a throwaway database. Tests are skipped unless
// MONGO_URI points at a reachable instance.
func setupTestDB(t *testing.T) {
	uri := os.Getenv("MONGO_URI")
	if uri == "" {
		t.Skip("MONGO_URI not set")
	}
	viper.Set("mongo.uri", uri)
	viper.Set("mongo.database", fmt.Sprintf("doppelx_test_%d", time.Now().UnixNano()))
	config.ConnectDB()

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = config.OpenCollection("activities").Database().Drop(ctx)
	})
}

func TestActivityRoundTrip(t *testing.T) {
	setupTestDB(t)

	activity := &models.Activity{
		UserID:         "user-1",
		StudyHours:     2.5,
		Score:          88,
		Breaks:         2,
		SleepHours:     7,
		TasksCompleted: 4,
		Notes:          "productive day",
	}
	require.NoError(t, CreateActivity(activity))

	activities, err := ListActivities("user-1")
	require.NoError(t, err)
	require.Len(t, activities, 1)

	got := activities[0]
	require.Equal(t, activity.StudyHours, got.StudyHours)
	require.Equal(t, activity.Score, got.Score)
	require.Equal(t, activity.Breaks, got.Breaks)
	require.Equal(t, activity.SleepHours, got.SleepHours)
	require.Equal(t, activity.TasksCompleted, got.TasksCompleted)
	require.Equal(t, activity.Notes, got.Notes)

	// other users cannot see it
	other, err := ListActivities("user-2")
	require.NoError(t, err)
	require.Empty(t, other)
}

func TestUpdateActivityNotFound(t *testing.T) {
	setupTestDB(t)

	_, err := UpdateActivity("user-1", "not-a-hex-id", nil)
	require.ErrorIs(t, err, ErrNotFound)
}
