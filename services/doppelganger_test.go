package services

import (
	"math"
	"math/rand"
	"testing"

	"doppelx/models"

	"github.com/stretchr/testify/require"
)

func TestBaselineFromActivities(t *testing.T) {
	activities := []models.Activity{
		{StudyHours: 2, Breaks: 1, SleepHours: 6, Score: 60},
		{StudyHours: 4, Breaks: 3, SleepHours: 0, Score: 80}, // zero sleep counts as 8
	}

	b := BaselineFromActivities(activities)
	require.InDelta(t, 3, b.StudyHours, 1e-9)
	require.InDelta(t, 2, b.Breaks, 1e-9)
	require.InDelta(t, 7, b.SleepHours, 1e-9)
	require.InDelta(t, 70, b.PastPerformance, 1e-9)
}

func TestBaselineFromActivitiesEmpty(t *testing.T) {
	b := BaselineFromActivities(nil)
	require.Zero(t, b.StudyHours)
	require.Zero(t, b.Breaks)
	require.Zero(t, b.SleepHours)
	require.Zero(t, b.PastPerformance)
}

func TestSimulateOutcomesClipsAt100(t *testing.T) {
	outcomes := SimulateOutcomes(Baseline{StudyHours: 3, Breaks: 2, SleepHours: 7, PastPerformance: 90})
	require.Len(t, outcomes, 4)

	// +15 would land on 105 without clipping
	require.Equal(t, float64(15), outcomes[1].Improvement)
	require.Equal(t, float64(100), outcomes[1].PredictedScore)

	for _, o := range outcomes {
		require.LessOrEqual(t, o.PredictedScore, float64(100))
	}
	require.Equal(t, float64(95), outcomes[0].PredictedScore)
	require.Equal(t, float64(93), outcomes[2].PredictedScore)
	require.Equal(t, float64(98), outcomes[3].PredictedScore)
}

func TestBuildRecommendations(t *testing.T) {
	t.Run("all rules fire for a weak baseline", func(t *testing.T) {
		recs := BuildRecommendations(Baseline{StudyHours: 1, Breaks: 0, SleepHours: 5})
		require.Len(t, recs, 4)
		require.Equal(t, "Increase Study Hours", recs[0].Title)
		require.Equal(t, "high", recs[0].Priority)
		require.Equal(t, "Improve Sleep Schedule", recs[1].Title)
		require.Equal(t, "Take Regular Breaks", recs[2].Title)
		require.Equal(t, "medium", recs[2].Priority)
		require.Equal(t, "Try Pomodoro Technique", recs[3].Title)
	})

	t.Run("pomodoro suggestion is always present", func(t *testing.T) {
		recs := BuildRecommendations(Baseline{StudyHours: 5, Breaks: 3, SleepHours: 8})
		require.Len(t, recs, 1)
		require.Equal(t, "Try Pomodoro Technique", recs[0].Title)
		require.Equal(t, "technique", recs[0].Type)
	})
}

func TestStudyTechniques(t *testing.T) {
	techniques := StudyTechniques()
	require.Len(t, techniques, 5)
	for _, tech := range techniques {
		require.NotEmpty(t, tech.Name)
		require.GreaterOrEqual(t, tech.Effectiveness, 0)
		require.LessOrEqual(t, tech.Effectiveness, 100)
	}
}

func TestBuildGraphData(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	points := BuildGraphData(3, rng)
	require.Len(t, points, 7)

	require.Equal(t, []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"},
		[]string{points[0].Day, points[1].Day, points[2].Day, points[3].Day, points[4].Day, points[5].Day, points[6].Day})

	for _, p := range points {
		// real = 3 ± 1, twin = real + 1 + [0,1), both rounded to one decimal
		require.GreaterOrEqual(t, p.Real, 1.9)
		require.LessOrEqual(t, p.Real, 4.1)
		require.Greater(t, p.Twin, p.Real)
		require.InDelta(t, math.Round(p.Real*10), p.Real*10, 1e-9)
		require.InDelta(t, math.Round(p.Twin*10), p.Twin*10, 1e-9)
	}

	// same seed, same series
	again := BuildGraphData(3, rand.New(rand.NewSource(42)))
	require.Equal(t, points, again)
}

func TestBuildAnalysis(t *testing.T) {
	b := Baseline{StudyHours: 2.5, Breaks: 1, SleepHours: 6.5, PastPerformance: 75}
	analysis := BuildAnalysis("user-1", b, rand.New(rand.NewSource(7)))

	require.Equal(t, "user-1", analysis.UserID)
	require.Equal(t, b.StudyHours, analysis.StudyHours)
	require.Equal(t, b.PastPerformance, analysis.PastPerformance)
	require.Len(t, analysis.SimulatedOutcomes, 4)
	require.Len(t, analysis.Techniques, 5)
	require.Len(t, analysis.GraphData, 7)
	require.False(t, analysis.AnalysisDate.IsZero())
}

func TestScenarioOutcome(t *testing.T) {
	t.Run("five points per extra hour", func(t *testing.T) {
		improvement, predicted := ScenarioOutcome(70, 3, 5)
		require.Equal(t, float64(10), improvement)
		require.Equal(t, float64(80), predicted)
	})

	t.Run("improvement never negative", func(t *testing.T) {
		improvement, predicted := ScenarioOutcome(70, 3, 1)
		require.Equal(t, float64(0), improvement)
		require.Equal(t, float64(70), predicted)
	})

	t.Run("improvement capped at 20", func(t *testing.T) {
		improvement, _ := ScenarioOutcome(70, 3, 50)
		require.Equal(t, float64(20), improvement)
	})

	t.Run("predicted score clips at 100", func(t *testing.T) {
		_, predicted := ScenarioOutcome(95, 3, 5)
		require.Equal(t, float64(100), predicted)
	})
}
