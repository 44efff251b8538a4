package services

import (
	"context"
	"errors"
	"fmt"
	"math"
	"math/rand"
	"time"

	"doppelx/config"
	"doppelx/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Baseline is the set of behavioral averages an analysis is built from.
type Baseline struct {
	StudyHours      float64
	Breaks          float64
	SleepHours      float64
	PastPerformance float64
}

// Heuristic score deltas for the fixed what-if scenarios.
const (
	extraHourGain  = 5
	twoHoursGain   = 15
	extraBreakGain = 3
	extraSleepGain = 8

	historyWindow = 30 // most recent activity records considered

	defaultPerformance = 70
	defaultStudyHours  = 3

	improvementPerHour = 5
	maxImprovement     = 20
)

var weekDays = []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

// BaselineFromActivities averages the behavioral metrics of the given
// records. Records with zero sleep hours count as the 8-hour default.
// An empty history yields an all-zero baseline.
func BaselineFromActivities(activities []models.Activity) Baseline {
	var b Baseline
	if len(activities) == 0 {
		return b
	}
	for _, a := range activities {
		b.StudyHours += a.StudyHours
		b.Breaks += float64(a.Breaks)
		if a.SleepHours > 0 {
			b.SleepHours += a.SleepHours
		} else {
			b.SleepHours += 8
		}
		b.PastPerformance += a.Score
	}
	n := float64(len(activities))
	b.StudyHours /= n
	b.Breaks /= n
	b.SleepHours /= n
	b.PastPerformance /= n
	return b
}

// SimulateOutcomes projects the four fixed what-if scenarios against the
// baseline. Predicted scores clip at 100.
func SimulateOutcomes(b Baseline) []models.SimulatedOutcome {
	outcomes := []models.SimulatedOutcome{
		{
			Scenario:    fmt.Sprintf("Study %g hours instead of %g", b.StudyHours+1, b.StudyHours),
			Improvement: extraHourGain,
		},
		{
			Scenario:    fmt.Sprintf("Study %g hours instead of %g", b.StudyHours+2, b.StudyHours),
			Improvement: twoHoursGain,
		},
		{
			Scenario:    fmt.Sprintf("Take %g breaks instead of %g", b.Breaks+1, b.Breaks),
			Improvement: extraBreakGain,
		},
		{
			Scenario:    fmt.Sprintf("Sleep %g hours instead of %g", b.SleepHours+1, b.SleepHours),
			Improvement: extraSleepGain,
		},
	}
	for i := range outcomes {
		outcomes[i].PredictedScore = math.Min(100, b.PastPerformance+outcomes[i].Improvement)
	}
	return outcomes
}

// BuildRecommendations evaluates every advice rule against the baseline.
// All matching rules are included, and the Pomodoro suggestion always is.
func BuildRecommendations(b Baseline) []models.Recommendation {
	recommendations := []models.Recommendation{}

	if b.StudyHours < 3 {
		recommendations = append(recommendations, models.Recommendation{
			Type:  "schedule",
			Title: "Increase Study Hours",
			Description: fmt.Sprintf(
				"You're currently studying %.1f hours per day. Increasing to 4-5 hours could boost your scores by 10-15%%.",
				b.StudyHours),
			Priority: "high",
		})
	}

	if b.SleepHours < 7 {
		recommendations = append(recommendations, models.Recommendation{
			Type:        "schedule",
			Title:       "Improve Sleep Schedule",
			Description: "Getting at least 7-8 hours of sleep can improve focus and retention by up to 20%.",
			Priority:    "high",
		})
	}

	if b.Breaks < 2 {
		recommendations = append(recommendations, models.Recommendation{
			Type:        "focus",
			Title:       "Take Regular Breaks",
			Description: "Taking breaks every 25-30 minutes can improve productivity and prevent burnout.",
			Priority:    "medium",
		})
	}

	recommendations = append(recommendations, models.Recommendation{
		Type:        "technique",
		Title:       "Try Pomodoro Technique",
		Description: "Study for 25 minutes, then take a 5-minute break. This technique improves focus and retention.",
		Priority:    "medium",
	})

	return recommendations
}

// StudyTechniques returns the static technique catalog.
func StudyTechniques() []models.Technique {
	return []models.Technique{
		{Name: "Pomodoro Technique", Description: "25 minutes focused study, 5 minutes break", Effectiveness: 85, Category: "time-management"},
		{Name: "Spaced Repetition", Description: "Review material at increasing intervals", Effectiveness: 90, Category: "memory"},
		{Name: "Active Recall", Description: "Test yourself instead of re-reading", Effectiveness: 88, Category: "comprehension"},
		{Name: "Feynman Technique", Description: "Teach concepts in simple terms", Effectiveness: 82, Category: "understanding"},
		{Name: "Mind Mapping", Description: "Visual representation of information", Effectiveness: 75, Category: "organization"},
	}
}

// BuildGraphData produces the weekly real-vs-twin comparison. The twin
// always studies at least an hour more. The random source is injected so
// the series can be generated deterministically.
func BuildGraphData(avgStudyHours float64, rng *rand.Rand) []models.GraphPoint {
	points := make([]models.GraphPoint, 0, len(weekDays))
	for _, day := range weekDays {
		realHours := avgStudyHours + (rng.Float64()*2 - 1)
		twinHours := realHours + 1 + rng.Float64()
		points = append(points, models.GraphPoint{
			Day:  day,
			Real: round1(realHours),
			Twin: round1(twinHours),
		})
	}
	return points
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// BuildAnalysis assembles a full analysis snapshot from a baseline.
func BuildAnalysis(userID string, b Baseline, rng *rand.Rand) *models.DoppelgangerAnalysis {
	now := time.Now()
	return &models.DoppelgangerAnalysis{
		ID:                primitive.NewObjectID(),
		UserID:            userID,
		AnalysisDate:      now,
		StudyHours:        b.StudyHours,
		Breaks:            b.Breaks,
		SleepHours:        b.SleepHours,
		PastPerformance:   b.PastPerformance,
		SimulatedOutcomes: SimulateOutcomes(b),
		Recommendations:   BuildRecommendations(b),
		Techniques:        StudyTechniques(),
		GraphData:         BuildGraphData(b.StudyHours, rng),
		CreatedAt:         now,
	}
}

// CreateAnalysis resolves the baseline and persists a fresh analysis.
// When the caller does not supply study hours and past performance, the
// baseline is derived from the 30 most recent activity records.
func CreateAnalysis(userID string, input Baseline) (*models.DoppelgangerAnalysis, error) {
	baseline := input
	if input.StudyHours == 0 || input.PastPerformance == 0 {
		activities, err := recentActivities(userID, historyWindow)
		if err != nil {
			return nil, err
		}
		if len(activities) > 0 {
			baseline = BaselineFromActivities(activities)
		}
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	analysis := BuildAnalysis(userID, baseline, rng)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	coll := config.OpenCollection("doppelganger_analyses")

	if _, err := coll.InsertOne(ctx, analysis); err != nil {
		return nil, err
	}
	return analysis, nil
}

func recentActivities(userID string, limit int64) ([]models.Activity, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	coll := config.OpenCollection("activities")

	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}}).SetLimit(limit)
	cursor, err := coll.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var out []models.Activity
	err = cursor.All(ctx, &out)
	return out, err
}

func ListAnalyses(userID string) ([]models.DoppelgangerAnalysis, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	coll := config.OpenCollection("doppelganger_analyses")

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := coll.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	out := []models.DoppelgangerAnalysis{}
	err = cursor.All(ctx, &out)
	return out, err
}

func LatestAnalysis(userID string) (*models.DoppelgangerAnalysis, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	coll := config.OpenCollection("doppelganger_analyses")

	opts := options.FindOne().SetSort(bson.D{{Key: "created_at", Value: -1}})
	var analysis models.DoppelgangerAnalysis
	err := coll.FindOne(ctx, bson.M{"user_id": userID}, opts).Decode(&analysis)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &analysis, nil
}

// ScenarioOutcome computes the score projection for a requested study-hour
// change: 5 points per extra hour, clamped to [0, 20], never pushing the
// predicted score past 100.
func ScenarioOutcome(baselinePerformance, baselineStudyHours, requestedStudyHours float64) (improvement, predictedScore float64) {
	diff := requestedStudyHours - baselineStudyHours
	improvement = math.Min(maxImprovement, math.Max(0, diff*improvementPerHour))
	predictedScore = math.Min(100, baselinePerformance+improvement)
	return round2(improvement), predictedScore
}

// SimulateScenario projects a what-if request against the user's latest
// analysis, falling back to stock baseline values when none exists.
// Nothing is persisted.
func SimulateScenario(userID string, studyHours, breaks, sleepHours float64) (models.ScenarioResult, error) {
	baselinePerformance := float64(defaultPerformance)
	baselineStudyHours := float64(defaultStudyHours)

	latest, err := LatestAnalysis(userID)
	if err != nil && !errors.Is(err, ErrNotFound) {
		return models.ScenarioResult{}, err
	}
	if latest != nil {
		if latest.PastPerformance != 0 {
			baselinePerformance = latest.PastPerformance
		}
		if latest.StudyHours != 0 {
			baselineStudyHours = latest.StudyHours
		}
	}

	if studyHours == 0 {
		studyHours = baselineStudyHours
	}
	if breaks == 0 {
		breaks = 2
	}
	if sleepHours == 0 {
		sleepHours = 8
	}

	improvement, predictedScore := ScenarioOutcome(baselinePerformance, baselineStudyHours, studyHours)

	return models.ScenarioResult{
		BaselinePerformance: baselinePerformance,
		PredictedScore:      predictedScore,
		Improvement:         improvement,
		StudyHours:          studyHours,
		Breaks:              breaks,
		SleepHours:          sleepHours,
	}, nil
}
