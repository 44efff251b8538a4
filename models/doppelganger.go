package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DoppelgangerAnalysis is a self-contained behavioral analysis snapshot.
// A new document is created on every analysis request; old ones are kept.
type DoppelgangerAnalysis struct {
	ID                primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID            string             `bson:"user_id" json:"user_id"`
	AnalysisDate      time.Time          `bson:"analysis_date" json:"analysis_date"`
	StudyHours        float64            `bson:"study_hours" json:"study_hours"`
	Breaks            float64            `bson:"breaks" json:"breaks"`
	SleepHours        float64            `bson:"sleep_hours" json:"sleep_hours"`
	PastPerformance   float64            `bson:"past_performance" json:"past_performance"` // average score
	SimulatedOutcomes []SimulatedOutcome `bson:"simulated_outcomes" json:"simulated_outcomes"`
	Recommendations   []Recommendation   `bson:"recommendations" json:"recommendations"`
	Techniques        []Technique        `bson:"techniques" json:"techniques"`
	GraphData         []GraphPoint       `bson:"graph_data" json:"graph_data"`
	CreatedAt         time.Time          `bson:"created_at" json:"created_at"`
}

type SimulatedOutcome struct {
	Scenario       string  `bson:"scenario" json:"scenario"`
	PredictedScore float64 `bson:"predicted_score" json:"predicted_score"`
	Improvement    float64 `bson:"improvement" json:"improvement"` // score points
}

type Recommendation struct {
	Type        string `bson:"type" json:"type"` // schedule | focus | technique
	Title       string `bson:"title" json:"title"`
	Description string `bson:"description" json:"description"`
	Priority    string `bson:"priority" json:"priority"` // low | medium | high
}

type Technique struct {
	Name          string `bson:"name" json:"name"`
	Description   string `bson:"description" json:"description"`
	Effectiveness int    `bson:"effectiveness" json:"effectiveness"` // 0-100
	Category      string `bson:"category" json:"category"`
}

// GraphPoint compares the user's real study hours against the twin's for one day.
type GraphPoint struct {
	Day  string  `bson:"day" json:"day"`
	Real float64 `bson:"real" json:"real"`
	Twin float64 `bson:"twin" json:"twin"`
}

// ScenarioResult is the response of a what-if simulation. Not persisted.
type ScenarioResult struct {
	BaselinePerformance float64 `json:"baseline_performance"`
	PredictedScore      float64 `json:"predicted_score"`
	Improvement         float64 `json:"improvement"`
	StudyHours          float64 `json:"study_hours"`
	Breaks              float64 `json:"breaks"`
	SleepHours          float64 `json:"sleep_hours"`
}
