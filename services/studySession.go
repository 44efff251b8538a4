package services

import (
	"context"
	"errors"
	"time"

	"doppelx/config"
	"doppelx/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const pomodoroDuration = 25 * 60 // seconds

// ComputeStudyStats summarizes a set of study sessions.
func ComputeStudyStats(sessions []models.StudySession) models.StudyStats {
	stats := models.StudyStats{TotalSessions: len(sessions)}
	for _, s := range sessions {
		stats.TotalTime += s.Duration
		if s.Completed {
			stats.CompletedSessions++
		}
		switch s.Type {
		case "pomodoro":
			stats.PomodoroSessions++
		case "infinity":
			stats.InfinitySessions++
		}
	}
	if stats.TotalSessions > 0 {
		stats.AverageSessionTime = float64(stats.TotalTime) / float64(stats.TotalSessions)
	}
	return stats
}

// CreateStudySession starts a new session. A pomodoro defaults to 25 minutes;
// an infinity session starts with no planned duration.
func CreateStudySession(userID, sessionType string, duration int) (*models.StudySession, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	coll := config.OpenCollection("study_sessions")

	if sessionType == "" {
		sessionType = "pomodoro"
	}
	if duration == 0 && sessionType == "pomodoro" {
		duration = pomodoroDuration
	}

	now := time.Now()
	session := &models.StudySession{
		ID:        primitive.NewObjectID(),
		UserID:    userID,
		Type:      sessionType,
		Duration:  duration,
		StartTime: now,
		CreatedAt: now,
	}

	_, err := coll.InsertOne(ctx, session)
	return session, err
}

// CompleteStudySession updates a session's duration and, when completed,
// stamps its end time.
func CompleteStudySession(userID, id string, duration int, completed bool) (*models.StudySession, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	coll := config.OpenCollection("study_sessions")

	update := bson.M{"duration": duration, "completed": completed}
	if completed {
		update["end_time"] = time.Now()
	}

	var session models.StudySession
	err = coll.FindOneAndUpdate(ctx,
		bson.M{"_id": objID, "user_id": userID},
		bson.M{"$set": update},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&session)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &session, nil
}

func ListStudySessions(userID string, limit int64) ([]models.StudySession, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	coll := config.OpenCollection("study_sessions")

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}).SetLimit(limit)
	cursor, err := coll.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	out := []models.StudySession{}
	err = cursor.All(ctx, &out)
	return out, err
}

func GetStudyStats(userID string) (models.StudyStats, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	coll := config.OpenCollection("study_sessions")

	cursor, err := coll.Find(ctx, bson.M{"user_id": userID})
	if err != nil {
		return models.StudyStats{}, err
	}
	defer cursor.Close(ctx)

	var sessions []models.StudySession
	if err := cursor.All(ctx, &sessions); err != nil {
		return models.StudyStats{}, err
	}
	return ComputeStudyStats(sessions), nil
}
