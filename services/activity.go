package services

import (
	"context"
	"errors"
	"math"
	"time"

	"doppelx/config"
	"doppelx/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ComputeActivityStats aggregates a user's full activity history.
// Records with a zero sleep_hours count as the 8-hour default, matching
// how activities are created.
func ComputeActivityStats(activities []models.Activity) models.ActivityStats {
	stats := models.ActivityStats{
		TotalActivities:   len(activities),
		AverageSleepHours: 8,
	}
	if len(activities) == 0 {
		return stats
	}

	var scoreSum, sleepSum float64
	for _, a := range activities {
		stats.TotalStudyHours += a.StudyHours
		stats.TotalTasksCompleted += a.TasksCompleted
		scoreSum += a.Score
		if a.SleepHours > 0 {
			sleepSum += a.SleepHours
		} else {
			sleepSum += 8
		}
	}

	n := float64(len(activities))
	stats.AverageScore = round2(scoreSum / n)
	stats.AverageSleepHours = round2(sleepSum / n)
	return stats
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func ListActivities(userID string) ([]models.Activity, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	coll := config.OpenCollection("activities")

	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})
	cursor, err := coll.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	out := []models.Activity{}
	err = cursor.All(ctx, &out)
	return out, err
}

func CreateActivity(activity *models.Activity) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	coll := config.OpenCollection("activities")

	now := time.Now()
	activity.ID = primitive.NewObjectID()
	activity.CreatedAt = now
	if activity.Date.IsZero() {
		activity.Date = now
	}
	if activity.SleepHours == 0 {
		activity.SleepHours = 8
	}

	_, err := coll.InsertOne(ctx, activity)
	return err
}

func UpdateActivity(userID, id string, update bson.M) (*models.Activity, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	coll := config.OpenCollection("activities")

	var activity models.Activity
	err = coll.FindOneAndUpdate(ctx,
		bson.M{"_id": objID, "user_id": userID},
		bson.M{"$set": update},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&activity)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &activity, nil
}

func DeleteActivity(userID, id string) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	coll := config.OpenCollection("activities")

	res, err := coll.DeleteOne(ctx, bson.M{"_id": objID, "user_id": userID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func GetActivityStats(userID string) (models.ActivityStats, error) {
	activities, err := ListActivities(userID)
	if err != nil {
		return models.ActivityStats{}, err
	}
	return ComputeActivityStats(activities), nil
}
