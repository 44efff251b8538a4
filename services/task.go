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

func ListTasks(userID string) ([]models.Task, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	coll := config.OpenCollection("tasks")

	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}, {Key: "start_time", Value: 1}})
	cursor, err := coll.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	out := []models.Task{}
	err = cursor.All(ctx, &out)
	return out, err
}

func CreateTask(task *models.Task) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	coll := config.OpenCollection("tasks")

	now := time.Now()
	task.ID = primitive.NewObjectID()
	task.CreatedAt = now
	if task.Priority == "" {
		task.Priority = "medium"
	}
	if task.Date.IsZero() {
		task.Date = now
	}

	_, err := coll.InsertOne(ctx, task)
	return err
}

func UpdateTask(userID, id string, update bson.M) (*models.Task, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	coll := config.OpenCollection("tasks")

	var task models.Task
	err = coll.FindOneAndUpdate(ctx,
		bson.M{"_id": objID, "user_id": userID},
		bson.M{"$set": update},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&task)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &task, nil
}

func DeleteTask(userID, id string) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	coll := config.OpenCollection("tasks")

	res, err := coll.DeleteOne(ctx, bson.M{"_id": objID, "user_id": userID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// UpdateTimeSpent records time tracked against a task, in minutes.
func UpdateTimeSpent(userID, id string, timeSpent float64) (*models.Task, error) {
	return UpdateTask(userID, id, bson.M{"time_spent": timeSpent})
}
