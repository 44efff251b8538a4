package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"doppelx/config"
	"doppelx/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const scheduleStartHour = 8

// GenerateTimeSlots assigns each task a sequential one-hour slot starting
// at 08:00. Priorities is an optional parallel list; missing entries
// default to "medium". Hour labels are not wrapped at 24, so more than 16
// tasks produce out-of-range labels like "25:00".
func GenerateTimeSlots(taskNames []string, priorities []string) ([]models.ScheduleTask, error) {
	if len(taskNames) == 0 {
		return nil, ErrNoTasks
	}

	slots := make([]models.ScheduleTask, 0, len(taskNames))
	for i, name := range taskNames {
		priority := "medium"
		if i < len(priorities) && priorities[i] != "" {
			priority = priorities[i]
		}

		startHour := scheduleStartHour + i
		slots = append(slots, models.ScheduleTask{
			Name:      name,
			StartTime: fmt.Sprintf("%02d:00", startHour),
			EndTime:   fmt.Sprintf("%02d:00", startHour+1),
			Priority:  priority,
		})
	}
	return slots, nil
}

func ListSchedules(userID string) ([]models.Schedule, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	coll := config.OpenCollection("schedules")

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := coll.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	out := []models.Schedule{}
	err = cursor.All(ctx, &out)
	return out, err
}

func CreateSchedule(schedule *models.Schedule) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	coll := config.OpenCollection("schedules")

	now := time.Now()
	schedule.ID = primitive.NewObjectID()
	schedule.CreatedAt = now
	if schedule.Name == "" {
		schedule.Name = "My Schedule"
	}
	if schedule.Tasks == nil {
		schedule.Tasks = []models.ScheduleTask{}
	}
	if schedule.Date.IsZero() {
		schedule.Date = now
	}

	_, err := coll.InsertOne(ctx, schedule)
	return err
}

// GenerateSchedule builds the time slots for the given task names and
// persists them as a new generated schedule.
func GenerateSchedule(userID string, taskNames, priorities []string) (*models.Schedule, error) {
	slots, err := GenerateTimeSlots(taskNames, priorities)
	if err != nil {
		return nil, err
	}

	schedule := &models.Schedule{
		UserID:      userID,
		Name:        "Generated Schedule",
		Tasks:       slots,
		IsGenerated: true,
	}
	if err := CreateSchedule(schedule); err != nil {
		return nil, err
	}
	return schedule, nil
}

func GetSchedule(userID, id string) (*models.Schedule, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	coll := config.OpenCollection("schedules")

	var schedule models.Schedule
	err = coll.FindOne(ctx, bson.M{"_id": objID, "user_id": userID}).Decode(&schedule)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &schedule, nil
}

func UpdateSchedule(userID, id string, update bson.M) (*models.Schedule, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	coll := config.OpenCollection("schedules")

	var schedule models.Schedule
	err = coll.FindOneAndUpdate(ctx,
		bson.M{"_id": objID, "user_id": userID},
		bson.M{"$set": update},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&schedule)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &schedule, nil
}

func DeleteSchedule(userID, id string) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	coll := config.OpenCollection("schedules")

	res, err := coll.DeleteOne(ctx, bson.M{"_id": objID, "user_id": userID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
