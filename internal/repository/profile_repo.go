package repository

import (
	"context"
	"time"

	"portfolio-analyzer/internal/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ProfileRepo handles MongoDB operations for student profiles and their
// portfolio activities
type ProfileRepo interface {
	GetProfile(ctx context.Context, studentID string) (*model.StudentProfile, error)
	UpsertProfile(ctx context.Context, profile *model.StudentProfile) error
	GetActivities(ctx context.Context, studentID string) ([]model.Activity, error)
	AddActivity(ctx context.Context, studentID string, activity *model.Activity) error
	UpdateActivity(ctx context.Context, studentID string, activity *model.Activity) (bool, error)
	DeleteActivity(ctx context.Context, studentID, activityID string) (bool, error)
}

type profileRepo struct {
	profiles   *mongo.Collection
	activities *mongo.Collection
}

// activityDoc wraps an activity with its owning student for storage
type activityDoc struct {
	StudentID string         `bson:"studentId"`
	Activity  model.Activity `bson:"activity"`
}

// NewProfileRepo creates a new profile repository
func NewProfileRepo(db *mongo.Database) ProfileRepo {
	return &profileRepo{
		profiles:   db.Collection("profiles"),
		activities: db.Collection("activities"),
	}
}

func (r *profileRepo) GetProfile(ctx context.Context, studentID string) (*model.StudentProfile, error) {
	var profile model.StudentProfile
	err := r.profiles.FindOne(ctx, bson.M{"studentId": studentID}).Decode(&profile)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *profileRepo) UpsertProfile(ctx context.Context, profile *model.StudentProfile) error {
	profile.UpdatedAt = time.Now()

	opts := options.Replace().SetUpsert(true)
	_, err := r.profiles.ReplaceOne(ctx, bson.M{"studentId": profile.StudentID}, profile, opts)
	return err
}

func (r *profileRepo) GetActivities(ctx context.Context, studentID string) ([]model.Activity, error) {
	cursor, err := r.activities.Find(ctx, bson.M{"studentId": studentID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []activityDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	activities := make([]model.Activity, 0, len(docs))
	for _, doc := range docs {
		activities = append(activities, doc.Activity)
	}
	return activities, nil
}

func (r *profileRepo) AddActivity(ctx context.Context, studentID string, activity *model.Activity) error {
	_, err := r.activities.InsertOne(ctx, activityDoc{
		StudentID: studentID,
		Activity:  *activity,
	})
	return err
}

func (r *profileRepo) UpdateActivity(ctx context.Context, studentID string, activity *model.Activity) (bool, error) {
	result, err := r.activities.UpdateOne(ctx,
		bson.M{"studentId": studentID, "activity.id": activity.ID},
		bson.M{"$set": bson.M{"activity": activity}})
	if err != nil {
		return false, err
	}
	return result.MatchedCount > 0, nil
}

func (r *profileRepo) DeleteActivity(ctx context.Context, studentID, activityID string) (bool, error) {
	result, err := r.activities.DeleteOne(ctx, bson.M{"studentId": studentID, "activity.id": activityID})
	if err != nil {
		return false, err
	}
	return result.DeletedCount > 0, nil
}
