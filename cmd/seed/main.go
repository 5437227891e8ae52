package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"portfolio-analyzer/internal/model"
	"portfolio-analyzer/internal/repository"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Seeds a sample student with a small portfolio for local development.
func main() {
	mongoURI := os.Getenv("MONGO_URI")
	if mongoURI == "" {
		mongoURI = "mongodb://localhost:27017"
	}
	dbName := os.Getenv("MONGO_DB")
	if dbName == "" {
		dbName = "portfoliodb"
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(mongoURI))
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer client.Disconnect(ctx)

	repo := repository.NewProfileRepo(client.Database(dbName))

	studentID := "stu_demo"
	profile := &model.StudentProfile{
		StudentID:     studentID,
		CurrentGrade:  "11",
		IntendedMajor: "Computer Science",
		GPAUnweighted: 3.7,
		GPAWeighted:   4.1,
		Curriculum:    "AP",
		Tests: &model.StudentTests{
			SAT: &model.TestScore{Score: 1380, Date: "2026-03-14"},
		},
	}
	if err := repo.UpsertProfile(ctx, profile); err != nil {
		log.Fatalf("Failed to seed profile: %v", err)
	}

	activities := []model.Activity{
		{
			ID:         "act_robotics",
			Title:      "FIRST Robotics team captain",
			Lens:       "Leadership",
			Type:       "club",
			RoleLevel:  "leader",
			HoursTotal: 180,
			TeamSize:   24,
			Awards:     []model.Award{{Level: "regional"}},
			ThemeTags:  []string{"robotics", "engineering"},
		},
		{
			ID:             "act_tutoring",
			Title:          "Weekend math tutoring for middle schoolers",
			Lens:           "Community",
			Type:           "volunteering",
			RoleLevel:      "contributor",
			HoursPerWeek:   3,
			PeopleImpacted: 40,
			ThemeTags:      []string{"education"},
		},
		{
			ID:         "act_arduino",
			Title:      "Self-taught Arduino weather station",
			Lens:       "Curiosity",
			Type:       "project",
			RoleLevel:  "founder",
			HoursTotal: 60,
			ThemeTags:  []string{"robotics", "engineering"},
		},
	}
	for i := range activities {
		if err := repo.AddActivity(ctx, studentID, &activities[i]); err != nil {
			log.Fatalf("Failed to seed activity %s: %v", activities[i].ID, err)
		}
	}

	fmt.Printf("Seeded profile '%s' with %d activities\n", studentID, len(activities))
}
