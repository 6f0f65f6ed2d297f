// handlers/collections.go
package handlers

import (
	"log"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Suhas-098/onboardai-backend/config"
	"github.com/Suhas-098/onboardai-backend/database"
	"github.com/Suhas-098/onboardai-backend/risk"
)

var (
	userCollection         *mongo.Collection
	taskCollection         *mongo.Collection
	progressCollection     *mongo.Collection
	alertCollection        *mongo.Collection
	notificationCollection *mongo.Collection
	templateCollection     *mongo.Collection
	taskMessageCollection  *mongo.Collection
	activityCollection     *mongo.Collection

	riskModel *risk.Model
)

func InitCollections() {
	db := database.Client.Database(config.DatabaseName)
	userCollection = db.Collection("users")
	taskCollection = db.Collection("tasks")
	progressCollection = db.Collection("progress")
	alertCollection = db.Collection("alerts")
	notificationCollection = db.Collection("employee_notifications")
	templateCollection = db.Collection("onboarding_templates")
	taskMessageCollection = db.Collection("task_messages")
	activityCollection = db.Collection("activity_logs")

	if config.RiskModelPath != "" {
		model, err := risk.LoadModel(config.RiskModelPath)
		if err != nil {
			log.Printf("Risk model unavailable (%s): %v", config.RiskModelPath, err)
		} else {
			riskModel = model
			log.Printf("Risk model loaded from %s", config.RiskModelPath)
		}
	}
}
