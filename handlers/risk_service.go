// handlers/risk_service.go
package handlers

import (
	"context"
	"fmt"
	"sort"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Suhas-098/onboardai-backend/models"
	"github.com/Suhas-098/onboardai-backend/risk"
)

// loadSnapshot reads every input of the risk pipeline and builds the fleet
// snapshot. Every dashboard, report and export endpoint goes through this
// one function so they all see identical numbers for the same instant.
// The result is recomputed on each call; staleness is bounded to zero.
func loadSnapshot(ctx context.Context) (risk.Snapshot, error) {
	now := time.Now().UTC()

	users, err := loadUsers(ctx)
	if err != nil {
		return risk.Snapshot{}, fmt.Errorf("load users: %w", err)
	}

	tasks, err := loadTasks(ctx)
	if err != nil {
		return risk.Snapshot{}, fmt.Errorf("load tasks: %w", err)
	}

	progress, err := loadProgress(ctx)
	if err != nil {
		return risk.Snapshot{}, fmt.Errorf("load progress: %w", err)
	}

	alerts, err := loadAlertViews(ctx, users, tasks, now)
	if err != nil {
		return risk.Snapshot{}, fmt.Errorf("load alerts: %w", err)
	}

	tasksByUser := make(map[primitive.ObjectID][]models.Task)
	for _, t := range tasks {
		if !t.AssignedTo.IsZero() {
			tasksByUser[t.AssignedTo] = append(tasksByUser[t.AssignedTo], t)
		}
	}

	progressByUser := make(map[primitive.ObjectID][]models.Progress)
	for _, p := range progress {
		progressByUser[p.UserID] = append(progressByUser[p.UserID], p)
	}

	return risk.BuildSnapshot(risk.Input{
		Users:          users,
		ProgressByUser: progressByUser,
		TasksByUser:    tasksByUser,
		Alerts:         alerts,
		Model:          riskModel,
		Now:            now,
	}), nil
}

func loadUsers(ctx context.Context) ([]models.User, error) {
	cursor, err := userCollection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var users []models.User
	if err := cursor.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func loadTasks(ctx context.Context) ([]models.Task, error) {
	cursor, err := taskCollection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var tasks []models.Task
	if err := cursor.All(ctx, &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

func loadProgress(ctx context.Context) ([]models.Progress, error) {
	cursor, err := progressCollection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var rows []models.Progress
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

// loadAlertViews returns persisted alerts plus the synthetic overdue-task
// alerts derived from the current task state, newest first.
func loadAlertViews(ctx context.Context, users []models.User, tasks []models.Task, now time.Time) ([]risk.AlertView, error) {
	cursor, err := alertCollection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var stored []models.Alert
	if err := cursor.All(ctx, &stored); err != nil {
		return nil, err
	}

	names := make(map[primitive.ObjectID]string, len(users))
	for _, u := range users {
		names[u.ID] = u.Name
	}

	views := make([]risk.AlertView, 0, len(stored))
	for _, a := range stored {
		views = append(views, risk.ViewFromAlert(a))
	}
	views = append(views, risk.SyntheticOverdueAlerts(tasks, names, now)...)

	sort.SliceStable(views, func(i, j int) bool {
		return views[i].CreatedAt.After(views[j].CreatedAt)
	})
	return views, nil
}

// refreshCachedRisk recomputes the advisory risk cache on a user record
// after a task completion. Last write wins under concurrent completions;
// the cache is never read by the live aggregation.
func refreshCachedRisk(ctx context.Context, userID primitive.ObjectID) {
	now := time.Now().UTC()

	cursor, err := progressCollection.Find(ctx, bson.M{"userId": userID})
	if err != nil {
		return
	}
	var rows []models.Progress
	if err := cursor.All(ctx, &rows); err != nil {
		return
	}

	taskCursor, err := taskCollection.Find(ctx, bson.M{"assignedTo": userID})
	if err != nil {
		return
	}
	var tasks []models.Task
	if err := taskCursor.All(ctx, &tasks); err != nil {
		return
	}

	metrics, err := risk.ComputeMetrics(rows, tasks, now)
	if err != nil {
		return
	}
	assessment := risk.Classify(metrics.AvgCompletion, metrics.TotalDelayDays, metrics.MissedDeadlines)

	cachedStatus := risk.StatusOnTrack
	switch assessment.Tier {
	case risk.TierCritical:
		cachedStatus = risk.StatusDelayed
	case risk.TierWarning:
		cachedStatus = risk.StatusAtRisk
	}

	userCollection.UpdateOne(ctx,
		bson.M{"_id": userID},
		bson.M{"$set": bson.M{"risk": cachedStatus, "riskReason": assessment.Message}},
	)
}
