// risk/metrics.go
package risk

import (
	"fmt"
	"time"

	"github.com/Suhas-098/onboardai-backend/models"
)

// Metrics are the per-employee aggregates derived from progress rows and
// the employee's open tasks. Zero rows produce zero metrics, not an error.
type Metrics struct {
	AvgCompletion   float64 `json:"avgCompletion"`
	TotalDelayDays  int     `json:"totalDelayDays"`
	TasksCompleted  int     `json:"tasksCompleted"`
	MissedDeadlines int     `json:"missedDeadlines"`
	TotalTimeSpent  int     `json:"totalTimeSpent"` // minutes
}

// ComputeMetrics aggregates the progress rows for one employee.
// MissedDeadlines counts confirmed-late rows (delayDays > 0) plus tasks
// that are still open past their due date at the time of the call.
func ComputeMetrics(rows []models.Progress, tasks []models.Task, now time.Time) (Metrics, error) {
	var m Metrics

	if len(rows) > 0 {
		total := 0
		for _, p := range rows {
			if p.Completion < 0 || p.Completion > 100 {
				return Metrics{}, fmt.Errorf("progress %s: completion %d out of range", p.ID.Hex(), p.Completion)
			}
			if p.DelayDays < 0 {
				return Metrics{}, fmt.Errorf("progress %s: negative delay %d", p.ID.Hex(), p.DelayDays)
			}

			total += p.Completion
			m.TotalDelayDays += p.DelayDays
			m.TotalTimeSpent += p.TimeSpent

			if p.Completion == 100 {
				m.TasksCompleted++
			}
			if p.DelayDays > 0 {
				m.MissedDeadlines++
			}
		}
		m.AvgCompletion = float64(total) / float64(len(rows))
	}

	for _, t := range tasks {
		if t.IsOverdue(now) {
			m.MissedDeadlines++
		}
	}

	return m, nil
}
