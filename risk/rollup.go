// risk/rollup.go
package risk

import (
	"log"
	"math"
	"sort"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Suhas-098/onboardai-backend/models"
)

// EmployeeRisk is the per-employee result every read path consumes.
// Status comes from the alert-precedence rule and is authoritative;
// Assessment is the rule-table detail shown on employee views.
type EmployeeRisk struct {
	UserID     primitive.ObjectID `json:"userId"`
	Name       string             `json:"name"`
	Email      string             `json:"email"`
	Department string             `json:"department"`
	Role       string             `json:"role"`

	Status     string     `json:"status"`
	Reasons    []string   `json:"reasons,omitempty"`
	Score      int        `json:"score"`
	Metrics    Metrics    `json:"metrics"`
	Assessment Assessment `json:"assessment"`
	ModelLabel string     `json:"modelLabel,omitempty"`
}

// CriticalEmployee is the dashboard's attention-list entry.
type CriticalEmployee struct {
	UserID     primitive.ObjectID `json:"userId"`
	Name       string             `json:"name"`
	Department string             `json:"department"`
	Risk       string             `json:"risk"`
	Reason     string             `json:"reason"`
}

// Snapshot is the fleet rollup: one object computed once per request and
// consumed verbatim by every dashboard widget, report and export, so all
// of them agree on the same numbers.
type Snapshot struct {
	TakenAt time.Time `json:"takenAt"`

	Employees []EmployeeRisk `json:"employees"`

	TotalEmployees int `json:"totalEmployees"`
	OnTrack        int `json:"onTrack"`
	AtRisk         int `json:"atRisk"`
	Delayed        int `json:"delayed"`
	Unavailable    int `json:"unavailable,omitempty"`

	CriticalEmployees []CriticalEmployee `json:"criticalEmployees"`
	DeptCounts        map[string]int     `json:"deptCounts"`
	AvgCompletion     float64            `json:"avgCompletion"`
}

// Input is a point-in-time view of the raw data the rollup derives from.
type Input struct {
	Users          []models.User
	ProgressByUser map[primitive.ObjectID][]models.Progress
	TasksByUser    map[primitive.ObjectID][]models.Task
	Alerts         []AlertView // persisted + synthetic, all employees
	Model          *Model      // optional, annotation only
	Now            time.Time
}

// BuildSnapshot runs the full pipeline over every onboarding user
// (role employee/intern). A failure computing one employee's metrics
// downgrades that employee to a placeholder entry instead of aborting
// the rollup.
func BuildSnapshot(in Input) Snapshot {
	now := in.Now
	if now.IsZero() {
		now = time.Now().UTC()
	}

	s := Snapshot{
		TakenAt:    now,
		DeptCounts: make(map[string]int),
	}

	alertsByUser := make(map[primitive.ObjectID][]AlertView)
	for _, a := range in.Alerts {
		if !a.TargetUserID.IsZero() {
			alertsByUser[a.TargetUserID] = append(alertsByUser[a.TargetUserID], a)
		}
	}

	totalCompletion := 0.0

	for _, u := range in.Users {
		if !u.IsOnboarding() {
			continue
		}

		er := buildEmployee(u, in.ProgressByUser[u.ID], in.TasksByUser[u.ID], alertsByUser[u.ID], in.Model, now)
		s.Employees = append(s.Employees, er)
		s.TotalEmployees++

		switch er.Status {
		case StatusOnTrack:
			s.OnTrack++
		case StatusAtRisk:
			s.AtRisk++
		case StatusDelayed:
			s.Delayed++
		default:
			s.Unavailable++
		}

		if er.Status == StatusDelayed {
			reason := "Missed critical deadline"
			if len(er.Reasons) > 0 {
				reason = er.Reasons[0]
			}
			s.CriticalEmployees = append(s.CriticalEmployees, CriticalEmployee{
				UserID:     er.UserID,
				Name:       er.Name,
				Department: er.Department,
				Risk:       TierCritical,
				Reason:     reason,
			})
		}

		dept := er.Department
		if dept == "" {
			dept = "Unassigned"
		}
		s.DeptCounts[dept]++

		totalCompletion += er.Metrics.AvgCompletion
	}

	if s.TotalEmployees > 0 {
		s.AvgCompletion = math.Round(totalCompletion/float64(s.TotalEmployees)*10) / 10
	}

	// Worst first, then by name for stable output.
	sort.SliceStable(s.Employees, func(i, j int) bool {
		a, b := s.Employees[i], s.Employees[j]
		if oa, ob := statusOrder(a.Status), statusOrder(b.Status); oa != ob {
			return oa < ob
		}
		return a.Name < b.Name
	})

	return s
}

func statusOrder(status string) int {
	switch status {
	case StatusDelayed:
		return 0
	case StatusAtRisk:
		return 1
	case StatusOnTrack:
		return 2
	default:
		return 3
	}
}

func buildEmployee(u models.User, rows []models.Progress, tasks []models.Task, alerts []AlertView, model *Model, now time.Time) EmployeeRisk {
	er := EmployeeRisk{
		UserID:     u.ID,
		Name:       u.Name,
		Email:      u.Email,
		Department: u.Department,
		Role:       u.Role,
	}

	metrics, err := ComputeMetrics(rows, tasks, now)
	if err != nil {
		log.Printf("Risk aggregation failed for %s: %v", u.ID.Hex(), err)
		er.Status = StatusUnavailable
		er.Reasons = []string{"data unavailable"}
		er.Assessment = Assessment{Tier: TierUnavailable, Message: "data unavailable"}
		return er
	}

	er.Metrics = metrics
	er.Assessment = Classify(metrics.AvgCompletion, metrics.TotalDelayDays, metrics.MissedDeadlines)
	er.Status, er.Reasons = StatusFromAlerts(alerts)
	er.Score = ScoreForStatus(er.Status)

	if model != nil {
		er.ModelLabel = model.Predict(
			metrics.AvgCompletion,
			float64(metrics.TotalDelayDays),
			float64(metrics.TasksCompleted),
			float64(metrics.TotalTimeSpent),
		)
	}

	return er
}

// TopRisks returns the n worst entries of the snapshot (already sorted
// worst first).
func (s *Snapshot) TopRisks(n int) []EmployeeRisk {
	if n > len(s.Employees) {
		n = len(s.Employees)
	}
	return s.Employees[:n]
}
