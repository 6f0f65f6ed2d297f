// risk/trend.go
package risk

import "math"

// TrendPoint is one labeled day of the weekly risk-trend chart.
type TrendPoint struct {
	Day   string `json:"day"`
	Score int    `json:"score"`
}

// CurrentRiskScore is the fleet-wide weighted mean of per-status scores
// (On Track=10, At Risk=50, Delayed=90). Unavailable entries are skipped.
func (s *Snapshot) CurrentRiskScore() int {
	classified := 0
	total := 0
	for _, e := range s.Employees {
		if e.Status == StatusUnavailable {
			continue
		}
		total += ScoreForStatus(e.Status)
		classified++
	}
	if classified == 0 {
		return 0
	}
	return total / classified
}

// WeeklyTrend produces exactly 7 day-points ending today. The series is a
// deterministic interpolation from 80% of the current score up to the
// current score; the today-point always equals the live score exactly.
// Cosmetic filler for the chart, not a forecast.
func (s *Snapshot) WeeklyTrend() []TrendPoint {
	score := s.CurrentRiskScore()
	base := int(math.Round(float64(score) * 0.8))

	points := make([]TrendPoint, 0, 7)
	for i := 6; i >= 0; i-- {
		day := s.TakenAt.AddDate(0, 0, -i)
		v := base + (score-base)*(6-i)/6
		if i == 0 {
			v = score
		}
		points = append(points, TrendPoint{
			Day:   day.Format("Mon"),
			Score: v,
		})
	}
	return points
}

// DeptRisk is one department cell of the heatmap.
type DeptRisk struct {
	RiskLevel string  `json:"riskLevel"` // Low, Medium, High
	AvgScore  float64 `json:"avgScore"`
	Employees int     `json:"employees"`
}

// DepartmentHeatmap averages per-employee scores by department. Thresholds:
// avg > 60 is High, avg > 30 is Medium, else Low. Departments with no
// onboarding employees do not appear.
func (s *Snapshot) DepartmentHeatmap() map[string]DeptRisk {
	type acc struct {
		total int
		count int
	}
	byDept := make(map[string]*acc)

	for _, e := range s.Employees {
		if e.Status == StatusUnavailable {
			continue
		}
		dept := e.Department
		if dept == "" {
			dept = "Unassigned"
		}
		a := byDept[dept]
		if a == nil {
			a = &acc{}
			byDept[dept] = a
		}
		a.total += ScoreForStatus(e.Status)
		a.count++
	}

	out := make(map[string]DeptRisk, len(byDept))
	for dept, a := range byDept {
		avg := math.Round(float64(a.total)/float64(a.count)*10) / 10
		level := "Low"
		if avg > 60 {
			level = "High"
		} else if avg > 30 {
			level = "Medium"
		}
		out[dept] = DeptRisk{RiskLevel: level, AvgScore: avg, Employees: a.count}
	}
	return out
}
