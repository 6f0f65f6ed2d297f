// risk/explain.go
package risk

// Explanation is the heuristic breakdown attached to a model annotation:
// additive per-signal scoring with a named reason for every contributing
// signal. Like the model label it is supplementary and never feeds the
// rule/alert classification.
type Explanation struct {
	RiskLevel string   `json:"riskLevel"` // Low Risk, Medium Risk, High Risk
	RiskScore int      `json:"riskScore"`
	Reasons   []string `json:"reasons"`
}

// Explain scores the same features the predictor sees. Higher is worse.
func Explain(avgCompletion float64, totalDelayDays, tasksCompleted, timeSpentMinutes int) Explanation {
	var e Explanation

	switch {
	case avgCompletion < 40:
		e.Reasons = append(e.Reasons, "Very low task completion")
		e.RiskScore += 3
	case avgCompletion < 60:
		e.Reasons = append(e.Reasons, "Low task completion")
		e.RiskScore += 2
	case avgCompletion < 80:
		e.Reasons = append(e.Reasons, "Moderate task completion")
		e.RiskScore += 1
	}

	switch {
	case totalDelayDays > 10:
		e.Reasons = append(e.Reasons, "Severe task delays")
		e.RiskScore += 3
	case totalDelayDays > 5:
		e.Reasons = append(e.Reasons, "High delay history")
		e.RiskScore += 2
	case totalDelayDays > 2:
		e.Reasons = append(e.Reasons, "Minor delays")
		e.RiskScore += 1
	}

	switch {
	case tasksCompleted < 2:
		e.Reasons = append(e.Reasons, "Very few tasks completed")
		e.RiskScore += 3
	case tasksCompleted < 4:
		e.Reasons = append(e.Reasons, "Few tasks completed")
		e.RiskScore += 2
	}

	if timeSpentMinutes < 120 {
		e.Reasons = append(e.Reasons, "Low engagement time")
		e.RiskScore++
	}

	switch {
	case e.RiskScore >= 6:
		e.RiskLevel = "High Risk"
	case e.RiskScore >= 3:
		e.RiskLevel = "Medium Risk"
	default:
		e.RiskLevel = "Low Risk"
	}

	if len(e.Reasons) == 0 {
		e.Reasons = []string{"Performance is healthy"}
	}

	return e
}
