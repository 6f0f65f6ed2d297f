// risk/classifier.go
package risk

// Assessment tiers (rule table)
const (
	TierCritical = "Critical"
	TierNeutral  = "Neutral"
	TierWarning  = "Warning"
	TierGood     = "Good"

	// TierUnavailable marks a placeholder entry for an employee whose
	// metrics could not be computed. Never produced by Classify itself.
	TierUnavailable = "Unavailable"
)

type Assessment struct {
	Tier               string   `json:"tier"`
	Message            string   `json:"message"`
	RecommendedActions []string `json:"recommendedActions,omitempty"`
}

// Classify maps per-employee metrics to an assessment. The rule order is
// load-bearing: the deadline rule outranks every completion rule, so a
// missed deadline is Critical even at 100% completion.
func Classify(avgCompletion float64, totalDelayDays, missedDeadlines int) Assessment {
	switch {
	case missedDeadlines > 0:
		return Assessment{
			Tier:    TierCritical,
			Message: "Missed critical deadline",
			RecommendedActions: []string{
				"Schedule a manager 1:1",
				"Assign a mentor",
				"Reduce current workload",
				"Share training resources",
			},
		}
	case avgCompletion <= 10:
		return Assessment{
			Tier:    TierNeutral,
			Message: "Just started, no assessment yet",
			RecommendedActions: []string{
				"Verify onboarding setup is complete",
			},
		}
	case avgCompletion < 40:
		return Assessment{
			Tier:    TierWarning,
			Message: "Low completion rate",
			RecommendedActions: []string{
				"Review task difficulty",
				"Send a progress reminder",
			},
		}
	case avgCompletion >= 50:
		return Assessment{
			Tier:    TierGood,
			Message: "Consistent progress, on track",
			RecommendedActions: []string{
				"Acknowledge progress",
				"Offer advanced tasks",
			},
		}
	default:
		// 40-50% band: Good without specific recommendations.
		return Assessment{
			Tier:    TierGood,
			Message: "Steady progress",
		}
	}
}
