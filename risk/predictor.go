// risk/predictor.go
package risk

import (
	"encoding/json"
	"fmt"
	"os"
)

// Model is an optional pretrained classifier loaded from disk. It scores
// the same four features the rule table sees and returns a supplementary
// label. It annotates results only and never overrides the rule/alert
// classification.
//
// File format (JSON):
//
//	{
//	  "labels": ["On Track", "At Risk", "Delayed"],
//	  "centroids": [[92, 1, 5, 320], [55, 4, 3, 180], [20, 9, 1, 60]],
//	  "scale": [100, 10, 10, 600]
//	}
//
// Prediction is nearest centroid over the scaled feature vector
// [completion, delay_days, tasks_completed, time_spent].
type Model struct {
	Labels    []string    `json:"labels"`
	Centroids [][]float64 `json:"centroids"`
	Scale     []float64   `json:"scale,omitempty"`
}

// LoadModel reads and validates a model file.
func LoadModel(path string) (*Model, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read model file: %w", err)
	}

	var m Model
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse model file: %w", err)
	}

	if len(m.Labels) == 0 || len(m.Labels) != len(m.Centroids) {
		return nil, fmt.Errorf("model file: %d labels for %d centroids", len(m.Labels), len(m.Centroids))
	}
	for i, c := range m.Centroids {
		if len(c) != 4 {
			return nil, fmt.Errorf("model file: centroid %d has %d features, want 4", i, len(c))
		}
	}
	if m.Scale != nil && len(m.Scale) != 4 {
		return nil, fmt.Errorf("model file: scale has %d entries, want 4", len(m.Scale))
	}

	return &m, nil
}

// Predict returns the label of the centroid closest to the feature vector.
func (m *Model) Predict(completion, delayDays, tasksCompleted, timeSpent float64) string {
	features := [4]float64{completion, delayDays, tasksCompleted, timeSpent}
	if m.Scale != nil {
		for i := range features {
			if m.Scale[i] != 0 {
				features[i] /= m.Scale[i]
			}
		}
	}

	best := 0
	bestDist := -1.0
	for i, c := range m.Centroids {
		dist := 0.0
		for j := range features {
			cv := c[j]
			if m.Scale != nil && m.Scale[j] != 0 {
				cv /= m.Scale[j]
			}
			d := features[j] - cv
			dist += d * d
		}
		if bestDist < 0 || dist < bestDist {
			bestDist = dist
			best = i
		}
	}
	return m.Labels[best]
}
